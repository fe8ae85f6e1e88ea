package superzk

import (
	"crypto/rand"
	"testing"

	"github.com/MixinNetwork/superzk-go/crypto/ecc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCzeroKeys(t *testing.T) {
	assert := assert.New(t)

	zsk, err := ecc.FRFromDecimal("1414125169919633338287334366411409260780824619700845100631209103383744535688")
	require.NoError(t, err)
	vsk, err := ecc.FRFromDecimal("1187950494499907703078976114969703210152712337496432814310892304431337827743")
	require.NoError(t, err)

	sk, err := Seed2SK(Czero, reverseHex("1dae502b898054534f98b10e0e79adcbc7badd21cf9dd13afec6de6a68c27359"))
	require.NoError(t, err)
	assert.True(sk.Zsk.Equal(zsk))
	assert.True(sk.Vsk.Equal(vsk))
	assert.False(IsFlagSet(sk.Bytes()))

	tk := sk.ToTK()
	assert.Equal(reverseHex("ae07859ee67971e8120676ee315f160172843afccba86a8e5775c51af8963acb"), pointBytes(tk.Zpk))

	pk := tk.ToPK()
	assert.Equal(reverseHex("0574b2a4a441fcc9cce9dc9a656795d3f4da56f69d0f27a605f338c11b032099"), pointBytes(pk.Vpk))

	r, err := ecc.FRFromDecimal("1171303403610082973846181280845915821240011476569395132138519856324206051995")
	require.NoError(t, err)
	pkr := pk.CreatePKr(r)
	assert.Equal(reverseHex("2ec099e0946ea4f04b6b21be274a815f132e56f54f2c9578523db6da9d082a63"), pointBytes(pkr.ZPKr))
	assert.Equal(reverseHex("0db71d23a848bb0fb467f1fa07931094491d1b32061f1f9ff5a2911b79d5d979"), pointBytes(pkr.VPKr))
	assert.Equal(reverseHex("121cb4164fbfe405ac9293e70bcb1f9f2a5044c64b3fa2140f6a6267c4b43724"), pointBytes(pkr.BASEr))
	assert.True(tk.IsMyPKr(pkr))
}

func TestCzeroNil(t *testing.T) {
	assert := assert.New(t)
	r := testReader(t)

	seed := make([]byte, 32)
	r.Read(seed)
	sk, err := Seed2SK(Czero, seed)
	require.NoError(t, err)
	tk := sk.ToTK()
	pkr := tk.ToPK().CreatePKr(randomFR(t, r))
	cm, err := ecc.RandomPoint(r)
	require.NoError(t, err)

	nul, err := CzeroNil(sk, cm)
	require.NoError(t, err)
	again, err := CzeroNil(sk, cm)
	require.NoError(t, err)
	assert.True(nul.Equal(again))

	h := make([]byte, 32)
	r.Read(h)
	sig, err := CzeroSignNil(rand.Reader, h, sk, pkr, cm)
	require.NoError(t, err)
	assert.Len(sig, ecc.SignatureNSize)
	assert.True(CzeroVerifyNil(h, sig, nul, pkr, cm))
	assert.False(CzeroVerifyNil(h, sig, nul.Twice(), pkr, cm))
	assert.False(CzeroVerifyNil(h[:31], sig, nul, pkr, cm))

	other, _ := ecc.RandomPoint(r)
	assert.False(CzeroVerifyNil(h, sig, nul, pkr, other))

	sig, err = CzeroSignByPKr(rand.Reader, h, sk, pkr)
	require.NoError(t, err)
	assert.True(CzeroVerifyByPKr(h, sig, pkr))
	h[0] ^= 1
	assert.False(CzeroVerifyByPKr(h, sig, pkr))

	trace, err := CzeroTrace(tk, cm)
	require.NoError(t, err)
	assert.True(trace.Equal(cm.Mult(sk.Vsk)))

	_, err = CzeroNil(&SK{Scheme: Czero}, cm)
	assert.ErrorIs(err, ErrInvalidKey)
	_, err = CzeroSignNil(rand.Reader, h[:16], sk, pkr, cm)
	assert.ErrorIs(err, ecc.ErrInvalidLength)
	bad := ecc.NewAffinePoint(ecc.FQFromUint64(1), ecc.FQFromUint64(1))
	_, err = CzeroTrace(tk, bad)
	assert.ErrorIs(err, ErrInvalidPoint)
}

func TestCzeroNilPerKey(t *testing.T) {
	assert := assert.New(t)
	r := testReader(t)

	seed := make([]byte, 32)
	r.Read(seed)
	sk, err := Seed2SK(Czero, seed)
	require.NoError(t, err)
	r.Read(seed)
	other, err := Seed2SK(Czero, seed)
	require.NoError(t, err)
	pkr := sk.ToTK().ToPK().CreatePKr(randomFR(t, r))
	cm, err := ecc.RandomPoint(r)
	require.NoError(t, err)

	nul, err := CzeroNil(sk, cm)
	require.NoError(t, err)
	onul, err := CzeroNil(other, cm)
	require.NoError(t, err)
	assert.False(nul.Equal(onul))

	trace, err := CzeroTrace(sk.ToTK(), cm)
	require.NoError(t, err)
	otrace, err := CzeroTrace(other.ToTK(), cm)
	require.NoError(t, err)
	assert.False(trace.Equal(otrace))

	h := make([]byte, 32)
	r.Read(h)
	sig, err := CzeroSignNil(rand.Reader, h, sk, pkr, cm)
	require.NoError(t, err)
	assert.True(CzeroVerifyNil(h, sig, nul, pkr, cm))
	assert.False(CzeroVerifyNil(h, sig, onul, pkr, cm))
}

func TestCzeroNilAddress(t *testing.T) {
	assert := assert.New(t)
	r := testReader(t)

	seed := make([]byte, 32)
	r.Read(seed)
	sk, err := Seed2SK(Czero, seed)
	require.NoError(t, err)
	tk := sk.ToTK()
	cm, err := ecc.RandomPoint(r)
	require.NoError(t, err)
	h := make([]byte, 32)
	r.Read(h)
	sig := make([]byte, ecc.SignatureNSize)

	_, err = CzeroSignNil(rand.Reader, h, sk, nil, cm)
	assert.ErrorIs(err, ErrInvalidAddress)
	assert.False(CzeroVerifyNil(h, sig, cm, nil, cm))
	_, err = CzeroSignByPKr(rand.Reader, h, sk, nil)
	assert.ErrorIs(err, ErrInvalidAddress)
	assert.False(CzeroVerifyByPKr(h, sig[:ecc.SignatureSize], nil))
	_, _, err = CzeroGenKey(nil, randomFR(t, r))
	assert.ErrorIs(err, ErrInvalidAddress)
	_, err = CzeroOutCM(NewToken("SERO", ecc.FRFromUint64(1)), paddedMemo("x"), randomFR(t, r), nil)
	assert.ErrorIs(err, ErrInvalidAddress)
	_, err = CzeroConfirmOut([32]byte{}, make([]byte, InfoSize), nil, make([]byte, 32))
	assert.ErrorIs(err, ErrNotMine)
	_, err = RootCM(0, nil, cm)
	assert.ErrorIs(err, ErrInvalidAddress)

	_, err = CzeroNil(nil, cm)
	assert.ErrorIs(err, ErrInvalidKey)
	_, err = CzeroTrace(nil, cm)
	assert.ErrorIs(err, ErrInvalidKey)
	_, err = CzeroFetchKey(nil, make([]byte, 32))
	assert.ErrorIs(err, ErrInvalidKey)
	assert.False(tk.IsMyPKr(nil))

	var pkr *PKr
	assert.False(pkr.IsValid())
	var pk *PK
	assert.False(pk.IsValid())
	var asset *Asset
	assert.False(asset.IsValid())
}

func TestCzeroOutCM(t *testing.T) {
	assert := assert.New(t)

	pkr := &PKr{
		Scheme: Czero,
		ZPKr:   hexToPoint("303d861d913788f7f3d6fbc07e898c5f1e9a504a75ea2de5551e7535ff2892a0"),
		VPKr:   mustPoint(reverseHex("a253dd1d0404b9250d74397ec195f315cdf54181665bcb39febc151fdd84c6d3")),
		BASEr:  mustPoint(reverseHex("896e98687f815e95c6c86f3c22a838c5b44fc419a18925e83973223a295120d1")),
	}
	asset := NewToken("sero", ecc.FRFromUint64(10))
	copy(asset.Category[:], "sero_tkt")
	copy(asset.Ticket[:], reverseHex("5f30493457b08db51db4cc91643886eb5c2ac2360012e37dc5f93e92350f39b0"))

	rsk := ecc.FRFromBytes(reverseHex("04a51a03abb7d84ee1e64128afc2f62cb7274ea5a9fa04bf535fd92ad30bd825"))
	memo := reverseHex("f8a1d963eb45c0bedd3afadb959d5d0a59c4bcbf7f27cdf3966b95e0d932937dab43c2667c594ba8bdcb029042471c1ceec3c28380d123d2477423e8c8ae0490")

	cm, err := CzeroOutCM(asset, memo, rsk, pkr)
	require.NoError(t, err)
	assert.Equal(reverseHex("a451f74b53fbadd4f6bc4657313523f612c8983cf5b4192066ff6897c782e78b"), pointBytes(cm))

	_, err = CzeroOutCM(asset, memo[:32], rsk, pkr)
	assert.ErrorIs(err, ecc.ErrInvalidLength)
}

func TestCzeroNoteKey(t *testing.T) {
	assert := assert.New(t)
	r := testReader(t)

	seed := make([]byte, 32)
	r.Read(seed)
	sk, err := Seed2SK(Czero, seed)
	require.NoError(t, err)
	tk := sk.ToTK()
	pkr := tk.ToPK().CreatePKr(randomFR(t, r))

	key, rpk, err := CzeroGenKey(pkr, randomFR(t, r))
	require.NoError(t, err)
	fetched, err := CzeroFetchKey(tk, pointBytes(rpk))
	require.NoError(t, err)
	assert.Equal(key, fetched)

	// a stray scheme flag on rpk is ignored
	fetched, err = CzeroFetchKey(tk, setFlag(pointBytes(rpk)))
	require.NoError(t, err)
	assert.Equal(key, fetched)

	_, err = CzeroFetchKey(tk, make([]byte, 31))
	assert.ErrorIs(err, ecc.ErrInvalidLength)

	asset := NewToken("SERO", ecc.FRFromUint64(42))
	out, err := CreateOutZ(r, pkr, asset, []byte("hello"))
	require.NoError(t, err)
	key, err = CzeroFetchKey(tk, out.RPK)
	require.NoError(t, err)
	info, err := CzeroConfirmOut(key, out.EInfo, pkr, out.OutCM)
	require.NoError(t, err)
	assert.True(info.IsValid())
	assert.Equal(asset.Bytes(), info.Asset.Bytes())
	assert.Equal(paddedMemo("hello"), info.Memo)

	var wrong [32]byte
	_, err = CzeroConfirmOut(wrong, out.EInfo, pkr, out.OutCM)
	assert.ErrorIs(err, ErrNotMine)
}
