package superzk

import (
	"crypto/rand"
	"testing"

	"github.com/MixinNetwork/superzk-go/crypto/ecc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// One confidential input of 100 is spent into a confidential output of 60,
// a public output of 30 and a fee of 10.
func testBalanceParams(t *testing.T) *BalanceParams {
	r := testReader(t)
	tk := testSuperZKTK(t)
	pkr := testSuperZKPKr(t)

	out, _, err := CreateOutC(r, pkr, NewToken("SERO", ecc.FRFromUint64(100)), nil)
	require.NoError(t, err)
	rootCM, err := RootCM(7, pkr, out.AssetCM)
	require.NoError(t, err)
	in, _, err := SpendOutC(r, tk, rootCM, out)
	require.NoError(t, err)

	change, ar, err := CreateOutC(r, pkr, NewToken("SERO", ecc.FRFromUint64(60)), nil)
	require.NoError(t, err)
	public, err := NewToken("SERO", ecc.FRFromUint64(30)).CC()
	require.NoError(t, err)
	fee, err := NewToken("SERO", ecc.FRFromUint64(10)).CC()
	require.NoError(t, err)

	p := &BalanceParams{}
	p.AddZIn(in.AssetCM, in.Ar)
	p.AddZOut(change.AssetCM, ar)
	p.AddOOut(public)
	p.AddOOut(fee)
	return p
}

func TestBalance(t *testing.T) {
	assert := assert.New(t)

	p := testBalanceParams(t)
	h := make([]byte, 32)
	rand.Read(h)

	sig, bcr, err := SignBalance(rand.Reader, h, p)
	require.NoError(t, err)
	assert.True(VerifyBalance(h, sig, p, bcr))

	h[3] ^= 4
	assert.False(VerifyBalance(h, sig, p, bcr))
	h[3] ^= 4
	assert.False(VerifyBalance(h, sig, p, bcr.Twice()))

	// one extra public output breaks the identity
	extra, err := NewToken("SERO", ecc.FRFromUint64(1)).CC()
	require.NoError(t, err)
	p.AddOOut(extra)
	assert.False(VerifyBalance(h, sig, p, bcr))
	_, _, err = SignBalance(rand.Reader, h, p)
	assert.ErrorIs(err, ErrUnbalanced)

	// a public input of the same value restores it
	p.AddOIn(extra)
	assert.True(VerifyBalance(h, sig, p, bcr))
}

func TestBalanceDegenerate(t *testing.T) {
	assert := assert.New(t)

	h := make([]byte, 32)
	ar := ecc.FRFromUint64(5)
	cm, err := NewToken("SERO", ecc.FRFromUint64(1)).CM(ar)
	require.NoError(t, err)

	p := &BalanceParams{}
	p.AddZIn(cm, ar)
	p.AddZOut(cm, ar)
	_, _, err = SignBalance(rand.Reader, h, p)
	assert.ErrorIs(err, ErrZeroBalance)

	_, _, err = SignBalance(rand.Reader, h[:8], p)
	assert.ErrorIs(err, ecc.ErrInvalidLength)

	p.ZInArs = nil
	_, _, err = SignBalance(rand.Reader, h, p)
	assert.NotNil(err)
}
