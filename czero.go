package superzk

import (
	"bytes"
	"io"

	"github.com/MixinNetwork/superzk-go/crypto/blake"
	"github.com/MixinNetwork/superzk-go/crypto/ecc"
	"github.com/pkg/errors"
)

type czeroScheme struct{}

func (czeroScheme) Name() string  { return "czero" }
func (czeroScheme) Flagged() bool { return false }

func (czeroScheme) toPK(tk *TK) *PK {
	return &PK{Scheme: Czero, Zpk: tk.Zpk, Vpk: tk.Zpk.Mult(tk.Vsk)}
}

func (czeroScheme) createPKr(pk *PK, r ecc.FR) *PKr {
	return &PKr{
		Scheme: Czero,
		ZPKr:   pk.Zpk.Mult(r).Add(pk.Zpk),
		VPKr:   pk.Vpk.Mult(r).Add(pk.Vpk),
		BASEr:  AccountBase().Mult(r),
	}
}

// (ZPKr - zpk)·vsk == VPKr - zpk·vsk
func (czeroScheme) isMyPKr(tk *TK, pkr *PKr) bool {
	left := pkr.ZPKr.Sub(tk.Zpk).Mult(tk.Vsk)
	right := pkr.VPKr.Sub(tk.Zpk.Mult(tk.Vsk))
	return left.Equal(right)
}

// czeroBase is BASEr + G, the base under which VPKr = base·(vsk·zsk).
func czeroBase(pkr *PKr) ecc.Point {
	return pkr.BASEr.Add(AccountBase().Base(0))
}

func czeroSecret(sk *SK) ecc.FR {
	return sk.Vsk.Mul(sk.Zsk)
}

func czeroUsable(pkr *PKr, rootCM ecc.Point) error {
	if !pkr.IsValid() {
		return ErrInvalidAddress
	}
	return czeroRootUsable(rootCM)
}

func czeroRootUsable(rootCM ecc.Point) error {
	if !rootCM.IsValid() {
		return errors.Wrap(ErrInvalidPoint, "root commitment")
	}
	return nil
}

// CzeroNil is the legacy nullifier rootCM·(vsk·zsk).
func CzeroNil(sk *SK, rootCM ecc.Point) (ecc.Point, error) {
	if !sk.IsValid() {
		return ecc.Point{}, ErrInvalidKey
	}
	if err := czeroRootUsable(rootCM); err != nil {
		return ecc.Point{}, err
	}
	return rootCM.Mult(czeroSecret(sk)), nil
}

// CzeroTrace lets the tracking key holder recognize a spend of rootCM.
func CzeroTrace(tk *TK, rootCM ecc.Point) (ecc.Point, error) {
	if !tk.IsValid() {
		return ecc.Point{}, ErrInvalidKey
	}
	if err := czeroRootUsable(rootCM); err != nil {
		return ecc.Point{}, err
	}
	return rootCM.Mult(tk.Vsk), nil
}

func CzeroSignNil(r io.Reader, h []byte, sk *SK, pkr *PKr, rootCM ecc.Point) ([]byte, error) {
	if len(h) != 32 {
		return nil, errors.Wrap(ecc.ErrInvalidLength, "message hash")
	}
	if !sk.IsValid() {
		return nil, ErrInvalidKey
	}
	if err := czeroUsable(pkr, rootCM); err != nil {
		return nil, err
	}
	return ecc.SignN(r, h, czeroSecret(sk), czeroBase(pkr), rootCM)
}

func CzeroVerifyNil(h, sig []byte, nul ecc.Point, pkr *PKr, rootCM ecc.Point) bool {
	if len(h) != 32 || czeroUsable(pkr, rootCM) != nil {
		return false
	}
	return ecc.VerifyN(h, sig, pkr.VPKr, nul, czeroBase(pkr), rootCM)
}

func CzeroSignByPKr(r io.Reader, h []byte, sk *SK, pkr *PKr) ([]byte, error) {
	if !sk.IsValid() {
		return nil, ErrInvalidKey
	}
	if !pkr.IsValid() {
		return nil, ErrInvalidAddress
	}
	return ecc.Sign(r, h, czeroSecret(sk), czeroBase(pkr))
}

func CzeroVerifyByPKr(h, sig []byte, pkr *PKr) bool {
	if len(h) != 32 || !pkr.IsValid() {
		return false
	}
	return ecc.Verify(h, sig, pkr.VPKr, czeroBase(pkr))
}

// CzeroGenKey is the sender side of CzeroFetchKey: it returns the note key
// and the public rpk = ZPKr·rsk published with the output.
func CzeroGenKey(pkr *PKr, rsk ecc.FR) ([32]byte, ecc.Point, error) {
	if !pkr.IsValid() || rsk.IsZero() {
		return [32]byte{}, ecc.Point{}, ErrInvalidAddress
	}
	return kdf(CZERO_KDF_DOMAIN_TAG, pkr.VPKr.Mult(rsk)), pkr.ZPKr.Mult(rsk), nil
}

func CzeroFetchKey(tk *TK, rpk []byte) ([32]byte, error) {
	if len(rpk) != 32 {
		return [32]byte{}, errors.Wrap(ecc.ErrInvalidLength, "rpk")
	}
	if !tk.IsValid() {
		return [32]byte{}, ErrInvalidKey
	}
	buf := clearFlag(append([]byte{}, rpk...))
	p, err := ecc.PointFromBytes(buf)
	if err != nil {
		return [32]byte{}, err
	}
	return kdf(CZERO_KDF_DOMAIN_TAG, p.Mult(tk.Vsk)), nil
}

// CzeroOutCM commits to asset_cc ‖ memo ‖ VPKr ‖ BASEr ‖ rsk.
func CzeroOutCM(asset *Asset, memo []byte, rsk ecc.FR, pkr *PKr) (ecc.Point, error) {
	if len(memo) != MemoSize {
		return ecc.Point{}, errors.Wrap(ecc.ErrInvalidLength, "memo")
	}
	if !asset.IsValid() {
		return ecc.Point{}, ErrInvalidAsset
	}
	if !pkr.IsValid() {
		return ecc.Point{}, ErrInvalidAddress
	}
	cc, err := asset.CzeroCC()
	if err != nil {
		return ecc.Point{}, err
	}
	blob := concat(pointBytes(cc), memo, pointBytes(pkr.VPKr), pointBytes(pkr.BASEr), scalarBytes(rsk))
	return OutCmBase().MultBits(ecc.BitBufferOf(blob))
}

// CzeroConfirmOut decrypts a legacy confidential output and checks it
// against the published commitment.
func CzeroConfirmOut(key [32]byte, einfo []byte, pkr *PKr, outCM []byte) (*CzeroInfo, error) {
	info, err := DecryptCzeroInfo(key, einfo)
	if err != nil {
		return nil, err
	}
	cm, err := CzeroOutCM(info.Asset, info.Memo, info.Rsk, pkr)
	if err != nil {
		return nil, errors.Wrap(ErrNotMine, err.Error())
	}
	b := cm.Bytes()
	if !bytes.Equal(b[:], outCM) {
		return nil, ErrNotMine
	}
	return info, nil
}

func czeroCurrencyBase(currency [32]byte) (ecc.Point, error) {
	return assetBase(CZERO_CURRENCY_DOMAIN_TAG, currency[:], ecc.FindPointB)
}

func czeroTicketBase(category, ticket [32]byte) (ecc.Point, error) {
	h := blake.Blake2b([]byte(CZERO_TICKET_HASH_DOMAIN_TAG), category[:], ticket[:])
	return assetBase(CZERO_TICKET_DOMAIN_TAG, h[:], ecc.FindPointB)
}
