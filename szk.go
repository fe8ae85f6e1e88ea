package superzk

import (
	"io"

	"github.com/MixinNetwork/superzk-go/crypto/ecc"
	"github.com/pkg/errors"
)

type superzkScheme struct{}

func (superzkScheme) Name() string  { return "superzk" }
func (superzkScheme) Flagged() bool { return true }

func (superzkScheme) toPK(tk *TK) *PK {
	return &PK{Scheme: SuperZK, Zpk: tk.Zpk, Vpk: AccountBase().Mult(tk.Vsk)}
}

func hrZ(rvpk ecc.Point) ecc.FR {
	return hashToFR(PKR_HR_Z_DOMAIN_TAG, pointBytes(rvpk))
}

func hrV(rvpk ecc.Point) ecc.FR {
	return hashToFR(PKR_HR_V_DOMAIN_TAG, pointBytes(rvpk))
}

func (superzkScheme) createPKr(pk *PK, r ecc.FR) *PKr {
	rvpk := pk.Vpk.Mult(r)
	G := AccountBase()
	return &PKr{
		Scheme: SuperZK,
		ZPKr:   G.Mult(hrZ(rvpk)).Add(pk.Zpk),
		VPKr:   G.Mult(hrV(rvpk)).Add(pk.Vpk),
		BASEr:  G.Mult(r),
	}
}

func (superzkScheme) isMyPKr(tk *TK, pkr *PKr) bool {
	rvpk := pkr.BASEr.Mult(tk.Vsk)
	G := AccountBase()
	vpk := G.Mult(tk.Vsk)
	if !G.Mult(hrV(rvpk)).Add(vpk).Equal(pkr.VPKr) {
		return false
	}
	return G.Mult(hrZ(rvpk)).Add(tk.Zpk).Equal(pkr.ZPKr)
}

// vskr is the view secret of one address: VPKr = G·vskr.
func vskr(vsk ecc.FR, pkr *PKr) ecc.FR {
	return hrV(pkr.BASEr.Mult(vsk)).Add(vsk)
}

// zskr is the spend secret of one address: ZPKr = G·zskr.
func zskr(sk *SK, pkr *PKr) ecc.FR {
	return hrZ(pkr.BASEr.Mult(sk.Vsk)).Add(sk.Zsk)
}

func superzkUsable(pkr *PKr) error {
	if pkr == nil || !pkr.IsValid() {
		return ErrInvalidAddress
	}
	return nil
}

func SignPKr(r io.Reader, h []byte, sk *SK, pkr *PKr) ([]byte, error) {
	if !sk.IsValid() {
		return nil, ErrInvalidKey
	}
	if err := superzkUsable(pkr); err != nil {
		return nil, err
	}
	return ecc.Sign(r, h, zskr(sk, pkr), AccountBase())
}

func VerifyPKr(h, sig []byte, pkr *PKr) bool {
	if superzkUsable(pkr) != nil {
		return false
	}
	return ecc.Verify(h, sig, pkr.ZPKr, AccountBase())
}

// Nil is the flagged encoding of rootCM·vskr.
func Nil(tk *TK, rootCM ecc.Point, pkr *PKr) ([32]byte, error) {
	if !tk.IsValid() {
		return [32]byte{}, ErrInvalidKey
	}
	if err := superzkUsable(pkr); err != nil {
		return [32]byte{}, err
	}
	if !rootCM.IsValid() {
		return [32]byte{}, errors.Wrap(ErrInvalidPoint, "root commitment")
	}
	nul := rootCM.Mult(vskr(tk.Vsk, pkr)).Bytes()
	setFlag(nul[:])
	return nul, nil
}

func SignNil(r io.Reader, h []byte, tk *TK, rootCM ecc.Point, pkr *PKr) ([]byte, error) {
	if !tk.IsValid() {
		return nil, ErrInvalidKey
	}
	if err := superzkUsable(pkr); err != nil {
		return nil, err
	}
	return ecc.SignN(r, h, vskr(tk.Vsk, pkr), AccountBase(), rootCM)
}

func VerifyNil(h, sig []byte, nul [32]byte, rootCM ecc.Point, pkr *PKr) bool {
	if superzkUsable(pkr) != nil || !rootCM.IsValid() {
		return false
	}
	p, err := ecc.PointFromBytes(clearFlag(nul[:]))
	if err != nil {
		return false
	}
	return ecc.VerifyN(h, sig, pkr.VPKr, p, AccountBase(), rootCM)
}

// ZPKa rerandomizes ZPKr for an input so the spent address stays hidden.
func ZPKa(pkr *PKr, a ecc.FR) ecc.Point {
	return pkr.ZPKr.Mult(a)
}

func SignZPKa(r io.Reader, h []byte, sk *SK, a ecc.FR, pkr *PKr) ([]byte, error) {
	if !sk.IsValid() {
		return nil, ErrInvalidKey
	}
	if err := superzkUsable(pkr); err != nil {
		return nil, err
	}
	return ecc.Sign(r, h, a.Mul(zskr(sk, pkr)), AccountBase())
}

func VerifyZPKa(h, sig []byte, zpka ecc.Point) bool {
	return ecc.Verify(h, sig, zpka, AccountBase())
}

// GenPKrKey returns the note key for pkr and the rpk to publish with the
// output.
func GenPKrKey(pkr *PKr, rsk ecc.FR) ([32]byte, ecc.Point, error) {
	if err := superzkUsable(pkr); err != nil {
		return [32]byte{}, ecc.Point{}, err
	}
	if rsk.IsZero() {
		return [32]byte{}, ecc.Point{}, errors.Wrap(ErrInvalidKey, "zero rsk")
	}
	return kdf(PKR_KDF_DOMAIN_TAG, pkr.VPKr.Mult(rsk)), AccountBase().Mult(rsk), nil
}

func FetchRPKKey(pkr *PKr, tk *TK, rpk []byte) ([32]byte, error) {
	if err := superzkUsable(pkr); err != nil {
		return [32]byte{}, err
	}
	p, err := ecc.PointFromBytes(rpk)
	if err != nil {
		return [32]byte{}, err
	}
	return kdf(PKR_KDF_DOMAIN_TAG, p.Mult(vskr(tk.Vsk, pkr))), nil
}

// ConfirmOutC decrypts a confidential output and checks its asset
// commitment.
func ConfirmOutC(key [32]byte, einfo []byte, assetCM ecc.Point) (*Info, error) {
	info, err := DecryptInfo(key, einfo)
	if err != nil {
		return nil, err
	}
	cm, err := info.Asset.CM(info.Ar)
	if err != nil {
		return nil, errors.Wrap(ErrNotMine, err.Error())
	}
	if !cm.Equal(assetCM) {
		return nil, ErrNotMine
	}
	return info, nil
}
