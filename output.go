package superzk

import (
	"io"

	"github.com/MixinNetwork/superzk-go/crypto/ecc"
	"github.com/pkg/errors"
)

func randomNonZeroFR(r io.Reader) (ecc.FR, error) {
	for {
		s, err := ecc.RandomFR(r)
		if err != nil {
			return ecc.FR{}, errors.Wrap(err, "superzk: randomness")
		}
		if !s.IsZero() {
			return s, nil
		}
	}
}

// CreateOutC builds a confidential output to pkr and returns the blinding
// factor the balance proof needs.
func CreateOutC(r io.Reader, pkr *PKr, asset *Asset, memo []byte) (*OutC, ecc.FR, error) {
	if !asset.IsValid() {
		return nil, ecc.FR{}, ErrInvalidAsset
	}
	if len(memo) > MemoSize {
		return nil, ecc.FR{}, errors.Wrapf(ecc.ErrInvalidLength, "memo of %d bytes", len(memo))
	}
	ar, err := randomNonZeroFR(r)
	if err != nil {
		return nil, ecc.FR{}, err
	}
	rsk, err := randomNonZeroFR(r)
	if err != nil {
		return nil, ecc.FR{}, err
	}
	key, rpk, err := GenPKrKey(pkr, rsk)
	if err != nil {
		return nil, ecc.FR{}, err
	}
	cm, err := asset.CM(ar)
	if err != nil {
		return nil, ecc.FR{}, err
	}
	einfo, err := EncryptInfo(key, &Info{Asset: asset, Memo: memo, Ar: ar})
	if err != nil {
		return nil, ecc.FR{}, err
	}
	return &OutC{PKr: pkr, AssetCM: cm, RPK: pointBytes(rpk), EInfo: einfo}, ar, nil
}

// CreateOutZ builds a legacy confidential output to a czero address.
func CreateOutZ(r io.Reader, pkr *PKr, asset *Asset, memo []byte) (*OutZ, error) {
	padded, err := memoBytes(memo)
	if err != nil {
		return nil, err
	}
	rsk, err := randomNonZeroFR(r)
	if err != nil {
		return nil, err
	}
	key, rpk, err := CzeroGenKey(pkr, rsk)
	if err != nil {
		return nil, err
	}
	info := &CzeroInfo{Asset: asset, Rsk: rsk, Memo: padded}
	cm, err := CzeroOutCM(asset, info.Memo, rsk, pkr)
	if err != nil {
		return nil, err
	}
	einfo, err := EncryptCzeroInfo(key, info)
	if err != nil {
		return nil, err
	}
	return &OutZ{PKr: pkr, OutCM: pointBytes(cm), RPK: pointBytes(rpk), EInfo: einfo}, nil
}

// SpendOutC opens a confidential output owned by tk and prepares its
// confidential input.
func SpendOutC(r io.Reader, tk *TK, rootCM ecc.Point, out *OutC) (*InC, *Info, error) {
	key, err := FetchRPKKey(out.PKr, tk, out.RPK)
	if err != nil {
		return nil, nil, err
	}
	info, err := ConfirmOutC(key, out.EInfo, out.AssetCM)
	if err != nil {
		return nil, nil, err
	}
	nul, err := Nil(tk, rootCM, out.PKr)
	if err != nil {
		return nil, nil, err
	}
	ar, err := randomNonZeroFR(r)
	if err != nil {
		return nil, nil, err
	}
	a, err := randomNonZeroFR(r)
	if err != nil {
		return nil, nil, err
	}
	cm, err := info.Asset.CM(ar)
	if err != nil {
		return nil, nil, err
	}
	in := &InC{Nil: nul, AssetCM: cm, ZPKa: ZPKa(out.PKr, a), Ar: ar, A: a}
	return in, info, nil
}
