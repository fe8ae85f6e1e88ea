package superzk

import (
	"github.com/MixinNetwork/superzk-go/crypto/ecc"
	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20"
)

const (
	MemoSize = 64
	InfoSize = AssetSize + MemoSize + 32
)

// Each note key encrypts exactly one note, so the nonce is fixed.
var zeroNonce = make([]byte, chacha20.NonceSize)

func xorKeyStream(key [32]byte, src []byte) ([]byte, error) {
	c, err := chacha20.NewUnauthenticatedCipher(key[:], zeroNonce)
	if err != nil {
		return nil, errors.Wrap(err, "superzk: note cipher")
	}
	dst := make([]byte, len(src))
	c.XORKeyStream(dst, src)
	return dst, nil
}

// Info is the plaintext of a confidential output: asset ‖ memo ‖ ar.
type Info struct {
	Asset *Asset
	Memo  []byte
	Ar    ecc.FR
}

func (i *Info) IsValid() bool {
	return i.Asset.IsValid() && !i.Ar.IsZero()
}

func (i *Info) Bytes() ([]byte, error) {
	memo, err := memoBytes(i.Memo)
	if err != nil {
		return nil, err
	}
	return concat(i.Asset.Bytes(), memo, scalarBytes(i.Ar)), nil
}

func EncryptInfo(key [32]byte, info *Info) ([]byte, error) {
	plain, err := info.Bytes()
	if err != nil {
		return nil, err
	}
	return xorKeyStream(key, plain)
}

func DecryptInfo(key [32]byte, einfo []byte) (*Info, error) {
	if len(einfo) != InfoSize {
		return nil, errors.Wrapf(ecc.ErrInvalidLength, "einfo of %d bytes", len(einfo))
	}
	plain, err := xorKeyStream(key, einfo)
	if err != nil {
		return nil, err
	}
	asset, err := DecodeAsset(plain[:AssetSize])
	if err != nil {
		return nil, err
	}
	return &Info{
		Asset: asset,
		Memo:  plain[AssetSize : AssetSize+MemoSize],
		Ar:    ecc.FRFromBytes(plain[AssetSize+MemoSize:]),
	}, nil
}

// CzeroInfo is the legacy plaintext: asset ‖ rsk ‖ memo.
type CzeroInfo struct {
	Asset *Asset
	Rsk   ecc.FR
	Memo  []byte
}

func (i *CzeroInfo) IsValid() bool {
	return i.Asset.IsValid() && !i.Rsk.IsZero()
}

func (i *CzeroInfo) Bytes() ([]byte, error) {
	memo, err := memoBytes(i.Memo)
	if err != nil {
		return nil, err
	}
	return concat(i.Asset.Bytes(), scalarBytes(i.Rsk), memo), nil
}

func EncryptCzeroInfo(key [32]byte, info *CzeroInfo) ([]byte, error) {
	plain, err := info.Bytes()
	if err != nil {
		return nil, err
	}
	return xorKeyStream(key, plain)
}

func DecryptCzeroInfo(key [32]byte, einfo []byte) (*CzeroInfo, error) {
	if len(einfo) != InfoSize {
		return nil, errors.Wrapf(ecc.ErrInvalidLength, "einfo of %d bytes", len(einfo))
	}
	plain, err := xorKeyStream(key, einfo)
	if err != nil {
		return nil, err
	}
	asset, err := DecodeAsset(plain[:AssetSize])
	if err != nil {
		return nil, err
	}
	return &CzeroInfo{
		Asset: asset,
		Rsk:   ecc.FRFromBytes(plain[AssetSize : AssetSize+32]),
		Memo:  plain[AssetSize+32:],
	}, nil
}

// memoBytes right pads a memo to MemoSize.
func memoBytes(memo []byte) ([]byte, error) {
	if len(memo) > MemoSize {
		return nil, errors.Wrapf(ecc.ErrInvalidLength, "memo of %d bytes", len(memo))
	}
	buf := make([]byte, MemoSize)
	copy(buf, memo)
	return buf, nil
}
