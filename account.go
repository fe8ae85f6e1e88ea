package superzk

import (
	"encoding/hex"

	"github.com/MixinNetwork/superzk-go/crypto/blake"
	"github.com/MixinNetwork/superzk-go/crypto/ecc"
	"github.com/btcsuite/btcutil/base58"
	"github.com/pkg/errors"
)

// KeyScheme is one of the two address derivations. Czero is the legacy
// scheme, SuperZK is flagged in every encoding.
type KeyScheme interface {
	Name() string
	Flagged() bool

	toPK(tk *TK) *PK
	createPKr(pk *PK, r ecc.FR) *PKr
	isMyPKr(tk *TK, pkr *PKr) bool
}

var (
	Czero   KeyScheme = czeroScheme{}
	SuperZK KeyScheme = superzkScheme{}
)

// SchemeByName resolves czero or superzk.
func SchemeByName(name string) (KeyScheme, error) {
	switch name {
	case Czero.Name():
		return Czero, nil
	case SuperZK.Name():
		return SuperZK, nil
	}
	return nil, errors.Errorf("superzk: unknown scheme %q", name)
}

func schemeOf(buf []byte) KeyScheme {
	if isFlagSet(buf) {
		return SuperZK
	}
	return Czero
}

func encode(scheme KeyScheme, parts ...[]byte) []byte {
	data := concat(parts...)
	if scheme.Flagged() {
		setFlag(data)
	}
	return data
}

// decodable copies data, picks the scheme from its flag and clears it.
func decodable(data []byte, size int) ([]byte, KeyScheme, error) {
	if len(data) != size {
		return nil, nil, errors.Wrapf(ecc.ErrInvalidLength, "expected %d bytes, got %d", size, len(data))
	}
	buf := append([]byte{}, data...)
	scheme := schemeOf(buf)
	clearFlag(buf)
	return buf, scheme, nil
}

type SK struct {
	Scheme KeyScheme
	Zsk    ecc.FR
	Vsk    ecc.FR
}

func Seed2SK(scheme KeyScheme, seed []byte) (*SK, error) {
	if len(seed) != 32 {
		return nil, errors.Wrap(ErrInvalidKey, "seed must be 32 bytes")
	}
	return &SK{
		Scheme: scheme,
		Zsk:    hashToFR(ZSK_DOMAIN_TAG, seed),
		Vsk:    hashToFR(VSK_DOMAIN_TAG, seed),
	}, nil
}

func DecodeSK(data []byte) (*SK, error) {
	buf, scheme, err := decodable(data, 64)
	if err != nil {
		return nil, err
	}
	return &SK{
		Scheme: scheme,
		Zsk:    ecc.FRFromBytes(buf[:32]),
		Vsk:    ecc.FRFromBytes(buf[32:]),
	}, nil
}

func (sk *SK) IsValid() bool {
	return sk != nil && !sk.Zsk.IsZero() && !sk.Vsk.IsZero()
}

func (sk *SK) ToTK() *TK {
	return &TK{
		Scheme: sk.Scheme,
		Zpk:    AccountBase().Mult(sk.Zsk),
		Vsk:    sk.Vsk,
	}
}

func (sk *SK) Bytes() []byte {
	return encode(sk.Scheme, scalarBytes(sk.Zsk), scalarBytes(sk.Vsk))
}

func (sk *SK) String() string {
	return hex.EncodeToString(sk.Bytes())
}

// TK is the tracking key: it recognizes and decrypts outputs but cannot
// spend them.
type TK struct {
	Scheme KeyScheme
	Zpk    ecc.Point
	Vsk    ecc.FR
}

func DecodeTK(data []byte) (*TK, error) {
	buf, scheme, err := decodable(data, 64)
	if err != nil {
		return nil, err
	}
	zpk, err := ecc.PointFromBytes(buf[:32])
	if err != nil {
		return nil, errors.Wrap(err, "superzk: tracking key")
	}
	return &TK{Scheme: scheme, Zpk: zpk, Vsk: ecc.FRFromBytes(buf[32:])}, nil
}

func ParseTK(s string) (*TK, error) {
	return DecodeTK(base58.Decode(s))
}

func (tk *TK) IsValid() bool {
	return tk != nil && tk.Zpk.IsValid() && !tk.Vsk.IsZero()
}

// WithScheme views the same key material under another scheme.
func (tk *TK) WithScheme(scheme KeyScheme) *TK {
	return &TK{Scheme: scheme, Zpk: tk.Zpk, Vsk: tk.Vsk}
}

func (tk *TK) ToPK() *PK {
	return tk.Scheme.toPK(tk)
}

// IsMyPKr never fails: malformed or foreign scheme addresses are simply
// not ours.
func (tk *TK) IsMyPKr(pkr *PKr) bool {
	if pkr == nil || pkr.Scheme != tk.Scheme {
		return false
	}
	if !tk.IsValid() || !pkr.IsValid() {
		return false
	}
	return tk.Scheme.isMyPKr(tk, pkr)
}

func (tk *TK) Bytes() []byte {
	return encode(tk.Scheme, pointBytes(tk.Zpk), scalarBytes(tk.Vsk))
}

func (tk *TK) String() string {
	return base58.Encode(tk.Bytes())
}

type PK struct {
	Scheme KeyScheme
	Zpk    ecc.Point
	Vpk    ecc.Point
}

func DecodePK(data []byte) (*PK, error) {
	buf, scheme, err := decodable(data, 64)
	if err != nil {
		return nil, err
	}
	zpk, err := ecc.PointFromBytes(buf[:32])
	if err != nil {
		return nil, errors.Wrap(err, "superzk: public key zpk")
	}
	vpk, err := ecc.PointFromBytes(buf[32:])
	if err != nil {
		return nil, errors.Wrap(err, "superzk: public key vpk")
	}
	return &PK{Scheme: scheme, Zpk: zpk, Vpk: vpk}, nil
}

func ParsePK(s string) (*PK, error) {
	return DecodePK(base58.Decode(s))
}

func (pk *PK) IsValid() bool {
	return pk != nil && pk.Zpk.IsValid() && pk.Vpk.IsValid()
}

// CreatePKr derives the one time address for randomness r.
func (pk *PK) CreatePKr(r ecc.FR) *PKr {
	return pk.Scheme.createPKr(pk, r)
}

func (pk *PK) Bytes() []byte {
	return encode(pk.Scheme, pointBytes(pk.Zpk), pointBytes(pk.Vpk))
}

func (pk *PK) String() string {
	return base58.Encode(pk.Bytes())
}

// PKr is a rerandomized one time address.
type PKr struct {
	Scheme KeyScheme
	ZPKr   ecc.Point
	VPKr   ecc.Point
	BASEr  ecc.Point
}

func DecodePKr(data []byte) (*PKr, error) {
	buf, scheme, err := decodable(data, 96)
	if err != nil {
		return nil, err
	}
	points := make([]ecc.Point, 3)
	for i := range points {
		p, err := ecc.PointFromBytes(buf[i*32 : i*32+32])
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidAddress, "point %d: %v", i, err)
		}
		points[i] = p
	}
	return &PKr{Scheme: scheme, ZPKr: points[0], VPKr: points[1], BASEr: points[2]}, nil
}

func DecodePKrHex(s string) (*PKr, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "superzk: address hex")
	}
	return DecodePKr(data)
}

func (pkr *PKr) IsValid() bool {
	return pkr != nil && pkr.ZPKr.IsValid() && pkr.VPKr.IsValid() && pkr.BASEr.IsValid()
}

func (pkr *PKr) Bytes() []byte {
	return encode(pkr.Scheme, pointBytes(pkr.ZPKr), pointBytes(pkr.VPKr), pointBytes(pkr.BASEr))
}

func (pkr *PKr) String() string {
	return hex.EncodeToString(pkr.Bytes())
}

func kdf(tag string, secret ecc.Point) [32]byte {
	return blake.Blake2b([]byte(tag), pointBytes(secret))
}
