package ecc

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

var (
	fqModulus, _ = new(big.Int).SetString("21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)
	frModulus, _ = new(big.Int).SetString("2736030358979909402780800718157159386076813972158567259200215660948447373041", 10)

	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
)

type modulus interface {
	Modulus() *big.Int
}

type fqField struct{}

func (fqField) Modulus() *big.Int { return fqModulus }

type frField struct{}

func (frField) Modulus() *big.Int { return frModulus }

// Element is an immutable residue modulo the prime selected by M. The zero
// value is the field zero.
type Element[M modulus] struct {
	x *big.Int
}

type (
	// FQ is the base field of the curve.
	FQ = Element[fqField]
	// FR is the scalar field of the prime order subgroup.
	FR = Element[frField]
)

func FQModulus() *big.Int { return new(big.Int).Set(fqModulus) }
func FRModulus() *big.Int { return new(big.Int).Set(frModulus) }

func NewFQ(x *big.Int) FQ { return newElement[fqField](x) }
func NewFR(x *big.Int) FR { return newElement[frField](x) }

func FQFromUint64(n uint64) FQ { return NewFQ(new(big.Int).SetUint64(n)) }
func FRFromUint64(n uint64) FR { return NewFR(new(big.Int).SetUint64(n)) }

// FQFromBytes reads little endian bytes and reduces them modulo q.
func FQFromBytes(b []byte) FQ { return NewFQ(leToInt(b)) }
func FRFromBytes(b []byte) FR { return NewFR(leToInt(b)) }

func FQFromDecimal(s string) (FQ, error) {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return FQ{}, errors.Errorf("ecc: invalid decimal %q", s)
	}
	return NewFQ(x), nil
}

func FRFromDecimal(s string) (FR, error) {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return FR{}, errors.Errorf("ecc: invalid decimal %q", s)
	}
	return NewFR(x), nil
}

// RandomFR draws 32 bytes from r and reduces them into the scalar field.
func RandomFR(r io.Reader) (FR, error) {
	var buf [32]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return FR{}, errors.Wrap(err, "ecc: random scalar")
	}
	return FRFromBytes(buf[:]), nil
}

func newElement[M modulus](x *big.Int) Element[M] {
	var m M
	r := new(big.Int).Mod(x, m.Modulus())
	return Element[M]{x: r}
}

func (e Element[M]) modulus() *big.Int {
	var m M
	return m.Modulus()
}

func (e Element[M]) int() *big.Int {
	if e.x == nil {
		return bigZero
	}
	return e.x
}

func (e Element[M]) Add(o Element[M]) Element[M] {
	return newElement[M](new(big.Int).Add(e.int(), o.int()))
}

func (e Element[M]) Sub(o Element[M]) Element[M] {
	return newElement[M](new(big.Int).Sub(e.int(), o.int()))
}

func (e Element[M]) Mul(o Element[M]) Element[M] {
	return newElement[M](new(big.Int).Mul(e.int(), o.int()))
}

func (e Element[M]) Square() Element[M] {
	return e.Mul(e)
}

func (e Element[M]) Neg() Element[M] {
	return newElement[M](new(big.Int).Neg(e.int()))
}

func (e Element[M]) Exp(k *big.Int) Element[M] {
	return Element[M]{x: new(big.Int).Exp(e.int(), k, e.modulus())}
}

func (e Element[M]) Invert() (Element[M], error) {
	if e.IsZero() {
		return Element[M]{}, ErrZeroInverse
	}
	return Element[M]{x: new(big.Int).ModInverse(e.int(), e.modulus())}, nil
}

// Div multiplies by the modular inverse of o.
func (e Element[M]) Div(o Element[M]) (Element[M], error) {
	inv, err := o.Invert()
	if err != nil {
		return Element[M]{}, err
	}
	return e.Mul(inv), nil
}

// Sqrt returns a square root of e, or false when e is not a quadratic
// residue. Which of the two roots is returned is unspecified.
func (e Element[M]) Sqrt() (Element[M], bool) {
	if e.IsZero() {
		return Element[M]{}, true
	}
	q := e.modulus()
	x := e.int()

	if q.Bit(1) == 1 {
		k := new(big.Int).Rsh(q, 2)
		k.Add(k, bigOne)
		z := e.Exp(k)
		if !z.Square().Equal(e) {
			return Element[M]{}, false
		}
		return z, true
	}

	qMinusOne := new(big.Int).Sub(q, bigOne)
	legendre := new(big.Int).Rsh(qMinusOne, 1)
	if new(big.Int).Exp(x, legendre, q).Cmp(bigOne) != 0 {
		return Element[M]{}, false
	}

	k := new(big.Int).Rsh(qMinusOne, 2)
	k.Lsh(k, 1).Add(k, bigOne)
	fourQ := new(big.Int).Lsh(x, 2)
	fourQ.Mod(fourQ, q)

	for {
		var p *big.Int
		for {
			r, err := rand.Int(rand.Reader, q)
			if err != nil {
				panic(err)
			}
			d := new(big.Int).Mul(r, r)
			d.Sub(d, fourQ)
			if new(big.Int).Exp(d.Mod(d, q), legendre, q).Cmp(qMinusOne) == 0 {
				p = r
				break
			}
		}

		u, v := lucasSequence(q, p, x, k)
		vv := new(big.Int).Mul(v, v)
		if vv.Mod(vv, q).Cmp(fourQ) == 0 {
			if v.Bit(0) == 1 {
				v.Add(v, q)
			}
			v.Rsh(v, 1)
			return newElement[M](v), true
		}
		if u.Cmp(bigOne) != 0 && u.Cmp(qMinusOne) != 0 {
			return Element[M]{}, false
		}
	}
}

// lucasSequence computes U_k and V_k of the Lucas sequence with parameters
// (P, Q) modulo p.
func lucasSequence(p, P, Q, k *big.Int) (*big.Int, *big.Int) {
	n := k.BitLen()
	s := int(k.TrailingZeroBits())

	uh := big.NewInt(1)
	vl := big.NewInt(2)
	vh := new(big.Int).Set(P)
	ql := big.NewInt(1)
	qh := big.NewInt(1)

	t := new(big.Int)
	for j := n - 1; j >= s+1; j-- {
		ql.Mul(ql, qh).Mod(ql, p)
		if k.Bit(j) == 1 {
			qh.Mul(ql, Q).Mod(qh, p)
			uh.Mul(uh, vh).Mod(uh, p)
			vl.Mul(vh, vl).Sub(vl, t.Mul(P, ql)).Mod(vl, p)
			vh.Mul(vh, vh).Sub(vh, t.Lsh(qh, 1)).Mod(vh, p)
		} else {
			qh.Set(ql)
			uh.Mul(uh, vl).Sub(uh, ql).Mod(uh, p)
			vh.Mul(vh, vl).Sub(vh, t.Mul(P, ql)).Mod(vh, p)
			vl.Mul(vl, vl).Sub(vl, t.Lsh(ql, 1)).Mod(vl, p)
		}
	}

	ql.Mul(ql, qh).Mod(ql, p)
	qh.Mul(ql, Q).Mod(qh, p)
	uh.Mul(uh, vl).Sub(uh, ql).Mod(uh, p)
	vl.Mul(vh, vl).Sub(vl, t.Mul(P, ql)).Mod(vl, p)
	ql.Mul(ql, qh).Mod(ql, p)

	for j := 1; j <= s; j++ {
		uh.Mul(uh, vl).Mod(uh, p)
		vl.Mul(vl, vl).Sub(vl, t.Lsh(ql, 1)).Mod(vl, p)
		ql.Mul(ql, ql).Mod(ql, p)
	}
	return uh, vl
}

func (e Element[M]) IsZero() bool {
	return e.int().Sign() == 0
}

func (e Element[M]) IsOdd() bool {
	return e.int().Bit(0) == 1
}

func (e Element[M]) Equal(o Element[M]) bool {
	return e.int().Cmp(o.int()) == 0
}

func (e Element[M]) BigInt() *big.Int {
	return new(big.Int).Set(e.int())
}

// Bytes is the 32 byte little endian encoding.
func (e Element[M]) Bytes() [32]byte {
	var out [32]byte
	b := e.int().Bytes()
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

func (e Element[M]) String() string {
	b := e.Bytes()
	return hex.EncodeToString(b[:])
}

func leToInt(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(be)
}
