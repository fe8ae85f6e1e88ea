package ecc

import (
	"encoding/hex"
	"math/big"

	"github.com/pkg/errors"
)

var (
	eccA = FQFromUint64(168700)
	eccD = FQFromUint64(168696)

	fqOne = FQFromUint64(1)
	fqTwo = FQFromUint64(2)

	cofactor = FRFromUint64(8)
)

// Point is a projective point (X:Y:Z) on the twisted Edwards curve
// a·x² + y² = 1 + d·x²·y². The zero value is not a valid point, use Zero.
type Point struct {
	X, Y, Z FQ
}

// Multiplier is a fixed or variable base that can be multiplied by a scalar.
type Multiplier interface {
	Mult(s FR) Point
}

func Zero() Point {
	return Point{Y: fqOne, Z: fqOne}
}

func NewAffinePoint(x, y FQ) Point {
	return Point{X: x, Y: y, Z: fqOne}
}

func (p Point) Add(o Point) Point {
	x1, y1, z1 := p.X, p.Y, p.Z
	x2, y2, z2 := o.X, o.Y, o.Z

	c := x1.Mul(x2)
	d := y1.Mul(y2)
	e := eccD.Mul(c).Mul(d)
	h := x1.Add(y1).Mul(x2.Add(y2)).Sub(c).Sub(d)
	k := d.Sub(eccA.Mul(c))

	if z1.Equal(fqOne) && z2.Equal(fqOne) {
		return Point{
			X: fqOne.Sub(e).Mul(h),
			Y: fqOne.Add(e).Mul(k),
			Z: fqOne.Sub(e.Square()),
		}
	}

	a := z1
	if !z2.Equal(fqOne) {
		a = z1.Mul(z2)
	}
	b := a.Square()
	f := b.Sub(e)
	g := b.Add(e)
	return Point{
		X: a.Mul(f).Mul(h),
		Y: a.Mul(g).Mul(k),
		Z: f.Mul(g),
	}
}

func (p Point) Twice() Point {
	b := p.X.Add(p.Y).Square()
	c := p.X.Square()
	d := p.Y.Square()
	e := eccA.Mul(c)
	f := e.Add(d)
	bcd := b.Sub(c).Sub(d)

	if p.Z.Equal(fqOne) {
		return Point{
			X: bcd.Mul(f.Sub(fqTwo)),
			Y: f.Mul(e.Sub(d)),
			Z: f.Square().Sub(f.Mul(fqTwo)),
		}
	}
	j := f.Sub(p.Z.Square().Mul(fqTwo))
	return Point{
		X: bcd.Mul(j),
		Y: f.Mul(e.Sub(d)),
		Z: f.Mul(j),
	}
}

func (p Point) Neg() Point {
	return Point{X: p.X.Neg(), Y: p.Y, Z: p.Z}
}

func (p Point) Sub(o Point) Point {
	return p.Add(o.Neg())
}

func (p Point) Mult(s FR) Point {
	return p.MultInt(s.int())
}

// MultInt multiplies by a non-negative integer that is not reduced modulo
// the group order.
func (p Point) MultInt(k *big.Int) Point {
	acc := Zero()
	n := k.BitLen()
	for i := 0; i < n; i++ {
		if k.Bit(i) == 1 {
			acc = acc.Add(p)
		}
		if i+1 < n {
			p = p.Twice()
		}
	}
	return acc
}

func (p Point) IsValid() bool {
	xx := p.X.Square()
	yy := p.Y.Square()
	zz := p.Z.Square()
	left := zz.Mul(eccA.Mul(xx).Add(yy))
	right := zz.Square().Add(eccD.Mul(xx).Mul(yy))
	return left.Equal(right)
}

func (p Point) Equal(o Point) bool {
	return p.X.Mul(o.Z).Equal(p.Z.Mul(o.X)) && p.Y.Mul(o.Z).Equal(p.Z.Mul(o.Y))
}

func (p Point) IsZero() bool {
	return p.Equal(Zero())
}

// Affine normalizes the point to Z = 1.
func (p Point) Affine() (Point, error) {
	inv, err := p.Z.Invert()
	if err != nil {
		return Point{}, errors.Wrap(err, "ecc: affine")
	}
	return Point{X: p.X.Mul(inv), Y: p.Y.Mul(inv), Z: fqOne}, nil
}

// Bytes encodes y little endian with the parity of x in the top bit.
func (p Point) Bytes() [32]byte {
	a, err := p.Affine()
	if err != nil {
		return [32]byte{}
	}
	buf := a.Y.Bytes()
	if a.X.IsOdd() {
		buf[31] |= 0x80
	}
	return buf
}

func (p Point) String() string {
	b := p.Bytes()
	return hex.EncodeToString(b[:])
}

// PointFromBytes decodes a compressed point. The y coordinate is reduced
// modulo q, and the returned point is on the curve but not necessarily in
// the prime order subgroup.
func PointFromBytes(data []byte) (Point, error) {
	if len(data) != 32 {
		return Point{}, ErrInvalidLength
	}
	var buf [32]byte
	copy(buf[:], data)
	sign := buf[31]>>7 == 1
	buf[31] &= 0x7f

	v := FQFromBytes(buf[:])
	vv := v.Square()
	den, err := eccD.Mul(vv).Sub(eccA).Invert()
	if err != nil {
		return Point{}, ErrNotOnCurve
	}
	u2 := vv.Sub(fqOne).Mul(den)
	u, ok := u2.Sqrt()
	if !ok {
		return Point{}, ErrNotOnCurve
	}
	if u.IsOdd() != sign {
		u = u.Neg()
	}
	return NewAffinePoint(u, v), nil
}

func PointFromHex(s string) (Point, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return Point{}, errors.Wrap(err, "ecc: point hex")
	}
	return PointFromBytes(data)
}

func MustPointFromHex(s string) Point {
	p, err := PointFromHex(s)
	if err != nil {
		panic(err)
	}
	return p
}
