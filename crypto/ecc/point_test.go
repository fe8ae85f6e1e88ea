package ecc

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPoint(t *testing.T) Point {
	x, err := FQFromDecimal("17777552123799933955779906779655732241715742912184938656739573121738514868268")
	assert.Nil(t, err)
	y, err := FQFromDecimal("2626589144620713026669568689430873010625803728049924121243784502389097019475")
	assert.Nil(t, err)
	return NewAffinePoint(x, y)
}

func TestPointOperations(t *testing.T) {
	assert := assert.New(t)

	pt1 := testPoint(t)
	assert.True(pt1.IsValid())

	s, err := FRFromDecimal("120664075238337199387162984796177147820973068364675632137645760787230319545")
	assert.Nil(err)
	mult := pt1.Mult(s)
	assert.True(mult.IsValid())
	assert.Equal("bf6ea2f29caf321b5735c26fea9d4bfd4ce03b9a561c5133839e76c44b6063a9", mult.String())

	decoded := MustPointFromHex("bf6ea2f29caf321b5735c26fea9d4bfd4ce03b9a561c5133839e76c44b6063a9")
	assert.True(decoded.Equal(mult))

	add := pt1.Add(pt1)
	assert.True(add.IsValid())
	assert.True(add.Equal(pt1.Twice()))
	assert.True(mult.Twice().Equal(mult.Add(mult)))

	assert.True(pt1.Sub(pt1).IsZero())
	assert.True(pt1.Add(Zero()).Equal(pt1))
	assert.True(pt1.Mult(FR{}).IsZero())
	assert.True(pt1.Mult(FRFromUint64(1)).Equal(pt1))
	assert.True(pt1.Mult(FRFromUint64(3)).Equal(pt1.Twice().Add(pt1)))
}

func TestPointEncoding(t *testing.T) {
	assert := assert.New(t)

	data, _ := hex.DecodeString("78de25585f58aab09c3f9155e39affd40fef928aced65ad315d7dbfbd05b6304")
	p, err := PointFromBytes(data)
	assert.Nil(err)
	assert.True(p.IsValid())
	encoded := p.Bytes()
	assert.Equal(data, encoded[:])
	assert.Equal("78de25585f58aab09c3f9155e39affd40fef928aced65ad315d7dbfbd05b6304", hex.EncodeToString(data))

	_, err = PointFromBytes(data[:31])
	assert.ErrorIs(err, ErrInvalidLength)

	zero := Zero().Bytes()
	z, err := PointFromBytes(zero[:])
	assert.Nil(err)
	assert.True(z.IsZero())

	neg := p.Neg().Bytes()
	assert.Equal(encoded[31]^0x80, neg[31])
	assert.Equal(encoded[:31], neg[:31])
}

func TestPointDistributive(t *testing.T) {
	assert := assert.New(t)

	p, err := RandomPoint(rand.Reader)
	assert.Nil(err)
	assert.True(p.IsValid())
	assert.False(p.IsZero())

	for i := 0; i < 8; i++ {
		s1, _ := RandomFR(rand.Reader)
		s2, _ := RandomFR(rand.Reader)
		left := p.Mult(s1.Add(s2))
		right := p.Mult(s1).Add(p.Mult(s2))
		assert.True(left.Equal(right))

		b := left.Bytes()
		back, err := PointFromBytes(b[:])
		assert.Nil(err)
		assert.True(back.Equal(left))
	}

	// subgroup points vanish under the group order
	assert.True(p.MultInt(FRModulus()).IsZero())
}
