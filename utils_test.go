package superzk

import (
	"encoding/hex"
	"testing"

	"github.com/MixinNetwork/superzk-go/crypto/ecc"
	"github.com/stretchr/testify/assert"
)

// reverseHex decodes hex printed big endian by the reference wallet.
func reverseHex(s string) []byte {
	buf, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

func mustHex(s string) []byte {
	buf, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return buf
}

func paddedMemo(s string) []byte {
	buf := make([]byte, MemoSize)
	copy(buf, s)
	return buf
}

func mustPoint(b []byte) ecc.Point {
	p, err := ecc.PointFromBytes(b)
	if err != nil {
		panic(err)
	}
	return p
}

func testReader(t *testing.T) *TranscriptReader {
	return NewTranscriptReader(t.Name(), nil)
}

func randomFR(t *testing.T, r *TranscriptReader) ecc.FR {
	s, err := randomNonZeroFR(r)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestFlag(t *testing.T) {
	assert := assert.New(t)

	buf := []byte{0x01, 0x83}
	assert.False(IsFlagSet(buf))
	setFlag(buf)
	assert.Equal([]byte{0x01, 0xc3}, buf)
	assert.True(IsFlagSet(buf))
	clearFlag(buf)
	assert.Equal([]byte{0x01, 0x83}, buf)
	assert.False(IsFlagSet(nil))

	assert.Equal([]byte{1, 2, 3}, concat([]byte{1}, nil, []byte{2, 3}))
	assert.True(isZeroBytes(make([]byte, 32)))
	assert.False(isZeroBytes([]byte{0, 1}))
}
