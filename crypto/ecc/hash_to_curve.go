package ecc

import (
	"encoding/hex"
	"io"

	"github.com/MixinNetwork/superzk-go/crypto/blake"
	"github.com/MixinNetwork/superzk-go/internal/logging"
	"github.com/pkg/errors"
)

const findPointAttempts = 256

var logger = logging.MustGetLogger("ecc")

// CRS is prepended to every BLAKE2b hash to curve input.
var CRS = func() [32]byte {
	b, err := hex.DecodeString("096b36a5804bfacef1691e173c366a47ff5ba84a44f26ddd7e8d9f79d5b42df0")
	if err != nil {
		panic(err)
	}
	var crs [32]byte
	for i, v := range b {
		crs[31-i] = v
	}
	return crs
}()

// FindPointB maps a 32 byte input to a point of the prime order subgroup
// using BLAKE2b personalized with up to 16 bytes.
func FindPointB(personal, data []byte) (Point, error) {
	if len(personal) > blake.Blake2bPersonSize || len(data) != 32 {
		return Point{}, ErrInvalidLength
	}
	var temp [32]byte
	copy(temp[:], data)
	for i := 0; i < findPointAttempts; i++ {
		// the counter accumulates into the last byte
		temp[31] += byte(i)
		h := blake.Blake2b(personal, CRS[:], temp[:])
		p, err := PointFromBytes(h[:])
		if err != nil {
			continue
		}
		p = p.Mult(cofactor)
		if !p.IsZero() {
			return p, nil
		}
	}
	logger.Warnf("FindPointB(%q) exhausted %d attempts", personal, findPointAttempts)
	return Point{}, errors.Wrapf(ErrPointNotFound, "personal %q", personal)
}

// FindPointS maps a 64 byte input to a point of the prime order subgroup
// using BLAKE2s personalized with up to 8 bytes.
func FindPointS(personal, data []byte) (Point, error) {
	if len(personal) > blake.Blake2sPersonSize || len(data) != 64 {
		return Point{}, ErrInvalidLength
	}
	var temp [64]byte
	copy(temp[:], data)
	for i := 0; i < findPointAttempts; i++ {
		temp[63] = byte(i)
		h := blake.Blake2s(personal, temp[:])
		h[31] &= 0x9f
		p, err := PointFromBytes(h[:])
		if err != nil || p.IsZero() || !p.IsValid() {
			continue
		}
		p = p.Mult(cofactor)
		if !p.IsZero() {
			return p, nil
		}
	}
	logger.Warnf("FindPointS(%q) exhausted %d attempts", personal, findPointAttempts)
	return Point{}, errors.Wrapf(ErrPointNotFound, "personal %q", personal)
}

// RandomPoint returns a subgroup point with an unknown discrete log.
func RandomPoint(r io.Reader) (Point, error) {
	for {
		var data [32]byte
		if _, err := io.ReadFull(r, data[:]); err != nil {
			return Point{}, errors.Wrap(err, "ecc: random point")
		}
		p, err := FindPointB([]byte("randomPT"), data[:])
		if err == nil {
			return p, nil
		}
	}
}
