package blake

import (
	"hash"

	"github.com/dchest/blake2b"
	"github.com/dchest/blake2s"
)

const (
	Size              = 32
	Blake2bPersonSize = 16
	Blake2sPersonSize = 8
)

// NewBlake2b returns a BLAKE2b-256 hash keyed by nothing and personalized
// with personal, right-padded with zeros or truncated to 16 bytes.
func NewBlake2b(personal []byte) hash.Hash {
	h, err := blake2b.New(&blake2b.Config{
		Size:   Size,
		Person: padPersonal(personal, Blake2bPersonSize),
	})
	if err != nil {
		panic(err)
	}
	return h
}

// NewBlake2s returns a BLAKE2s-256 hash with a zero salt, personalized with
// personal padded or truncated to 8 bytes.
func NewBlake2s(personal []byte) hash.Hash {
	h, err := blake2s.New(&blake2s.Config{
		Size:   Size,
		Person: padPersonal(personal, Blake2sPersonSize),
	})
	if err != nil {
		panic(err)
	}
	return h
}

func Blake2b(personal []byte, data ...[]byte) [32]byte {
	h := NewBlake2b(personal)
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func Blake2s(personal []byte, data ...[]byte) [32]byte {
	h := NewBlake2s(personal)
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func padPersonal(personal []byte, size int) []byte {
	p := make([]byte, size)
	copy(p, personal)
	return p
}
