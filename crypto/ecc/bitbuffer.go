package ecc

import "math/big"

var tailMasks = [8]byte{0xff, 0x01, 0x03, 0x07, 0x0f, 0x1f, 0x3f, 0x7f}

// BitBuffer is a read only window of bits over a byte slice, least
// significant bit first. Bits past the end of the source read as zero.
type BitBuffer struct {
	data      []byte
	rightBits int
	bits      int
}

func NewBitBuffer(buf []byte, start, bits int) BitBuffer {
	if bits <= 0 {
		return BitBuffer{}
	}
	end := start + bits
	from := start / 8
	to := (end-1)/8 + 1

	data := make([]byte, to-from)
	if from < len(buf) {
		copy(data, buf[from:])
	}
	data[len(data)-1] &= tailMasks[end%8]

	return BitBuffer{
		data:      data,
		rightBits: start % 8,
		bits:      bits,
	}
}

// BitBufferOf views every bit of buf.
func BitBufferOf(buf []byte) BitBuffer {
	return NewBitBuffer(buf, 0, len(buf)*8)
}

func (b BitBuffer) Len() int {
	return b.bits
}

// Slice returns the window of bits starting at start relative to b.
func (b BitBuffer) Slice(start, bits int) BitBuffer {
	return NewBitBuffer(b.data, start+b.rightBits, bits)
}

func (b BitBuffer) BigInt() *big.Int {
	be := make([]byte, len(b.data))
	for i, v := range b.data {
		be[len(b.data)-1-i] = v
	}
	x := new(big.Int).SetBytes(be)
	return x.Rsh(x, uint(b.rightBits))
}

// Uint returns the window value for windows of at most 64 bits.
func (b BitBuffer) Uint() uint64 {
	return b.BigInt().Uint64()
}
