package superzk

import "github.com/MixinNetwork/superzk-go/crypto/ecc"

// The scheme flag lives in bit 6 of the last byte of every key, address
// and nullifier encoding.
const schemeFlag = 0x40

func setFlag(buf []byte) []byte {
	buf[len(buf)-1] |= schemeFlag
	return buf
}

func clearFlag(buf []byte) []byte {
	buf[len(buf)-1] &^= schemeFlag
	return buf
}

func isFlagSet(buf []byte) bool {
	return len(buf) > 0 && buf[len(buf)-1]&schemeFlag != 0
}

// IsFlagSet reports whether an encoded key, address or nullifier belongs
// to the SuperZK scheme.
func IsFlagSet(buf []byte) bool {
	return isFlagSet(buf)
}

func concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func pointBytes(p ecc.Point) []byte {
	b := p.Bytes()
	return b[:]
}

func scalarBytes(s ecc.FR) []byte {
	b := s.Bytes()
	return b[:]
}

func hexToPoint(h string) ecc.Point {
	return ecc.MustPointFromHex(h)
}

func isZeroBytes(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
