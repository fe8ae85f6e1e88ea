package superzk

import (
	"encoding/binary"

	"github.com/MixinNetwork/superzk-go/crypto/blake"
	"github.com/MixinNetwork/superzk-go/crypto/ecc"
)

// HashIndex hashes a ledger position, encoded as a 32 byte little endian
// integer.
func HashIndex(index uint32) [32]byte {
	var buf [32]byte
	binary.LittleEndian.PutUint32(buf[:], index)
	return blake.Blake2b([]byte(ROOT_INDEX_DOMAIN_TAG), buf[:])
}

// RootCM binds an output's position, address and asset commitment into
// the point its nullifier is derived from.
func RootCM(index uint32, pkr *PKr, assetCM ecc.Point) (ecc.Point, error) {
	if !pkr.IsValid() {
		return ecc.Point{}, ErrInvalidAddress
	}
	h := HashIndex(index)
	data := concat(h[:], pkr.Bytes(), pointBytes(assetCM))
	return RootBase().MultBits(ecc.BitBufferOf(data))
}
