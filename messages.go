package superzk

import "github.com/MixinNetwork/superzk-go/crypto/ecc"

// OutO is a legacy public output.
type OutO struct {
	Addr  *PKr
	Asset *Asset
	Memo  []byte
}

// OutZ is a legacy confidential output.
type OutZ struct {
	PKr   *PKr
	OutCM []byte
	RPK   []byte
	EInfo []byte
}

// OutP is a public output.
type OutP struct {
	PKr   *PKr
	Asset *Asset
	Memo  []byte
}

// OutC is a confidential output.
type OutC struct {
	PKr     *PKr
	AssetCM ecc.Point
	RPK     []byte
	EInfo   []byte
}

// Out is one ledger output; exactly one of O, Z, P and C is set.
type Out struct {
	Root   []byte
	RootCM ecc.Point
	O      *OutO
	Z      *OutZ
	P      *OutP
	C      *OutC
}

// InC is the confidential spend of an OutC: the note is re-blinded with a
// fresh Ar and the address re-randomized with A.
type InC struct {
	Nil     [32]byte
	AssetCM ecc.Point
	ZPKa    ecc.Point
	Ar      ecc.FR
	A       ecc.FR
}

// UTXO is an output recognized and opened by a tracking key.
type UTXO struct {
	Root  []byte
	PKr   *PKr
	Asset *Asset
	Memo  []byte
	Nils  [][]byte
	IsZ   bool
}
