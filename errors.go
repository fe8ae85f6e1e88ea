package superzk

import "github.com/pkg/errors"

var (
	ErrInvalidKey     = errors.New("superzk: invalid key")
	ErrInvalidAddress = errors.New("superzk: invalid address")
	ErrInvalidPoint   = errors.New("superzk: invalid point")
	ErrInvalidAsset   = errors.New("superzk: asset value exceeds 240 bits")
	ErrNotMine        = errors.New("superzk: output does not belong to key")
	ErrZeroBalance    = errors.New("superzk: zero blinding difference")
	ErrUnbalanced     = errors.New("superzk: commitments do not balance")
)
