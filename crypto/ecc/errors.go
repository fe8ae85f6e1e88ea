package ecc

import "github.com/pkg/errors"

var (
	ErrZeroInverse         = errors.New("ecc: inverse of zero")
	ErrInvalidLength       = errors.New("ecc: invalid encoding length")
	ErrNotOnCurve          = errors.New("ecc: point not on curve")
	ErrPointNotFound       = errors.New("ecc: hash to curve exhausted")
	ErrBitsOverflow        = errors.New("ecc: bit buffer exceeds table capacity")
	ErrDegenerateSignature = errors.New("ecc: degenerate signature")
)
