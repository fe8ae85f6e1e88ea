package superzk

import (
	"sync"

	"github.com/MixinNetwork/superzk-go/crypto/ecc"
	"github.com/pkg/errors"
)

// Asset generators are pure functions of their input, so each one is
// searched for once per process.
var assetGenerators sync.Map

type findPoint func(personal, data []byte) (ecc.Point, error)

func assetBase(personal string, data []byte, find findPoint) (ecc.Point, error) {
	key := personal + string(data)
	if p, ok := assetGenerators.Load(key); ok {
		return p.(ecc.Point), nil
	}
	p, err := find([]byte(personal), data)
	if err != nil {
		return ecc.Point{}, errors.Wrapf(err, "asset generator %s", personal)
	}
	p, err = p.Affine()
	if err != nil {
		return ecc.Point{}, err
	}
	assetGenerators.Store(key, p)
	return p, nil
}

// TokenBase is the value generator of a currency.
func TokenBase(currency [32]byte) (ecc.Point, error) {
	data := make([]byte, 64)
	copy(data, currency[:])
	return assetBase(ASSET_TKN_DOMAIN_TAG, data, ecc.FindPointS)
}

// TicketBase is the generator of a single non fungible ticket.
func TicketBase(category, ticket [32]byte) (ecc.Point, error) {
	return assetBase(ASSET_TKT_DOMAIN_TAG, concat(category[:], ticket[:]), ecc.FindPointS)
}
