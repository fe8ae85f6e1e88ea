package superzk

import (
	"encoding/hex"

	"github.com/MixinNetwork/superzk-go/crypto/ecc"
	"github.com/pkg/errors"
)

const AssetSize = 128

// Asset is an amount of one currency plus an optional ticket.
type Asset struct {
	Currency [32]byte
	Value    ecc.FR
	Category [32]byte
	Ticket   [32]byte
}

// NewToken builds a ticketless asset from a currency name such as "SERO".
func NewToken(currency string, value ecc.FR) *Asset {
	a := &Asset{Value: value}
	copy(a.Currency[:], currency)
	return a
}

func DecodeAsset(data []byte) (*Asset, error) {
	if len(data) != AssetSize {
		return nil, errors.Wrapf(ecc.ErrInvalidLength, "asset of %d bytes", len(data))
	}
	a := &Asset{Value: ecc.FRFromBytes(data[32:64])}
	copy(a.Currency[:], data[:32])
	copy(a.Category[:], data[64:96])
	copy(a.Ticket[:], data[96:])
	return a, nil
}

// IsValid requires the value to fit in 240 bits.
func (a *Asset) IsValid() bool {
	if a == nil {
		return false
	}
	v := a.Value.Bytes()
	return v[30] == 0 && v[31] == 0
}

func (a *Asset) HasTicket() bool {
	return !isZeroBytes(a.Ticket[:])
}

func (a *Asset) Bytes() []byte {
	return concat(a.Currency[:], scalarBytes(a.Value), a.Category[:], a.Ticket[:])
}

func (a *Asset) String() string {
	return hex.EncodeToString(a.Bytes())
}

// CC is the unblinded commitment TokenBase·value [+ TicketBase].
func (a *Asset) CC() (ecc.Point, error) {
	base, err := TokenBase(a.Currency)
	if err != nil {
		return ecc.Point{}, err
	}
	cc := base.Mult(a.Value)
	if !a.HasTicket() {
		return cc, nil
	}
	tkt, err := TicketBase(a.Category, a.Ticket)
	if err != nil {
		return ecc.Point{}, err
	}
	return cc.Add(tkt), nil
}

// CM blinds CC with CrBase·ar.
func (a *Asset) CM(ar ecc.FR) (ecc.Point, error) {
	cc, err := a.CC()
	if err != nil {
		return ecc.Point{}, err
	}
	return cc.Add(CrBase().Mult(ar)), nil
}

// CzeroCC is the legacy unblinded commitment.
func (a *Asset) CzeroCC() (ecc.Point, error) {
	base, err := czeroCurrencyBase(a.Currency)
	if err != nil {
		return ecc.Point{}, err
	}
	cc := base.Mult(a.Value)
	if !a.HasTicket() {
		return cc, nil
	}
	tkt, err := czeroTicketBase(a.Category, a.Ticket)
	if err != nil {
		return ecc.Point{}, err
	}
	return cc.Add(tkt), nil
}
