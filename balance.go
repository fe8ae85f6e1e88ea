package superzk

import (
	"io"

	"github.com/MixinNetwork/superzk-go/crypto/ecc"
	"github.com/pkg/errors"
)

// BalanceParams collects the commitments of one transaction. Z entries are
// blinded asset commitments with their blinding factors, O entries are
// unblinded asset commitments of public inputs and outputs.
type BalanceParams struct {
	ZInAcms  []ecc.Point
	ZInArs   []ecc.FR
	ZOutAcms []ecc.Point
	ZOutArs  []ecc.FR
	OInAccs  []ecc.Point
	OOutAccs []ecc.Point
}

func (p *BalanceParams) AddZIn(acm ecc.Point, ar ecc.FR) {
	p.ZInAcms = append(p.ZInAcms, acm)
	p.ZInArs = append(p.ZInArs, ar)
}

func (p *BalanceParams) AddZOut(acm ecc.Point, ar ecc.FR) {
	p.ZOutAcms = append(p.ZOutAcms, acm)
	p.ZOutArs = append(p.ZOutArs, ar)
}

func (p *BalanceParams) AddOIn(acc ecc.Point) {
	p.OInAccs = append(p.OInAccs, acc)
}

func (p *BalanceParams) AddOOut(acc ecc.Point) {
	p.OOutAccs = append(p.OOutAccs, acc)
}

func sumPoints(points []ecc.Point) ecc.Point {
	acc := ecc.Zero()
	for _, p := range points {
		acc = acc.Add(p)
	}
	return acc
}

func sumScalars(scalars []ecc.FR) ecc.FR {
	var acc ecc.FR
	for _, s := range scalars {
		acc = acc.Add(s)
	}
	return acc
}

// zacm = Σzin - Σzout, oacc = Σoout - Σoin
func (p *BalanceParams) sums() (zacm, oacc ecc.Point) {
	zacm = sumPoints(p.ZInAcms).Sub(sumPoints(p.ZOutAcms))
	oacc = sumPoints(p.OOutAccs).Sub(sumPoints(p.OInAccs))
	return zacm, oacc
}

// SignBalance proves the transaction creates no value: the blinded
// difference equals the public difference plus CrBase·zar, and the signer
// knows zar.
func SignBalance(r io.Reader, h []byte, p *BalanceParams) ([]byte, ecc.Point, error) {
	if len(h) != 32 {
		return nil, ecc.Point{}, errors.Wrap(ecc.ErrInvalidLength, "balance hash")
	}
	if len(p.ZInAcms) != len(p.ZInArs) || len(p.ZOutAcms) != len(p.ZOutArs) {
		return nil, ecc.Point{}, errors.Errorf("superzk: %d/%d input and %d/%d output blindings",
			len(p.ZInAcms), len(p.ZInArs), len(p.ZOutAcms), len(p.ZOutArs))
	}

	zar := sumScalars(p.ZInArs).Sub(sumScalars(p.ZOutArs))
	if zar.IsZero() {
		return nil, ecc.Point{}, ErrZeroBalance
	}
	zacm, oacc := p.sums()
	bcr := CrBase().Mult(zar)
	if !oacc.Add(bcr).Equal(zacm) {
		return nil, ecc.Point{}, ErrUnbalanced
	}

	sig, err := ecc.Sign(r, h, zar, CrBase())
	if err != nil {
		return nil, ecc.Point{}, err
	}
	return sig, bcr, nil
}

func VerifyBalance(h, sig []byte, p *BalanceParams, bcr ecc.Point) bool {
	if len(h) != 32 {
		return false
	}
	zacm, oacc := p.sums()
	if !oacc.Add(bcr).Equal(zacm) {
		return false
	}
	return ecc.Verify(h, sig, bcr, CrBase())
}
