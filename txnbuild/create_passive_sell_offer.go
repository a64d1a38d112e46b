package txnbuild

import (
	"github.com/stellar/go-stellar-sdk/amount"
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// CreatePassiveSellOffer creates an offer that does not take other offers of
// the same price, avoiding self-trades against the account's own offers.
type CreatePassiveSellOffer struct {
	Selling       Asset
	Buying        Asset
	Amount        string
	Price         Price
	SourceAccount string
}

func (c *CreatePassiveSellOffer) BuildXDR() (xdr.Operation, error) {
	selling, err := buildAssetXDR(c.Selling)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse selling asset")
	}
	buying, err := buildAssetXDR(c.Buying)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse buying asset")
	}
	amt, err := amount.Parse(c.Amount)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse amount")
	}

	xdrOp := xdr.CreatePassiveSellOfferOp{Selling: selling, Buying: buying, Amount: xdr.Int64(amt), Price: c.Price.ToXDR()}
	body, err := xdr.NewOperationBody(xdr.OperationTypeCreatePassiveSellOffer, xdrOp)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, c.SourceAccount)
	return op, nil
}

func (c *CreatePassiveSellOffer) FromXDR(xdrOp xdr.Operation) error {
	result, ok := xdrOp.Body.GetCreatePassiveSellOfferOp()
	if !ok {
		return errors.New("error parsing create_passive_sell_offer operation from xdr")
	}
	c.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	c.Selling = assetFromXDR(result.Selling)
	c.Buying = assetFromXDR(result.Buying)
	c.Amount = amount.String(int64(result.Amount))
	c.Price = priceFromXDR(result.Price)
	return nil
}

func (c *CreatePassiveSellOffer) Validate() error {
	if _, err := buildAssetXDR(c.Selling); err != nil {
		return errors.WithField(err, "Selling")
	}
	if _, err := buildAssetXDR(c.Buying); err != nil {
		return errors.WithField(err, "Buying")
	}
	if _, err := amount.Parse(c.Amount); err != nil {
		return errors.WithField(err, "Amount")
	}
	return validateSourceAccount(c.SourceAccount)
}

func (c *CreatePassiveSellOffer) GetSourceAccount() string { return c.SourceAccount }
