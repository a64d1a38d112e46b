package txnbuild

import (
	"github.com/stellar/go-stellar-sdk/amount"
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// ManageSellOffer creates, updates, or deletes (Amount "0") an offer to sell
// Selling for Buying. OfferID of 0 creates a new offer.
type ManageSellOffer struct {
	Selling       Asset
	Buying        Asset
	Amount        string
	Price         Price
	OfferID       int64
	SourceAccount string
}

func (m *ManageSellOffer) BuildXDR() (xdr.Operation, error) {
	selling, err := buildAssetXDR(m.Selling)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse selling asset")
	}
	buying, err := buildAssetXDR(m.Buying)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse buying asset")
	}
	amt, err := amount.Parse(m.Amount)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse amount")
	}

	xdrOp := xdr.ManageSellOfferOp{
		Selling: selling, Buying: buying, Amount: xdr.Int64(amt),
		Price: m.Price.ToXDR(), OfferId: xdr.Int64(m.OfferID),
	}
	body, err := xdr.NewOperationBody(xdr.OperationTypeManageSellOffer, xdrOp)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, m.SourceAccount)
	return op, nil
}

func (m *ManageSellOffer) FromXDR(xdrOp xdr.Operation) error {
	result, ok := xdrOp.Body.GetManageSellOfferOp()
	if !ok {
		return errors.New("error parsing manage_sell_offer operation from xdr")
	}
	m.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	m.Selling = assetFromXDR(result.Selling)
	m.Buying = assetFromXDR(result.Buying)
	m.Amount = amount.String(int64(result.Amount))
	m.Price = priceFromXDR(result.Price)
	m.OfferID = int64(result.OfferId)
	return nil
}

func (m *ManageSellOffer) Validate() error {
	if _, err := buildAssetXDR(m.Selling); err != nil {
		return errors.WithField(err, "Selling")
	}
	if _, err := buildAssetXDR(m.Buying); err != nil {
		return errors.WithField(err, "Buying")
	}
	if _, err := amount.Parse(m.Amount); err != nil {
		return errors.WithField(err, "Amount")
	}
	return validateSourceAccount(m.SourceAccount)
}

func (m *ManageSellOffer) GetSourceAccount() string { return m.SourceAccount }
