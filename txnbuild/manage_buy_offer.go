package txnbuild

import (
	"github.com/stellar/go-stellar-sdk/amount"
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// ManageBuyOffer creates, updates, or deletes (BuyAmount "0") an offer to
// buy Buying with Selling. OfferID of 0 creates a new offer.
type ManageBuyOffer struct {
	Selling       Asset
	Buying        Asset
	BuyAmount     string
	Price         Price
	OfferID       int64
	SourceAccount string
}

func (m *ManageBuyOffer) BuildXDR() (xdr.Operation, error) {
	selling, err := buildAssetXDR(m.Selling)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse selling asset")
	}
	buying, err := buildAssetXDR(m.Buying)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse buying asset")
	}
	amt, err := amount.Parse(m.BuyAmount)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse buy amount")
	}

	xdrOp := xdr.ManageBuyOfferOp{
		Selling: selling, Buying: buying, BuyAmount: xdr.Int64(amt),
		Price: m.Price.ToXDR(), OfferId: xdr.Int64(m.OfferID),
	}
	body, err := xdr.NewOperationBody(xdr.OperationTypeManageBuyOffer, xdrOp)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, m.SourceAccount)
	return op, nil
}

func (m *ManageBuyOffer) FromXDR(xdrOp xdr.Operation) error {
	result, ok := xdrOp.Body.GetManageBuyOfferOp()
	if !ok {
		return errors.New("error parsing manage_buy_offer operation from xdr")
	}
	m.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	m.Selling = assetFromXDR(result.Selling)
	m.Buying = assetFromXDR(result.Buying)
	m.BuyAmount = amount.String(int64(result.BuyAmount))
	m.Price = priceFromXDR(result.Price)
	m.OfferID = int64(result.OfferId)
	return nil
}

func (m *ManageBuyOffer) Validate() error {
	if _, err := buildAssetXDR(m.Selling); err != nil {
		return errors.WithField(err, "Selling")
	}
	if _, err := buildAssetXDR(m.Buying); err != nil {
		return errors.WithField(err, "Buying")
	}
	if _, err := amount.Parse(m.BuyAmount); err != nil {
		return errors.WithField(err, "BuyAmount")
	}
	return validateSourceAccount(m.SourceAccount)
}

func (m *ManageBuyOffer) GetSourceAccount() string { return m.SourceAccount }
