package txnbuild

import (
	"github.com/stellar/go-stellar-sdk/amount"
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// Clawback claws back Amount of Asset from From's trustline, requiring the
// asset's issuer to have AUTH_CLAWBACK_ENABLED set.
type Clawback struct {
	Asset         Asset
	From          string
	Amount        string
	SourceAccount string
}

func (c *Clawback) BuildXDR() (xdr.Operation, error) {
	if c.Asset == nil {
		return xdr.Operation{}, errAssetRequired
	}
	xdrAsset, err := buildAssetXDR(c.Asset)
	if err != nil {
		return xdr.Operation{}, err
	}
	from, err := xdr.MuxedAccountFromAddress(c.From)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse From")
	}
	xdrAmount, err := amount.Parse(c.Amount)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse Amount")
	}
	xdrOp := xdr.ClawbackOp{Asset: xdrAsset, From: from, Amount: xdr.Int64(xdrAmount)}
	body, err := xdr.NewOperationBody(xdr.OperationTypeClawback, xdrOp)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, c.SourceAccount)
	return op, nil
}

func (c *Clawback) FromXDR(xdrOp xdr.Operation) error {
	result, ok := xdrOp.Body.GetClawbackOp()
	if !ok {
		return errors.New("error parsing clawback operation from xdr")
	}
	c.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	c.Asset = assetFromXDR(result.Asset)
	c.From = result.From.Address()
	c.Amount = amount.String(int64(result.Amount))
	return nil
}

func (c *Clawback) Validate() error {
	if c.Asset == nil {
		return errAssetRequired
	}
	if _, err := xdr.MuxedAccountFromAddress(c.From); err != nil {
		return errors.WithField(err, "From")
	}
	if _, err := amount.Parse(c.Amount); err != nil {
		return errors.WithField(err, "Amount")
	}
	return validateSourceAccount(c.SourceAccount)
}

func (c *Clawback) GetSourceAccount() string { return c.SourceAccount }
