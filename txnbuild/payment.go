package txnbuild

import (
	"github.com/stellar/go-stellar-sdk/amount"
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// Payment sends an asset amount from the transaction source to a
// destination account.
type Payment struct {
	Destination   string
	Asset         Asset
	Amount        string
	SourceAccount string
}

func (p *Payment) BuildXDR() (xdr.Operation, error) {
	dest, err := xdr.MuxedAccountFromAddress(p.Destination)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse destination")
	}
	xdrAsset, err := buildAssetXDR(p.Asset)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse asset")
	}
	amt, err := amount.Parse(p.Amount)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse amount")
	}

	xdrOp := xdr.PaymentOp{Destination: dest, Asset: xdrAsset, Amount: xdr.Int64(amt)}
	body, err := xdr.NewOperationBody(xdr.OperationTypePayment, xdrOp)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, p.SourceAccount)
	return op, nil
}

func (p *Payment) FromXDR(xdrOp xdr.Operation) error {
	result, ok := xdrOp.Body.GetPaymentOp()
	if !ok {
		return errors.New("error parsing payment operation from xdr")
	}
	p.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	p.Destination = result.Destination.Address()
	p.Amount = amount.String(int64(result.Amount))
	p.Asset = assetFromXDR(result.Asset)
	return nil
}

func (p *Payment) Validate() error {
	if _, err := xdr.MuxedAccountFromAddress(p.Destination); err != nil {
		return errors.WithField(err, "Destination")
	}
	if _, err := buildAssetXDR(p.Asset); err != nil {
		return errors.WithField(err, "Asset")
	}
	amt, err := amount.Parse(p.Amount)
	if err != nil {
		return errors.WithField(err, "Amount")
	}
	if amt <= 0 {
		return errors.WithField(errAmountRequired, "Amount")
	}
	return validateSourceAccount(p.SourceAccount)
}

func (p *Payment) GetSourceAccount() string { return p.SourceAccount }

// assetFromXDR lifts an xdr.Asset back into the txnbuild Asset interface.
func assetFromXDR(a xdr.Asset) Asset {
	switch a.Type {
	case xdr.AssetTypeAssetTypeNative:
		return NativeAsset{}
	case xdr.AssetTypeAssetTypeCreditAlphanum4:
		return CreditAsset{Code: codeString(a.AlphaNum4.AssetCode[:]), Issuer: a.AlphaNum4.Issuer.Address()}
	case xdr.AssetTypeAssetTypeCreditAlphanum12:
		return CreditAsset{Code: codeString(a.AlphaNum12.AssetCode[:]), Issuer: a.AlphaNum12.Issuer.Address()}
	default:
		return nil
	}
}

func codeString(b []byte) string {
	n := len(b)
	for n > 0 && b[n-1] == 0 {
		n--
	}
	return string(b[:n])
}
