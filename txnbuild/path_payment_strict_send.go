package txnbuild

import (
	"github.com/stellar/go-stellar-sdk/amount"
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// PathPaymentStrictSend sends exactly SendAmount of SendAsset along Path,
// failing if the destination would receive less than DestMin.
type PathPaymentStrictSend struct {
	SendAsset     Asset
	SendAmount    string
	Destination   string
	DestAsset     Asset
	DestMin       string
	Path          []Asset
	SourceAccount string
}

func (p *PathPaymentStrictSend) buildCommon() (sendAsset, destAsset xdr.Asset, dest xdr.MuxedAccount, sendAmount, destMin int64, path []xdr.Asset, err error) {
	if sendAsset, err = buildAssetXDR(p.SendAsset); err != nil {
		return
	}
	if destAsset, err = buildAssetXDR(p.DestAsset); err != nil {
		return
	}
	if dest, err = xdr.MuxedAccountFromAddress(p.Destination); err != nil {
		return
	}
	if sendAmount, err = amount.Parse(p.SendAmount); err != nil {
		return
	}
	if destMin, err = amount.Parse(p.DestMin); err != nil {
		return
	}
	if len(p.Path) > 5 {
		err = errors.Errorf("path must contain at most 5 assets, got %d", len(p.Path))
		return
	}
	path = make([]xdr.Asset, len(p.Path))
	for i, a := range p.Path {
		if path[i], err = buildAssetXDR(a); err != nil {
			return
		}
	}
	return
}

func (p *PathPaymentStrictSend) BuildXDR() (xdr.Operation, error) {
	sendAsset, destAsset, dest, sendAmount, destMin, path, err := p.buildCommon()
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build path_payment_strict_send operation")
	}
	xdrOp := xdr.PathPaymentStrictSendOp{
		SendAsset: sendAsset, SendAmount: xdr.Int64(sendAmount), Destination: dest,
		DestAsset: destAsset, DestMin: xdr.Int64(destMin), Path: path,
	}
	body, err := xdr.NewOperationBody(xdr.OperationTypePathPaymentStrictSend, xdrOp)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, p.SourceAccount)
	return op, nil
}

func (p *PathPaymentStrictSend) FromXDR(xdrOp xdr.Operation) error {
	result, ok := xdrOp.Body.GetPathPaymentStrictSendOp()
	if !ok {
		return errors.New("error parsing path_payment_strict_send operation from xdr")
	}
	p.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	p.SendAsset = assetFromXDR(result.SendAsset)
	p.SendAmount = amount.String(int64(result.SendAmount))
	p.Destination = result.Destination.Address()
	p.DestAsset = assetFromXDR(result.DestAsset)
	p.DestMin = amount.String(int64(result.DestMin))
	p.Path = make([]Asset, len(result.Path))
	for i, a := range result.Path {
		p.Path[i] = assetFromXDR(a)
	}
	return nil
}

func (p *PathPaymentStrictSend) Validate() error {
	_, _, _, sendAmount, destMin, _, err := p.buildCommon()
	if err != nil {
		return err
	}
	if sendAmount <= 0 {
		return errors.WithField(errAmountRequired, "SendAmount")
	}
	if destMin <= 0 {
		return errors.WithField(errAmountRequired, "DestMin")
	}
	return validateSourceAccount(p.SourceAccount)
}

func (p *PathPaymentStrictSend) GetSourceAccount() string { return p.SourceAccount }
