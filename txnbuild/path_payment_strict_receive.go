package txnbuild

import (
	"github.com/stellar/go-stellar-sdk/amount"
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// PathPaymentStrictReceive sends SendAsset along Path to deliver exactly
// DestAmount of DestAsset, failing if more than SendMax would be required.
type PathPaymentStrictReceive struct {
	SendAsset     Asset
	SendMax       string
	Destination   string
	DestAsset     Asset
	DestAmount    string
	Path          []Asset
	SourceAccount string
}

func (p *PathPaymentStrictReceive) buildCommon() (sendAsset, destAsset xdr.Asset, dest xdr.MuxedAccount, sendMax, destAmount int64, path []xdr.Asset, err error) {
	if sendAsset, err = buildAssetXDR(p.SendAsset); err != nil {
		return
	}
	if destAsset, err = buildAssetXDR(p.DestAsset); err != nil {
		return
	}
	if dest, err = xdr.MuxedAccountFromAddress(p.Destination); err != nil {
		return
	}
	if sendMax, err = amount.Parse(p.SendMax); err != nil {
		return
	}
	if destAmount, err = amount.Parse(p.DestAmount); err != nil {
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

func (p *PathPaymentStrictReceive) BuildXDR() (xdr.Operation, error) {
	sendAsset, destAsset, dest, sendMax, destAmount, path, err := p.buildCommon()
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build path_payment_strict_receive operation")
	}
	xdrOp := xdr.PathPaymentStrictReceiveOp{
		SendAsset: sendAsset, SendMax: xdr.Int64(sendMax), Destination: dest,
		DestAsset: destAsset, DestAmount: xdr.Int64(destAmount), Path: path,
	}
	body, err := xdr.NewOperationBody(xdr.OperationTypePathPaymentStrictReceive, xdrOp)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, p.SourceAccount)
	return op, nil
}

func (p *PathPaymentStrictReceive) FromXDR(xdrOp xdr.Operation) error {
	result, ok := xdrOp.Body.GetPathPaymentStrictReceiveOp()
	if !ok {
		return errors.New("error parsing path_payment_strict_receive operation from xdr")
	}
	p.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	p.SendAsset = assetFromXDR(result.SendAsset)
	p.SendMax = amount.String(int64(result.SendMax))
	p.Destination = result.Destination.Address()
	p.DestAsset = assetFromXDR(result.DestAsset)
	p.DestAmount = amount.String(int64(result.DestAmount))
	p.Path = make([]Asset, len(result.Path))
	for i, a := range result.Path {
		p.Path[i] = assetFromXDR(a)
	}
	return nil
}

func (p *PathPaymentStrictReceive) Validate() error {
	_, _, _, sendMax, destAmount, _, err := p.buildCommon()
	if err != nil {
		return err
	}
	if sendMax <= 0 {
		return errors.WithField(errAmountRequired, "SendMax")
	}
	if destAmount <= 0 {
		return errors.WithField(errAmountRequired, "DestAmount")
	}
	return validateSourceAccount(p.SourceAccount)
}

func (p *PathPaymentStrictReceive) GetSourceAccount() string { return p.SourceAccount }
