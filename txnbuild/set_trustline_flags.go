package txnbuild

import (
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// Trust line flag bits accepted by SetTrustLineFlags.ClearFlags/SetFlags.
const (
	TrustLineFlagAuthorized                    uint32 = 1
	TrustLineFlagAuthorizedToMaintainLiabilities uint32 = 2
	TrustLineFlagClawbackEnabled                uint32 = 4
)

// SetTrustLineFlags authorizes, deauthorizes, or marks clawback-enabled a
// trustor's trust line in Asset.
type SetTrustLineFlags struct {
	Trustor       string
	Asset         Asset
	ClearFlags    uint32
	SetFlags      uint32
	SourceAccount string
}

func (s *SetTrustLineFlags) BuildXDR() (xdr.Operation, error) {
	if s.Asset == nil {
		return xdr.Operation{}, errAssetRequired
	}
	trustor, err := xdr.AddressToAccountId(s.Trustor)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse Trustor")
	}
	xdrAsset, err := buildAssetXDR(s.Asset)
	if err != nil {
		return xdr.Operation{}, err
	}
	xdrOp := xdr.SetTrustLineFlagsOp{
		Trustor:    trustor,
		Asset:      xdrAsset,
		ClearFlags: xdr.Uint32(s.ClearFlags),
		SetFlags:   xdr.Uint32(s.SetFlags),
	}
	body, err := xdr.NewOperationBody(xdr.OperationTypeSetTrustLineFlags, xdrOp)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, s.SourceAccount)
	return op, nil
}

func (s *SetTrustLineFlags) FromXDR(xdrOp xdr.Operation) error {
	result, ok := xdrOp.Body.GetSetTrustLineFlagsOp()
	if !ok {
		return errors.New("error parsing set_trustline_flags operation from xdr")
	}
	s.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	s.Trustor = result.Trustor.Address()
	s.Asset = assetFromXDR(result.Asset)
	s.ClearFlags = uint32(result.ClearFlags)
	s.SetFlags = uint32(result.SetFlags)
	return nil
}

func (s *SetTrustLineFlags) Validate() error {
	if s.Asset == nil {
		return errAssetRequired
	}
	if _, err := xdr.AddressToAccountId(s.Trustor); err != nil {
		return errors.WithField(err, "Trustor")
	}
	return validateSourceAccount(s.SourceAccount)
}

func (s *SetTrustLineFlags) GetSourceAccount() string { return s.SourceAccount }
