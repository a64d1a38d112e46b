package txnbuild

import (
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// Trust line authorization states accepted by AllowTrust.Authorize.
const (
	TrustLineUnauthorized                     uint32 = 0
	TrustLineAuthorized                       uint32 = 1
	TrustLineAuthorizedToMaintainLiabilities  uint32 = 2
)

// AllowTrust is deprecated in favor of SetTrustLineFlags but still accepted
// by the network; it authorizes or deauthorizes a trustor's trust line in a
// single asset code.
type AllowTrust struct {
	Trustor       string
	Code          string
	Authorize     uint32
	SourceAccount string
}

func allowTrustAssetFromCode(code string) (xdr.AllowTrustOpAsset, error) {
	switch {
	case len(code) >= 1 && len(code) <= 4:
		var c xdr.AssetCode4
		copy(c[:], code)
		return xdr.AllowTrustOpAsset{Type: xdr.AssetTypeAssetTypeCreditAlphanum4, AssetCode4: &c}, nil
	case len(code) >= 5 && len(code) <= 12:
		var c xdr.AssetCode12
		copy(c[:], code)
		return xdr.AllowTrustOpAsset{Type: xdr.AssetTypeAssetTypeCreditAlphanum12, AssetCode12: &c}, nil
	default:
		return xdr.AllowTrustOpAsset{}, errors.Errorf("asset code %q must be 1-12 characters", code)
	}
}

func (a *AllowTrust) BuildXDR() (xdr.Operation, error) {
	trustor, err := xdr.AddressToAccountId(a.Trustor)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse trustor")
	}
	asset, err := allowTrustAssetFromCode(a.Code)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse asset code")
	}

	xdrOp := xdr.AllowTrustOp{Trustor: trustor, Asset: asset, Authorize: xdr.Uint32(a.Authorize)}
	body, err := xdr.NewOperationBody(xdr.OperationTypeAllowTrust, xdrOp)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, a.SourceAccount)
	return op, nil
}

func (a *AllowTrust) FromXDR(xdrOp xdr.Operation) error {
	result, ok := xdrOp.Body.GetAllowTrustOp()
	if !ok {
		return errors.New("error parsing allow_trust operation from xdr")
	}
	a.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	a.Trustor = result.Trustor.Address()
	switch result.Asset.Type {
	case xdr.AssetTypeAssetTypeCreditAlphanum4:
		a.Code = codeString(result.Asset.AssetCode4[:])
	case xdr.AssetTypeAssetTypeCreditAlphanum12:
		a.Code = codeString(result.Asset.AssetCode12[:])
	}
	a.Authorize = uint32(result.Authorize)
	return nil
}

func (a *AllowTrust) Validate() error {
	if _, err := xdr.AddressToAccountId(a.Trustor); err != nil {
		return errors.WithField(err, "Trustor")
	}
	if _, err := allowTrustAssetFromCode(a.Code); err != nil {
		return errors.WithField(err, "Code")
	}
	return validateSourceAccount(a.SourceAccount)
}

func (a *AllowTrust) GetSourceAccount() string { return a.SourceAccount }
