package txnbuild

import "github.com/stellar/go-stellar-sdk/xdr"

// Asset is a Stellar native or credit asset, convertible to its XDR form.
type Asset interface {
	ToXDR() (xdr.Asset, error)
}

// NativeAsset represents lumens.
type NativeAsset struct{}

func (NativeAsset) ToXDR() (xdr.Asset, error) { return xdr.NativeAsset(), nil }

// CreditAsset is a non-native asset identified by code and issuer address.
type CreditAsset struct {
	Code   string
	Issuer string
}

func (a CreditAsset) ToXDR() (xdr.Asset, error) { return xdr.NewCreditAsset(a.Code, a.Issuer) }

func buildAssetXDR(a Asset) (xdr.Asset, error) {
	if a == nil {
		return xdr.Asset{}, errAssetRequired
	}
	return a.ToXDR()
}
