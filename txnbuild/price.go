package txnbuild

import "github.com/stellar/go-stellar-sdk/xdr"

// Price is a buy/sell ratio expressed as a rational number, matching the
// wire representation offers use rather than a lossy float.
type Price struct {
	N int32
	D int32
}

func (p Price) ToXDR() xdr.Price { return xdr.Price{N: xdr.Int32(p.N), D: xdr.Int32(p.D)} }

func priceFromXDR(p xdr.Price) Price { return Price{N: int32(p.N), D: int32(p.D)} }
