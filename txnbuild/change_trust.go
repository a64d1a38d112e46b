package txnbuild

import (
	"github.com/stellar/go-stellar-sdk/amount"
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// MaxTrustLineLimit is the default ChangeTrust limit, equal to the ledger's
// max int64 stroop amount.
const MaxTrustLineLimit = "922337203685.4775807"

// ChangeTrust establishes, updates, or removes (Limit "0") a trust line to
// a non-native asset. Pool-share trust lines are out of scope for this SDK.
type ChangeTrust struct {
	Line          Asset
	Limit         string
	SourceAccount string
}

func (c *ChangeTrust) BuildXDR() (xdr.Operation, error) {
	line, err := buildAssetXDR(c.Line)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse trust line asset")
	}
	limit := c.Limit
	if limit == "" {
		limit = MaxTrustLineLimit
	}
	amt, err := amount.Parse(limit)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse limit")
	}

	xdrOp := xdr.ChangeTrustOp{Line: line, Limit: xdr.Int64(amt)}
	body, err := xdr.NewOperationBody(xdr.OperationTypeChangeTrust, xdrOp)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, c.SourceAccount)
	return op, nil
}

func (c *ChangeTrust) FromXDR(xdrOp xdr.Operation) error {
	result, ok := xdrOp.Body.GetChangeTrustOp()
	if !ok {
		return errors.New("error parsing change_trust operation from xdr")
	}
	c.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	c.Line = assetFromXDR(result.Line)
	c.Limit = amount.String(int64(result.Limit))
	return nil
}

func (c *ChangeTrust) Validate() error {
	if _, err := buildAssetXDR(c.Line); err != nil {
		return errors.WithField(err, "Line")
	}
	if c.Limit != "" {
		if _, err := amount.Parse(c.Limit); err != nil {
			return errors.WithField(err, "Limit")
		}
	}
	return validateSourceAccount(c.SourceAccount)
}

func (c *ChangeTrust) GetSourceAccount() string { return c.SourceAccount }
