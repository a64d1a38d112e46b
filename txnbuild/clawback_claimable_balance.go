package txnbuild

import (
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// ClawbackClaimableBalance claws back a claimable balance identified by
// its hex encoded BalanceId.
type ClawbackClaimableBalance struct {
	BalanceId     string
	SourceAccount string
}

func (c *ClawbackClaimableBalance) BuildXDR() (xdr.Operation, error) {
	id, err := claimableBalanceIdFromHex(c.BalanceId)
	if err != nil {
		return xdr.Operation{}, err
	}
	xdrOp := xdr.ClawbackClaimableBalanceOp{BalanceId: id}
	body, err := xdr.NewOperationBody(xdr.OperationTypeClawbackClaimableBalance, xdrOp)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, c.SourceAccount)
	return op, nil
}

func (c *ClawbackClaimableBalance) FromXDR(xdrOp xdr.Operation) error {
	result, ok := xdrOp.Body.GetClawbackClaimableBalanceOp()
	if !ok {
		return errors.New("error parsing clawback_claimable_balance operation from xdr")
	}
	c.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	id, err := claimableBalanceIdToHex(result.BalanceId)
	if err != nil {
		return err
	}
	c.BalanceId = id
	return nil
}

func (c *ClawbackClaimableBalance) Validate() error {
	if _, err := claimableBalanceIdFromHex(c.BalanceId); err != nil {
		return errors.WithField(err, "BalanceId")
	}
	return validateSourceAccount(c.SourceAccount)
}

func (c *ClawbackClaimableBalance) GetSourceAccount() string { return c.SourceAccount }
