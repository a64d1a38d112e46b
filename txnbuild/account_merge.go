package txnbuild

import (
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// AccountMerge transfers the source account's remaining balance to
// Destination and removes the source account from the ledger.
type AccountMerge struct {
	Destination   string
	SourceAccount string
}

func (a *AccountMerge) BuildXDR() (xdr.Operation, error) {
	dest, err := xdr.MuxedAccountFromAddress(a.Destination)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse destination")
	}
	body, err := xdr.NewOperationBody(xdr.OperationTypeAccountMerge, dest)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, a.SourceAccount)
	return op, nil
}

func (a *AccountMerge) FromXDR(xdrOp xdr.Operation) error {
	dest, ok := xdrOp.Body.GetAccountMergeOp()
	if !ok {
		return errors.New("error parsing account_merge operation from xdr")
	}
	a.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	a.Destination = dest.Address()
	return nil
}

func (a *AccountMerge) Validate() error {
	if _, err := xdr.MuxedAccountFromAddress(a.Destination); err != nil {
		return errors.WithField(err, "Destination")
	}
	return validateSourceAccount(a.SourceAccount)
}

func (a *AccountMerge) GetSourceAccount() string { return a.SourceAccount }
