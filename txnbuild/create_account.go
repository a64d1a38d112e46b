package txnbuild

import (
	"github.com/stellar/go-stellar-sdk/amount"
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// CreateAccount funds a new account from an existing one.
type CreateAccount struct {
	Destination     string
	StartingBalance string
	SourceAccount   string
}

func (ca *CreateAccount) BuildXDR() (xdr.Operation, error) {
	dest, err := xdr.AddressToAccountId(ca.Destination)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse destination")
	}
	startingBalance, err := amount.Parse(ca.StartingBalance)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse starting balance")
	}

	xdrOp := xdr.CreateAccountOp{Destination: dest, StartingBalance: xdr.Int64(startingBalance)}
	body, err := xdr.NewOperationBody(xdr.OperationTypeCreateAccount, xdrOp)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, ca.SourceAccount)
	return op, nil
}

func (ca *CreateAccount) FromXDR(xdrOp xdr.Operation) error {
	result, ok := xdrOp.Body.GetCreateAccountOp()
	if !ok {
		return errors.New("error parsing create_account operation from xdr")
	}
	ca.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	ca.Destination = result.Destination.Address()
	ca.StartingBalance = amount.String(int64(result.StartingBalance))
	return nil
}

func (ca *CreateAccount) Validate() error {
	if _, err := xdr.AddressToAccountId(ca.Destination); err != nil {
		return errors.WithField(err, "Destination")
	}
	startingBalance, err := amount.Parse(ca.StartingBalance)
	if err != nil {
		return errors.WithField(err, "StartingBalance")
	}
	if startingBalance < 1 {
		return errors.WithField(errAmountRequired, "StartingBalance")
	}
	return validateSourceAccount(ca.SourceAccount)
}

func (ca *CreateAccount) GetSourceAccount() string { return ca.SourceAccount }
