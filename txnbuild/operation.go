package txnbuild

import (
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// Operation is the house style every operation builder implements, grounded
// on stellar/go's own txnbuild.Inflation and txnbuild.InvokeHostFunction:
// a struct of typed fields, a way in and out of the XDR shape, and
// self-validation independent of any transaction it ends up in.
type Operation interface {
	BuildXDR() (xdr.Operation, error)
	FromXDR(xdrOp xdr.Operation) error
	Validate() error
	GetSourceAccount() string
}

// SetOpSourceAccount attaches an operation-level source account override.
// An empty sourceAccount leaves op.SourceAccount unset, meaning the
// operation inherits the enclosing transaction's source. Operations are
// expected to have already validated sourceAccount via Validate before this
// runs, so a parse failure here is silently treated as "no override."
func SetOpSourceAccount(op *xdr.Operation, sourceAccount string) {
	if sourceAccount == "" {
		return
	}
	muxed, err := xdr.MuxedAccountFromAddress(sourceAccount)
	if err != nil {
		return
	}
	op.SourceAccount = &muxed
}

// accountFromXDR returns the strkey address of an operation's source
// account override, or "" if the operation carries none.
func accountFromXDR(muxed *xdr.MuxedAccount) string {
	if muxed == nil {
		return ""
	}
	return muxed.Address()
}

// validateSourceAccount reports an error if sourceAccount is non-empty and
// not a parseable account address.
func validateSourceAccount(sourceAccount string) error {
	if sourceAccount == "" {
		return nil
	}
	if _, err := xdr.MuxedAccountFromAddress(sourceAccount); err != nil {
		return errors.WithField(err, "SourceAccount")
	}
	return nil
}

// BuildOperations converts a list of Operation builders into their XDR form,
// stopping at the first error.
func BuildOperations(ops []Operation) ([]xdr.Operation, error) {
	out := make([]xdr.Operation, len(ops))
	for i, op := range ops {
		xdrOp, err := op.BuildXDR()
		if err != nil {
			return nil, errors.Wrapf(err, "building operation %d", i)
		}
		out[i] = xdrOp
	}
	return out, nil
}
