package txnbuild

import (
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// RestoreFootprint restores archived entries named in the transaction's
// read-write footprint, at the fee charged by the resources it consumes.
type RestoreFootprint struct {
	SourceAccount string
}

func (r *RestoreFootprint) BuildXDR() (xdr.Operation, error) {
	xdrOp := xdr.RestoreFootprintOp{}
	body, err := xdr.NewOperationBody(xdr.OperationTypeRestoreFootprint, xdrOp)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, r.SourceAccount)
	return op, nil
}

func (r *RestoreFootprint) FromXDR(xdrOp xdr.Operation) error {
	if _, ok := xdrOp.Body.GetRestoreFootprintOp(); !ok {
		return errors.New("error parsing restore_footprint operation from xdr")
	}
	r.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	return nil
}

func (r *RestoreFootprint) Validate() error {
	return validateSourceAccount(r.SourceAccount)
}

func (r *RestoreFootprint) GetSourceAccount() string { return r.SourceAccount }
