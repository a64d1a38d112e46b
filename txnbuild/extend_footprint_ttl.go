package txnbuild

import (
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// ExtendFootprintTtl pushes out the live-until ledger of the entries in the
// transaction's read-write and read-only footprint by ExtendTo ledgers.
type ExtendFootprintTtl struct {
	ExtendTo      uint32
	SourceAccount string
}

func (e *ExtendFootprintTtl) BuildXDR() (xdr.Operation, error) {
	xdrOp := xdr.ExtendFootprintTtlOp{ExtendTo: xdr.Uint32(e.ExtendTo)}
	body, err := xdr.NewOperationBody(xdr.OperationTypeExtendFootprintTtl, xdrOp)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, e.SourceAccount)
	return op, nil
}

func (e *ExtendFootprintTtl) FromXDR(xdrOp xdr.Operation) error {
	result, ok := xdrOp.Body.GetExtendFootprintTtlOp()
	if !ok {
		return errors.New("error parsing extend_footprint_ttl operation from xdr")
	}
	e.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	e.ExtendTo = uint32(result.ExtendTo)
	return nil
}

func (e *ExtendFootprintTtl) Validate() error {
	return validateSourceAccount(e.SourceAccount)
}

func (e *ExtendFootprintTtl) GetSourceAccount() string { return e.SourceAccount }
