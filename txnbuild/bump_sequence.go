package txnbuild

import (
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// BumpSequence advances the source account's sequence number to BumpTo,
// invalidating any previously built but unsubmitted transaction with a
// lower sequence number.
type BumpSequence struct {
	BumpTo        int64
	SourceAccount string
}

func (b *BumpSequence) BuildXDR() (xdr.Operation, error) {
	xdrOp := xdr.BumpSequenceOp{BumpTo: xdr.SequenceNumber(b.BumpTo)}
	body, err := xdr.NewOperationBody(xdr.OperationTypeBumpSequence, xdrOp)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, b.SourceAccount)
	return op, nil
}

func (b *BumpSequence) FromXDR(xdrOp xdr.Operation) error {
	result, ok := xdrOp.Body.GetBumpSequenceOp()
	if !ok {
		return errors.New("error parsing bump_sequence operation from xdr")
	}
	b.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	b.BumpTo = int64(result.BumpTo)
	return nil
}

func (b *BumpSequence) Validate() error {
	return validateSourceAccount(b.SourceAccount)
}

func (b *BumpSequence) GetSourceAccount() string { return b.SourceAccount }
