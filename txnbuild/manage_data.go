package txnbuild

import (
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// ManageData sets, updates, or deletes (nil Value) a name/value data entry
// on the source account.
type ManageData struct {
	Name          string
	Value         []byte
	SourceAccount string
}

func (m *ManageData) validateFields() error {
	if len(m.Name) > 64 {
		return errors.Errorf("data name %q exceeds 64 bytes", m.Name)
	}
	if len(m.Value) > 64 {
		return errors.New("data value exceeds 64 bytes")
	}
	return nil
}

func (m *ManageData) BuildXDR() (xdr.Operation, error) {
	if err := m.validateFields(); err != nil {
		return xdr.Operation{}, err
	}
	xdrOp := xdr.ManageDataOp{DataName: m.Name}
	if m.Value != nil {
		v := m.Value
		xdrOp.DataValue = &v
	}
	body, err := xdr.NewOperationBody(xdr.OperationTypeManageData, xdrOp)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, m.SourceAccount)
	return op, nil
}

func (m *ManageData) FromXDR(xdrOp xdr.Operation) error {
	result, ok := xdrOp.Body.GetManageDataOp()
	if !ok {
		return errors.New("error parsing manage_data operation from xdr")
	}
	m.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	m.Name = result.DataName
	if result.DataValue != nil {
		m.Value = *result.DataValue
	} else {
		m.Value = nil
	}
	return nil
}

func (m *ManageData) Validate() error {
	if err := m.validateFields(); err != nil {
		return err
	}
	return validateSourceAccount(m.SourceAccount)
}

func (m *ManageData) GetSourceAccount() string { return m.SourceAccount }
