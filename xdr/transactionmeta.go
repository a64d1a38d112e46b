package xdr

import "github.com/stellar/go-stellar-sdk/support/errors"

// ContractEventType discriminates the audience of a contract event.
type ContractEventType int32

const (
	ContractEventTypeSystem     ContractEventType = 0
	ContractEventTypeContract   ContractEventType = 1
	ContractEventTypeDiagnostic ContractEventType = 2
)

// ContractEventV0 is the body of a ContractEvent, the only body version
// the network currently emits.
type ContractEventV0 struct {
	Topics []ScVal
	Data   ScVal
}

func (c ContractEventV0) EncodeTo(e *Encoder) error {
	if err := e.EncodeUint(uint32(len(c.Topics))); err != nil {
		return err
	}
	for _, t := range c.Topics {
		if err := t.EncodeTo(e); err != nil {
			return err
		}
	}
	return c.Data.EncodeTo(e)
}

func (c *ContractEventV0) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	n, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	c.Topics = make([]ScVal, n)
	for i := range c.Topics {
		if _, err := c.Topics[i].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	if _, err := c.Data.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

// ContractEvent is one event a host function invocation published,
// optionally scoped to the contract that raised it.
type ContractEvent struct {
	Ext        ExtensionPoint
	ContractId *Hash
	Type       ContractEventType
	V          int32
	V0         *ContractEventV0
}

func (c ContractEvent) EncodeTo(e *Encoder) error {
	if err := c.Ext.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeBool(c.ContractId != nil); err != nil {
		return err
	}
	if c.ContractId != nil {
		if err := c.ContractId.EncodeTo(e); err != nil {
			return err
		}
	}
	if err := e.EncodeInt(int32(c.Type)); err != nil {
		return err
	}
	if err := e.EncodeInt(c.V); err != nil {
		return err
	}
	if c.V != 0 {
		return errors.Errorf("unsupported contract event body version %d", c.V)
	}
	return c.V0.EncodeTo(e)
}

func (c *ContractEvent) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := c.Ext.DecodeFrom(d); err != nil {
		return 0, err
	}
	present, err := d.DecodeBool()
	if err != nil {
		return 0, err
	}
	if present {
		var h Hash
		if _, err := h.DecodeFrom(d); err != nil {
			return 0, err
		}
		c.ContractId = &h
	}
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	c.Type = ContractEventType(t)
	v, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	c.V = v
	if v != 0 {
		return 0, d.fail(errors.Errorf("unsupported contract event body version %d", v))
	}
	var v0 ContractEventV0
	if _, err := v0.DecodeFrom(d); err != nil {
		return 0, err
	}
	c.V0 = &v0
	return d.offset - start, nil
}

// DiagnosticEvent wraps a ContractEvent with whether it occurred during a
// successful contract call, the form getTransaction's diagnosticEventsXdr
// returns events in.
type DiagnosticEvent struct {
	InSuccessfulContractCall bool
	Event                    ContractEvent
}

func (d2 DiagnosticEvent) EncodeTo(e *Encoder) error {
	if err := e.EncodeBool(d2.InSuccessfulContractCall); err != nil {
		return err
	}
	return d2.Event.EncodeTo(e)
}

func (d2 *DiagnosticEvent) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	v, err := d.DecodeBool()
	if err != nil {
		return 0, err
	}
	d2.InSuccessfulContractCall = v
	if _, err := d2.Event.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

// OperationMeta is the ledger-entry changes one operation within a
// transaction produced.
type OperationMeta struct {
	Changes LedgerEntryChanges
}

func (o OperationMeta) EncodeTo(e *Encoder) error { return o.Changes.EncodeTo(e) }
func (o *OperationMeta) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := o.Changes.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

// SorobanTransactionMeta carries a Soroban invocation's published events
// and the host function's return value.
type SorobanTransactionMeta struct {
	Ext              ExtensionPoint
	Events           []ContractEvent
	ReturnValue      ScVal
	DiagnosticEvents []DiagnosticEvent
}

func (s SorobanTransactionMeta) EncodeTo(e *Encoder) error {
	if err := s.Ext.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeUint(uint32(len(s.Events))); err != nil {
		return err
	}
	for _, ev := range s.Events {
		if err := ev.EncodeTo(e); err != nil {
			return err
		}
	}
	if err := s.ReturnValue.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeUint(uint32(len(s.DiagnosticEvents))); err != nil {
		return err
	}
	for _, ev := range s.DiagnosticEvents {
		if err := ev.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (s *SorobanTransactionMeta) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := s.Ext.DecodeFrom(d); err != nil {
		return 0, err
	}
	n, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	s.Events = make([]ContractEvent, n)
	for i := range s.Events {
		if _, err := s.Events[i].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	if _, err := s.ReturnValue.DecodeFrom(d); err != nil {
		return 0, err
	}
	n, err = d.DecodeUint()
	if err != nil {
		return 0, err
	}
	s.DiagnosticEvents = make([]DiagnosticEvent, n)
	for i := range s.DiagnosticEvents {
		if _, err := s.DiagnosticEvents[i].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	return d.offset - start, nil
}

// TransactionMetaV3 is the meta format for protocol 20-22 transactions,
// Soroban or classic.
type TransactionMetaV3 struct {
	Ext             ExtensionPoint
	TxChangesBefore LedgerEntryChanges
	Operations      []OperationMeta
	TxChangesAfter  LedgerEntryChanges
	SorobanMeta     *SorobanTransactionMeta
}

func (t TransactionMetaV3) EncodeTo(e *Encoder) error {
	if err := t.Ext.EncodeTo(e); err != nil {
		return err
	}
	if err := t.TxChangesBefore.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeUint(uint32(len(t.Operations))); err != nil {
		return err
	}
	for _, op := range t.Operations {
		if err := op.EncodeTo(e); err != nil {
			return err
		}
	}
	if err := t.TxChangesAfter.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeBool(t.SorobanMeta != nil); err != nil {
		return err
	}
	if t.SorobanMeta != nil {
		return t.SorobanMeta.EncodeTo(e)
	}
	return nil
}

func (t *TransactionMetaV3) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := t.Ext.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := t.TxChangesBefore.DecodeFrom(d); err != nil {
		return 0, err
	}
	n, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	t.Operations = make([]OperationMeta, n)
	for i := range t.Operations {
		if _, err := t.Operations[i].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	if _, err := t.TxChangesAfter.DecodeFrom(d); err != nil {
		return 0, err
	}
	present, err := d.DecodeBool()
	if err != nil {
		return 0, err
	}
	if present {
		var sm SorobanTransactionMeta
		if _, err := sm.DecodeFrom(d); err != nil {
			return 0, err
		}
		t.SorobanMeta = &sm
	}
	return d.offset - start, nil
}

// TransactionMetaV4 is the meta format introduced alongside parallel
// Soroban execution. This SDK does not touch the parallel-execution
// fields; it decodes the same shape as v3 so resultMetaXdr.v4.sorobanMeta
// is reachable.
type TransactionMetaV4 struct {
	Ext             ExtensionPoint
	TxChangesBefore LedgerEntryChanges
	Operations      []OperationMeta
	TxChangesAfter  LedgerEntryChanges
	SorobanMeta     *SorobanTransactionMeta
}

func (t TransactionMetaV4) EncodeTo(e *Encoder) error {
	v3 := TransactionMetaV3(t)
	return v3.EncodeTo(e)
}

func (t *TransactionMetaV4) DecodeFrom(d *Decoder) (int, error) {
	var v3 TransactionMetaV3
	n, err := v3.DecodeFrom(d)
	if err != nil {
		return 0, err
	}
	*t = TransactionMetaV4(v3)
	return n, nil
}

// TransactionMeta is the ledger-change and Soroban-return-value record a
// node produces for one applied transaction. Only the v3 and v4 arms are
// supported; earlier variants predate Soroban and have no return value to
// recover.
type TransactionMeta struct {
	V  int32
	V3 *TransactionMetaV3
	V4 *TransactionMetaV4
}

func (t TransactionMeta) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(t.V); err != nil {
		return err
	}
	switch t.V {
	case 3:
		return t.V3.EncodeTo(e)
	case 4:
		return t.V4.EncodeTo(e)
	default:
		return errors.Errorf("unsupported transaction meta version %d", t.V)
	}
}

func (t *TransactionMeta) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	v, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	t.V = v
	switch v {
	case 3:
		var v3 TransactionMetaV3
		if _, err := v3.DecodeFrom(d); err != nil {
			return 0, err
		}
		t.V3 = &v3
	case 4:
		var v4 TransactionMetaV4
		if _, err := v4.DecodeFrom(d); err != nil {
			return 0, err
		}
		t.V4 = &v4
	default:
		return 0, d.fail(errors.Errorf("unsupported transaction meta version %d", v))
	}
	return d.offset - start, nil
}

// ReturnValue extracts the Soroban host function's return value from a
// SUCCESS transaction's meta, the only reason this SDK decodes
// TransactionMeta at all.
func (t TransactionMeta) ReturnValue() (ScVal, error) {
	switch t.V {
	case 3:
		if t.V3.SorobanMeta == nil {
			return ScVal{}, errors.New("transaction meta v3 has no soroban meta")
		}
		return t.V3.SorobanMeta.ReturnValue, nil
	case 4:
		if t.V4.SorobanMeta == nil {
			return ScVal{}, errors.New("transaction meta v4 has no soroban meta")
		}
		return t.V4.SorobanMeta.ReturnValue, nil
	default:
		return ScVal{}, errors.Errorf("unsupported transaction meta version %d", t.V)
	}
}
