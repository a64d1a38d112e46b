package xdr

import (
	"bytes"
	"crypto/sha256"

	"github.com/stellar/go-stellar-sdk/support/errors"
)

// TransactionExt carries the optional Soroban resource data alongside a
// V1 transaction. V is always 0 or 1; 1 means SorobanData is present.
type TransactionExt struct {
	V           int32
	SorobanData *SorobanTransactionData
}

func (x TransactionExt) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(x.V); err != nil {
		return err
	}
	if x.V == 1 {
		return x.SorobanData.EncodeTo(e)
	}
	return nil
}

func (x *TransactionExt) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	v, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	x.V = v
	switch x.V {
	case 0:
	case 1:
		var v SorobanTransactionData
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		x.SorobanData = &v
	default:
		return 0, d.fail(errors.Errorf("unsupported transaction ext version %d", x.V))
	}
	return d.offset - start, nil
}

// Transaction is the signable body of a classic or Soroban transaction:
// one source account, fee, sequence number, preconditions, memo and a
// list of operations executed atomically.
type Transaction struct {
	SourceAccount MuxedAccount
	Fee           Uint32
	SeqNum        SequenceNumber
	Cond          Preconditions
	Memo          Memo
	Operations    []Operation
	Ext           TransactionExt
}

func (t Transaction) EncodeTo(e *Encoder) error {
	if err := t.SourceAccount.EncodeTo(e); err != nil {
		return err
	}
	if err := t.Fee.EncodeTo(e); err != nil {
		return err
	}
	if err := t.SeqNum.EncodeTo(e); err != nil {
		return err
	}
	if err := t.Cond.EncodeTo(e); err != nil {
		return err
	}
	if err := t.Memo.EncodeTo(e); err != nil {
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
	return t.Ext.EncodeTo(e)
}

func (t *Transaction) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := t.SourceAccount.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := t.Fee.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := t.SeqNum.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := t.Cond.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := t.Memo.DecodeFrom(d); err != nil {
		return 0, err
	}
	n, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	t.Operations = make([]Operation, n)
	for i := range t.Operations {
		if _, err := t.Operations[i].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	if _, err := t.Ext.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

// Hash computes the transaction's signature base hash: SHA-256 of the
// network id, the ENVELOPE_TYPE_TX discriminant, and the encoded
// transaction body. This is what every signer actually signs.
func (t Transaction) Hash(networkId [32]byte) ([32]byte, error) {
	return hashWithEnvelopeType(networkId, EnvelopeTypeEnvelopeTypeTx, t)
}

func hashWithEnvelopeType(networkId [32]byte, envType EnvelopeType, body Encodable) ([32]byte, error) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	if err := enc.EncodeFixedOpaque(networkId[:]); err != nil {
		return [32]byte{}, err
	}
	if err := enc.EncodeInt(int32(envType)); err != nil {
		return [32]byte{}, err
	}
	if err := body.EncodeTo(enc); err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(buf.Bytes()), nil
}

// TransactionV1Envelope is a signed V1 transaction: the body plus the
// decorated signatures collected over its hash.
type TransactionV1Envelope struct {
	Tx         Transaction
	Signatures []DecoratedSignature
}

func (e TransactionV1Envelope) EncodeTo(enc *Encoder) error {
	if err := e.Tx.EncodeTo(enc); err != nil {
		return err
	}
	return encodeSignatures(enc, e.Signatures)
}

func (e *TransactionV1Envelope) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := e.Tx.DecodeFrom(d); err != nil {
		return 0, err
	}
	sigs, err := decodeSignatures(d)
	if err != nil {
		return 0, err
	}
	e.Signatures = sigs
	return d.offset - start, nil
}

func encodeSignatures(e *Encoder, sigs []DecoratedSignature) error {
	if err := e.EncodeUint(uint32(len(sigs))); err != nil {
		return err
	}
	for _, s := range sigs {
		if err := s.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func decodeSignatures(d *Decoder) ([]DecoratedSignature, error) {
	n, err := d.DecodeUint()
	if err != nil {
		return nil, err
	}
	sigs := make([]DecoratedSignature, n)
	for i := range sigs {
		if _, err := sigs[i].DecodeFrom(d); err != nil {
			return nil, err
		}
	}
	return sigs, nil
}

// TransactionV0 is the legacy pre-CAP-15 transaction body: a plain
// Ed25519 source account and optional time bounds instead of the general
// Preconditions union. Kept for decoding old envelopes; this SDK never
// builds one.
type TransactionV0 struct {
	SourceAccountEd25519 Uint256
	Fee                  Uint32
	SeqNum               SequenceNumber
	TimeBounds           *TimeBounds
	Memo                 Memo
	Operations           []Operation
	Ext                  ExtensionPoint
}

func (t TransactionV0) EncodeTo(e *Encoder) error {
	if err := t.SourceAccountEd25519.EncodeTo(e); err != nil {
		return err
	}
	if err := t.Fee.EncodeTo(e); err != nil {
		return err
	}
	if err := t.SeqNum.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeBool(t.TimeBounds != nil); err != nil {
		return err
	}
	if t.TimeBounds != nil {
		if err := t.TimeBounds.EncodeTo(e); err != nil {
			return err
		}
	}
	if err := t.Memo.EncodeTo(e); err != nil {
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
	return t.Ext.EncodeTo(e)
}

func (t *TransactionV0) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := t.SourceAccountEd25519.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := t.Fee.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := t.SeqNum.DecodeFrom(d); err != nil {
		return 0, err
	}
	has, err := d.DecodeBool()
	if err != nil {
		return 0, err
	}
	if has {
		var tb TimeBounds
		if _, err := tb.DecodeFrom(d); err != nil {
			return 0, err
		}
		t.TimeBounds = &tb
	}
	if _, err := t.Memo.DecodeFrom(d); err != nil {
		return 0, err
	}
	n, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	t.Operations = make([]Operation, n)
	for i := range t.Operations {
		if _, err := t.Operations[i].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	if _, err := t.Ext.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

type TransactionV0Envelope struct {
	Tx         TransactionV0
	Signatures []DecoratedSignature
}

func (e TransactionV0Envelope) EncodeTo(enc *Encoder) error {
	if err := e.Tx.EncodeTo(enc); err != nil {
		return err
	}
	return encodeSignatures(enc, e.Signatures)
}

func (e *TransactionV0Envelope) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := e.Tx.DecodeFrom(d); err != nil {
		return 0, err
	}
	sigs, err := decodeSignatures(d)
	if err != nil {
		return 0, err
	}
	e.Signatures = sigs
	return d.offset - start, nil
}

// FeeBumpTransaction wraps an existing V1 envelope with a new fee source
// and (typically higher) fee, without touching the inner transaction or
// its signatures.
type FeeBumpTransaction struct {
	FeeSource MuxedAccount
	Fee       Int64
	InnerTx   FeeBumpTransactionInnerTx
	Ext       ExtensionPoint
}

// FeeBumpTransactionInnerTx is presently always ENVELOPE_TYPE_TX; the
// union exists to match the wire format, which leaves room for future
// inner envelope kinds.
type FeeBumpTransactionInnerTx struct {
	Type EnvelopeType
	V1   *TransactionV1Envelope
}

func (i FeeBumpTransactionInnerTx) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(i.Type)); err != nil {
		return err
	}
	if i.Type != EnvelopeTypeEnvelopeTypeTx {
		return errors.Errorf("unsupported fee bump inner tx type %d", i.Type)
	}
	return i.V1.EncodeTo(e)
}

func (i *FeeBumpTransactionInnerTx) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	i.Type = EnvelopeType(t)
	if i.Type != EnvelopeTypeEnvelopeTypeTx {
		return 0, d.fail(errors.Errorf("unsupported fee bump inner tx type %d", i.Type))
	}
	var v TransactionV1Envelope
	if _, err := v.DecodeFrom(d); err != nil {
		return 0, err
	}
	i.V1 = &v
	return d.offset - start, nil
}

func (t FeeBumpTransaction) EncodeTo(e *Encoder) error {
	if err := t.FeeSource.EncodeTo(e); err != nil {
		return err
	}
	if err := t.Fee.EncodeTo(e); err != nil {
		return err
	}
	if err := t.InnerTx.EncodeTo(e); err != nil {
		return err
	}
	return t.Ext.EncodeTo(e)
}

func (t *FeeBumpTransaction) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := t.FeeSource.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := t.Fee.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := t.InnerTx.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := t.Ext.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

// Hash computes the fee bump transaction's signature base hash.
func (t FeeBumpTransaction) Hash(networkId [32]byte) ([32]byte, error) {
	return hashWithEnvelopeType(networkId, EnvelopeTypeEnvelopeTypeTxFeeBump, t)
}

type FeeBumpTransactionEnvelope struct {
	Tx         FeeBumpTransaction
	Signatures []DecoratedSignature
}

func (e FeeBumpTransactionEnvelope) EncodeTo(enc *Encoder) error {
	if err := e.Tx.EncodeTo(enc); err != nil {
		return err
	}
	return encodeSignatures(enc, e.Signatures)
}

func (e *FeeBumpTransactionEnvelope) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := e.Tx.DecodeFrom(d); err != nil {
		return 0, err
	}
	sigs, err := decodeSignatures(d)
	if err != nil {
		return 0, err
	}
	e.Signatures = sigs
	return d.offset - start, nil
}

// TransactionEnvelope is the union of every signed transaction shape this
// SDK can build or parse: legacy V0, current V1, or a V1 wrapped in a fee
// bump.
type TransactionEnvelope struct {
	Type    EnvelopeType
	V0      *TransactionV0Envelope
	V1      *TransactionV1Envelope
	FeeBump *FeeBumpTransactionEnvelope
}

func (e TransactionEnvelope) EncodeTo(enc *Encoder) error {
	if err := enc.EncodeInt(int32(e.Type)); err != nil {
		return err
	}
	switch e.Type {
	case EnvelopeTypeEnvelopeTypeTxV0:
		return e.V0.EncodeTo(enc)
	case EnvelopeTypeEnvelopeTypeTx:
		return e.V1.EncodeTo(enc)
	case EnvelopeTypeEnvelopeTypeTxFeeBump:
		return e.FeeBump.EncodeTo(enc)
	default:
		return errors.Errorf("unsupported envelope type %d", e.Type)
	}
}

func (e *TransactionEnvelope) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	e.Type = EnvelopeType(t)
	switch e.Type {
	case EnvelopeTypeEnvelopeTypeTxV0:
		var v TransactionV0Envelope
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		e.V0 = &v
	case EnvelopeTypeEnvelopeTypeTx:
		var v TransactionV1Envelope
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		e.V1 = &v
	case EnvelopeTypeEnvelopeTypeTxFeeBump:
		var v FeeBumpTransactionEnvelope
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		e.FeeBump = &v
	default:
		return 0, d.fail(errors.Errorf("unsupported envelope type %d", e.Type))
	}
	return d.offset - start, nil
}

// Signatures returns the decorated signatures of whichever envelope
// variant is set, or nil if e is the zero value.
func (e TransactionEnvelope) Signatures() []DecoratedSignature {
	switch e.Type {
	case EnvelopeTypeEnvelopeTypeTxV0:
		return e.V0.Signatures
	case EnvelopeTypeEnvelopeTypeTx:
		return e.V1.Signatures
	case EnvelopeTypeEnvelopeTypeTxFeeBump:
		return e.FeeBump.Signatures
	default:
		return nil
	}
}
