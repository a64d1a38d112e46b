package txnbuild

import (
	"github.com/stellar/go-stellar-sdk/keypair"
	"github.com/stellar/go-stellar-sdk/network"
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// MinBaseFee is the minimum fee, in stroops, the network charges per
// operation.
const MinBaseFee int64 = 100

// maxOperationsPerTransaction bounds how many operations a single
// transaction may carry.
const maxOperationsPerTransaction = 100

// TransactionParams collects everything NewTransaction needs to build a
// Transaction.
type TransactionParams struct {
	SourceAccount        Account
	IncrementSequenceNum bool
	Operations           []Operation
	BaseFee              int64
	Memo                 Memo
	Preconditions        Preconditions
}

// Transaction is a built, unsigned or partially signed transaction. Its
// envelope is immutable; Sign and WithSorobanData return a new Transaction
// rather than mutating the receiver, matching the pack's convention of
// treating a signed transaction as the terminal state of a build pipeline.
type Transaction struct {
	envelope      xdr.TransactionEnvelope
	sourceAccount string
}

// NewTransaction assembles a Transaction from params, validating every
// operation and enforcing the network's 100 operation ceiling.
func NewTransaction(params TransactionParams) (*Transaction, error) {
	if len(params.Operations) == 0 {
		return nil, errNoOperations
	}
	if len(params.Operations) > maxOperationsPerTransaction {
		return nil, errTooManyOperations
	}
	if params.SourceAccount == nil {
		return nil, errors.New("SourceAccount is required")
	}
	for i, op := range params.Operations {
		if err := op.Validate(); err != nil {
			return nil, errors.Wrapf(err, "validating operation %d", i)
		}
	}

	baseFee := params.BaseFee
	if baseFee < MinBaseFee {
		baseFee = MinBaseFee
	}
	fee := baseFee * int64(len(params.Operations))

	seqNum, err := params.SourceAccount.GetSequenceNumber()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sequence number")
	}
	if params.IncrementSequenceNum {
		seqNum, err = params.SourceAccount.IncrementSequenceNumber()
		if err != nil {
			return nil, errors.Wrap(err, "failed to increment sequence number")
		}
	}

	sourceMuxed, err := xdr.MuxedAccountFromAddress(params.SourceAccount.GetAccountID())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse SourceAccount")
	}

	xdrOps, err := BuildOperations(params.Operations)
	if err != nil {
		return nil, err
	}

	memo, err := buildMemoXDR(params.Memo)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build Memo")
	}

	cond, err := params.Preconditions.BuildXDR()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build Preconditions")
	}

	tx := xdr.Transaction{
		SourceAccount: sourceMuxed,
		Fee:           xdr.Uint32(fee),
		SeqNum:        xdr.SequenceNumber(seqNum),
		Cond:          cond,
		Memo:          memo,
		Operations:    xdrOps,
	}

	return &Transaction{
		envelope: xdr.TransactionEnvelope{
			Type: xdr.EnvelopeTypeEnvelopeTypeTx,
			V1:   &xdr.TransactionV1Envelope{Tx: tx},
		},
		sourceAccount: params.SourceAccount.GetAccountID(),
	}, nil
}

// SourceAccount returns the transaction's source account address.
func (t *Transaction) SourceAccount() string { return t.sourceAccount }

// SequenceNumber returns the transaction's sequence number.
func (t *Transaction) SequenceNumber() int64 {
	return int64(t.envelope.V1.Tx.SeqNum)
}

// ToXDR returns the transaction's envelope, including any signatures
// collected so far.
func (t *Transaction) ToXDR() xdr.TransactionEnvelope { return t.envelope }

// Base64 returns the base64 encoded XDR of the transaction envelope.
func (t *Transaction) Base64() (string, error) {
	return xdr.MarshalBase64(t.envelope)
}

// Hash computes the signature base hash of the transaction under the given
// network passphrase.
func (t *Transaction) Hash(networkPassphrase string) ([32]byte, error) {
	return t.envelope.V1.Tx.Hash(network.Network{Passphrase: networkPassphrase}.ID())
}

// WithSorobanData attaches Soroban resource and fee data to the
// transaction, as returned by simulating it against a Soroban RPC server.
// It returns a new Transaction; the receiver is left untouched.
func (t *Transaction) WithSorobanData(data xdr.SorobanTransactionData) (*Transaction, error) {
	next := *t
	tx := next.envelope.V1.Tx
	tx.Ext = xdr.TransactionExt{V: 1, SorobanData: &data}
	next.envelope.V1 = &xdr.TransactionV1Envelope{Tx: tx, Signatures: next.envelope.V1.Signatures}
	return &next, nil
}

// Sign returns a new Transaction with signatures from kps appended to any
// the receiver already carries.
func (t *Transaction) Sign(networkPassphrase string, kps ...*keypair.Full) (*Transaction, error) {
	hash, err := t.Hash(networkPassphrase)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash transaction")
	}
	sigs := make([]xdr.DecoratedSignature, len(t.envelope.V1.Signatures))
	copy(sigs, t.envelope.V1.Signatures)
	for _, kp := range kps {
		sig, err := kp.SignDecorated(hash[:])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to sign with %s", kp.Address())
		}
		sigs = append(sigs, xdr.NewDecoratedSignature(sig.Signature, sig.Hint))
	}
	next := *t
	next.envelope.V1 = &xdr.TransactionV1Envelope{Tx: t.envelope.V1.Tx, Signatures: sigs}
	return &next, nil
}

// TransactionFromXDR parses a base64 encoded transaction envelope, which
// may be a plain V1 transaction or a fee bump.
func TransactionFromXDR(envelopeBase64 string) (*Transaction, *FeeBumpTransaction, error) {
	var envelope xdr.TransactionEnvelope
	if err := xdr.UnmarshalBase64(envelopeBase64, &envelope); err != nil {
		return nil, nil, errors.Wrap(err, "failed to unmarshal transaction envelope")
	}
	switch envelope.Type {
	case xdr.EnvelopeTypeEnvelopeTypeTx:
		return &Transaction{envelope: envelope, sourceAccount: envelope.V1.Tx.SourceAccount.Address()}, nil, nil
	case xdr.EnvelopeTypeEnvelopeTypeTxFeeBump:
		return nil, &FeeBumpTransaction{envelope: envelope}, nil
	default:
		return nil, nil, errors.Errorf("unsupported envelope type %d", envelope.Type)
	}
}
