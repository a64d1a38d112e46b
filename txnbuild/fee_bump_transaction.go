package txnbuild

import (
	"github.com/stellar/go-stellar-sdk/keypair"
	"github.com/stellar/go-stellar-sdk/network"
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// FeeBumpTransactionParams collects what NewFeeBumpTransaction needs to
// wrap an existing transaction with a new fee and fee source.
type FeeBumpTransactionParams struct {
	Inner      *Transaction
	FeeAccount string
	BaseFee    int64
}

// FeeBumpTransaction wraps a signed inner Transaction with a new fee
// source that pays a higher per-operation fee, without altering the inner
// transaction or invalidating its signatures.
type FeeBumpTransaction struct {
	envelope xdr.TransactionEnvelope
}

// NewFeeBumpTransaction builds a FeeBumpTransaction around params.Inner.
func NewFeeBumpTransaction(params FeeBumpTransactionParams) (*FeeBumpTransaction, error) {
	if params.Inner == nil || params.Inner.envelope.V1 == nil {
		return nil, errors.New("Inner transaction is required")
	}
	baseFee := params.BaseFee
	if baseFee < MinBaseFee {
		baseFee = MinBaseFee
	}
	innerOpCount := int64(len(params.Inner.envelope.V1.Tx.Operations))
	fee := baseFee * (innerOpCount + 1)

	feeSource, err := xdr.MuxedAccountFromAddress(params.FeeAccount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse FeeAccount")
	}

	feeBumpTx := xdr.FeeBumpTransaction{
		FeeSource: feeSource,
		Fee:       xdr.Int64(fee),
		InnerTx: xdr.FeeBumpTransactionInnerTx{
			Type: xdr.EnvelopeTypeEnvelopeTypeTx,
			V1:   params.Inner.envelope.V1,
		},
	}

	return &FeeBumpTransaction{
		envelope: xdr.TransactionEnvelope{
			Type:    xdr.EnvelopeTypeEnvelopeTypeTxFeeBump,
			FeeBump: &xdr.FeeBumpTransactionEnvelope{Tx: feeBumpTx},
		},
	}, nil
}

// ToXDR returns the fee bump transaction's envelope.
func (t *FeeBumpTransaction) ToXDR() xdr.TransactionEnvelope { return t.envelope }

// Base64 returns the base64 encoded XDR of the fee bump envelope.
func (t *FeeBumpTransaction) Base64() (string, error) {
	return xdr.MarshalBase64(t.envelope)
}

// Hash computes the fee bump transaction's signature base hash.
func (t *FeeBumpTransaction) Hash(networkPassphrase string) ([32]byte, error) {
	return t.envelope.FeeBump.Tx.Hash(network.Network{Passphrase: networkPassphrase}.ID())
}

// Sign returns a new FeeBumpTransaction with signatures from kps appended.
func (t *FeeBumpTransaction) Sign(networkPassphrase string, kps ...*keypair.Full) (*FeeBumpTransaction, error) {
	hash, err := t.Hash(networkPassphrase)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash fee bump transaction")
	}
	sigs := make([]xdr.DecoratedSignature, len(t.envelope.FeeBump.Signatures))
	copy(sigs, t.envelope.FeeBump.Signatures)
	for _, kp := range kps {
		sig, err := kp.SignDecorated(hash[:])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to sign with %s", kp.Address())
		}
		sigs = append(sigs, xdr.NewDecoratedSignature(sig.Signature, sig.Hint))
	}
	next := *t
	next.envelope.FeeBump = &xdr.FeeBumpTransactionEnvelope{Tx: t.envelope.FeeBump.Tx, Signatures: sigs}
	return &next, nil
}
