package xdr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAccount(t *testing.T, seedByte byte) AccountId {
	t.Helper()
	var key Uint256
	key[0] = seedByte
	return AccountId{PublicKey: PublicKey{Type: PublicKeyTypePublicKeyTypeEd25519, Ed25519: &key}}
}

func TestTransactionEncodeDecodeRoundTrip(t *testing.T) {
	src := testAccount(t, 1)
	dest := testAccount(t, 2)
	tx := Transaction{
		SourceAccount: MuxedAccountFromAccountId(src),
		Fee:           100,
		SeqNum:        42,
		Cond:          Preconditions{Type: PreconditionTypePrecondNone},
		Memo:          MemoText("hi"),
		Operations: []Operation{
			{Body: OperationBody{
				Type:    OperationTypePayment,
				Payment: &PaymentOp{Destination: MuxedAccountFromAccountId(dest), Asset: NativeAsset(), Amount: 500},
			}},
		},
		Ext: TransactionExt{V: 0},
	}

	encoded, err := Marshal(tx)
	require.NoError(t, err)

	var decoded Transaction
	require.NoError(t, UnmarshalAll(encoded, &decoded))
	assert.Equal(t, tx.Fee, decoded.Fee)
	assert.Equal(t, tx.SeqNum, decoded.SeqNum)
	require.Len(t, decoded.Operations, 1)
	assert.Equal(t, OperationTypePayment, decoded.Operations[0].Body.Type)
	assert.Equal(t, Int64(500), decoded.Operations[0].Body.Payment.Amount)
}

func TestTransactionHashIsDeterministicAndContentSensitive(t *testing.T) {
	src := testAccount(t, 1)
	base := Transaction{
		SourceAccount: MuxedAccountFromAccountId(src),
		Fee:           100,
		SeqNum:        1,
		Cond:          Preconditions{Type: PreconditionTypePrecondNone},
		Memo:          MemoNone(),
	}
	var network [32]byte
	network[0] = 9

	h1, err := base.Hash(network)
	require.NoError(t, err)
	h2, err := base.Hash(network)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)

	changed := base
	changed.SeqNum = 2
	h3, err := changed.Hash(network)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h3)

	var otherNetwork [32]byte
	otherNetwork[0] = 10
	h4, err := base.Hash(otherNetwork)
	require.NoError(t, err)
	assert.NotEqual(t, h1, h4)
}

func TestTransactionEnvelopeRoundTrip(t *testing.T) {
	src := testAccount(t, 1)
	env := TransactionEnvelope{
		Type: EnvelopeTypeEnvelopeTypeTx,
		V1: &TransactionV1Envelope{
			Tx: Transaction{
				SourceAccount: MuxedAccountFromAccountId(src),
				Fee:           100,
				SeqNum:        1,
				Cond:          Preconditions{Type: PreconditionTypePrecondNone},
				Memo:          MemoNone(),
			},
			Signatures: []DecoratedSignature{
				NewDecoratedSignature(make([]byte, 64), [4]byte{1, 2, 3, 4}),
			},
		},
	}

	b64, err := MarshalBase64(env)
	require.NoError(t, err)

	var decoded TransactionEnvelope
	require.NoError(t, UnmarshalBase64(b64, &decoded))
	assert.Equal(t, EnvelopeTypeEnvelopeTypeTx, decoded.Type)
	require.Len(t, decoded.Signatures(), 1)
}

func TestFeeBumpTransactionHash(t *testing.T) {
	src := testAccount(t, 1)
	inner := TransactionV1Envelope{
		Tx: Transaction{
			SourceAccount: MuxedAccountFromAccountId(src),
			Fee:           100,
			SeqNum:        1,
			Cond:          Preconditions{Type: PreconditionTypePrecondNone},
			Memo:          MemoNone(),
		},
	}
	fb := FeeBumpTransaction{
		FeeSource: MuxedAccountFromAccountId(testAccount(t, 3)),
		Fee:       1000,
		InnerTx:   FeeBumpTransactionInnerTx{Type: EnvelopeTypeEnvelopeTypeTx, V1: &inner},
	}
	var network [32]byte
	h, err := fb.Hash(network)
	require.NoError(t, err)
	assert.NotEqual(t, [32]byte{}, h)
}
