package txnbuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellar/go-stellar-sdk/keypair"
	"github.com/stellar/go-stellar-sdk/network"
	"github.com/stellar/go-stellar-sdk/xdr"
)

func TestNewTransactionBuildsV1Envelope(t *testing.T) {
	kp := keypair.MustRandom()
	account := NewSimpleAccount(kp.Address(), 41)

	tx, err := NewTransaction(TransactionParams{
		SourceAccount:        &account,
		IncrementSequenceNum: true,
		Operations: []Operation{
			&Payment{Destination: kp.Address(), Asset: NativeAsset{}, Amount: "10"},
		},
		BaseFee: MinBaseFee,
		Memo:    MemoText("hello"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), tx.SequenceNumber())
	assert.Equal(t, kp.Address(), tx.SourceAccount())

	envelope := tx.ToXDR()
	require.NotNil(t, envelope.V1)
	assert.Equal(t, xdr.Uint32(MinBaseFee), envelope.V1.Tx.Fee)
	require.Len(t, envelope.V1.Tx.Operations, 1)
}

func TestNewTransactionRejectsTooManyOperations(t *testing.T) {
	kp := keypair.MustRandom()
	account := NewSimpleAccount(kp.Address(), 1)

	ops := make([]Operation, 101)
	for i := range ops {
		ops[i] = &BumpSequence{BumpTo: int64(i)}
	}

	_, err := NewTransaction(TransactionParams{SourceAccount: &account, Operations: ops})
	require.ErrorIs(t, err, errTooManyOperations)
}

func TestNewTransactionRejectsNoOperations(t *testing.T) {
	kp := keypair.MustRandom()
	account := NewSimpleAccount(kp.Address(), 1)

	_, err := NewTransaction(TransactionParams{SourceAccount: &account})
	require.ErrorIs(t, err, errNoOperations)
}

func TestTransactionSignAndHashRoundTrip(t *testing.T) {
	kp := keypair.MustRandom()
	account := NewSimpleAccount(kp.Address(), 1)

	tx, err := NewTransaction(TransactionParams{
		SourceAccount: &account,
		Operations:    []Operation{&BumpSequence{BumpTo: 2}},
		BaseFee:       MinBaseFee,
	})
	require.NoError(t, err)

	signed, err := tx.Sign(network.TestNetworkPassphrase, kp)
	require.NoError(t, err)
	require.Len(t, signed.envelope.V1.Signatures, 1)

	b64, err := signed.Base64()
	require.NoError(t, err)
	assert.NotEmpty(t, b64)

	parsedTx, parsedFeeBump, err := TransactionFromXDR(b64)
	require.NoError(t, err)
	assert.Nil(t, parsedFeeBump)
	require.NotNil(t, parsedTx)
	assert.Equal(t, kp.Address(), parsedTx.SourceAccount())
}

func TestFeeBumpTransactionWrapsInner(t *testing.T) {
	kp := keypair.MustRandom()
	feeSource := keypair.MustRandom()
	account := NewSimpleAccount(kp.Address(), 1)

	inner, err := NewTransaction(TransactionParams{
		SourceAccount: &account,
		Operations:    []Operation{&BumpSequence{BumpTo: 2}},
		BaseFee:       MinBaseFee,
	})
	require.NoError(t, err)
	signedInner, err := inner.Sign(network.TestNetworkPassphrase, kp)
	require.NoError(t, err)

	feeBump, err := NewFeeBumpTransaction(FeeBumpTransactionParams{
		Inner:      signedInner,
		FeeAccount: feeSource.Address(),
		BaseFee:    MinBaseFee * 2,
	})
	require.NoError(t, err)

	signedFeeBump, err := feeBump.Sign(network.TestNetworkPassphrase, feeSource)
	require.NoError(t, err)

	envelope := signedFeeBump.ToXDR()
	require.NotNil(t, envelope.FeeBump)
	assert.Equal(t, xdr.Int64(MinBaseFee*2*2), envelope.FeeBump.Tx.Fee)
	require.Len(t, envelope.FeeBump.Signatures, 1)
}
