package txnbuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellar/go-stellar-sdk/keypair"
)

func TestCreateAccountRoundTrip(t *testing.T) {
	source := keypair.MustRandom()
	dest := keypair.MustRandom()

	op := &CreateAccount{Destination: dest.Address(), StartingBalance: "100", SourceAccount: source.Address()}
	require.NoError(t, op.Validate())

	xdrOp, err := op.BuildXDR()
	require.NoError(t, err)

	var decoded CreateAccount
	require.NoError(t, decoded.FromXDR(xdrOp))
	assert.Equal(t, op.Destination, decoded.Destination)
	assert.Equal(t, op.StartingBalance, decoded.StartingBalance)
	assert.Equal(t, op.SourceAccount, decoded.SourceAccount)
}

func TestPaymentRoundTripWithCreditAsset(t *testing.T) {
	issuer := keypair.MustRandom()
	dest := keypair.MustRandom()

	op := &Payment{
		Destination: dest.Address(),
		Asset:       CreditAsset{Code: "USD", Issuer: issuer.Address()},
		Amount:      "12.5",
	}
	require.NoError(t, op.Validate())

	xdrOp, err := op.BuildXDR()
	require.NoError(t, err)

	var decoded Payment
	require.NoError(t, decoded.FromXDR(xdrOp))
	assert.Equal(t, op.Destination, decoded.Destination)
	assert.Equal(t, op.Amount, decoded.Amount)
	assert.Equal(t, op.Asset, decoded.Asset)
}

func TestManageDataRoundTripAndDeletion(t *testing.T) {
	op := &ManageData{Name: "config", Value: []byte("v1")}
	require.NoError(t, op.Validate())

	xdrOp, err := op.BuildXDR()
	require.NoError(t, err)

	var decoded ManageData
	require.NoError(t, decoded.FromXDR(xdrOp))
	assert.Equal(t, op.Value, decoded.Value)

	del := &ManageData{Name: "config", Value: nil}
	xdrDel, err := del.BuildXDR()
	require.NoError(t, err)
	var decodedDel ManageData
	require.NoError(t, decodedDel.FromXDR(xdrDel))
	assert.Nil(t, decodedDel.Value)
}

func TestSetOptionsRoundTripWithSigner(t *testing.T) {
	signer := keypair.MustRandom()
	masterWeight := uint32(1)
	op := &SetOptions{
		MasterWeight: &masterWeight,
		Signer:       &Signer{Address: signer.Address(), Weight: 5},
	}
	require.NoError(t, op.Validate())

	xdrOp, err := op.BuildXDR()
	require.NoError(t, err)

	var decoded SetOptions
	require.NoError(t, decoded.FromXDR(xdrOp))
	require.NotNil(t, decoded.MasterWeight)
	assert.Equal(t, uint32(1), *decoded.MasterWeight)
	require.NotNil(t, decoded.Signer)
	assert.Equal(t, signer.Address(), decoded.Signer.Address)
	assert.Equal(t, uint32(5), decoded.Signer.Weight)
}

func TestCreateClaimableBalanceRoundTrip(t *testing.T) {
	claimant := keypair.MustRandom()
	op := &CreateClaimableBalance{
		Asset:  NativeAsset{},
		Amount: "50",
		Claimants: []Claimant{
			{Destination: claimant.Address(), Predicate: NewClaimPredicateUnconditional()},
		},
	}
	require.NoError(t, op.Validate())

	xdrOp, err := op.BuildXDR()
	require.NoError(t, err)

	var decoded CreateClaimableBalance
	require.NoError(t, decoded.FromXDR(xdrOp))
	require.Len(t, decoded.Claimants, 1)
	assert.Equal(t, claimant.Address(), decoded.Claimants[0].Destination)
	assert.Equal(t, op.Amount, decoded.Amount)
}

func TestAccountMergeRoundTrip(t *testing.T) {
	dest := keypair.MustRandom()
	op := &AccountMerge{Destination: dest.Address()}
	require.NoError(t, op.Validate())

	xdrOp, err := op.BuildXDR()
	require.NoError(t, err)

	var decoded AccountMerge
	require.NoError(t, decoded.FromXDR(xdrOp))
	assert.Equal(t, dest.Address(), decoded.Destination)
}

func TestInvokeContractFunctionBuildsInvokeHostFunction(t *testing.T) {
	op, err := InvokeContractFunction("CCW67TSZV3SSS2HXMBQ5JFGCKJNXKZM7UQUWUZPUTHXSTZLEO7SJMI75", "hello", nil)
	require.NoError(t, err)
	require.NoError(t, op.Validate())

	xdrOp, err := op.BuildXDR()
	require.NoError(t, err)

	var decoded InvokeHostFunction
	require.NoError(t, decoded.FromXDR(xdrOp))
	require.NotNil(t, decoded.HostFunction.InvokeContract)
	assert.Equal(t, "hello", string(decoded.HostFunction.InvokeContract.FunctionName))
}
