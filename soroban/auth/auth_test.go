package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellar/go-stellar-sdk/keypair"
	"github.com/stellar/go-stellar-sdk/network"
	"github.com/stellar/go-stellar-sdk/soroban/scval"
	"github.com/stellar/go-stellar-sdk/xdr"
)

func TestAuthorizeEntrySourceAccountCredentialsPassThrough(t *testing.T) {
	entry := xdr.SorobanAuthorizationEntry{
		Credentials: xdr.SorobanCredentials{Type: xdr.SorobanCredentialsTypeSorobanCredentialsSourceAccount},
	}
	kp := keypair.MustRandom()

	got, err := AuthorizeEntry(entry, kp, 1000, network.TestNetwork())
	require.NoError(t, err)
	assert.Equal(t, entry, got)
}

func TestAuthorizeEntrySignsAddressCredentials(t *testing.T) {
	kp := keypair.MustRandom()
	addr, err := xdr.AddressToScAddress(kp.Address())
	require.NoError(t, err)

	entry := xdr.SorobanAuthorizationEntry{
		Credentials: xdr.SorobanCredentials{
			Type: xdr.SorobanCredentialsTypeSorobanCredentialsAddress,
			Address: &xdr.SorobanAddressCredentials{
				Address:                   addr,
				Nonce:                     42,
				SignatureExpirationLedger: 1,
				Signature:                 xdr.ScVal{Type: xdr.ScvVoid},
			},
		},
		RootInvocation: xdr.SorobanAuthorizedInvocation{},
	}

	got, err := AuthorizeEntry(entry, kp, 5000, network.TestNetwork())
	require.NoError(t, err)

	require.NotNil(t, got.Credentials.Address)
	assert.Equal(t, xdr.Uint32(5000), got.Credentials.Address.SignatureExpirationLedger)
	assert.False(t, scval.IsVoid(got.Credentials.Address.Signature))

	entries, err := scval.FromVec(got.Credentials.Address.Signature)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	mapEntries, err := scval.FromMap(entries[0])
	require.NoError(t, err)
	require.Len(t, mapEntries, 2)
}

func TestAuthorizeEntryRejectsMismatchedSigner(t *testing.T) {
	signerKp := keypair.MustRandom()
	otherKp := keypair.MustRandom()
	addr, err := xdr.AddressToScAddress(otherKp.Address())
	require.NoError(t, err)

	entry := xdr.SorobanAuthorizationEntry{
		Credentials: xdr.SorobanCredentials{
			Type: xdr.SorobanCredentialsTypeSorobanCredentialsAddress,
			Address: &xdr.SorobanAddressCredentials{
				Address: addr,
			},
		},
	}

	_, err = AuthorizeEntry(entry, signerKp, 100, network.TestNetwork())
	require.Error(t, err)
}

func TestRandomNonceIsNonZeroAndVaries(t *testing.T) {
	a, err := RandomNonce()
	require.NoError(t, err)
	b, err := RandomNonce()
	require.NoError(t, err)
	assert.NotZero(t, a)
	assert.NotEqual(t, a, b)
}
