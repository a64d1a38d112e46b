package horizonclient

import (
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockedClient() *Client {
	c := &Client{URL: "https://horizon-testnet.stellar.org", HTTP: &http.Client{}}
	httpmock.ActivateNonDefault(c.HTTP)
	return c
}

func TestLoadAccountSuccess(t *testing.T) {
	c := newMockedClient()
	defer httpmock.DeactivateAndReset()
	httpmock.RegisterResponder("GET", "https://horizon-testnet.stellar.org/accounts/GABC",
		httpmock.NewStringResponder(200, `{"id":"GABC","sequence":"4294967296","home_domain":"example.com"}`))

	account, err := c.LoadAccount("GABC")
	require.NoError(t, err)
	assert.Equal(t, "GABC", account.ID)
	assert.Equal(t, "example.com", account.HomeDomain)

	seq, err := account.SequenceNumber()
	require.NoError(t, err)
	assert.Equal(t, int64(4294967296), seq)
}

func TestLoadAccountNotFound(t *testing.T) {
	c := newMockedClient()
	defer httpmock.DeactivateAndReset()
	httpmock.RegisterResponder("GET", "https://horizon-testnet.stellar.org/accounts/GMISSING",
		httpmock.NewStringResponder(404, `{"type":"https://stellar.org/horizon-errors/not_found","title":"Resource Missing","status":404,"detail":"The resource at the url requested was not found."}`))

	_, err := c.LoadAccount("GMISSING")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Resource Missing")
}

func TestLoadSimpleAccountSeedsSequence(t *testing.T) {
	c := newMockedClient()
	defer httpmock.DeactivateAndReset()
	httpmock.RegisterResponder("GET", "https://horizon-testnet.stellar.org/accounts/GABC",
		httpmock.NewStringResponder(200, `{"id":"GABC","sequence":"10"}`))

	account, err := c.LoadSimpleAccount("GABC")
	require.NoError(t, err)
	assert.Equal(t, "GABC", account.GetAccountID())
	seq, err := account.GetSequenceNumber()
	require.NoError(t, err)
	assert.Equal(t, int64(10), seq)
}

func TestSubmitTransaction(t *testing.T) {
	c := newMockedClient()
	defer httpmock.DeactivateAndReset()
	httpmock.RegisterResponder("POST", "https://horizon-testnet.stellar.org/transactions",
		httpmock.NewStringResponder(200, `{"hash":"deadbeef","ledger":100}`))

	resp, err := c.SubmitTransaction("AAAA")
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", resp.Hash)
	assert.Equal(t, int32(100), resp.Ledger)
}
