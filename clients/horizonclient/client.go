// Package horizonclient is a minimal Horizon REST client, trimmed to the
// one call the core contract-client lifecycle actually needs: loading an
// account's current sequence number before building a transaction.
// Modeled on stellar/go's clients/horizon.Client.
package horizonclient

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/txnbuild"
)

// DefaultPublicURL and DefaultTestURL are the well-known Horizon endpoints,
// mirroring stellar/go/clients/horizon's DefaultTestNetURL convention.
const (
	DefaultPublicURL = "https://horizon.stellar.org"
	DefaultTestURL   = "https://horizon-testnet.stellar.org"
)

// Client is a thin wrapper around an *http.Client pointed at a Horizon
// server. The zero value is not usable; construct with NewClient.
type Client struct {
	URL  string
	HTTP *http.Client
}

// NewClient returns a Client for the given Horizon base URL using
// http.DefaultClient. Callers that need custom transport, timeouts, or
// tracing should set HTTP directly after construction.
func NewClient(url string) *Client {
	return &Client{URL: url, HTTP: http.DefaultClient}
}

// Account is the subset of Horizon's account resource this SDK cares about:
// enough to seed a txnbuild.SimpleAccount.
type Account struct {
	ID            string `json:"id"`
	Sequence      string `json:"sequence"`
	HomeDomain    string `json:"home_domain,omitempty"`
	SubentryCount int32  `json:"subentry_count"`
}

// SequenceNumber parses the account's sequence field, which Horizon encodes
// as a decimal string because it can exceed JSON's safe integer range.
func (a Account) SequenceNumber() (int64, error) {
	seq, err := strconv.ParseInt(a.Sequence, 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "parse sequence failed")
	}
	return seq, nil
}

// horizonError mirrors the RFC 7807 problem shape Horizon returns on
// non-2xx responses.
type horizonError struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func (e *horizonError) Error() string {
	return e.Title + ": " + e.Detail
}

func decodeResponse(resp *http.Response, dest interface{}) error {
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var herr horizonError
		if err := json.NewDecoder(resp.Body).Decode(&herr); err != nil {
			return errors.Errorf("horizon request failed with status %d", resp.StatusCode)
		}
		herr.Status = resp.StatusCode
		return &herr
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

// LoadAccount fetches the account state from Horizon. The returned error is
// either a transport error or a *horizonError wrapping Horizon's problem
// response (for example a 404 for an account that doesn't exist yet).
func (c *Client) LoadAccount(accountID string) (Account, error) {
	var account Account
	resp, err := c.HTTP.Get(c.URL + "/accounts/" + accountID)
	if err != nil {
		return account, errors.Wrap(err, "load account failed")
	}
	if err := decodeResponse(resp, &account); err != nil {
		return Account{}, err
	}
	return account, nil
}

// LoadSimpleAccount fetches the account and returns it as a
// txnbuild.SimpleAccount ready to seed a TransactionParams.SourceAccount.
func (c *Client) LoadSimpleAccount(accountID string) (txnbuild.SimpleAccount, error) {
	account, err := c.LoadAccount(accountID)
	if err != nil {
		return txnbuild.SimpleAccount{}, err
	}
	seq, err := account.SequenceNumber()
	if err != nil {
		return txnbuild.SimpleAccount{}, err
	}
	return txnbuild.NewSimpleAccount(account.ID, seq), nil
}

// SubmitTransactionResponse is the subset of Horizon's transaction-success
// resource this SDK surfaces back to callers.
type SubmitTransactionResponse struct {
	Hash   string `json:"hash"`
	Ledger int32  `json:"ledger"`
	Env    string `json:"envelope_xdr"`
	Result string `json:"result_xdr"`
}

// SubmitTransaction posts a base64 transaction envelope to Horizon.
func (c *Client) SubmitTransaction(transactionEnvelopeXdr string) (SubmitTransactionResponse, error) {
	var response SubmitTransactionResponse
	v := url.Values{}
	v.Set("tx", transactionEnvelopeXdr)
	resp, err := c.HTTP.PostForm(c.URL+"/transactions", v)
	if err != nil {
		return response, errors.Wrap(err, "submit transaction failed")
	}
	if err := decodeResponse(resp, &response); err != nil {
		return SubmitTransactionResponse{}, err
	}
	return response, nil
}
