// Package stellarrpc is a Soroban JSON-RPC 2.0 client, implementing the
// seven methods the contract-client lifecycle uses; getEvents is not
// implemented. Grounded on the
// soroban-rpc test suite's own use of jrpc2.NewClient + jhttp.NewChannel +
// client.CallResult(ctx, method, params, &response).
package stellarrpc

import (
	"context"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/jhttp"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/support/log"
)

// Client is a Soroban RPC client bound to a single JSON-RPC endpoint.
type Client struct {
	url     string
	rpc     *jrpc2.Client
	limiter *rate.Limiter
	metrics *withMetrics
}

// ClientOption configures optional behavior on NewClient, following the
// functional-options convention stellar/go's own client constructors use.
type ClientOption func(*Client)

// WithRateLimiter bounds outbound call rate, mirroring the role
// stellar/throttled plays for Horizon traffic in the teacher codebase.
func WithRateLimiter(limiter *rate.Limiter) ClientOption {
	return func(c *Client) { c.limiter = limiter }
}

// WithMetrics registers Prometheus counters/summaries for every RPC call
// under registry, modeled on support/db.RegisterMetrics.
func WithMetrics(namespace string, registry *prometheus.Registry) ClientOption {
	return func(c *Client) { c.metrics = newWithMetrics(namespace, registry) }
}

// NewClient opens a JSON-RPC channel to url. The channel and underlying
// jrpc2.Client are created eagerly; no network round trip happens until the
// first call.
func NewClient(url string, opts ...ClientOption) *Client {
	channel := jhttp.NewChannel(url, nil)
	c := &Client{url: url, rpc: jrpc2.NewClient(channel, nil)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close shuts down the underlying JSON-RPC client and unregisters any
// metrics this client installed.
func (c *Client) Close() error {
	if c.metrics != nil {
		c.metrics.close()
	}
	return c.rpc.Close()
}

func (c *Client) call(ctx context.Context, method string, params, result interface{}) (err error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return errors.Wrap(err, "rate limiter wait failed")
		}
	}

	callID := uuid.NewString()
	logger := log.Ctx(ctx).WithField("method", method).WithField("call_id", callID)
	logger.Debug("stellarrpc call")

	if c.metrics != nil {
		timer := prometheus.NewTimer(prometheus.ObserverFunc(func(seconds float64) {
			c.metrics.observe(method, err, seconds)
		}))
		defer timer.ObserveDuration()
	}

	err = c.rpc.CallResult(ctx, method, params, result)
	if err != nil {
		err = asRpcError(err)
		logger.WithField("error", err).Warn("stellarrpc call failed")
		return err
	}
	return nil
}

// GetHealth reports node liveness.
func (c *Client) GetHealth(ctx context.Context) (GetHealthResponse, error) {
	var resp GetHealthResponse
	err := c.call(ctx, "getHealth", GetHealthRequest{}, &resp)
	return resp, err
}

// GetLatestLedger reports the most recently ingested ledger.
func (c *Client) GetLatestLedger(ctx context.Context) (GetLatestLedgerResponse, error) {
	var resp GetLatestLedgerResponse
	err := c.call(ctx, "getLatestLedger", GetLatestLedgerRequest{}, &resp)
	return resp, err
}

// GetNetwork reports the network this RPC node serves.
func (c *Client) GetNetwork(ctx context.Context) (GetNetworkResponse, error) {
	var resp GetNetworkResponse
	err := c.call(ctx, "getNetwork", GetNetworkRequest{}, &resp)
	return resp, err
}

// GetLedgerEntries fetches the current value of a set of ledger entries
// identified by base64 XDR LedgerKeys.
func (c *Client) GetLedgerEntries(ctx context.Context, keys []string) (GetLedgerEntriesResponse, error) {
	var resp GetLedgerEntriesResponse
	err := c.call(ctx, "getLedgerEntries", GetLedgerEntriesRequest{Keys: keys}, &resp)
	return resp, err
}

// SimulateTransaction preflights a base64 transaction envelope without
// submitting it.
func (c *Client) SimulateTransaction(ctx context.Context, transactionBase64 string) (SimulateTransactionResponse, error) {
	var resp SimulateTransactionResponse
	err := c.call(ctx, "simulateTransaction", SimulateTransactionRequest{Transaction: transactionBase64}, &resp)
	return resp, err
}

// SendTransaction submits a signed, assembled base64 transaction envelope.
// A nil error with Status != PENDING still requires the caller to treat the
// submission as not-yet-accepted; it is not itself a failure signal.
func (c *Client) SendTransaction(ctx context.Context, transactionBase64 string) (SendTransactionResponse, error) {
	var resp SendTransactionResponse
	err := c.call(ctx, "sendTransaction", SendTransactionRequest{Transaction: transactionBase64}, &resp)
	return resp, err
}

// GetTransaction polls for the outcome of a previously submitted
// transaction, identified by its hex transaction hash.
func (c *Client) GetTransaction(ctx context.Context, hash string) (GetTransactionResponse, error) {
	var resp GetTransactionResponse
	err := c.call(ctx, "getTransaction", GetTransactionRequest{Hash: hash}, &resp)
	return resp, err
}
