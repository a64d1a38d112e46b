package stellarrpc

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jhttp.NewChannel uses http.DefaultClient's transport unless a custom
// *http.Client is supplied via jhttp.ChannelOptions, so these tests install
// httpmock globally and restore it afterward.
func activateMock(t *testing.T) {
	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)
}

func jsonRPCResponder(result string) httpmock.Responder {
	return func(req *http.Request) (*http.Response, error) {
		body := `{"jsonrpc":"2.0","id":1,"result":` + result + `}`
		return httpmock.NewStringResponse(200, body), nil
	}
}

func TestGetHealthSuccess(t *testing.T) {
	activateMock(t)
	httpmock.RegisterResponder("POST", "https://rpc.example.com/soroban/rpc",
		jsonRPCResponder(`{"status":"healthy","latestLedger":100,"oldestLedger":1,"ledgerRetentionWindow":120960}`))

	c := NewClient("https://rpc.example.com/soroban/rpc")
	resp, err := c.GetHealth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", resp.Status)
	assert.EqualValues(t, 100, resp.LatestLedger)
}

func TestSimulateTransactionSuccess(t *testing.T) {
	activateMock(t)
	httpmock.RegisterResponder("POST", "https://rpc.example.com/soroban/rpc",
		jsonRPCResponder(`{"transactionData":"AAAA","minResourceFee":"100","results":[{"xdr":"AAAB"}],"latestLedger":42,"cost":{"cpuInsns":"10","memBytes":"20"}}`))

	c := NewClient("https://rpc.example.com/soroban/rpc")
	resp, err := c.SimulateTransaction(context.Background(), "envelope-base64")
	require.NoError(t, err)
	assert.Empty(t, resp.Error)
	assert.Equal(t, int64(100), resp.MinResourceFee)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "AAAB", resp.Results[0].XDR)
}

func TestSendTransactionPending(t *testing.T) {
	activateMock(t)
	httpmock.RegisterResponder("POST", "https://rpc.example.com/soroban/rpc",
		jsonRPCResponder(`{"status":"PENDING","hash":"deadbeef","latestLedger":42,"latestLedgerCloseTime":"100"}`))

	c := NewClient("https://rpc.example.com/soroban/rpc")
	resp, err := c.SendTransaction(context.Background(), "envelope-base64")
	require.NoError(t, err)
	assert.Equal(t, SendTransactionStatusPending, resp.Status)
	assert.Equal(t, "deadbeef", resp.Hash)
}

func TestGetTransactionNotFound(t *testing.T) {
	activateMock(t)
	httpmock.RegisterResponder("POST", "https://rpc.example.com/soroban/rpc",
		jsonRPCResponder(`{"status":"NOT_FOUND","latestLedger":42,"latestLedgerCloseTime":"100","oldestLedger":1,"oldestLedgerCloseTime":"1"}`))

	c := NewClient("https://rpc.example.com/soroban/rpc")
	resp, err := c.GetTransaction(context.Background(), "deadbeef")
	require.NoError(t, err)
	assert.Equal(t, TransactionStatusNotFound, resp.Status)
}

func TestRpcErrorResponse(t *testing.T) {
	activateMock(t)
	httpmock.RegisterResponder("POST", "https://rpc.example.com/soroban/rpc",
		func(req *http.Request) (*http.Response, error) {
			return httpmock.NewStringResponse(200, `{"jsonrpc":"2.0","id":1,"error":{"code":-32602,"message":"invalid params"}}`), nil
		})

	c := NewClient("https://rpc.example.com/soroban/rpc")
	_, err := c.GetHealth(context.Background())
	require.Error(t, err)
	var rpcErr *RpcError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, "invalid params", rpcErr.Message)
}
