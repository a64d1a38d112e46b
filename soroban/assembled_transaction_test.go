package soroban

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellar/go-stellar-sdk/clients/stellarrpc"
	"github.com/stellar/go-stellar-sdk/keypair"
	"github.com/stellar/go-stellar-sdk/network"
	"github.com/stellar/go-stellar-sdk/soroban/scval"
	"github.com/stellar/go-stellar-sdk/txnbuild"
	"github.com/stellar/go-stellar-sdk/xdr"
)

const rpcURL = "https://rpc.example.com/soroban/rpc"

// activateMock mirrors clients/stellarrpc's own test helper: httpmock is
// process-global, so every test using it activates and tears down on its
// own.
func activateMock(t *testing.T) {
	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)
}

// multiMethodResponder dispatches by the JSON-RPC "method" field, so a
// single test can stand in for the whole simulate/send/get sequence a real
// node would serve across several calls. Each method maps to a queue of raw
// JSON results consumed in order; the last entry repeats once exhausted.
func multiMethodResponder(byMethod map[string][]string) httpmock.Responder {
	calls := map[string]int{}
	return func(req *http.Request) (*http.Response, error) {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		var parsed struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		if err := json.Unmarshal(body, &parsed); err != nil {
			return nil, err
		}
		queue, ok := byMethod[parsed.Method]
		if !ok || len(queue) == 0 {
			return httpmock.NewStringResponse(500, fmt.Sprintf("no responder for method %q", parsed.Method)), nil
		}
		idx := calls[parsed.Method]
		if idx >= len(queue) {
			idx = len(queue) - 1
		}
		calls[parsed.Method]++
		respBody := fmt.Sprintf(`{"jsonrpc":"2.0","id":%s,"result":%s}`, string(parsed.ID), queue[idx])
		return httpmock.NewStringResponse(200, respBody), nil
	}
}

func accountLedgerEntryJSON(t *testing.T, accountID string, seq int64) string {
	t.Helper()
	id, err := xdr.AddressToAccountId(accountID)
	require.NoError(t, err)
	entry := xdr.LedgerEntry{
		Data: xdr.LedgerEntryData{
			Type: xdr.LedgerEntryTypeAccount,
			Account: &xdr.AccountEntry{
				AccountId: id,
				SeqNum:    xdr.SequenceNumber(seq),
			},
		},
	}
	b64, err := xdr.MarshalBase64(entry)
	require.NoError(t, err)
	return fmt.Sprintf(`{"entries":[{"key":"unused","xdr":%q,"lastModifiedLedgerSeq":1}],"latestLedger":100}`, b64)
}

func sorobanDataJSON(t *testing.T, readWrite []xdr.LedgerKey) string {
	t.Helper()
	data := xdr.SorobanTransactionData{
		Resources: xdr.SorobanResources{
			Footprint: xdr.LedgerFootprint{ReadWrite: readWrite},
		},
	}
	b64, err := xdr.MarshalBase64(data)
	require.NoError(t, err)
	return b64
}

func scValJSON(t *testing.T, v xdr.ScVal) string {
	t.Helper()
	b64, err := xdr.MarshalBase64(v)
	require.NoError(t, err)
	return b64
}

func contractDataKey(t *testing.T, contract string) xdr.LedgerKey {
	t.Helper()
	addr, err := xdr.AddressToScAddress(contract)
	require.NoError(t, err)
	return xdr.LedgerKey{
		Type: xdr.LedgerEntryTypeContractData,
		ContractData: &xdr.LedgerKeyContractData{
			Contract:   addr,
			Key:        scval.ToU32(0),
			Durability: xdr.ContractDataDurabilityPersistent,
		},
	}
}

func txMetaSuccessJSON(t *testing.T, returnValue xdr.ScVal) string {
	t.Helper()
	meta := xdr.TransactionMeta{
		V: 3,
		V3: &xdr.TransactionMetaV3{
			SorobanMeta: &xdr.SorobanTransactionMeta{ReturnValue: returnValue},
		},
	}
	b64, err := xdr.MarshalBase64(meta)
	require.NoError(t, err)
	return b64
}

func TestAssembledTransactionReadCall(t *testing.T) {
	activateMock(t)
	source := "GAIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCF6M"
	contract := "CARCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEVQO"

	returnVal := scval.ToU32(42)
	httpmock.RegisterResponder("POST", rpcURL, multiMethodResponder(map[string][]string{
		"getLedgerEntries": {accountLedgerEntryJSON(t, source, 10)},
		"simulateTransaction": {fmt.Sprintf(
			`{"transactionData":%q,"minResourceFee":"100","results":[{"xdr":%q}],"latestLedger":42,"cost":{"cpuInsns":"1","memBytes":"1"}}`,
			sorobanDataJSON(t, nil), scValJSON(t, returnVal))},
	}))

	rpc := stellarrpc.NewClient(rpcURL)
	op, err := txnbuild.InvokeContractFunction(contract, "get", nil)
	require.NoError(t, err)

	at := NewAssembledTransaction(rpc, network.TestNetwork(), source, op)
	require.NoError(t, at.Simulate(context.Background(), true))
	assert.True(t, at.IsReadCall())

	res, err := at.Result()
	require.NoError(t, err)
	scv, ok := res.(xdr.ScVal)
	require.True(t, ok)
	u32, err := scval.FromU32(scv)
	require.NoError(t, err)
	assert.EqualValues(t, 42, u32)

	// a read call refuses to sign unless forced.
	kp, err := keypair.Random()
	require.NoError(t, err)
	err = at.Sign(kp, false)
	var noSig *NoSignatureNeededError
	require.ErrorAs(t, err, &noSig)
}

func TestAssembledTransactionWriteCallSignAndSubmit(t *testing.T) {
	activateMock(t)
	kp, err := keypair.Random()
	require.NoError(t, err)
	source := kp.Address()
	contract := "CARCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEVQO"

	returnVal := scval.ToBool(true)
	httpmock.RegisterResponder("POST", rpcURL, multiMethodResponder(map[string][]string{
		"getLedgerEntries": {accountLedgerEntryJSON(t, source, 10)},
		"simulateTransaction": {fmt.Sprintf(
			`{"transactionData":%q,"minResourceFee":"100","results":[{"xdr":%q}],"latestLedger":42,"cost":{"cpuInsns":"1","memBytes":"1"}}`,
			sorobanDataJSON(t, []xdr.LedgerKey{contractDataKey(t, contract)}), scValJSON(t, xdr.ScVal{Type: xdr.ScvVoid}))},
		"sendTransaction": {`{"status":"PENDING","hash":"deadbeef","latestLedger":42,"latestLedgerCloseTime":"100"}`},
		"getTransaction": {fmt.Sprintf(
			`{"status":"SUCCESS","latestLedger":43,"latestLedgerCloseTime":"101","oldestLedger":1,"oldestLedgerCloseTime":"1","resultMetaXdr":%q}`,
			txMetaSuccessJSON(t, returnVal))},
	}))

	rpc := stellarrpc.NewClient(rpcURL)
	op, err := txnbuild.InvokeContractFunction(contract, "set", []xdr.ScVal{scval.ToU32(1)})
	require.NoError(t, err)

	at := NewAssembledTransaction(rpc, network.TestNetwork(), source, op)
	require.NoError(t, at.Simulate(context.Background(), true))
	assert.False(t, at.IsReadCall())

	raw, err := at.SignAndSubmit(context.Background(), kp)
	require.NoError(t, err)
	scv, ok := raw.(xdr.ScVal)
	require.True(t, ok)
	b, err := scval.FromBool(scv)
	require.NoError(t, err)
	assert.True(t, b)
}

func TestAssembledTransactionNeedsMoreSignatures(t *testing.T) {
	activateMock(t)
	source := "GAIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCF6M"
	otherSigner, err := keypair.Random()
	require.NoError(t, err)
	contract := "CARCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEVQO"

	otherAddr, err := xdr.AddressToScAddress(otherSigner.Address())
	require.NoError(t, err)
	contractAddr, err := xdr.AddressToScAddress(contract)
	require.NoError(t, err)
	authEntry := xdr.SorobanAuthorizationEntry{
		Credentials: xdr.SorobanCredentials{
			Type: xdr.SorobanCredentialsTypeSorobanCredentialsAddress,
			Address: &xdr.SorobanAddressCredentials{
				Address:   otherAddr,
				Signature: xdr.ScVal{Type: xdr.ScvVoid},
			},
		},
		RootInvocation: xdr.SorobanAuthorizedInvocation{
			Function: xdr.SorobanAuthorizedFunction{
				Type: xdr.SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeContractFn,
				ContractFn: &xdr.InvokeContractArgs{
					ContractAddress: contractAddr,
					FunctionName:    "swap",
				},
			},
		},
	}
	authB64, err := xdr.MarshalBase64(authEntry)
	require.NoError(t, err)

	httpmock.RegisterResponder("POST", rpcURL, multiMethodResponder(map[string][]string{
		"getLedgerEntries": {accountLedgerEntryJSON(t, source, 10)},
		"simulateTransaction": {fmt.Sprintf(
			`{"transactionData":%q,"minResourceFee":"100","results":[{"xdr":%q,"auth":[%q]}],"latestLedger":42,"cost":{"cpuInsns":"1","memBytes":"1"}}`,
			sorobanDataJSON(t, []xdr.LedgerKey{contractDataKey(t, contract)}), scValJSON(t, xdr.ScVal{Type: xdr.ScvVoid}), authB64)},
	}))

	rpc := stellarrpc.NewClient(rpcURL)
	op, err := txnbuild.InvokeContractFunction(contract, "swap", nil)
	require.NoError(t, err)

	at := NewAssembledTransaction(rpc, network.TestNetwork(), source, op)
	require.NoError(t, at.Simulate(context.Background(), true))

	addrs := at.NeedsNonInvokerSigningBy(false)
	assert.Equal(t, []string{otherSigner.Address()}, addrs)

	invokerKp, err := keypair.Random()
	require.NoError(t, err)
	err = at.Sign(invokerKp, false)
	var needMore *NeedsMoreSignaturesError
	require.ErrorAs(t, err, &needMore)
	assert.Equal(t, []string{otherSigner.Address()}, needMore.Addresses)
}

func TestAssembledTransactionRestoreThenRetry(t *testing.T) {
	activateMock(t)
	kp, err := keypair.Random()
	require.NoError(t, err)
	source := kp.Address()
	contract := "CARCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEVQO"

	preambleData := sorobanDataJSON(t, []xdr.LedgerKey{contractDataKey(t, contract)})
	liveData := sorobanDataJSON(t, []xdr.LedgerKey{contractDataKey(t, contract)})
	returnVal := scval.ToBool(true)

	simulateResults := []string{
		// first call: needs restore.
		fmt.Sprintf(`{"transactionData":%q,"minResourceFee":"100","results":[{"xdr":%q}],"latestLedger":42,"cost":{"cpuInsns":"1","memBytes":"1"},"restorePreamble":{"transactionData":%q,"minResourceFee":"50"}}`,
			liveData, scValJSON(t, xdr.ScVal{Type: xdr.ScvVoid}), preambleData),
		// restore sub-pipeline's own simulate of RestoreFootprint.
		fmt.Sprintf(`{"transactionData":%q,"minResourceFee":"50","results":[],"latestLedger":42,"cost":{"cpuInsns":"1","memBytes":"1"}}`, preambleData),
		// re-simulate after restore succeeds.
		fmt.Sprintf(`{"transactionData":%q,"minResourceFee":"100","results":[{"xdr":%q}],"latestLedger":42,"cost":{"cpuInsns":"1","memBytes":"1"}}`,
			liveData, scValJSON(t, returnVal)),
	}

	httpmock.RegisterResponder("POST", rpcURL, multiMethodResponder(map[string][]string{
		"getLedgerEntries":    {accountLedgerEntryJSON(t, source, 10)},
		"simulateTransaction": simulateResults,
		"sendTransaction":     {`{"status":"PENDING","hash":"restorehash","latestLedger":42,"latestLedgerCloseTime":"100"}`},
		"getTransaction": {fmt.Sprintf(
			`{"status":"SUCCESS","latestLedger":43,"latestLedgerCloseTime":"101","oldestLedger":1,"oldestLedgerCloseTime":"1","resultMetaXdr":%q}`,
			txMetaSuccessJSON(t, scval.ToBool(true)))},
	}))

	rpc := stellarrpc.NewClient(rpcURL)
	op, err := txnbuild.InvokeContractFunction(contract, "bump", nil)
	require.NoError(t, err)

	at := NewAssembledTransaction(rpc, network.TestNetwork(), source, op, WithTransactionSigner(kp))
	require.NoError(t, at.Simulate(context.Background(), true))
	require.False(t, at.restorePending)

	raw, err := at.SignAndSubmit(context.Background(), kp)
	require.NoError(t, err)
	scv, ok := raw.(xdr.ScVal)
	require.True(t, ok)
	b, err := scval.FromBool(scv)
	require.NoError(t, err)
	assert.True(t, b)
}

func TestAssembledTransactionRestorePendingWithoutRestoreFailsSign(t *testing.T) {
	activateMock(t)
	kp, err := keypair.Random()
	require.NoError(t, err)
	source := kp.Address()
	contract := "CARCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEVQO"

	data := sorobanDataJSON(t, []xdr.LedgerKey{contractDataKey(t, contract)})
	httpmock.RegisterResponder("POST", rpcURL, multiMethodResponder(map[string][]string{
		"getLedgerEntries": {accountLedgerEntryJSON(t, source, 10)},
		"simulateTransaction": {fmt.Sprintf(
			`{"transactionData":%q,"minResourceFee":"100","results":[{"xdr":%q}],"latestLedger":42,"cost":{"cpuInsns":"1","memBytes":"1"},"restorePreamble":{"transactionData":%q,"minResourceFee":"50"}}`,
			data, scValJSON(t, xdr.ScVal{Type: xdr.ScvVoid}), data)},
	}))

	rpc := stellarrpc.NewClient(rpcURL)
	op, err := txnbuild.InvokeContractFunction(contract, "bump", nil)
	require.NoError(t, err)

	at := NewAssembledTransaction(rpc, network.TestNetwork(), source, op)
	// restore=false: caller inspects the pending restore instead of the
	// pipeline running it automatically.
	require.NoError(t, at.Simulate(context.Background(), false))
	assert.True(t, at.restorePending)

	err = at.Sign(kp, false)
	var expired *ExpiredStateError
	require.ErrorAs(t, err, &expired)
}

func TestAssembledTransactionSubmitFailed(t *testing.T) {
	activateMock(t)
	kp, err := keypair.Random()
	require.NoError(t, err)
	source := kp.Address()
	contract := "CARCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEVQO"

	httpmock.RegisterResponder("POST", rpcURL, multiMethodResponder(map[string][]string{
		"getLedgerEntries": {accountLedgerEntryJSON(t, source, 10)},
		"simulateTransaction": {fmt.Sprintf(
			`{"transactionData":%q,"minResourceFee":"100","results":[{"xdr":%q}],"latestLedger":42,"cost":{"cpuInsns":"1","memBytes":"1"}}`,
			sorobanDataJSON(t, []xdr.LedgerKey{contractDataKey(t, contract)}), scValJSON(t, xdr.ScVal{Type: xdr.ScvVoid}))},
		"sendTransaction": {`{"status":"PENDING","hash":"failhash","latestLedger":42,"latestLedgerCloseTime":"100"}`},
		"getTransaction":  {`{"status":"FAILED","latestLedger":43,"latestLedgerCloseTime":"101","oldestLedger":1,"oldestLedgerCloseTime":"1","resultXdr":"AAAAAAAAAGT////7AAAAAA=="}`},
	}))

	rpc := stellarrpc.NewClient(rpcURL)
	op, err := txnbuild.InvokeContractFunction(contract, "fail", nil)
	require.NoError(t, err)

	at := NewAssembledTransaction(rpc, network.TestNetwork(), source, op)
	require.NoError(t, at.Simulate(context.Background(), true))

	_, err = at.SignAndSubmit(context.Background(), kp)
	var failed *TransactionFailedError
	require.ErrorAs(t, err, &failed)
}

func TestWithOptionalSigner(t *testing.T) {
	opts := withOptionalSigner(nil, []Option{WithAutoSubmit(false)})
	assert.Len(t, opts, 1)

	kp, err := keypair.Random()
	require.NoError(t, err)
	opts = withOptionalSigner(kp, []Option{WithAutoSubmit(false)})
	assert.Len(t, opts, 2)
	o := newOptions(opts...)
	assert.NotNil(t, o.transactionSigner)
}
