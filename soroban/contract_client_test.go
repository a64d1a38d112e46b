package soroban

import (
	"context"
	"crypto/sha256"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jarcoal/httpmock"

	"github.com/stellar/go-stellar-sdk/clients/stellarrpc"
	"github.com/stellar/go-stellar-sdk/keypair"
	"github.com/stellar/go-stellar-sdk/network"
	"github.com/stellar/go-stellar-sdk/soroban/scval"
	"github.com/stellar/go-stellar-sdk/xdr"
)

const testContract = "CARCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEVQO"

func instanceLedgerEntryJSON(t *testing.T, wasmHash xdr.Hash) string {
	t.Helper()
	addr, err := xdr.AddressToScAddress(testContract)
	require.NoError(t, err)
	entry := xdr.LedgerEntry{
		Data: xdr.LedgerEntryData{
			Type: xdr.LedgerEntryTypeContractData,
			ContractData: &xdr.ContractDataEntry{
				Contract:   addr,
				Key:        xdr.ScVal{Type: xdr.ScvLedgerKeyContractInstance},
				Durability: xdr.ContractDataDurabilityPersistent,
				Val: xdr.ScVal{
					Type: xdr.ScvContractInstance,
					Instance: &xdr.ScContractInstance{
						Executable: xdr.ContractExecutable{
							Type:     xdr.ContractExecutableTypeContractExecutableWasm,
							WasmHash: &wasmHash,
						},
					},
				},
			},
		},
	}
	b64, err := xdr.MarshalBase64(entry)
	require.NoError(t, err)
	return fmt.Sprintf(`{"entries":[{"key":"unused","xdr":%q,"lastModifiedLedgerSeq":1}],"latestLedger":100}`, b64)
}

func codeLedgerEntryJSON(t *testing.T, wasmHash xdr.Hash, code []byte) string {
	t.Helper()
	entry := xdr.LedgerEntry{
		Data: xdr.LedgerEntryData{
			Type: xdr.LedgerEntryTypeContractCode,
			ContractCode: &xdr.ContractCodeEntry{
				Hash: wasmHash,
				Code: code,
			},
		},
	}
	b64, err := xdr.MarshalBase64(entry)
	require.NoError(t, err)
	return fmt.Sprintf(`{"entries":[{"key":"unused","xdr":%q,"lastModifiedLedgerSeq":1}],"latestLedger":100}`, b64)
}

func TestContractClientFetchWasm(t *testing.T) {
	activateMock(t)

	spec := sampleSpecEntry(t)
	raw, err := xdr.Marshal(spec)
	require.NoError(t, err)
	wasm := buildWasm(map[string][]byte{"contractspecv0": raw})
	wasmHash := sha256.Sum256(wasm)

	httpmock.RegisterResponder("POST", rpcURL, multiMethodResponder(map[string][]string{
		"getLedgerEntries": {
			instanceLedgerEntryJSON(t, wasmHash),
			codeLedgerEntryJSON(t, wasmHash, wasm),
		},
	}))

	cc := &ContractClient{rpc: stellarrpc.NewClient(rpcURL), network: network.TestNetwork(), contractID: testContract}
	got, err := cc.fetchWasm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, wasm, got)
}

func TestContractClientFromNetworkLoadsSpec(t *testing.T) {
	activateMock(t)

	spec := sampleSpecEntry(t)
	raw, err := xdr.Marshal(spec)
	require.NoError(t, err)
	wasm := buildWasm(map[string][]byte{"contractspecv0": raw})
	wasmHash := sha256.Sum256(wasm)

	httpmock.RegisterResponder("POST", rpcURL, multiMethodResponder(map[string][]string{
		"getLedgerEntries": {
			instanceLedgerEntryJSON(t, wasmHash),
			codeLedgerEntryJSON(t, wasmHash, wasm),
		},
	}))

	cc, err := FromNetwork(context.Background(), testContract, rpcURL, network.TestNetwork(), true)
	require.NoError(t, err)
	require.NotNil(t, cc.spec)
	funcs := cc.spec.Funcs()
	require.Len(t, funcs, 1)
	assert.Equal(t, "echo", funcs[0].Name)
}

func TestContractClientInvokeSimulateOnly(t *testing.T) {
	activateMock(t)

	spec := sampleSpecEntry(t)
	raw, err := xdr.Marshal(spec)
	require.NoError(t, err)
	wasm := buildWasm(map[string][]byte{"contractspecv0": raw})
	wasmHash := sha256.Sum256(wasm)

	source := "GAIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCEIRCF6M"
	returnVal := scval.ToU32(7)

	httpmock.RegisterResponder("POST", rpcURL, multiMethodResponder(map[string][]string{
		"getLedgerEntries": {
			instanceLedgerEntryJSON(t, wasmHash),
			codeLedgerEntryJSON(t, wasmHash, wasm),
			accountLedgerEntryJSON(t, source, 10),
		},
		"simulateTransaction": {fmt.Sprintf(
			`{"transactionData":%q,"minResourceFee":"100","results":[{"xdr":%q}],"latestLedger":42,"cost":{"cpuInsns":"1","memBytes":"1"}}`,
			sorobanDataJSON(t, nil), scValJSON(t, returnVal))},
	}))

	cc, err := FromNetwork(context.Background(), testContract, rpcURL, network.TestNetwork(), true)
	require.NoError(t, err)

	res, err := cc.Invoke(context.Background(), "echo", map[string]interface{}{"x": uint32(7)}, source, nil, WithAutoSubmit(false))
	require.NoError(t, err)
	assert.EqualValues(t, 7, res)
}

func TestResolveSalt(t *testing.T) {
	var fixed [32]byte
	fixed[0] = 0xAB
	got, err := resolveSalt(&fixed)
	require.NoError(t, err)
	assert.Equal(t, fixed, got)

	random1, err := resolveSalt(nil)
	require.NoError(t, err)
	random2, err := resolveSalt(nil)
	require.NoError(t, err)
	assert.NotEqual(t, random1, random2)
}

func TestDeterministicContractIDIsStable(t *testing.T) {
	kp, err := keypair.Random()
	require.NoError(t, err)
	addr, err := xdr.AddressToScAddress(kp.Address())
	require.NoError(t, err)
	var salt [32]byte
	salt[0] = 0x01

	id1, err := deterministicContractID(addr, salt, network.TestNetwork())
	require.NoError(t, err)
	id2, err := deterministicContractID(addr, salt, network.TestNetwork())
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
	assert.True(t, len(id1) > 0 && id1[0] == 'C')

	salt[0] = 0x02
	id3, err := deterministicContractID(addr, salt, network.TestNetwork())
	require.NoError(t, err)
	assert.NotEqual(t, id1, id3)
}
