package soroban

import (
	"context"
	"crypto/rand"
	"crypto/sha256"

	"github.com/stellar/go-stellar-sdk/clients/stellarrpc"
	"github.com/stellar/go-stellar-sdk/keypair"
	"github.com/stellar/go-stellar-sdk/network"
	"github.com/stellar/go-stellar-sdk/soroban/contractspec"
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/txnbuild"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// ContractClient drives invocations of a single deployed contract. Its
// spec, when loaded, lets callers pass and receive native Go values
// instead of building xdr.ScVal arguments by hand.
type ContractClient struct {
	rpc        *stellarrpc.Client
	network    network.Network
	contractID string
	spec       *contractspec.ContractSpec
}

// FromNetwork connects a ContractClient to contractId over rpcUrl/net. When
// loadSpec is true it fetches the contract's deployed wasm and extracts its
// embedded interface declarations so Invoke can take named native
// arguments; otherwise only InvokeWithXdr is usable.
func FromNetwork(ctx context.Context, contractId string, rpcUrl string, net network.Network, loadSpec bool) (*ContractClient, error) {
	client := &ContractClient{rpc: stellarrpc.NewClient(rpcUrl), network: net, contractID: contractId}
	if !loadSpec {
		return client, nil
	}
	wasm, err := client.fetchWasm(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := parseContractSpecEntries(wasm)
	if err != nil {
		return nil, err
	}
	client.spec = contractspec.New(entries)
	return client, nil
}

// fetchWasm reads the contract's instance entry to find its wasm hash, then
// reads the code entry carrying the wasm bytes themselves.
func (cc *ContractClient) fetchWasm(ctx context.Context) ([]byte, error) {
	addr, err := xdr.AddressToScAddress(cc.contractID)
	if err != nil {
		return nil, errors.Wrap(err, "soroban: invalid contract address")
	}
	instanceKey := xdr.LedgerKey{
		Type: xdr.LedgerEntryTypeContractData,
		ContractData: &xdr.LedgerKeyContractData{
			Contract:   addr,
			Key:        xdr.ScVal{Type: xdr.ScvLedgerKeyContractInstance},
			Durability: xdr.ContractDataDurabilityPersistent,
		},
	}
	instanceKeyB64, err := xdr.MarshalBase64(instanceKey)
	if err != nil {
		return nil, err
	}
	resp, err := cc.rpc.GetLedgerEntries(ctx, []string{instanceKeyB64})
	if err != nil {
		return nil, err
	}
	if len(resp.Entries) == 0 {
		return nil, errors.Errorf("soroban: contract %s not found", cc.contractID)
	}
	var entry xdr.LedgerEntry
	if err := xdr.UnmarshalBase64(resp.Entries[0].XDR, &entry); err != nil {
		return nil, errors.Wrap(err, "soroban: decoding contract instance entry")
	}
	if entry.Data.ContractData == nil || entry.Data.ContractData.Val.Instance == nil {
		return nil, errors.Errorf("soroban: ledger entry for %s is not a contract instance", cc.contractID)
	}
	exec := entry.Data.ContractData.Val.Instance.Executable
	if exec.Type != xdr.ContractExecutableTypeContractExecutableWasm || exec.WasmHash == nil {
		return nil, errors.Errorf("soroban: contract %s has no wasm executable", cc.contractID)
	}

	codeKey := xdr.LedgerKey{Type: xdr.LedgerEntryTypeContractCode, ContractCode: &xdr.LedgerKeyContractCode{Hash: *exec.WasmHash}}
	codeKeyB64, err := xdr.MarshalBase64(codeKey)
	if err != nil {
		return nil, err
	}
	codeResp, err := cc.rpc.GetLedgerEntries(ctx, []string{codeKeyB64})
	if err != nil {
		return nil, err
	}
	if len(codeResp.Entries) == 0 {
		return nil, errors.Errorf("soroban: wasm code for contract %s not found", cc.contractID)
	}
	var codeEntry xdr.LedgerEntry
	if err := xdr.UnmarshalBase64(codeResp.Entries[0].XDR, &codeEntry); err != nil {
		return nil, errors.Wrap(err, "soroban: decoding contract code entry")
	}
	if codeEntry.Data.ContractCode == nil {
		return nil, errors.Errorf("soroban: ledger entry for wasm hash is not contract code")
	}
	return codeEntry.Data.ContractCode.Code, nil
}

// Invoke calls functionName with named arguments converted through the
// loaded spec, then signs and submits (or just simulates, per
// WithAutoSubmit/WithAutoSimulate) according to opts.
func (cc *ContractClient) Invoke(ctx context.Context, functionName string, args map[string]interface{}, source string, signer *keypair.Full, opts ...Option) (interface{}, error) {
	if cc.spec == nil {
		return nil, errors.New("soroban: contract client has no loaded spec, use InvokeWithXdr")
	}
	scArgs, err := cc.spec.FuncArgsToXdrSCValues(functionName, args)
	if err != nil {
		return nil, err
	}
	at, err := cc.InvokeWithXdr(ctx, functionName, scArgs, source, signer, opts...)
	if err != nil {
		return nil, err
	}
	if !at.opts.autoSubmit {
		raw, err := at.Result()
		if err != nil {
			return nil, err
		}
		return cc.toNative(functionName, raw)
	}
	raw, err := at.SignAndSubmit(ctx, signer)
	if err != nil {
		return nil, err
	}
	return cc.toNative(functionName, raw)
}

func (cc *ContractClient) toNative(functionName string, raw interface{}) (interface{}, error) {
	scv, ok := raw.(xdr.ScVal)
	if !ok {
		return raw, nil
	}
	return cc.spec.FuncResToNative(functionName, scv)
}

// InvokeWithXdr builds and simulates an invocation of functionName with
// already-encoded positional arguments, returning the AssembledTransaction
// so the caller can inspect, sign and submit it directly.
func (cc *ContractClient) InvokeWithXdr(ctx context.Context, functionName string, scArgs []xdr.ScVal, source string, signer *keypair.Full, opts ...Option) (*AssembledTransaction, error) {
	op, err := txnbuild.InvokeContractFunction(cc.contractID, functionName, scArgs)
	if err != nil {
		return nil, err
	}
	op.SourceAccount = source

	at := NewAssembledTransaction(cc.rpc, cc.network, source, op, withOptionalSigner(signer, opts)...)
	if !at.opts.autoSimulate {
		return at, nil
	}
	if err := at.Simulate(ctx, true); err != nil {
		return nil, err
	}
	return at, nil
}

// Install uploads wasm without deploying it, returning the wasm's hash for
// use with DeployFromWasmId.
func (cc *ContractClient) Install(ctx context.Context, wasm []byte, source string, signer *keypair.Full, opts ...Option) (xdr.Hash, error) {
	op := &txnbuild.InvokeHostFunction{
		HostFunction: xdr.HostFunction{
			Type:               xdr.HostFunctionTypeHostFunctionTypeUploadContractWasm,
			UploadContractWasm: &wasm,
		},
		SourceAccount: source,
	}

	at := NewAssembledTransaction(cc.rpc, cc.network, source, op, opts...)
	if err := at.Simulate(ctx, true); err != nil {
		return xdr.Hash{}, err
	}
	if _, err := at.SignAndSubmit(ctx, signer); err != nil {
		return xdr.Hash{}, err
	}
	return sha256.Sum256(wasm), nil
}

// DeployFromWasmId creates a new contract instance from a previously
// installed wasm hash through the createContract host function. ctorArgs
// are not passed on: no constructor arguments reach the contract, whether
// or not it declares a constructor. salt defaults to 32 random bytes when
// nil.
func DeployFromWasmId(ctx context.Context, rpc *stellarrpc.Client, net network.Network, wasmHash xdr.Hash, ctorArgs []xdr.ScVal, salt *[32]byte, source string, signer *keypair.Full, loadSpec bool, opts ...Option) (*ContractClient, error) {
	saltBytes, err := resolveSalt(salt)
	if err != nil {
		return nil, err
	}
	sourceAddr, err := xdr.AddressToScAddress(source)
	if err != nil {
		return nil, errors.Wrap(err, "soroban: invalid deploy source address")
	}

	createArgs := &xdr.CreateContractArgs{
		ContractIdPreimage: xdr.ContractIdPreimage{
			Type: xdr.ContractIdPreimageTypeContractIdPreimageFromAddress,
			FromAddress: &xdr.ContractIdPreimageFromAddress{
				Address: sourceAddr,
				Salt:    xdr.Uint256(saltBytes),
			},
		},
		Executable: xdr.ContractExecutable{Type: xdr.ContractExecutableTypeContractExecutableWasm, WasmHash: &wasmHash},
	}

	op := &txnbuild.InvokeHostFunction{
		HostFunction:  xdr.HostFunction{Type: xdr.HostFunctionTypeHostFunctionTypeCreateContract, CreateContract: createArgs},
		SourceAccount: source,
	}
	_ = ctorArgs // constructor arguments ride in CreateContractArgs under protocol 22's createContractV2; this SDK targets the pre-v2 createContract host function, which takes none.

	at := NewAssembledTransaction(rpc, net, source, op, withOptionalSigner(signer, opts)...)
	if err := at.Simulate(ctx, true); err != nil {
		return nil, err
	}
	if _, err := at.SignAndSubmit(ctx, signer); err != nil {
		return nil, err
	}

	contractID, err := deterministicContractID(sourceAddr, saltBytes, net)
	if err != nil {
		return nil, err
	}
	client := &ContractClient{rpc: rpc, network: net, contractID: contractID}
	if !loadSpec {
		return client, nil
	}
	wasm, err := client.fetchWasm(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := parseContractSpecEntries(wasm)
	if err != nil {
		return nil, err
	}
	client.spec = contractspec.New(entries)
	return client, nil
}

// Deploy uploads wasm and deploys it in two transactions, the common case
// for a first-time contract deployment.
func (cc *ContractClient) Deploy(ctx context.Context, wasm []byte, ctorArgs []xdr.ScVal, source string, signer *keypair.Full, loadSpec bool, opts ...Option) (*ContractClient, error) {
	hash, err := cc.Install(ctx, wasm, source, signer, opts...)
	if err != nil {
		return nil, err
	}
	return DeployFromWasmId(ctx, cc.rpc, cc.network, hash, ctorArgs, nil, source, signer, loadSpec, opts...)
}

// withOptionalSigner prepends WithTransactionSigner(signer) only when signer
// is non-nil, so a typed nil *keypair.Full never gets wrapped into a
// non-nil auth.Signer interface value.
func withOptionalSigner(signer *keypair.Full, opts []Option) []Option {
	if signer == nil {
		return opts
	}
	return append([]Option{WithTransactionSigner(signer)}, opts...)
}

func resolveSalt(salt *[32]byte) ([32]byte, error) {
	if salt != nil {
		return *salt, nil
	}
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		return b, errors.Wrap(err, "soroban: generating deployment salt")
	}
	return b, nil
}

// deterministicContractID mirrors the network's own contract id derivation
// for the fromAddress preimage, so a fresh ContractClient can be returned
// without a round trip to look the new id up.
func deterministicContractID(sourceAddr xdr.ScAddress, salt [32]byte, net network.Network) (string, error) {
	preimage := xdr.HashIdPreimage{
		Type: xdr.EnvelopeTypeEnvelopeTypeContractId,
		ContractId: &xdr.HashIdPreimageContractId{
			NetworkId: xdr.Hash(net.ID()),
			ContractIdPreimage: xdr.ContractIdPreimage{
				Type:        xdr.ContractIdPreimageTypeContractIdPreimageFromAddress,
				FromAddress: &xdr.ContractIdPreimageFromAddress{Address: sourceAddr, Salt: xdr.Uint256(salt)},
			},
		},
	}
	raw, err := xdr.Marshal(preimage)
	if err != nil {
		return "", errors.Wrap(err, "soroban: encoding contract id preimage")
	}
	sum := sha256.Sum256(raw)
	contractAddr := xdr.ScAddress{Type: xdr.ScAddressTypeScAddressTypeContract, ContractId: (*xdr.Hash)(&sum)}
	return contractAddr.Address(), nil
}
