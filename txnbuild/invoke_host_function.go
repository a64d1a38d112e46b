package txnbuild

import (
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// InvokeHostFunction submits a Soroban host function invocation: calling a
// deployed contract, deploying a new contract, or uploading contract wasm.
// Auth carries the signed or source-account authorization entries computed
// from a prior simulation.
type InvokeHostFunction struct {
	HostFunction  xdr.HostFunction
	Auth          []xdr.SorobanAuthorizationEntry
	SourceAccount string
}

// InvokeContractFunction builds an InvokeHostFunction that calls FunctionName
// on the contract at ContractAddress with the given already-encoded params.
func InvokeContractFunction(contractAddress string, functionName string, params []xdr.ScVal) (*InvokeHostFunction, error) {
	addr, err := xdr.AddressToScAddress(contractAddress)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse contract address")
	}
	return &InvokeHostFunction{
		HostFunction: xdr.HostFunction{
			Type: xdr.HostFunctionTypeHostFunctionTypeInvokeContract,
			InvokeContract: &xdr.InvokeContractArgs{
				ContractAddress: addr,
				FunctionName:    xdr.ScSymbol(functionName),
				Args:            params,
			},
		},
	}, nil
}

func (i *InvokeHostFunction) BuildXDR() (xdr.Operation, error) {
	xdrOp := xdr.InvokeHostFunctionOp{HostFunction: i.HostFunction, Auth: i.Auth}
	body, err := xdr.NewOperationBody(xdr.OperationTypeInvokeHostFunction, xdrOp)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, i.SourceAccount)
	return op, nil
}

func (i *InvokeHostFunction) FromXDR(xdrOp xdr.Operation) error {
	result, ok := xdrOp.Body.GetInvokeHostFunctionOp()
	if !ok {
		return errors.New("error parsing invoke_host_function operation from xdr")
	}
	i.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	i.HostFunction = result.HostFunction
	i.Auth = result.Auth
	return nil
}

func (i *InvokeHostFunction) Validate() error {
	if i.HostFunction.InvokeContract == nil && i.HostFunction.CreateContract == nil &&
		i.HostFunction.UploadContractWasm == nil {
		return errors.New("HostFunction is required")
	}
	return validateSourceAccount(i.SourceAccount)
}

func (i *InvokeHostFunction) GetSourceAccount() string { return i.SourceAccount }
