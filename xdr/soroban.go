package xdr

import "github.com/stellar/go-stellar-sdk/support/errors"

// ContractIdPreimageType discriminates how a contract id is derived: from
// an address plus a salt, or from an asset (for the Stellar Asset
// Contract's deterministic wrapping of a classic asset).
type ContractIdPreimageType int32

const (
	ContractIdPreimageTypeContractIdPreimageFromAddress ContractIdPreimageType = 0
	ContractIdPreimageTypeContractIdPreimageFromAsset   ContractIdPreimageType = 1
)

type ContractIdPreimageFromAddress struct {
	Address ScAddress
	Salt    Uint256
}

func (c ContractIdPreimageFromAddress) EncodeTo(e *Encoder) error {
	if err := c.Address.EncodeTo(e); err != nil {
		return err
	}
	return c.Salt.EncodeTo(e)
}

func (c *ContractIdPreimageFromAddress) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := c.Address.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := c.Salt.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

type ContractIdPreimage struct {
	Type        ContractIdPreimageType
	FromAddress *ContractIdPreimageFromAddress
	FromAsset   *Asset
}

func (c ContractIdPreimage) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(c.Type)); err != nil {
		return err
	}
	switch c.Type {
	case ContractIdPreimageTypeContractIdPreimageFromAddress:
		return c.FromAddress.EncodeTo(e)
	case ContractIdPreimageTypeContractIdPreimageFromAsset:
		return c.FromAsset.EncodeTo(e)
	default:
		return errors.Errorf("unsupported contract id preimage type %d", c.Type)
	}
}

func (c *ContractIdPreimage) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	c.Type = ContractIdPreimageType(t)
	switch c.Type {
	case ContractIdPreimageTypeContractIdPreimageFromAddress:
		var v ContractIdPreimageFromAddress
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		c.FromAddress = &v
	case ContractIdPreimageTypeContractIdPreimageFromAsset:
		var v Asset
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		c.FromAsset = &v
	default:
		return 0, d.fail(errors.Errorf("unsupported contract id preimage type %d", c.Type))
	}
	return d.offset - start, nil
}

// CreateContractArgs deploys a contract instance from an existing wasm
// upload, identified by its preimage and the code it should execute.
type CreateContractArgs struct {
	ContractIdPreimage ContractIdPreimage
	Executable         ContractExecutable
}

func (c CreateContractArgs) EncodeTo(e *Encoder) error {
	if err := c.ContractIdPreimage.EncodeTo(e); err != nil {
		return err
	}
	return c.Executable.EncodeTo(e)
}

func (c *CreateContractArgs) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := c.ContractIdPreimage.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := c.Executable.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

// InvokeContractArgs names a contract function to call and the arguments
// to pass it.
type InvokeContractArgs struct {
	ContractAddress ScAddress
	FunctionName    ScSymbol
	Args            []ScVal
}

func (i InvokeContractArgs) EncodeTo(e *Encoder) error {
	if err := i.ContractAddress.EncodeTo(e); err != nil {
		return err
	}
	if err := i.FunctionName.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeUint(uint32(len(i.Args))); err != nil {
		return err
	}
	for _, a := range i.Args {
		if err := a.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (i *InvokeContractArgs) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := i.ContractAddress.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := i.FunctionName.DecodeFrom(d); err != nil {
		return 0, err
	}
	n, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	i.Args = make([]ScVal, n)
	for j := range i.Args {
		if _, err := i.Args[j].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	return d.offset - start, nil
}

// HostFunctionType discriminates what an InvokeHostFunction operation
// asks the host to do: invoke an existing contract, deploy a new one from
// uploaded wasm, or upload wasm without deploying it.
type HostFunctionType int32

const (
	HostFunctionTypeHostFunctionTypeInvokeContract     HostFunctionType = 0
	HostFunctionTypeHostFunctionTypeCreateContract      HostFunctionType = 1
	HostFunctionTypeHostFunctionTypeUploadContractWasm  HostFunctionType = 2
)

type HostFunction struct {
	Type             HostFunctionType
	InvokeContract   *InvokeContractArgs
	CreateContract   *CreateContractArgs
	UploadContractWasm *[]byte
}

func (h HostFunction) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(h.Type)); err != nil {
		return err
	}
	switch h.Type {
	case HostFunctionTypeHostFunctionTypeInvokeContract:
		return h.InvokeContract.EncodeTo(e)
	case HostFunctionTypeHostFunctionTypeCreateContract:
		return h.CreateContract.EncodeTo(e)
	case HostFunctionTypeHostFunctionTypeUploadContractWasm:
		return e.EncodeOpaque(*h.UploadContractWasm)
	default:
		return errors.Errorf("unsupported host function type %d", h.Type)
	}
}

func (h *HostFunction) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	h.Type = HostFunctionType(t)
	switch h.Type {
	case HostFunctionTypeHostFunctionTypeInvokeContract:
		var v InvokeContractArgs
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		h.InvokeContract = &v
	case HostFunctionTypeHostFunctionTypeCreateContract:
		var v CreateContractArgs
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		h.CreateContract = &v
	case HostFunctionTypeHostFunctionTypeUploadContractWasm:
		b, err := d.DecodeOpaque(0)
		if err != nil {
			return 0, err
		}
		h.UploadContractWasm = &b
	default:
		return 0, d.fail(errors.Errorf("unsupported host function type %d", h.Type))
	}
	return d.offset - start, nil
}

// SorobanAuthorizedFunctionType discriminates whether an authorized
// sub-invocation is a contract call or a (simulated) contract creation.
type SorobanAuthorizedFunctionType int32

const (
	SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeContractFn         SorobanAuthorizedFunctionType = 0
	SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeCreateContractHostFn SorobanAuthorizedFunctionType = 1
)

type SorobanAuthorizedFunction struct {
	Type           SorobanAuthorizedFunctionType
	ContractFn     *InvokeContractArgs
	CreateContractFn *CreateContractArgs
}

func (f SorobanAuthorizedFunction) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(f.Type)); err != nil {
		return err
	}
	switch f.Type {
	case SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeContractFn:
		return f.ContractFn.EncodeTo(e)
	case SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeCreateContractHostFn:
		return f.CreateContractFn.EncodeTo(e)
	default:
		return errors.Errorf("unsupported authorized function type %d", f.Type)
	}
}

func (f *SorobanAuthorizedFunction) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	f.Type = SorobanAuthorizedFunctionType(t)
	switch f.Type {
	case SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeContractFn:
		var v InvokeContractArgs
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		f.ContractFn = &v
	case SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeCreateContractHostFn:
		var v CreateContractArgs
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		f.CreateContractFn = &v
	default:
		return 0, d.fail(errors.Errorf("unsupported authorized function type %d", f.Type))
	}
	return d.offset - start, nil
}

// SorobanAuthorizedInvocation is one node of the authorization tree: a
// function call plus the sub-invocations it in turn makes and which also
// need to be covered by the same signature.
type SorobanAuthorizedInvocation struct {
	Function    SorobanAuthorizedFunction
	SubInvocations []SorobanAuthorizedInvocation
}

func (a SorobanAuthorizedInvocation) EncodeTo(e *Encoder) error {
	if err := a.Function.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeUint(uint32(len(a.SubInvocations))); err != nil {
		return err
	}
	for _, s := range a.SubInvocations {
		if err := s.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (a *SorobanAuthorizedInvocation) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := a.Function.DecodeFrom(d); err != nil {
		return 0, err
	}
	n, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	a.SubInvocations = make([]SorobanAuthorizedInvocation, n)
	for i := range a.SubInvocations {
		if _, err := a.SubInvocations[i].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	return d.offset - start, nil
}

// SorobanCredentialsType discriminates source-account implied
// authorization (no signature needed, the tx signature covers it) from
// explicit address-based authorization.
type SorobanCredentialsType int32

const (
	SorobanCredentialsTypeSorobanCredentialsSourceAccount SorobanCredentialsType = 0
	SorobanCredentialsTypeSorobanCredentialsAddress       SorobanCredentialsType = 1
)

// SorobanAddressCredentials is the signed authorization payload for a
// single address: its signature expiration ledger, a per-address nonce,
// and the signature itself (an ScVal, typically a vec of signatures).
type SorobanAddressCredentials struct {
	Address                   ScAddress
	Nonce                     Int64
	SignatureExpirationLedger Uint32
	Signature                 ScVal
}

func (s SorobanAddressCredentials) EncodeTo(e *Encoder) error {
	if err := s.Address.EncodeTo(e); err != nil {
		return err
	}
	if err := s.Nonce.EncodeTo(e); err != nil {
		return err
	}
	if err := s.SignatureExpirationLedger.EncodeTo(e); err != nil {
		return err
	}
	return s.Signature.EncodeTo(e)
}

func (s *SorobanAddressCredentials) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := s.Address.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := s.Nonce.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := s.SignatureExpirationLedger.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := s.Signature.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

type SorobanCredentials struct {
	Type    SorobanCredentialsType
	Address *SorobanAddressCredentials
}

func (c SorobanCredentials) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(c.Type)); err != nil {
		return err
	}
	if c.Type == SorobanCredentialsTypeSorobanCredentialsAddress {
		return c.Address.EncodeTo(e)
	}
	return nil
}

func (c *SorobanCredentials) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	c.Type = SorobanCredentialsType(t)
	if c.Type == SorobanCredentialsTypeSorobanCredentialsAddress {
		var v SorobanAddressCredentials
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		c.Address = &v
	}
	return d.offset - start, nil
}

// SorobanAuthorizationEntry is one signed (or source-account-implied)
// branch of a transaction's authorization tree, as built by
// soroban/auth.AuthorizeEntry and carried in InvokeHostFunctionOp.
type SorobanAuthorizationEntry struct {
	Credentials SorobanCredentials
	RootInvocation SorobanAuthorizedInvocation
}

func (a SorobanAuthorizationEntry) EncodeTo(e *Encoder) error {
	if err := a.Credentials.EncodeTo(e); err != nil {
		return err
	}
	return a.RootInvocation.EncodeTo(e)
}

func (a *SorobanAuthorizationEntry) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := a.Credentials.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := a.RootInvocation.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

// SorobanResources is the resource consumption footprint + limits a
// Soroban invocation declares, filled in from simulation before signing.
type SorobanResources struct {
	Footprint    LedgerFootprint
	Instructions Uint32
	ReadBytes    Uint32
	WriteBytes   Uint32
}

func (r SorobanResources) EncodeTo(e *Encoder) error {
	if err := r.Footprint.EncodeTo(e); err != nil {
		return err
	}
	if err := r.Instructions.EncodeTo(e); err != nil {
		return err
	}
	if err := r.ReadBytes.EncodeTo(e); err != nil {
		return err
	}
	return r.WriteBytes.EncodeTo(e)
}

func (r *SorobanResources) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := r.Footprint.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := r.Instructions.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := r.ReadBytes.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := r.WriteBytes.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

// SorobanTransactionData is the Soroban-specific extension carried in a
// transaction's ext when ext.v == 1: the resource footprint/limits
// produced by simulateTransaction and the refundable fee it was quoted.
type SorobanTransactionData struct {
	Resources     SorobanResources
	RefundableFee Int64
}

func (s SorobanTransactionData) EncodeTo(e *Encoder) error {
	if err := s.Resources.EncodeTo(e); err != nil {
		return err
	}
	return s.RefundableFee.EncodeTo(e)
}

func (s *SorobanTransactionData) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := s.Resources.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := s.RefundableFee.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

// EnvelopeType discriminates the signature base prefixed to a payload
// before hashing, per RFC 4506 union "ENVELOPE_TYPE".
type EnvelopeType int32

const (
	EnvelopeTypeEnvelopeTypeTxV0       EnvelopeType = 0
	EnvelopeTypeEnvelopeTypeTx          EnvelopeType = 2
	EnvelopeTypeEnvelopeTypeTxFeeBump   EnvelopeType = 5
	EnvelopeTypeEnvelopeTypeOpId        EnvelopeType = 6
	EnvelopeTypeEnvelopeTypeContractId  EnvelopeType = 7
	EnvelopeTypeEnvelopeTypeSorobanAuthorization EnvelopeType = 9
)

// HashIdPreimageSorobanAuthorization is what gets hashed and signed to
// authorize one SorobanAuthorizationEntry: the network, a nonce, an
// expiration ledger and the invocation tree being authorized.
type HashIdPreimageSorobanAuthorization struct {
	NetworkId                 Hash
	Nonce                     Int64
	SignatureExpirationLedger Uint32
	Invocation                SorobanAuthorizedInvocation
}

func (h HashIdPreimageSorobanAuthorization) EncodeTo(e *Encoder) error {
	if err := h.NetworkId.EncodeTo(e); err != nil {
		return err
	}
	if err := h.Nonce.EncodeTo(e); err != nil {
		return err
	}
	if err := h.SignatureExpirationLedger.EncodeTo(e); err != nil {
		return err
	}
	return h.Invocation.EncodeTo(e)
}

func (h *HashIdPreimageSorobanAuthorization) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := h.NetworkId.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := h.Nonce.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := h.SignatureExpirationLedger.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := h.Invocation.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

// HashIdPreimageContractId is what gets hashed to derive a newly created
// contract's id from its preimage and the network it is deployed on.
type HashIdPreimageContractId struct {
	NetworkId           Hash
	ContractIdPreimage  ContractIdPreimage
}

func (h HashIdPreimageContractId) EncodeTo(e *Encoder) error {
	if err := h.NetworkId.EncodeTo(e); err != nil {
		return err
	}
	return h.ContractIdPreimage.EncodeTo(e)
}

func (h *HashIdPreimageContractId) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := h.NetworkId.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := h.ContractIdPreimage.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

// HashIdPreimage is the union of everything this SDK needs to hash before
// signing or deriving an id: a Soroban authorization payload, or a
// contract id derivation.
type HashIdPreimage struct {
	Type                EnvelopeType
	SorobanAuthorization *HashIdPreimageSorobanAuthorization
	ContractId          *HashIdPreimageContractId
}

func (h HashIdPreimage) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(h.Type)); err != nil {
		return err
	}
	switch h.Type {
	case EnvelopeTypeEnvelopeTypeSorobanAuthorization:
		return h.SorobanAuthorization.EncodeTo(e)
	case EnvelopeTypeEnvelopeTypeContractId:
		return h.ContractId.EncodeTo(e)
	default:
		return errors.Errorf("unsupported hash id preimage type %d", h.Type)
	}
}

func (h *HashIdPreimage) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	h.Type = EnvelopeType(t)
	switch h.Type {
	case EnvelopeTypeEnvelopeTypeSorobanAuthorization:
		var v HashIdPreimageSorobanAuthorization
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		h.SorobanAuthorization = &v
	case EnvelopeTypeEnvelopeTypeContractId:
		var v HashIdPreimageContractId
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		h.ContractId = &v
	default:
		return 0, d.fail(errors.Errorf("unsupported hash id preimage type %d", h.Type))
	}
	return d.offset - start, nil
}
