package xdr

import (
	"math/big"

	"github.com/stellar/go-stellar-sdk/strkey"
	"github.com/stellar/go-stellar-sdk/support/errors"
)

// ScValType discriminates the ScVal union, Soroban's single value
// representation for contract arguments, return values and storage.
type ScValType int32

const (
	ScvBool                      ScValType = 0
	ScvVoid                      ScValType = 1
	ScvError                     ScValType = 2
	ScvU32                       ScValType = 3
	ScvI32                       ScValType = 4
	ScvU64                       ScValType = 5
	ScvI64                       ScValType = 6
	ScvTimepoint                 ScValType = 7
	ScvDuration                  ScValType = 8
	ScvU128                      ScValType = 9
	ScvI128                      ScValType = 10
	ScvU256                      ScValType = 11
	ScvI256                      ScValType = 12
	ScvBytes                     ScValType = 13
	ScvString                    ScValType = 14
	ScvSymbol                    ScValType = 15
	ScvVec                       ScValType = 16
	ScvMap                       ScValType = 17
	ScvAddress                   ScValType = 18
	ScvContractInstance          ScValType = 19
	ScvLedgerKeyContractInstance ScValType = 20
	ScvLedgerKeyNonce            ScValType = 21
)

// UInt128Parts is the wire representation of a 128 bit unsigned integer,
// split into two big-endian 64 bit halves.
type UInt128Parts struct {
	Hi uint64
	Lo uint64
}

func (v UInt128Parts) EncodeTo(e *Encoder) error {
	if err := e.EncodeUhyper(v.Hi); err != nil {
		return err
	}
	return e.EncodeUhyper(v.Lo)
}

func (v *UInt128Parts) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	hi, err := d.DecodeUhyper()
	if err != nil {
		return 0, err
	}
	lo, err := d.DecodeUhyper()
	if err != nil {
		return 0, err
	}
	v.Hi, v.Lo = hi, lo
	return d.offset - start, nil
}

// BigInt reassembles the two halves into an unsigned math/big.Int.
func (v UInt128Parts) BigInt() *big.Int {
	out := new(big.Int).SetUint64(v.Hi)
	out.Lsh(out, 64)
	out.Or(out, new(big.Int).SetUint64(v.Lo))
	return out
}

// NewUInt128Parts splits a non-negative big.Int into its wire halves. It
// panics if x is negative or does not fit in 128 bits, since callers are
// expected to have range-checked first.
func NewUInt128Parts(x *big.Int) UInt128Parts {
	if x.Sign() < 0 || x.BitLen() > 128 {
		panic("xdr: value out of range for uint128")
	}
	mask := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(x, mask).Uint64()
	hi := new(big.Int).Rsh(x, 64).Uint64()
	return UInt128Parts{Hi: hi, Lo: lo}
}

// Int128Parts is the wire representation of a 128 bit signed integer: the
// high half carries the sign bit, the low half is unsigned.
type Int128Parts struct {
	Hi int64
	Lo uint64
}

func (v Int128Parts) EncodeTo(e *Encoder) error {
	if err := e.EncodeHyper(v.Hi); err != nil {
		return err
	}
	return e.EncodeUhyper(v.Lo)
}

func (v *Int128Parts) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	hi, err := d.DecodeHyper()
	if err != nil {
		return 0, err
	}
	lo, err := d.DecodeUhyper()
	if err != nil {
		return 0, err
	}
	v.Hi, v.Lo = hi, lo
	return d.offset - start, nil
}

// BigInt reassembles the two's complement halves into a signed
// math/big.Int. The high half is sign-extended Go semantics; the low half
// is treated as unsigned magnitude bits.
func (v Int128Parts) BigInt() *big.Int {
	unsigned := new(big.Int).SetUint64(uint64(v.Hi))
	unsigned.Lsh(unsigned, 64)
	unsigned.Or(unsigned, new(big.Int).SetUint64(v.Lo))
	if v.Hi < 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), 128)
		unsigned.Sub(unsigned, mod)
	}
	return unsigned
}

// NewInt128Parts splits a signed big.Int into its two's complement wire
// halves. It panics if x does not fit in a signed 128 bit integer.
func NewInt128Parts(x *big.Int) Int128Parts {
	min := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	if x.Cmp(min) < 0 || x.Cmp(max) > 0 {
		panic("xdr: value out of range for int128")
	}
	u := new(big.Int).Set(x)
	if u.Sign() < 0 {
		u.Add(u, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	mask := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(u, mask).Uint64()
	hi := new(big.Int).Rsh(u, 64)
	return Int128Parts{Hi: int64(hi.Uint64()), Lo: lo}
}

// UInt256Parts is a 256 bit unsigned integer split into four big-endian 64
// bit words, most significant first.
type UInt256Parts struct {
	HiHi uint64
	HiLo uint64
	LoHi uint64
	LoLo uint64
}

func (v UInt256Parts) EncodeTo(e *Encoder) error {
	for _, w := range []uint64{v.HiHi, v.HiLo, v.LoHi, v.LoLo} {
		if err := e.EncodeUhyper(w); err != nil {
			return err
		}
	}
	return nil
}

func (v *UInt256Parts) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	words := make([]uint64, 4)
	for i := range words {
		w, err := d.DecodeUhyper()
		if err != nil {
			return 0, err
		}
		words[i] = w
	}
	v.HiHi, v.HiLo, v.LoHi, v.LoLo = words[0], words[1], words[2], words[3]
	return d.offset - start, nil
}

func (v UInt256Parts) BigInt() *big.Int {
	out := new(big.Int)
	for _, w := range []uint64{v.HiHi, v.HiLo, v.LoHi, v.LoLo} {
		out.Lsh(out, 64)
		out.Or(out, new(big.Int).SetUint64(w))
	}
	return out
}

func NewUInt256Parts(x *big.Int) UInt256Parts {
	if x.Sign() < 0 || x.BitLen() > 256 {
		panic("xdr: value out of range for uint256")
	}
	mask := new(big.Int).SetUint64(^uint64(0))
	words := make([]uint64, 4)
	rem := new(big.Int).Set(x)
	for i := 3; i >= 0; i-- {
		words[i] = new(big.Int).And(rem, mask).Uint64()
		rem.Rsh(rem, 64)
	}
	return UInt256Parts{HiHi: words[0], HiLo: words[1], LoHi: words[2], LoLo: words[3]}
}

// Int256Parts is a 256 bit signed integer in two's complement, split into
// four big-endian 64 bit words.
type Int256Parts struct {
	HiHi int64
	HiLo uint64
	LoHi uint64
	LoLo uint64
}

func (v Int256Parts) EncodeTo(e *Encoder) error {
	if err := e.EncodeHyper(v.HiHi); err != nil {
		return err
	}
	for _, w := range []uint64{v.HiLo, v.LoHi, v.LoLo} {
		if err := e.EncodeUhyper(w); err != nil {
			return err
		}
	}
	return nil
}

func (v *Int256Parts) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	hiHi, err := d.DecodeHyper()
	if err != nil {
		return 0, err
	}
	words := make([]uint64, 3)
	for i := range words {
		w, err := d.DecodeUhyper()
		if err != nil {
			return 0, err
		}
		words[i] = w
	}
	v.HiHi, v.HiLo, v.LoHi, v.LoLo = hiHi, words[0], words[1], words[2]
	return d.offset - start, nil
}

func (v Int256Parts) BigInt() *big.Int {
	unsigned := new(big.Int).SetUint64(uint64(v.HiHi))
	for _, w := range []uint64{v.HiLo, v.LoHi, v.LoLo} {
		unsigned.Lsh(unsigned, 64)
		unsigned.Or(unsigned, new(big.Int).SetUint64(w))
	}
	if v.HiHi < 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), 256)
		unsigned.Sub(unsigned, mod)
	}
	return unsigned
}

func NewInt256Parts(x *big.Int) Int256Parts {
	min := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 255))
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))
	if x.Cmp(min) < 0 || x.Cmp(max) > 0 {
		panic("xdr: value out of range for int256")
	}
	u := new(big.Int).Set(x)
	if u.Sign() < 0 {
		u.Add(u, new(big.Int).Lsh(big.NewInt(1), 256))
	}
	mask := new(big.Int).SetUint64(^uint64(0))
	words := make([]uint64, 4)
	rem := new(big.Int).Set(u)
	for i := 3; i >= 0; i-- {
		words[i] = new(big.Int).And(rem, mask).Uint64()
		rem.Rsh(rem, 64)
	}
	return Int256Parts{HiHi: int64(words[0]), HiLo: words[1], LoHi: words[2], LoLo: words[3]}
}

// ScErrorType discriminates the source of a contract-raised ScError.
type ScErrorType int32

const (
	SceContract     ScErrorType = 0
	SceWasmVm       ScErrorType = 1
	SceContext      ScErrorType = 2
	SceStorage      ScErrorType = 3
	SceObject       ScErrorType = 4
	SceCrypto       ScErrorType = 5
	SceEvents       ScErrorType = 6
	SceBudget       ScErrorType = 7
	SceValue        ScErrorType = 8
	SceAuth         ScErrorType = 9
)

// ScErrorCode is the code accompanying an ScErrorType.
type ScErrorCode int32

// ScError is a Soroban-raised error value, carried as an ScVal in failed
// invocation results.
type ScError struct {
	Type     ScErrorType
	Code     ScErrorCode
	Contract *Uint32
}

func (e ScError) EncodeTo(enc *Encoder) error {
	if err := enc.EncodeInt(int32(e.Type)); err != nil {
		return err
	}
	if e.Type == SceContract {
		return e.Contract.EncodeTo(enc)
	}
	return enc.EncodeInt(int32(e.Code))
}

func (e *ScError) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	e.Type = ScErrorType(t)
	if e.Type == SceContract {
		var v Uint32
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		e.Contract = &v
		return d.offset - start, nil
	}
	c, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	e.Code = ScErrorCode(c)
	return d.offset - start, nil
}

// ScAddressType discriminates ScAddress between accounts and contracts.
type ScAddressType int32

const (
	ScAddressTypeScAddressTypeAccount  ScAddressType = 0
	ScAddressTypeScAddressTypeContract ScAddressType = 1
)

// ScAddress identifies either a classic account or a contract, the two
// kinds of principal Soroban authorization and invocation deal with.
type ScAddress struct {
	Type       ScAddressType
	AccountId  *AccountId
	ContractId *Hash
}

func (a ScAddress) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(a.Type)); err != nil {
		return err
	}
	switch a.Type {
	case ScAddressTypeScAddressTypeAccount:
		return a.AccountId.EncodeTo(e)
	case ScAddressTypeScAddressTypeContract:
		return a.ContractId.EncodeTo(e)
	default:
		return errors.Errorf("unsupported address type %d", a.Type)
	}
}

func (a *ScAddress) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	a.Type = ScAddressType(t)
	switch a.Type {
	case ScAddressTypeScAddressTypeAccount:
		var v AccountId
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		a.AccountId = &v
	case ScAddressTypeScAddressTypeContract:
		var v Hash
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		a.ContractId = &v
	default:
		return 0, d.fail(errors.Errorf("unsupported address type %d", a.Type))
	}
	return d.offset - start, nil
}

// Address returns the strkey form of this address: "G..." for an account,
// "C..." for a contract.
func (a ScAddress) Address() string {
	switch a.Type {
	case ScAddressTypeScAddressTypeAccount:
		if a.AccountId == nil {
			return ""
		}
		return a.AccountId.Address()
	case ScAddressTypeScAddressTypeContract:
		if a.ContractId == nil {
			return ""
		}
		addr, _ := strkey.Encode(strkey.VersionByteContract, a.ContractId[:])
		return addr
	default:
		return ""
	}
}

// AddressToScAddress parses a strkey "G..." or "C..." address into an
// ScAddress.
func AddressToScAddress(address string) (ScAddress, error) {
	if len(address) == 0 {
		return ScAddress{}, errors.New("address is empty")
	}
	switch address[0] {
	case 'G':
		accountId, err := AddressToAccountId(address)
		if err != nil {
			return ScAddress{}, err
		}
		return ScAddress{Type: ScAddressTypeScAddressTypeAccount, AccountId: &accountId}, nil
	case 'C':
		raw, err := strkey.Decode(strkey.VersionByteContract, address)
		if err != nil {
			return ScAddress{}, errors.Wrap(err, "invalid contract address")
		}
		var h Hash
		copy(h[:], raw)
		return ScAddress{Type: ScAddressTypeScAddressTypeContract, ContractId: &h}, nil
	default:
		return ScAddress{}, errors.Errorf("unsupported address %q", address)
	}
}

// ContractDataDurability picks between state that survives until archived
// (Persistent) and state that expires quickly unless bumped (Temporary).
type ContractDataDurability int32

const (
	ContractDataDurabilityTemporary  ContractDataDurability = 0
	ContractDataDurabilityPersistent ContractDataDurability = 1
)

type ScBytes []byte

func (b ScBytes) EncodeTo(e *Encoder) error { return e.EncodeOpaque(b) }
func (b *ScBytes) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	v, err := d.DecodeOpaque(0)
	if err != nil {
		return 0, err
	}
	*b = v
	return d.offset - start, nil
}

type ScString string

func (s ScString) EncodeTo(e *Encoder) error { return e.EncodeString(string(s)) }
func (s *ScString) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	v, err := d.DecodeString(0)
	if err != nil {
		return 0, err
	}
	*s = ScString(v)
	return d.offset - start, nil
}

// ScSymbol is a short identifier used for contract function names, struct
// field names and enum case names: at most 32 characters of [a-zA-Z0-9_].
type ScSymbol string

func (s ScSymbol) EncodeTo(e *Encoder) error { return e.EncodeString(string(s)) }
func (s *ScSymbol) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	v, err := d.DecodeString(32)
	if err != nil {
		return 0, err
	}
	*s = ScSymbol(v)
	return d.offset - start, nil
}

type ScVec []ScVal

func (v ScVec) EncodeTo(e *Encoder) error {
	if err := e.EncodeUint(uint32(len(v))); err != nil {
		return err
	}
	for _, item := range v {
		if err := item.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (v *ScVec) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	n, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	out := make(ScVec, n)
	for i := range out {
		if _, err := out[i].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	*v = out
	return d.offset - start, nil
}

type ScMapEntry struct {
	Key ScVal
	Val ScVal
}

func (m ScMapEntry) EncodeTo(e *Encoder) error {
	if err := m.Key.EncodeTo(e); err != nil {
		return err
	}
	return m.Val.EncodeTo(e)
}

func (m *ScMapEntry) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := m.Key.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := m.Val.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

type ScMap []ScMapEntry

func (m ScMap) EncodeTo(e *Encoder) error {
	if err := e.EncodeUint(uint32(len(m))); err != nil {
		return err
	}
	for _, entry := range m {
		if err := entry.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (m *ScMap) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	n, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	out := make(ScMap, n)
	for i := range out {
		if _, err := out[i].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	*m = out
	return d.offset - start, nil
}

// ContractExecutable selects how a contract's code is provided: uploaded
// wasm identified by hash, or one of the host's built-in contracts.
type ContractExecutableType int32

const (
	ContractExecutableTypeContractExecutableWasm       ContractExecutableType = 0
	ContractExecutableTypeContractExecutableStellarAsset ContractExecutableType = 1
)

type ContractExecutable struct {
	Type     ContractExecutableType
	WasmHash *Hash
}

func (c ContractExecutable) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(c.Type)); err != nil {
		return err
	}
	if c.Type == ContractExecutableTypeContractExecutableWasm {
		return c.WasmHash.EncodeTo(e)
	}
	return nil
}

func (c *ContractExecutable) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	c.Type = ContractExecutableType(t)
	if c.Type == ContractExecutableTypeContractExecutableWasm {
		var v Hash
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		c.WasmHash = &v
	}
	return d.offset - start, nil
}

// ScContractInstance describes a deployed contract: which code it runs and
// its persistent instance storage.
type ScContractInstance struct {
	Executable ContractExecutable
	Storage    *ScMap
}

func (c ScContractInstance) EncodeTo(e *Encoder) error {
	if err := c.Executable.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeBool(c.Storage != nil); err != nil {
		return err
	}
	if c.Storage != nil {
		return c.Storage.EncodeTo(e)
	}
	return nil
}

func (c *ScContractInstance) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := c.Executable.DecodeFrom(d); err != nil {
		return 0, err
	}
	has, err := d.DecodeBool()
	if err != nil {
		return 0, err
	}
	if has {
		var m ScMap
		if _, err := m.DecodeFrom(d); err != nil {
			return 0, err
		}
		c.Storage = &m
	}
	return d.offset - start, nil
}

// ScVal is Soroban's single tagged-union value type: every contract
// argument, return value and storage slot is one of these.
type ScVal struct {
	Type     ScValType
	B        *bool
	Error    *ScError
	U32      *Uint32
	I32      *Int32
	U64      *Uint64
	I64      *Int64
	Timepoint *TimePoint
	Duration *Duration
	U128     *UInt128Parts
	I128     *Int128Parts
	U256     *UInt256Parts
	I256     *Int256Parts
	Bytes    *ScBytes
	Str      *ScString
	Sym      *ScSymbol
	Vec      *ScVec
	Map      *ScMap
	Address  *ScAddress
	Instance *ScContractInstance
}

func (v ScVal) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(v.Type)); err != nil {
		return err
	}
	switch v.Type {
	case ScvBool:
		return e.EncodeBool(*v.B)
	case ScvVoid, ScvLedgerKeyContractInstance:
		return nil
	case ScvError:
		return v.Error.EncodeTo(e)
	case ScvU32:
		return v.U32.EncodeTo(e)
	case ScvI32:
		return v.I32.EncodeTo(e)
	case ScvU64:
		return v.U64.EncodeTo(e)
	case ScvI64:
		return v.I64.EncodeTo(e)
	case ScvTimepoint:
		return v.Timepoint.EncodeTo(e)
	case ScvDuration:
		return v.Duration.EncodeTo(e)
	case ScvU128:
		return v.U128.EncodeTo(e)
	case ScvI128:
		return v.I128.EncodeTo(e)
	case ScvU256:
		return v.U256.EncodeTo(e)
	case ScvI256:
		return v.I256.EncodeTo(e)
	case ScvBytes:
		return v.Bytes.EncodeTo(e)
	case ScvString:
		return v.Str.EncodeTo(e)
	case ScvSymbol:
		return v.Sym.EncodeTo(e)
	case ScvVec:
		if v.Vec == nil {
			return e.EncodeBool(false)
		}
		if err := e.EncodeBool(true); err != nil {
			return err
		}
		return v.Vec.EncodeTo(e)
	case ScvMap:
		if v.Map == nil {
			return e.EncodeBool(false)
		}
		if err := e.EncodeBool(true); err != nil {
			return err
		}
		return v.Map.EncodeTo(e)
	case ScvAddress:
		return v.Address.EncodeTo(e)
	case ScvContractInstance:
		return v.Instance.EncodeTo(e)
	case ScvLedgerKeyNonce:
		return v.I64.EncodeTo(e)
	default:
		return errors.Errorf("unsupported scval type %d", v.Type)
	}
}

func (v *ScVal) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	v.Type = ScValType(t)
	switch v.Type {
	case ScvBool:
		b, err := d.DecodeBool()
		if err != nil {
			return 0, err
		}
		v.B = &b
	case ScvVoid, ScvLedgerKeyContractInstance:
	case ScvError:
		var e ScError
		if _, err := e.DecodeFrom(d); err != nil {
			return 0, err
		}
		v.Error = &e
	case ScvU32:
		var x Uint32
		if _, err := x.DecodeFrom(d); err != nil {
			return 0, err
		}
		v.U32 = &x
	case ScvI32:
		var x Int32
		if _, err := x.DecodeFrom(d); err != nil {
			return 0, err
		}
		v.I32 = &x
	case ScvU64:
		var x Uint64
		if _, err := x.DecodeFrom(d); err != nil {
			return 0, err
		}
		v.U64 = &x
	case ScvI64, ScvLedgerKeyNonce:
		var x Int64
		if _, err := x.DecodeFrom(d); err != nil {
			return 0, err
		}
		v.I64 = &x
	case ScvTimepoint:
		var x TimePoint
		if _, err := x.DecodeFrom(d); err != nil {
			return 0, err
		}
		v.Timepoint = &x
	case ScvDuration:
		var x Duration
		if _, err := x.DecodeFrom(d); err != nil {
			return 0, err
		}
		v.Duration = &x
	case ScvU128:
		var x UInt128Parts
		if _, err := x.DecodeFrom(d); err != nil {
			return 0, err
		}
		v.U128 = &x
	case ScvI128:
		var x Int128Parts
		if _, err := x.DecodeFrom(d); err != nil {
			return 0, err
		}
		v.I128 = &x
	case ScvU256:
		var x UInt256Parts
		if _, err := x.DecodeFrom(d); err != nil {
			return 0, err
		}
		v.U256 = &x
	case ScvI256:
		var x Int256Parts
		if _, err := x.DecodeFrom(d); err != nil {
			return 0, err
		}
		v.I256 = &x
	case ScvBytes:
		var x ScBytes
		if _, err := x.DecodeFrom(d); err != nil {
			return 0, err
		}
		v.Bytes = &x
	case ScvString:
		var x ScString
		if _, err := x.DecodeFrom(d); err != nil {
			return 0, err
		}
		v.Str = &x
	case ScvSymbol:
		var x ScSymbol
		if _, err := x.DecodeFrom(d); err != nil {
			return 0, err
		}
		v.Sym = &x
	case ScvVec:
		has, err := d.DecodeBool()
		if err != nil {
			return 0, err
		}
		if has {
			var x ScVec
			if _, err := x.DecodeFrom(d); err != nil {
				return 0, err
			}
			v.Vec = &x
		}
	case ScvMap:
		has, err := d.DecodeBool()
		if err != nil {
			return 0, err
		}
		if has {
			var x ScMap
			if _, err := x.DecodeFrom(d); err != nil {
				return 0, err
			}
			v.Map = &x
		}
	case ScvAddress:
		var x ScAddress
		if _, err := x.DecodeFrom(d); err != nil {
			return 0, err
		}
		v.Address = &x
	case ScvContractInstance:
		var x ScContractInstance
		if _, err := x.DecodeFrom(d); err != nil {
			return 0, err
		}
		v.Instance = &x
	default:
		return 0, d.fail(errors.Errorf("unsupported scval type %d", v.Type))
	}
	return d.offset - start, nil
}
