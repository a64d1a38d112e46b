// Package scval implements the native-to-SCVal conversions of spec.md
// §4.7: one ToX constructor and one FromX accessor per SCVal kind. Grounded
// on stellar-etl's xdr.ScVal{Type, ...}/xdr.ScSymbol(...) field-shape
// convention, reusing the xdr package's own ScVal union and the
// UInt128Parts/Int128Parts/UInt256Parts/Int256Parts big.Int bridge it
// already implements for the hard two's-complement packing.
package scval

import (
	"bytes"
	"math/big"
	"slices"

	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// ToBool builds an ScVal holding a boolean.
func ToBool(v bool) xdr.ScVal {
	return xdr.ScVal{Type: xdr.ScvBool, B: &v}
}

// FromBool unwraps a boolean ScVal.
func FromBool(v xdr.ScVal) (bool, error) {
	if v.Type != xdr.ScvBool || v.B == nil {
		return false, errors.Errorf("scval: expected Bool, got %v", v.Type)
	}
	return *v.B, nil
}

// ToVoid builds the void ScVal, used for Soroban's unit type.
func ToVoid() xdr.ScVal {
	return xdr.ScVal{Type: xdr.ScvVoid}
}

// IsVoid reports whether v is the void ScVal.
func IsVoid(v xdr.ScVal) bool {
	return v.Type == xdr.ScvVoid
}

// ToU32 builds an ScVal holding an unsigned 32 bit integer.
func ToU32(v uint32) xdr.ScVal {
	x := xdr.Uint32(v)
	return xdr.ScVal{Type: xdr.ScvU32, U32: &x}
}

// FromU32 unwraps a u32 ScVal.
func FromU32(v xdr.ScVal) (uint32, error) {
	if v.Type != xdr.ScvU32 || v.U32 == nil {
		return 0, errors.Errorf("scval: expected U32, got %v", v.Type)
	}
	return uint32(*v.U32), nil
}

// ToI32 builds an ScVal holding a signed 32 bit integer.
func ToI32(v int32) xdr.ScVal {
	x := xdr.Int32(v)
	return xdr.ScVal{Type: xdr.ScvI32, I32: &x}
}

// FromI32 unwraps an i32 ScVal.
func FromI32(v xdr.ScVal) (int32, error) {
	if v.Type != xdr.ScvI32 || v.I32 == nil {
		return 0, errors.Errorf("scval: expected I32, got %v", v.Type)
	}
	return int32(*v.I32), nil
}

// ToU64 builds an ScVal holding an unsigned 64 bit integer.
func ToU64(v uint64) xdr.ScVal {
	x := xdr.Uint64(v)
	return xdr.ScVal{Type: xdr.ScvU64, U64: &x}
}

// FromU64 unwraps a u64 ScVal.
func FromU64(v xdr.ScVal) (uint64, error) {
	if v.Type != xdr.ScvU64 || v.U64 == nil {
		return 0, errors.Errorf("scval: expected U64, got %v", v.Type)
	}
	return uint64(*v.U64), nil
}

// ToI64 builds an ScVal holding a signed 64 bit integer.
func ToI64(v int64) xdr.ScVal {
	x := xdr.Int64(v)
	return xdr.ScVal{Type: xdr.ScvI64, I64: &x}
}

// FromI64 unwraps an i64 ScVal.
func FromI64(v xdr.ScVal) (int64, error) {
	if v.Type != xdr.ScvI64 || v.I64 == nil {
		return 0, errors.Errorf("scval: expected I64, got %v", v.Type)
	}
	return int64(*v.I64), nil
}

// ToTimepoint builds an ScVal holding a Unix-second timestamp.
func ToTimepoint(v uint64) xdr.ScVal {
	x := xdr.TimePoint(v)
	return xdr.ScVal{Type: xdr.ScvTimepoint, Timepoint: &x}
}

// FromTimepoint unwraps a timepoint ScVal.
func FromTimepoint(v xdr.ScVal) (uint64, error) {
	if v.Type != xdr.ScvTimepoint || v.Timepoint == nil {
		return 0, errors.Errorf("scval: expected Timepoint, got %v", v.Type)
	}
	return uint64(*v.Timepoint), nil
}

// ToDuration builds an ScVal holding a duration in seconds.
func ToDuration(v uint64) xdr.ScVal {
	x := xdr.Duration(v)
	return xdr.ScVal{Type: xdr.ScvDuration, Duration: &x}
}

// FromDuration unwraps a duration ScVal.
func FromDuration(v xdr.ScVal) (uint64, error) {
	if v.Type != xdr.ScvDuration || v.Duration == nil {
		return 0, errors.Errorf("scval: expected Duration, got %v", v.Type)
	}
	return uint64(*v.Duration), nil
}

// ToU128 packs a non-negative big.Int into an ScVal, two's-complement
// packing handled by xdr.NewUInt128Parts.
func ToU128(v *big.Int) xdr.ScVal {
	parts := xdr.NewUInt128Parts(v)
	return xdr.ScVal{Type: xdr.ScvU128, U128: &parts}
}

// FromU128 unpacks a u128 ScVal into a big.Int.
func FromU128(v xdr.ScVal) (*big.Int, error) {
	if v.Type != xdr.ScvU128 || v.U128 == nil {
		return nil, errors.Errorf("scval: expected U128, got %v", v.Type)
	}
	return v.U128.BigInt(), nil
}

// ToI128 packs a signed big.Int into an ScVal using two's-complement
// (xdr.NewInt128Parts), per spec.md §4.3's explicit requirement that
// implementations built on a sign+magnitude bignum convert this explicitly.
func ToI128(v *big.Int) xdr.ScVal {
	parts := xdr.NewInt128Parts(v)
	return xdr.ScVal{Type: xdr.ScvI128, I128: &parts}
}

// FromI128 unpacks an i128 ScVal into a signed big.Int.
func FromI128(v xdr.ScVal) (*big.Int, error) {
	if v.Type != xdr.ScvI128 || v.I128 == nil {
		return nil, errors.Errorf("scval: expected I128, got %v", v.Type)
	}
	return v.I128.BigInt(), nil
}

// ToU256 packs a non-negative big.Int into a 256 bit ScVal.
func ToU256(v *big.Int) xdr.ScVal {
	parts := xdr.NewUInt256Parts(v)
	return xdr.ScVal{Type: xdr.ScvU256, U256: &parts}
}

// FromU256 unpacks a u256 ScVal into a big.Int.
func FromU256(v xdr.ScVal) (*big.Int, error) {
	if v.Type != xdr.ScvU256 || v.U256 == nil {
		return nil, errors.Errorf("scval: expected U256, got %v", v.Type)
	}
	return v.U256.BigInt(), nil
}

// ToI256 packs a signed big.Int into a 256 bit two's-complement ScVal.
func ToI256(v *big.Int) xdr.ScVal {
	parts := xdr.NewInt256Parts(v)
	return xdr.ScVal{Type: xdr.ScvI256, I256: &parts}
}

// FromI256 unpacks an i256 ScVal into a signed big.Int.
func FromI256(v xdr.ScVal) (*big.Int, error) {
	if v.Type != xdr.ScvI256 || v.I256 == nil {
		return nil, errors.Errorf("scval: expected I256, got %v", v.Type)
	}
	return v.I256.BigInt(), nil
}

// ToBytes builds an ScVal holding an opaque byte string.
func ToBytes(v []byte) xdr.ScVal {
	b := xdr.ScBytes(v)
	return xdr.ScVal{Type: xdr.ScvBytes, Bytes: &b}
}

// FromBytes unwraps a bytes ScVal.
func FromBytes(v xdr.ScVal) ([]byte, error) {
	if v.Type != xdr.ScvBytes || v.Bytes == nil {
		return nil, errors.Errorf("scval: expected Bytes, got %v", v.Type)
	}
	return []byte(*v.Bytes), nil
}

// ToString builds an ScVal holding a length-prefixed UTF-8 string, distinct
// from Symbol in that it has no charset or length-32 restriction.
func ToString(v string) xdr.ScVal {
	s := xdr.ScString(v)
	return xdr.ScVal{Type: xdr.ScvString, Str: &s}
}

// FromString unwraps a string ScVal.
func FromString(v xdr.ScVal) (string, error) {
	if v.Type != xdr.ScvString || v.Str == nil {
		return "", errors.Errorf("scval: expected String, got %v", v.Type)
	}
	return string(*v.Str), nil
}

// ToSymbol builds an ScVal holding a symbol: at most 32 characters of
// [a-zA-Z0-9_], used for contract function names, struct fields and enum
// cases.
func ToSymbol(v string) (xdr.ScVal, error) {
	if len(v) > 32 {
		return xdr.ScVal{}, errors.Errorf("scval: symbol %q exceeds 32 characters", v)
	}
	for _, r := range v {
		if !isSymbolRune(r) {
			return xdr.ScVal{}, errors.Errorf("scval: symbol %q contains invalid character %q", v, r)
		}
	}
	s := xdr.ScSymbol(v)
	return xdr.ScVal{Type: xdr.ScvSymbol, Sym: &s}, nil
}

func isSymbolRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		return true
	default:
		return false
	}
}

// FromSymbol unwraps a symbol ScVal.
func FromSymbol(v xdr.ScVal) (string, error) {
	if v.Type != xdr.ScvSymbol || v.Sym == nil {
		return "", errors.Errorf("scval: expected Symbol, got %v", v.Type)
	}
	return string(*v.Sym), nil
}

// ToAddress builds an ScVal holding an account or contract address,
// accepting either a "G..." or "C..." strkey.
func ToAddress(address string) (xdr.ScVal, error) {
	addr, err := xdr.AddressToScAddress(address)
	if err != nil {
		return xdr.ScVal{}, errors.Wrap(err, "scval: invalid address")
	}
	return xdr.ScVal{Type: xdr.ScvAddress, Address: &addr}, nil
}

// FromAddress unwraps an address ScVal back to its strkey form.
func FromAddress(v xdr.ScVal) (string, error) {
	if v.Type != xdr.ScvAddress || v.Address == nil {
		return "", errors.Errorf("scval: expected Address, got %v", v.Type)
	}
	return v.Address.Address(), nil
}

// ToVec builds an ScVal holding an ordered list of values.
func ToVec(items []xdr.ScVal) xdr.ScVal {
	vec := xdr.ScVec(items)
	return xdr.ScVal{Type: xdr.ScvVec, Vec: &vec}
}

// FromVec unwraps a vec ScVal.
func FromVec(v xdr.ScVal) ([]xdr.ScVal, error) {
	if v.Type != xdr.ScvVec || v.Vec == nil {
		return nil, errors.Errorf("scval: expected Vec, got %v", v.Type)
	}
	return []xdr.ScVal(*v.Vec), nil
}

// ToMap builds an ScVal holding a map, sorting entries into the canonical
// ascending-by-key-XDR-bytes order spec.md §4.3 requires of every map
// builder (decoders must not reorder, but encoders must).
func ToMap(entries map[string]xdr.ScVal) (xdr.ScVal, error) {
	keyed := make([]xdr.ScMapEntry, 0, len(entries))
	for k, val := range entries {
		key, err := ToSymbol(k)
		if err != nil {
			return xdr.ScVal{}, err
		}
		keyed = append(keyed, xdr.ScMapEntry{Key: key, Val: val})
	}
	return ToMapEntries(keyed)
}

// ToMapEntries builds a map ScVal from already-constructed key/value pairs,
// sorting them into canonical order by the key's encoded XDR bytes. Use
// this over ToMap when keys are not plain symbols (for example nested
// composite keys).
func ToMapEntries(entries []xdr.ScMapEntry) (xdr.ScVal, error) {
	type keyedEntry struct {
		entry xdr.ScMapEntry
		key   []byte
	}
	keyed := make([]keyedEntry, len(entries))
	for i, e := range entries {
		b, err := xdr.Marshal(e.Key)
		if err != nil {
			return xdr.ScVal{}, errors.Wrap(err, "scval: failed to encode map key")
		}
		keyed[i] = keyedEntry{entry: e, key: b}
	}
	slices.SortFunc(keyed, func(a, b keyedEntry) int {
		return bytes.Compare(a.key, b.key)
	})
	out := make(xdr.ScMap, len(keyed))
	for i, k := range keyed {
		out[i] = k.entry
	}
	return xdr.ScVal{Type: xdr.ScvMap, Map: &out}, nil
}

// FromMap unwraps a map ScVal.
func FromMap(v xdr.ScVal) ([]xdr.ScMapEntry, error) {
	if v.Type != xdr.ScvMap || v.Map == nil {
		return nil, errors.Errorf("scval: expected Map, got %v", v.Type)
	}
	return []xdr.ScMapEntry(*v.Map), nil
}
