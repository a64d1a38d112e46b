// Package contractspec walks a contract's embedded XDR interface
// declarations (its ScSpecEntry list) to convert native Go values to and
// from the ScVal shapes a contract's functions expect, the way the
// Soroban SDKs generate bindings from the same entries at build time.
// Here the walk happens at call time against the typed ScSpecTypeDef
// union instead.
package contractspec

import (
	"fmt"
	"math/big"

	"github.com/stellar/go-stellar-sdk/soroban/scval"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// ContractSpecError reports a failure while matching a native value
// against a contract's declared type, or while looking up a function or
// user-defined type by name.
type ContractSpecError struct {
	Reason       string
	FunctionName string
	ArgumentName string
	EntryName    string
}

func (e *ContractSpecError) Error() string {
	msg := e.Reason
	if e.FunctionName != "" {
		msg = fmt.Sprintf("%s: function %q", msg, e.FunctionName)
	}
	if e.ArgumentName != "" {
		msg = fmt.Sprintf("%s: argument %q", msg, e.ArgumentName)
	}
	if e.EntryName != "" {
		msg = fmt.Sprintf("%s: type %q", msg, e.EntryName)
	}
	return msg
}

func specErr(reason string) error { return &ContractSpecError{Reason: reason} }

// FunctionInput describes one parameter of a contract function.
type FunctionInput struct {
	Name string
	Doc  string
	Type xdr.ScSpecTypeDef
}

// FunctionDescriptor describes one exported contract function.
type FunctionDescriptor struct {
	Name    string
	Doc     string
	Inputs  []FunctionInput
	Outputs []xdr.ScSpecTypeDef
}

// NativeUnionVal is the native-side representation of a Soroban union
// (Rust-style enum with data) value: a case tag plus, for tuple cases,
// the tuple's values in declared order.
type NativeUnionVal struct {
	Tag    string
	Values []interface{}
}

// ContractSpec indexes a contract's spec entries for repeated lookups by
// function or user-defined-type name.
type ContractSpec struct {
	entries   []xdr.ScSpecEntry
	functions map[string]*xdr.ScSpecFunctionV0
	udts      map[string]xdr.ScSpecEntry
}

// New indexes entries, as extracted from a contract's "contractspecv0"
// WASM custom section.
func New(entries []xdr.ScSpecEntry) *ContractSpec {
	cs := &ContractSpec{
		entries:   entries,
		functions: make(map[string]*xdr.ScSpecFunctionV0),
		udts:      make(map[string]xdr.ScSpecEntry),
	}
	for _, e := range entries {
		switch e.Kind {
		case xdr.ScSpecEntryKindScSpecEntryFunctionV0:
			cs.functions[e.FunctionV0.Name] = e.FunctionV0
		case xdr.ScSpecEntryKindScSpecEntryUdtStructV0:
			cs.udts[e.UdtStructV0.Name] = e
		case xdr.ScSpecEntryKindScSpecEntryUdtUnionV0:
			cs.udts[e.UdtUnionV0.Name] = e
		case xdr.ScSpecEntryKindScSpecEntryUdtEnumV0:
			cs.udts[e.UdtEnumV0.Name] = e
		case xdr.ScSpecEntryKindScSpecEntryUdtErrorEnumV0:
			cs.udts[e.UdtErrorEnumV0.Name] = e
		}
	}
	return cs
}

// Funcs returns every function this contract's spec declares.
func (cs *ContractSpec) Funcs() []FunctionDescriptor {
	out := make([]FunctionDescriptor, 0, len(cs.functions))
	for _, e := range cs.entries {
		if e.Kind != xdr.ScSpecEntryKindScSpecEntryFunctionV0 {
			continue
		}
		f := e.FunctionV0
		inputs := make([]FunctionInput, len(f.Inputs))
		for i, in := range f.Inputs {
			inputs[i] = FunctionInput{Name: in.Name, Doc: in.Doc, Type: in.Type}
		}
		out = append(out, FunctionDescriptor{Name: f.Name, Doc: f.Doc, Inputs: inputs, Outputs: f.Outputs})
	}
	return out
}

func (cs *ContractSpec) findFunc(name string) (*xdr.ScSpecFunctionV0, error) {
	f, ok := cs.functions[name]
	if !ok {
		return nil, &ContractSpecError{Reason: "unknown function", FunctionName: name}
	}
	return f, nil
}

// FuncArgsToXdrSCValues converts a named-argument map into the ordered
// ScVal list fnName's declared inputs require.
func (cs *ContractSpec) FuncArgsToXdrSCValues(fnName string, args map[string]interface{}) ([]xdr.ScVal, error) {
	f, err := cs.findFunc(fnName)
	if err != nil {
		return nil, err
	}
	out := make([]xdr.ScVal, len(f.Inputs))
	for i, in := range f.Inputs {
		v, ok := args[in.Name]
		if !ok {
			return nil, &ContractSpecError{Reason: "missing argument", FunctionName: fnName, ArgumentName: in.Name}
		}
		scv, err := cs.NativeToXdrSCVal(v, in.Type)
		if err != nil {
			return nil, &ContractSpecError{Reason: err.Error(), FunctionName: fnName, ArgumentName: in.Name}
		}
		out[i] = scv
	}
	return out, nil
}

// FuncResToNative converts fnName's single declared return value back to
// a native Go value. Functions with no declared outputs return nil.
func (cs *ContractSpec) FuncResToNative(fnName string, result xdr.ScVal) (interface{}, error) {
	f, err := cs.findFunc(fnName)
	if err != nil {
		return nil, err
	}
	if len(f.Outputs) == 0 {
		return nil, nil
	}
	v, err := cs.xdrSCValToNative(result, f.Outputs[0])
	if err != nil {
		return nil, &ContractSpecError{Reason: err.Error(), FunctionName: fnName}
	}
	return v, nil
}

// NativeToXdrSCVal recursively matches value against typeDef, the way a
// generated binding's constructor would for a single declared parameter.
func (cs *ContractSpec) NativeToXdrSCVal(value interface{}, typeDef xdr.ScSpecTypeDef) (xdr.ScVal, error) {
	switch typeDef.Type {
	case xdr.ScSpecTypeScSpecTypeVal:
		if scv, ok := value.(xdr.ScVal); ok {
			return scv, nil
		}
		return xdr.ScVal{}, specErr("expected xdr.ScVal for val type")
	case xdr.ScSpecTypeScSpecTypeBool:
		b, ok := value.(bool)
		if !ok {
			return xdr.ScVal{}, specErr("expected bool")
		}
		return scval.ToBool(b), nil
	case xdr.ScSpecTypeScSpecTypeVoid:
		return scval.ToVoid(), nil
	case xdr.ScSpecTypeScSpecTypeU32:
		n, err := toUint64(value)
		if err != nil {
			return xdr.ScVal{}, err
		}
		return scval.ToU32(uint32(n)), nil
	case xdr.ScSpecTypeScSpecTypeI32:
		n, err := toInt64(value)
		if err != nil {
			return xdr.ScVal{}, err
		}
		return scval.ToI32(int32(n)), nil
	case xdr.ScSpecTypeScSpecTypeU64:
		n, err := toUint64(value)
		if err != nil {
			return xdr.ScVal{}, err
		}
		return scval.ToU64(n), nil
	case xdr.ScSpecTypeScSpecTypeI64:
		n, err := toInt64(value)
		if err != nil {
			return xdr.ScVal{}, err
		}
		return scval.ToI64(n), nil
	case xdr.ScSpecTypeScSpecTypeTimepoint:
		n, err := toUint64(value)
		if err != nil {
			return xdr.ScVal{}, err
		}
		return scval.ToTimepoint(n), nil
	case xdr.ScSpecTypeScSpecTypeDuration:
		n, err := toUint64(value)
		if err != nil {
			return xdr.ScVal{}, err
		}
		return scval.ToDuration(n), nil
	case xdr.ScSpecTypeScSpecTypeU128:
		b, err := toBigInt(value)
		if err != nil {
			return xdr.ScVal{}, err
		}
		return scval.ToU128(b), nil
	case xdr.ScSpecTypeScSpecTypeI128:
		b, err := toBigInt(value)
		if err != nil {
			return xdr.ScVal{}, err
		}
		return scval.ToI128(b), nil
	case xdr.ScSpecTypeScSpecTypeU256:
		b, err := toBigInt(value)
		if err != nil {
			return xdr.ScVal{}, err
		}
		return scval.ToU256(b), nil
	case xdr.ScSpecTypeScSpecTypeI256:
		b, err := toBigInt(value)
		if err != nil {
			return xdr.ScVal{}, err
		}
		return scval.ToI256(b), nil
	case xdr.ScSpecTypeScSpecTypeBytes:
		b, ok := value.([]byte)
		if !ok {
			return xdr.ScVal{}, specErr("expected []byte")
		}
		return scval.ToBytes(b), nil
	case xdr.ScSpecTypeScSpecTypeString:
		s, ok := value.(string)
		if !ok {
			return xdr.ScVal{}, specErr("expected string")
		}
		return scval.ToString(s), nil
	case xdr.ScSpecTypeScSpecTypeSymbol:
		s, ok := value.(string)
		if !ok {
			return xdr.ScVal{}, specErr("expected string for symbol")
		}
		return scval.ToSymbol(s)
	case xdr.ScSpecTypeScSpecTypeAddress:
		s, ok := value.(string)
		if !ok {
			return xdr.ScVal{}, specErr("expected string address")
		}
		return scval.ToAddress(s)
	case xdr.ScSpecTypeScSpecTypeOption:
		if value == nil {
			return scval.ToVoid(), nil
		}
		return cs.NativeToXdrSCVal(value, *typeDef.Option.ValueType)
	case xdr.ScSpecTypeScSpecTypeResult:
		return cs.NativeToXdrSCVal(value, *typeDef.Result.OkType)
	case xdr.ScSpecTypeScSpecTypeVec:
		items, ok := value.([]interface{})
		if !ok {
			return xdr.ScVal{}, specErr("expected []interface{} for vec")
		}
		out := make([]xdr.ScVal, len(items))
		for i, item := range items {
			scv, err := cs.NativeToXdrSCVal(item, *typeDef.Vec.ElementType)
			if err != nil {
				return xdr.ScVal{}, err
			}
			out[i] = scv
		}
		return scval.ToVec(out), nil
	case xdr.ScSpecTypeScSpecTypeTuple:
		items, ok := value.([]interface{})
		if !ok {
			return xdr.ScVal{}, specErr("expected []interface{} for tuple")
		}
		if len(items) != len(typeDef.Tuple.ValueTypes) {
			return xdr.ScVal{}, specErr("tuple arity mismatch")
		}
		out := make([]xdr.ScVal, len(items))
		for i, item := range items {
			scv, err := cs.NativeToXdrSCVal(item, typeDef.Tuple.ValueTypes[i])
			if err != nil {
				return xdr.ScVal{}, err
			}
			out[i] = scv
		}
		return scval.ToVec(out), nil
	case xdr.ScSpecTypeScSpecTypeBytesN:
		b, ok := value.([]byte)
		if !ok {
			return xdr.ScVal{}, specErr("expected []byte for bytesN")
		}
		if uint32(len(b)) != uint32(typeDef.BytesN.N) {
			return xdr.ScVal{}, specErr("bytesN length mismatch")
		}
		return scval.ToBytes(b), nil
	case xdr.ScSpecTypeScSpecTypeMap:
		m, ok := value.(map[string]interface{})
		if !ok {
			return xdr.ScVal{}, specErr("expected map[string]interface{} for map")
		}
		entries := make([]xdr.ScMapEntry, 0, len(m))
		for k, v := range m {
			keyVal, err := cs.NativeToXdrSCVal(k, *typeDef.Map.KeyType)
			if err != nil {
				return xdr.ScVal{}, err
			}
			valVal, err := cs.NativeToXdrSCVal(v, *typeDef.Map.ValueType)
			if err != nil {
				return xdr.ScVal{}, err
			}
			entries = append(entries, xdr.ScMapEntry{Key: keyVal, Val: valVal})
		}
		return scval.ToMapEntries(entries)
	case xdr.ScSpecTypeScSpecTypeUdt:
		return cs.udtToXdrSCVal(value, typeDef.Udt.Name)
	default:
		return xdr.ScVal{}, specErr(fmt.Sprintf("unsupported spec type %d", typeDef.Type))
	}
}

func (cs *ContractSpec) udtToXdrSCVal(value interface{}, name string) (xdr.ScVal, error) {
	entry, ok := cs.udts[name]
	if !ok {
		return xdr.ScVal{}, &ContractSpecError{Reason: "unknown user-defined type", EntryName: name}
	}
	switch entry.Kind {
	case xdr.ScSpecEntryKindScSpecEntryUdtStructV0:
		return cs.structToXdrSCVal(value, entry.UdtStructV0)
	case xdr.ScSpecEntryKindScSpecEntryUdtUnionV0:
		return cs.unionToXdrSCVal(value, entry.UdtUnionV0)
	case xdr.ScSpecEntryKindScSpecEntryUdtEnumV0:
		return cs.enumToXdrSCVal(value, entry.UdtEnumV0)
	case xdr.ScSpecEntryKindScSpecEntryUdtErrorEnumV0:
		return cs.errorEnumToXdrSCVal(value, entry.UdtErrorEnumV0)
	default:
		return xdr.ScVal{}, &ContractSpecError{Reason: "unsupported udt kind", EntryName: name}
	}
}

func (cs *ContractSpec) structToXdrSCVal(value interface{}, s *xdr.ScSpecUdtStructV0) (xdr.ScVal, error) {
	m, ok := value.(map[string]interface{})
	if !ok {
		return xdr.ScVal{}, &ContractSpecError{Reason: "expected map[string]interface{} for struct", EntryName: s.Name}
	}
	entries := make([]xdr.ScMapEntry, 0, len(s.Fields))
	for _, field := range s.Fields {
		v, ok := m[field.Name]
		if !ok {
			return xdr.ScVal{}, &ContractSpecError{Reason: "missing field", EntryName: s.Name, ArgumentName: field.Name}
		}
		keyVal, err := scval.ToSymbol(field.Name)
		if err != nil {
			return xdr.ScVal{}, err
		}
		valVal, err := cs.NativeToXdrSCVal(v, field.Type)
		if err != nil {
			return xdr.ScVal{}, &ContractSpecError{Reason: err.Error(), EntryName: s.Name, ArgumentName: field.Name}
		}
		entries = append(entries, xdr.ScMapEntry{Key: keyVal, Val: valVal})
	}
	return scval.ToMapEntries(entries)
}

func (cs *ContractSpec) unionToXdrSCVal(value interface{}, u *xdr.ScSpecUdtUnionV0) (xdr.ScVal, error) {
	var tag string
	var values []interface{}
	switch v := value.(type) {
	case string:
		tag = v
	case NativeUnionVal:
		tag = v.Tag
		values = v.Values
	default:
		return xdr.ScVal{}, &ContractSpecError{Reason: "expected string tag or NativeUnionVal for union", EntryName: u.Name}
	}

	for _, c := range u.Cases {
		switch c.Kind {
		case xdr.ScSpecUdtUnionCaseV0KindScSpecUdtUnionCaseVoidV0:
			if c.Void.Name != tag {
				continue
			}
			tagVal, err := scval.ToSymbol(tag)
			if err != nil {
				return xdr.ScVal{}, err
			}
			return scval.ToVec([]xdr.ScVal{tagVal}), nil
		case xdr.ScSpecUdtUnionCaseV0KindScSpecUdtUnionCaseTupleV0:
			if c.Tuple.Name != tag {
				continue
			}
			if len(values) != len(c.Tuple.Types) {
				return xdr.ScVal{}, &ContractSpecError{Reason: "union case arity mismatch", EntryName: u.Name, ArgumentName: tag}
			}
			out := make([]xdr.ScVal, len(values)+1)
			tagVal, err := scval.ToSymbol(tag)
			if err != nil {
				return xdr.ScVal{}, err
			}
			out[0] = tagVal
			for i, v := range values {
				scv, err := cs.NativeToXdrSCVal(v, c.Tuple.Types[i])
				if err != nil {
					return xdr.ScVal{}, err
				}
				out[i+1] = scv
			}
			return scval.ToVec(out), nil
		}
	}
	return xdr.ScVal{}, &ContractSpecError{Reason: "unknown union case", EntryName: u.Name, ArgumentName: tag}
}

func (cs *ContractSpec) enumToXdrSCVal(value interface{}, en *xdr.ScSpecUdtEnumV0) (xdr.ScVal, error) {
	name, isName := value.(string)
	for _, c := range en.Cases {
		if isName && c.Name == name {
			return scval.ToU32(uint32(c.Value)), nil
		}
	}
	n, err := toUint64(value)
	if err == nil {
		for _, c := range en.Cases {
			if uint64(c.Value) == n {
				return scval.ToU32(uint32(c.Value)), nil
			}
		}
	}
	return xdr.ScVal{}, &ContractSpecError{Reason: "unknown enum case", EntryName: en.Name}
}

func (cs *ContractSpec) errorEnumToXdrSCVal(value interface{}, en *xdr.ScSpecUdtErrorEnumV0) (xdr.ScVal, error) {
	name, isName := value.(string)
	for _, c := range en.Cases {
		if isName && c.Name == name {
			code := c.Value
			return xdr.ScVal{Type: xdr.ScvError, Error: &xdr.ScError{Type: xdr.SceContract, Contract: &code}}, nil
		}
	}
	return xdr.ScVal{}, &ContractSpecError{Reason: "unknown error enum case", EntryName: en.Name}
}

// xdrSCValToNative converts a function return value back to native Go,
// used for decoding simulation/invocation results.
func (cs *ContractSpec) xdrSCValToNative(v xdr.ScVal, typeDef xdr.ScSpecTypeDef) (interface{}, error) {
	switch typeDef.Type {
	case xdr.ScSpecTypeScSpecTypeVal:
		return v, nil
	case xdr.ScSpecTypeScSpecTypeBool:
		return scval.FromBool(v)
	case xdr.ScSpecTypeScSpecTypeVoid:
		return nil, nil
	case xdr.ScSpecTypeScSpecTypeU32:
		return scval.FromU32(v)
	case xdr.ScSpecTypeScSpecTypeI32:
		return scval.FromI32(v)
	case xdr.ScSpecTypeScSpecTypeU64:
		return scval.FromU64(v)
	case xdr.ScSpecTypeScSpecTypeI64:
		return scval.FromI64(v)
	case xdr.ScSpecTypeScSpecTypeTimepoint:
		return scval.FromTimepoint(v)
	case xdr.ScSpecTypeScSpecTypeDuration:
		return scval.FromDuration(v)
	case xdr.ScSpecTypeScSpecTypeU128:
		return scval.FromU128(v)
	case xdr.ScSpecTypeScSpecTypeI128:
		return scval.FromI128(v)
	case xdr.ScSpecTypeScSpecTypeU256:
		return scval.FromU256(v)
	case xdr.ScSpecTypeScSpecTypeI256:
		return scval.FromI256(v)
	case xdr.ScSpecTypeScSpecTypeBytes, xdr.ScSpecTypeScSpecTypeBytesN:
		return scval.FromBytes(v)
	case xdr.ScSpecTypeScSpecTypeString:
		return scval.FromString(v)
	case xdr.ScSpecTypeScSpecTypeSymbol:
		return scval.FromSymbol(v)
	case xdr.ScSpecTypeScSpecTypeAddress:
		return scval.FromAddress(v)
	case xdr.ScSpecTypeScSpecTypeOption:
		if scval.IsVoid(v) {
			return nil, nil
		}
		return cs.xdrSCValToNative(v, *typeDef.Option.ValueType)
	case xdr.ScSpecTypeScSpecTypeResult:
		return cs.xdrSCValToNative(v, *typeDef.Result.OkType)
	case xdr.ScSpecTypeScSpecTypeVec:
		items, err := scval.FromVec(v)
		if err != nil {
			return nil, err
		}
		out := make([]interface{}, len(items))
		for i, item := range items {
			n, err := cs.xdrSCValToNative(item, *typeDef.Vec.ElementType)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case xdr.ScSpecTypeScSpecTypeTuple:
		items, err := scval.FromVec(v)
		if err != nil {
			return nil, err
		}
		if len(items) != len(typeDef.Tuple.ValueTypes) {
			return nil, specErr("tuple arity mismatch")
		}
		out := make([]interface{}, len(items))
		for i, item := range items {
			n, err := cs.xdrSCValToNative(item, typeDef.Tuple.ValueTypes[i])
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case xdr.ScSpecTypeScSpecTypeMap:
		entries, err := scval.FromMap(v)
		if err != nil {
			return nil, err
		}
		out := make(map[string]interface{}, len(entries))
		for _, e := range entries {
			k, err := cs.xdrSCValToNative(e.Key, *typeDef.Map.KeyType)
			if err != nil {
				return nil, err
			}
			ks, ok := k.(string)
			if !ok {
				ks = fmt.Sprint(k)
			}
			val, err := cs.xdrSCValToNative(e.Val, *typeDef.Map.ValueType)
			if err != nil {
				return nil, err
			}
			out[ks] = val
		}
		return out, nil
	case xdr.ScSpecTypeScSpecTypeUdt:
		return cs.udtFromXdrSCVal(v, typeDef.Udt.Name)
	default:
		return nil, specErr(fmt.Sprintf("unsupported spec type %d", typeDef.Type))
	}
}

func (cs *ContractSpec) udtFromXdrSCVal(v xdr.ScVal, name string) (interface{}, error) {
	entry, ok := cs.udts[name]
	if !ok {
		return nil, &ContractSpecError{Reason: "unknown user-defined type", EntryName: name}
	}
	switch entry.Kind {
	case xdr.ScSpecEntryKindScSpecEntryUdtStructV0:
		entries, err := scval.FromMap(v)
		if err != nil {
			return nil, err
		}
		fieldTypes := make(map[string]xdr.ScSpecTypeDef, len(entry.UdtStructV0.Fields))
		for _, f := range entry.UdtStructV0.Fields {
			fieldTypes[f.Name] = f.Type
		}
		out := make(map[string]interface{}, len(entries))
		for _, e := range entries {
			k, err := scval.FromSymbol(e.Key)
			if err != nil {
				return nil, err
			}
			ft, ok := fieldTypes[k]
			if !ok {
				continue
			}
			val, err := cs.xdrSCValToNative(e.Val, ft)
			if err != nil {
				return nil, err
			}
			out[k] = val
		}
		return out, nil
	case xdr.ScSpecEntryKindScSpecEntryUdtUnionV0:
		items, err := scval.FromVec(v)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, specErr("empty union value")
		}
		tag, err := scval.FromSymbol(items[0])
		if err != nil {
			return nil, err
		}
		for _, c := range entry.UdtUnionV0.Cases {
			switch c.Kind {
			case xdr.ScSpecUdtUnionCaseV0KindScSpecUdtUnionCaseVoidV0:
				if c.Void.Name == tag {
					return NativeUnionVal{Tag: tag}, nil
				}
			case xdr.ScSpecUdtUnionCaseV0KindScSpecUdtUnionCaseTupleV0:
				if c.Tuple.Name != tag {
					continue
				}
				values := make([]interface{}, len(items)-1)
				for i, t := range c.Tuple.Types {
					n, err := cs.xdrSCValToNative(items[i+1], t)
					if err != nil {
						return nil, err
					}
					values[i] = n
				}
				return NativeUnionVal{Tag: tag, Values: values}, nil
			}
		}
		return nil, &ContractSpecError{Reason: "unknown union case", EntryName: name, ArgumentName: tag}
	case xdr.ScSpecEntryKindScSpecEntryUdtEnumV0:
		n, err := scval.FromU32(v)
		if err != nil {
			return nil, err
		}
		for _, c := range entry.UdtEnumV0.Cases {
			if uint32(c.Value) == n {
				return c.Name, nil
			}
		}
		return nil, &ContractSpecError{Reason: "unknown enum value", EntryName: name}
	case xdr.ScSpecEntryKindScSpecEntryUdtErrorEnumV0:
		if v.Type != xdr.ScvError || v.Error == nil || v.Error.Contract == nil {
			return nil, specErr("expected contract error scval")
		}
		for _, c := range entry.UdtErrorEnumV0.Cases {
			if uint32(c.Value) == uint32(*v.Error.Contract) {
				return c.Name, nil
			}
		}
		return nil, &ContractSpecError{Reason: "unknown error enum value", EntryName: name}
	default:
		return nil, &ContractSpecError{Reason: "unsupported udt kind", EntryName: name}
	}
}

func toUint64(value interface{}) (uint64, error) {
	switch v := value.(type) {
	case uint64:
		return v, nil
	case uint32:
		return uint64(v), nil
	case uint:
		return uint64(v), nil
	case int:
		return uint64(v), nil
	case int32:
		return uint64(v), nil
	case int64:
		return uint64(v), nil
	default:
		return 0, specErr("expected integer")
	}
}

func toInt64(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	default:
		return 0, specErr("expected integer")
	}
}

func toBigInt(value interface{}) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		return v, nil
	case int64:
		return big.NewInt(v), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	case int:
		return big.NewInt(int64(v)), nil
	default:
		return nil, specErr("expected *big.Int")
	}
}
