package contractspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellar/go-stellar-sdk/soroban/scval"
	"github.com/stellar/go-stellar-sdk/xdr"
)

func typeU32() xdr.ScSpecTypeDef  { return xdr.ScSpecTypeDef{Type: xdr.ScSpecTypeScSpecTypeU32} }
func typeBool() xdr.ScSpecTypeDef { return xdr.ScSpecTypeDef{Type: xdr.ScSpecTypeScSpecTypeBool} }

func transferFunc() xdr.ScSpecEntry {
	return xdr.ScSpecEntry{
		Kind: xdr.ScSpecEntryKindScSpecEntryFunctionV0,
		FunctionV0: &xdr.ScSpecFunctionV0{
			Name: "transfer",
			Inputs: []xdr.ScSpecFunctionInputV0{
				{Name: "amount", Type: typeU32()},
			},
			Outputs: []xdr.ScSpecTypeDef{typeBool()},
		},
	}
}

func TestFuncArgsToXdrSCValuesOrdersByInputDeclaration(t *testing.T) {
	cs := New([]xdr.ScSpecEntry{transferFunc()})
	vals, err := cs.FuncArgsToXdrSCValues("transfer", map[string]interface{}{"amount": uint32(7)})
	require.NoError(t, err)
	require.Len(t, vals, 1)
	n, err := scval.FromU32(vals[0])
	require.NoError(t, err)
	assert.Equal(t, uint32(7), n)
}

func TestFuncArgsToXdrSCValuesMissingArgument(t *testing.T) {
	cs := New([]xdr.ScSpecEntry{transferFunc()})
	_, err := cs.FuncArgsToXdrSCValues("transfer", map[string]interface{}{})
	require.Error(t, err)
}

func TestFuncResToNative(t *testing.T) {
	cs := New([]xdr.ScSpecEntry{transferFunc()})
	v, err := cs.FuncResToNative("transfer", scval.ToBool(true))
	require.NoError(t, err)
	assert.Equal(t, true, v)
}

func pointStruct() xdr.ScSpecEntry {
	return xdr.ScSpecEntry{
		Kind: xdr.ScSpecEntryKindScSpecEntryUdtStructV0,
		UdtStructV0: &xdr.ScSpecUdtStructV0{
			Name: "Point",
			Fields: []xdr.ScSpecUdtStructFieldV0{
				{Name: "x", Type: typeU32()},
				{Name: "y", Type: typeU32()},
			},
		},
	}
}

func TestStructRoundTripByFieldName(t *testing.T) {
	cs := New([]xdr.ScSpecEntry{pointStruct()})
	typeDef := xdr.ScSpecTypeDef{Type: xdr.ScSpecTypeScSpecTypeUdt, Udt: &xdr.ScSpecTypeUdt{Name: "Point"}}

	scv, err := cs.NativeToXdrSCVal(map[string]interface{}{"x": uint32(1), "y": uint32(2)}, typeDef)
	require.NoError(t, err)

	native, err := cs.xdrSCValToNative(scv, typeDef)
	require.NoError(t, err)
	m, ok := native.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, uint32(1), m["x"])
	assert.Equal(t, uint32(2), m["y"])
}

func colorUnion() xdr.ScSpecEntry {
	return xdr.ScSpecEntry{
		Kind: xdr.ScSpecEntryKindScSpecEntryUdtUnionV0,
		UdtUnionV0: &xdr.ScSpecUdtUnionV0{
			Name: "Color",
			Cases: []xdr.ScSpecUdtUnionCaseV0{
				{Kind: xdr.ScSpecUdtUnionCaseV0KindScSpecUdtUnionCaseVoidV0, Void: &xdr.ScSpecUdtUnionCaseVoidV0{Name: "Red"}},
				{Kind: xdr.ScSpecUdtUnionCaseV0KindScSpecUdtUnionCaseTupleV0, Tuple: &xdr.ScSpecUdtUnionCaseTupleV0{
					Name:  "Custom",
					Types: []xdr.ScSpecTypeDef{typeU32()},
				}},
			},
		},
	}
}

func TestUnionVoidCaseAcceptsBareTagName(t *testing.T) {
	cs := New([]xdr.ScSpecEntry{colorUnion()})
	typeDef := xdr.ScSpecTypeDef{Type: xdr.ScSpecTypeScSpecTypeUdt, Udt: &xdr.ScSpecTypeUdt{Name: "Color"}}

	scv, err := cs.NativeToXdrSCVal("Red", typeDef)
	require.NoError(t, err)

	native, err := cs.xdrSCValToNative(scv, typeDef)
	require.NoError(t, err)
	assert.Equal(t, NativeUnionVal{Tag: "Red"}, native)
}

func TestUnionTupleCaseRoundTrip(t *testing.T) {
	cs := New([]xdr.ScSpecEntry{colorUnion()})
	typeDef := xdr.ScSpecTypeDef{Type: xdr.ScSpecTypeScSpecTypeUdt, Udt: &xdr.ScSpecTypeUdt{Name: "Color"}}

	scv, err := cs.NativeToXdrSCVal(NativeUnionVal{Tag: "Custom", Values: []interface{}{uint32(42)}}, typeDef)
	require.NoError(t, err)

	native, err := cs.xdrSCValToNative(scv, typeDef)
	require.NoError(t, err)
	got, ok := native.(NativeUnionVal)
	require.True(t, ok)
	assert.Equal(t, "Custom", got.Tag)
	require.Len(t, got.Values, 1)
	assert.Equal(t, uint32(42), got.Values[0])
}

func statusEnum() xdr.ScSpecEntry {
	return xdr.ScSpecEntry{
		Kind: xdr.ScSpecEntryKindScSpecEntryUdtEnumV0,
		UdtEnumV0: &xdr.ScSpecUdtEnumV0{
			Name: "Status",
			Cases: []xdr.ScSpecUdtEnumCaseV0{
				{Name: "Active", Value: 0},
				{Name: "Closed", Value: 1},
			},
		},
	}
}

func TestEnumRoundTripByTagName(t *testing.T) {
	cs := New([]xdr.ScSpecEntry{statusEnum()})
	typeDef := xdr.ScSpecTypeDef{Type: xdr.ScSpecTypeScSpecTypeUdt, Udt: &xdr.ScSpecTypeUdt{Name: "Status"}}

	scv, err := cs.NativeToXdrSCVal("Closed", typeDef)
	require.NoError(t, err)

	native, err := cs.xdrSCValToNative(scv, typeDef)
	require.NoError(t, err)
	assert.Equal(t, "Closed", native)
}

func TestOptionNilProducesVoid(t *testing.T) {
	cs := New(nil)
	typeDef := xdr.ScSpecTypeDef{Type: xdr.ScSpecTypeScSpecTypeOption, Option: &xdr.ScSpecTypeOption{ValueType: func() *xdr.ScSpecTypeDef { t := typeU32(); return &t }()}}

	scv, err := cs.NativeToXdrSCVal(nil, typeDef)
	require.NoError(t, err)
	assert.True(t, scval.IsVoid(scv))

	native, err := cs.xdrSCValToNative(scv, typeDef)
	require.NoError(t, err)
	assert.Nil(t, native)
}

func TestUnknownFunctionErrors(t *testing.T) {
	cs := New(nil)
	_, err := cs.FuncArgsToXdrSCValues("nope", map[string]interface{}{})
	require.Error(t, err)
	var specErr *ContractSpecError
	require.ErrorAs(t, err, &specErr)
}
