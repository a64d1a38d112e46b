package xdr

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt128PartsBigIntRoundTrip(t *testing.T) {
	cases := []string{
		"0",
		"1",
		"-1",
		"170141183460469231731687303715884105727",  // max int128
		"-170141183460469231731687303715884105728", // min int128
		"9223372036854775807",
		"-9223372036854775808",
	}
	for _, c := range cases {
		x, ok := new(big.Int).SetString(c, 10)
		require.True(t, ok, c)
		parts := NewInt128Parts(x)
		assert.Equal(t, 0, x.Cmp(parts.BigInt()), "round trip of %s", c)
	}
}

func TestInt128PartsOutOfRangePanics(t *testing.T) {
	tooBig := new(big.Int).Lsh(big.NewInt(1), 127)
	assert.Panics(t, func() { NewInt128Parts(tooBig) })
}

func TestInt256PartsBigIntRoundTrip(t *testing.T) {
	max255 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))
	min255 := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 255))
	cases := []*big.Int{big.NewInt(0), big.NewInt(-1), big.NewInt(42), max255, min255}
	for _, x := range cases {
		parts := NewInt256Parts(x)
		assert.Equal(t, 0, x.Cmp(parts.BigInt()), "round trip of %s", x.String())
	}
}

func TestUInt128PartsBigIntRoundTrip(t *testing.T) {
	max128 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	cases := []*big.Int{big.NewInt(0), big.NewInt(1), max128}
	for _, x := range cases {
		parts := NewUInt128Parts(x)
		assert.Equal(t, 0, x.Cmp(parts.BigInt()))
	}
}

func TestScValI128RoundTripsThroughXDR(t *testing.T) {
	parts := NewInt128Parts(big.NewInt(-12345))
	sv := ScVal{Type: ScvI128, I128: &parts}
	encoded, err := Marshal(sv)
	require.NoError(t, err)

	var decoded ScVal
	require.NoError(t, UnmarshalAll(encoded, &decoded))
	require.NotNil(t, decoded.I128)
	assert.Equal(t, int64(-12345), decoded.I128.BigInt().Int64())
}

func TestScValSymbolRoundTrip(t *testing.T) {
	sym := ScSymbol("transfer")
	sv := ScVal{Type: ScvSymbol, Sym: &sym}
	encoded, err := Marshal(sv)
	require.NoError(t, err)

	var decoded ScVal
	require.NoError(t, UnmarshalAll(encoded, &decoded))
	require.NotNil(t, decoded.Sym)
	assert.Equal(t, "transfer", string(*decoded.Sym))
}

func TestScValVecAndMapRoundTrip(t *testing.T) {
	one := Uint32(1)
	two := Uint32(2)
	vec := ScVec{
		{Type: ScvU32, U32: &one},
		{Type: ScvU32, U32: &two},
	}
	sv := ScVal{Type: ScvVec, Vec: &vec}
	encoded, err := Marshal(sv)
	require.NoError(t, err)

	var decoded ScVal
	require.NoError(t, UnmarshalAll(encoded, &decoded))
	require.NotNil(t, decoded.Vec)
	require.Len(t, *decoded.Vec, 2)
	assert.Equal(t, uint32(1), uint32(*(*decoded.Vec)[0].U32))

	sym := ScSymbol("key")
	m := ScMap{{Key: ScVal{Type: ScvSymbol, Sym: &sym}, Val: ScVal{Type: ScvU32, U32: &one}}}
	sv = ScVal{Type: ScvMap, Map: &m}
	encoded, err = Marshal(sv)
	require.NoError(t, err)

	decoded = ScVal{}
	require.NoError(t, UnmarshalAll(encoded, &decoded))
	require.NotNil(t, decoded.Map)
	require.Len(t, *decoded.Map, 1)
}

func TestScAddressContractRoundTrip(t *testing.T) {
	var h Hash
	h[0] = 0xAB
	addr := ScAddress{Type: ScAddressTypeScAddressTypeContract, ContractId: &h}
	encoded, err := Marshal(addr)
	require.NoError(t, err)

	var decoded ScAddress
	require.NoError(t, UnmarshalAll(encoded, &decoded))
	assert.Equal(t, h, *decoded.ContractId)
}
