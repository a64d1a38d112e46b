package scval

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellar/go-stellar-sdk/xdr"
)

func TestBoolRoundTrip(t *testing.T) {
	v := ToBool(true)
	got, err := FromBool(v)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestI128RoundTripNegative(t *testing.T) {
	want := big.NewInt(-123456789)
	v := ToI128(want)
	got, err := FromI128(v)
	require.NoError(t, err)
	assert.Equal(t, 0, want.Cmp(got))
}

func TestU256RoundTripLarge(t *testing.T) {
	want := new(big.Int).Lsh(big.NewInt(1), 200)
	v := ToU256(want)
	got, err := FromU256(v)
	require.NoError(t, err)
	assert.Equal(t, 0, want.Cmp(got))
}

func TestSymbolRejectsTooLongOrInvalid(t *testing.T) {
	_, err := ToSymbol("this_symbol_is_definitely_longer_than_32_chars")
	require.Error(t, err)

	_, err = ToSymbol("has a space")
	require.Error(t, err)

	v, err := ToSymbol("transfer")
	require.NoError(t, err)
	got, err := FromSymbol(v)
	require.NoError(t, err)
	assert.Equal(t, "transfer", got)
}

func TestAddressRoundTripAccountAndContract(t *testing.T) {
	account := "GDQNY3PBOJOKYZSRMK2S7LHHGWZIUISD4QORETLMXEWXBI7KFZZMKTL3"
	v, err := ToAddress(account)
	require.NoError(t, err)
	got, err := FromAddress(v)
	require.NoError(t, err)
	assert.Equal(t, account, got)

	contract := "CCW67TSZV3SSS2HXMBQ5JFGCKJNXKZM7UQUWUZPUTHXSTZLEO7SJMI75"
	v, err = ToAddress(contract)
	require.NoError(t, err)
	got, err = FromAddress(v)
	require.NoError(t, err)
	assert.Equal(t, contract, got)
}

func TestMapCanonicalOrdering(t *testing.T) {
	zVal, _ := ToSymbol("zzz")
	aVal, _ := ToSymbol("aaa")
	mVal, _ := ToSymbol("mmm")

	v, err := ToMapEntries([]xdr.ScMapEntry{
		{Key: zVal, Val: ToU32(1)},
		{Key: aVal, Val: ToU32(2)},
		{Key: mVal, Val: ToU32(3)},
	})
	require.NoError(t, err)

	entries, err := FromMap(v)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	first, err := FromSymbol(entries[0].Key)
	require.NoError(t, err)
	assert.Equal(t, "aaa", first)

	last, err := FromSymbol(entries[2].Key)
	require.NoError(t, err)
	assert.Equal(t, "zzz", last)
}

func TestVecRoundTrip(t *testing.T) {
	v := ToVec([]xdr.ScVal{ToU32(1), ToBool(false)})
	items, err := FromVec(v)
	require.NoError(t, err)
	require.Len(t, items, 2)

	n, err := FromU32(items[0])
	require.NoError(t, err)
	assert.Equal(t, uint32(1), n)
}

func TestFromWrongTypeErrors(t *testing.T) {
	_, err := FromBool(ToU32(1))
	require.Error(t, err)
}
