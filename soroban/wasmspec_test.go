package soroban

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellar/go-stellar-sdk/xdr"
)

// appendUleb128 appends n's ULEB128 encoding (the same varint format wasm
// section headers and custom section name lengths use) to buf.
func appendUleb128(buf []byte, n uint64) []byte {
	var tmp [binary.MaxVarintLen64]byte
	w := binary.PutUvarint(tmp[:], n)
	return append(buf, tmp[:w]...)
}

// buildWasm assembles a minimal valid wasm module (magic + version, no
// other sections) carrying one custom section per name/payload pair.
func buildWasm(sections map[string][]byte) []byte {
	wasm := append([]byte{}, wasmMagic...)
	wasm = append(wasm, 0x01, 0x00, 0x00, 0x00) // version 1
	for name, payload := range sections {
		var body []byte
		body = appendUleb128(body, uint64(len(name)))
		body = append(body, name...)
		body = append(body, payload...)

		wasm = append(wasm, 0x00) // custom section id
		wasm = appendUleb128(wasm, uint64(len(body)))
		wasm = append(wasm, body...)
	}
	return wasm
}

func sampleSpecEntry(t *testing.T) xdr.ScSpecEntry {
	t.Helper()
	return xdr.ScSpecEntry{
		Kind: xdr.ScSpecEntryKindScSpecEntryFunctionV0,
		FunctionV0: &xdr.ScSpecFunctionV0{
			Name: "echo",
			Inputs: []xdr.ScSpecFunctionInputV0{
				{Name: "x", Type: xdr.ScSpecTypeDef{Type: xdr.ScSpecTypeScSpecTypeU32}},
			},
			Outputs: []xdr.ScSpecTypeDef{{Type: xdr.ScSpecTypeScSpecTypeU32}},
		},
	}
}

func TestParseContractSpecEntries(t *testing.T) {
	entry := sampleSpecEntry(t)
	raw, err := xdr.Marshal(entry)
	require.NoError(t, err)

	wasm := buildWasm(map[string][]byte{
		"contractspecv0": raw,
		"other-custom":   []byte("ignored"),
	})

	entries, err := parseContractSpecEntries(wasm)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, xdr.ScSpecEntryKindScSpecEntryFunctionV0, entries[0].Kind)
	require.NotNil(t, entries[0].FunctionV0)
	assert.Equal(t, "echo", entries[0].FunctionV0.Name)
	require.Len(t, entries[0].FunctionV0.Inputs, 1)
	assert.Equal(t, "x", entries[0].FunctionV0.Inputs[0].Name)
}

func TestParseContractSpecEntriesMultipleEntriesConcatenated(t *testing.T) {
	first := sampleSpecEntry(t)
	second := xdr.ScSpecEntry{
		Kind: xdr.ScSpecEntryKindScSpecEntryFunctionV0,
		FunctionV0: &xdr.ScSpecFunctionV0{
			Name:    "noop",
			Outputs: []xdr.ScSpecTypeDef{{Type: xdr.ScSpecTypeScSpecTypeVoid}},
		},
	}
	firstRaw, err := xdr.Marshal(first)
	require.NoError(t, err)
	secondRaw, err := xdr.Marshal(second)
	require.NoError(t, err)

	wasm := buildWasm(map[string][]byte{"contractspecv0": append(firstRaw, secondRaw...)})

	entries, err := parseContractSpecEntries(wasm)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "echo", entries[0].FunctionV0.Name)
	assert.Equal(t, "noop", entries[1].FunctionV0.Name)
}

func TestParseContractSpecEntriesNotWasm(t *testing.T) {
	_, err := parseContractSpecEntries([]byte("not a wasm module"))
	require.Error(t, err)
}

func TestParseContractSpecEntriesNoSpecSection(t *testing.T) {
	wasm := buildWasm(map[string][]byte{"name": []byte("my-contract")})
	_, err := parseContractSpecEntries(wasm)
	require.Error(t, err)
}
