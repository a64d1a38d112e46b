package soroban

import (
	"bytes"
	"encoding/binary"

	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

var wasmMagic = []byte{0x00, 0x61, 0x73, 0x6d}

const contractSpecCustomSectionName = "contractspecv0"

// parseContractSpecEntries extracts a contract's embedded interface
// declarations from the "contractspecv0" custom section(s) of its compiled
// wasm, the same section the Soroban CLI reads to generate bindings. No
// third-party wasm parser is vendored in this pack, so the minimal
// module-header/custom-section walk needed to locate that one section is
// done by hand; everything past the section boundary is handed to the
// existing XDR decoder.
func parseContractSpecEntries(wasm []byte) ([]xdr.ScSpecEntry, error) {
	if len(wasm) < 8 || !bytes.Equal(wasm[:4], wasmMagic) {
		return nil, errors.New("soroban: not a wasm module")
	}

	var specBytes []byte
	offset := 8
	for offset < len(wasm) {
		id := wasm[offset]
		offset++
		size, n, err := readUvarint(wasm[offset:])
		if err != nil {
			return nil, err
		}
		offset += n
		if offset+int(size) > len(wasm) {
			return nil, errors.New("soroban: truncated wasm section")
		}
		section := wasm[offset : offset+int(size)]
		offset += int(size)

		if id != 0 {
			continue
		}
		nameLen, nn, err := readUvarint(section)
		if err != nil {
			return nil, err
		}
		if nn+int(nameLen) > len(section) {
			return nil, errors.New("soroban: truncated wasm custom section name")
		}
		name := string(section[nn : nn+int(nameLen)])
		if name == contractSpecCustomSectionName {
			specBytes = append(specBytes, section[nn+int(nameLen):]...)
		}
	}

	if specBytes == nil {
		return nil, errors.New("soroban: wasm has no contractspecv0 section")
	}

	var entries []xdr.ScSpecEntry
	d := xdr.NewDecoder(specBytes)
	for len(d.Remaining()) > 0 {
		var e xdr.ScSpecEntry
		if _, err := e.DecodeFrom(d); err != nil {
			return nil, errors.Wrap(err, "soroban: decoding contract spec entry")
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func readUvarint(b []byte) (uint64, int, error) {
	v, n := binary.Uvarint(b)
	if n <= 0 {
		return 0, 0, errors.New("soroban: invalid wasm varint")
	}
	return v, n, nil
}
