// Package xdr implements the RFC 4506 binary encoding used for every
// Stellar ledger entry, operation, transaction and Soroban value (spec.md
// §4.3). Encoder/Decoder are the low-level primitives; every exported type
// in this package implements EncodeTo/DecodeFrom against them, and
// Marshal/Unmarshal (plus the Base64 helpers) are the entry points the rest
// of this SDK uses.
package xdr

import (
	"bytes"
	"encoding/base64"
	"io"

	"github.com/stellar/go-stellar-sdk/support/errors"
)

// Encodable is implemented by every XDR type in this package.
type Encodable interface {
	EncodeTo(e *Encoder) error
}

// Decodable is implemented by every XDR type in this package. DecodeFrom
// returns the number of bytes consumed, mirroring the real stellar/go xdr
// package's convention so callers can track "remaining" bytes across a
// sequence of values (spec.md §4.3: "decode(bytes) → value, remaining").
type Decodable interface {
	DecodeFrom(d *Decoder) (int, error)
}

// Encoder writes RFC 4506 primitives to an underlying writer.
type Encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) *Encoder { return &Encoder{w: w} }

func (e *Encoder) write(b []byte) error {
	_, err := e.w.Write(b)
	return err
}

// EncodeInt writes a signed 32-bit big-endian integer.
func (e *Encoder) EncodeInt(v int32) error {
	return e.EncodeUint(uint32(v))
}

// EncodeUint writes an unsigned 32-bit big-endian integer. Every XDR integer
// width of 32 bits or smaller (bool, enum, unsigned, signed) funnels through
// here.
func (e *Encoder) EncodeUint(v uint32) error {
	var b [4]byte
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
	return e.write(b[:])
}

// EncodeHyper writes a signed 64-bit big-endian integer.
func (e *Encoder) EncodeHyper(v int64) error {
	return e.EncodeUhyper(uint64(v))
}

// EncodeUhyper writes an unsigned 64-bit big-endian integer.
func (e *Encoder) EncodeUhyper(v uint64) error {
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> uint(56-8*i))
	}
	return e.write(b[:])
}

// EncodeBool writes a 4-byte boolean (0 or 1).
func (e *Encoder) EncodeBool(v bool) error {
	if v {
		return e.EncodeUint(1)
	}
	return e.EncodeUint(0)
}

// EncodeFixedOpaque writes exactly len(b) bytes, zero-padded up to the next
// multiple of 4. No length prefix: the size is declared by the type.
func (e *Encoder) EncodeFixedOpaque(b []byte) error {
	if err := e.write(b); err != nil {
		return err
	}
	return e.writePadding(len(b))
}

// EncodeOpaque writes a variable-length byte string: u32 length, the bytes,
// then zero padding to a multiple of 4.
func (e *Encoder) EncodeOpaque(b []byte) error {
	if err := e.EncodeUint(uint32(len(b))); err != nil {
		return err
	}
	return e.EncodeFixedOpaque(b)
}

// EncodeString writes a variable length UTF-8 string the same way as
// EncodeOpaque (length-prefixed, padded).
func (e *Encoder) EncodeString(s string) error {
	return e.EncodeOpaque([]byte(s))
}

func (e *Encoder) writePadding(n int) error {
	if pad := (4 - n%4) % 4; pad > 0 {
		return e.write(make([]byte, pad))
	}
	return nil
}

// Marshal encodes v (which must implement Encodable) to a byte slice whose
// length is always a multiple of 4, per spec.md §8.
func Marshal(v Encodable) ([]byte, error) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	if err := v.EncodeTo(enc); err != nil {
		return nil, errors.Wrap(err, "xdr encode")
	}
	return buf.Bytes(), nil
}

// MarshalBase64 encodes v and base64-encodes the result, the form used on
// the wire for transaction envelopes and RPC parameters.
func MarshalBase64(v Encodable) (string, error) {
	b, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
