package xdr

import (
	"encoding/base64"
	"fmt"

	"github.com/stellar/go-stellar-sdk/support/errors"
)

// DecodeError carries the byte offset at which decoding failed, per
// spec.md §7 ("context includes byte offset where available").
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("xdr decode at offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decoder reads RFC 4506 primitives from an in-memory buffer. Unlike
// Encoder it is not stream-based: every Decode call tracks its absolute
// offset so failures can report where in the payload they occurred.
type Decoder struct {
	buf    []byte
	offset int
}

func NewDecoder(b []byte) *Decoder { return &Decoder{buf: b} }

func (d *Decoder) fail(err error) error {
	return &DecodeError{Offset: d.offset, Err: err}
}

func (d *Decoder) read(n int) ([]byte, error) {
	if n < 0 || d.offset+n > len(d.buf) {
		return nil, d.fail(errors.New("unexpected end of xdr input"))
	}
	b := d.buf[d.offset : d.offset+n]
	d.offset += n
	return b, nil
}

// Remaining returns the bytes not yet consumed.
func (d *Decoder) Remaining() []byte { return d.buf[d.offset:] }

func (d *Decoder) DecodeInt() (int32, error) {
	v, err := d.DecodeUint()
	return int32(v), err
}

func (d *Decoder) DecodeUint() (uint32, error) {
	b, err := d.read(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

func (d *Decoder) DecodeHyper() (int64, error) {
	v, err := d.DecodeUhyper()
	return int64(v), err
}

func (d *Decoder) DecodeUhyper() (uint64, error) {
	b, err := d.read(8)
	if err != nil {
		return 0, err
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(b[i])
	}
	return v, nil
}

func (d *Decoder) DecodeBool() (bool, error) {
	v, err := d.DecodeUint()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, d.fail(errors.New("invalid boolean value"))
	}
}

func (d *Decoder) DecodeFixedOpaque(n int) ([]byte, error) {
	b, err := d.read(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	if err := d.skipPadding(n); err != nil {
		return nil, err
	}
	return out, nil
}

func (d *Decoder) DecodeOpaque(maxLen uint32) ([]byte, error) {
	n, err := d.DecodeUint()
	if err != nil {
		return nil, err
	}
	if maxLen > 0 && n > maxLen {
		return nil, d.fail(fmt.Errorf("opaque length %d exceeds max %d", n, maxLen))
	}
	return d.DecodeFixedOpaque(int(n))
}

func (d *Decoder) DecodeString(maxLen uint32) (string, error) {
	b, err := d.DecodeOpaque(maxLen)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (d *Decoder) skipPadding(n int) error {
	if pad := (4 - n%4) % 4; pad > 0 {
		b, err := d.read(pad)
		if err != nil {
			return err
		}
		for _, p := range b {
			if p != 0 {
				return d.fail(errors.New("non-zero xdr padding"))
			}
		}
	}
	return nil
}

// Unmarshal decodes src into v (which must implement Decodable), returning
// the number of trailing bytes not consumed.
func Unmarshal(src []byte, v Decodable) (int, error) {
	d := NewDecoder(src)
	n, err := v.DecodeFrom(d)
	if err != nil {
		return 0, errors.Wrap(err, "xdr decode")
	}
	return len(src) - n, nil
}

// UnmarshalAll is Unmarshal but additionally requires every byte of src to
// have been consumed.
func UnmarshalAll(src []byte, v Decodable) error {
	remaining, err := Unmarshal(src, v)
	if err != nil {
		return err
	}
	if remaining != 0 {
		return errors.Errorf("xdr decode: %d trailing bytes", remaining)
	}
	return nil
}

// UnmarshalBase64 base64-decodes src then unmarshals it fully into v.
func UnmarshalBase64(src string, v Decodable) error {
	raw, err := base64.StdEncoding.DecodeString(src)
	if err != nil {
		return errors.Wrap(err, "base64 decode")
	}
	return UnmarshalAll(raw, v)
}

// SafeUnmarshalBase64 is an alias for UnmarshalBase64 kept for symmetry
// with the name used across the wider Stellar Go ecosystem
// (xdr.SafeUnmarshalBase64), where "safe" signals bounds-checked decoding
// rather than the historical reflection-based decoder.
func SafeUnmarshalBase64(src string, v Decodable) error {
	return UnmarshalBase64(src, v)
}
