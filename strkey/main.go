// Package strkey implements the Stellar strkey textual key format:
// version byte + payload + CRC16-XModem checksum (low byte first), base32 encoded
// with RFC 4648's alphabet and no padding. See spec.md §4.2.
package strkey

import (
	"encoding/base32"
	"fmt"
)

// VersionByte identifies the kind of key a strkey payload carries. The value
// is the unshifted byte placed immediately before the payload; its top 5
// bits become the first character once base32 encoded (so VersionByteSeed's
// top 5 bits, 18, map to "S", index 18 of the base32 alphabet).
type VersionByte byte

const (
	VersionByteAccountID     VersionByte = 6 << 3  // 'G'
	VersionByteMuxedAccount  VersionByte = 12 << 3 // 'M'
	VersionByteSeed          VersionByte = 18 << 3 // 'S'
	VersionByteHashTx        VersionByte = 19 << 3 // 'T' (preAuthTx)
	VersionByteHashX         VersionByte = 23 << 3 // 'X'
	VersionByteSignedPayload VersionByte = 15 << 3 // 'P'
	VersionByteContract      VersionByte = 2 << 3  // 'C'
)

func (v VersionByte) String() string {
	switch v {
	case VersionByteAccountID:
		return "accountId"
	case VersionByteMuxedAccount:
		return "muxedAccount"
	case VersionByteSeed:
		return "seed"
	case VersionByteHashTx:
		return "preAuthTx"
	case VersionByteHashX:
		return "hashX"
	case VersionByteSignedPayload:
		return "signedPayload"
	case VersionByteContract:
		return "contract"
	default:
		return fmt.Sprintf("unknown(0x%02x)", byte(v))
	}
}

var b32 = base32.StdEncoding.WithPadding(base32.NoPadding)

// Encode builds the strkey text for kind over payload: versionByte || payload
// || crc16(versionByte || payload), base32 encoded without padding.
func Encode(kind VersionByte, payload []byte) (string, error) {
	if err := checkPayloadLength(kind, len(payload)); err != nil {
		return "", err
	}
	unencoded := make([]byte, 0, 1+len(payload)+2)
	unencoded = append(unencoded, byte(kind))
	unencoded = append(unencoded, payload...)
	crc := crc16XModem(unencoded)
	unencoded = append(unencoded, byte(crc), byte(crc>>8))
	return b32.EncodeToString(unencoded), nil
}

// Decode inverts Encode, verifying the version byte matches kind and the
// checksum is valid before returning the payload.
func Decode(kind VersionByte, s string) ([]byte, error) {
	raw, err := decodeBase32Strict(s)
	if err != nil {
		return nil, invalid(kind, ReasonBadBase32)
	}
	if len(raw) < 3 {
		return nil, invalid(kind, ReasonBadLength)
	}

	version := VersionByte(raw[0])
	body := raw[:len(raw)-2]
	wantCRC := crc16XModem(body)
	gotCRC := uint16(raw[len(raw)-2]) | uint16(raw[len(raw)-1])<<8
	if wantCRC != gotCRC {
		return nil, invalid(kind, ReasonBadChecksum)
	}
	if version != kind {
		return nil, invalid(kind, ReasonBadVersion)
	}

	payload := body[1:]
	if err := checkPayloadLength(kind, len(payload)); err != nil {
		return nil, err
	}
	return payload, nil
}

// Version returns the VersionByte of a strkey string without validating its
// payload length, used by callers that need to dispatch on kind before they
// know which Decode variant to call.
func Version(s string) (VersionByte, error) {
	raw, err := decodeBase32Strict(s)
	if err != nil {
		return 0, invalid(0, ReasonBadBase32)
	}
	if len(raw) < 3 {
		return 0, invalid(0, ReasonBadLength)
	}
	body := raw[:len(raw)-2]
	wantCRC := crc16XModem(body)
	gotCRC := uint16(raw[len(raw)-2]) | uint16(raw[len(raw)-1])<<8
	if wantCRC != gotCRC {
		return 0, invalid(0, ReasonBadChecksum)
	}
	return VersionByte(raw[0]), nil
}

// decodeBase32Strict rejects any base32 input whose trailing bits (beyond
// the last full byte covered by the 5-bit groups) are non-zero, per
// spec.md §4.2(c) — a naive decoder would silently accept a corrupted key
// whose last character encodes stray bits.
func decodeBase32Strict(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("empty strkey")
	}
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return nil, fmt.Errorf("lowercase not allowed in strkey")
		}
	}
	decoded, err := b32.DecodeString(s)
	if err != nil {
		return nil, err
	}
	// Re-encode and compare: any stray low bits in the last base32 character
	// that don't round-trip indicate an invalid, non-canonical encoding.
	reencoded := b32.EncodeToString(decoded)
	if reencoded != s {
		return nil, fmt.Errorf("non-canonical base32 encoding")
	}
	return decoded, nil
}

func checkPayloadLength(kind VersionByte, n int) error {
	switch kind {
	case VersionByteMuxedAccount:
		if n != 40 {
			return invalid(kind, ReasonBadLength)
		}
	case VersionByteSignedPayload:
		if n < 32+4+4 || n > 32+4+64 {
			return invalid(kind, ReasonBadPayload)
		}
	default:
		if n != 32 {
			return invalid(kind, ReasonBadLength)
		}
	}
	return nil
}

// IsValidEd25519PublicKey reports whether address is a well-formed "G..."
// account address.
func IsValidEd25519PublicKey(address string) bool {
	_, err := Decode(VersionByteAccountID, address)
	return err == nil
}

// IsValidEd25519SecretSeed reports whether seed is a well-formed "S..."
// secret seed.
func IsValidEd25519SecretSeed(seed string) bool {
	_, err := Decode(VersionByteSeed, seed)
	return err == nil
}

// IsValidContractAddress reports whether address is a well-formed "C..."
// contract address.
func IsValidContractAddress(address string) bool {
	_, err := Decode(VersionByteContract, address)
	return err == nil
}
