package xdr

import (
	"encoding/binary"

	"github.com/stellar/go-stellar-sdk/strkey"
	"github.com/stellar/go-stellar-sdk/support/errors"
)

// Hash is a 32 byte digest, used for transaction hashes, network ids,
// asset/claimable-balance/contract identifiers and more.
type Hash [32]byte

func (h Hash) EncodeTo(e *Encoder) error { return e.EncodeFixedOpaque(h[:]) }
func (h *Hash) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	b, err := d.DecodeFixedOpaque(32)
	if err != nil {
		return 0, err
	}
	copy(h[:], b)
	return d.offset - start, nil
}

// Uint256 is a fixed 32 byte opaque value, used for Ed25519 keys and salts.
type Uint256 [32]byte

func (u Uint256) EncodeTo(e *Encoder) error { return e.EncodeFixedOpaque(u[:]) }
func (u *Uint256) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	b, err := d.DecodeFixedOpaque(32)
	if err != nil {
		return 0, err
	}
	copy(u[:], b)
	return d.offset - start, nil
}

// Signature is a variable-length opaque Ed25519 signature, max 64 bytes.
type Signature []byte

func (s Signature) EncodeTo(e *Encoder) error { return e.EncodeOpaque(s) }
func (s *Signature) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	b, err := d.DecodeOpaque(64)
	if err != nil {
		return 0, err
	}
	*s = b
	return d.offset - start, nil
}

// SignatureHint is the last 4 bytes of a signing key's public key, used by
// validators to match a DecoratedSignature to a signer.
type SignatureHint [4]byte

func (h SignatureHint) EncodeTo(e *Encoder) error { return e.EncodeFixedOpaque(h[:]) }
func (h *SignatureHint) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	b, err := d.DecodeFixedOpaque(4)
	if err != nil {
		return 0, err
	}
	copy(h[:], b)
	return d.offset - start, nil
}

// DecoratedSignature pairs a Signature with the SignatureHint of the key
// that produced it.
type DecoratedSignature struct {
	Hint      SignatureHint
	Signature Signature
}

func (s DecoratedSignature) EncodeTo(e *Encoder) error {
	if err := s.Hint.EncodeTo(e); err != nil {
		return err
	}
	return s.Signature.EncodeTo(e)
}

func (s *DecoratedSignature) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := s.Hint.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := s.Signature.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

// NewDecoratedSignature creates a decorated signature using the signature
// and the key hint for the key that produced the signature.
func NewDecoratedSignature(signature []byte, keyHint [4]byte) DecoratedSignature {
	return DecoratedSignature{
		Hint:      SignatureHint(keyHint),
		Signature: Signature(signature),
	}
}

// NewDecoratedSignatureForPayload creates a decorated signature for a
// signed-payload signer: the hint is the key's hint XORed with the last 4
// bytes of the payload that was signed.
func NewDecoratedSignatureForPayload(signature []byte, keyHint [4]byte, payload []byte) DecoratedSignature {
	var payloadHint [4]byte
	if len(payload) < len(payloadHint) {
		copy(payloadHint[:], payload)
	} else {
		copy(payloadHint[:], payload[len(payload)-4:])
	}
	hint := [4]byte{
		keyHint[0] ^ payloadHint[0],
		keyHint[1] ^ payloadHint[1],
		keyHint[2] ^ payloadHint[2],
		keyHint[3] ^ payloadHint[3],
	}
	return DecoratedSignature{
		Hint:      SignatureHint(hint),
		Signature: Signature(signature),
	}
}

// PublicKeyType discriminates the PublicKey union (only Ed25519 exists
// today).
type PublicKeyType int32

const PublicKeyTypePublicKeyTypeEd25519 PublicKeyType = 0

// PublicKey is presently always an Ed25519 key; it is kept as a union to
// match the wire format and allow future key types.
type PublicKey struct {
	Type    PublicKeyType
	Ed25519 *Uint256
}

func (p PublicKey) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(p.Type)); err != nil {
		return err
	}
	return p.Ed25519.EncodeTo(e)
}

func (p *PublicKey) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	p.Type = PublicKeyType(t)
	if p.Type != PublicKeyTypePublicKeyTypeEd25519 {
		return 0, d.fail(errors.Errorf("unsupported public key type %d", p.Type))
	}
	var key Uint256
	if _, err := key.DecodeFrom(d); err != nil {
		return 0, err
	}
	p.Ed25519 = &key
	return d.offset - start, nil
}

// AccountId is a Stellar account's public key, wrapped in the PublicKey
// union for XDR purposes but exposed as a strkey string everywhere else in
// this SDK.
type AccountId struct {
	PublicKey PublicKey
}

func (a AccountId) EncodeTo(e *Encoder) error { return a.PublicKey.EncodeTo(e) }
func (a *AccountId) DecodeFrom(d *Decoder) (int, error) {
	return a.PublicKey.DecodeFrom(d)
}

// Address returns the strkey "G..." form of this account id.
func (a AccountId) Address() string {
	if a.PublicKey.Ed25519 == nil {
		return ""
	}
	addr, _ := strkey.Encode(strkey.VersionByteAccountID, a.PublicKey.Ed25519[:])
	return addr
}

// MustAddress parses a strkey account address into an AccountId, panicking
// on error. Intended for test fixtures and constant construction, matching
// the helper of the same name relied upon across the wider Stellar Go
// ecosystem.
func MustAddress(address string) AccountId {
	aid, err := AddressToAccountId(address)
	if err != nil {
		panic(err)
	}
	return aid
}

// AddressToAccountId parses a strkey "G..." address into an AccountId.
func AddressToAccountId(address string) (AccountId, error) {
	raw, err := strkey.Decode(strkey.VersionByteAccountID, address)
	if err != nil {
		return AccountId{}, errors.Wrap(err, "invalid account address")
	}
	var key Uint256
	copy(key[:], raw)
	return AccountId{PublicKey: PublicKey{Type: PublicKeyTypePublicKeyTypeEd25519, Ed25519: &key}}, nil
}

// CryptoKeyType discriminates SignerKey/MuxedAccount unions.
type CryptoKeyType int32

const (
	CryptoKeyTypeKeyTypeEd25519      CryptoKeyType = 0
	CryptoKeyTypeKeyTypeMuxedEd25519 CryptoKeyType = 0x100
	CryptoKeyTypeKeyTypePreAuthTx    CryptoKeyType = 1
	CryptoKeyTypeKeyTypeHashX        CryptoKeyType = 2
	CryptoKeyTypeKeyTypeEd25519SignedPayload CryptoKeyType = 3
)

// SignerKeyEd25519SignedPayload is the signed-payload signer variant: an
// Ed25519 key plus an arbitrary payload that must be co-signed.
type SignerKeyEd25519SignedPayload struct {
	Ed25519 Uint256
	Payload []byte
}

func (s SignerKeyEd25519SignedPayload) EncodeTo(e *Encoder) error {
	if err := s.Ed25519.EncodeTo(e); err != nil {
		return err
	}
	return e.EncodeOpaque(s.Payload)
}

func (s *SignerKeyEd25519SignedPayload) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := s.Ed25519.DecodeFrom(d); err != nil {
		return 0, err
	}
	payload, err := d.DecodeOpaque(64)
	if err != nil {
		return 0, err
	}
	s.Payload = payload
	return d.offset - start, nil
}

// SignerKey identifies a potential transaction signer: a plain Ed25519
// public key, a pre-authorized transaction hash, a hash-x preimage, or an
// Ed25519 key bound to a specific payload.
type SignerKey struct {
	Type                 CryptoKeyType
	Ed25519              *Uint256
	PreAuthTx            *Hash
	HashX                *Hash
	Ed25519SignedPayload *SignerKeyEd25519SignedPayload
}

func (s SignerKey) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(s.Type)); err != nil {
		return err
	}
	switch s.Type {
	case CryptoKeyTypeKeyTypeEd25519:
		return s.Ed25519.EncodeTo(e)
	case CryptoKeyTypeKeyTypePreAuthTx:
		return s.PreAuthTx.EncodeTo(e)
	case CryptoKeyTypeKeyTypeHashX:
		return s.HashX.EncodeTo(e)
	case CryptoKeyTypeKeyTypeEd25519SignedPayload:
		return s.Ed25519SignedPayload.EncodeTo(e)
	default:
		return errors.Errorf("unknown signer key type %d", s.Type)
	}
}

func (s *SignerKey) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	s.Type = CryptoKeyType(t)
	switch s.Type {
	case CryptoKeyTypeKeyTypeEd25519:
		var v Uint256
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		s.Ed25519 = &v
	case CryptoKeyTypeKeyTypePreAuthTx:
		var v Hash
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		s.PreAuthTx = &v
	case CryptoKeyTypeKeyTypeHashX:
		var v Hash
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		s.HashX = &v
	case CryptoKeyTypeKeyTypeEd25519SignedPayload:
		var v SignerKeyEd25519SignedPayload
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		s.Ed25519SignedPayload = &v
	default:
		return 0, d.fail(errors.Errorf("unknown signer key type %d", s.Type))
	}
	return d.offset - start, nil
}

// Address returns the strkey form of this signer key: "G..." for a plain
// Ed25519 key, "T..." for a pre-authorized transaction hash, "X..." for a
// hash-x preimage, and "P..." for an Ed25519 key bound to a payload.
func (s SignerKey) Address() string {
	switch s.Type {
	case CryptoKeyTypeKeyTypeEd25519:
		if s.Ed25519 == nil {
			return ""
		}
		addr, _ := strkey.Encode(strkey.VersionByteAccountID, s.Ed25519[:])
		return addr
	case CryptoKeyTypeKeyTypePreAuthTx:
		if s.PreAuthTx == nil {
			return ""
		}
		addr, _ := strkey.Encode(strkey.VersionByteHashTx, s.PreAuthTx[:])
		return addr
	case CryptoKeyTypeKeyTypeHashX:
		if s.HashX == nil {
			return ""
		}
		addr, _ := strkey.Encode(strkey.VersionByteHashX, s.HashX[:])
		return addr
	case CryptoKeyTypeKeyTypeEd25519SignedPayload:
		if s.Ed25519SignedPayload == nil {
			return ""
		}
		p := s.Ed25519SignedPayload
		raw := make([]byte, 36, 36+len(p.Payload)+3)
		copy(raw, p.Ed25519[:])
		binary.BigEndian.PutUint32(raw[32:], uint32(len(p.Payload)))
		raw = append(raw, p.Payload...)
		for len(raw)%4 != 0 {
			raw = append(raw, 0)
		}
		addr, _ := strkey.Encode(strkey.VersionByteSignedPayload, raw)
		return addr
	default:
		return ""
	}
}

// Signer pairs a SignerKey with its weight, as carried in SetOptions.
type Signer struct {
	Key    SignerKey
	Weight Uint32
}

func (s Signer) EncodeTo(e *Encoder) error {
	if err := s.Key.EncodeTo(e); err != nil {
		return err
	}
	return s.Weight.EncodeTo(e)
}

func (s *Signer) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := s.Key.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := s.Weight.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

// MuxedAccount identifies a transaction's source or destination, either a
// plain Ed25519 account or a multiplexed (M...) account carrying an
// additional 64 bit id.
type MuxedAccount struct {
	Type    CryptoKeyType
	Ed25519 *Uint256
	Med25519 *MuxedAccountMed25519
}

type MuxedAccountMed25519 struct {
	Id      Uint64
	Ed25519 Uint256
}

func (m MuxedAccountMed25519) EncodeTo(e *Encoder) error {
	if err := m.Id.EncodeTo(e); err != nil {
		return err
	}
	return m.Ed25519.EncodeTo(e)
}

func (m *MuxedAccountMed25519) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := m.Id.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := m.Ed25519.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

func (m MuxedAccount) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(m.Type)); err != nil {
		return err
	}
	switch m.Type {
	case CryptoKeyTypeKeyTypeEd25519:
		return m.Ed25519.EncodeTo(e)
	case CryptoKeyTypeKeyTypeMuxedEd25519:
		return m.Med25519.EncodeTo(e)
	default:
		return errors.Errorf("unknown muxed account type %d", m.Type)
	}
}

func (m *MuxedAccount) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	m.Type = CryptoKeyType(t)
	switch m.Type {
	case CryptoKeyTypeKeyTypeEd25519:
		var v Uint256
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		m.Ed25519 = &v
	case CryptoKeyTypeKeyTypeMuxedEd25519:
		var v MuxedAccountMed25519
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		m.Med25519 = &v
	default:
		return 0, d.fail(errors.Errorf("unknown muxed account type %d", m.Type))
	}
	return d.offset - start, nil
}

// ToAccountId drops the muxed id (if any) and returns the underlying
// Ed25519 AccountId.
func (m MuxedAccount) ToAccountId() AccountId {
	switch m.Type {
	case CryptoKeyTypeKeyTypeMuxedEd25519:
		return AccountId{PublicKey: PublicKey{Type: PublicKeyTypePublicKeyTypeEd25519, Ed25519: &m.Med25519.Ed25519}}
	default:
		return AccountId{PublicKey: PublicKey{Type: PublicKeyTypePublicKeyTypeEd25519, Ed25519: m.Ed25519}}
	}
}

// MuxedAccountFromAccountId wraps a plain AccountId as a MuxedAccount with
// no multiplexing id.
func MuxedAccountFromAccountId(a AccountId) MuxedAccount {
	return MuxedAccount{Type: CryptoKeyTypeKeyTypeEd25519, Ed25519: a.PublicKey.Ed25519}
}

// Address returns the strkey form of this muxed account: "G..." for a plain
// Ed25519 account, "M..." when it carries a multiplexing id.
func (m MuxedAccount) Address() string {
	switch m.Type {
	case CryptoKeyTypeKeyTypeMuxedEd25519:
		payload := make([]byte, 40)
		copy(payload, m.Med25519.Ed25519[:])
		binary.BigEndian.PutUint64(payload[32:], uint64(m.Med25519.Id))
		addr, _ := strkey.Encode(strkey.VersionByteMuxedAccount, payload)
		return addr
	default:
		return m.ToAccountId().Address()
	}
}

// MuxedAccountFromAddress parses either a "G..." account address or an
// "M..." multiplexed account address into a MuxedAccount.
func MuxedAccountFromAddress(address string) (MuxedAccount, error) {
	if len(address) > 0 && address[0] == 'M' {
		raw, err := strkey.Decode(strkey.VersionByteMuxedAccount, address)
		if err != nil {
			return MuxedAccount{}, errors.Wrap(err, "invalid muxed account address")
		}
		var key Uint256
		copy(key[:], raw[:32])
		id := Uint64(binary.BigEndian.Uint64(raw[32:]))
		return MuxedAccount{Type: CryptoKeyTypeKeyTypeMuxedEd25519, Med25519: &MuxedAccountMed25519{Id: id, Ed25519: key}}, nil
	}
	aid, err := AddressToAccountId(address)
	if err != nil {
		return MuxedAccount{}, err
	}
	return MuxedAccountFromAccountId(aid), nil
}

// Int32/Uint32/Int64/Uint64 give the fixed-width integer types their own
// named XDR marshaling, matching the generated style where every XDR scalar
// is a distinct Go type rather than a bare int32/uint32/int64/uint64.
type (
	Int32  int32
	Uint32 uint32
	Int64  int64
	Uint64 uint64
)

func (v Int32) EncodeTo(e *Encoder) error  { return e.EncodeInt(int32(v)) }
func (v Uint32) EncodeTo(e *Encoder) error { return e.EncodeUint(uint32(v)) }
func (v Int64) EncodeTo(e *Encoder) error  { return e.EncodeHyper(int64(v)) }
func (v Uint64) EncodeTo(e *Encoder) error { return e.EncodeUhyper(uint64(v)) }

func (v *Int32) DecodeFrom(d *Decoder) (int, error) {
	x, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	*v = Int32(x)
	return 4, nil
}
func (v *Uint32) DecodeFrom(d *Decoder) (int, error) {
	x, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	*v = Uint32(x)
	return 4, nil
}
func (v *Int64) DecodeFrom(d *Decoder) (int, error) {
	x, err := d.DecodeHyper()
	if err != nil {
		return 0, err
	}
	*v = Int64(x)
	return 8, nil
}
func (v *Uint64) DecodeFrom(d *Decoder) (int, error) {
	x, err := d.DecodeUhyper()
	if err != nil {
		return 0, err
	}
	*v = Uint64(x)
	return 8, nil
}

// SequenceNumber is a transaction source account's sequence number.
type SequenceNumber Int64

func (v SequenceNumber) EncodeTo(e *Encoder) error { return Int64(v).EncodeTo(e) }
func (v *SequenceNumber) DecodeFrom(d *Decoder) (int, error) {
	return (*Int64)(v).DecodeFrom(d)
}

// TimePoint is a Unix timestamp in seconds.
type TimePoint Uint64

func (v TimePoint) EncodeTo(e *Encoder) error { return Uint64(v).EncodeTo(e) }
func (v *TimePoint) DecodeFrom(d *Decoder) (int, error) {
	return (*Uint64)(v).DecodeFrom(d)
}

// Duration is a span of seconds.
type Duration Uint64

func (v Duration) EncodeTo(e *Encoder) error { return Uint64(v).EncodeTo(e) }
func (v *Duration) DecodeFrom(d *Decoder) (int, error) {
	return (*Uint64)(v).DecodeFrom(d)
}
