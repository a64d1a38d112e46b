// Package keypair wraps Ed25519 key material behind the strkey textual
// encoding. A KeyPair is either a Full keypair (able to sign, constructed
// from a 32 byte seed) or a FromAddress keypair (public key only, unable to
// sign). Equality between keypairs is always by public key; the secret seed,
// if present, is never compared, logged, or cached outside the KeyPair that
// owns it.
package keypair

import (
	"github.com/stellar/go-stellar-sdk/strkey"
	"github.com/stellar/go-stellar-sdk/support/errors"
)

// KeyPair is the capability surface every keypair exposes. FromAddress
// implements everything except Sign; Full implements all of it.
type KeyPair interface {
	Address() string
	Hint() [4]byte
	Verify(input []byte, signature []byte) error
	Sign(input []byte) ([]byte, error)
	CanSign() bool
}

// Backend is the pluggable Ed25519 provider. stellar/go historically hard
// coded golang.org/x/crypto/ed25519; the spec requires this to be a trait
// selected per platform so alternate implementations (HSM-backed, WASM,
// etc.) can be substituted without touching KeyPair.
type Backend interface {
	GenerateSeed() (seed [32]byte, err error)
	PublicFromSeed(seed [32]byte) (public [32]byte, err error)
	Sign(message []byte, seed [32]byte) (signature [64]byte, err error)
	Verify(message []byte, signature [64]byte, public [32]byte) bool
}

// DefaultBackend is the Backend used by constructors in this package
// unless overridden with UseBackend. Swapping it is a process-wide decision,
// matching the "selected at build time" language of the spec.
var DefaultBackend Backend = ed25519Backend{}

// UseBackend replaces DefaultBackend. Intended for platform init code, not
// for per-call overrides.
func UseBackend(b Backend) { DefaultBackend = b }

// FromAddress is a keypair that knows only a public key. It cannot sign.
type FromAddress struct {
	publicKey [32]byte
}

// Full is a keypair that also knows the 32 byte secret seed and can sign.
type Full struct {
	FromAddress
	seed [32]byte
}

// Parse accepts either a "G..." account address or an "S..." secret seed and
// returns the matching KeyPair implementation.
func Parse(addressOrSeed string) (KeyPair, error) {
	if len(addressOrSeed) > 0 && addressOrSeed[0] == 'S' {
		return ParseFull(addressOrSeed)
	}
	return ParseAddress(addressOrSeed)
}

// ParseAddress decodes a strkey account address into a FromAddress keypair.
func ParseAddress(address string) (*FromAddress, error) {
	raw, err := strkey.Decode(strkey.VersionByteAccountID, address)
	if err != nil {
		return nil, errors.Wrap(err, "invalid account address")
	}
	kp := &FromAddress{}
	copy(kp.publicKey[:], raw)
	return kp, nil
}

// ParseFull decodes a strkey secret seed into a Full keypair.
func ParseFull(seed string) (*Full, error) {
	raw, err := strkey.Decode(strkey.VersionByteSeed, seed)
	if err != nil {
		return nil, errors.Wrap(err, "invalid secret seed")
	}
	return FromRawSeed(rawSeed(raw))
}

func rawSeed(b []byte) (seed [32]byte) {
	copy(seed[:], b)
	return
}

// FromRawSeed builds a Full keypair from 32 raw seed bytes, deriving the
// public key via the configured Backend.
func FromRawSeed(seed [32]byte) (*Full, error) {
	pub, err := DefaultBackend.PublicFromSeed(seed)
	if err != nil {
		return nil, errors.Wrap(err, "deriving public key from seed")
	}
	kp := &Full{seed: seed}
	kp.publicKey = pub
	return kp, nil
}

// Random generates a new Full keypair using the backend's CSPRNG.
func Random() (*Full, error) {
	seed, err := DefaultBackend.GenerateSeed()
	if err != nil {
		return nil, errors.Wrap(err, "generating random seed")
	}
	return FromRawSeed(seed)
}

// MustRandom is Random but panics on error; useful in tests.
func MustRandom() *Full {
	kp, err := Random()
	if err != nil {
		panic(err)
	}
	return kp
}

// Address returns the strkey "G..." account address.
func (kp *FromAddress) Address() string {
	addr, err := strkey.Encode(strkey.VersionByteAccountID, kp.publicKey[:])
	if err != nil {
		// publicKey is always exactly 32 bytes, so encoding can never fail.
		panic(err)
	}
	return addr
}

// Hint returns the last 4 bytes of the public key, used as a decorated
// signature hint so verifiers can match a signature to a signer.
func (kp *FromAddress) Hint() (hint [4]byte) {
	copy(hint[:], kp.publicKey[28:])
	return
}

// Raw returns the 32 byte Ed25519 public key.
func (kp *FromAddress) Raw() [32]byte { return kp.publicKey }

// CanSign reports whether this keypair can produce signatures.
func (kp *FromAddress) CanSign() bool { return false }

// Verify checks a signature against this keypair's public key.
func (kp *FromAddress) Verify(input []byte, sig []byte) error {
	if len(sig) != 64 {
		return errors.New("signature length is invalid")
	}
	var s [64]byte
	copy(s[:], sig)
	if !DefaultBackend.Verify(input, s, kp.publicKey) {
		return errors.New("signature verification failed")
	}
	return nil
}

// Sign on a FromAddress always fails: it has no secret key.
func (kp *FromAddress) Sign([]byte) ([]byte, error) {
	return nil, errors.New("cannot sign: keypair does not have a private key")
}

// CanSign reports true: a Full keypair always has a seed.
func (kp *Full) CanSign() bool { return true }

// Seed returns the strkey "S..." secret seed.
func (kp *Full) Seed() string {
	seed, err := strkey.Encode(strkey.VersionByteSeed, kp.seed[:])
	if err != nil {
		panic(err)
	}
	return seed
}

// RawSeed returns the 32 raw seed bytes.
func (kp *Full) RawSeed() [32]byte { return kp.seed }

// Sign produces a detached Ed25519 signature over input, then verifies it
// against its own public key as a sanity check before returning it (spec
// §7: a post-sign verification failure is a Crypto error, never silently
// swallowed).
func (kp *Full) Sign(input []byte) ([]byte, error) {
	sig, err := DefaultBackend.Sign(input, kp.seed)
	if err != nil {
		return nil, errors.Wrap(err, "signing failed")
	}
	if !DefaultBackend.Verify(input, sig, kp.publicKey) {
		return nil, errors.New("signature self-verification failed")
	}
	return sig[:], nil
}

// SignDecorated signs input and wraps the result with this keypair's hint.
func (kp *Full) SignDecorated(input []byte) (DecoratedSignature, error) {
	sig, err := kp.Sign(input)
	if err != nil {
		return DecoratedSignature{}, err
	}
	return DecoratedSignature{Hint: kp.Hint(), Signature: sig}, nil
}

// DecoratedSignature pairs a raw signature with the 4 byte hint of the
// signing key, as carried on the wire inside a TransactionEnvelope.
type DecoratedSignature struct {
	Hint      [4]byte
	Signature []byte
}
