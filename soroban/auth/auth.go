// Package auth signs the address-credentialed branches of a Soroban
// authorization tree, the way the transaction's own envelope signature
// covers source-account-credentialed branches implicitly.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/ed25519"

	"github.com/stellar/go-stellar-sdk/network"
	"github.com/stellar/go-stellar-sdk/soroban/scval"
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// SignatureVerificationError is the Crypto-class error AuthorizeEntry
// raises when a signer's own signature fails to verify against the
// credentials' address, the post-sign sanity check spec.md §7 requires for
// every signing path, not just keypair.Full's internal one (a remote or
// hardware Signer gives no such guarantee on its own).
type SignatureVerificationError struct{ Address string }

func (e *SignatureVerificationError) Error() string {
	return "auth: signature verification failed for " + e.Address
}

// Signer produces a 64-byte ed25519 signature over an arbitrary payload
// and reports the strkey address the signature verifies under. A
// keypair.Full satisfies this with Sign/Address; remote or hardware
// signers can implement it directly without depending on keypair.
type Signer interface {
	Sign(payload []byte) ([]byte, error)
	Address() string
}

// AuthorizeEntry signs entry for the signer's address, replacing its
// signatureExpirationLedger with validUntilLedgerSeq. Entries whose
// credentials are not address-based (source-account-implied) are
// returned unchanged, since the envelope signature already covers them.
func AuthorizeEntry(entry xdr.SorobanAuthorizationEntry, signer Signer, validUntilLedgerSeq uint32, net network.Network) (xdr.SorobanAuthorizationEntry, error) {
	cloned := entry
	if cloned.Credentials.Type != xdr.SorobanCredentialsTypeSorobanCredentialsAddress {
		return cloned, nil
	}

	addrCreds := *cloned.Credentials.Address
	addrCreds.SignatureExpirationLedger = xdr.Uint32(validUntilLedgerSeq)

	addr := addrCreds.Address.Address()
	if addr != signer.Address() {
		return xdr.SorobanAuthorizationEntry{}, errors.Errorf("auth: signer address %s does not match credentials address %s", signer.Address(), addr)
	}

	payload, err := Payload(addrCreds, cloned.RootInvocation, net)
	if err != nil {
		return xdr.SorobanAuthorizationEntry{}, err
	}

	sig, err := signer.Sign(payload)
	if err != nil {
		return xdr.SorobanAuthorizationEntry{}, errors.Wrap(err, "auth: signing failed")
	}
	if len(sig) != 64 {
		return xdr.SorobanAuthorizationEntry{}, errors.Errorf("auth: expected 64-byte signature, got %d", len(sig))
	}

	pubKey, err := publicKeyBytes(signer.Address())
	if err != nil {
		return xdr.SorobanAuthorizationEntry{}, err
	}
	if !ed25519.Verify(ed25519.PublicKey(pubKey), payload, sig) {
		return xdr.SorobanAuthorizationEntry{}, &SignatureVerificationError{Address: addr}
	}

	sigVal, err := signatureScVal(pubKey, sig)
	if err != nil {
		return xdr.SorobanAuthorizationEntry{}, err
	}
	addrCreds.Signature = sigVal

	cloned.Credentials.Address = &addrCreds
	return cloned, nil
}

// Payload computes the SHA-256 digest of the HashIdPreimage a
// SorobanAuthorizationEntry with the given credentials and invocation
// tree must be signed over, on net.
func Payload(creds xdr.SorobanAddressCredentials, invocation xdr.SorobanAuthorizedInvocation, net network.Network) ([]byte, error) {
	netID := net.ID()
	preimage := xdr.HashIdPreimage{
		Type: xdr.EnvelopeTypeEnvelopeTypeSorobanAuthorization,
		SorobanAuthorization: &xdr.HashIdPreimageSorobanAuthorization{
			NetworkId:                 xdr.Hash(netID),
			Nonce:                     creds.Nonce,
			SignatureExpirationLedger: creds.SignatureExpirationLedger,
			Invocation:                invocation,
		},
	}
	raw, err := xdr.Marshal(preimage)
	if err != nil {
		return nil, errors.Wrap(err, "auth: failed to encode authorization preimage")
	}
	sum := sha256.Sum256(raw)
	return sum[:], nil
}

// signatureScVal builds the account-contract signature value:
// Vec[ Map{ "public_key" -> Bytes(32), "signature" -> Bytes(64) } ].
func signatureScVal(pubKey, sig []byte) (xdr.ScVal, error) {
	pubKeyVal := scval.ToBytes(pubKey)
	sigVal := scval.ToBytes(sig)

	pubKeySym, err := scval.ToSymbol("public_key")
	if err != nil {
		return xdr.ScVal{}, err
	}
	sigSym, err := scval.ToSymbol("signature")
	if err != nil {
		return xdr.ScVal{}, err
	}

	mapVal, err := scval.ToMapEntries([]xdr.ScMapEntry{
		{Key: pubKeySym, Val: pubKeyVal},
		{Key: sigSym, Val: sigVal},
	})
	if err != nil {
		return xdr.ScVal{}, err
	}

	return scval.ToVec([]xdr.ScVal{mapVal}), nil
}

func publicKeyBytes(address string) ([]byte, error) {
	addr, err := xdr.AddressToScAddress(address)
	if err != nil {
		return nil, errors.Wrap(err, "auth: invalid signer address")
	}
	if addr.Type != xdr.ScAddressTypeScAddressTypeAccount || addr.AccountId == nil {
		return nil, errors.Errorf("auth: signer address %s is not an account address", address)
	}
	raw := addr.AccountId.PublicKey.Ed25519
	if raw == nil {
		return nil, errors.Errorf("auth: signer address %s is not an ed25519 account", address)
	}
	return raw[:], nil
}

// RandomNonce draws a cryptographically random 64-bit nonce for a new
// authorization entry, as authorizeInvocation requires.
func RandomNonce() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, errors.Wrap(err, "auth: failed to read random nonce")
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}
