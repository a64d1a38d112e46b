package keypair

import (
	"crypto/rand"

	"golang.org/x/crypto/ed25519"

	"github.com/stellar/go-stellar-sdk/support/errors"
)

// ed25519Backend is the DefaultBackend: CSPRNG seed generation via
// crypto/rand, signing and verification via golang.org/x/crypto/ed25519,
// matching stellar/go's own choice of dependency for this primitive.
type ed25519Backend struct{}

func (ed25519Backend) GenerateSeed() (seed [32]byte, err error) {
	if _, err = rand.Read(seed[:]); err != nil {
		return seed, errors.Wrap(err, "reading random seed")
	}
	return seed, nil
}

func (ed25519Backend) PublicFromSeed(seed [32]byte) (public [32]byte, err error) {
	reader := ed25519.NewKeyFromSeed(seed[:])
	pub, ok := reader.Public().(ed25519.PublicKey)
	if !ok {
		return public, errors.New("unexpected public key type from ed25519 backend")
	}
	copy(public[:], pub)
	return public, nil
}

func (ed25519Backend) Sign(message []byte, seed [32]byte) (signature [64]byte, err error) {
	priv := ed25519.NewKeyFromSeed(seed[:])
	sig := ed25519.Sign(priv, message)
	copy(signature[:], sig)
	return signature, nil
}

func (ed25519Backend) Verify(message []byte, signature [64]byte, public [32]byte) bool {
	return ed25519.Verify(ed25519.PublicKey(public[:]), message, signature[:])
}
