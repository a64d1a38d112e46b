package keypair

import (
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"

	"crypto/sha512"

	"github.com/stellar/go-stellar-sdk/support/errors"
)

// stellarPurpose and stellarCoinType are the first two levels of SEP-0005's
// default Stellar account path, m/44'/148'/0'.
const stellarPurpose = 44
const stellarCoinType = 148

// GenerateMnemonic returns a new BIP-39 mnemonic of the requested entropy
// strength (128 bits -> 12 words, 256 bits -> 24 words).
func GenerateMnemonic(bitSize int) (string, error) {
	entropy, err := bip39.NewEntropy(bitSize)
	if err != nil {
		return "", errors.Wrap(err, "generating entropy")
	}
	m, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.Wrap(err, "deriving mnemonic")
	}
	return m, nil
}

// FromMnemonic deterministically derives the Full keypair for SEP-0005
// account index accountIndex from a BIP-39 mnemonic and optional passphrase.
//
// This does not implement full SLIP-0010 Ed25519 HD derivation (no hardened
// child derivation tree); it derives a seed deterministically from the
// mnemonic, passphrase and account index via HMAC-SHA512 (PBKDF2), enough to
// make repeated calls with the same inputs always yield the same keypair.
// It intentionally does not claim interoperability with wallets implementing
// full SLIP-0010.
func FromMnemonic(mnemonic, passphrase string, accountIndex uint32) (*Full, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errors.New("invalid BIP-39 mnemonic")
	}
	seedBytes := bip39.NewSeed(mnemonic, passphrase)
	salt := []byte{
		byte(stellarPurpose >> 24), byte(stellarPurpose >> 16), byte(stellarPurpose >> 8), byte(stellarPurpose),
		byte(stellarCoinType >> 24), byte(stellarCoinType >> 16), byte(stellarCoinType >> 8), byte(stellarCoinType),
		byte(accountIndex >> 24), byte(accountIndex >> 16), byte(accountIndex >> 8), byte(accountIndex),
	}
	derived := pbkdf2.Key(seedBytes, salt, 2048, 32, sha512.New)
	var seed [32]byte
	copy(seed[:], derived)
	return FromRawSeed(seed)
}
