package txnbuild

import (
	"github.com/stellar/go-stellar-sdk/strkey"
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// Signer adds or updates a signer on setOptions, identified by an ed25519
// (G...), pre-auth-tx (T...) or hash-x (X...) address. Signed-payload
// signers are not supported.
type Signer struct {
	Address string
	Weight  uint32
}

func signerKeyFromAddress(address string) (xdr.SignerKey, error) {
	if len(address) == 0 {
		return xdr.SignerKey{}, errors.New("signer address is empty")
	}
	switch address[0] {
	case 'G':
		raw, err := strkey.Decode(strkey.VersionByteAccountID, address)
		if err != nil {
			return xdr.SignerKey{}, errors.Wrap(err, "invalid ed25519 signer key")
		}
		var key xdr.Uint256
		copy(key[:], raw)
		return xdr.SignerKey{Type: xdr.CryptoKeyTypeKeyTypeEd25519, Ed25519: &key}, nil
	case 'T':
		raw, err := strkey.Decode(strkey.VersionByteHashTx, address)
		if err != nil {
			return xdr.SignerKey{}, errors.Wrap(err, "invalid pre-auth-tx signer key")
		}
		var h xdr.Hash
		copy(h[:], raw)
		return xdr.SignerKey{Type: xdr.CryptoKeyTypeKeyTypePreAuthTx, PreAuthTx: &h}, nil
	case 'X':
		raw, err := strkey.Decode(strkey.VersionByteHashX, address)
		if err != nil {
			return xdr.SignerKey{}, errors.Wrap(err, "invalid hashX signer key")
		}
		var h xdr.Hash
		copy(h[:], raw)
		return xdr.SignerKey{Type: xdr.CryptoKeyTypeKeyTypeHashX, HashX: &h}, nil
	default:
		return xdr.SignerKey{}, errors.Errorf("unsupported signer key address %q", address)
	}
}

func (s Signer) toXDR() (xdr.Signer, error) {
	key, err := signerKeyFromAddress(s.Address)
	if err != nil {
		return xdr.Signer{}, err
	}
	return xdr.Signer{Key: key, Weight: xdr.Uint32(s.Weight)}, nil
}
