package txnbuild

import (
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// Memo is the transaction-level annotation attached by TransactionParams.
// A nil Memo is equivalent to MemoNone.
type Memo interface {
	BuildXDR() (xdr.Memo, error)
}

// MemoNone carries no annotation.
type MemoNone struct{}

func (MemoNone) BuildXDR() (xdr.Memo, error) { return xdr.MemoNone(), nil }

// MemoText is a UTF-8 string memo, at most 28 bytes.
type MemoText string

func (m MemoText) BuildXDR() (xdr.Memo, error) {
	if len(m) > 28 {
		return xdr.Memo{}, errors.Errorf("memo text %q exceeds 28 bytes", string(m))
	}
	return xdr.MemoText(string(m)), nil
}

// MemoID is a 64 bit integer memo.
type MemoID uint64

func (m MemoID) BuildXDR() (xdr.Memo, error) { return xdr.MemoID(uint64(m)), nil }

// MemoHash is a 32 byte opaque hash memo.
type MemoHash [32]byte

func (m MemoHash) BuildXDR() (xdr.Memo, error) { return xdr.MemoHash(xdr.Hash(m)), nil }

// MemoReturn is a 32 byte memo conventionally used to reference the hash of
// a transaction this one refunds.
type MemoReturn [32]byte

func (m MemoReturn) BuildXDR() (xdr.Memo, error) { return xdr.MemoReturn(xdr.Hash(m)), nil }

func buildMemoXDR(m Memo) (xdr.Memo, error) {
	if m == nil {
		return xdr.MemoNone(), nil
	}
	return m.BuildXDR()
}
