package txnbuild

// Account is anything that can serve as a transaction's source: it knows its
// own address and current ledger sequence number. stellar/go fetches this
// from Horizon; this SDK's core never performs that fetch itself (spec.md
// §1: Horizon REST is an external collaborator), so callers supply an
// Account already populated with a fresh sequence number.
type Account interface {
	GetAccountID() string
	GetSequenceNumber() (int64, error)
	IncrementSequenceNumber() (int64, error)
}

// SimpleAccount is the minimal Account implementation: an address plus a
// sequence number the caller is responsible for keeping current.
type SimpleAccount struct {
	AccountID string
	Sequence  int64
}

func NewSimpleAccount(accountID string, sequence int64) SimpleAccount {
	return SimpleAccount{AccountID: accountID, Sequence: sequence}
}

func (a SimpleAccount) GetAccountID() string { return a.AccountID }

func (a SimpleAccount) GetSequenceNumber() (int64, error) { return a.Sequence, nil }

// IncrementSequenceNumber bumps the account's sequence number by one and
// returns the new value.
func (a *SimpleAccount) IncrementSequenceNumber() (int64, error) {
	a.Sequence++
	return a.Sequence, nil
}
