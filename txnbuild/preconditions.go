package txnbuild

import (
	"time"

	"github.com/stellar/go-stellar-sdk/xdr"
)

// TimeBounds constrains a transaction's validity window in Unix seconds.
// MaxTime of zero means unbounded.
type TimeBounds struct {
	MinTime int64
	MaxTime int64
}

// NewTimeout returns a TimeBounds starting now with the given number of
// seconds until expiry. Matches the convention set by the single example
// the pack provides (txnbuild.NewInfiniteTimeout) of building
// TimeBounds through a named constructor rather than a literal.
func NewTimeout(seconds int64) TimeBounds {
	return TimeBounds{MinTime: 0, MaxTime: time.Now().UTC().Unix() + seconds}
}

// NewInfiniteTimeout returns a TimeBounds with no expiry, the shape
// confirmed by the pack's soroban-rpc test fixtures
// (txnbuild.Preconditions{TimeBounds: txnbuild.NewInfiniteTimeout()}).
func NewInfiniteTimeout() TimeBounds {
	return TimeBounds{MinTime: 0, MaxTime: 0}
}

// LedgerBounds constrains a transaction's validity window by ledger
// sequence number. MaxLedger of zero means unbounded.
type LedgerBounds struct {
	MinLedger uint32
	MaxLedger uint32
}

// Preconditions bundles every precondition a transaction may carry.
// The zero value builds to PRECOND_NONE: no time or ledger bounds.
type Preconditions struct {
	TimeBounds           TimeBounds
	LedgerBounds         *LedgerBounds
	MinSequenceNumber    *int64
	MinSequenceAge       uint64
	MinSequenceLedgerGap uint32
	ExtraSigners         []xdr.SignerKey
}

func (p Preconditions) hasV2Fields() bool {
	return p.LedgerBounds != nil || p.MinSequenceNumber != nil ||
		p.MinSequenceAge != 0 || p.MinSequenceLedgerGap != 0 || len(p.ExtraSigners) > 0
}

// BuildXDR converts Preconditions into the XDR union, choosing the simplest
// variant the content allows: none, time-only, or the full v2 form.
func (p Preconditions) BuildXDR() (xdr.Preconditions, error) {
	tb := xdr.TimeBounds{MinTime: xdr.TimePoint(p.TimeBounds.MinTime), MaxTime: xdr.TimePoint(p.TimeBounds.MaxTime)}
	zero := TimeBounds{}
	if !p.hasV2Fields() {
		if p.TimeBounds == zero {
			return xdr.Preconditions{Type: xdr.PreconditionTypePrecondNone}, nil
		}
		return xdr.Preconditions{Type: xdr.PreconditionTypePrecondTime, TimeBounds: &tb}, nil
	}

	v2 := xdr.PreconditionsV2{
		TimeBounds:      &tb,
		MinSeqAge:       xdr.Duration(p.MinSequenceAge),
		MinSeqLedgerGap: xdr.Uint32(p.MinSequenceLedgerGap),
		ExtraSigners:    p.ExtraSigners,
	}
	if p.LedgerBounds != nil {
		v2.LedgerBounds = &xdr.LedgerBounds{MinLedger: xdr.Uint32(p.LedgerBounds.MinLedger), MaxLedger: xdr.Uint32(p.LedgerBounds.MaxLedger)}
	}
	if p.MinSequenceNumber != nil {
		n := xdr.SequenceNumber(*p.MinSequenceNumber)
		v2.MinSeqNum = &n
	}
	return xdr.Preconditions{Type: xdr.PreconditionTypePrecondV2, V2: &v2}, nil
}
