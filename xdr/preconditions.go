package xdr

import "github.com/stellar/go-stellar-sdk/support/errors"

// TimeBounds restricts the ledger-close-time window a transaction is valid
// in. MaxTime of 0 means unbounded.
type TimeBounds struct {
	MinTime TimePoint
	MaxTime TimePoint
}

func (t TimeBounds) EncodeTo(e *Encoder) error {
	if err := t.MinTime.EncodeTo(e); err != nil {
		return err
	}
	return t.MaxTime.EncodeTo(e)
}

func (t *TimeBounds) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := t.MinTime.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := t.MaxTime.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

// LedgerBounds restricts the ledger sequence range a transaction is valid
// in.
type LedgerBounds struct {
	MinLedger Uint32
	MaxLedger Uint32
}

func (l LedgerBounds) EncodeTo(e *Encoder) error {
	if err := l.MinLedger.EncodeTo(e); err != nil {
		return err
	}
	return l.MaxLedger.EncodeTo(e)
}

func (l *LedgerBounds) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := l.MinLedger.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := l.MaxLedger.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

type PreconditionType int32

const (
	PreconditionTypePrecondNone PreconditionType = 0
	PreconditionTypePrecondTime PreconditionType = 1
	PreconditionTypePrecondV2   PreconditionType = 2
)

// PreconditionsV2 is the modern precondition set: optional ledger bounds, a
// minimum source-account sequence number/age/ledger-gap, and up to 2 extra
// signers that must co-sign regardless of thresholds.
type PreconditionsV2 struct {
	TimeBounds      *TimeBounds
	LedgerBounds    *LedgerBounds
	MinSeqNum       *SequenceNumber
	MinSeqAge       Duration
	MinSeqLedgerGap Uint32
	ExtraSigners    []SignerKey
}

func (p PreconditionsV2) EncodeTo(e *Encoder) error {
	if err := e.EncodeBool(p.TimeBounds != nil); err != nil {
		return err
	}
	if p.TimeBounds != nil {
		if err := p.TimeBounds.EncodeTo(e); err != nil {
			return err
		}
	}
	if err := e.EncodeBool(p.LedgerBounds != nil); err != nil {
		return err
	}
	if p.LedgerBounds != nil {
		if err := p.LedgerBounds.EncodeTo(e); err != nil {
			return err
		}
	}
	if err := e.EncodeBool(p.MinSeqNum != nil); err != nil {
		return err
	}
	if p.MinSeqNum != nil {
		if err := p.MinSeqNum.EncodeTo(e); err != nil {
			return err
		}
	}
	if err := p.MinSeqAge.EncodeTo(e); err != nil {
		return err
	}
	if err := p.MinSeqLedgerGap.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeUint(uint32(len(p.ExtraSigners))); err != nil {
		return err
	}
	for _, s := range p.ExtraSigners {
		if err := s.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (p *PreconditionsV2) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	hasTB, err := d.DecodeBool()
	if err != nil {
		return 0, err
	}
	if hasTB {
		var tb TimeBounds
		if _, err := tb.DecodeFrom(d); err != nil {
			return 0, err
		}
		p.TimeBounds = &tb
	}
	hasLB, err := d.DecodeBool()
	if err != nil {
		return 0, err
	}
	if hasLB {
		var lb LedgerBounds
		if _, err := lb.DecodeFrom(d); err != nil {
			return 0, err
		}
		p.LedgerBounds = &lb
	}
	hasSeq, err := d.DecodeBool()
	if err != nil {
		return 0, err
	}
	if hasSeq {
		var seq SequenceNumber
		if _, err := seq.DecodeFrom(d); err != nil {
			return 0, err
		}
		p.MinSeqNum = &seq
	}
	if _, err := p.MinSeqAge.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := p.MinSeqLedgerGap.DecodeFrom(d); err != nil {
		return 0, err
	}
	n, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	p.ExtraSigners = make([]SignerKey, n)
	for i := range p.ExtraSigners {
		if _, err := p.ExtraSigners[i].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	return d.offset - start, nil
}

// Preconditions is the union of "none", classic time-bounds-only, or the
// richer PreconditionsV2 form.
type Preconditions struct {
	Type       PreconditionType
	TimeBounds *TimeBounds
	V2         *PreconditionsV2
}

func (p Preconditions) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(p.Type)); err != nil {
		return err
	}
	switch p.Type {
	case PreconditionTypePrecondNone:
		return nil
	case PreconditionTypePrecondTime:
		return p.TimeBounds.EncodeTo(e)
	case PreconditionTypePrecondV2:
		return p.V2.EncodeTo(e)
	default:
		return errors.Errorf("unsupported precondition type %d", p.Type)
	}
}

func (p *Preconditions) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	p.Type = PreconditionType(t)
	switch p.Type {
	case PreconditionTypePrecondNone:
	case PreconditionTypePrecondTime:
		var tb TimeBounds
		if _, err := tb.DecodeFrom(d); err != nil {
			return 0, err
		}
		p.TimeBounds = &tb
	case PreconditionTypePrecondV2:
		var v PreconditionsV2
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		p.V2 = &v
	default:
		return 0, d.fail(errors.Errorf("unsupported precondition type %d", p.Type))
	}
	return d.offset - start, nil
}
