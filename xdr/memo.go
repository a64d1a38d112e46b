package xdr

import "github.com/stellar/go-stellar-sdk/support/errors"

type MemoType int32

const (
	MemoTypeMemoNone   MemoType = 0
	MemoTypeMemoText   MemoType = 1
	MemoTypeMemoId     MemoType = 2
	MemoTypeMemoHash   MemoType = 3
	MemoTypeMemoReturn MemoType = 4
)

// Memo is the optional per-transaction annotation of spec.md's data model.
type Memo struct {
	Type   MemoType
	Text   *string
	Id     *Uint64
	Hash   *Hash
	Return *Hash
}

func (m Memo) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(m.Type)); err != nil {
		return err
	}
	switch m.Type {
	case MemoTypeMemoNone:
		return nil
	case MemoTypeMemoText:
		return e.EncodeString(*m.Text)
	case MemoTypeMemoId:
		return m.Id.EncodeTo(e)
	case MemoTypeMemoHash:
		return m.Hash.EncodeTo(e)
	case MemoTypeMemoReturn:
		return m.Return.EncodeTo(e)
	default:
		return errors.Errorf("unsupported memo type %d", m.Type)
	}
}

func (m *Memo) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	m.Type = MemoType(t)
	switch m.Type {
	case MemoTypeMemoNone:
	case MemoTypeMemoText:
		s, err := d.DecodeString(28)
		if err != nil {
			return 0, err
		}
		m.Text = &s
	case MemoTypeMemoId:
		var v Uint64
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		m.Id = &v
	case MemoTypeMemoHash:
		var v Hash
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		m.Hash = &v
	case MemoTypeMemoReturn:
		var v Hash
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		m.Return = &v
	default:
		return 0, d.fail(errors.Errorf("unsupported memo type %d", m.Type))
	}
	return d.offset - start, nil
}

func MemoNone() Memo            { return Memo{Type: MemoTypeMemoNone} }
func MemoText(text string) Memo { return Memo{Type: MemoTypeMemoText, Text: &text} }
func MemoID(id uint64) Memo     { v := Uint64(id); return Memo{Type: MemoTypeMemoId, Id: &v} }
func MemoHash(h Hash) Memo      { return Memo{Type: MemoTypeMemoHash, Hash: &h} }
func MemoReturn(h Hash) Memo    { return Memo{Type: MemoTypeMemoReturn, Return: &h} }
