package xdr

import "github.com/stellar/go-stellar-sdk/support/errors"

type AssetType int32

const (
	AssetTypeAssetTypeNative           AssetType = 0
	AssetTypeAssetTypeCreditAlphanum4  AssetType = 1
	AssetTypeAssetTypeCreditAlphanum12 AssetType = 2
	AssetTypeAssetTypePoolShare        AssetType = 3
)

type AssetCode4 [4]byte
type AssetCode12 [12]byte

func (a AssetCode4) EncodeTo(e *Encoder) error  { return e.EncodeFixedOpaque(a[:]) }
func (a AssetCode12) EncodeTo(e *Encoder) error { return e.EncodeFixedOpaque(a[:]) }

func (a *AssetCode4) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	b, err := d.DecodeFixedOpaque(4)
	if err != nil {
		return 0, err
	}
	copy(a[:], b)
	return d.offset - start, nil
}

func (a *AssetCode12) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	b, err := d.DecodeFixedOpaque(12)
	if err != nil {
		return 0, err
	}
	copy(a[:], b)
	return d.offset - start, nil
}

type AlphaNum4 struct {
	AssetCode AssetCode4
	Issuer    AccountId
}

func (a AlphaNum4) EncodeTo(e *Encoder) error {
	if err := a.AssetCode.EncodeTo(e); err != nil {
		return err
	}
	return a.Issuer.EncodeTo(e)
}

func (a *AlphaNum4) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := a.AssetCode.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := a.Issuer.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

type AlphaNum12 struct {
	AssetCode AssetCode12
	Issuer    AccountId
}

func (a AlphaNum12) EncodeTo(e *Encoder) error {
	if err := a.AssetCode.EncodeTo(e); err != nil {
		return err
	}
	return a.Issuer.EncodeTo(e)
}

func (a *AlphaNum12) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := a.AssetCode.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := a.Issuer.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

// Asset is the native lumen or a credit asset identified by code and
// issuer. Total order (spec.md §4.4): native < alphanum4 < alphanum12,
// within alphanum by code then issuer.
type Asset struct {
	Type       AssetType
	AlphaNum4  *AlphaNum4
	AlphaNum12 *AlphaNum12
}

func NativeAsset() Asset { return Asset{Type: AssetTypeAssetTypeNative} }

// NewCreditAsset builds a credit asset, choosing the alphanum4 or
// alphanum12 variant by code length (spec.md §4.4: 1-4 chars -> alphanum4,
// 5-12 -> alphanum12).
func NewCreditAsset(code, issuer string) (Asset, error) {
	if len(code) < 1 || len(code) > 12 {
		return Asset{}, errors.Errorf("asset code %q must be 1-12 characters", code)
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
			return Asset{}, errors.Errorf("asset code %q must be alphanumeric", code)
		}
	}
	issuerId, err := AddressToAccountId(issuer)
	if err != nil {
		return Asset{}, errors.Wrap(err, "invalid asset issuer")
	}
	if len(code) <= 4 {
		var c AssetCode4
		copy(c[:], code)
		return Asset{Type: AssetTypeAssetTypeCreditAlphanum4, AlphaNum4: &AlphaNum4{AssetCode: c, Issuer: issuerId}}, nil
	}
	var c AssetCode12
	copy(c[:], code)
	return Asset{Type: AssetTypeAssetTypeCreditAlphanum12, AlphaNum12: &AlphaNum12{AssetCode: c, Issuer: issuerId}}, nil
}

func (a Asset) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(a.Type)); err != nil {
		return err
	}
	switch a.Type {
	case AssetTypeAssetTypeNative:
		return nil
	case AssetTypeAssetTypeCreditAlphanum4:
		return a.AlphaNum4.EncodeTo(e)
	case AssetTypeAssetTypeCreditAlphanum12:
		return a.AlphaNum12.EncodeTo(e)
	default:
		return errors.Errorf("unsupported asset type %d", a.Type)
	}
}

func (a *Asset) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	a.Type = AssetType(t)
	switch a.Type {
	case AssetTypeAssetTypeNative:
	case AssetTypeAssetTypeCreditAlphanum4:
		var v AlphaNum4
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		a.AlphaNum4 = &v
	case AssetTypeAssetTypeCreditAlphanum12:
		var v AlphaNum12
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		a.AlphaNum12 = &v
	default:
		return 0, d.fail(errors.Errorf("unsupported asset type %d", a.Type))
	}
	return d.offset - start, nil
}

// Compare implements the spec.md §4.4 total order: <0 if a sorts before b,
// 0 if equal, >0 otherwise.
func (a Asset) Compare(b Asset) int {
	if a.Type != b.Type {
		return int(a.Type) - int(b.Type)
	}
	switch a.Type {
	case AssetTypeAssetTypeNative:
		return 0
	case AssetTypeAssetTypeCreditAlphanum4:
		if c := compareBytes(a.AlphaNum4.AssetCode[:], b.AlphaNum4.AssetCode[:]); c != 0 {
			return c
		}
		return compareBytes(a.AlphaNum4.Issuer.PublicKey.Ed25519[:], b.AlphaNum4.Issuer.PublicKey.Ed25519[:])
	case AssetTypeAssetTypeCreditAlphanum12:
		if c := compareBytes(a.AlphaNum12.AssetCode[:], b.AlphaNum12.AssetCode[:]); c != 0 {
			return c
		}
		return compareBytes(a.AlphaNum12.Issuer.PublicKey.Ed25519[:], b.AlphaNum12.Issuer.PublicKey.Ed25519[:])
	}
	return 0
}

func compareBytes(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return len(a) - len(b)
}

// Price is a rational price numerator/denominator, as used by offers.
type Price struct {
	N Int32
	D Int32
}

func (p Price) EncodeTo(e *Encoder) error {
	if err := p.N.EncodeTo(e); err != nil {
		return err
	}
	return p.D.EncodeTo(e)
}

func (p *Price) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := p.N.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := p.D.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}
