package xdr

import "github.com/stellar/go-stellar-sdk/support/errors"

// Liabilities tracks an account or trustline's outstanding buying/selling
// offer liabilities, carried in the v1 extensions below.
type Liabilities struct {
	Buying  Int64
	Selling Int64
}

func (l Liabilities) EncodeTo(e *Encoder) error {
	if err := l.Buying.EncodeTo(e); err != nil {
		return err
	}
	return l.Selling.EncodeTo(e)
}

func (l *Liabilities) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := l.Buying.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := l.Selling.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

// Thresholds packs an account's four signing-weight thresholds
// (master weight, low, medium, high) into one fixed opaque field.
type Thresholds [4]byte

func (t Thresholds) EncodeTo(e *Encoder) error { return e.EncodeFixedOpaque(t[:]) }
func (t *Thresholds) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	b, err := d.DecodeFixedOpaque(4)
	if err != nil {
		return 0, err
	}
	copy(t[:], b)
	return d.offset - start, nil
}

// AccountEntryExtensionV3 adds the ledger/time at which the account's
// sequence number was last bumped.
type AccountEntryExtensionV3 struct {
	Ext      ExtensionPoint
	SeqLedger Uint32
	SeqTime   TimePoint
}

func (a AccountEntryExtensionV3) EncodeTo(e *Encoder) error {
	if err := a.Ext.EncodeTo(e); err != nil {
		return err
	}
	if err := a.SeqLedger.EncodeTo(e); err != nil {
		return err
	}
	return a.SeqTime.EncodeTo(e)
}

func (a *AccountEntryExtensionV3) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := a.Ext.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := a.SeqLedger.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := a.SeqTime.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

// AccountEntryExtensionV2 tracks sponsorship counts for an account's
// signers.
type AccountEntryExtensionV2 struct {
	NumSponsored         Uint32
	NumSponsoring        Uint32
	SignerSponsoringIDs  []*AccountId
	V                    int32
	V3                   *AccountEntryExtensionV3
}

func (a AccountEntryExtensionV2) EncodeTo(e *Encoder) error {
	if err := a.NumSponsored.EncodeTo(e); err != nil {
		return err
	}
	if err := a.NumSponsoring.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeUint(uint32(len(a.SignerSponsoringIDs))); err != nil {
		return err
	}
	for _, s := range a.SignerSponsoringIDs {
		if err := e.EncodeBool(s != nil); err != nil {
			return err
		}
		if s != nil {
			if err := s.EncodeTo(e); err != nil {
				return err
			}
		}
	}
	if err := e.EncodeInt(a.V); err != nil {
		return err
	}
	if a.V == 3 {
		return a.V3.EncodeTo(e)
	}
	return nil
}

func (a *AccountEntryExtensionV2) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := a.NumSponsored.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := a.NumSponsoring.DecodeFrom(d); err != nil {
		return 0, err
	}
	n, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	a.SignerSponsoringIDs = make([]*AccountId, n)
	for i := range a.SignerSponsoringIDs {
		present, err := d.DecodeBool()
		if err != nil {
			return 0, err
		}
		if present {
			var v AccountId
			if _, err := v.DecodeFrom(d); err != nil {
				return 0, err
			}
			a.SignerSponsoringIDs[i] = &v
		}
	}
	v, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	a.V = v
	switch v {
	case 0:
	case 3:
		var v3 AccountEntryExtensionV3
		if _, err := v3.DecodeFrom(d); err != nil {
			return 0, err
		}
		a.V3 = &v3
	default:
		return 0, d.fail(errors.Errorf("unsupported account entry extension v2 sub-extension %d", v))
	}
	return d.offset - start, nil
}

// AccountEntryExtensionV1 carries an account's liability totals.
type AccountEntryExtensionV1 struct {
	Liabilities Liabilities
	V           int32
	V2          *AccountEntryExtensionV2
}

func (a AccountEntryExtensionV1) EncodeTo(e *Encoder) error {
	if err := a.Liabilities.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeInt(a.V); err != nil {
		return err
	}
	if a.V == 2 {
		return a.V2.EncodeTo(e)
	}
	return nil
}

func (a *AccountEntryExtensionV1) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := a.Liabilities.DecodeFrom(d); err != nil {
		return 0, err
	}
	v, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	a.V = v
	switch v {
	case 0:
	case 2:
		var v2 AccountEntryExtensionV2
		if _, err := v2.DecodeFrom(d); err != nil {
			return 0, err
		}
		a.V2 = &v2
	default:
		return 0, d.fail(errors.Errorf("unsupported account entry extension v1 sub-extension %d", v))
	}
	return d.offset - start, nil
}

// AccountEntry is a classic Stellar account: its balance, sequence
// number, signers and thresholds.
type AccountEntry struct {
	AccountId      AccountId
	Balance        Int64
	SeqNum         SequenceNumber
	NumSubEntries  Uint32
	InflationDest  *AccountId
	Flags          Uint32
	HomeDomain     string
	Thresholds     Thresholds
	Signers        []Signer
	V              int32
	V1             *AccountEntryExtensionV1
}

func (a AccountEntry) EncodeTo(e *Encoder) error {
	if err := a.AccountId.EncodeTo(e); err != nil {
		return err
	}
	if err := a.Balance.EncodeTo(e); err != nil {
		return err
	}
	if err := a.SeqNum.EncodeTo(e); err != nil {
		return err
	}
	if err := a.NumSubEntries.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeBool(a.InflationDest != nil); err != nil {
		return err
	}
	if a.InflationDest != nil {
		if err := a.InflationDest.EncodeTo(e); err != nil {
			return err
		}
	}
	if err := e.EncodeUint(a.Flags); err != nil {
		return err
	}
	if err := e.EncodeString(a.HomeDomain); err != nil {
		return err
	}
	if err := a.Thresholds.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeUint(uint32(len(a.Signers))); err != nil {
		return err
	}
	for _, s := range a.Signers {
		if err := s.EncodeTo(e); err != nil {
			return err
		}
	}
	if err := e.EncodeInt(a.V); err != nil {
		return err
	}
	if a.V == 1 {
		return a.V1.EncodeTo(e)
	}
	return nil
}

func (a *AccountEntry) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := a.AccountId.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := a.Balance.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := a.SeqNum.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := a.NumSubEntries.DecodeFrom(d); err != nil {
		return 0, err
	}
	present, err := d.DecodeBool()
	if err != nil {
		return 0, err
	}
	if present {
		var v AccountId
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		a.InflationDest = &v
	}
	flags, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	a.Flags = flags
	home, err := d.DecodeString(32)
	if err != nil {
		return 0, err
	}
	a.HomeDomain = home
	if _, err := a.Thresholds.DecodeFrom(d); err != nil {
		return 0, err
	}
	n, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	a.Signers = make([]Signer, n)
	for i := range a.Signers {
		if _, err := a.Signers[i].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	v, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	a.V = v
	switch v {
	case 0:
	case 1:
		var v1 AccountEntryExtensionV1
		if _, err := v1.DecodeFrom(d); err != nil {
			return 0, err
		}
		a.V1 = &v1
	default:
		return 0, d.fail(errors.Errorf("unsupported account entry extension %d", v))
	}
	return d.offset - start, nil
}

// TrustLineAsset is like Asset but also covers the pool-share form a
// trustline can hold.
type TrustLineAsset struct {
	Type            AssetType
	AlphaNum4       *AlphaNum4
	AlphaNum12      *AlphaNum12
	LiquidityPoolId *Hash
}

func (t TrustLineAsset) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(t.Type)); err != nil {
		return err
	}
	switch t.Type {
	case AssetTypeAssetTypeNative:
		return nil
	case AssetTypeAssetTypeCreditAlphanum4:
		return t.AlphaNum4.EncodeTo(e)
	case AssetTypeAssetTypeCreditAlphanum12:
		return t.AlphaNum12.EncodeTo(e)
	case AssetTypeAssetTypePoolShare:
		return t.LiquidityPoolId.EncodeTo(e)
	default:
		return errors.Errorf("unsupported trustline asset type %d", t.Type)
	}
}

func (t *TrustLineAsset) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	v, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	t.Type = AssetType(v)
	switch t.Type {
	case AssetTypeAssetTypeNative:
	case AssetTypeAssetTypeCreditAlphanum4:
		var a AlphaNum4
		if _, err := a.DecodeFrom(d); err != nil {
			return 0, err
		}
		t.AlphaNum4 = &a
	case AssetTypeAssetTypeCreditAlphanum12:
		var a AlphaNum12
		if _, err := a.DecodeFrom(d); err != nil {
			return 0, err
		}
		t.AlphaNum12 = &a
	case AssetTypeAssetTypePoolShare:
		var h Hash
		if _, err := h.DecodeFrom(d); err != nil {
			return 0, err
		}
		t.LiquidityPoolId = &h
	default:
		return 0, d.fail(errors.Errorf("unsupported trustline asset type %d", t.Type))
	}
	return d.offset - start, nil
}

// TrustLineEntryExtensionV2 tracks how many liquidity pools use a
// trustline's pool-share asset.
type TrustLineEntryExtensionV2 struct {
	LiquidityPoolUseCount int32
}

func (t TrustLineEntryExtensionV2) EncodeTo(e *Encoder) error { return e.EncodeInt(t.LiquidityPoolUseCount) }
func (t *TrustLineEntryExtensionV2) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	v, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	t.LiquidityPoolUseCount = v
	return d.offset - start, nil
}

type TrustLineEntryV1 struct {
	Liabilities Liabilities
	V           int32
	V2          *TrustLineEntryExtensionV2
}

func (t TrustLineEntryV1) EncodeTo(e *Encoder) error {
	if err := t.Liabilities.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeInt(t.V); err != nil {
		return err
	}
	if t.V == 2 {
		return t.V2.EncodeTo(e)
	}
	return nil
}

func (t *TrustLineEntryV1) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := t.Liabilities.DecodeFrom(d); err != nil {
		return 0, err
	}
	v, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	t.V = v
	switch v {
	case 0:
	case 2:
		var v2 TrustLineEntryExtensionV2
		if _, err := v2.DecodeFrom(d); err != nil {
			return 0, err
		}
		t.V2 = &v2
	default:
		return 0, d.fail(errors.Errorf("unsupported trustline entry extension v1 sub-extension %d", v))
	}
	return d.offset - start, nil
}

// TrustLineEntry is a classic Stellar trustline.
type TrustLineEntry struct {
	AccountId AccountId
	Asset     TrustLineAsset
	Balance   Int64
	Limit     Int64
	Flags     Uint32
	V         int32
	V1        *TrustLineEntryV1
}

func (t TrustLineEntry) EncodeTo(e *Encoder) error {
	if err := t.AccountId.EncodeTo(e); err != nil {
		return err
	}
	if err := t.Asset.EncodeTo(e); err != nil {
		return err
	}
	if err := t.Balance.EncodeTo(e); err != nil {
		return err
	}
	if err := t.Limit.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeUint(uint32(t.Flags)); err != nil {
		return err
	}
	if err := e.EncodeInt(t.V); err != nil {
		return err
	}
	if t.V == 1 {
		return t.V1.EncodeTo(e)
	}
	return nil
}

func (t *TrustLineEntry) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := t.AccountId.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := t.Asset.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := t.Balance.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := t.Limit.DecodeFrom(d); err != nil {
		return 0, err
	}
	flags, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	t.Flags = Uint32(flags)
	v, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	t.V = v
	switch v {
	case 0:
	case 1:
		var v1 TrustLineEntryV1
		if _, err := v1.DecodeFrom(d); err != nil {
			return 0, err
		}
		t.V1 = &v1
	default:
		return 0, d.fail(errors.Errorf("unsupported trustline entry extension %d", v))
	}
	return d.offset - start, nil
}

// OfferEntry is a classic DEX offer.
type OfferEntry struct {
	SellerId AccountId
	OfferId  Int64
	Selling  Asset
	Buying   Asset
	Amount   Int64
	Price    Price
	Flags    Uint32
}

func (o OfferEntry) EncodeTo(e *Encoder) error {
	if err := o.SellerId.EncodeTo(e); err != nil {
		return err
	}
	if err := o.OfferId.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Selling.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Buying.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Amount.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Price.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeUint(uint32(o.Flags)); err != nil {
		return err
	}
	return e.EncodeInt(0)
}

func (o *OfferEntry) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := o.SellerId.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.OfferId.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.Selling.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.Buying.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.Amount.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.Price.DecodeFrom(d); err != nil {
		return 0, err
	}
	flags, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	o.Flags = Uint32(flags)
	ext, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	if ext != 0 {
		return 0, d.fail(errors.Errorf("unsupported offer entry extension %d", ext))
	}
	return d.offset - start, nil
}

// DataEntry is a classic ManageData key/value pair.
type DataEntry struct {
	AccountId AccountId
	DataName  string
	DataValue []byte
}

func (e2 DataEntry) EncodeTo(e *Encoder) error {
	if err := e2.AccountId.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeString(e2.DataName); err != nil {
		return err
	}
	if err := e.EncodeOpaque(e2.DataValue); err != nil {
		return err
	}
	return e.EncodeInt(0)
}

func (e2 *DataEntry) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := e2.AccountId.DecodeFrom(d); err != nil {
		return 0, err
	}
	name, err := d.DecodeString(64)
	if err != nil {
		return 0, err
	}
	e2.DataName = name
	val, err := d.DecodeOpaque(64)
	if err != nil {
		return 0, err
	}
	e2.DataValue = val
	ext, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	if ext != 0 {
		return 0, d.fail(errors.Errorf("unsupported data entry extension %d", ext))
	}
	return d.offset - start, nil
}

// ClaimableBalanceEntryExtensionV1 carries claimable-balance-specific
// flags (presently just clawback-enabled).
type ClaimableBalanceEntryExtensionV1 struct {
	Flags Uint32
}

func (c ClaimableBalanceEntryExtensionV1) EncodeTo(e *Encoder) error { return e.EncodeUint(uint32(c.Flags)) }
func (c *ClaimableBalanceEntryExtensionV1) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	v, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	c.Flags = Uint32(v)
	return d.offset - start, nil
}

// ClaimableBalanceEntry is a pending, claimable transfer of an asset.
type ClaimableBalanceEntry struct {
	BalanceId ClaimableBalanceId
	Claimants []Claimant
	Asset     Asset
	Amount    Int64
	V         int32
	V1        *ClaimableBalanceEntryExtensionV1
}

func (c ClaimableBalanceEntry) EncodeTo(e *Encoder) error {
	if err := c.BalanceId.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeUint(uint32(len(c.Claimants))); err != nil {
		return err
	}
	for _, cl := range c.Claimants {
		if err := cl.EncodeTo(e); err != nil {
			return err
		}
	}
	if err := c.Asset.EncodeTo(e); err != nil {
		return err
	}
	if err := c.Amount.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeInt(c.V); err != nil {
		return err
	}
	if c.V == 1 {
		return c.V1.EncodeTo(e)
	}
	return nil
}

func (c *ClaimableBalanceEntry) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := c.BalanceId.DecodeFrom(d); err != nil {
		return 0, err
	}
	n, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	c.Claimants = make([]Claimant, n)
	for i := range c.Claimants {
		if _, err := c.Claimants[i].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	if _, err := c.Asset.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := c.Amount.DecodeFrom(d); err != nil {
		return 0, err
	}
	v, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	c.V = v
	switch v {
	case 0:
	case 1:
		var v1 ClaimableBalanceEntryExtensionV1
		if _, err := v1.DecodeFrom(d); err != nil {
			return 0, err
		}
		c.V1 = &v1
	default:
		return 0, d.fail(errors.Errorf("unsupported claimable balance entry extension %d", v))
	}
	return d.offset - start, nil
}

// LiquidityPoolConstantProductParameters describes a constant-product
// pool's two assets and trading fee.
type LiquidityPoolConstantProductParameters struct {
	AssetA Asset
	AssetB Asset
	Fee    int32
}

func (l LiquidityPoolConstantProductParameters) EncodeTo(e *Encoder) error {
	if err := l.AssetA.EncodeTo(e); err != nil {
		return err
	}
	if err := l.AssetB.EncodeTo(e); err != nil {
		return err
	}
	return e.EncodeInt(l.Fee)
}

func (l *LiquidityPoolConstantProductParameters) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := l.AssetA.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := l.AssetB.DecodeFrom(d); err != nil {
		return 0, err
	}
	fee, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	l.Fee = fee
	return d.offset - start, nil
}

// LiquidityPoolType discriminates pool pricing models; constant-product
// is the only kind the network presently supports.
type LiquidityPoolType int32

const LiquidityPoolTypeLiquidityPoolConstantProduct LiquidityPoolType = 0

// LiquidityPoolEntry is a classic automated-market-maker pool.
type LiquidityPoolEntry struct {
	LiquidityPoolId          Hash
	Type                     LiquidityPoolType
	Params                   LiquidityPoolConstantProductParameters
	ReserveA                 Int64
	ReserveB                 Int64
	TotalPoolShares          Int64
	PoolSharesTrustLineCount Int64
}

func (l LiquidityPoolEntry) EncodeTo(e *Encoder) error {
	if err := l.LiquidityPoolId.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeInt(int32(l.Type)); err != nil {
		return err
	}
	if l.Type != LiquidityPoolTypeLiquidityPoolConstantProduct {
		return errors.Errorf("unsupported liquidity pool type %d", l.Type)
	}
	for _, f := range []Encodable{l.Params, l.ReserveA, l.ReserveB, l.TotalPoolShares, l.PoolSharesTrustLineCount} {
		if err := f.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (l *LiquidityPoolEntry) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := l.LiquidityPoolId.DecodeFrom(d); err != nil {
		return 0, err
	}
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	l.Type = LiquidityPoolType(t)
	if l.Type != LiquidityPoolTypeLiquidityPoolConstantProduct {
		return 0, d.fail(errors.Errorf("unsupported liquidity pool type %d", l.Type))
	}
	for _, f := range []Decodable{&l.Params, &l.ReserveA, &l.ReserveB, &l.TotalPoolShares, &l.PoolSharesTrustLineCount} {
		if _, err := f.DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	return d.offset - start, nil
}

// ContractDataEntry is a single key/value slot of contract storage.
type ContractDataEntry struct {
	Ext        ExtensionPoint
	Contract   ScAddress
	Key        ScVal
	Durability ContractDataDurability
	Val        ScVal
}

func (c ContractDataEntry) EncodeTo(e *Encoder) error {
	if err := c.Ext.EncodeTo(e); err != nil {
		return err
	}
	if err := c.Contract.EncodeTo(e); err != nil {
		return err
	}
	if err := c.Key.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeInt(int32(c.Durability)); err != nil {
		return err
	}
	return c.Val.EncodeTo(e)
}

func (c *ContractDataEntry) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := c.Ext.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := c.Contract.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := c.Key.DecodeFrom(d); err != nil {
		return 0, err
	}
	dur, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	c.Durability = ContractDataDurability(dur)
	if _, err := c.Val.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

// ContractCodeEntry holds one deployed contract's WASM bytecode.
type ContractCodeEntry struct {
	Ext  ExtensionPoint
	Hash Hash
	Code []byte
}

func (c ContractCodeEntry) EncodeTo(e *Encoder) error {
	if err := c.Ext.EncodeTo(e); err != nil {
		return err
	}
	if err := c.Hash.EncodeTo(e); err != nil {
		return err
	}
	return e.EncodeOpaque(c.Code)
}

func (c *ContractCodeEntry) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := c.Ext.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := c.Hash.DecodeFrom(d); err != nil {
		return 0, err
	}
	code, err := d.DecodeOpaque(0)
	if err != nil {
		return 0, err
	}
	c.Code = code
	return d.offset - start, nil
}

// TtlEntry tracks the ledger sequence at which an archivable entry's TTL
// expires.
type TtlEntry struct {
	KeyHash            Hash
	LiveUntilLedgerSeq Uint32
}

func (t TtlEntry) EncodeTo(e *Encoder) error {
	if err := t.KeyHash.EncodeTo(e); err != nil {
		return err
	}
	return t.LiveUntilLedgerSeq.EncodeTo(e)
}

func (t *TtlEntry) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := t.KeyHash.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := t.LiveUntilLedgerSeq.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

// LedgerEntryData is the union of every entry kind this SDK can parse out
// of a transaction's ledger changes. ConfigSetting entries (network-wide
// parameters, never present in a user transaction's own changes) are
// deliberately unsupported.
type LedgerEntryData struct {
	Type            LedgerEntryType
	Account         *AccountEntry
	TrustLine       *TrustLineEntry
	Offer           *OfferEntry
	Data            *DataEntry
	ClaimableBalance *ClaimableBalanceEntry
	LiquidityPool   *LiquidityPoolEntry
	ContractData    *ContractDataEntry
	ContractCode    *ContractCodeEntry
	Ttl             *TtlEntry
}

func (l LedgerEntryData) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(l.Type)); err != nil {
		return err
	}
	switch l.Type {
	case LedgerEntryTypeAccount:
		return l.Account.EncodeTo(e)
	case LedgerEntryTypeTrustline:
		return l.TrustLine.EncodeTo(e)
	case LedgerEntryTypeOffer:
		return l.Offer.EncodeTo(e)
	case LedgerEntryTypeData:
		return l.Data.EncodeTo(e)
	case LedgerEntryTypeClaimableBalance:
		return l.ClaimableBalance.EncodeTo(e)
	case LedgerEntryTypeLiquidityPool:
		return l.LiquidityPool.EncodeTo(e)
	case LedgerEntryTypeContractData:
		return l.ContractData.EncodeTo(e)
	case LedgerEntryTypeContractCode:
		return l.ContractCode.EncodeTo(e)
	case LedgerEntryTypeTtl:
		return l.Ttl.EncodeTo(e)
	default:
		return errors.Errorf("unsupported ledger entry type %d", l.Type)
	}
}

func (l *LedgerEntryData) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	l.Type = LedgerEntryType(t)
	switch l.Type {
	case LedgerEntryTypeAccount:
		var v AccountEntry
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		l.Account = &v
	case LedgerEntryTypeTrustline:
		var v TrustLineEntry
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		l.TrustLine = &v
	case LedgerEntryTypeOffer:
		var v OfferEntry
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		l.Offer = &v
	case LedgerEntryTypeData:
		var v DataEntry
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		l.Data = &v
	case LedgerEntryTypeClaimableBalance:
		var v ClaimableBalanceEntry
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		l.ClaimableBalance = &v
	case LedgerEntryTypeLiquidityPool:
		var v LiquidityPoolEntry
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		l.LiquidityPool = &v
	case LedgerEntryTypeContractData:
		var v ContractDataEntry
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		l.ContractData = &v
	case LedgerEntryTypeContractCode:
		var v ContractCodeEntry
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		l.ContractCode = &v
	case LedgerEntryTypeTtl:
		var v TtlEntry
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		l.Ttl = &v
	default:
		return 0, d.fail(errors.Errorf("unsupported ledger entry type %d", l.Type))
	}
	return d.offset - start, nil
}

// LedgerEntryExtensionV1 records the account sponsoring an entry's
// reserve, if any.
type LedgerEntryExtensionV1 struct {
	SponsoringId *AccountId
}

func (l LedgerEntryExtensionV1) EncodeTo(e *Encoder) error {
	if err := e.EncodeBool(l.SponsoringId != nil); err != nil {
		return err
	}
	if l.SponsoringId != nil {
		if err := l.SponsoringId.EncodeTo(e); err != nil {
			return err
		}
	}
	return e.EncodeInt(0)
}

func (l *LedgerEntryExtensionV1) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	present, err := d.DecodeBool()
	if err != nil {
		return 0, err
	}
	if present {
		var v AccountId
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		l.SponsoringId = &v
	}
	ext, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	if ext != 0 {
		return 0, d.fail(errors.Errorf("unsupported ledger entry extension v1 sub-extension %d", ext))
	}
	return d.offset - start, nil
}

// LedgerEntry is one ledger object as of a particular ledger: its data
// plus the last ledger it was modified in and an optional sponsorship
// extension.
type LedgerEntry struct {
	LastModifiedLedgerSeq Uint32
	Data                  LedgerEntryData
	V                     int32
	V1                    *LedgerEntryExtensionV1
}

func (l LedgerEntry) EncodeTo(e *Encoder) error {
	if err := l.LastModifiedLedgerSeq.EncodeTo(e); err != nil {
		return err
	}
	if err := l.Data.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeInt(l.V); err != nil {
		return err
	}
	if l.V == 1 {
		return l.V1.EncodeTo(e)
	}
	return nil
}

func (l *LedgerEntry) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := l.LastModifiedLedgerSeq.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := l.Data.DecodeFrom(d); err != nil {
		return 0, err
	}
	v, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	l.V = v
	switch v {
	case 0:
	case 1:
		var v1 LedgerEntryExtensionV1
		if _, err := v1.DecodeFrom(d); err != nil {
			return 0, err
		}
		l.V1 = &v1
	default:
		return 0, d.fail(errors.Errorf("unsupported ledger entry extension %d", v))
	}
	return d.offset - start, nil
}

// LedgerEntryChangeType discriminates one ledger-entry mutation recorded
// in a transaction's meta.
type LedgerEntryChangeType int32

const (
	LedgerEntryChangeTypeLedgerEntryState   LedgerEntryChangeType = 0
	LedgerEntryChangeTypeLedgerEntryUpdated LedgerEntryChangeType = 1
	LedgerEntryChangeTypeLedgerEntryRemoved LedgerEntryChangeType = 2
	LedgerEntryChangeTypeLedgerEntryCreated LedgerEntryChangeType = 3
)

// LedgerEntryChange is one mutation: the prior state, an update, a
// removal (identified by key), or a creation.
type LedgerEntryChange struct {
	Type    LedgerEntryChangeType
	State   *LedgerEntry
	Updated *LedgerEntry
	Removed *LedgerKey
	Created *LedgerEntry
}

func (c LedgerEntryChange) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(c.Type)); err != nil {
		return err
	}
	switch c.Type {
	case LedgerEntryChangeTypeLedgerEntryState:
		return c.State.EncodeTo(e)
	case LedgerEntryChangeTypeLedgerEntryUpdated:
		return c.Updated.EncodeTo(e)
	case LedgerEntryChangeTypeLedgerEntryRemoved:
		return c.Removed.EncodeTo(e)
	case LedgerEntryChangeTypeLedgerEntryCreated:
		return c.Created.EncodeTo(e)
	default:
		return errors.Errorf("unsupported ledger entry change type %d", c.Type)
	}
}

func (c *LedgerEntryChange) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	c.Type = LedgerEntryChangeType(t)
	switch c.Type {
	case LedgerEntryChangeTypeLedgerEntryState:
		var v LedgerEntry
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		c.State = &v
	case LedgerEntryChangeTypeLedgerEntryUpdated:
		var v LedgerEntry
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		c.Updated = &v
	case LedgerEntryChangeTypeLedgerEntryRemoved:
		var v LedgerKey
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		c.Removed = &v
	case LedgerEntryChangeTypeLedgerEntryCreated:
		var v LedgerEntry
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		c.Created = &v
	default:
		return 0, d.fail(errors.Errorf("unsupported ledger entry change type %d", c.Type))
	}
	return d.offset - start, nil
}

// LedgerEntryChanges is the ordered list of mutations one transaction (or
// one operation within it) made.
type LedgerEntryChanges []LedgerEntryChange

func (c LedgerEntryChanges) EncodeTo(e *Encoder) error {
	if err := e.EncodeUint(uint32(len(c))); err != nil {
		return err
	}
	for _, change := range c {
		if err := change.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (c *LedgerEntryChanges) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	n, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	out := make(LedgerEntryChanges, n)
	for i := range out {
		if _, err := out[i].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	*c = out
	return d.offset - start, nil
}
