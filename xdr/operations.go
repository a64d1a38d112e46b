package xdr

import "github.com/stellar/go-stellar-sdk/support/errors"

// OperationType enumerates every operation the ledger accepts, numbered to
// match the wire protocol rather than declaration order.
type OperationType int32

const (
	OperationTypeCreateAccount                  OperationType = 0
	OperationTypePayment                        OperationType = 1
	OperationTypePathPaymentStrictReceive       OperationType = 2
	OperationTypeManageSellOffer                OperationType = 3
	OperationTypeCreatePassiveSellOffer         OperationType = 4
	OperationTypeSetOptions                     OperationType = 5
	OperationTypeChangeTrust                    OperationType = 6
	OperationTypeAllowTrust                     OperationType = 7
	OperationTypeAccountMerge                   OperationType = 8
	OperationTypeInflation                      OperationType = 9
	OperationTypeManageData                     OperationType = 10
	OperationTypeBumpSequence                   OperationType = 11
	OperationTypeManageBuyOffer                 OperationType = 12
	OperationTypePathPaymentStrictSend          OperationType = 13
	OperationTypeCreateClaimableBalance         OperationType = 14
	OperationTypeClaimClaimableBalance          OperationType = 15
	OperationTypeBeginSponsoringFutureReserves  OperationType = 16
	OperationTypeEndSponsoringFutureReserves    OperationType = 17
	OperationTypeRevokeSponsorship              OperationType = 18
	OperationTypeClawback                       OperationType = 19
	OperationTypeClawbackClaimableBalance       OperationType = 20
	OperationTypeSetTrustLineFlags              OperationType = 21
	OperationTypeLiquidityPoolDeposit           OperationType = 22
	OperationTypeLiquidityPoolWithdraw          OperationType = 23
	OperationTypeInvokeHostFunction             OperationType = 24
	OperationTypeExtendFootprintTtl             OperationType = 25
	OperationTypeRestoreFootprint               OperationType = 26
)

// ExtensionPoint is the zero-arm "reserved for future use" extension
// point carried by several newer operation bodies.
type ExtensionPoint struct {
	V int32
}

func (x ExtensionPoint) EncodeTo(e *Encoder) error { return e.EncodeInt(x.V) }
func (x *ExtensionPoint) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	v, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	if v != 0 {
		return 0, d.fail(errors.Errorf("unsupported extension point %d", v))
	}
	x.V = v
	return d.offset - start, nil
}

type CreateAccountOp struct {
	Destination     AccountId
	StartingBalance Int64
}

func (o CreateAccountOp) EncodeTo(e *Encoder) error {
	if err := o.Destination.EncodeTo(e); err != nil {
		return err
	}
	return o.StartingBalance.EncodeTo(e)
}

func (o *CreateAccountOp) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := o.Destination.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.StartingBalance.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

type PaymentOp struct {
	Destination MuxedAccount
	Asset       Asset
	Amount      Int64
}

func (o PaymentOp) EncodeTo(e *Encoder) error {
	if err := o.Destination.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Asset.EncodeTo(e); err != nil {
		return err
	}
	return o.Amount.EncodeTo(e)
}

func (o *PaymentOp) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := o.Destination.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.Asset.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.Amount.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

type PathPaymentStrictReceiveOp struct {
	SendAsset   Asset
	SendMax     Int64
	Destination MuxedAccount
	DestAsset   Asset
	DestAmount  Int64
	Path        []Asset
}

func (o PathPaymentStrictReceiveOp) EncodeTo(e *Encoder) error {
	if err := o.SendAsset.EncodeTo(e); err != nil {
		return err
	}
	if err := o.SendMax.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Destination.EncodeTo(e); err != nil {
		return err
	}
	if err := o.DestAsset.EncodeTo(e); err != nil {
		return err
	}
	if err := o.DestAmount.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeUint(uint32(len(o.Path))); err != nil {
		return err
	}
	for _, a := range o.Path {
		if err := a.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (o *PathPaymentStrictReceiveOp) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := o.SendAsset.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.SendMax.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.Destination.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.DestAsset.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.DestAmount.DecodeFrom(d); err != nil {
		return 0, err
	}
	n, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	o.Path = make([]Asset, n)
	for i := range o.Path {
		if _, err := o.Path[i].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	return d.offset - start, nil
}

type PathPaymentStrictSendOp struct {
	SendAsset   Asset
	SendAmount  Int64
	Destination MuxedAccount
	DestAsset   Asset
	DestMin     Int64
	Path        []Asset
}

func (o PathPaymentStrictSendOp) EncodeTo(e *Encoder) error {
	if err := o.SendAsset.EncodeTo(e); err != nil {
		return err
	}
	if err := o.SendAmount.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Destination.EncodeTo(e); err != nil {
		return err
	}
	if err := o.DestAsset.EncodeTo(e); err != nil {
		return err
	}
	if err := o.DestMin.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeUint(uint32(len(o.Path))); err != nil {
		return err
	}
	for _, a := range o.Path {
		if err := a.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (o *PathPaymentStrictSendOp) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := o.SendAsset.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.SendAmount.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.Destination.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.DestAsset.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.DestMin.DecodeFrom(d); err != nil {
		return 0, err
	}
	n, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	o.Path = make([]Asset, n)
	for i := range o.Path {
		if _, err := o.Path[i].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	return d.offset - start, nil
}

type ManageSellOfferOp struct {
	Selling Asset
	Buying  Asset
	Amount  Int64
	Price   Price
	OfferId Int64
}

func (o ManageSellOfferOp) EncodeTo(e *Encoder) error {
	for _, f := range []Encodable{o.Selling, o.Buying, o.Amount, o.Price, o.OfferId} {
		if err := f.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (o *ManageSellOfferOp) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	for _, f := range []Decodable{&o.Selling, &o.Buying, &o.Amount, &o.Price, &o.OfferId} {
		if _, err := f.DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	return d.offset - start, nil
}

type ManageBuyOfferOp struct {
	Selling   Asset
	Buying    Asset
	BuyAmount Int64
	Price     Price
	OfferId   Int64
}

func (o ManageBuyOfferOp) EncodeTo(e *Encoder) error {
	for _, f := range []Encodable{o.Selling, o.Buying, o.BuyAmount, o.Price, o.OfferId} {
		if err := f.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (o *ManageBuyOfferOp) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	for _, f := range []Decodable{&o.Selling, &o.Buying, &o.BuyAmount, &o.Price, &o.OfferId} {
		if _, err := f.DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	return d.offset - start, nil
}

type CreatePassiveSellOfferOp struct {
	Selling Asset
	Buying  Asset
	Amount  Int64
	Price   Price
}

func (o CreatePassiveSellOfferOp) EncodeTo(e *Encoder) error {
	for _, f := range []Encodable{o.Selling, o.Buying, o.Amount, o.Price} {
		if err := f.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (o *CreatePassiveSellOfferOp) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	for _, f := range []Decodable{&o.Selling, &o.Buying, &o.Amount, &o.Price} {
		if _, err := f.DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	return d.offset - start, nil
}

type SetOptionsOp struct {
	InflationDest *AccountId
	ClearFlags    *Uint32
	SetFlags      *Uint32
	MasterWeight  *Uint32
	LowThreshold  *Uint32
	MedThreshold  *Uint32
	HighThreshold *Uint32
	HomeDomain    *string
	Signer        *Signer
}

func encodeOptAccountId(e *Encoder, v *AccountId) error {
	if err := e.EncodeBool(v != nil); err != nil {
		return err
	}
	if v != nil {
		return v.EncodeTo(e)
	}
	return nil
}

func encodeOptUint32(e *Encoder, v *Uint32) error {
	if err := e.EncodeBool(v != nil); err != nil {
		return err
	}
	if v != nil {
		return v.EncodeTo(e)
	}
	return nil
}

func (o SetOptionsOp) EncodeTo(e *Encoder) error {
	if err := encodeOptAccountId(e, o.InflationDest); err != nil {
		return err
	}
	if err := encodeOptUint32(e, o.ClearFlags); err != nil {
		return err
	}
	if err := encodeOptUint32(e, o.SetFlags); err != nil {
		return err
	}
	if err := encodeOptUint32(e, o.MasterWeight); err != nil {
		return err
	}
	if err := encodeOptUint32(e, o.LowThreshold); err != nil {
		return err
	}
	if err := encodeOptUint32(e, o.MedThreshold); err != nil {
		return err
	}
	if err := encodeOptUint32(e, o.HighThreshold); err != nil {
		return err
	}
	if err := e.EncodeBool(o.HomeDomain != nil); err != nil {
		return err
	}
	if o.HomeDomain != nil {
		if err := e.EncodeString(*o.HomeDomain); err != nil {
			return err
		}
	}
	if err := e.EncodeBool(o.Signer != nil); err != nil {
		return err
	}
	if o.Signer != nil {
		return o.Signer.EncodeTo(e)
	}
	return nil
}

func (o *SetOptionsOp) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if has, err := d.DecodeBool(); err != nil {
		return 0, err
	} else if has {
		var v AccountId
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		o.InflationDest = &v
	}
	for _, dst := range []**Uint32{&o.ClearFlags, &o.SetFlags, &o.MasterWeight, &o.LowThreshold, &o.MedThreshold, &o.HighThreshold} {
		has, err := d.DecodeBool()
		if err != nil {
			return 0, err
		}
		if has {
			var v Uint32
			if _, err := v.DecodeFrom(d); err != nil {
				return 0, err
			}
			*dst = &v
		}
	}
	if has, err := d.DecodeBool(); err != nil {
		return 0, err
	} else if has {
		s, err := d.DecodeString(32)
		if err != nil {
			return 0, err
		}
		o.HomeDomain = &s
	}
	if has, err := d.DecodeBool(); err != nil {
		return 0, err
	} else if has {
		var v Signer
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		o.Signer = &v
	}
	return d.offset - start, nil
}

// ChangeTrustOp establishes, adjusts, or removes (limit 0) a trustline.
// The asset being trusted is modeled as a plain Asset; pool-share trust
// lines are out of scope for this SDK.
type ChangeTrustOp struct {
	Line  Asset
	Limit Int64
}

func (o ChangeTrustOp) EncodeTo(e *Encoder) error {
	if err := o.Line.EncodeTo(e); err != nil {
		return err
	}
	return o.Limit.EncodeTo(e)
}

func (o *ChangeTrustOp) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := o.Line.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.Limit.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

// AllowTrustOpAsset names the asset an AllowTrust operation applies to by
// code alone, without an issuer (the issuer is always the op's source
// account).
type AllowTrustOpAsset struct {
	Type       AssetType
	AssetCode4  *AssetCode4
	AssetCode12 *AssetCode12
}

func (a AllowTrustOpAsset) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(a.Type)); err != nil {
		return err
	}
	switch a.Type {
	case AssetTypeAssetTypeCreditAlphanum4:
		return a.AssetCode4.EncodeTo(e)
	case AssetTypeAssetTypeCreditAlphanum12:
		return a.AssetCode12.EncodeTo(e)
	default:
		return errors.Errorf("unsupported allow trust asset type %d", a.Type)
	}
}

func (a *AllowTrustOpAsset) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	a.Type = AssetType(t)
	switch a.Type {
	case AssetTypeAssetTypeCreditAlphanum4:
		var v AssetCode4
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		a.AssetCode4 = &v
	case AssetTypeAssetTypeCreditAlphanum12:
		var v AssetCode12
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		a.AssetCode12 = &v
	default:
		return 0, d.fail(errors.Errorf("unsupported allow trust asset type %d", a.Type))
	}
	return d.offset - start, nil
}

type AllowTrustOp struct {
	Trustor   AccountId
	Asset     AllowTrustOpAsset
	Authorize Uint32
}

func (o AllowTrustOp) EncodeTo(e *Encoder) error {
	if err := o.Trustor.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Asset.EncodeTo(e); err != nil {
		return err
	}
	return o.Authorize.EncodeTo(e)
}

func (o *AllowTrustOp) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := o.Trustor.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.Asset.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.Authorize.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

type ManageDataOp struct {
	DataName  string
	DataValue *[]byte
}

func (o ManageDataOp) EncodeTo(e *Encoder) error {
	if err := e.EncodeString(o.DataName); err != nil {
		return err
	}
	if err := e.EncodeBool(o.DataValue != nil); err != nil {
		return err
	}
	if o.DataValue != nil {
		return e.EncodeOpaque(*o.DataValue)
	}
	return nil
}

func (o *ManageDataOp) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	name, err := d.DecodeString(64)
	if err != nil {
		return 0, err
	}
	o.DataName = name
	has, err := d.DecodeBool()
	if err != nil {
		return 0, err
	}
	if has {
		v, err := d.DecodeOpaque(64)
		if err != nil {
			return 0, err
		}
		o.DataValue = &v
	}
	return d.offset - start, nil
}

type BumpSequenceOp struct {
	BumpTo SequenceNumber
}

func (o BumpSequenceOp) EncodeTo(e *Encoder) error { return o.BumpTo.EncodeTo(e) }
func (o *BumpSequenceOp) DecodeFrom(d *Decoder) (int, error) {
	return o.BumpTo.DecodeFrom(d)
}

// ClaimPredicateType discriminates the conditions under which a claimant
// may claim a ClaimableBalance.
type ClaimPredicateType int32

const (
	ClaimPredicateTypeClaimPredicateUnconditional        ClaimPredicateType = 0
	ClaimPredicateTypeClaimPredicateAnd                  ClaimPredicateType = 1
	ClaimPredicateTypeClaimPredicateOr                   ClaimPredicateType = 2
	ClaimPredicateTypeClaimPredicateNot                  ClaimPredicateType = 3
	ClaimPredicateTypeClaimPredicateBeforeAbsoluteTime   ClaimPredicateType = 4
	ClaimPredicateTypeClaimPredicateBeforeRelativeTime   ClaimPredicateType = 5
)

// ClaimPredicate is a (possibly recursive) boolean condition on a
// claimable balance's claim time.
type ClaimPredicate struct {
	Type                 ClaimPredicateType
	AndPredicates        *[]ClaimPredicate
	OrPredicates         *[]ClaimPredicate
	NotPredicate         *ClaimPredicate
	AbsBefore            *Int64
	RelBefore            *Int64
}

func (p ClaimPredicate) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(p.Type)); err != nil {
		return err
	}
	switch p.Type {
	case ClaimPredicateTypeClaimPredicateUnconditional:
		return nil
	case ClaimPredicateTypeClaimPredicateAnd, ClaimPredicateTypeClaimPredicateOr:
		list := p.AndPredicates
		if p.Type == ClaimPredicateTypeClaimPredicateOr {
			list = p.OrPredicates
		}
		if err := e.EncodeUint(uint32(len(*list))); err != nil {
			return err
		}
		for _, sub := range *list {
			if err := sub.EncodeTo(e); err != nil {
				return err
			}
		}
		return nil
	case ClaimPredicateTypeClaimPredicateNot:
		return p.NotPredicate.EncodeTo(e)
	case ClaimPredicateTypeClaimPredicateBeforeAbsoluteTime:
		return p.AbsBefore.EncodeTo(e)
	case ClaimPredicateTypeClaimPredicateBeforeRelativeTime:
		return p.RelBefore.EncodeTo(e)
	default:
		return errors.Errorf("unsupported claim predicate type %d", p.Type)
	}
}

func (p *ClaimPredicate) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	p.Type = ClaimPredicateType(t)
	switch p.Type {
	case ClaimPredicateTypeClaimPredicateUnconditional:
	case ClaimPredicateTypeClaimPredicateAnd, ClaimPredicateTypeClaimPredicateOr:
		n, err := d.DecodeUint()
		if err != nil {
			return 0, err
		}
		list := make([]ClaimPredicate, n)
		for i := range list {
			if _, err := list[i].DecodeFrom(d); err != nil {
				return 0, err
			}
		}
		if p.Type == ClaimPredicateTypeClaimPredicateAnd {
			p.AndPredicates = &list
		} else {
			p.OrPredicates = &list
		}
	case ClaimPredicateTypeClaimPredicateNot:
		var v ClaimPredicate
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		p.NotPredicate = &v
	case ClaimPredicateTypeClaimPredicateBeforeAbsoluteTime:
		var v Int64
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		p.AbsBefore = &v
	case ClaimPredicateTypeClaimPredicateBeforeRelativeTime:
		var v Int64
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		p.RelBefore = &v
	default:
		return 0, d.fail(errors.Errorf("unsupported claim predicate type %d", p.Type))
	}
	return d.offset - start, nil
}

type ClaimantType int32

const ClaimantTypeClaimantTypeV0 ClaimantType = 0

type ClaimantV0 struct {
	Destination AccountId
	Predicate   ClaimPredicate
}

func (c ClaimantV0) EncodeTo(e *Encoder) error {
	if err := c.Destination.EncodeTo(e); err != nil {
		return err
	}
	return c.Predicate.EncodeTo(e)
}

func (c *ClaimantV0) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := c.Destination.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := c.Predicate.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

type Claimant struct {
	Type ClaimantType
	V0   *ClaimantV0
}

func (c Claimant) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(c.Type)); err != nil {
		return err
	}
	return c.V0.EncodeTo(e)
}

func (c *Claimant) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	c.Type = ClaimantType(t)
	var v ClaimantV0
	if _, err := v.DecodeFrom(d); err != nil {
		return 0, err
	}
	c.V0 = &v
	return d.offset - start, nil
}

type ClaimableBalanceIdType int32

const ClaimableBalanceIdTypeClaimableBalanceIdTypeV0 ClaimableBalanceIdType = 0

type ClaimableBalanceId struct {
	Type ClaimableBalanceIdType
	V0   *Hash
}

func (c ClaimableBalanceId) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(c.Type)); err != nil {
		return err
	}
	return c.V0.EncodeTo(e)
}

func (c *ClaimableBalanceId) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	c.Type = ClaimableBalanceIdType(t)
	var v Hash
	if _, err := v.DecodeFrom(d); err != nil {
		return 0, err
	}
	c.V0 = &v
	return d.offset - start, nil
}

type CreateClaimableBalanceOp struct {
	Asset     Asset
	Amount    Int64
	Claimants []Claimant
}

func (o CreateClaimableBalanceOp) EncodeTo(e *Encoder) error {
	if err := o.Asset.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Amount.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeUint(uint32(len(o.Claimants))); err != nil {
		return err
	}
	for _, c := range o.Claimants {
		if err := c.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (o *CreateClaimableBalanceOp) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := o.Asset.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.Amount.DecodeFrom(d); err != nil {
		return 0, err
	}
	n, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	o.Claimants = make([]Claimant, n)
	for i := range o.Claimants {
		if _, err := o.Claimants[i].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	return d.offset - start, nil
}

type ClaimClaimableBalanceOp struct {
	BalanceId ClaimableBalanceId
}

func (o ClaimClaimableBalanceOp) EncodeTo(e *Encoder) error { return o.BalanceId.EncodeTo(e) }
func (o *ClaimClaimableBalanceOp) DecodeFrom(d *Decoder) (int, error) {
	return o.BalanceId.DecodeFrom(d)
}

type BeginSponsoringFutureReservesOp struct {
	SponsoredId AccountId
}

func (o BeginSponsoringFutureReservesOp) EncodeTo(e *Encoder) error { return o.SponsoredId.EncodeTo(e) }
func (o *BeginSponsoringFutureReservesOp) DecodeFrom(d *Decoder) (int, error) {
	return o.SponsoredId.DecodeFrom(d)
}

type RevokeSponsorshipType int32

const (
	RevokeSponsorshipTypeRevokeSponsorshipLedgerEntry RevokeSponsorshipType = 0
	RevokeSponsorshipTypeRevokeSponsorshipSigner      RevokeSponsorshipType = 1
)

type RevokeSponsorshipOpSigner struct {
	AccountId AccountId
	SignerKey SignerKey
}

func (s RevokeSponsorshipOpSigner) EncodeTo(e *Encoder) error {
	if err := s.AccountId.EncodeTo(e); err != nil {
		return err
	}
	return s.SignerKey.EncodeTo(e)
}

func (s *RevokeSponsorshipOpSigner) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := s.AccountId.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := s.SignerKey.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

type RevokeSponsorshipOp struct {
	Type      RevokeSponsorshipType
	LedgerKey *LedgerKey
	Signer    *RevokeSponsorshipOpSigner
}

func (o RevokeSponsorshipOp) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(o.Type)); err != nil {
		return err
	}
	switch o.Type {
	case RevokeSponsorshipTypeRevokeSponsorshipLedgerEntry:
		return o.LedgerKey.EncodeTo(e)
	case RevokeSponsorshipTypeRevokeSponsorshipSigner:
		return o.Signer.EncodeTo(e)
	default:
		return errors.Errorf("unsupported revoke sponsorship type %d", o.Type)
	}
}

func (o *RevokeSponsorshipOp) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	o.Type = RevokeSponsorshipType(t)
	switch o.Type {
	case RevokeSponsorshipTypeRevokeSponsorshipLedgerEntry:
		var v LedgerKey
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		o.LedgerKey = &v
	case RevokeSponsorshipTypeRevokeSponsorshipSigner:
		var v RevokeSponsorshipOpSigner
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		o.Signer = &v
	default:
		return 0, d.fail(errors.Errorf("unsupported revoke sponsorship type %d", o.Type))
	}
	return d.offset - start, nil
}

type ClawbackOp struct {
	Asset  Asset
	From   MuxedAccount
	Amount Int64
}

func (o ClawbackOp) EncodeTo(e *Encoder) error {
	if err := o.Asset.EncodeTo(e); err != nil {
		return err
	}
	if err := o.From.EncodeTo(e); err != nil {
		return err
	}
	return o.Amount.EncodeTo(e)
}

func (o *ClawbackOp) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := o.Asset.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.From.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.Amount.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

type ClawbackClaimableBalanceOp struct {
	BalanceId ClaimableBalanceId
}

func (o ClawbackClaimableBalanceOp) EncodeTo(e *Encoder) error { return o.BalanceId.EncodeTo(e) }
func (o *ClawbackClaimableBalanceOp) DecodeFrom(d *Decoder) (int, error) {
	return o.BalanceId.DecodeFrom(d)
}

type SetTrustLineFlagsOp struct {
	Trustor     AccountId
	Asset       Asset
	ClearFlags  Uint32
	SetFlags    Uint32
}

func (o SetTrustLineFlagsOp) EncodeTo(e *Encoder) error {
	if err := o.Trustor.EncodeTo(e); err != nil {
		return err
	}
	if err := o.Asset.EncodeTo(e); err != nil {
		return err
	}
	if err := o.ClearFlags.EncodeTo(e); err != nil {
		return err
	}
	return o.SetFlags.EncodeTo(e)
}

func (o *SetTrustLineFlagsOp) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := o.Trustor.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.Asset.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.ClearFlags.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.SetFlags.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

type LiquidityPoolDepositOp struct {
	LiquidityPoolId Hash
	MaxAmountA      Int64
	MaxAmountB      Int64
	MinPrice        Price
	MaxPrice        Price
}

func (o LiquidityPoolDepositOp) EncodeTo(e *Encoder) error {
	for _, f := range []Encodable{o.LiquidityPoolId, o.MaxAmountA, o.MaxAmountB, o.MinPrice, o.MaxPrice} {
		if err := f.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (o *LiquidityPoolDepositOp) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	for _, f := range []Decodable{&o.LiquidityPoolId, &o.MaxAmountA, &o.MaxAmountB, &o.MinPrice, &o.MaxPrice} {
		if _, err := f.DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	return d.offset - start, nil
}

type LiquidityPoolWithdrawOp struct {
	LiquidityPoolId Hash
	Amount          Int64
	MinAmountA      Int64
	MinAmountB      Int64
}

func (o LiquidityPoolWithdrawOp) EncodeTo(e *Encoder) error {
	for _, f := range []Encodable{o.LiquidityPoolId, o.Amount, o.MinAmountA, o.MinAmountB} {
		if err := f.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (o *LiquidityPoolWithdrawOp) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	for _, f := range []Decodable{&o.LiquidityPoolId, &o.Amount, &o.MinAmountA, &o.MinAmountB} {
		if _, err := f.DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	return d.offset - start, nil
}

type InvokeHostFunctionOp struct {
	HostFunction HostFunction
	Auth         []SorobanAuthorizationEntry
}

func (o InvokeHostFunctionOp) EncodeTo(e *Encoder) error {
	if err := o.HostFunction.EncodeTo(e); err != nil {
		return err
	}
	if err := e.EncodeUint(uint32(len(o.Auth))); err != nil {
		return err
	}
	for _, a := range o.Auth {
		if err := a.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (o *InvokeHostFunctionOp) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := o.HostFunction.DecodeFrom(d); err != nil {
		return 0, err
	}
	n, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	o.Auth = make([]SorobanAuthorizationEntry, n)
	for i := range o.Auth {
		if _, err := o.Auth[i].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	return d.offset - start, nil
}

type ExtendFootprintTtlOp struct {
	Ext       ExtensionPoint
	ExtendTo  Uint32
}

func (o ExtendFootprintTtlOp) EncodeTo(e *Encoder) error {
	if err := o.Ext.EncodeTo(e); err != nil {
		return err
	}
	return o.ExtendTo.EncodeTo(e)
}

func (o *ExtendFootprintTtlOp) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := o.Ext.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := o.ExtendTo.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

type RestoreFootprintOp struct {
	Ext ExtensionPoint
}

func (o RestoreFootprintOp) EncodeTo(e *Encoder) error { return o.Ext.EncodeTo(e) }
func (o *RestoreFootprintOp) DecodeFrom(d *Decoder) (int, error) {
	return o.Ext.DecodeFrom(d)
}

// OperationBody is the union of every operation's type-specific payload.
type OperationBody struct {
	Type                          OperationType
	CreateAccount                 *CreateAccountOp
	Payment                       *PaymentOp
	PathPaymentStrictReceive      *PathPaymentStrictReceiveOp
	ManageSellOffer               *ManageSellOfferOp
	CreatePassiveSellOffer        *CreatePassiveSellOfferOp
	SetOptions                    *SetOptionsOp
	ChangeTrust                   *ChangeTrustOp
	AllowTrust                    *AllowTrustOp
	AccountMerge                  *MuxedAccount
	ManageData                    *ManageDataOp
	BumpSequence                  *BumpSequenceOp
	ManageBuyOffer                *ManageBuyOfferOp
	PathPaymentStrictSend         *PathPaymentStrictSendOp
	CreateClaimableBalance        *CreateClaimableBalanceOp
	ClaimClaimableBalance         *ClaimClaimableBalanceOp
	BeginSponsoringFutureReserves *BeginSponsoringFutureReservesOp
	RevokeSponsorship             *RevokeSponsorshipOp
	Clawback                      *ClawbackOp
	ClawbackClaimableBalance      *ClawbackClaimableBalanceOp
	SetTrustLineFlags             *SetTrustLineFlagsOp
	LiquidityPoolDeposit          *LiquidityPoolDepositOp
	LiquidityPoolWithdraw         *LiquidityPoolWithdrawOp
	InvokeHostFunction            *InvokeHostFunctionOp
	ExtendFootprintTtl            *ExtendFootprintTtlOp
	RestoreFootprint              *RestoreFootprintOp
}

func (b OperationBody) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(b.Type)); err != nil {
		return err
	}
	switch b.Type {
	case OperationTypeCreateAccount:
		return b.CreateAccount.EncodeTo(e)
	case OperationTypePayment:
		return b.Payment.EncodeTo(e)
	case OperationTypePathPaymentStrictReceive:
		return b.PathPaymentStrictReceive.EncodeTo(e)
	case OperationTypeManageSellOffer:
		return b.ManageSellOffer.EncodeTo(e)
	case OperationTypeCreatePassiveSellOffer:
		return b.CreatePassiveSellOffer.EncodeTo(e)
	case OperationTypeSetOptions:
		return b.SetOptions.EncodeTo(e)
	case OperationTypeChangeTrust:
		return b.ChangeTrust.EncodeTo(e)
	case OperationTypeAllowTrust:
		return b.AllowTrust.EncodeTo(e)
	case OperationTypeAccountMerge:
		return b.AccountMerge.EncodeTo(e)
	case OperationTypeInflation:
		return nil
	case OperationTypeManageData:
		return b.ManageData.EncodeTo(e)
	case OperationTypeBumpSequence:
		return b.BumpSequence.EncodeTo(e)
	case OperationTypeManageBuyOffer:
		return b.ManageBuyOffer.EncodeTo(e)
	case OperationTypePathPaymentStrictSend:
		return b.PathPaymentStrictSend.EncodeTo(e)
	case OperationTypeCreateClaimableBalance:
		return b.CreateClaimableBalance.EncodeTo(e)
	case OperationTypeClaimClaimableBalance:
		return b.ClaimClaimableBalance.EncodeTo(e)
	case OperationTypeBeginSponsoringFutureReserves:
		return b.BeginSponsoringFutureReserves.EncodeTo(e)
	case OperationTypeEndSponsoringFutureReserves:
		return nil
	case OperationTypeRevokeSponsorship:
		return b.RevokeSponsorship.EncodeTo(e)
	case OperationTypeClawback:
		return b.Clawback.EncodeTo(e)
	case OperationTypeClawbackClaimableBalance:
		return b.ClawbackClaimableBalance.EncodeTo(e)
	case OperationTypeSetTrustLineFlags:
		return b.SetTrustLineFlags.EncodeTo(e)
	case OperationTypeLiquidityPoolDeposit:
		return b.LiquidityPoolDeposit.EncodeTo(e)
	case OperationTypeLiquidityPoolWithdraw:
		return b.LiquidityPoolWithdraw.EncodeTo(e)
	case OperationTypeInvokeHostFunction:
		return b.InvokeHostFunction.EncodeTo(e)
	case OperationTypeExtendFootprintTtl:
		return b.ExtendFootprintTtl.EncodeTo(e)
	case OperationTypeRestoreFootprint:
		return b.RestoreFootprint.EncodeTo(e)
	default:
		return errors.Errorf("unsupported operation type %d", b.Type)
	}
}

func (b *OperationBody) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	b.Type = OperationType(t)
	switch b.Type {
	case OperationTypeCreateAccount:
		b.CreateAccount = new(CreateAccountOp)
		_, err = b.CreateAccount.DecodeFrom(d)
	case OperationTypePayment:
		b.Payment = new(PaymentOp)
		_, err = b.Payment.DecodeFrom(d)
	case OperationTypePathPaymentStrictReceive:
		b.PathPaymentStrictReceive = new(PathPaymentStrictReceiveOp)
		_, err = b.PathPaymentStrictReceive.DecodeFrom(d)
	case OperationTypeManageSellOffer:
		b.ManageSellOffer = new(ManageSellOfferOp)
		_, err = b.ManageSellOffer.DecodeFrom(d)
	case OperationTypeCreatePassiveSellOffer:
		b.CreatePassiveSellOffer = new(CreatePassiveSellOfferOp)
		_, err = b.CreatePassiveSellOffer.DecodeFrom(d)
	case OperationTypeSetOptions:
		b.SetOptions = new(SetOptionsOp)
		_, err = b.SetOptions.DecodeFrom(d)
	case OperationTypeChangeTrust:
		b.ChangeTrust = new(ChangeTrustOp)
		_, err = b.ChangeTrust.DecodeFrom(d)
	case OperationTypeAllowTrust:
		b.AllowTrust = new(AllowTrustOp)
		_, err = b.AllowTrust.DecodeFrom(d)
	case OperationTypeAccountMerge:
		b.AccountMerge = new(MuxedAccount)
		_, err = b.AccountMerge.DecodeFrom(d)
	case OperationTypeInflation:
	case OperationTypeManageData:
		b.ManageData = new(ManageDataOp)
		_, err = b.ManageData.DecodeFrom(d)
	case OperationTypeBumpSequence:
		b.BumpSequence = new(BumpSequenceOp)
		_, err = b.BumpSequence.DecodeFrom(d)
	case OperationTypeManageBuyOffer:
		b.ManageBuyOffer = new(ManageBuyOfferOp)
		_, err = b.ManageBuyOffer.DecodeFrom(d)
	case OperationTypePathPaymentStrictSend:
		b.PathPaymentStrictSend = new(PathPaymentStrictSendOp)
		_, err = b.PathPaymentStrictSend.DecodeFrom(d)
	case OperationTypeCreateClaimableBalance:
		b.CreateClaimableBalance = new(CreateClaimableBalanceOp)
		_, err = b.CreateClaimableBalance.DecodeFrom(d)
	case OperationTypeClaimClaimableBalance:
		b.ClaimClaimableBalance = new(ClaimClaimableBalanceOp)
		_, err = b.ClaimClaimableBalance.DecodeFrom(d)
	case OperationTypeBeginSponsoringFutureReserves:
		b.BeginSponsoringFutureReserves = new(BeginSponsoringFutureReservesOp)
		_, err = b.BeginSponsoringFutureReserves.DecodeFrom(d)
	case OperationTypeEndSponsoringFutureReserves:
	case OperationTypeRevokeSponsorship:
		b.RevokeSponsorship = new(RevokeSponsorshipOp)
		_, err = b.RevokeSponsorship.DecodeFrom(d)
	case OperationTypeClawback:
		b.Clawback = new(ClawbackOp)
		_, err = b.Clawback.DecodeFrom(d)
	case OperationTypeClawbackClaimableBalance:
		b.ClawbackClaimableBalance = new(ClawbackClaimableBalanceOp)
		_, err = b.ClawbackClaimableBalance.DecodeFrom(d)
	case OperationTypeSetTrustLineFlags:
		b.SetTrustLineFlags = new(SetTrustLineFlagsOp)
		_, err = b.SetTrustLineFlags.DecodeFrom(d)
	case OperationTypeLiquidityPoolDeposit:
		b.LiquidityPoolDeposit = new(LiquidityPoolDepositOp)
		_, err = b.LiquidityPoolDeposit.DecodeFrom(d)
	case OperationTypeLiquidityPoolWithdraw:
		b.LiquidityPoolWithdraw = new(LiquidityPoolWithdrawOp)
		_, err = b.LiquidityPoolWithdraw.DecodeFrom(d)
	case OperationTypeInvokeHostFunction:
		b.InvokeHostFunction = new(InvokeHostFunctionOp)
		_, err = b.InvokeHostFunction.DecodeFrom(d)
	case OperationTypeExtendFootprintTtl:
		b.ExtendFootprintTtl = new(ExtendFootprintTtlOp)
		_, err = b.ExtendFootprintTtl.DecodeFrom(d)
	case OperationTypeRestoreFootprint:
		b.RestoreFootprint = new(RestoreFootprintOp)
		_, err = b.RestoreFootprint.DecodeFrom(d)
	default:
		return 0, d.fail(errors.Errorf("unsupported operation type %d", b.Type))
	}
	if err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

// Operation pairs an optional override of the transaction's source
// account with a type-specific body.
type Operation struct {
	SourceAccount *MuxedAccount
	Body          OperationBody
}

func (o Operation) EncodeTo(e *Encoder) error {
	if err := e.EncodeBool(o.SourceAccount != nil); err != nil {
		return err
	}
	if o.SourceAccount != nil {
		if err := o.SourceAccount.EncodeTo(e); err != nil {
			return err
		}
	}
	return o.Body.EncodeTo(e)
}

func (o *Operation) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	has, err := d.DecodeBool()
	if err != nil {
		return 0, err
	}
	if has {
		var v MuxedAccount
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		o.SourceAccount = &v
	}
	if _, err := o.Body.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

// NewOperationBody builds an OperationBody of the given type from an
// XDR operation struct. It panics if xdrOp is not the struct type that
// opType expects (or nil, for the variants with no body).
func NewOperationBody(opType OperationType, xdrOp interface{}) (OperationBody, error) {
	body := OperationBody{Type: opType}
	switch opType {
	case OperationTypeCreateAccount:
		op := xdrOp.(CreateAccountOp)
		body.CreateAccount = &op
	case OperationTypePayment:
		op := xdrOp.(PaymentOp)
		body.Payment = &op
	case OperationTypePathPaymentStrictReceive:
		op := xdrOp.(PathPaymentStrictReceiveOp)
		body.PathPaymentStrictReceive = &op
	case OperationTypePathPaymentStrictSend:
		op := xdrOp.(PathPaymentStrictSendOp)
		body.PathPaymentStrictSend = &op
	case OperationTypeManageSellOffer:
		op := xdrOp.(ManageSellOfferOp)
		body.ManageSellOffer = &op
	case OperationTypeManageBuyOffer:
		op := xdrOp.(ManageBuyOfferOp)
		body.ManageBuyOffer = &op
	case OperationTypeCreatePassiveSellOffer:
		op := xdrOp.(CreatePassiveSellOfferOp)
		body.CreatePassiveSellOffer = &op
	case OperationTypeSetOptions:
		op := xdrOp.(SetOptionsOp)
		body.SetOptions = &op
	case OperationTypeChangeTrust:
		op := xdrOp.(ChangeTrustOp)
		body.ChangeTrust = &op
	case OperationTypeAllowTrust:
		op := xdrOp.(AllowTrustOp)
		body.AllowTrust = &op
	case OperationTypeAccountMerge:
		acc := xdrOp.(MuxedAccount)
		body.AccountMerge = &acc
	case OperationTypeInflation:
		// no body
	case OperationTypeManageData:
		op := xdrOp.(ManageDataOp)
		body.ManageData = &op
	case OperationTypeBumpSequence:
		op := xdrOp.(BumpSequenceOp)
		body.BumpSequence = &op
	case OperationTypeCreateClaimableBalance:
		op := xdrOp.(CreateClaimableBalanceOp)
		body.CreateClaimableBalance = &op
	case OperationTypeClaimClaimableBalance:
		op := xdrOp.(ClaimClaimableBalanceOp)
		body.ClaimClaimableBalance = &op
	case OperationTypeBeginSponsoringFutureReserves:
		op := xdrOp.(BeginSponsoringFutureReservesOp)
		body.BeginSponsoringFutureReserves = &op
	case OperationTypeEndSponsoringFutureReserves:
		// no body
	case OperationTypeRevokeSponsorship:
		op := xdrOp.(RevokeSponsorshipOp)
		body.RevokeSponsorship = &op
	case OperationTypeClawback:
		op := xdrOp.(ClawbackOp)
		body.Clawback = &op
	case OperationTypeClawbackClaimableBalance:
		op := xdrOp.(ClawbackClaimableBalanceOp)
		body.ClawbackClaimableBalance = &op
	case OperationTypeSetTrustLineFlags:
		op := xdrOp.(SetTrustLineFlagsOp)
		body.SetTrustLineFlags = &op
	case OperationTypeLiquidityPoolDeposit:
		op := xdrOp.(LiquidityPoolDepositOp)
		body.LiquidityPoolDeposit = &op
	case OperationTypeLiquidityPoolWithdraw:
		op := xdrOp.(LiquidityPoolWithdrawOp)
		body.LiquidityPoolWithdraw = &op
	case OperationTypeInvokeHostFunction:
		op := xdrOp.(InvokeHostFunctionOp)
		body.InvokeHostFunction = &op
	case OperationTypeExtendFootprintTtl:
		op := xdrOp.(ExtendFootprintTtlOp)
		body.ExtendFootprintTtl = &op
	case OperationTypeRestoreFootprint:
		op := xdrOp.(RestoreFootprintOp)
		body.RestoreFootprint = &op
	default:
		return OperationBody{}, errors.Errorf("xdr: unknown operation type %d", opType)
	}
	return body, nil
}

// GetCreateAccountOp returns the CreateAccount body and whether it was set.
func (b OperationBody) GetCreateAccountOp() (CreateAccountOp, bool) {
	if b.CreateAccount == nil {
		return CreateAccountOp{}, false
	}
	return *b.CreateAccount, true
}

// GetAccountMergeOp returns the AccountMerge destination and whether it was set.
func (b OperationBody) GetAccountMergeOp() (MuxedAccount, bool) {
	if b.AccountMerge == nil {
		return MuxedAccount{}, false
	}
	return *b.AccountMerge, true
}

// GetPaymentOp returns the Payment body and whether it was set.
func (b OperationBody) GetPaymentOp() (PaymentOp, bool) {
	if b.Payment == nil {
		return PaymentOp{}, false
	}
	return *b.Payment, true
}

// GetPathPaymentStrictReceiveOp returns the PathPaymentStrictReceive body and whether it was set.
func (b OperationBody) GetPathPaymentStrictReceiveOp() (PathPaymentStrictReceiveOp, bool) {
	if b.PathPaymentStrictReceive == nil {
		return PathPaymentStrictReceiveOp{}, false
	}
	return *b.PathPaymentStrictReceive, true
}

// GetPathPaymentStrictSendOp returns the PathPaymentStrictSend body and whether it was set.
func (b OperationBody) GetPathPaymentStrictSendOp() (PathPaymentStrictSendOp, bool) {
	if b.PathPaymentStrictSend == nil {
		return PathPaymentStrictSendOp{}, false
	}
	return *b.PathPaymentStrictSend, true
}

// GetManageSellOfferOp returns the ManageSellOffer body and whether it was set.
func (b OperationBody) GetManageSellOfferOp() (ManageSellOfferOp, bool) {
	if b.ManageSellOffer == nil {
		return ManageSellOfferOp{}, false
	}
	return *b.ManageSellOffer, true
}

// GetManageBuyOfferOp returns the ManageBuyOffer body and whether it was set.
func (b OperationBody) GetManageBuyOfferOp() (ManageBuyOfferOp, bool) {
	if b.ManageBuyOffer == nil {
		return ManageBuyOfferOp{}, false
	}
	return *b.ManageBuyOffer, true
}

// GetCreatePassiveSellOfferOp returns the CreatePassiveSellOffer body and whether it was set.
func (b OperationBody) GetCreatePassiveSellOfferOp() (CreatePassiveSellOfferOp, bool) {
	if b.CreatePassiveSellOffer == nil {
		return CreatePassiveSellOfferOp{}, false
	}
	return *b.CreatePassiveSellOffer, true
}

// GetSetOptionsOp returns the SetOptions body and whether it was set.
func (b OperationBody) GetSetOptionsOp() (SetOptionsOp, bool) {
	if b.SetOptions == nil {
		return SetOptionsOp{}, false
	}
	return *b.SetOptions, true
}

// GetChangeTrustOp returns the ChangeTrust body and whether it was set.
func (b OperationBody) GetChangeTrustOp() (ChangeTrustOp, bool) {
	if b.ChangeTrust == nil {
		return ChangeTrustOp{}, false
	}
	return *b.ChangeTrust, true
}

// GetAllowTrustOp returns the AllowTrust body and whether it was set.
func (b OperationBody) GetAllowTrustOp() (AllowTrustOp, bool) {
	if b.AllowTrust == nil {
		return AllowTrustOp{}, false
	}
	return *b.AllowTrust, true
}

// GetManageDataOp returns the ManageData body and whether it was set.
func (b OperationBody) GetManageDataOp() (ManageDataOp, bool) {
	if b.ManageData == nil {
		return ManageDataOp{}, false
	}
	return *b.ManageData, true
}

// GetBumpSequenceOp returns the BumpSequence body and whether it was set.
func (b OperationBody) GetBumpSequenceOp() (BumpSequenceOp, bool) {
	if b.BumpSequence == nil {
		return BumpSequenceOp{}, false
	}
	return *b.BumpSequence, true
}

// GetCreateClaimableBalanceOp returns the CreateClaimableBalance body and whether it was set.
func (b OperationBody) GetCreateClaimableBalanceOp() (CreateClaimableBalanceOp, bool) {
	if b.CreateClaimableBalance == nil {
		return CreateClaimableBalanceOp{}, false
	}
	return *b.CreateClaimableBalance, true
}

// GetClaimClaimableBalanceOp returns the ClaimClaimableBalance body and whether it was set.
func (b OperationBody) GetClaimClaimableBalanceOp() (ClaimClaimableBalanceOp, bool) {
	if b.ClaimClaimableBalance == nil {
		return ClaimClaimableBalanceOp{}, false
	}
	return *b.ClaimClaimableBalance, true
}

// GetBeginSponsoringFutureReservesOp returns the BeginSponsoringFutureReserves body and whether it was set.
func (b OperationBody) GetBeginSponsoringFutureReservesOp() (BeginSponsoringFutureReservesOp, bool) {
	if b.BeginSponsoringFutureReserves == nil {
		return BeginSponsoringFutureReservesOp{}, false
	}
	return *b.BeginSponsoringFutureReserves, true
}

// GetRevokeSponsorshipOp returns the RevokeSponsorship body and whether it was set.
func (b OperationBody) GetRevokeSponsorshipOp() (RevokeSponsorshipOp, bool) {
	if b.RevokeSponsorship == nil {
		return RevokeSponsorshipOp{}, false
	}
	return *b.RevokeSponsorship, true
}

// GetClawbackOp returns the Clawback body and whether it was set.
func (b OperationBody) GetClawbackOp() (ClawbackOp, bool) {
	if b.Clawback == nil {
		return ClawbackOp{}, false
	}
	return *b.Clawback, true
}

// GetClawbackClaimableBalanceOp returns the ClawbackClaimableBalance body and whether it was set.
func (b OperationBody) GetClawbackClaimableBalanceOp() (ClawbackClaimableBalanceOp, bool) {
	if b.ClawbackClaimableBalance == nil {
		return ClawbackClaimableBalanceOp{}, false
	}
	return *b.ClawbackClaimableBalance, true
}

// GetSetTrustLineFlagsOp returns the SetTrustLineFlags body and whether it was set.
func (b OperationBody) GetSetTrustLineFlagsOp() (SetTrustLineFlagsOp, bool) {
	if b.SetTrustLineFlags == nil {
		return SetTrustLineFlagsOp{}, false
	}
	return *b.SetTrustLineFlags, true
}

// GetLiquidityPoolDepositOp returns the LiquidityPoolDeposit body and whether it was set.
func (b OperationBody) GetLiquidityPoolDepositOp() (LiquidityPoolDepositOp, bool) {
	if b.LiquidityPoolDeposit == nil {
		return LiquidityPoolDepositOp{}, false
	}
	return *b.LiquidityPoolDeposit, true
}

// GetLiquidityPoolWithdrawOp returns the LiquidityPoolWithdraw body and whether it was set.
func (b OperationBody) GetLiquidityPoolWithdrawOp() (LiquidityPoolWithdrawOp, bool) {
	if b.LiquidityPoolWithdraw == nil {
		return LiquidityPoolWithdrawOp{}, false
	}
	return *b.LiquidityPoolWithdraw, true
}

// GetInvokeHostFunctionOp returns the InvokeHostFunction body and whether it was set.
func (b OperationBody) GetInvokeHostFunctionOp() (InvokeHostFunctionOp, bool) {
	if b.InvokeHostFunction == nil {
		return InvokeHostFunctionOp{}, false
	}
	return *b.InvokeHostFunction, true
}

// GetExtendFootprintTtlOp returns the ExtendFootprintTtl body and whether it was set.
func (b OperationBody) GetExtendFootprintTtlOp() (ExtendFootprintTtlOp, bool) {
	if b.ExtendFootprintTtl == nil {
		return ExtendFootprintTtlOp{}, false
	}
	return *b.ExtendFootprintTtl, true
}

// GetRestoreFootprintOp returns the RestoreFootprint body and whether it was set.
func (b OperationBody) GetRestoreFootprintOp() (RestoreFootprintOp, bool) {
	if b.RestoreFootprint == nil {
		return RestoreFootprintOp{}, false
	}
	return *b.RestoreFootprint, true
}
