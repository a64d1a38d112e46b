package xdr

import "github.com/stellar/go-stellar-sdk/support/errors"

// LedgerEntryType discriminates the kinds of ledger entries a LedgerKey can
// address. Only the variants this SDK's operations and Soroban footprints
// need to reference are implemented.
type LedgerEntryType int32

const (
	LedgerEntryTypeAccount          LedgerEntryType = 0
	LedgerEntryTypeTrustline        LedgerEntryType = 1
	LedgerEntryTypeOffer            LedgerEntryType = 2
	LedgerEntryTypeData             LedgerEntryType = 3
	LedgerEntryTypeClaimableBalance LedgerEntryType = 4
	LedgerEntryTypeLiquidityPool    LedgerEntryType = 5
	LedgerEntryTypeContractData     LedgerEntryType = 6
	LedgerEntryTypeContractCode     LedgerEntryType = 7
	LedgerEntryTypeConfigSetting    LedgerEntryType = 8
	LedgerEntryTypeTtl              LedgerEntryType = 9
)

type LedgerKeyAccount struct {
	AccountId AccountId
}

func (k LedgerKeyAccount) EncodeTo(e *Encoder) error { return k.AccountId.EncodeTo(e) }
func (k *LedgerKeyAccount) DecodeFrom(d *Decoder) (int, error) {
	return k.AccountId.DecodeFrom(d)
}

type LedgerKeyTrustLine struct {
	AccountId AccountId
	Asset     Asset
}

func (k LedgerKeyTrustLine) EncodeTo(e *Encoder) error {
	if err := k.AccountId.EncodeTo(e); err != nil {
		return err
	}
	return k.Asset.EncodeTo(e)
}

func (k *LedgerKeyTrustLine) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := k.AccountId.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := k.Asset.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

type LedgerKeyOffer struct {
	SellerId AccountId
	OfferId  Int64
}

func (k LedgerKeyOffer) EncodeTo(e *Encoder) error {
	if err := k.SellerId.EncodeTo(e); err != nil {
		return err
	}
	return k.OfferId.EncodeTo(e)
}

func (k *LedgerKeyOffer) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := k.SellerId.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := k.OfferId.DecodeFrom(d); err != nil {
		return 0, err
	}
	return d.offset - start, nil
}

type LedgerKeyData struct {
	AccountId AccountId
	DataName  string
}

func (k LedgerKeyData) EncodeTo(e *Encoder) error {
	if err := k.AccountId.EncodeTo(e); err != nil {
		return err
	}
	return e.EncodeString(k.DataName)
}

func (k *LedgerKeyData) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := k.AccountId.DecodeFrom(d); err != nil {
		return 0, err
	}
	name, err := d.DecodeString(64)
	if err != nil {
		return 0, err
	}
	k.DataName = name
	return d.offset - start, nil
}

type LedgerKeyClaimableBalance struct {
	BalanceId Hash
}

func (k LedgerKeyClaimableBalance) EncodeTo(e *Encoder) error { return k.BalanceId.EncodeTo(e) }
func (k *LedgerKeyClaimableBalance) DecodeFrom(d *Decoder) (int, error) {
	return k.BalanceId.DecodeFrom(d)
}

type LedgerKeyLiquidityPool struct {
	LiquidityPoolId Hash
}

func (k LedgerKeyLiquidityPool) EncodeTo(e *Encoder) error { return k.LiquidityPoolId.EncodeTo(e) }
func (k *LedgerKeyLiquidityPool) DecodeFrom(d *Decoder) (int, error) {
	return k.LiquidityPoolId.DecodeFrom(d)
}

// LedgerKeyContractData identifies a single key/value slot under a
// contract's instance or persistent/temporary storage.
type LedgerKeyContractData struct {
	Contract   ScAddress
	Key        ScVal
	Durability ContractDataDurability
}

func (k LedgerKeyContractData) EncodeTo(e *Encoder) error {
	if err := k.Contract.EncodeTo(e); err != nil {
		return err
	}
	if err := k.Key.EncodeTo(e); err != nil {
		return err
	}
	return e.EncodeInt(int32(k.Durability))
}

func (k *LedgerKeyContractData) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	if _, err := k.Contract.DecodeFrom(d); err != nil {
		return 0, err
	}
	if _, err := k.Key.DecodeFrom(d); err != nil {
		return 0, err
	}
	dur, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	k.Durability = ContractDataDurability(dur)
	return d.offset - start, nil
}

type LedgerKeyContractCode struct {
	Hash Hash
}

func (k LedgerKeyContractCode) EncodeTo(e *Encoder) error { return k.Hash.EncodeTo(e) }
func (k *LedgerKeyContractCode) DecodeFrom(d *Decoder) (int, error) {
	return k.Hash.DecodeFrom(d)
}

type LedgerKeyTtl struct {
	KeyHash Hash
}

func (k LedgerKeyTtl) EncodeTo(e *Encoder) error { return k.KeyHash.EncodeTo(e) }
func (k *LedgerKeyTtl) DecodeFrom(d *Decoder) (int, error) {
	return k.KeyHash.DecodeFrom(d)
}

// LedgerKey is the union of every ledger entry address this SDK builds or
// reads: classic entries for txnbuild operations and the contract-data/
// contract-code/ttl keys a Soroban footprint references.
type LedgerKey struct {
	Type              LedgerEntryType
	Account           *LedgerKeyAccount
	TrustLine         *LedgerKeyTrustLine
	Offer             *LedgerKeyOffer
	Data              *LedgerKeyData
	ClaimableBalance  *LedgerKeyClaimableBalance
	LiquidityPool     *LedgerKeyLiquidityPool
	ContractData      *LedgerKeyContractData
	ContractCode      *LedgerKeyContractCode
	Ttl               *LedgerKeyTtl
}

func (k LedgerKey) EncodeTo(e *Encoder) error {
	if err := e.EncodeInt(int32(k.Type)); err != nil {
		return err
	}
	switch k.Type {
	case LedgerEntryTypeAccount:
		return k.Account.EncodeTo(e)
	case LedgerEntryTypeTrustline:
		return k.TrustLine.EncodeTo(e)
	case LedgerEntryTypeOffer:
		return k.Offer.EncodeTo(e)
	case LedgerEntryTypeData:
		return k.Data.EncodeTo(e)
	case LedgerEntryTypeClaimableBalance:
		return k.ClaimableBalance.EncodeTo(e)
	case LedgerEntryTypeLiquidityPool:
		return k.LiquidityPool.EncodeTo(e)
	case LedgerEntryTypeContractData:
		return k.ContractData.EncodeTo(e)
	case LedgerEntryTypeContractCode:
		return k.ContractCode.EncodeTo(e)
	case LedgerEntryTypeTtl:
		return k.Ttl.EncodeTo(e)
	default:
		return errors.Errorf("unsupported ledger entry type %d", k.Type)
	}
}

func (k *LedgerKey) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	t, err := d.DecodeInt()
	if err != nil {
		return 0, err
	}
	k.Type = LedgerEntryType(t)
	switch k.Type {
	case LedgerEntryTypeAccount:
		var v LedgerKeyAccount
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		k.Account = &v
	case LedgerEntryTypeTrustline:
		var v LedgerKeyTrustLine
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		k.TrustLine = &v
	case LedgerEntryTypeOffer:
		var v LedgerKeyOffer
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		k.Offer = &v
	case LedgerEntryTypeData:
		var v LedgerKeyData
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		k.Data = &v
	case LedgerEntryTypeClaimableBalance:
		var v LedgerKeyClaimableBalance
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		k.ClaimableBalance = &v
	case LedgerEntryTypeLiquidityPool:
		var v LedgerKeyLiquidityPool
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		k.LiquidityPool = &v
	case LedgerEntryTypeContractData:
		var v LedgerKeyContractData
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		k.ContractData = &v
	case LedgerEntryTypeContractCode:
		var v LedgerKeyContractCode
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		k.ContractCode = &v
	case LedgerEntryTypeTtl:
		var v LedgerKeyTtl
		if _, err := v.DecodeFrom(d); err != nil {
			return 0, err
		}
		k.Ttl = &v
	default:
		return 0, d.fail(errors.Errorf("unsupported ledger entry type %d", k.Type))
	}
	return d.offset - start, nil
}

// LedgerFootprint declares the ledger entries a Soroban invocation reads
// and writes, precomputed by simulation and carried in SorobanResources.
type LedgerFootprint struct {
	ReadOnly  []LedgerKey
	ReadWrite []LedgerKey
}

func (f LedgerFootprint) EncodeTo(e *Encoder) error {
	if err := e.EncodeUint(uint32(len(f.ReadOnly))); err != nil {
		return err
	}
	for _, k := range f.ReadOnly {
		if err := k.EncodeTo(e); err != nil {
			return err
		}
	}
	if err := e.EncodeUint(uint32(len(f.ReadWrite))); err != nil {
		return err
	}
	for _, k := range f.ReadWrite {
		if err := k.EncodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func (f *LedgerFootprint) DecodeFrom(d *Decoder) (int, error) {
	start := d.offset
	n, err := d.DecodeUint()
	if err != nil {
		return 0, err
	}
	f.ReadOnly = make([]LedgerKey, n)
	for i := range f.ReadOnly {
		if _, err := f.ReadOnly[i].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	n, err = d.DecodeUint()
	if err != nil {
		return 0, err
	}
	f.ReadWrite = make([]LedgerKey, n)
	for i := range f.ReadWrite {
		if _, err := f.ReadWrite[i].DecodeFrom(d); err != nil {
			return 0, err
		}
	}
	return d.offset - start, nil
}
