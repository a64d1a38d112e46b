package txnbuild

import (
	"encoding/hex"

	"github.com/stellar/go-stellar-sdk/amount"
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

func liquidityPoolIdFromHex(s string) (xdr.Hash, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return xdr.Hash{}, errors.Wrap(err, "failed to decode LiquidityPoolId")
	}
	if len(raw) != 32 {
		return xdr.Hash{}, errors.New("LiquidityPoolId must be 32 bytes")
	}
	var id xdr.Hash
	copy(id[:], raw)
	return id, nil
}

// LiquidityPoolDeposit deposits up to MaxAmountA/MaxAmountB into the pool,
// bounded by a min/max exchange rate.
type LiquidityPoolDeposit struct {
	LiquidityPoolId string
	MaxAmountA      string
	MaxAmountB      string
	MinPrice        Price
	MaxPrice        Price
	SourceAccount   string
}

func (l *LiquidityPoolDeposit) BuildXDR() (xdr.Operation, error) {
	id, err := liquidityPoolIdFromHex(l.LiquidityPoolId)
	if err != nil {
		return xdr.Operation{}, err
	}
	maxA, err := amount.Parse(l.MaxAmountA)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse MaxAmountA")
	}
	maxB, err := amount.Parse(l.MaxAmountB)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse MaxAmountB")
	}
	xdrOp := xdr.LiquidityPoolDepositOp{
		LiquidityPoolId: id,
		MaxAmountA:      xdr.Int64(maxA),
		MaxAmountB:      xdr.Int64(maxB),
		MinPrice:        l.MinPrice.ToXDR(),
		MaxPrice:        l.MaxPrice.ToXDR(),
	}
	body, err := xdr.NewOperationBody(xdr.OperationTypeLiquidityPoolDeposit, xdrOp)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, l.SourceAccount)
	return op, nil
}

func (l *LiquidityPoolDeposit) FromXDR(xdrOp xdr.Operation) error {
	result, ok := xdrOp.Body.GetLiquidityPoolDepositOp()
	if !ok {
		return errors.New("error parsing liquidity_pool_deposit operation from xdr")
	}
	l.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	l.LiquidityPoolId = hex.EncodeToString(result.LiquidityPoolId[:])
	l.MaxAmountA = amount.String(int64(result.MaxAmountA))
	l.MaxAmountB = amount.String(int64(result.MaxAmountB))
	l.MinPrice = priceFromXDR(result.MinPrice)
	l.MaxPrice = priceFromXDR(result.MaxPrice)
	return nil
}

func (l *LiquidityPoolDeposit) Validate() error {
	if _, err := liquidityPoolIdFromHex(l.LiquidityPoolId); err != nil {
		return errors.WithField(err, "LiquidityPoolId")
	}
	if _, err := amount.Parse(l.MaxAmountA); err != nil {
		return errors.WithField(err, "MaxAmountA")
	}
	if _, err := amount.Parse(l.MaxAmountB); err != nil {
		return errors.WithField(err, "MaxAmountB")
	}
	return validateSourceAccount(l.SourceAccount)
}

func (l *LiquidityPoolDeposit) GetSourceAccount() string { return l.SourceAccount }

// LiquidityPoolWithdraw redeems Amount pool shares for at least
// MinAmountA/MinAmountB of the pool's underlying reserves.
type LiquidityPoolWithdraw struct {
	LiquidityPoolId string
	Amount          string
	MinAmountA      string
	MinAmountB      string
	SourceAccount   string
}

func (l *LiquidityPoolWithdraw) BuildXDR() (xdr.Operation, error) {
	id, err := liquidityPoolIdFromHex(l.LiquidityPoolId)
	if err != nil {
		return xdr.Operation{}, err
	}
	amt, err := amount.Parse(l.Amount)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse Amount")
	}
	minA, err := amount.Parse(l.MinAmountA)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse MinAmountA")
	}
	minB, err := amount.Parse(l.MinAmountB)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse MinAmountB")
	}
	xdrOp := xdr.LiquidityPoolWithdrawOp{LiquidityPoolId: id, Amount: xdr.Int64(amt), MinAmountA: xdr.Int64(minA), MinAmountB: xdr.Int64(minB)}
	body, err := xdr.NewOperationBody(xdr.OperationTypeLiquidityPoolWithdraw, xdrOp)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, l.SourceAccount)
	return op, nil
}

func (l *LiquidityPoolWithdraw) FromXDR(xdrOp xdr.Operation) error {
	result, ok := xdrOp.Body.GetLiquidityPoolWithdrawOp()
	if !ok {
		return errors.New("error parsing liquidity_pool_withdraw operation from xdr")
	}
	l.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	l.LiquidityPoolId = hex.EncodeToString(result.LiquidityPoolId[:])
	l.Amount = amount.String(int64(result.Amount))
	l.MinAmountA = amount.String(int64(result.MinAmountA))
	l.MinAmountB = amount.String(int64(result.MinAmountB))
	return nil
}

func (l *LiquidityPoolWithdraw) Validate() error {
	if _, err := liquidityPoolIdFromHex(l.LiquidityPoolId); err != nil {
		return errors.WithField(err, "LiquidityPoolId")
	}
	if _, err := amount.Parse(l.Amount); err != nil {
		return errors.WithField(err, "Amount")
	}
	return validateSourceAccount(l.SourceAccount)
}

func (l *LiquidityPoolWithdraw) GetSourceAccount() string { return l.SourceAccount }
