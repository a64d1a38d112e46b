package txnbuild

import (
	"encoding/hex"

	"github.com/stellar/go-stellar-sdk/amount"
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// CreateClaimableBalance locks Amount of Asset into a claimable balance
// that any of Claimants can later claim once its predicate is satisfied.
type CreateClaimableBalance struct {
	Asset         Asset
	Amount        string
	Claimants     []Claimant
	SourceAccount string
}

// Claimant pairs a destination account with the predicate that must hold
// for it to claim the balance.
type Claimant struct {
	Destination string
	Predicate   xdr.ClaimPredicate
}

func (c *CreateClaimableBalance) BuildXDR() (xdr.Operation, error) {
	if c.Asset == nil {
		return xdr.Operation{}, errAssetRequired
	}
	xdrAsset, err := buildAssetXDR(c.Asset)
	if err != nil {
		return xdr.Operation{}, err
	}
	xdrAmount, err := amount.Parse(c.Amount)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse Amount")
	}
	if len(c.Claimants) == 0 {
		return xdr.Operation{}, errors.New("at least one claimant is required")
	}
	claimants := make([]xdr.Claimant, len(c.Claimants))
	for i, claimant := range c.Claimants {
		dest, err := xdr.AddressToAccountId(claimant.Destination)
		if err != nil {
			return xdr.Operation{}, errors.Wrap(err, "failed to parse claimant destination")
		}
		claimants[i] = xdr.Claimant{
			Type: xdr.ClaimantTypeClaimantTypeV0,
			V0:   &xdr.ClaimantV0{Destination: dest, Predicate: claimant.Predicate},
		}
	}
	xdrOp := xdr.CreateClaimableBalanceOp{Asset: xdrAsset, Amount: xdr.Int64(xdrAmount), Claimants: claimants}
	body, err := xdr.NewOperationBody(xdr.OperationTypeCreateClaimableBalance, xdrOp)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, c.SourceAccount)
	return op, nil
}

func (c *CreateClaimableBalance) FromXDR(xdrOp xdr.Operation) error {
	result, ok := xdrOp.Body.GetCreateClaimableBalanceOp()
	if !ok {
		return errors.New("error parsing create_claimable_balance operation from xdr")
	}
	c.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	c.Asset = assetFromXDR(result.Asset)
	c.Amount = amount.String(int64(result.Amount))
	c.Claimants = make([]Claimant, len(result.Claimants))
	for i, claimant := range result.Claimants {
		if claimant.V0 == nil {
			return errors.New("unsupported claimant type")
		}
		c.Claimants[i] = Claimant{Destination: claimant.V0.Destination.Address(), Predicate: claimant.V0.Predicate}
	}
	return nil
}

func (c *CreateClaimableBalance) Validate() error {
	if c.Asset == nil {
		return errAssetRequired
	}
	if _, err := amount.Parse(c.Amount); err != nil {
		return errors.WithField(err, "Amount")
	}
	if len(c.Claimants) == 0 {
		return errors.New("at least one claimant is required")
	}
	return validateSourceAccount(c.SourceAccount)
}

func (c *CreateClaimableBalance) GetSourceAccount() string { return c.SourceAccount }

// ClaimClaimableBalance claims a claimable balance identified by its hex
// encoded BalanceId, crediting the source account.
type ClaimClaimableBalance struct {
	BalanceId     string
	SourceAccount string
}

func claimableBalanceIdFromHex(s string) (xdr.ClaimableBalanceId, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return xdr.ClaimableBalanceId{}, errors.Wrap(err, "failed to decode BalanceId")
	}
	var id xdr.ClaimableBalanceId
	if _, err := xdr.Unmarshal(raw, &id); err != nil {
		return xdr.ClaimableBalanceId{}, errors.Wrap(err, "failed to unmarshal BalanceId")
	}
	return id, nil
}

func claimableBalanceIdToHex(id xdr.ClaimableBalanceId) (string, error) {
	raw, err := xdr.Marshal(id)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

func (c *ClaimClaimableBalance) BuildXDR() (xdr.Operation, error) {
	id, err := claimableBalanceIdFromHex(c.BalanceId)
	if err != nil {
		return xdr.Operation{}, err
	}
	xdrOp := xdr.ClaimClaimableBalanceOp{BalanceId: id}
	body, err := xdr.NewOperationBody(xdr.OperationTypeClaimClaimableBalance, xdrOp)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, c.SourceAccount)
	return op, nil
}

func (c *ClaimClaimableBalance) FromXDR(xdrOp xdr.Operation) error {
	result, ok := xdrOp.Body.GetClaimClaimableBalanceOp()
	if !ok {
		return errors.New("error parsing claim_claimable_balance operation from xdr")
	}
	c.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	id, err := claimableBalanceIdToHex(result.BalanceId)
	if err != nil {
		return err
	}
	c.BalanceId = id
	return nil
}

func (c *ClaimClaimableBalance) Validate() error {
	if _, err := claimableBalanceIdFromHex(c.BalanceId); err != nil {
		return errors.WithField(err, "BalanceId")
	}
	return validateSourceAccount(c.SourceAccount)
}

func (c *ClaimClaimableBalance) GetSourceAccount() string { return c.SourceAccount }
