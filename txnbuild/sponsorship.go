package txnbuild

import (
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// BeginSponsoringFutureReserves starts a sponsorship block in which the
// source account pays the base reserve for entries created or modified by
// SponsoredId, until a matching EndSponsoringFutureReserves closes it.
type BeginSponsoringFutureReserves struct {
	SponsoredId   string
	SourceAccount string
}

func (b *BeginSponsoringFutureReserves) BuildXDR() (xdr.Operation, error) {
	sponsored, err := xdr.AddressToAccountId(b.SponsoredId)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to parse SponsoredId")
	}
	xdrOp := xdr.BeginSponsoringFutureReservesOp{SponsoredId: sponsored}
	body, err := xdr.NewOperationBody(xdr.OperationTypeBeginSponsoringFutureReserves, xdrOp)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, b.SourceAccount)
	return op, nil
}

func (b *BeginSponsoringFutureReserves) FromXDR(xdrOp xdr.Operation) error {
	result, ok := xdrOp.Body.GetBeginSponsoringFutureReservesOp()
	if !ok {
		return errors.New("error parsing begin_sponsoring_future_reserves operation from xdr")
	}
	b.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	b.SponsoredId = result.SponsoredId.Address()
	return nil
}

func (b *BeginSponsoringFutureReserves) Validate() error {
	if _, err := xdr.AddressToAccountId(b.SponsoredId); err != nil {
		return errors.WithField(err, "SponsoredId")
	}
	return validateSourceAccount(b.SourceAccount)
}

func (b *BeginSponsoringFutureReserves) GetSourceAccount() string { return b.SourceAccount }

// EndSponsoringFutureReserves closes the sponsorship block opened on the
// sponsored account by a prior BeginSponsoringFutureReserves.
type EndSponsoringFutureReserves struct {
	SourceAccount string
}

func (e *EndSponsoringFutureReserves) BuildXDR() (xdr.Operation, error) {
	body, err := xdr.NewOperationBody(xdr.OperationTypeEndSponsoringFutureReserves, nil)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, e.SourceAccount)
	return op, nil
}

func (e *EndSponsoringFutureReserves) FromXDR(xdrOp xdr.Operation) error {
	if xdrOp.Body.Type != xdr.OperationTypeEndSponsoringFutureReserves {
		return errors.New("error parsing end_sponsoring_future_reserves operation from xdr")
	}
	e.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	return nil
}

func (e *EndSponsoringFutureReserves) Validate() error {
	return validateSourceAccount(e.SourceAccount)
}

func (e *EndSponsoringFutureReserves) GetSourceAccount() string { return e.SourceAccount }

// RevokeSponsorship removes the sponsorship of a ledger entry or of a
// signer. Exactly one of LedgerKey or Signer must be set.
type RevokeSponsorship struct {
	LedgerKey     *xdr.LedgerKey
	Signer        *RevokeSponsorshipSigner
	SourceAccount string
}

// RevokeSponsorshipSigner identifies a sponsored signer on an account.
type RevokeSponsorshipSigner struct {
	AccountId string
	SignerKey string
}

func (r *RevokeSponsorship) BuildXDR() (xdr.Operation, error) {
	xdrOp, err := r.toXDR()
	if err != nil {
		return xdr.Operation{}, err
	}
	body, err := xdr.NewOperationBody(xdr.OperationTypeRevokeSponsorship, xdrOp)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, r.SourceAccount)
	return op, nil
}

func (r *RevokeSponsorship) toXDR() (xdr.RevokeSponsorshipOp, error) {
	switch {
	case r.LedgerKey != nil && r.Signer != nil:
		return xdr.RevokeSponsorshipOp{}, errors.New("only one of LedgerKey or Signer may be set")
	case r.LedgerKey != nil:
		return xdr.RevokeSponsorshipOp{Type: xdr.RevokeSponsorshipTypeRevokeSponsorshipLedgerEntry, LedgerKey: r.LedgerKey}, nil
	case r.Signer != nil:
		accountId, err := xdr.AddressToAccountId(r.Signer.AccountId)
		if err != nil {
			return xdr.RevokeSponsorshipOp{}, errors.Wrap(err, "failed to parse Signer.AccountId")
		}
		signerKey, err := signerKeyFromAddress(r.Signer.SignerKey)
		if err != nil {
			return xdr.RevokeSponsorshipOp{}, errors.Wrap(err, "failed to parse Signer.SignerKey")
		}
		return xdr.RevokeSponsorshipOp{
			Type:   xdr.RevokeSponsorshipTypeRevokeSponsorshipSigner,
			Signer: &xdr.RevokeSponsorshipOpSigner{AccountId: accountId, SignerKey: signerKey},
		}, nil
	default:
		return xdr.RevokeSponsorshipOp{}, errors.New("one of LedgerKey or Signer is required")
	}
}

func (r *RevokeSponsorship) FromXDR(xdrOp xdr.Operation) error {
	result, ok := xdrOp.Body.GetRevokeSponsorshipOp()
	if !ok {
		return errors.New("error parsing revoke_sponsorship operation from xdr")
	}
	r.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	switch result.Type {
	case xdr.RevokeSponsorshipTypeRevokeSponsorshipLedgerEntry:
		r.LedgerKey = result.LedgerKey
		r.Signer = nil
	case xdr.RevokeSponsorshipTypeRevokeSponsorshipSigner:
		r.LedgerKey = nil
		r.Signer = &RevokeSponsorshipSigner{
			AccountId: result.Signer.AccountId.Address(),
			SignerKey: result.Signer.SignerKey.Address(),
		}
	default:
		return errors.Errorf("unsupported revoke sponsorship type %d", result.Type)
	}
	return nil
}

func (r *RevokeSponsorship) Validate() error {
	if _, err := r.toXDR(); err != nil {
		return err
	}
	return validateSourceAccount(r.SourceAccount)
}

func (r *RevokeSponsorship) GetSourceAccount() string { return r.SourceAccount }
