package txnbuild

import (
	"github.com/stellar/go-stellar-sdk/support/errors"
	"github.com/stellar/go-stellar-sdk/xdr"
)

// SetOptions adjusts an account's inflation destination, flags, thresholds,
// home domain, and signers. All fields are optional; a nil pointer means
// "leave unchanged."
type SetOptions struct {
	InflationDestination *string
	ClearFlags           *uint32
	SetFlags             *uint32
	MasterWeight         *uint32
	LowThreshold         *uint32
	MediumThreshold      *uint32
	HighThreshold        *uint32
	HomeDomain           *string
	Signer               *Signer
	SourceAccount        string
}

func uint32Ptr(v *uint32) *xdr.Uint32 {
	if v == nil {
		return nil
	}
	x := xdr.Uint32(*v)
	return &x
}

func (s *SetOptions) BuildXDR() (xdr.Operation, error) {
	xdrOp := xdr.SetOptionsOp{
		ClearFlags: uint32Ptr(s.ClearFlags), SetFlags: uint32Ptr(s.SetFlags),
		MasterWeight: uint32Ptr(s.MasterWeight), LowThreshold: uint32Ptr(s.LowThreshold),
		MedThreshold: uint32Ptr(s.MediumThreshold), HighThreshold: uint32Ptr(s.HighThreshold),
		HomeDomain: s.HomeDomain,
	}
	if s.InflationDestination != nil {
		dest, err := xdr.AddressToAccountId(*s.InflationDestination)
		if err != nil {
			return xdr.Operation{}, errors.Wrap(err, "failed to parse inflation destination")
		}
		xdrOp.InflationDest = &dest
	}
	if s.HomeDomain != nil && len(*s.HomeDomain) > 32 {
		return xdr.Operation{}, errors.New("home domain exceeds 32 bytes")
	}
	if s.Signer != nil {
		signer, err := s.Signer.toXDR()
		if err != nil {
			return xdr.Operation{}, errors.Wrap(err, "failed to parse signer")
		}
		xdrOp.Signer = &signer
	}

	body, err := xdr.NewOperationBody(xdr.OperationTypeSetOptions, xdrOp)
	if err != nil {
		return xdr.Operation{}, errors.Wrap(err, "failed to build XDR Operation")
	}
	op := xdr.Operation{Body: body}
	SetOpSourceAccount(&op, s.SourceAccount)
	return op, nil
}

func (s *SetOptions) FromXDR(xdrOp xdr.Operation) error {
	result, ok := xdrOp.Body.GetSetOptionsOp()
	if !ok {
		return errors.New("error parsing set_options operation from xdr")
	}
	s.SourceAccount = accountFromXDR(xdrOp.SourceAccount)
	if result.InflationDest != nil {
		addr := result.InflationDest.Address()
		s.InflationDestination = &addr
	}
	s.ClearFlags = uint32FromXDR(result.ClearFlags)
	s.SetFlags = uint32FromXDR(result.SetFlags)
	s.MasterWeight = uint32FromXDR(result.MasterWeight)
	s.LowThreshold = uint32FromXDR(result.LowThreshold)
	s.MediumThreshold = uint32FromXDR(result.MedThreshold)
	s.HighThreshold = uint32FromXDR(result.HighThreshold)
	s.HomeDomain = result.HomeDomain
	if result.Signer != nil {
		s.Signer = &Signer{Address: result.Signer.Key.Address(), Weight: uint32(result.Signer.Weight)}
	}
	return nil
}

func uint32FromXDR(v *xdr.Uint32) *uint32 {
	if v == nil {
		return nil
	}
	x := uint32(*v)
	return &x
}

func (s *SetOptions) Validate() error {
	if s.HomeDomain != nil && len(*s.HomeDomain) > 32 {
		return errors.WithField(errors.New("home domain must be at most 32 bytes"), "HomeDomain")
	}
	if s.InflationDestination != nil {
		if _, err := xdr.AddressToAccountId(*s.InflationDestination); err != nil {
			return errors.WithField(err, "InflationDestination")
		}
	}
	if s.Signer != nil {
		if _, err := s.Signer.toXDR(); err != nil {
			return errors.WithField(err, "Signer")
		}
	}
	return validateSourceAccount(s.SourceAccount)
}

func (s *SetOptions) GetSourceAccount() string { return s.SourceAccount }
