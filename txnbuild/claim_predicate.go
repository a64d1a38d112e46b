package txnbuild

import "github.com/stellar/go-stellar-sdk/xdr"

// NewClaimPredicateUnconditional builds a predicate that is always
// satisfied.
func NewClaimPredicateUnconditional() xdr.ClaimPredicate {
	return xdr.ClaimPredicate{Type: xdr.ClaimPredicateTypeClaimPredicateUnconditional}
}

// NewClaimPredicateAnd is satisfied when every predicate in preds is.
func NewClaimPredicateAnd(preds ...xdr.ClaimPredicate) xdr.ClaimPredicate {
	return xdr.ClaimPredicate{Type: xdr.ClaimPredicateTypeClaimPredicateAnd, AndPredicates: &preds}
}

// NewClaimPredicateOr is satisfied when any predicate in preds is.
func NewClaimPredicateOr(preds ...xdr.ClaimPredicate) xdr.ClaimPredicate {
	return xdr.ClaimPredicate{Type: xdr.ClaimPredicateTypeClaimPredicateOr, OrPredicates: &preds}
}

// NewClaimPredicateNot is satisfied when pred is not.
func NewClaimPredicateNot(pred xdr.ClaimPredicate) xdr.ClaimPredicate {
	return xdr.ClaimPredicate{Type: xdr.ClaimPredicateTypeClaimPredicateNot, NotPredicate: &pred}
}

// NewClaimPredicateBeforeAbsoluteTime is satisfied before the given Unix
// timestamp.
func NewClaimPredicateBeforeAbsoluteTime(unixTime int64) xdr.ClaimPredicate {
	t := xdr.Int64(unixTime)
	return xdr.ClaimPredicate{Type: xdr.ClaimPredicateTypeClaimPredicateBeforeAbsoluteTime, AbsBefore: &t}
}

// NewClaimPredicateBeforeRelativeTime is satisfied within seconds of the
// claimable balance's creation.
func NewClaimPredicateBeforeRelativeTime(seconds int64) xdr.ClaimPredicate {
	t := xdr.Int64(seconds)
	return xdr.ClaimPredicate{Type: xdr.ClaimPredicateTypeClaimPredicateBeforeRelativeTime, RelBefore: &t}
}
