package txnbuild

import "github.com/stellar/go-stellar-sdk/support/errors"

var (
	errAssetRequired       = errors.New("asset is required")
	errDestinationRequired = errors.New("destination is required")
	errAmountRequired      = errors.New("amount must be a positive stroop value")
	errNoOperations        = errors.New("transaction requires at least one operation")
	errTooManyOperations   = errors.New("transaction accepts at most 100 operations")
)
