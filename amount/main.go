// Package amount converts between the network's int64 stroop representation
// of an asset amount and the decimal string representation users and the
// rest of the SDK work with. One unit is 10,000,000 (1e7) stroops.
package amount

import (
	"github.com/shopspring/decimal"

	"github.com/stellar/go-stellar-sdk/support/errors"
)

// One stroop is ten-millionths of a unit.
const fractionDigits = 7

var stroopScale = decimal.New(1, fractionDigits)

// MaxAmount is the largest representable amount, matching the ledger's int64
// stroop ceiling.
const MaxAmount int64 = 9223372036854775807

// Parse converts a decimal string amount (e.g. "100.5") into its int64
// stroop representation. Returns an error for negative amounts, amounts with
// more than 7 fractional digits, or amounts that overflow int64 stroops.
func Parse(value string) (int64, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, errors.Wrap(err, "invalid amount")
	}
	if d.Sign() < 0 {
		return 0, errors.Errorf("amount %q must not be negative", value)
	}
	stroops := d.Mul(stroopScale)
	if !stroops.Equal(stroops.Truncate(0)) {
		return 0, errors.Errorf("amount %q has more than %d fractional digits", value, fractionDigits)
	}
	if !stroops.IsInteger() || stroops.GreaterThan(decimal.NewFromInt(MaxAmount)) {
		return 0, errors.Errorf("amount %q overflows int64 stroops", value)
	}
	return stroops.IntPart(), nil
}

// String renders an int64 stroop amount as a decimal string with up to 7
// fractional digits, trimmed of trailing zeros.
func String(stroops int64) string {
	d := decimal.New(stroops, -fractionDigits)
	return d.String()
}

// StringFromInt64 is an alias of String kept for callers porting code from
// SDKs that distinguish the two names.
func StringFromInt64(stroops int64) string { return String(stroops) }
