// Package shared provides validation rules common to the stock aggregates.
package shared

import (
	"fmt"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// QuantityScale is the number of fractional digits stored for quantities
// (DECIMAL(10,3)).
const QuantityScale = 3

// MaxQuantity is the largest quantity a DECIMAL(10,3) column holds.
var MaxQuantity = decimal.RequireFromString("9999999.999")

// MaxTextLength is the character limit of the VARCHAR(255) text columns.
const MaxTextLength = 255

// ValidateQuantity checks that q is strictly positive and fits the stored
// precision, so it round-trips unchanged.
func ValidateQuantity(field string, q decimal.Decimal) error {
	if !q.IsPositive() {
		return fmt.Errorf("%s must be greater than zero", field)
	}
	if !FitsQuantityScale(q) {
		return fmt.Errorf("%s supports at most %d decimal places", field, QuantityScale)
	}
	if q.GreaterThan(MaxQuantity) {
		return fmt.Errorf("%s must not exceed %s", field, MaxQuantity.String())
	}
	return nil
}

// FitsQuantityScale reports whether q has no significant digits beyond
// QuantityScale. Trailing zeros do not count.
func FitsQuantityScale(q decimal.Decimal) bool {
	return q.Equal(q.Truncate(QuantityScale))
}

// ValidateTextLength checks s against max counted in characters, not bytes.
func ValidateTextLength(field, s string, max int) error {
	if utf8.RuneCountInString(s) > max {
		return fmt.Errorf("%s exceeds maximum length of %d characters", field, max)
	}
	return nil
}
