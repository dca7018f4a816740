package utils

import (
	"fmt"
	"math"

	"github.com/SscSPs/coin_vault_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

var maxAtomic = decimal.NewFromInt(math.MaxInt64)

// ToAtomicUnits converts a display amount into atomic currency units.
// Example: 12.34 with 2 digits returns 1234
// Example: 12 with 0 digits returns 12
// Amounts that are negative, finer than the currency allows, or too large are rejected.
func ToAtomicUnits(amount decimal.Decimal, digits int) (int64, error) {
	if amount.IsNegative() {
		return 0, fmt.Errorf("%w: amount %s is negative", apperrors.ErrInvalidAmount, amount)
	}
	shifted := amount.Shift(int32(digits))
	if !shifted.Equal(shifted.Truncate(0)) {
		return 0, fmt.Errorf("%w: amount %s has more than %d fractional digits", apperrors.ErrInvalidAmount, amount, digits)
	}
	if shifted.GreaterThan(maxAtomic) {
		return 0, fmt.Errorf("%w: amount %s is too large", apperrors.ErrInvalidAmount, amount)
	}
	return shifted.IntPart(), nil
}

// FromAtomicUnits converts atomic units back to a display amount.
func FromAtomicUnits(units int64, digits int) decimal.Decimal {
	return decimal.New(units, -int32(digits))
}

// FormatAtomicUnits renders atomic units with exactly digits fractional digits.
// Example: 1234 with 2 digits returns "12.34"
func FormatAtomicUnits(units int64, digits int) string {
	return FromAtomicUnits(units, digits).StringFixed(int32(digits))
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
