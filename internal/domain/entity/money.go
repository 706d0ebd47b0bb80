package entity

import (
	"github.com/shopspring/decimal"

	errs "github.com/amirhossein-jamali/finance-tracker/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// MaxAmount is the largest amount a decimal(12,2) column holds
var MaxAmount = decimal.RequireFromString("9999999999.99")

var hundred = decimal.NewFromInt(100)

// ValidatePositiveAmount checks that amount is greater than zero, at most
// MaxAmount, and has at most MaxDecimalPlaces decimal places. field names the
// request field for the error.
func ValidatePositiveAmount(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValidationError(field, "must be greater than zero")
	}
	return validateScale(field, amount)
}

// ValidateNonNegativeAmount is ValidatePositiveAmount that also accepts zero
func ValidateNonNegativeAmount(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValidationError(field, "cannot be negative")
	}
	return validateScale(field, amount)
}

func validateScale(field string, amount decimal.Decimal) error {
	if amount.GreaterThan(MaxAmount) {
		return errs.NewValidationError(field, "cannot exceed 9999999999.99")
	}
	if !amount.Equal(amount.Round(MaxDecimalPlaces)) {
		return errs.NewValidationError(field, "maximum 2 decimal places allowed")
	}
	return nil
}

// Percent returns part/whole*100, or 0 when whole is zero
func Percent(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(hundred).InexactFloat64()
}
