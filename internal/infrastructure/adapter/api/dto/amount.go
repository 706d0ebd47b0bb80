package dto

import (
	"math"

	"github.com/shopspring/decimal"
)

// Amount renders a stored amount as a JSON number
func Amount(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// Percentage rounds a percentage to two decimal places
func Percentage(p float64) float64 {
	return math.Round(p*100) / 100
}
