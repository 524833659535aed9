package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundWithTwoDecimalPlace arredonda percentuais exibidos no painel. NaN e infinitos viram zero.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}
