// Package costing computes recipe and operating costs from data already loaded
// by the caller. Every function is pure: no I/O, no shared state.
package costing

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput marks numeric input that cannot be costed, such as a negative
// quantity or price. Missing or zero supporting data is never an error.
var ErrInvalidInput = errors.New("invalid input")

// Round2 rounds v to two decimal places, half away from zero.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// CostPerUnit divides total by outputQuantity and rounds the result. A
// non-positive outputQuantity yields 0.
func CostPerUnit(total, outputQuantity float64) float64 {
	if outputQuantity <= 0 || !finite(total) || !finite(outputQuantity) {
		return 0
	}
	q := decimal.NewFromFloat(total).Div(decimal.NewFromFloat(outputQuantity))
	return q.Round(2).InexactFloat64()
}

// sum adds values exactly and rounds once at the end.
func sum(values []float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		if !finite(v) {
			continue
		}
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.Round(2).InexactFloat64()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
