package costing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Hardik699/Hanuram1-sub001/internal/domain/models"
)

// LineTotal returns the rounded extended cost of a raw-material line.
func LineTotal(quantity, unitPrice float64) (float64, error) {
	if quantity < 0 || !finite(quantity) {
		return 0, fmt.Errorf("quantity %v: %w", quantity, ErrInvalidInput)
	}
	if unitPrice < 0 || !finite(unitPrice) {
		return 0, fmt.Errorf("unit price %v: %w", unitPrice, ErrInvalidInput)
	}
	total := decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(unitPrice))
	return total.Round(2).InexactFloat64(), nil
}

// AggregateItems sums the line totals of items.
func AggregateItems(items []models.RecipeItem) float64 {
	values := make([]float64, 0, len(items))
	for _, item := range items {
		values = append(values, item.TotalPrice)
	}
	return sum(values)
}
