package costing

import "github.com/Hardik699/Hanuram1-sub001/internal/domain/models"

// AggregatePackaging sums entry costs. Each Cost is already a total, so
// Quantity does not take part.
func AggregatePackaging(entries []models.PackagingCost) float64 {
	values := make([]float64, 0, len(entries))
	for _, e := range entries {
		values = append(values, e.Cost)
	}
	return sum(values)
}
