package costing

import "github.com/Hardik699/Hanuram1-sub001/internal/domain/models"

// AggregateLabourByPhase sums the snapshotted daily salaries of entries in phase.
// One day of assigned labour is attributed in full to one batch.
func AggregateLabourByPhase(entries []models.RecipeLabour, phase models.Phase) float64 {
	var values []float64
	for _, e := range entries {
		if e.Type != phase {
			continue
		}
		values = append(values, e.SalaryPerDay)
	}
	return sum(values)
}
