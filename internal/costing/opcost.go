package costing

import "github.com/Hardik699/Hanuram1-sub001/internal/domain/models"

// TotalMonthlyCost sums every operating expense field.
func TotalMonthlyCost(costs models.OpCosts) float64 {
	return sum(costs.Fields())
}

// TotalProduction sums the month's mithai and namkeen output.
func TotalProduction(production models.OpProduction) float64 {
	return sum([]float64{production.MithaiProduction, production.NamkeenProduction})
}

// AutoCostPerUnit spreads totalCost across totalProduction.
func AutoCostPerUnit(totalCost, totalProduction float64) float64 {
	return CostPerUnit(totalCost, totalProduction)
}

// AutoCostPerUnitFor derives the automatic figure of entry from its own costs
// and production.
func AutoCostPerUnitFor(entry models.OpCostEntry) float64 {
	return AutoCostPerUnit(TotalMonthlyCost(entry.Costs), TotalProduction(entry.Production))
}

// UsesManualOpCost reports whether entry resolves to its manual override. The
// flag alone is not enough: the override must hold a finite number.
func UsesManualOpCost(entry models.OpCostEntry) bool {
	return entry.UseManualOpCost && entry.ManualOpCostPerKg != nil && finite(*entry.ManualOpCostPerKg)
}

// EffectiveCostPerUnit returns the manual override when it is in force and the
// automatic figure otherwise.
func EffectiveCostPerUnit(entry models.OpCostEntry) float64 {
	if UsesManualOpCost(entry) {
		return *entry.ManualOpCostPerKg
	}
	return AutoCostPerUnitFor(entry)
}
