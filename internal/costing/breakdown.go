package costing

import "github.com/Hardik699/Hanuram1-sub001/internal/domain/models"

// BreakdownInput is the snapshot a recipe breakdown is computed from.
// TotalRawMaterialCost is optional; when zero it is recomputed from
// RawMaterialItems.
type BreakdownInput struct {
	BatchSize            float64
	OutputQuantity       float64
	UnitName             string
	TotalRawMaterialCost float64
	RawMaterialItems     []models.RecipeItem
	ProductionLabour     []models.RecipeLabour
	PackingLabour        []models.RecipeLabour
	PackagingCosts       []models.PackagingCost
}

// Compute builds the per-unit cost breakdown. It never fails: empty inputs and
// a zero output quantity contribute zero.
func Compute(in BreakdownInput) models.CostBreakdown {
	rawTotal := Round2(in.TotalRawMaterialCost)
	if rawTotal == 0 {
		rawTotal = AggregateItems(in.RawMaterialItems)
	}

	production := AggregateLabourByPhase(in.ProductionLabour, models.PhaseProduction)
	packing := AggregateLabourByPhase(in.PackingLabour, models.PhasePacking)
	packaging := AggregatePackaging(in.PackagingCosts)

	out := models.CostBreakdown{
		BatchSize:      in.BatchSize,
		OutputQuantity: in.OutputQuantity,
		UnitName:       in.UnitName,

		TotalRawMaterialCost:  rawTotal,
		TotalProductionLabour: production,
		TotalPackingLabour:    packing,
		TotalPackagingCost:    packaging,

		RawMaterialCostPerUnit:      CostPerUnit(rawTotal, in.OutputQuantity),
		ProductionLabourCostPerUnit: CostPerUnit(production, in.OutputQuantity),
		PackingLabourCostPerUnit:    CostPerUnit(packing, in.OutputQuantity),
		PackagingCostPerUnit:        CostPerUnit(packaging, in.OutputQuantity),
	}

	// The grand total adds the already rounded components.
	out.GrandTotalCostPerUnit = sum([]float64{
		out.RawMaterialCostPerUnit,
		out.ProductionLabourCostPerUnit,
		out.PackingLabourCostPerUnit,
		out.PackagingCostPerUnit,
	})
	return out
}
