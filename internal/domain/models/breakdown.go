package models

// CostBreakdown is the per-unit landed cost of a recipe. It is derived on every
// request and never persisted.
type CostBreakdown struct {
	BatchSize      float64 `json:"batch_size"`
	OutputQuantity float64 `json:"output_quantity"`
	UnitName       string  `json:"unit_name"`

	TotalRawMaterialCost  float64 `json:"total_raw_material_cost"`
	TotalProductionLabour float64 `json:"total_production_labour"`
	TotalPackingLabour    float64 `json:"total_packing_labour"`
	TotalPackagingCost    float64 `json:"total_packaging_cost"`

	RawMaterialCostPerUnit      float64 `json:"raw_material_cost_per_unit"`
	ProductionLabourCostPerUnit float64 `json:"production_labour_cost_per_unit"`
	PackingLabourCostPerUnit    float64 `json:"packing_labour_cost_per_unit"`
	PackagingCostPerUnit        float64 `json:"packaging_cost_per_unit"`
	GrandTotalCostPerUnit       float64 `json:"grand_total_cost_per_unit"`
}

// LandedCost reports a recipe breakdown next to the month's operating cost per
// unit. The operating cost stays a separate dimension: GrandTotalCostPerUnit in
// Breakdown is not changed by it.
type LandedCost struct {
	Breakdown       CostBreakdown `json:"breakdown"`
	Month           int           `json:"month"`
	Year            int           `json:"year"`
	OpCostPerUnit   float64       `json:"op_cost_per_unit"`
	OpCostManual    bool          `json:"op_cost_manual"`
	TotalWithOpCost float64       `json:"total_with_op_cost"`
}
