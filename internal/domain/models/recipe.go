package models

import "time"

// RecipeItem is one raw-material line of a recipe.
type RecipeItem struct {
	RawMaterialID string  `bson:"raw_material_id" json:"raw_material_id"`
	Quantity      float64 `bson:"quantity" json:"quantity"`
	UnitID        string  `bson:"unit_id" json:"unit_id"`
	Price         float64 `bson:"price" json:"price"`
	TotalPrice    float64 `bson:"total_price" json:"total_price"`
}

// Recipe is a bill of materials producing YieldQuantity units from a batch.
type Recipe struct {
	ID                   string       `bson:"_id" json:"id"`
	Code                 string       `bson:"code" json:"code"`
	Name                 string       `bson:"name" json:"name"`
	BatchSize            float64      `bson:"batch_size" json:"batch_size"`
	UnitID               string       `bson:"unit_id" json:"unit_id"`
	YieldQuantity        float64      `bson:"yield_quantity" json:"yield_quantity"`
	Items                []RecipeItem `bson:"items" json:"items"`
	TotalRawMaterialCost float64      `bson:"total_raw_material_cost" json:"total_raw_material_cost"`
	PricePerUnit         float64      `bson:"price_per_unit" json:"price_per_unit"`
	CreatedBy            string       `bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedAt            time.Time    `bson:"updated_at" json:"updated_at"`
}
