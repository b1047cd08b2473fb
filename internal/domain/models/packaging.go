package models

// PackagingCost is an ad hoc packaging or handling charge on a recipe.
// Cost is already a total amount, not a unit price.
type PackagingCost struct {
	ID       string  `bson:"_id" json:"id"`
	RecipeID string  `bson:"recipe_id" json:"recipe_id"`
	Type     string  `bson:"type" json:"type"`
	Cost     float64 `bson:"cost" json:"cost"`
	Quantity float64 `bson:"quantity" json:"quantity"`
}
