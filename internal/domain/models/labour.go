package models

// Phase tags which labour bucket a recipe assignment belongs to.
type Phase string

const (
	PhaseProduction Phase = "production"
	PhasePacking    Phase = "packing"
)

// Valid reports whether p is one of the two known phases.
func (p Phase) Valid() bool {
	return p == PhaseProduction || p == PhasePacking
}

// Labour is a worker with a daily salary.
type Labour struct {
	ID           string  `bson:"_id" json:"id"`
	Code         string  `bson:"code" json:"code"`
	Name         string  `bson:"name" json:"name"`
	Department   string  `bson:"department" json:"department"`
	SalaryPerDay float64 `bson:"salary_per_day" json:"salary_per_day"`
}

// RecipeLabour attaches a labour record to a recipe. SalaryPerDay is a snapshot
// taken at attach time; later salary changes do not reprice the recipe.
type RecipeLabour struct {
	ID           string  `bson:"_id" json:"id"`
	RecipeID     string  `bson:"recipe_id" json:"recipe_id"`
	LabourID     string  `bson:"labour_id" json:"labour_id"`
	Type         Phase   `bson:"type" json:"type"`
	SalaryPerDay float64 `bson:"salary_per_day" json:"salary_per_day"`
}
