package recipes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Hardik699/Hanuram1-sub001/internal/costing"
	"github.com/Hardik699/Hanuram1-sub001/internal/domain/models"
	"github.com/Hardik699/Hanuram1-sub001/internal/repository/mongodb"
)

// Store is the persistence surface the recipe service needs.
type Store interface {
	GetUnit(ctx context.Context, id string) (models.Unit, error)
	SaveUnit(ctx context.Context, unit models.Unit) error
	SaveUnitConversion(ctx context.Context, conv models.UnitConversion) error
	ListUnitConversions(ctx context.Context) ([]models.UnitConversion, error)

	SaveRawMaterial(ctx context.Context, material models.RawMaterial) error
	GetRawMaterial(ctx context.Context, id string) (models.RawMaterial, error)

	SaveRecipe(ctx context.Context, recipe models.Recipe) error
	GetRecipe(ctx context.Context, id string) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error

	SaveLabour(ctx context.Context, labour models.Labour) error
	GetLabour(ctx context.Context, id string) (models.Labour, error)
	AddRecipeLabour(ctx context.Context, entry models.RecipeLabour) error
	ListRecipeLabour(ctx context.Context, recipeID string, phase models.Phase) ([]models.RecipeLabour, error)

	AddPackagingCost(ctx context.Context, entry models.PackagingCost) error
	ListPackagingCosts(ctx context.Context, recipeID string) ([]models.PackagingCost, error)
}

// OpCostSource resolves the operating cost per unit for a month.
type OpCostSource interface {
	Effective(ctx context.Context, month, year int) (float64, bool, error)
}

// CreateRecipeInput carries the fields a new recipe starts from.
type CreateRecipeInput struct {
	Code          string
	Name          string
	BatchSize     float64
	UnitID        string
	YieldQuantity float64
	CreatedBy     string
}

// AddItemInput describes one raw-material line. A nil Price defaults to the
// raw material's last added price; an empty UnitID means the material's unit.
type AddItemInput struct {
	RawMaterialID string
	Quantity      float64
	UnitID        string
	Price         *float64
}

// PackagingInput describes a packaging cost entry.
type PackagingInput struct {
	Type     string
	Cost     float64
	Quantity float64
}

// Service manages recipes and derives their cost breakdowns.
type Service struct {
	store   Store
	opcosts OpCostSource
	logger  *zap.Logger
	now     func() time.Time
}

// NewService wires a new recipe service instance. opcosts may be nil, in which
// case LandedCost is unavailable.
func NewService(store Store, opcosts OpCostSource, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:   store,
		opcosts: opcosts,
		logger:  logger,
		now:     time.Now,
	}
}

// SaveUnit stores a unit of measure, assigning an id when missing.
func (s *Service) SaveUnit(ctx context.Context, unit models.Unit) (models.Unit, error) {
	if err := required("name", unit.Name); err != nil {
		return models.Unit{}, err
	}
	if unit.ID == "" {
		unit.ID = uuid.NewString()
	}
	if err := s.store.SaveUnit(ctx, unit); err != nil {
		return models.Unit{}, fmt.Errorf("save unit: %w", err)
	}
	return unit, nil
}

// SaveUnitConversion stores a directional conversion factor.
func (s *Service) SaveUnitConversion(ctx context.Context, conv models.UnitConversion) error {
	if err := validateConversion(conv); err != nil {
		return err
	}
	if err := s.store.SaveUnitConversion(ctx, conv); err != nil {
		return fmt.Errorf("save unit conversion: %w", err)
	}
	return nil
}

// ConvertQuantity converts quantity using the stored conversions. The boolean
// is false when no conversion exists and the quantity was passed through.
func (s *Service) ConvertQuantity(ctx context.Context, quantity float64, fromUnitID, toUnitID string) (float64, bool, error) {
	conversions, err := s.store.ListUnitConversions(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("load unit conversions: %w", err)
	}
	converted, ok := costing.TryConvert(quantity, fromUnitID, toUnitID, conversions)
	if !ok {
		s.logger.Warn("unit conversion missing, quantity passed through",
			zap.String("from_unit", fromUnitID), zap.String("to_unit", toUnitID))
	}
	return converted, ok, nil
}

// SaveRawMaterial stores a raw material, assigning an id when missing.
func (s *Service) SaveRawMaterial(ctx context.Context, material models.RawMaterial) (models.RawMaterial, error) {
	if err := validateRawMaterial(material); err != nil {
		return models.RawMaterial{}, err
	}
	if material.ID == "" {
		material.ID = uuid.NewString()
	}
	if err := s.store.SaveRawMaterial(ctx, material); err != nil {
		return models.RawMaterial{}, fmt.Errorf("save raw material: %w", err)
	}
	return material, nil
}

// SaveLabour stores a labour record, assigning an id when missing.
func (s *Service) SaveLabour(ctx context.Context, labour models.Labour) (models.Labour, error) {
	if err := validateLabour(labour); err != nil {
		return models.Labour{}, err
	}
	if labour.ID == "" {
		labour.ID = uuid.NewString()
	}
	if err := s.store.SaveLabour(ctx, labour); err != nil {
		return models.Labour{}, fmt.Errorf("save labour: %w", err)
	}
	return labour, nil
}

// CreateRecipe stores a new recipe with no items.
func (s *Service) CreateRecipe(ctx context.Context, in CreateRecipeInput) (models.Recipe, error) {
	if err := validateRecipe(in); err != nil {
		return models.Recipe{}, err
	}

	recipe := models.Recipe{
		ID:            uuid.NewString(),
		Code:          in.Code,
		Name:          in.Name,
		BatchSize:     in.BatchSize,
		UnitID:        in.UnitID,
		YieldQuantity: in.YieldQuantity,
		Items:         []models.RecipeItem{},
		CreatedBy:     in.CreatedBy,
		UpdatedAt:     s.now().UTC(),
	}
	if err := s.store.SaveRecipe(ctx, recipe); err != nil {
		return models.Recipe{}, fmt.Errorf("create recipe: %w", err)
	}

	s.logger.Info("recipe created", zap.String("recipe_id", recipe.ID), zap.String("created_by", in.CreatedBy))
	return recipe, nil
}

// GetRecipe loads a recipe.
func (s *Service) GetRecipe(ctx context.Context, id string) (models.Recipe, error) {
	recipe, err := s.store.GetRecipe(ctx, id)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("load recipe %s: %w", id, err)
	}
	return recipe, nil
}

// DeleteRecipe removes a recipe with the labour and packaging entries it owns.
func (s *Service) DeleteRecipe(ctx context.Context, id string) error {
	if err := s.store.DeleteRecipe(ctx, id); err != nil {
		return fmt.Errorf("delete recipe %s: %w", id, err)
	}
	s.logger.Info("recipe deleted", zap.String("recipe_id", id))
	return nil
}

// AddItem appends a raw-material line to a recipe and refreshes the recipe's
// raw-material totals. Quantities in a unit other than the material's are
// converted to the material's unit before pricing.
func (s *Service) AddItem(ctx context.Context, recipeID string, in AddItemInput) (models.Recipe, error) {
	if err := required("raw_material_id", in.RawMaterialID); err != nil {
		return models.Recipe{}, err
	}
	if err := positive("quantity", in.Quantity); err != nil {
		return models.Recipe{}, err
	}

	recipe, err := s.GetRecipe(ctx, recipeID)
	if err != nil {
		return models.Recipe{}, err
	}

	material, err := s.store.GetRawMaterial(ctx, in.RawMaterialID)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("load raw material %s: %w", in.RawMaterialID, err)
	}

	price, err := itemPrice(in.Price, material)
	if err != nil {
		return models.Recipe{}, err
	}

	quantity := in.Quantity
	if in.UnitID != "" && in.UnitID != material.UnitID {
		quantity, _, err = s.ConvertQuantity(ctx, in.Quantity, in.UnitID, material.UnitID)
		if err != nil {
			return models.Recipe{}, err
		}
	}

	total, err := costing.LineTotal(quantity, price)
	if err != nil {
		return models.Recipe{}, err
	}

	recipe.Items = append(recipe.Items, models.RecipeItem{
		RawMaterialID: material.ID,
		Quantity:      quantity,
		UnitID:        material.UnitID,
		Price:         price,
		TotalPrice:    total,
	})
	refreshTotals(&recipe)
	recipe.UpdatedAt = s.now().UTC()

	if err := s.store.SaveRecipe(ctx, recipe); err != nil {
		return models.Recipe{}, fmt.Errorf("save recipe %s: %w", recipe.ID, err)
	}
	return recipe, nil
}

// AttachLabour assigns a labour record to a recipe phase, snapshotting the
// current daily salary.
func (s *Service) AttachLabour(ctx context.Context, recipeID, labourID string, phase models.Phase) (models.RecipeLabour, error) {
	if !phase.Valid() {
		return models.RecipeLabour{}, invalid("type must be %q or %q", models.PhaseProduction, models.PhasePacking)
	}
	if _, err := s.GetRecipe(ctx, recipeID); err != nil {
		return models.RecipeLabour{}, err
	}

	labour, err := s.store.GetLabour(ctx, labourID)
	if err != nil {
		return models.RecipeLabour{}, fmt.Errorf("load labour %s: %w", labourID, err)
	}

	entry := models.RecipeLabour{
		ID:           uuid.NewString(),
		RecipeID:     recipeID,
		LabourID:     labour.ID,
		Type:         phase,
		SalaryPerDay: labour.SalaryPerDay,
	}
	if err := s.store.AddRecipeLabour(ctx, entry); err != nil {
		return models.RecipeLabour{}, fmt.Errorf("attach labour: %w", err)
	}
	return entry, nil
}

// AddPackagingCost records a packaging cost against a recipe.
func (s *Service) AddPackagingCost(ctx context.Context, recipeID string, in PackagingInput) (models.PackagingCost, error) {
	if err := validatePackaging(in); err != nil {
		return models.PackagingCost{}, err
	}
	if _, err := s.GetRecipe(ctx, recipeID); err != nil {
		return models.PackagingCost{}, err
	}

	entry := models.PackagingCost{
		ID:       uuid.NewString(),
		RecipeID: recipeID,
		Type:     in.Type,
		Cost:     in.Cost,
		Quantity: in.Quantity,
	}
	if err := s.store.AddPackagingCost(ctx, entry); err != nil {
		return models.PackagingCost{}, fmt.Errorf("add packaging cost: %w", err)
	}
	return entry, nil
}

// Breakdown loads a recipe with its labour and packaging entries and computes
// its per-unit cost.
func (s *Service) Breakdown(ctx context.Context, recipeID string) (models.CostBreakdown, error) {
	recipe, err := s.GetRecipe(ctx, recipeID)
	if err != nil {
		return models.CostBreakdown{}, err
	}

	production, err := s.store.ListRecipeLabour(ctx, recipeID, models.PhaseProduction)
	if err != nil {
		return models.CostBreakdown{}, fmt.Errorf("load production labour: %w", err)
	}
	packing, err := s.store.ListRecipeLabour(ctx, recipeID, models.PhasePacking)
	if err != nil {
		return models.CostBreakdown{}, fmt.Errorf("load packing labour: %w", err)
	}
	packaging, err := s.store.ListPackagingCosts(ctx, recipeID)
	if err != nil {
		return models.CostBreakdown{}, fmt.Errorf("load packaging costs: %w", err)
	}

	return costing.Compute(costing.BreakdownInput{
		BatchSize:            recipe.BatchSize,
		OutputQuantity:       recipe.YieldQuantity,
		UnitName:             s.unitName(ctx, recipe.UnitID),
		TotalRawMaterialCost: recipe.TotalRawMaterialCost,
		RawMaterialItems:     recipe.Items,
		ProductionLabour:     production,
		PackingLabour:        packing,
		PackagingCosts:       packaging,
	}), nil
}

// LandedCost reports the recipe breakdown next to the month's operating cost
// per unit. A month with no operating cost entry contributes zero.
func (s *Service) LandedCost(ctx context.Context, recipeID string, month, year int) (models.LandedCost, error) {
	if s.opcosts == nil {
		return models.LandedCost{}, errors.New("operating cost source not configured")
	}

	breakdown, err := s.Breakdown(ctx, recipeID)
	if err != nil {
		return models.LandedCost{}, err
	}

	opCost, manual, err := s.opcosts.Effective(ctx, month, year)
	switch {
	case errors.Is(err, mongodb.ErrNotFound):
		s.logger.Debug("no operating cost for month", zap.Int("month", month), zap.Int("year", year))
		opCost, manual = 0, false
	case err != nil:
		return models.LandedCost{}, fmt.Errorf("load operating cost: %w", err)
	}

	return models.LandedCost{
		Breakdown:       breakdown,
		Month:           month,
		Year:            year,
		OpCostPerUnit:   opCost,
		OpCostManual:    manual,
		TotalWithOpCost: costing.Round2(breakdown.GrandTotalCostPerUnit + opCost),
	}, nil
}

func (s *Service) unitName(ctx context.Context, unitID string) string {
	if unitID == "" {
		return ""
	}
	unit, err := s.store.GetUnit(ctx, unitID)
	if err != nil {
		s.logger.Debug("unit lookup failed, using id as name", zap.String("unit_id", unitID), zap.Error(err))
		return unitID
	}
	if unit.ShortCode != "" {
		return unit.ShortCode
	}
	return unit.Name
}

func itemPrice(explicit *float64, material models.RawMaterial) (float64, error) {
	switch {
	case explicit != nil:
		if err := nonNegative("price", *explicit); err != nil {
			return 0, err
		}
		return *explicit, nil
	case material.LastAddedPrice != nil:
		return *material.LastAddedPrice, nil
	default:
		return 0, invalid("price is required: raw material %s has no last added price", material.ID)
	}
}

// refreshTotals restores the recipe's raw-material invariants from its items.
func refreshTotals(recipe *models.Recipe) {
	recipe.TotalRawMaterialCost = costing.AggregateItems(recipe.Items)
	recipe.PricePerUnit = costing.CostPerUnit(recipe.TotalRawMaterialCost, recipe.YieldQuantity)
}
