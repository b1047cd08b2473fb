package recipes

import (
	"context"

	"github.com/Hardik699/Hanuram1-sub001/internal/domain/models"
	"github.com/Hardik699/Hanuram1-sub001/internal/repository/mongodb"
)

type memoryStore struct {
	units       map[string]models.Unit
	conversions []models.UnitConversion
	materials   map[string]models.RawMaterial
	recipes     map[string]models.Recipe
	labour      map[string]models.Labour
	assigned    []models.RecipeLabour
	packaging   []models.PackagingCost
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		units:     map[string]models.Unit{},
		materials: map[string]models.RawMaterial{},
		recipes:   map[string]models.Recipe{},
		labour:    map[string]models.Labour{},
	}
}

func (m *memoryStore) SaveUnit(_ context.Context, unit models.Unit) error {
	m.units[unit.ID] = unit
	return nil
}

func (m *memoryStore) GetUnit(_ context.Context, id string) (models.Unit, error) {
	unit, ok := m.units[id]
	if !ok {
		return models.Unit{}, mongodb.ErrNotFound
	}
	return unit, nil
}

func (m *memoryStore) SaveUnitConversion(_ context.Context, conv models.UnitConversion) error {
	for i, c := range m.conversions {
		if c.FromUnitID == conv.FromUnitID && c.ToUnitID == conv.ToUnitID {
			m.conversions[i] = conv
			return nil
		}
	}
	m.conversions = append(m.conversions, conv)
	return nil
}

func (m *memoryStore) ListUnitConversions(_ context.Context) ([]models.UnitConversion, error) {
	return m.conversions, nil
}

func (m *memoryStore) SaveRawMaterial(_ context.Context, material models.RawMaterial) error {
	m.materials[material.ID] = material
	return nil
}

func (m *memoryStore) GetRawMaterial(_ context.Context, id string) (models.RawMaterial, error) {
	material, ok := m.materials[id]
	if !ok {
		return models.RawMaterial{}, mongodb.ErrNotFound
	}
	return material, nil
}

func (m *memoryStore) SaveRecipe(_ context.Context, recipe models.Recipe) error {
	m.recipes[recipe.ID] = recipe
	return nil
}

func (m *memoryStore) GetRecipe(_ context.Context, id string) (models.Recipe, error) {
	recipe, ok := m.recipes[id]
	if !ok {
		return models.Recipe{}, mongodb.ErrNotFound
	}
	return recipe, nil
}

func (m *memoryStore) DeleteRecipe(_ context.Context, id string) error {
	if _, ok := m.recipes[id]; !ok {
		return mongodb.ErrNotFound
	}
	delete(m.recipes, id)

	var keptLabour []models.RecipeLabour
	for _, e := range m.assigned {
		if e.RecipeID != id {
			keptLabour = append(keptLabour, e)
		}
	}
	m.assigned = keptLabour

	var keptPackaging []models.PackagingCost
	for _, e := range m.packaging {
		if e.RecipeID != id {
			keptPackaging = append(keptPackaging, e)
		}
	}
	m.packaging = keptPackaging
	return nil
}

func (m *memoryStore) SaveLabour(_ context.Context, labour models.Labour) error {
	m.labour[labour.ID] = labour
	return nil
}

func (m *memoryStore) GetLabour(_ context.Context, id string) (models.Labour, error) {
	labour, ok := m.labour[id]
	if !ok {
		return models.Labour{}, mongodb.ErrNotFound
	}
	return labour, nil
}

func (m *memoryStore) AddRecipeLabour(_ context.Context, entry models.RecipeLabour) error {
	m.assigned = append(m.assigned, entry)
	return nil
}

func (m *memoryStore) ListRecipeLabour(_ context.Context, recipeID string, phase models.Phase) ([]models.RecipeLabour, error) {
	var out []models.RecipeLabour
	for _, e := range m.assigned {
		if e.RecipeID == recipeID && e.Type == phase {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memoryStore) AddPackagingCost(_ context.Context, entry models.PackagingCost) error {
	m.packaging = append(m.packaging, entry)
	return nil
}

func (m *memoryStore) ListPackagingCosts(_ context.Context, recipeID string) ([]models.PackagingCost, error) {
	var out []models.PackagingCost
	for _, e := range m.packaging {
		if e.RecipeID == recipeID {
			out = append(out, e)
		}
	}
	return out, nil
}
