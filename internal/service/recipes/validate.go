package recipes

import (
	"fmt"
	"math"

	"github.com/Hardik699/Hanuram1-sub001/internal/costing"
	"github.com/Hardik699/Hanuram1-sub001/internal/domain/models"
)

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", costing.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func nonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return invalid("%s must be a non-negative number", field)
	}
	return nil
}

func positive(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return invalid("%s must be greater than zero", field)
	}
	return nil
}

func required(field, v string) error {
	if v == "" {
		return invalid("%s is required", field)
	}
	return nil
}

func validateRecipe(in CreateRecipeInput) error {
	if err := required("name", in.Name); err != nil {
		return err
	}
	if err := positive("batch_size", in.BatchSize); err != nil {
		return err
	}
	return nonNegative("yield_quantity", in.YieldQuantity)
}

func validateConversion(conv models.UnitConversion) error {
	if err := required("from_unit_id", conv.FromUnitID); err != nil {
		return err
	}
	if err := required("to_unit_id", conv.ToUnitID); err != nil {
		return err
	}
	return positive("conversion_factor", conv.ConversionFactor)
}

func validateRawMaterial(m models.RawMaterial) error {
	if err := required("name", m.Name); err != nil {
		return err
	}
	if err := required("unit_id", m.UnitID); err != nil {
		return err
	}
	if m.LastAddedPrice != nil {
		return nonNegative("last_added_price", *m.LastAddedPrice)
	}
	return nil
}

func validateLabour(l models.Labour) error {
	if err := required("name", l.Name); err != nil {
		return err
	}
	return nonNegative("salary_per_day", l.SalaryPerDay)
}

func validatePackaging(in PackagingInput) error {
	if err := required("type", in.Type); err != nil {
		return err
	}
	if err := nonNegative("cost", in.Cost); err != nil {
		return err
	}
	return nonNegative("quantity", in.Quantity)
}
