package costing

import (
	"errors"
	"math"
	"testing"

	"github.com/Hardik699/Hanuram1-sub001/internal/domain/models"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestConvert_IdentitySkipsLookup(t *testing.T) {
	conversions := []models.UnitConversion{{FromUnitID: "kg", ToUnitID: "kg", ConversionFactor: 7}}
	for _, q := range []float64{0, 1.5, 42, -3} {
		nearlyEqual(t, "identity", Convert(q, "kg", "kg", conversions), q)
	}
}

func TestConvert_UnknownPairPassesThrough(t *testing.T) {
	nearlyEqual(t, "unknown", Convert(5, "kg", "lb", nil), 5)

	q, ok := TryConvert(5, "kg", "lb", nil)
	if ok {
		t.Fatalf("expected missing conversion to be reported")
	}
	nearlyEqual(t, "unknown try", q, 5)
}

func TestConvert_AppliesFactorInExactDirectionOnly(t *testing.T) {
	conversions := []models.UnitConversion{{FromUnitID: "kg", ToUnitID: "g", ConversionFactor: 1000}}

	nearlyEqual(t, "kg->g", Convert(2, "kg", "g", conversions), 2000)

	// No reverse inference.
	if _, ok := TryConvert(2000, "g", "kg", conversions); ok {
		t.Fatalf("reverse conversion should not be inferred")
	}
}

func TestConvert_NoTransitiveChaining(t *testing.T) {
	conversions := []models.UnitConversion{
		{FromUnitID: "t", ToUnitID: "kg", ConversionFactor: 1000},
		{FromUnitID: "kg", ToUnitID: "g", ConversionFactor: 1000},
	}
	if _, ok := TryConvert(1, "t", "g", conversions); ok {
		t.Fatalf("conversion should not chain through kg")
	}
}

func TestLineTotal_RoundsHalfUp(t *testing.T) {
	got, err := LineTotal(3, 10.555)
	if err != nil {
		t.Fatalf("LineTotal returned error: %v", err)
	}
	nearlyEqual(t, "lineTotal", got, 31.67)

	got, err = LineTotal(2.5, 4)
	if err != nil {
		t.Fatalf("LineTotal returned error: %v", err)
	}
	nearlyEqual(t, "lineTotal", got, 10)
}

func TestLineTotal_RejectsNegatives(t *testing.T) {
	if _, err := LineTotal(-1, 10); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative quantity, got %v", err)
	}
	if _, err := LineTotal(1, -0.01); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative price, got %v", err)
	}
	if _, err := LineTotal(0, 0); err != nil {
		t.Fatalf("zero inputs should be accepted, got %v", err)
	}
}

func TestAggregations_EmptyIsZero(t *testing.T) {
	nearlyEqual(t, "items", AggregateItems(nil), 0)
	nearlyEqual(t, "labour", AggregateLabourByPhase(nil, models.PhaseProduction), 0)
	nearlyEqual(t, "packaging", AggregatePackaging([]models.PackagingCost{}), 0)
}

func TestAggregateItems_RoundsOnceAtEnd(t *testing.T) {
	items := []models.RecipeItem{{TotalPrice: 0.1}, {TotalPrice: 0.2}, {TotalPrice: 0.004}, {TotalPrice: 0.004}}
	nearlyEqual(t, "items", AggregateItems(items), 0.31)
}

func TestAggregateLabourByPhase_FiltersByPhase(t *testing.T) {
	entries := []models.RecipeLabour{
		{Type: models.PhaseProduction, SalaryPerDay: 500},
		{Type: models.PhasePacking, SalaryPerDay: 300},
		{Type: models.PhaseProduction, SalaryPerDay: 250.5},
	}
	nearlyEqual(t, "production", AggregateLabourByPhase(entries, models.PhaseProduction), 750.5)
	nearlyEqual(t, "packing", AggregateLabourByPhase(entries, models.PhasePacking), 300)
}

func TestLabourCostIsOneDayPerBatch(t *testing.T) {
	// A single day's salary is attributed to one batch's yield regardless of
	// how many days the batch actually takes.
	entries := []models.RecipeLabour{{Type: models.PhaseProduction, SalaryPerDay: 600}}
	total := AggregateLabourByPhase(entries, models.PhaseProduction)
	nearlyEqual(t, "per unit", CostPerUnit(total, 50), 12)
}

func TestAggregatePackaging_IgnoresQuantity(t *testing.T) {
	entries := []models.PackagingCost{{Cost: 40, Quantity: 10}, {Cost: 15.25, Quantity: 3}}
	nearlyEqual(t, "packaging", AggregatePackaging(entries), 55.25)
}

func TestCostPerUnit_ZeroOutputIsZero(t *testing.T) {
	nearlyEqual(t, "zero", CostPerUnit(100, 0), 0)
	nearlyEqual(t, "negative", CostPerUnit(100, -5), 0)
	nearlyEqual(t, "auto", AutoCostPerUnit(100, 0), 0)
	nearlyEqual(t, "regular", CostPerUnit(100, 3), 33.33)
}

func TestRound2(t *testing.T) {
	nearlyEqual(t, "half up", Round2(2.675), 2.68)
	nearlyEqual(t, "down", Round2(2.674), 2.67)
	nearlyEqual(t, "nan", Round2(math.NaN()), 0)
}

func opCostEntry() models.OpCostEntry {
	return models.OpCostEntry{
		Month: 3,
		Year:  2026,
		Costs: models.OpCosts{
			Rent:           20000,
			FixedSalary:    50000,
			Electricity:    7500,
			TelephoneBills: 500,
		},
		Production: models.OpProduction{MithaiProduction: 1500, NamkeenProduction: 2500},
	}
}

func TestTotalMonthlyCost_SumsEveryField(t *testing.T) {
	costs := models.OpCosts{
		Rent: 1, FixedSalary: 2, Electricity: 3, Marketing: 4, Logistics: 5,
		Insurance: 6, VehicleInstallments: 7, TravelCost: 8, Miscellaneous: 9,
		OtherCosts: 10, EquipmentMaintenance: 11, InternetCharges: 12, TelephoneBills: 13,
	}
	nearlyEqual(t, "total", TotalMonthlyCost(costs), 91)
	nearlyEqual(t, "empty", TotalMonthlyCost(models.OpCosts{}), 0)
}

func TestAutoCostPerUnitFor(t *testing.T) {
	entry := opCostEntry()
	nearlyEqual(t, "production", TotalProduction(entry.Production), 4000)
	nearlyEqual(t, "auto", AutoCostPerUnitFor(entry), 19.5)

	entry.Production = models.OpProduction{}
	nearlyEqual(t, "no production", AutoCostPerUnitFor(entry), 0)
}

func TestEffectiveCostPerUnit_ManualOverrideWins(t *testing.T) {
	entry := opCostEntry()
	manual := 12.5
	entry.UseManualOpCost = true
	entry.ManualOpCostPerKg = &manual

	nearlyEqual(t, "manual", EffectiveCostPerUnit(entry), 12.5)
	if !UsesManualOpCost(entry) {
		t.Fatalf("expected manual mode")
	}
}

func TestEffectiveCostPerUnit_MissingManualFallsBack(t *testing.T) {
	entry := opCostEntry()
	entry.UseManualOpCost = true

	nearlyEqual(t, "fallback", EffectiveCostPerUnit(entry), AutoCostPerUnitFor(entry))

	bad := math.NaN()
	entry.ManualOpCostPerKg = &bad
	nearlyEqual(t, "nan fallback", EffectiveCostPerUnit(entry), 19.5)
	if UsesManualOpCost(entry) {
		t.Fatalf("NaN override should resolve to auto mode")
	}
}

func TestEffectiveCostPerUnit_ManualValueIgnoredWhenFlagOff(t *testing.T) {
	entry := opCostEntry()
	manual := 99.0
	entry.ManualOpCostPerKg = &manual
	nearlyEqual(t, "auto", EffectiveCostPerUnit(entry), 19.5)
}
