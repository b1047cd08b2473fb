package costing

import "github.com/Hardik699/Hanuram1-sub001/internal/domain/models"

// Convert converts quantity between units using the exact (from, to) entry in
// conversions. Unknown pairs pass the quantity through unchanged.
func Convert(quantity float64, fromUnitID, toUnitID string, conversions []models.UnitConversion) float64 {
	q, _ := TryConvert(quantity, fromUnitID, toUnitID, conversions)
	return q
}

// TryConvert is Convert that also reports whether a conversion applied. The
// identity conversion always applies. No reverse or transitive lookups are made.
func TryConvert(quantity float64, fromUnitID, toUnitID string, conversions []models.UnitConversion) (float64, bool) {
	if fromUnitID == toUnitID {
		return quantity, true
	}
	for _, c := range conversions {
		if c.FromUnitID == fromUnitID && c.ToUnitID == toUnitID {
			return quantity * c.ConversionFactor, true
		}
	}
	return quantity, false
}
