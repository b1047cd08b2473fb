package models

// Unit is a unit of measure reference record.
type Unit struct {
	ID        string `bson:"_id" json:"id"`
	Name      string `bson:"name" json:"name"`
	ShortCode string `bson:"short_code" json:"short_code"`
}

// UnitConversion is a directional conversion factor from one unit to another.
// A conversion from A to B does not imply the reverse exists.
type UnitConversion struct {
	FromUnitID       string  `bson:"from_unit_id" json:"from_unit_id"`
	ToUnitID         string  `bson:"to_unit_id" json:"to_unit_id"`
	ConversionFactor float64 `bson:"conversion_factor" json:"conversion_factor"`
}
