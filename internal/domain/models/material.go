package models

// RawMaterial is an ingredient or consumable that recipes reference by id.
type RawMaterial struct {
	ID             string   `bson:"_id" json:"id"`
	Code           string   `bson:"code" json:"code"`
	Name           string   `bson:"name" json:"name"`
	UnitID         string   `bson:"unit_id" json:"unit_id"`
	LastAddedPrice *float64 `bson:"last_added_price,omitempty" json:"last_added_price,omitempty"`
	LastVendorName string   `bson:"last_vendor_name,omitempty" json:"last_vendor_name,omitempty"`
}
