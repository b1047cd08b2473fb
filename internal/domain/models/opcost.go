package models

import "time"

// OpCosts lists a month's fixed operating expenses. Missing fields decode as zero.
type OpCosts struct {
	Rent                 float64 `bson:"rent" json:"rent"`
	FixedSalary          float64 `bson:"fixed_salary" json:"fixed_salary"`
	Electricity          float64 `bson:"electricity" json:"electricity"`
	Marketing            float64 `bson:"marketing" json:"marketing"`
	Logistics            float64 `bson:"logistics" json:"logistics"`
	Insurance            float64 `bson:"insurance" json:"insurance"`
	VehicleInstallments  float64 `bson:"vehicle_installments" json:"vehicle_installments"`
	TravelCost           float64 `bson:"travel_cost" json:"travel_cost"`
	Miscellaneous        float64 `bson:"miscellaneous" json:"miscellaneous"`
	OtherCosts           float64 `bson:"other_costs" json:"other_costs"`
	EquipmentMaintenance float64 `bson:"equipment_maintenance" json:"equipment_maintenance"`
	InternetCharges      float64 `bson:"internet_charges" json:"internet_charges"`
	TelephoneBills       float64 `bson:"telephone_bills" json:"telephone_bills"`
}

// Fields returns every cost figure in declaration order.
func (c OpCosts) Fields() []float64 {
	return []float64{
		c.Rent, c.FixedSalary, c.Electricity, c.Marketing, c.Logistics,
		c.Insurance, c.VehicleInstallments, c.TravelCost, c.Miscellaneous,
		c.OtherCosts, c.EquipmentMaintenance, c.InternetCharges, c.TelephoneBills,
	}
}

// OpProduction is the month's output volume, in kg.
type OpProduction struct {
	MithaiProduction  float64 `bson:"mithai_production" json:"mithai_production"`
	NamkeenProduction float64 `bson:"namkeen_production" json:"namkeen_production"`
}

// OpCostEntry is the operating cost record for one (month, year).
type OpCostEntry struct {
	ID                string       `bson:"_id" json:"id"`
	Month             int          `bson:"month" json:"month"`
	Year              int          `bson:"year" json:"year"`
	Costs             OpCosts      `bson:"costs" json:"costs"`
	Production        OpProduction `bson:"production" json:"production"`
	AutoOpCostPerKg   float64      `bson:"auto_op_cost_per_kg" json:"auto_op_cost_per_kg"`
	ManualOpCostPerKg *float64     `bson:"manual_op_cost_per_kg,omitempty" json:"manual_op_cost_per_kg,omitempty"`
	UseManualOpCost   bool         `bson:"use_manual_op_cost" json:"use_manual_op_cost"`
	UpdatedAt         time.Time    `bson:"updated_at" json:"updated_at"`
}
