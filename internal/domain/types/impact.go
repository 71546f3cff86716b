package types

// Impact is the display equivalence of an emissions saving.
//
// Trees is always integral when finite; it is a float so NaN and infinities
// from the input survive the conversion.
type Impact struct {
	Trees     float64 `json:"trees" yaml:"trees"`
	DrivingKm string  `json:"driving_km" yaml:"driving_km"`
}

// Footprint holds EPA-style equivalents of an emission amount.
type Footprint struct {
	TreesNeeded        float64 `json:"trees_needed"`
	CarMilesEquivalent float64 `json:"car_miles_equivalent"`
	SmartphoneCharges  float64 `json:"smartphone_charges"`
	LightBulbHours     float64 `json:"light_bulb_hours"`
}
