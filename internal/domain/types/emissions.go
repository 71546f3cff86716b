package types

// Vehicle describes one model in the vehicle catalogue.
type Vehicle struct {
	Type         VehicleType `json:"type"`
	Model        string      `json:"model"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	RateKgPerKm  float64     `json:"rate_kg_per_km"`
	PerPassenger bool        `json:"per_passenger,omitempty"`
	Examples     string      `json:"examples"`
}

// ModeInfo is the descriptive card shown for a transport mode.
type ModeInfo struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Benefits    string `json:"benefits"`
	Drawbacks   string `json:"drawbacks"`
}

// ModeEmission is one row of a per-mode comparison.
type ModeEmission struct {
	Mode        Mode    `json:"mode"`
	DistanceKm  float64 `json:"distance_km"`
	EmissionKg  float64 `json:"emission_kg"`
	EmissionKm  float64 `json:"emission_per_km"`
	Grade       Grade   `json:"grade"`
	GradeDetail string  `json:"grade_detail"`
}
