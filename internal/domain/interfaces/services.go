package interfaces

import (
	domaintypes "ecoroute/internal/domain/types"
)

// ImpactConverter turns an emissions saving into display equivalents.
type ImpactConverter interface {
	Convert(emissionSavingsKg float64) domaintypes.Impact
}

// EmissionsService computes CO2 emissions for modes and vehicles.
type EmissionsService interface {
	Calculate(distanceKm float64, mode domaintypes.Mode) float64
	CalculateVehicle(distanceKm float64, vehicleType domaintypes.VehicleType, model string) float64
	Compare(distanceKm float64) []domaintypes.ModeEmission
	Savings(distanceKm float64, chosen, baseline domaintypes.Mode) float64
	Footprint(emissionKg float64) domaintypes.Footprint
	Rating(emissionKg, distanceKm float64) (domaintypes.Grade, string)
	Vehicles() []domaintypes.Vehicle
	ModeInfo(mode domaintypes.Mode) domaintypes.ModeInfo
	Tips(mode domaintypes.Mode) []string
}

// FormValidator checks a submitted route form before it is posted.
type FormValidator interface {
	RouteForm(origin, destination string) (domaintypes.RouteForm, error)
}

// Searcher receives raw location-input events and forwards settled queries.
type Searcher interface {
	Input(query string)
	Close()
}
