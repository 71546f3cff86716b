package emissions

import "ecoroute/internal/domain"

// Vehicle types in the catalogue.
const (
	VehicleCar        domain.VehicleType = "car"
	VehicleMotorcycle domain.VehicleType = "motorcycle"
	VehicleTransit    domain.VehicleType = "transit"
	VehicleTruck      domain.VehicleType = "truck"
)

const averageModel = "average"

// vehicleTypes fixes the catalogue order.
var vehicleTypes = []domain.VehicleType{VehicleCar, VehicleMotorcycle, VehicleTransit, VehicleTruck}

// averageRates is the fallback rate per type when a model is unknown.
var averageRates = map[domain.VehicleType]float64{
	VehicleCar:        0.120,
	VehicleMotorcycle: 0.120,
	VehicleTransit:    0.068,
	VehicleTruck:      0.350,
}

var catalog = []domain.Vehicle{
	{Type: VehicleCar, Model: "gasoline_small", Name: "Small Gasoline Car", Description: "Compact or subcompact gasoline vehicle", RateKgPerKm: 0.120, Examples: "Honda Civic, Toyota Corolla, Ford Focus"},
	{Type: VehicleCar, Model: "gasoline_medium", Name: "Medium Gasoline Car", Description: "Mid-size gasoline sedan or hatchback", RateKgPerKm: 0.180, Examples: "Toyota Camry, Honda Accord, Volkswagen Passat"},
	{Type: VehicleCar, Model: "gasoline_large", Name: "Large Gasoline Car/SUV", Description: "Large sedan, SUV, or pickup truck", RateKgPerKm: 0.250, Examples: "Ford F-150, Toyota Highlander, Chevrolet Tahoe"},
	{Type: VehicleCar, Model: "diesel_small", Name: "Small Diesel Car", Description: "Compact diesel vehicle", RateKgPerKm: 0.140, Examples: "Volkswagen Golf TDI, BMW 320d"},
	{Type: VehicleCar, Model: "diesel_medium", Name: "Medium Diesel Car", Description: "Mid-size diesel vehicle", RateKgPerKm: 0.200, Examples: "BMW 520d, Mercedes E220d"},
	{Type: VehicleCar, Model: "hybrid", Name: "Hybrid Vehicle", Description: "Gasoline-electric hybrid", RateKgPerKm: 0.080, Examples: "Toyota Prius, Honda Insight, Ford Fusion Hybrid"},
	{Type: VehicleCar, Model: "electric", Name: "Electric Vehicle", Description: "Battery electric vehicle (grid average)", RateKgPerKm: 0.040, Examples: "Tesla Model 3, Nissan Leaf, Chevrolet Bolt"},
	{Type: VehicleCar, Model: "electric_renewable", Name: "Electric Vehicle (Renewable)", Description: "Battery electric vehicle with renewable energy", RateKgPerKm: 0.010, Examples: "Tesla with solar charging, any EV with green energy"},

	{Type: VehicleMotorcycle, Model: "small", Name: "Small Motorcycle", Description: "Small displacement motorcycle (125cc)", RateKgPerKm: 0.080, Examples: "Honda CB125F, Yamaha YBR125"},
	{Type: VehicleMotorcycle, Model: "medium", Name: "Medium Motorcycle", Description: "Medium displacement motorcycle (500cc)", RateKgPerKm: 0.120, Examples: "Honda CB500F, Kawasaki Ninja 400"},
	{Type: VehicleMotorcycle, Model: "large", Name: "Large Motorcycle", Description: "Large displacement motorcycle (1000cc+)", RateKgPerKm: 0.180, Examples: "Honda CBR1000RR, Yamaha R1, BMW S1000RR"},
	{Type: VehicleMotorcycle, Model: "electric", Name: "Electric Motorcycle", Description: "Battery electric motorcycle", RateKgPerKm: 0.020, Examples: "Zero SR/F, Harley-Davidson LiveWire"},

	{Type: VehicleTransit, Model: "bus", Name: "Bus", Description: "Public bus transportation", RateKgPerKm: 0.068, PerPassenger: true, Examples: "City buses, intercity coaches"},
	{Type: VehicleTransit, Model: "train", Name: "Train", Description: "Rail transportation", RateKgPerKm: 0.041, PerPassenger: true, Examples: "Commuter trains, intercity rail"},
	{Type: VehicleTransit, Model: "subway", Name: "Subway/Metro", Description: "Underground rail transportation", RateKgPerKm: 0.035, PerPassenger: true, Examples: "New York Subway, London Underground"},
	{Type: VehicleTransit, Model: "tram", Name: "Tram/Light Rail", Description: "Light rail or streetcar", RateKgPerKm: 0.030, PerPassenger: true, Examples: "Portland Streetcar, San Francisco Muni"},

	{Type: VehicleTruck, Model: "small", Name: "Small Truck", Description: "Small delivery or pickup truck", RateKgPerKm: 0.200, Examples: "Ford Ranger, Toyota Tacoma"},
	{Type: VehicleTruck, Model: "medium", Name: "Medium Truck", Description: "Medium commercial truck", RateKgPerKm: 0.350, Examples: "Ford F-650, Freightliner M2"},
	{Type: VehicleTruck, Model: "large", Name: "Large Truck", Description: "Heavy commercial truck", RateKgPerKm: 0.500, Examples: "Freightliner Cascadia, Peterbilt 579"},
}

var modeInfo = map[domain.Mode]domain.ModeInfo{
	domain.ModeDriving: {
		Name:        "Driving",
		Icon:        "🚗",
		Description: "Personal vehicle transportation",
		Benefits:    "Fast and convenient",
		Drawbacks:   "High emissions and fuel costs",
	},
	domain.ModeTransit: {
		Name:        "Public Transit",
		Icon:        "🚌",
		Description: "Bus, train, or other public transport",
		Benefits:    "Lower emissions per person, cost-effective",
		Drawbacks:   "Limited routes and schedules",
	},
	domain.ModeBicycling: {
		Name:        "Bicycling",
		Icon:        "🚴",
		Description: "Bicycle transportation",
		Benefits:    "Zero emissions, great exercise",
		Drawbacks:   "Weather dependent, limited range",
	},
	domain.ModeWalking: {
		Name:        "Walking",
		Icon:        "🚶",
		Description: "Walking transportation",
		Benefits:    "Zero emissions, excellent exercise",
		Drawbacks:   "Slow for long distances",
	},
}

var tips = map[domain.Mode][]string{
	domain.ModeWalking: {
		"Walking is the most sustainable option - zero emissions!",
		"Consider walking for short distances to improve your health",
		"Use walking apps to find pedestrian-friendly routes",
	},
	domain.ModeBicycling: {
		"Cycling is excellent for the environment and your health",
		"Consider bike-sharing programs if you don't own a bike",
		"Plan routes using dedicated bike paths for safety",
	},
	domain.ModeTransit: {
		"Public transit significantly reduces per-person emissions",
		"Consider monthly passes for regular commuting",
		"Combine transit with walking/cycling for the last mile",
	},
	domain.ModeDriving: {
		"Consider carpooling to reduce emissions per person",
		"Plan multiple errands in one trip to minimize driving",
		"Look into electric or hybrid vehicles for your next car",
	},
}
