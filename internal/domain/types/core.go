package types

// Mode is a transport mode a route can be travelled with.
type Mode string

// Known transport modes.
const (
	ModeDriving   Mode = "driving"
	ModeTransit   Mode = "transit"
	ModeBicycling Mode = "bicycling"
	ModeWalking   Mode = "walking"
)

// Modes lists the known transport modes in display order.
var Modes = []Mode{ModeDriving, ModeTransit, ModeBicycling, ModeWalking}

// String returns the string form of the mode.
func (m Mode) String() string { return string(m) }

// VehicleType groups vehicle models sharing an emission table.
type VehicleType string

// String returns the string form of the vehicle type.
func (v VehicleType) String() string { return string(v) }

// Grade is a letter rating of emissions per kilometre.
type Grade string

// String returns the string form of the grade.
func (g Grade) String() string { return string(g) }
