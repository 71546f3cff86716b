package domain

import (
	interfaces "ecoroute/internal/domain/interfaces"
	types "ecoroute/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Mode         = types.Mode
	VehicleType  = types.VehicleType
	Grade        = types.Grade
	Impact       = types.Impact
	Footprint    = types.Footprint
	Vehicle      = types.Vehicle
	ModeInfo     = types.ModeInfo
	ModeEmission = types.ModeEmission
	RouteForm    = types.RouteForm
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ImpactConverter  = interfaces.ImpactConverter
	EmissionsService = interfaces.EmissionsService
	FormValidator    = interfaces.FormValidator
	Searcher         = interfaces.Searcher
	QueryHandler     = interfaces.QueryHandler
	QueryHandlerFunc = interfaces.QueryHandlerFunc
	Clipboard        = interfaces.Clipboard
)

// Transport modes re-exported for callers that only import domain.
const (
	ModeDriving   = types.ModeDriving
	ModeTransit   = types.ModeTransit
	ModeBicycling = types.ModeBicycling
	ModeWalking   = types.ModeWalking
)

// Modes lists the known transport modes in display order.
var Modes = types.Modes
