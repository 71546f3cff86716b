package types

// RouteForm is the submitted origin/destination pair after trimming.
type RouteForm struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}
