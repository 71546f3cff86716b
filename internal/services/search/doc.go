// Package search turns raw location-input events into settled queries.
//
// Each Input goes through a debouncer; only the last input of a burst
// reaches the QueryHandler, and only when it is long enough to be worth
// looking up. No geocoding happens here; the handler decides what a query
// means.
package search
