// Package emissions computes CO2 emissions for transport modes and vehicle
// models, compares modes over a distance, and grades the result.
//
// Rates are kilograms of CO2 per kilometre (per passenger for transit).
// Results are rounded to grams.
package emissions
