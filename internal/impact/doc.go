// Package impact converts an emissions saving into equivalents people can
// picture: trees absorbing CO2 for a year and kilometres of driving avoided.
//
// Convert is pure. Input is not validated; NaN and infinities pass through
// to the result.
package impact
