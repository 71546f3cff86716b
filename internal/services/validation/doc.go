// Package validation checks route form input before it is submitted.
//
// Every rejection is a *domain.ValidationError naming the offending field,
// so errors.Is(err, domain.ErrValidation) holds for all of them.
package validation
