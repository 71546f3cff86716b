// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (results, catalogue entries) and contracts
// (interfaces) only, plus the error taxonomy every service returns.
package domain
