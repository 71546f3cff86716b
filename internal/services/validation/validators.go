package validation

import (
	"errors"
	"math"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"ecoroute/internal/domain"
	"ecoroute/internal/metrics"
)

const (
	minLocationLength = 2
	maxLocationLength = 200

	// DefaultSanitizeLength is the cut-off Sanitize uses when maxLen <= 0.
	DefaultSanitizeLength = 255
)

var (
	harmfulChars = regexp.MustCompile(`[<>"']`)

	suspiciousPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE|DROP|UNION|SCRIPT)\b`),
		regexp.MustCompile(`[;'"]`),
		regexp.MustCompile(`--`),
		regexp.MustCompile(`/\*`),
		regexp.MustCompile(`\*/`),
	}

	htmlTag    = regexp.MustCompile(`<[^>]+>`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Messages shown by the submit-time form check.
const (
	MsgBothRequired = "Please enter both starting point and destination."
	MsgSameEndpoint = "Starting point and destination cannot be the same."
)

// Service validates route forms and counts rejections.
type Service struct {
	metrics *metrics.Set
}

// New returns a validator; m may be nil.
func New(m *metrics.Set) *Service { return &Service{metrics: m} }

// RouteForm runs the submit-time checks: both endpoints present and
// distinct, then the per-field location rules. Accepted values come back
// with inner whitespace collapsed.
func (s *Service) RouteForm(origin, destination string) (domain.RouteForm, error) {
	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)

	if origin == "" || destination == "" {
		field := "origin"
		if origin != "" {
			field = "destination"
		}
		return domain.RouteForm{}, s.reject(domain.NewValidationError(field, MsgBothRequired))
	}
	if origin == destination {
		return domain.RouteForm{}, s.reject(domain.NewValidationError("destination", MsgSameEndpoint))
	}

	o, err := Location(origin, "origin")
	if err != nil {
		return domain.RouteForm{}, s.reject(err)
	}
	d, err := Location(destination, "destination")
	if err != nil {
		return domain.RouteForm{}, s.reject(err)
	}
	return domain.RouteForm{
		Origin:      Sanitize(o, maxLocationLength),
		Destination: Sanitize(d, maxLocationLength),
	}, nil
}

func (s *Service) reject(err error) error {
	var verr *domain.ValidationError
	if s.metrics != nil && errors.As(err, &verr) {
		s.metrics.ValidationFailed.WithLabelValues(verr.Field).Inc()
	}
	return err
}

// Location validates a free-text place name and returns it trimmed.
func Location(location, field string) (string, error) {
	if field == "" {
		field = "location"
	}
	name := title(field)

	if location == "" {
		return "", domain.NewValidationError(field, "%s is required", name)
	}
	location = strings.TrimSpace(location)

	n := utf8.RuneCountInString(location)
	if n < minLocationLength {
		return "", domain.NewValidationError(field, "%s must be at least %d characters long", name, minLocationLength)
	}
	if n > maxLocationLength {
		return "", domain.NewValidationError(field, "%s must be less than %d characters", name, maxLocationLength)
	}

	if harmfulChars.MatchString(location) {
		return "", domain.NewValidationError(field, "%s contains invalid characters", name)
	}
	for _, p := range suspiciousPatterns {
		if p.MatchString(location) {
			return "", domain.NewValidationError(field, "%s contains invalid content", name)
		}
	}
	return location, nil
}

// Coordinates checks latitude and longitude ranges.
func Coordinates(lat, lon float64) (float64, float64, error) {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return 0, 0, domain.NewValidationError("coordinates", "Coordinates must be numeric")
	}
	if lat < -90 || lat > 90 {
		return 0, 0, domain.NewValidationError("latitude", "Latitude must be between -90 and 90")
	}
	if lon < -180 || lon > 180 {
		return 0, 0, domain.NewValidationError("longitude", "Longitude must be between -180 and 180")
	}
	return lat, lon, nil
}

// TransportMode checks mode against the known modes.
func TransportMode(mode string) (domain.Mode, error) {
	m := domain.Mode(mode)
	if mode == "" || !slices.Contains(domain.Modes, m) {
		names := make([]string, len(domain.Modes))
		for i, known := range domain.Modes {
			names[i] = known.String()
		}
		return "", domain.NewValidationError("mode", "Invalid transport mode. Must be one of: %s", strings.Join(names, ", "))
	}
	return m, nil
}

// Sanitize strips HTML tags, collapses whitespace and truncates to maxLen
// runes.
func Sanitize(value string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultSanitizeLength
	}
	value = htmlTag.ReplaceAllString(value, "")
	value = strings.TrimSpace(whitespace.ReplaceAllString(value, " "))

	if utf8.RuneCountInString(value) > maxLen {
		value = string([]rune(value)[:maxLen])
	}
	return value
}

func title(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(r)) + s[size:]
}

// Compile-time assertion that Service implements domain.FormValidator.
var _ domain.FormValidator = (*Service)(nil)
