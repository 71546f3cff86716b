package search

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"ecoroute/internal/debounce"
	"ecoroute/internal/domain"
	"ecoroute/internal/logger"
	"ecoroute/internal/metrics"
)

const (
	// DefaultWait is the quiet interval between keystrokes before a query settles.
	DefaultWait = 300 * time.Millisecond
	// DefaultMinQueryLength is the shortest query handed to the handler.
	DefaultMinQueryLength = 3
)

// Options tunes the adapter. Values are used as given: a zero Wait settles
// on the next timer tick and a zero MinQueryLength forwards every query.
type Options struct {
	Wait           time.Duration
	MinQueryLength int
}

// DefaultOptions returns the interval and minimum length of the location field.
func DefaultOptions() Options {
	return Options{Wait: DefaultWait, MinQueryLength: DefaultMinQueryLength}
}

// Service debounces location-field input and hands settled queries to a handler.
type Service struct {
	ctx       context.Context
	handler   domain.QueryHandler
	minLen    int
	metrics   *metrics.Set
	log       *zap.SugaredLogger
	debouncer *debounce.Debouncer[string]
}

// New returns an adapter that hands settled queries to handler. Queries
// settling after ctx is done are dropped. m may be nil. Negative options
// are treated as zero.
func New(ctx context.Context, handler domain.QueryHandler, opts Options, m *metrics.Set) *Service {
	if opts.Wait < 0 {
		opts.Wait = 0
	}
	if opts.MinQueryLength < 0 {
		opts.MinQueryLength = 0
	}

	s := &Service{
		ctx:     ctx,
		handler: handler,
		minLen:  opts.MinQueryLength,
		metrics: m,
		log:     logger.Named("search"),
	}
	s.debouncer = debounce.New(opts.Wait, s.settle)
	return s
}

// Input records one input event carrying the field's current value.
func (s *Service) Input(query string) {
	if s.metrics != nil {
		s.metrics.SearchInputs.Inc()
	}
	s.debouncer.Call(query)
}

func (s *Service) settle(query string) {
	if s.ctx.Err() != nil {
		return
	}

	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < s.minLen {
		s.log.Debugf("query %q too short, skipped", q)
		if s.metrics != nil {
			s.metrics.SearchSkipped.Inc()
		}
		return
	}

	if s.metrics != nil {
		s.metrics.SearchQueries.Inc()
	}
	s.handler.HandleQuery(s.ctx, q)
}

// Flush settles the pending input now, if any.
func (s *Service) Flush() bool { return s.debouncer.Flush() }

// Pending reports whether an input is waiting to settle.
func (s *Service) Pending() bool { return s.debouncer.Pending() }

// Inputs returns how many input events came in.
func (s *Service) Inputs() int64 { return s.debouncer.Calls() }

// Settled returns how many bursts settled, including skipped short ones.
func (s *Service) Settled() int64 { return s.debouncer.Fired() }

// Close drops any pending input.
func (s *Service) Close() { s.debouncer.Stop() }

// LogHandler returns a handler that only logs the query.
func LogHandler(log *zap.SugaredLogger) domain.QueryHandler {
	return domain.QueryHandlerFunc(func(_ context.Context, query string) {
		log.Infof("searching for: %s", query)
	})
}

// Compile-time assertion that Service implements domain.Searcher.
var _ domain.Searcher = (*Service)(nil)
