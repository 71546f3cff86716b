package interfaces

import "context"

// QueryHandler receives a settled location query from the search adapter.
type QueryHandler interface {
	HandleQuery(ctx context.Context, query string)
}

// QueryHandlerFunc adapts a function to QueryHandler.
type QueryHandlerFunc func(ctx context.Context, query string)

// HandleQuery calls f.
func (f QueryHandlerFunc) HandleQuery(ctx context.Context, query string) { f(ctx, query) }

// Clipboard is wherever share text ends up; the terminal, a desktop
// clipboard, a test buffer.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}
