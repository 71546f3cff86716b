package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"ecoroute/internal/domain"
	"ecoroute/internal/logger"
	"ecoroute/internal/services/search"
)

// search: every stdin line is one input event carrying the field's value.
// Settled queries are printed; at EOF the pending input settles at once.
func searchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Debounce location input read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &lockedWriter{w: cmd.OutOrStdout()}

			logged := search.LogHandler(logger.Named("search"))
			handler := domain.QueryHandlerFunc(func(ctx context.Context, query string) {
				logged.HandleQuery(ctx, query)
				fmt.Fprintf(out, "searching for: %s\n", query)
			})

			svc := appCtx.NewSearch(cmd.Context(), handler)
			defer svc.Close()

			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				svc.Input(sc.Text())
				if interval > 0 {
					time.Sleep(interval)
				}
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			svc.Flush()

			fmt.Fprintf(out, "inputs: %d, settled: %d\n", svc.Inputs(), svc.Settled())
			return nil
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 0, "pause between input lines, to mimic typing")
	return cmd
}

// lockedWriter serialises writes from the debouncer's timer goroutine and
// the command goroutine.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
