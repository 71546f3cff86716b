package share

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"ecoroute/internal/domain"
	"ecoroute/internal/logger"
)

// Text is the headline of every shared route.
const Text = "Eco-friendly route found! Check out this sustainable travel option."

// Service composes share text and delivers it.
type Service struct {
	clipboard domain.Clipboard
	fallback  io.Writer
	converter domain.ImpactConverter
	log       *zap.SugaredLogger
}

// New returns a share service. clipboard may be nil, in which case text
// always goes to fallback.
func New(clipboard domain.Clipboard, fallback io.Writer, converter domain.ImpactConverter) *Service {
	return &Service{
		clipboard: clipboard,
		fallback:  fallback,
		converter: converter,
		log:       logger.Named("share"),
	}
}

// Summary describes savingsKg in impact terms.
func (s *Service) Summary(savingsKg float64) string {
	imp := s.converter.Convert(savingsKg)
	return fmt.Sprintf(
		"This route saves %.3f kg of CO2, the same as %s trees absorb in a year or %s km of driving.",
		savingsKg, strconv.FormatFloat(imp.Trees, 'f', -1, 64), imp.DrivingKm,
	)
}

// Compose joins the headline and, when savingsKg is positive, the summary.
func (s *Service) Compose(savingsKg float64) string {
	if savingsKg > 0 {
		return Text + " " + s.Summary(savingsKg)
	}
	return Text
}

// Share delivers the composed text. It reports whether the clipboard took
// it; when it did not, the text was written to the fallback writer instead.
func (s *Service) Share(ctx context.Context, savingsKg float64) (bool, error) {
	text := s.Compose(savingsKg)

	if s.clipboard != nil {
		err := s.clipboard.WriteText(ctx, text)
		if err == nil {
			return true, nil
		}
		s.log.Warnf("failed to copy: %v", err)
	}

	if _, err := fmt.Fprintln(s.fallback, text); err != nil {
		return false, fmt.Errorf("could not copy to clipboard, please copy manually: %w", err)
	}
	return false, nil
}

// FileClipboard writes shared text to a file, replacing its contents.
type FileClipboard struct {
	Path string
}

// WriteText writes text to c.Path.
func (c FileClipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(c.Path, []byte(text+"\n"), 0o644)
}

// Compile-time assertion that FileClipboard implements domain.Clipboard.
var _ domain.Clipboard = FileClipboard{}
