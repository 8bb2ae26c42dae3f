package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jbartnik/refdeck"
)

// Ensure LoggingSynthesizer implements refdeck.Synthesizer.
var _ refdeck.Synthesizer = (*LoggingSynthesizer)(nil)

// LoggingSynthesizer wraps a Synthesizer with debug logging.
type LoggingSynthesizer struct {
	next   refdeck.Synthesizer
	logger *slog.Logger
}

// NewLoggingSynthesizer creates a new LoggingSynthesizer.
func NewLoggingSynthesizer(next refdeck.Synthesizer, logger *slog.Logger) *LoggingSynthesizer {
	return &LoggingSynthesizer{next: next, logger: logger}
}

// Synthesize delegates to the wrapped synthesizer and logs the operation.
func (s *LoggingSynthesizer) Synthesize(ctx context.Context, req refdeck.SynthesisRequest) (syn *refdeck.Synthesis, err error) {
	defer func(begin time.Time) {
		s.logger.Info("synthesize",
			"articles", len(req.ArticleIDs),
			"focus", req.FocusTopic,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Synthesize(ctx, req)
}
