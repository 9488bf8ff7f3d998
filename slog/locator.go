package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/plss"
)

// Ensure LoggingWellLocator implements plss.WellLocator.
var _ plss.WellLocator = (*LoggingWellLocator)(nil)

// LoggingWellLocator wraps a WellLocator with logging.
type LoggingWellLocator struct {
	next   plss.WellLocator
	logger *slog.Logger
}

// NewLoggingWellLocator creates a new LoggingWellLocator.
func NewLoggingWellLocator(next plss.WellLocator, logger *slog.Logger) *LoggingWellLocator {
	return &LoggingWellLocator{next: next, logger: logger}
}

// LocateWell delegates to the wrapped locator and logs the lookup.
func (l *LoggingWellLocator) LocateWell(ctx context.Context, apiNumber string) (c *plss.Coordinate, err error) {
	defer func(begin time.Time) {
		attrs := []any{"api", apiNumber, "duration", time.Since(begin)}
		if c != nil {
			attrs = append(attrs, "lat", c.Latitude, "lng", c.Longitude)
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		l.logger.Info("gis lookup", attrs...)
	}(time.Now())
	return l.next.LocateWell(ctx, apiNumber)
}
