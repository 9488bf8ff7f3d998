package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/plss"
)

// Ensure LoggingWellService implements plss.WellService.
var _ plss.WellService = (*LoggingWellService)(nil)

// LoggingWellService wraps a WellService with debug logging of the
// queries the match cascade issues.
type LoggingWellService struct {
	next   plss.WellService
	logger *slog.Logger
}

// NewLoggingWellService creates a new LoggingWellService.
func NewLoggingWellService(next plss.WellService, logger *slog.Logger) *LoggingWellService {
	return &LoggingWellService{next: next, logger: logger}
}

// CreateWell delegates to the wrapped service.
func (s *LoggingWellService) CreateWell(ctx context.Context, well *plss.Well) error {
	return s.next.CreateWell(ctx, well)
}

// FindWellByAPI delegates to the wrapped service and logs the lookup.
func (s *LoggingWellService) FindWellByAPI(ctx context.Context, apiNumber string) (well *plss.Well, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("well lookup by api",
			"api", apiNumber,
			"found", well != nil,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.FindWellByAPI(ctx, apiNumber)
}

// FindWells delegates to the wrapped service and logs the query.
func (s *LoggingWellService) FindWells(ctx context.Context, filter plss.WellFilter) (wells []*plss.Well, err error) {
	defer func(begin time.Time) {
		attrs := []any{"names", filter.Names, "count", len(wells), "duration", time.Since(begin)}
		if filter.NamePrefix != nil {
			attrs = append(attrs, "prefix", *filter.NamePrefix)
		}
		if filter.Township != nil && filter.Range != nil {
			attrs = append(attrs, "township", filter.Township.String(), "range", filter.Range.String())
		}
		if filter.Section != nil {
			attrs = append(attrs, "section", *filter.Section)
		}
		if filter.Operator != nil {
			attrs = append(attrs, "operator", *filter.Operator)
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		s.logger.Debug("well query", attrs...)
	}(time.Now())
	return s.next.FindWells(ctx, filter)
}
