package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/plss"
)

// Ensure LoggingDocumentService implements plss.DocumentService.
var _ plss.DocumentService = (*LoggingDocumentService)(nil)

// LoggingDocumentService wraps a DocumentService and logs its writes.
// Reads are delegated silently.
type LoggingDocumentService struct {
	next   plss.DocumentService
	logger *slog.Logger
}

// NewLoggingDocumentService creates a new LoggingDocumentService.
func NewLoggingDocumentService(next plss.DocumentService, logger *slog.Logger) *LoggingDocumentService {
	return &LoggingDocumentService{next: next, logger: logger}
}

// CreateDocument delegates to the wrapped service and logs the insert.
func (s *LoggingDocumentService) CreateDocument(ctx context.Context, doc *plss.Document) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("document create",
			"id", doc.ID,
			"hash", doc.FieldsHash,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateDocument(ctx, doc)
}

// FindDocumentByID delegates to the wrapped service.
func (s *LoggingDocumentService) FindDocumentByID(ctx context.Context, id string) (*plss.Document, error) {
	return s.next.FindDocumentByID(ctx, id)
}

// FindDocuments delegates to the wrapped service.
func (s *LoggingDocumentService) FindDocuments(ctx context.Context, filter plss.DocumentFilter) ([]*plss.Document, error) {
	return s.next.FindDocuments(ctx, filter)
}

// UpdateDocumentMatch delegates to the wrapped service and logs the write.
func (s *LoggingDocumentService) UpdateDocumentMatch(ctx context.Context, id string, match plss.MatchResult) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("document match write",
			"id", id,
			"property", optional(match.PropertyID),
			"well", optional(match.WellID),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateDocumentMatch(ctx, id, match)
}

// UpdateDocumentCoordinate delegates to the wrapped service and logs the write.
func (s *LoggingDocumentService) UpdateDocumentCoordinate(ctx context.Context, id string, coord *plss.CoordinateResult) (err error) {
	defer func(begin time.Time) {
		precision := "(none)"
		if coord != nil {
			precision = string(coord.Precision)
		}
		s.logger.Info("document coordinate write",
			"id", id,
			"precision", precision,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateDocumentCoordinate(ctx, id, coord)
}

func optional(s *string) string {
	if s == nil {
		return "(none)"
	}
	return *s
}
