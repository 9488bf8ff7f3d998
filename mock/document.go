package mock

import (
	"context"

	"github.com/fwojciec/plss"
)

var _ plss.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of plss.DocumentService.
type DocumentService struct {
	CreateDocumentFn           func(ctx context.Context, doc *plss.Document) error
	FindDocumentByIDFn         func(ctx context.Context, id string) (*plss.Document, error)
	FindDocumentsFn            func(ctx context.Context, filter plss.DocumentFilter) ([]*plss.Document, error)
	UpdateDocumentMatchFn      func(ctx context.Context, id string, match plss.MatchResult) error
	UpdateDocumentCoordinateFn func(ctx context.Context, id string, coord *plss.CoordinateResult) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *plss.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*plss.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter plss.DocumentFilter) ([]*plss.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) UpdateDocumentMatch(ctx context.Context, id string, match plss.MatchResult) error {
	return s.UpdateDocumentMatchFn(ctx, id, match)
}

func (s *DocumentService) UpdateDocumentCoordinate(ctx context.Context, id string, coord *plss.CoordinateResult) error {
	return s.UpdateDocumentCoordinateFn(ctx, id, coord)
}
