package mock

import (
	"context"

	"github.com/fwojciec/plss"
)

var _ plss.FieldExtractor = (*FieldExtractor)(nil)

// FieldExtractor is a mock implementation of plss.FieldExtractor.
type FieldExtractor struct {
	ExtractFieldsFn func(payload []byte) plss.ExtractedFields
}

func (e *FieldExtractor) ExtractFields(payload []byte) plss.ExtractedFields {
	return e.ExtractFieldsFn(payload)
}

var _ plss.EntityLinker = (*EntityLinker)(nil)

// EntityLinker is a mock implementation of plss.EntityLinker.
type EntityLinker struct {
	MatchFn        func(ctx context.Context, fields plss.ExtractedFields) (*plss.MatchResult, error)
	LinkDocumentFn func(ctx context.Context, id string) (*plss.MatchResult, error)
}

func (l *EntityLinker) Match(ctx context.Context, fields plss.ExtractedFields) (*plss.MatchResult, error) {
	return l.MatchFn(ctx, fields)
}

func (l *EntityLinker) LinkDocument(ctx context.Context, id string) (*plss.MatchResult, error) {
	return l.LinkDocumentFn(ctx, id)
}
