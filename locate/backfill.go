package locate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/plss"
)

// pageSize is the number of documents read per page during a backfill.
const pageSize = 100

// Backfiller resolves and stores a coordinate for every stored document.
type Backfiller struct {
	Documents plss.DocumentService
	Extractor plss.FieldExtractor
	Resolver  plss.CoordinateResolver
	Logger    *slog.Logger
}

// Summary holds the outcome of a backfill.
type Summary struct {
	Total      int
	Resolved   int
	Unresolved int
	Failed     int
}

// Backfill processes documents one at a time. A document that resolves to
// nothing keeps whatever coordinate it already has. Write failures are
// logged and counted and the batch continues.
func (b *Backfiller) Backfill(ctx context.Context) (*Summary, error) {
	log := b.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	var summary Summary
	for offset := 0; ; offset += pageSize {
		docs, err := b.Documents.FindDocuments(ctx, plss.DocumentFilter{Offset: offset, Limit: pageSize})
		if err != nil {
			return &summary, fmt.Errorf("list documents: %w", err)
		}
		for _, doc := range docs {
			if err := ctx.Err(); err != nil {
				return &summary, err
			}
			summary.Total++
			req := b.Extractor.ExtractFields(doc.Fields).CoordinateRequest()
			coord := b.Resolver.ResolveCoordinate(ctx, req)
			if coord == nil {
				summary.Unresolved++
				continue
			}
			if err := b.Documents.UpdateDocumentCoordinate(ctx, doc.ID, coord); err != nil {
				summary.Failed++
				log.Error("backfill failed", "document", doc.ID, "err", err)
				continue
			}
			summary.Resolved++
		}
		if len(docs) < pageSize {
			return &summary, nil
		}
	}
}
