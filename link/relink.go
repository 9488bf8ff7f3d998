package link

import (
	"context"
	"fmt"

	"github.com/fwojciec/plss"
)

// pageSize is the number of documents read per page during a relink.
const pageSize = 100

// Summary holds the outcome of a bulk relink.
type Summary struct {
	Total     int
	Linked    int
	Unmatched int
	Failed    int
}

// RelinkAll links every stored document, one at a time. A failure on one
// document is logged and counted and the batch continues. Only context
// cancellation or a failure to read a page stops it early.
func (l *Linker) RelinkAll(ctx context.Context) (*Summary, error) {
	var summary Summary
	for offset := 0; ; offset += pageSize {
		docs, err := l.Documents.FindDocuments(ctx, plss.DocumentFilter{Offset: offset, Limit: pageSize})
		if err != nil {
			return &summary, fmt.Errorf("list documents: %w", err)
		}
		for _, doc := range docs {
			if err := ctx.Err(); err != nil {
				return &summary, err
			}
			summary.Total++
			result, err := l.link(ctx, doc)
			switch {
			case err != nil:
				summary.Failed++
				l.logger().Error("relink failed", "document", doc.ID, "err", err)
			case result.Matched():
				summary.Linked++
			default:
				summary.Unmatched++
			}
		}
		if len(docs) < pageSize {
			return &summary, nil
		}
	}
}
