package locate_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fwojciec/plss"
	"github.com/fwojciec/plss/gjson"
	"github.com/fwojciec/plss/locate"
	"github.com/fwojciec/plss/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackfiller_Backfill(t *testing.T) {
	t.Parallel()

	t.Run("resolves and stores a coordinate per document", func(t *testing.T) {
		t.Parallel()

		docs := []*plss.Document{
			{ID: "trs", Fields: json.RawMessage(`{"legal_description": "S14 T5N R4W Grady County"}`)},
			{ID: "county", Fields: json.RawMessage(`{"county": "Kay"}`)},
			{ID: "nothing", Fields: json.RawMessage(`{}`)},
			{ID: "broken", Fields: json.RawMessage(`{"county": "Osage"}`)},
		}
		stored := map[string]*plss.CoordinateResult{}
		b := &locate.Backfiller{
			Documents: &mock.DocumentService{
				FindDocumentsFn: func(_ context.Context, f plss.DocumentFilter) ([]*plss.Document, error) {
					if f.Offset > 0 {
						return nil, nil
					}
					return docs, nil
				},
				UpdateDocumentCoordinateFn: func(_ context.Context, id string, c *plss.CoordinateResult) error {
					if id == "broken" {
						return errors.New("disk full")
					}
					stored[id] = c
					return nil
				},
			},
			Extractor: gjson.NewExtractor(),
			Resolver:  &locate.Resolver{},
		}

		summary, err := b.Backfill(context.Background())

		require.NoError(t, err)
		assert.Equal(t, &locate.Summary{Total: 4, Resolved: 2, Unresolved: 1, Failed: 1}, summary)
		require.Contains(t, stored, "trs")
		assert.Equal(t, plss.PrecisionTRSCalculated, stored["trs"].Precision)
		require.Contains(t, stored, "county")
		assert.Equal(t, plss.PrecisionCountyCenter, stored["county"].Precision)
		assert.NotContains(t, stored, "nothing")
	})

	t.Run("passes extracted fields to the resolver", func(t *testing.T) {
		t.Parallel()

		var got plss.CoordinateRequest
		b := &locate.Backfiller{
			Documents: &mock.DocumentService{
				FindDocumentsFn: func(context.Context, plss.DocumentFilter) ([]*plss.Document, error) {
					return []*plss.Document{{ID: "a", Fields: json.RawMessage(`{}`)}}, nil
				},
			},
			Extractor: &mock.FieldExtractor{
				ExtractFieldsFn: func([]byte) plss.ExtractedFields {
					return plss.ExtractedFields{APINumber: "123", Section: "4", WellName: "SMITH 1"}
				},
			},
			Resolver: &mock.CoordinateResolver{
				ResolveCoordinateFn: func(_ context.Context, req plss.CoordinateRequest) *plss.CoordinateResult {
					got = req
					return nil
				},
			},
		}

		_, err := b.Backfill(context.Background())

		require.NoError(t, err)
		assert.Equal(t, plss.CoordinateRequest{APINumber: "123", Section: "4"}, got)
	})
}
