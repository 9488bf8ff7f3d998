package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/plss"
	main "github.com/fwojciec/plss/cmd/plss"
	"github.com/fwojciec/plss/gjson"
	"github.com/fwojciec/plss/link"
	"github.com/fwojciec/plss/locate"
	"github.com/fwojciec/plss/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeps() (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
	}, stdout, stderr
}

func TestParseCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints primary and additional locations", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		cmd := &main.ParseCmd{Text: []string{"S35 T13N R12E AND S2 T12N R12E", "McClain County"}}

		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "primary     S35-T13N-R12E IM  McClain County")
		assert.Contains(t, output, "additional  S2-T12N-R12E IM  McClain County")
	})

	t.Run("reports text without a legal description", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps()
		cmd := &main.ParseCmd{Text: []string{"no", "location", "here"}}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, plss.ENOTFOUND, plss.ErrorCode(err))
		assert.Contains(t, stderr.String(), "no legal description found")
		assert.Empty(t, stdout.String())
	})
}

func TestNeighborsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists eight neighbors with directions", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		cmd := &main.NeighborsCmd{TRS: "S1-T5N-R4W", Radius: 1}

		require.NoError(t, cmd.Run(deps))

		lines := bytes.Split(bytes.TrimSpace(stdout.Bytes()), []byte("\n"))
		assert.Len(t, lines, 8)
		assert.Contains(t, stdout.String(), "N   S36-T6N-R4W")
		assert.Contains(t, stdout.String(), "E   S6-T5N-R3W")
	})

	t.Run("lists the extended ring for a larger radius", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		cmd := &main.NeighborsCmd{TRS: "S14-T5N-R4W", Radius: 2}

		require.NoError(t, cmd.Run(deps))

		lines := bytes.Split(bytes.TrimSpace(stdout.Bytes()), []byte("\n"))
		assert.Len(t, lines, 24)
	})

	t.Run("rejects an unparseable section", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		cmd := &main.NeighborsCmd{TRS: "garbage", Radius: 1}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, plss.EINVALID, plss.ErrorCode(err))
		assert.Contains(t, stderr.String(), "unrecognized section")
	})

	t.Run("rejects a zero radius", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		cmd := &main.NeighborsCmd{TRS: "S14-T5N-R4W", Radius: 0}

		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "radius must be at least 1")
	})
}

func TestPathCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints length, bearing and sections", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		cmd := &main.PathCmd{Surface: "S1-T1N-R1W", Bottom: "S3-T1N-R1W"}

		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "Length:   10560 ft")
		assert.Contains(t, output, "Bearing:  W")
		assert.Contains(t, output, "Sections: 3")
		assert.Contains(t, output, "S2-T1N-R1W")
	})

	t.Run("omits the bearing for a single section", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		cmd := &main.PathCmd{Surface: "S14-T5N-R4W", Bottom: "S14-T5N-R4W"}

		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "Length:   0 ft")
		assert.NotContains(t, stdout.String(), "Bearing")
	})

	t.Run("rejects an unparseable bottom hole", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		cmd := &main.PathCmd{Surface: "S1-T1N-R1W", Bottom: "nowhere"}

		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "unrecognized section")
	})
}

func TestLocateCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the resolved coordinate", func(t *testing.T) {
		t.Parallel()

		var got plss.CoordinateRequest
		deps, stdout, _ := newDeps()
		deps.Resolver = &mock.CoordinateResolver{
			ResolveCoordinateFn: func(_ context.Context, req plss.CoordinateRequest) *plss.CoordinateResult {
				got = req
				return &plss.CoordinateResult{
					Latitude:  34.898,
					Longitude: -97.593,
					Precision: plss.PrecisionTRSCalculated,
					Geohash:   "9y6abc",
				}
			},
		}
		cmd := &main.LocateCmd{Section: "14", Township: "5N", Range: "4W"}

		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, plss.CoordinateRequest{Section: "14", Township: "5N", Range: "4W"}, got)
		assert.Equal(t, "34.898000, -97.593000  TRS_CALCULATED  9y6abc\n", stdout.String())
	})

	t.Run("resolves through the real resolver without GIS", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Resolver = &locate.Resolver{}
		cmd := &main.LocateCmd{County: "Texas"}

		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "COUNTY_CENTER")
	})

	t.Run("requires at least one field", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Resolver = &mock.CoordinateResolver{
			ResolveCoordinateFn: func(context.Context, plss.CoordinateRequest) *plss.CoordinateResult {
				t.Fatal("resolver should not be called")
				return nil
			},
		}

		err := (&main.LocateCmd{}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, plss.EINVALID, plss.ErrorCode(err))
		assert.Contains(t, stderr.String(), "provide --api")
	})

	t.Run("reports an unresolved request", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps()
		deps.Resolver = &mock.CoordinateResolver{
			ResolveCoordinateFn: func(context.Context, plss.CoordinateRequest) *plss.CoordinateResult {
				return nil
			},
		}

		err := (&main.LocateCmd{County: "Nowhere"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, plss.ENOTFOUND, plss.ErrorCode(err))
		assert.Contains(t, stderr.String(), "no coordinate could be resolved")
		assert.Empty(t, stdout.String())
	})
}

func TestImportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("creates each well in order", func(t *testing.T) {
		t.Parallel()

		var created []*plss.Well
		deps, stdout, _ := newDeps()
		deps.Wells = &mock.WellService{
			CreateWellFn: func(_ context.Context, w *plss.Well) error {
				created = append(created, w)
				return nil
			},
		}
		path := writeFile(t, t.TempDir(), "wells.json", `[
			{"apiNumber": "3505124567", "name": "SMITH 1", "section": 14, "township": "5 North", "range": "4W"},
			{"name": "JONES 2"}
		]`)

		require.NoError(t, (&main.ImportCmd{Kind: "wells", File: path}).Run(deps))

		require.Len(t, created, 2)
		assert.Equal(t, plss.Township{Number: 5, Dir: plss.North}, created[0].Township)
		assert.Equal(t, "JONES 2", created[1].Name)
		assert.Contains(t, stdout.String(), "Imported 2 wells")
	})

	t.Run("stops at the first invalid property", func(t *testing.T) {
		t.Parallel()

		var created int
		deps, stdout, stderr := newDeps()
		deps.Properties = &mock.PropertyService{
			CreatePropertyFn: func(context.Context, *plss.Property) error {
				created++
				return nil
			},
		}
		path := writeFile(t, t.TempDir(), "properties.json", `[
			{"name": "ok", "section": 1, "township": "1N", "range": "1W"},
			{"name": "bad", "section": 40, "township": "1N", "range": "1W"}
		]`)

		err := (&main.ImportCmd{Kind: "properties", File: path}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, 1, created)
		assert.Contains(t, stderr.String(), "section out of 1-36 range")
		assert.Contains(t, stderr.String(), "1 properties imported before the failure")
		assert.Empty(t, stdout.String())
	})

	t.Run("keeps document fields verbatim", func(t *testing.T) {
		t.Parallel()

		var fields json.RawMessage
		deps, _, _ := newDeps()
		deps.Documents = &mock.DocumentService{
			FindDocumentsFn: func(context.Context, plss.DocumentFilter) ([]*plss.Document, error) {
				return nil, nil
			},
			CreateDocumentFn: func(_ context.Context, d *plss.Document) error {
				fields = d.Fields
				return nil
			},
		}
		path := writeFile(t, t.TempDir(), "documents.json", `[{"name": "lease", "fields": {"County": "Grady"}}]`)

		require.NoError(t, (&main.ImportCmd{Kind: "documents", File: path}).Run(deps))

		assert.JSONEq(t, `{"County": "Grady"}`, string(fields))
	})

	t.Run("skips documents whose payload is already stored", func(t *testing.T) {
		t.Parallel()

		var lookedUp []string
		var created []string
		deps, stdout, _ := newDeps()
		deps.Documents = &mock.DocumentService{
			FindDocumentsFn: func(_ context.Context, f plss.DocumentFilter) ([]*plss.Document, error) {
				lookedUp = append(lookedUp, string(f.Fields))
				assert.Equal(t, 1, f.Limit)
				if strings.Contains(string(f.Fields), "Grady") {
					return []*plss.Document{{ID: "doc-1"}}, nil
				}
				return nil, nil
			},
			CreateDocumentFn: func(_ context.Context, d *plss.Document) error {
				created = append(created, d.Name)
				return nil
			},
		}
		path := writeFile(t, t.TempDir(), "documents.json", `[
			{"name": "old lease", "fields": {"county": "Grady"}},
			{"name": "new lease", "fields": {"county": "Kay"}}
		]`)

		require.NoError(t, (&main.ImportCmd{Kind: "documents", File: path}).Run(deps))

		assert.Len(t, lookedUp, 2)
		assert.Equal(t, []string{"new lease"}, created)
		assert.Contains(t, stdout.String(), "Imported 1 documents")
		assert.Contains(t, stdout.String(), "Skipped 1 already stored")
	})

	t.Run("imports duplicates when allowed", func(t *testing.T) {
		t.Parallel()

		var created int
		deps, stdout, _ := newDeps()
		deps.Documents = &mock.DocumentService{
			CreateDocumentFn: func(context.Context, *plss.Document) error {
				created++
				return nil
			},
		}
		path := writeFile(t, t.TempDir(), "documents.json", `[{"fields": {"county": "Grady"}}, {"fields": {"county": "Grady"}}]`)

		require.NoError(t, (&main.ImportCmd{Kind: "documents", File: path, AllowDuplicates: true}).Run(deps))

		assert.Equal(t, 2, created)
		assert.Contains(t, stdout.String(), "Imported 2 documents")
		assert.NotContains(t, stdout.String(), "Skipped")
	})

	t.Run("rejects a file that is not a JSON array", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		path := writeFile(t, t.TempDir(), "wells.json", `{"name": "not an array"}`)

		err := (&main.ImportCmd{Kind: "wells", File: path}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, plss.EINVALID, plss.ErrorCode(err))
		assert.Contains(t, stderr.String(), "invalid JSON array")
	})

	t.Run("reports a missing file", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()

		err := (&main.ImportCmd{Kind: "wells", File: filepath.Join(t.TempDir(), "missing.json")}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}

func TestLinkCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints matched property and well", func(t *testing.T) {
		t.Parallel()

		propertyID, wellID := "prop-1", "well-1"
		deps, stdout, _ := newDeps()
		deps.Linker = &mock.EntityLinker{
			LinkDocumentFn: func(_ context.Context, id string) (*plss.MatchResult, error) {
				assert.Equal(t, "doc-1", id)
				return &plss.MatchResult{PropertyID: &propertyID, WellID: &wellID}, nil
			},
		}

		require.NoError(t, (&main.LinkCmd{ID: "doc-1"}).Run(deps))

		assert.Contains(t, stdout.String(), "Property: prop-1")
		assert.Contains(t, stdout.String(), "Well:     well-1")
	})

	t.Run("reports an unmatched document", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Linker = &mock.EntityLinker{
			LinkDocumentFn: func(context.Context, string) (*plss.MatchResult, error) {
				return &plss.MatchResult{}, nil
			},
		}

		require.NoError(t, (&main.LinkCmd{ID: "doc-1"}).Run(deps))

		assert.Equal(t, "No property or well matched document doc-1\n", stdout.String())
	})

	t.Run("links through the real linker", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Linker = &link.Linker{
			Documents: &mock.DocumentService{
				FindDocumentByIDFn: func(_ context.Context, id string) (*plss.Document, error) {
					return &plss.Document{ID: id, Fields: json.RawMessage(`{"api_number": "35-051-24567"}`)}, nil
				},
				UpdateDocumentMatchFn: func(context.Context, string, plss.MatchResult) error {
					return nil
				},
			},
			Wells: &mock.WellService{
				FindWellByAPIFn: func(context.Context, string) (*plss.Well, error) {
					return &plss.Well{ID: "well-1"}, nil
				},
			},
			Properties: &mock.PropertyService{},
			Extractor:  gjson.NewExtractor(),
		}

		require.NoError(t, (&main.LinkCmd{ID: "doc-1"}).Run(deps))

		assert.Contains(t, stdout.String(), "Well:     well-1")
		assert.NotContains(t, stdout.String(), "Property:")
	})

	t.Run("reports a missing document", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Linker = &mock.EntityLinker{
			LinkDocumentFn: func(context.Context, string) (*plss.MatchResult, error) {
				return nil, plss.Errorf(plss.ENOTFOUND, "document not found")
			},
		}

		err := (&main.LinkCmd{ID: "missing"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, plss.ENOTFOUND, plss.ErrorCode(err))
		assert.Contains(t, stderr.String(), "document not found")
	})
}

func TestRelinkCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the summary even when listing fails", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps()
		deps.Relinker = &link.Linker{
			Documents: &mock.DocumentService{
				FindDocumentsFn: func(context.Context, plss.DocumentFilter) ([]*plss.Document, error) {
					return nil, errors.New("disk on fire")
				},
			},
		}

		err := (&main.RelinkCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stdout.String(), "Documents: 0")
		assert.Contains(t, stderr.String(), "error:")
	})
}

func TestBackfillCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the summary", func(t *testing.T) {
		t.Parallel()

		var stored *plss.CoordinateResult
		deps, stdout, _ := newDeps()
		deps.Backfiller = &locate.Backfiller{
			Documents: &mock.DocumentService{
				FindDocumentsFn: func(context.Context, plss.DocumentFilter) ([]*plss.Document, error) {
					return []*plss.Document{{ID: "doc-1"}}, nil
				},
				UpdateDocumentCoordinateFn: func(_ context.Context, _ string, c *plss.CoordinateResult) error {
					stored = c
					return nil
				},
			},
			Extractor: &mock.FieldExtractor{
				ExtractFieldsFn: func([]byte) plss.ExtractedFields {
					return plss.ExtractedFields{County: "Grady"}
				},
			},
			Resolver:  &locate.Resolver{},
		}

		require.NoError(t, (&main.BackfillCmd{}).Run(deps))

		require.NotNil(t, stored)
		assert.Equal(t, plss.PrecisionCountyCenter, stored.Precision)
		assert.Contains(t, stdout.String(), "Documents: 1  resolved: 1  unresolved: 0  failed: 0")
	})
}
