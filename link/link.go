// Package link resolves documents to canonical property and well records.
package link

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/plss"
)

// Compile-time interface verification.
var _ plss.EntityLinker = (*Linker)(nil)

// candidateLimit caps the wells fetched per cascade query.
const candidateLimit = 100

// Linker matches extracted document fields against stored properties
// and wells and writes the result back onto the document.
type Linker struct {
	Properties plss.PropertyService
	Wells      plss.WellService
	Documents  plss.DocumentService
	Extractor  plss.FieldExtractor
	Logger     *slog.Logger
}

// query is the normalized form of extracted fields.
type query struct {
	section  int
	township plss.Township
	rng      plss.Range
	meridian plss.Meridian
	county   string

	hasSection bool
	hasTR      bool

	names    nameVariants
	api      string
	operator string
}

func newQuery(f plss.ExtractedFields) query {
	var q query
	q.section, q.hasSection = plss.ParseSection(f.Section)
	t, tok := plss.ParseTownship(f.Township)
	r, rok := plss.ParseRange(f.Range)
	if tok && rok {
		q.township, q.rng, q.hasTR = t, r, true
	}
	q.county = plss.NormalizeCounty(f.County)
	if m, ok := plss.ParseMeridian(f.Meridian); ok {
		q.meridian = m
	} else if q.county != "" {
		q.meridian = plss.MeridianForCounty(q.county)
	}
	q.names = variants(f.WellName)
	q.api = plss.NormalizeAPI(f.APINumber)
	q.operator = f.Operator
	return q
}

func (q query) meridianFilter() *plss.Meridian {
	if q.meridian == plss.MeridianUnknown {
		return nil
	}
	m := q.meridian
	return &m
}

// Match resolves fields to at most one property and one well. Finding
// nothing is not an error.
func (l *Linker) Match(ctx context.Context, fields plss.ExtractedFields) (*plss.MatchResult, error) {
	q := newQuery(fields)
	var result plss.MatchResult

	property, err := l.matchProperty(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("match property: %w", err)
	}
	if property != nil {
		result.PropertyID = &property.ID
	}

	well, tier, err := l.matchWell(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("match well: %w", err)
	}
	if well != nil {
		result.WellID = &well.ID
		l.logger().Debug("well matched", "well", well.ID, "tier", tier)
	}

	return &result, nil
}

// LinkDocument matches a stored document and writes any match back.
func (l *Linker) LinkDocument(ctx context.Context, id string) (*plss.MatchResult, error) {
	doc, err := l.Documents.FindDocumentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return l.link(ctx, doc)
}

func (l *Linker) link(ctx context.Context, doc *plss.Document) (*plss.MatchResult, error) {
	fields := l.Extractor.ExtractFields(doc.Fields)
	result, err := l.Match(ctx, fields)
	if err != nil {
		return nil, err
	}
	if !result.Matched() {
		l.logger().Info("document unmatched", "document", doc.ID)
		return result, nil
	}
	if err := l.Documents.UpdateDocumentMatch(ctx, doc.ID, *result); err != nil {
		return nil, fmt.Errorf("write match: %w", err)
	}
	l.logger().Info("document linked", "document", doc.ID,
		"property", deref(result.PropertyID), "well", deref(result.WellID))
	return result, nil
}

// matchProperty runs one query on section, township, range, county and
// meridian. Several properties may cover a section; the first wins.
func (l *Linker) matchProperty(ctx context.Context, q query) (*plss.Property, error) {
	if !q.hasSection || !q.hasTR {
		return nil, nil
	}
	filter := plss.PropertyFilter{
		Section:  &q.section,
		Township: &q.township,
		Range:    &q.rng,
		Meridian: q.meridianFilter(),
		Limit:    1,
	}
	if q.county != "" {
		filter.County = &q.county
	}
	properties, err := l.Properties.FindProperties(ctx, filter)
	if err != nil || len(properties) == 0 {
		return nil, err
	}
	return properties[0], nil
}

// matchWell runs the well cascade and reports which tier matched.
func (l *Linker) matchWell(ctx context.Context, q query) (*plss.Well, string, error) {
	if q.api != "" {
		well, err := l.Wells.FindWellByAPI(ctx, q.api)
		switch {
		case err == nil:
			return well, "api", nil
		case plss.ErrorCode(err) != plss.ENOTFOUND:
			return nil, "", err
		}
	}
	if q.names.empty() {
		return nil, "", nil
	}

	if q.hasSection && q.hasTR {
		wells, err := l.tier(ctx, q, plss.WellFilter{
			Section:  &q.section,
			Township: &q.township,
			Range:    &q.rng,
			Meridian: q.meridianFilter(),
		})
		if err != nil || len(wells) > 0 {
			return preferActive(wells), "name+trs", err
		}
	}

	if q.hasTR {
		wells, err := l.tier(ctx, q, plss.WellFilter{
			Township: &q.township,
			Range:    &q.rng,
			Meridian: q.meridianFilter(),
		})
		if err != nil || len(wells) > 0 {
			return preferSection(wells, q), "name+township+range", err
		}
	}

	wells, err := l.tier(ctx, q, plss.WellFilter{})
	if err != nil || len(wells) > 0 {
		return preferActive(wells), "name", err
	}
	return nil, "", nil
}

// tier searches one cascade level, narrowed by operator when known. An
// operator filter that leaves no candidates is dropped.
func (l *Linker) tier(ctx context.Context, q query, filter plss.WellFilter) ([]*plss.Well, error) {
	filter.Limit = candidateLimit
	if q.operator != "" {
		f := filter
		f.Operator = &q.operator
		wells, err := l.byName(ctx, q.names, f)
		if err != nil || len(wells) > 0 {
			return wells, err
		}
	}
	return l.byName(ctx, q.names, filter)
}

// byName tries the exact name variants, then the base name as a prefix.
func (l *Linker) byName(ctx context.Context, names nameVariants, filter plss.WellFilter) ([]*plss.Well, error) {
	f := filter
	f.Names = names.exact
	wells, err := l.Wells.FindWells(ctx, f)
	if err != nil || len(wells) > 0 || names.base == "" {
		return wells, err
	}
	f = filter
	prefix := names.base + " "
	f.NamePrefix = &prefix
	return l.Wells.FindWells(ctx, f)
}

func (l *Linker) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l.Logger
}

func preferActive(wells []*plss.Well) *plss.Well {
	if len(wells) == 0 {
		return nil
	}
	for _, w := range wells {
		if w.IsActive() {
			return w
		}
	}
	return wells[0]
}

// preferSection ranks a well in the queried section above active status.
func preferSection(wells []*plss.Well, q query) *plss.Well {
	target := plss.Location{Section: q.section, Township: q.township, Range: q.rng, Meridian: q.meridian}
	var best *plss.Well
	bestScore := -1
	for _, w := range wells {
		score := 0
		if q.hasSection && w.Location().SameUnit(target) {
			score += 2
		}
		if w.IsActive() {
			score++
		}
		if score > bestScore {
			best, bestScore = w, score
		}
	}
	return best
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
