package plss

import "context"

// MatchResult holds the records a document was linked to.
type MatchResult struct {
	PropertyID *string `json:"propertyId,omitempty"`
	WellID     *string `json:"wellId,omitempty"`
}

// Matched reports whether anything was linked.
func (m MatchResult) Matched() bool {
	return m.PropertyID != nil || m.WellID != nil
}

// ExtractedFields holds the logical fields read from a document's
// extracted-field payload. Values are raw and not yet normalized.
type ExtractedFields struct {
	Section  string `json:"section,omitempty"`
	Township string `json:"township,omitempty"`
	Range    string `json:"range,omitempty"`
	County   string `json:"county,omitempty"`
	Meridian string `json:"meridian,omitempty"`

	// LegalDescription is the free-text description the TRS fields were
	// parsed from, when they came from one.
	LegalDescription string `json:"legalDescription,omitempty"`

	WellName  string `json:"wellName,omitempty"`
	APINumber string `json:"apiNumber,omitempty"`
	Operator  string `json:"operator,omitempty"`
}

// CoordinateRequest returns the fields needed to resolve a coordinate.
func (f ExtractedFields) CoordinateRequest() CoordinateRequest {
	return CoordinateRequest{
		APINumber: f.APINumber,
		Section:   f.Section,
		Township:  f.Township,
		Range:     f.Range,
		County:    f.County,
		Meridian:  f.Meridian,
	}
}

// FieldExtractor reads the logical fields from an untyped payload.
// Missing or malformed fields are left empty; extraction never fails.
type FieldExtractor interface {
	ExtractFields(payload []byte) ExtractedFields
}

// EntityLinker resolves documents to canonical property and well records.
type EntityLinker interface {
	// Match resolves extracted fields without touching storage writes.
	Match(ctx context.Context, fields ExtractedFields) (*MatchResult, error)

	// LinkDocument matches a stored document and writes the result back.
	// Returns ENOTFOUND if document does not exist.
	LinkDocument(ctx context.Context, id string) (*MatchResult, error)
}
