package plss

import (
	"context"
	"encoding/json"
	"time"
)

// Document represents an ingested instrument (lease, spacing order,
// pooling order, completion report) and the fields extracted from it.
type Document struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Fields holds the extracted-field payload exactly as produced by the
	// upstream extraction step. Its keys follow no fixed schema.
	Fields json.RawMessage `json:"fields"`

	// FieldsHash fingerprints Fields so repeated payloads can be found
	// without comparing them.
	FieldsHash string `json:"fieldsHash"`

	PropertyID *string           `json:"propertyId,omitempty"`
	WellID     *string           `json:"wellId,omitempty"`
	Coordinate *CoordinateResult `json:"coordinate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if len(d.Fields) == 0 {
		return Errorf(EINVALID, "document fields required")
	}
	if !json.Valid(d.Fields) {
		return Errorf(EINVALID, "document fields must be valid JSON")
	}
	return nil
}

// DocumentService represents a service for managing documents.
type DocumentService interface {
	// CreateDocument creates a new document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// UpdateDocumentMatch writes the matched property and well onto the
	// document. Nil IDs leave the stored value untouched.
	// Returns ENOTFOUND if document does not exist.
	UpdateDocumentMatch(ctx context.Context, id string, match MatchResult) error

	// UpdateDocumentCoordinate stores the resolved coordinate, replacing
	// any previous one. A nil coordinate clears it.
	// Returns ENOTFOUND if document does not exist.
	UpdateDocumentCoordinate(ctx context.Context, id string, coord *CoordinateResult) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID *string `json:"id"`

	// Unlinked restricts results to documents with no property or well.
	Unlinked bool `json:"unlinked"`

	// Fields matches documents holding the same payload, compared by its
	// FieldsHash fingerprint. Insignificant whitespace is ignored.
	Fields json.RawMessage `json:"fields,omitempty"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
