package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/plss"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ plss.DocumentService = (*DocumentService)(nil)

// DocumentService implements plss.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

const documentColumns = `id, name, fields, fields_hash, property_id, well_id, latitude, longitude,
	precision, geohash, created_at, updated_at`

// hashFields computes the xxHash of the compacted field payload as a hex
// string, so payloads differing only in whitespace share a hash.
func hashFields(fields []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, fields); err == nil {
		fields = buf.Bytes()
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(fields))
}

// CreateDocument creates a new document.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *plss.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	doc.FieldsHash = hashFields(doc.Fields)

	lat, lng, precision, geohash := coordinateArgs(doc.Coordinate)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, name, fields, fields_hash, property_id, well_id, latitude, longitude,
			precision, geohash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.Name, string(doc.Fields), doc.FieldsHash, nullable(doc.PropertyID), nullable(doc.WellID), lat, lng, precision, geohash,
		doc.CreatedAt.Format(time.RFC3339), doc.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*plss.Document, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+documentColumns+` FROM documents WHERE id = ?`, id)
	doc, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, plss.Errorf(plss.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocuments retrieves documents matching the filter in insertion order.
func (s *DocumentService) FindDocuments(ctx context.Context, filter plss.DocumentFilter) ([]*plss.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT ` + documentColumns + ` FROM documents WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Unlinked {
		query.WriteString(" AND property_id IS NULL AND well_id IS NULL")
	}
	if len(filter.Fields) > 0 {
		query.WriteString(" AND fields_hash = ?")
		args = append(args, hashFields(filter.Fields))
	}

	query.WriteString(" ORDER BY rowid")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*plss.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// UpdateDocumentMatch writes the matched IDs. A nil ID keeps the stored
// value so replaying a weaker match never clears an earlier one.
func (s *DocumentService) UpdateDocumentMatch(ctx context.Context, id string, match plss.MatchResult) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE documents
		SET property_id = COALESCE(?, property_id),
			well_id = COALESCE(?, well_id),
			updated_at = ?
		WHERE id = ?
	`, nullable(match.PropertyID), nullable(match.WellID), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	return requireAffected(result, "document not found")
}

// UpdateDocumentCoordinate replaces the document's coordinate.
func (s *DocumentService) UpdateDocumentCoordinate(ctx context.Context, id string, coord *plss.CoordinateResult) error {
	lat, lng, precision, geohash := coordinateArgs(coord)
	result, err := s.db.ExecContext(ctx, `
		UPDATE documents
		SET latitude = ?, longitude = ?, precision = ?, geohash = ?, updated_at = ?
		WHERE id = ?
	`, lat, lng, precision, geohash, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	return requireAffected(result, "document not found")
}

func requireAffected(result sql.Result, msg string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return plss.Errorf(plss.ENOTFOUND, "%s", msg)
	}
	return nil
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func coordinateArgs(c *plss.CoordinateResult) (lat, lng, precision, geohash any) {
	if c == nil {
		return nil, nil, nil, nil
	}
	return c.Latitude, c.Longitude, string(c.Precision), c.Geohash
}

func scanDocument(row scanner) (*plss.Document, error) {
	var doc plss.Document
	var fields, createdAt, updatedAt string
	var propertyID, wellID, precision, geohash sql.NullString
	var lat, lng sql.NullFloat64

	if err := row.Scan(&doc.ID, &doc.Name, &fields, &doc.FieldsHash, &propertyID, &wellID, &lat, &lng,
		&precision, &geohash, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	doc.Fields = json.RawMessage(fields)
	if propertyID.Valid {
		doc.PropertyID = &propertyID.String
	}
	if wellID.Valid {
		doc.WellID = &wellID.String
	}
	if lat.Valid && lng.Valid {
		doc.Coordinate = &plss.CoordinateResult{
			Latitude:  lat.Float64,
			Longitude: lng.Float64,
			Precision: plss.PrecisionTier(precision.String),
			Geohash:   geohash.String,
		}
	}

	var err error
	if doc.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if doc.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &doc, nil
}
