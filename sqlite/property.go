package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/plss"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ plss.PropertyService = (*PropertyService)(nil)

// PropertyService implements plss.PropertyService using SQLite.
type PropertyService struct {
	db *DB
}

// NewPropertyService creates a new PropertyService.
func NewPropertyService(db *DB) *PropertyService {
	return &PropertyService{db: db}
}

// CreateProperty creates a new property.
func (s *PropertyService) CreateProperty(ctx context.Context, property *plss.Property) error {
	if err := property.Validate(); err != nil {
		return err
	}

	property.ID = uuid.New().String()
	property.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO properties (id, name, section, township_number, township_dir, range_number, range_dir,
			meridian, county, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, property.ID, property.Name, property.Section, property.Township.Number, string(property.Township.Dir),
		property.Range.Number, string(property.Range.Dir), string(property.Meridian), property.County,
		property.CreatedAt.Format(time.RFC3339))

	return err
}

// FindProperties retrieves properties matching the filter in insertion
// order. Nothing prevents two properties covering the same section.
func (s *PropertyService) FindProperties(ctx context.Context, filter plss.PropertyFilter) ([]*plss.Property, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT id, name, section, township_number, township_dir, range_number, range_dir,
		meridian, county, created_at FROM properties WHERE 1=1`)

	appendTRS(&query, &args, filter.Section, filter.Township, filter.Range, filter.Meridian)
	if filter.County != nil {
		query.WriteString(" AND county = ? COLLATE NOCASE")
		args = append(args, *filter.County)
	}

	query.WriteString(" ORDER BY rowid")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []*plss.Property
	for rows.Next() {
		var p plss.Property
		var tdir, rdir, meridian, createdAt string

		if err := rows.Scan(&p.ID, &p.Name, &p.Section, &p.Township.Number, &tdir, &p.Range.Number, &rdir,
			&meridian, &p.County, &createdAt); err != nil {
			return nil, err
		}
		p.Township.Dir = plss.Direction(tdir)
		p.Range.Dir = plss.Direction(rdir)
		p.Meridian = plss.Meridian(meridian)

		var err error
		if p.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		properties = append(properties, &p)
	}

	return properties, rows.Err()
}
