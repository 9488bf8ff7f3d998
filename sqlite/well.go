package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/plss"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ plss.WellService = (*WellService)(nil)

// WellService implements plss.WellService using SQLite.
type WellService struct {
	db *DB
}

// NewWellService creates a new WellService.
func NewWellService(db *DB) *WellService {
	return &WellService{db: db}
}

const wellColumns = `id, api_number, name, operator, status, section, township_number, township_dir,
	range_number, range_dir, meridian, county, created_at`

// CreateWell creates a new well.
func (s *WellService) CreateWell(ctx context.Context, well *plss.Well) error {
	if err := well.Validate(); err != nil {
		return err
	}

	well.ID = uuid.New().String()
	well.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO wells (id, api_number, api_digits, name, operator, status, section,
			township_number, township_dir, range_number, range_dir, meridian, county, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, well.ID, well.APINumber, plss.NormalizeAPI(well.APINumber), well.Name, well.Operator, well.Status,
		well.Section, well.Township.Number, string(well.Township.Dir), well.Range.Number, string(well.Range.Dir),
		string(well.Meridian), well.County, well.CreatedAt.Format(time.RFC3339))

	return err
}

// FindWellByAPI retrieves a well by API number, compared on digits only.
func (s *WellService) FindWellByAPI(ctx context.Context, apiNumber string) (*plss.Well, error) {
	digits := plss.NormalizeAPI(apiNumber)
	if digits == "" {
		return nil, plss.Errorf(plss.ENOTFOUND, "well not found")
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+wellColumns+` FROM wells WHERE api_digits = ? ORDER BY rowid LIMIT 1`, digits)
	well, err := scanWell(row)
	if err == sql.ErrNoRows {
		return nil, plss.Errorf(plss.ENOTFOUND, "well not found")
	}
	if err != nil {
		return nil, err
	}
	return well, nil
}

// FindWells retrieves wells matching the filter in insertion order.
func (s *WellService) FindWells(ctx context.Context, filter plss.WellFilter) ([]*plss.Well, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT ` + wellColumns + ` FROM wells WHERE 1=1`)

	if len(filter.Names) > 0 {
		query.WriteString(" AND UPPER(name) IN (?" + strings.Repeat(", ?", len(filter.Names)-1) + ")")
		for _, n := range filter.Names {
			args = append(args, strings.ToUpper(n))
		}
	}
	if filter.NamePrefix != nil {
		query.WriteString(` AND UPPER(name) LIKE ? ESCAPE '\'`)
		args = append(args, escapeLike(strings.ToUpper(*filter.NamePrefix))+"%")
	}
	appendTRS(&query, &args, filter.Section, filter.Township, filter.Range, filter.Meridian)
	if filter.Operator != nil {
		query.WriteString(` AND UPPER(operator) LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(strings.ToUpper(*filter.Operator))+"%")
	}

	query.WriteString(" ORDER BY rowid")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wells []*plss.Well
	for rows.Next() {
		well, err := scanWell(rows)
		if err != nil {
			return nil, err
		}
		wells = append(wells, well)
	}

	return wells, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanWell(row scanner) (*plss.Well, error) {
	var well plss.Well
	var tdir, rdir, meridian, createdAt string

	if err := row.Scan(&well.ID, &well.APINumber, &well.Name, &well.Operator, &well.Status, &well.Section,
		&well.Township.Number, &tdir, &well.Range.Number, &rdir, &meridian, &well.County, &createdAt); err != nil {
		return nil, err
	}
	well.Township.Dir = plss.Direction(tdir)
	well.Range.Dir = plss.Direction(rdir)
	well.Meridian = plss.Meridian(meridian)

	var err error
	if well.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &well, nil
}
