package sqlite

import (
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/plss"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	} else if offset > 0 {
		// SQLite requires a LIMIT before OFFSET.
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// appendTRS appends the section, township, range and meridian predicates
// shared by the well and property filters.
func appendTRS(query *strings.Builder, args *[]any, section *int, t *plss.Township, r *plss.Range, m *plss.Meridian) {
	if section != nil {
		query.WriteString(" AND section = ?")
		*args = append(*args, *section)
	}
	if t != nil {
		query.WriteString(" AND township_number = ? AND township_dir = ?")
		*args = append(*args, t.Number, string(t.Dir))
	}
	if r != nil {
		query.WriteString(" AND range_number = ? AND range_dir = ?")
		*args = append(*args, r.Number, string(r.Dir))
	}
	if m != nil {
		query.WriteString(" AND (meridian = ? OR meridian = '')")
		*args = append(*args, string(*m))
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE wildcards for use with ESCAPE '\'.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
