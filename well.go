package plss

import (
	"context"
	"strings"
	"time"
	"unicode"
)

// Well represents a canonical well record.
type Well struct {
	ID        string    `json:"id"`
	APINumber string    `json:"apiNumber"`
	Name      string    `json:"name"`
	Operator  string    `json:"operator"`
	Status    string    `json:"status"`
	Section   int       `json:"section"`
	Township  Township  `json:"township"`
	Range     Range     `json:"range"`
	Meridian  Meridian  `json:"meridian,omitempty"`
	County    string    `json:"county"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the well contains invalid fields.
func (w *Well) Validate() error {
	if w.Name == "" && w.APINumber == "" {
		return Errorf(EINVALID, "well name or API number required")
	}
	if w.Section != 0 {
		if err := w.Location().Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Location returns the well's surface section.
func (w *Well) Location() Location {
	return Location{
		Section:  w.Section,
		Township: w.Township,
		Range:    w.Range,
		Meridian: w.Meridian,
		County:   w.County,
	}
}

// IsActive reports whether the well's status marks it as producing or
// otherwise active.
func (w *Well) IsActive() bool {
	switch strings.ToUpper(strings.TrimSpace(w.Status)) {
	case "AC", "ACTIVE", "PRODUCING", "PR":
		return true
	}
	return false
}

// NormalizeAPI reduces an API number to its digits so that
// "35-051-24567" and "3505124567" compare equal.
func NormalizeAPI(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// WellService represents a service for reading well records.
type WellService interface {
	// CreateWell creates a new well.
	CreateWell(ctx context.Context, well *Well) error

	// FindWellByAPI retrieves a well by API number, compared on digits only.
	// Returns ENOTFOUND if no well has that number.
	FindWellByAPI(ctx context.Context, apiNumber string) (*Well, error)

	// FindWells retrieves wells matching the filter.
	FindWells(ctx context.Context, filter WellFilter) ([]*Well, error)
}

// WellFilter represents a filter for FindWells. Nil fields are ignored.
type WellFilter struct {
	// Names matches any of the names exactly, ignoring case.
	Names []string `json:"names"`

	// NamePrefix matches names starting with the prefix, ignoring case.
	NamePrefix *string `json:"namePrefix"`

	Section  *int      `json:"section"`
	Township *Township `json:"township"`
	Range    *Range    `json:"range"`

	// Meridian matches wells on the meridian or with no meridian recorded.
	Meridian *Meridian `json:"meridian"`

	// Operator matches operators containing the text, ignoring case.
	Operator *string `json:"operator"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
