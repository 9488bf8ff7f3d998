package plss

import (
	"context"
	"time"
)

// Property represents a canonical mineral property record, keyed by the
// section it covers.
type Property struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Section   int       `json:"section"`
	Township  Township  `json:"township"`
	Range     Range     `json:"range"`
	Meridian  Meridian  `json:"meridian,omitempty"`
	County    string    `json:"county"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the property contains invalid fields.
func (p *Property) Validate() error {
	return p.Location().Validate()
}

// Location returns the section the property covers.
func (p *Property) Location() Location {
	return Location{
		Section:  p.Section,
		Township: p.Township,
		Range:    p.Range,
		Meridian: p.Meridian,
		County:   p.County,
	}
}

// PropertyService represents a service for reading property records.
type PropertyService interface {
	// CreateProperty creates a new property.
	CreateProperty(ctx context.Context, property *Property) error

	// FindProperties retrieves properties matching the filter. Several
	// properties may share a section; callers wanting one take the first.
	FindProperties(ctx context.Context, filter PropertyFilter) ([]*Property, error)
}

// PropertyFilter represents a filter for FindProperties. Nil fields are
// ignored.
type PropertyFilter struct {
	Section  *int      `json:"section"`
	Township *Township `json:"township"`
	Range    *Range    `json:"range"`

	// County matches ignoring case.
	County *string `json:"county"`

	// Meridian matches properties on the meridian or with none recorded.
	Meridian *Meridian `json:"meridian"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
