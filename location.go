package plss

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction is the compass letter attached to a township or range number.
type Direction string

// Direction constants.
const (
	North Direction = "N"
	South Direction = "S"
	East  Direction = "E"
	West  Direction = "W"
)

// Meridian identifies the principal meridian a PLSS grid is anchored to.
type Meridian string

// Meridian constants. Only the two Oklahoma meridians are supported.
const (
	MeridianUnknown  Meridian = ""
	IndianMeridian   Meridian = "IM"
	CimarronMeridian Meridian = "CM"
)

// Valid reports whether m is one of the supported meridians.
func (m Meridian) Valid() bool {
	return m == IndianMeridian || m == CimarronMeridian
}

// Township is a township number with its direction from the baseline.
type Township struct {
	Number int
	Dir    Direction
}

// String returns the canonical form, e.g. "7N". Invalid townships
// render as an empty string.
func (t Township) String() string {
	if !t.valid() {
		return ""
	}
	return strconv.Itoa(t.Number) + string(t.Dir)
}

func (t Township) valid() bool {
	return t.Number > 0 && t.Number <= maxGridNumber && (t.Dir == North || t.Dir == South)
}

// MarshalText encodes the township in its canonical form.
func (t Township) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes any township spelling ParseTownship accepts. An
// empty value decodes to the zero Township.
func (t *Township) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*t = Township{}
		return nil
	}
	v, ok := ParseTownship(string(b))
	if !ok {
		return Errorf(EINVALID, "invalid township format: %q", string(b))
	}
	*t = v
	return nil
}

// Range is a range number with its direction from the principal meridian.
type Range struct {
	Number int
	Dir    Direction
}

// String returns the canonical form, e.g. "4W".
func (r Range) String() string {
	if !r.valid() {
		return ""
	}
	return strconv.Itoa(r.Number) + string(r.Dir)
}

func (r Range) valid() bool {
	return r.Number > 0 && r.Number <= maxGridNumber && (r.Dir == East || r.Dir == West)
}

// MarshalText encodes the range in its canonical form.
func (r Range) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes any range spelling ParseRange accepts. An empty
// value decodes to the zero Range.
func (r *Range) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*r = Range{}
		return nil
	}
	v, ok := ParseRange(string(b))
	if !ok {
		return Errorf(EINVALID, "invalid range format: %q", string(b))
	}
	*r = v
	return nil
}

// Location identifies one section of the PLSS grid.
type Location struct {
	Section  int      `json:"section"`
	Township Township `json:"township"`
	Range    Range    `json:"range"`
	Meridian Meridian `json:"meridian,omitempty"`
	County   string   `json:"county,omitempty"`
}

// String formats the location as "S14-T5N-R4W", followed by the meridian
// when one is set.
func (l Location) String() string {
	s := fmt.Sprintf("S%d-T%s-R%s", l.Section, l.Township, l.Range)
	if l.Meridian != MeridianUnknown {
		s += " " + string(l.Meridian)
	}
	return s
}

// SameUnit reports whether two locations name the same section,
// ignoring county. An unknown meridian matches any meridian.
func (l Location) SameUnit(o Location) bool {
	if l.Section != o.Section || l.Township != o.Township || l.Range != o.Range {
		return false
	}
	return l.Meridian == MeridianUnknown || o.Meridian == MeridianUnknown || l.Meridian == o.Meridian
}

// Validate returns an EINVALID error listing every problem with the location.
func (l Location) Validate() error {
	if reasons := l.problems(); len(reasons) > 0 {
		return Errorf(EINVALID, "invalid location: %s", strings.Join(reasons, "; "))
	}
	return nil
}

func (l Location) problems() []string {
	var reasons []string
	if l.Section < 1 || l.Section > 36 {
		reasons = append(reasons, "section out of 1-36 range")
	}
	if !l.Township.valid() {
		reasons = append(reasons, "invalid township format")
	}
	if !l.Range.valid() {
		reasons = append(reasons, "invalid range format")
	}
	if l.Meridian != MeridianUnknown && !l.Meridian.Valid() {
		reasons = append(reasons, "unknown meridian")
	}
	return reasons
}

// key identifies a section for de-duplication.
type key struct {
	section  int
	township Township
	rng      Range
}

func (l Location) key() key {
	return key{section: l.Section, township: l.Township, rng: l.Range}
}
