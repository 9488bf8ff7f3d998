package plss

import "context"

// PrecisionTier records which resolution strategy produced a coordinate.
type PrecisionTier string

// PrecisionTier constants, most precise first.
const (
	PrecisionGIS           PrecisionTier = "GIS"
	PrecisionTRSCalculated PrecisionTier = "TRS_CALCULATED"
	PrecisionCountyCenter  PrecisionTier = "COUNTY_CENTER"
)

// Coordinate is a WGS84 latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate is in range and not the null
// island placeholder some sources return for missing data.
func (c Coordinate) Valid() bool {
	if c.Latitude == 0 && c.Longitude == 0 {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// CoordinateResult is a best-effort coordinate tagged with its precision.
type CoordinateResult struct {
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Precision PrecisionTier `json:"precision"`
	Geohash   string        `json:"geohash,omitempty"`
}

// CoordinateRequest carries the raw fields a coordinate can be resolved
// from. Any of them may be empty.
type CoordinateRequest struct {
	APINumber string `json:"apiNumber,omitempty"`
	Section   string `json:"section,omitempty"`
	Township  string `json:"township,omitempty"`
	Range     string `json:"range,omitempty"`
	County    string `json:"county,omitempty"`
	Meridian  string `json:"meridian,omitempty"`
}

// WellLocator looks up surveyed well coordinates in an external GIS.
type WellLocator interface {
	// LocateWell returns the surface-hole coordinate of a well.
	// Returns ENOTFOUND if the well is unknown or has no coordinates.
	LocateWell(ctx context.Context, apiNumber string) (*Coordinate, error)
}

// CoordinateResolver produces the most precise coordinate available for
// a request. It never fabricates a point: nil means no strategy applied.
type CoordinateResolver interface {
	ResolveCoordinate(ctx context.Context, req CoordinateRequest) *CoordinateResult
}

// Initial points of the supported meridians.
var initialPoints = map[Meridian]Coordinate{
	IndianMeridian:   {Latitude: 34.5, Longitude: -97.246944},
	CimarronMeridian: {Latitude: 36.5, Longitude: -103.0},
}

// Degrees per mile of the flat approximation. Longitude spacing assumes
// roughly 35.5°N and drifts by a few percent across Oklahoma; regions at
// other latitudes need a geodesic computation instead.
const (
	DegreesLatitudePerMile  = 1.0 / 69.05
	DegreesLongitudePerMile = 1.0 / 56.33
)

// ApproximateCoordinate estimates the center of a section from the
// meridian's initial point: the township and range offsets plus the
// section's position within the township, with the center half a mile
// in from the section's south and west lines. A location without a
// meridian takes the one implied by its county.
func ApproximateCoordinate(loc Location) (Coordinate, bool) {
	p, ok := loc.Grid()
	if !ok {
		return Coordinate{}, false
	}
	m := loc.Meridian
	if m == MeridianUnknown {
		m = MeridianForCounty(loc.County)
	}
	origin, ok := initialPoints[m]
	if !ok {
		return Coordinate{}, false
	}
	return Coordinate{
		Latitude:  origin.Latitude + (float64(p.Y)+0.5)*DegreesLatitudePerMile,
		Longitude: origin.Longitude + (float64(p.X)+0.5)*DegreesLongitudePerMile,
	}, true
}
