package plss

import "math"

// FeetPerMile converts grid miles to feet.
const FeetPerMile = 5280

// compassPoints are the eight bearings clockwise from north.
var compassPoints = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Wellbore describes the straight path of a horizontal well from its
// surface hole to its bottom hole.
type Wellbore struct {
	Surface  Location   `json:"surface"`
	Bottom   Location   `json:"bottom"`
	Sections []Location `json:"sections"`
	Length   int        `json:"lengthFeet"`
	Bearing  string     `json:"bearing"`
}

// TraceWellbore computes the sections, length and bearing of the path
// between two locations.
func TraceWellbore(surface, bottom Location) (*Wellbore, error) {
	if err := surface.Validate(); err != nil {
		return nil, Errorf(EINVALID, "surface hole: %s", ErrorMessage(err))
	}
	if err := bottom.Validate(); err != nil {
		return nil, Errorf(EINVALID, "bottom hole: %s", ErrorMessage(err))
	}
	if !sameMeridian(surface.Meridian, bottom.Meridian) {
		return nil, Errorf(EINVALID, "surface and bottom hole are on different meridians")
	}
	length, _ := PathLength(surface, bottom)
	bearing, _ := PathBearing(surface, bottom)
	return &Wellbore{
		Surface:  surface,
		Bottom:   bottom,
		Sections: TraversedSections(surface, bottom),
		Length:   length,
		Bearing:  bearing,
	}, nil
}

// TraversedSections returns the sections a straight wellbore crosses,
// from the surface hole to the bottom hole, without repeats. Both end
// sections are always included. Returns nil for invalid endpoints or
// endpoints on different meridians.
func TraversedSections(surface, bottom Location) []Location {
	a, ok := surface.Grid()
	if !ok {
		return nil
	}
	b, ok := bottom.Grid()
	if !ok || !sameMeridian(surface.Meridian, bottom.Meridian) {
		return nil
	}
	meridian := surface.Meridian
	if meridian == MeridianUnknown {
		meridian = bottom.Meridian
	}

	seen := make(map[key]bool)
	var out []Location
	add := func(l Location) {
		if seen[l.key()] {
			return
		}
		seen[l.key()] = true
		out = append(out, l)
	}

	add(surface)
	for _, p := range bresenham(a, b) {
		l, ok := GridToSection(p)
		if !ok {
			continue
		}
		l.Meridian = meridian
		add(l)
	}
	add(bottom)
	return out
}

// PathLength returns the straight-line distance between two sections in
// feet, rounded to the nearest foot.
func PathLength(surface, bottom Location) (int, bool) {
	dx, dy, ok := delta(surface, bottom)
	if !ok {
		return 0, false
	}
	return int(math.Round(math.Hypot(float64(dx), float64(dy)) * FeetPerMile)), true
}

// PathBearing returns the nearest of the eight compass points from the
// surface hole toward the bottom hole. A zero-length path has no bearing.
func PathBearing(surface, bottom Location) (string, bool) {
	dx, dy, ok := delta(surface, bottom)
	if !ok || (dx == 0 && dy == 0) {
		return "", false
	}
	deg := math.Atan2(float64(dx), float64(dy)) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return compassPoints[int(math.Round(deg/45))%len(compassPoints)], true
}

func delta(a, b Location) (dx, dy int, ok bool) {
	pa, ok := a.Grid()
	if !ok {
		return 0, 0, false
	}
	pb, ok := b.Grid()
	if !ok {
		return 0, 0, false
	}
	return pb.X - pa.X, pb.Y - pa.Y, true
}

func sameMeridian(a, b Meridian) bool {
	return a == MeridianUnknown || b == MeridianUnknown || a == b
}

// bresenham returns the grid cells on the line from a to b, inclusive.
func bresenham(a, b GridPoint) []GridPoint {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	points := make([]GridPoint, 0, max(dx, -dy)+1)
	x, y := a.X, a.Y
	e := dx + dy
	for {
		points = append(points, GridPoint{X: x, Y: y})
		if x == b.X && y == b.Y {
			return points
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
