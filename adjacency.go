package plss

// Neighbor is a section adjacent to another, tagged with the compass
// point it lies in.
type Neighbor struct {
	Direction string `json:"direction"`
	Location
}

// compassOffsets lists the eight neighbors clockwise from north.
var compassOffsets = []struct {
	name   string
	dx, dy int
}{
	{"N", 0, 1},
	{"NE", 1, 1},
	{"E", 1, 0},
	{"SE", 1, -1},
	{"S", 0, -1},
	{"SW", -1, -1},
	{"W", -1, 0},
	{"NW", -1, 1},
}

// Neighbors returns the up-to-eight sections touching loc, clockwise from
// north. Township, range and baseline crossings (including the four
// diagonal corners) fall out of the grid transform. Neighbors keep the
// meridian but not the county, which may change across a township line.
// An invalid location has no neighbors.
func Neighbors(loc Location) []Neighbor {
	p, ok := loc.Grid()
	if !ok {
		return nil
	}
	neighbors := make([]Neighbor, 0, len(compassOffsets))
	for _, o := range compassOffsets {
		n, ok := offsetLocation(p, o.dx, o.dy, loc.Meridian)
		if !ok {
			continue
		}
		neighbors = append(neighbors, Neighbor{Direction: o.name, Location: n})
	}
	return neighbors
}

// ExtendedNeighbors returns every section within radius miles of loc
// (Chebyshev distance), excluding loc itself, ordered north to south and
// west to east. A radius of 2 yields up to 24 sections. The destination
// township and range of each offset come straight from floor division,
// so offsets spanning several boundaries need no stepping.
func ExtendedNeighbors(loc Location, radius int) []Location {
	p, ok := loc.Grid()
	if !ok || radius < 1 {
		return nil
	}
	side := 2*radius + 1
	out := make([]Location, 0, side*side-1)
	for dy := radius; dy >= -radius; dy-- {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n, ok := offsetLocation(p, dx, dy, loc.Meridian)
			if !ok {
				continue
			}
			out = append(out, n)
		}
	}
	return out
}

func offsetLocation(p GridPoint, dx, dy int, m Meridian) (Location, bool) {
	n, ok := GridToSection(GridPoint{X: p.X + dx, Y: p.Y + dy})
	if !ok {
		return Location{}, false
	}
	n.Meridian = m
	return n, true
}
