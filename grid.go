package plss

// GridPoint is the south-west corner of a section in whole miles from the
// meridian's initial point. X grows east and Y grows north.
type GridPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// sectionsPerSide is the width of a township in sections (and miles).
const sectionsPerSide = 6

// SectionToGrid converts a section within a township and range to its
// grid point. Sections are numbered boustrophedon style: the northern row
// reads 6..1 from west to east, the next row 7..12, alternating down to
// 31..36.
func SectionToGrid(section int, t Township, r Range) (GridPoint, bool) {
	if section < 1 || section > 36 || !t.valid() || !r.valid() {
		return GridPoint{}, false
	}
	row := (section - 1) / sectionsPerSide
	col := (section - 1) % sectionsPerSide
	if row%2 == 0 {
		col = sectionsPerSide - 1 - col
	}
	return GridPoint{
		X: rangeOrigin(r) + col,
		Y: townshipOrigin(t) + sectionsPerSide - 1 - row,
	}, true
}

// GridToSection is the inverse of SectionToGrid. The returned location
// has no meridian or county.
func GridToSection(p GridPoint) (Location, bool) {
	ty, yrem := floorDivMod(p.Y, sectionsPerSide)
	rx, col := floorDivMod(p.X, sectionsPerSide)

	t := Township{Number: ty + 1, Dir: North}
	if ty < 0 {
		t = Township{Number: -ty, Dir: South}
	}
	r := Range{Number: rx + 1, Dir: East}
	if rx < 0 {
		r = Range{Number: -rx, Dir: West}
	}
	if t.Number > maxGridNumber || r.Number > maxGridNumber {
		return Location{}, false
	}

	row := sectionsPerSide - 1 - yrem
	section := row*sectionsPerSide + col + 1
	if row%2 == 0 {
		section = row*sectionsPerSide + sectionsPerSide - col
	}
	return Location{Section: section, Township: t, Range: r}, true
}

// Grid returns the grid point of the location's section.
func (l Location) Grid() (GridPoint, bool) {
	return SectionToGrid(l.Section, l.Township, l.Range)
}

// townshipOrigin is the southern edge of a township in miles from the
// baseline. T1N spans [0,6) and T1S spans [-6,0).
func townshipOrigin(t Township) int {
	if t.Dir == North {
		return sectionsPerSide * (t.Number - 1)
	}
	return -sectionsPerSide * t.Number
}

// rangeOrigin is the western edge of a range in miles from the meridian.
func rangeOrigin(r Range) int {
	if r.Dir == East {
		return sectionsPerSide * (r.Number - 1)
	}
	return -sectionsPerSide * r.Number
}

func floorDivMod(a, b int) (q, m int) {
	q, m = a/b, a%b
	if m < 0 {
		q--
		m += b
	}
	return q, m
}
