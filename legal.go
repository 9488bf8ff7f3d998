package plss

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// LegalDescription holds every TRS reference found in one block of text.
// Spacing and pooling orders often span several sections; the first
// reference in the text is the primary one.
type LegalDescription struct {
	Primary    Location   `json:"primary"`
	Additional []Location `json:"additional,omitempty"`

	// MeridianStated reports whether the primary meridian came from the
	// text itself, as a suffix or a named county. When false the meridian
	// is the statewide default and callers holding a county from another
	// source should derive the meridian from that instead.
	MeridianStated bool `json:"meridianStated"`
}

// All returns the primary location followed by the additional ones.
func (d *LegalDescription) All() []Location {
	if d == nil {
		return nil
	}
	return append([]Location{d.Primary}, d.Additional...)
}

var (
	// S14 T5N R4W, Sec. 14-T5N-R4W, S14 T5N R2ECM
	compactRe = regexp.MustCompile(`(?i)\bS(?:EC(?:TION)?)?\.?\s*-?\s*(\d{1,2})[\s,;-]*T(?:WP)?\.?\s*-?\s*(\d{1,3})\s*-?\s*([NS])[\s,;-]*R(?:NG|GE)?\.?\s*-?\s*(\d{1,3})\s*-?\s*([EW])(CM|IM)?\b`)

	// 14-5N-4W
	dashedRe = regexp.MustCompile(`(?i)\b(\d{1,2})-(\d{1,3})([NS])-(\d{1,3})([EW])(CM|IM)?\b`)

	// Section 14, Township 5 North, Range 4 West
	verboseRe = regexp.MustCompile(`(?i)\bSection\s+(\d{1,2})\s*,?\s*(?:of\s+)?Township\s+(\d{1,3})\s*(North|South|N|S)\.?\s*,?\s*(?:and\s+)?Range\s+(\d{1,3})\s*(East|West|E|W)\b`)

	// Sections 35 and 2, T13N R12E
	listRe = regexp.MustCompile(`(?i)\bSections?\s+(\d{1,2}(?:\s*(?:,|&|and)\s*(?:and\s+)?\d{1,2})*)\s*,?\s*(?:(?:all\s+)?(?:of|in)\s+)?T(?:WP|ownship)?\.?\s*-?\s*(\d{1,3})\s*-?\s*(North|South|N|S)\.?\s*,?\s*-?\s*R(?:NG|ange)?\.?\s*-?\s*(\d{1,3})\s*-?\s*(East|West|E|W)\b`)

	numberRe = regexp.MustCompile(`\d{1,2}`)
)

// hit is a TRS reference and the offset of its section number in the text.
type hit struct {
	offset int
	loc    Location
}

// ParseAllLegalDescriptions extracts every TRS reference from free text.
// It runs the compact, verbose and shared-township list patterns
// independently, orders their results by position in the text, and drops
// repeated sections. The county named in the text and the meridian it
// implies are attached to every location. Returns nil if no reference
// is found.
func ParseAllLegalDescriptions(text string) *LegalDescription {
	var hits []hit
	hits = append(hits, scanSimple(compactRe, text)...)
	hits = append(hits, scanSimple(dashedRe, text)...)
	hits = append(hits, scanSimple(verboseRe, text)...)
	hits = append(hits, scanList(text)...)
	if len(hits) == 0 {
		return nil
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].offset < hits[j].offset
	})

	county, _ := ExtractCounty(text)
	meridian := MeridianForCounty(county)

	seen := make(map[key]bool, len(hits))
	var locs []Location
	stated := false
	for _, h := range hits {
		if seen[h.loc.key()] {
			continue
		}
		seen[h.loc.key()] = true
		loc := h.loc
		loc.County = county
		if len(locs) == 0 {
			stated = loc.Meridian != MeridianUnknown || county != ""
		}
		if loc.Meridian == MeridianUnknown {
			loc.Meridian = meridian
		}
		locs = append(locs, loc)
	}

	return &LegalDescription{Primary: locs[0], Additional: locs[1:], MeridianStated: stated}
}

// ParseLocation parses a single TRS reference such as "S14-T5N-R4W".
func ParseLocation(s string) (Location, bool) {
	d := ParseAllLegalDescriptions(s)
	if d == nil {
		return Location{}, false
	}
	return d.Primary, true
}

// scanSimple handles patterns whose groups are section, township number,
// township direction, range number, range direction and an optional
// meridian suffix.
func scanSimple(re *regexp.Regexp, text string) []hit {
	var hits []hit
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		section, ok := ParseSection(text[m[2]:m[3]])
		if !ok {
			continue
		}
		t, r, ok := townshipRange(text, m[4:12])
		if !ok {
			continue
		}
		loc := Location{Section: section, Township: t, Range: r}
		if len(m) > 13 && m[12] >= 0 {
			loc.Meridian, _ = ParseMeridian(text[m[12]:m[13]])
		}
		hits = append(hits, hit{offset: m[2], loc: loc})
	}
	return hits
}

// scanList handles "Sections 35 and 2, T13N R12E", emitting one hit per
// listed section.
func scanList(text string) []hit {
	var hits []hit
	for _, m := range listRe.FindAllStringSubmatchIndex(text, -1) {
		t, r, ok := townshipRange(text, m[4:12])
		if !ok {
			continue
		}
		list := text[m[2]:m[3]]
		for _, n := range numberRe.FindAllStringIndex(list, -1) {
			section, err := strconv.Atoi(list[n[0]:n[1]])
			if err != nil || section < 1 || section > 36 {
				continue
			}
			hits = append(hits, hit{
				offset: m[2] + n[0],
				loc:    Location{Section: section, Township: t, Range: r},
			})
		}
	}
	return hits
}

// townshipRange parses the township number/direction and range
// number/direction groups identified by idx (four start/end pairs).
func townshipRange(text string, idx []int) (Township, Range, bool) {
	group := func(i int) string {
		return strings.TrimSpace(text[idx[2*i]:idx[2*i+1]])
	}
	t, ok := ParseTownship(group(0) + group(1))
	if !ok {
		return Township{}, Range{}, false
	}
	r, ok := ParseRange(group(2) + group(3))
	if !ok {
		return Township{}, Range{}, false
	}
	return t, r, true
}
