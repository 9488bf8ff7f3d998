package plss

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxGridNumber bounds township and range numbers to the representable grid.
const maxGridNumber = 999

var (
	townshipRe = regexp.MustCompile(`^(?:T(?:WP|OWNSHIP)?\.?)?[\s-]*0*(\d{1,3})[\s-]*(NORTH|SOUTH|N|S)?\.?$`)
	rangeRe    = regexp.MustCompile(`^(?:R(?:NG|GE|ANGE)?\.?)?[\s-]*0*(\d{1,3})[\s-]*(EAST|WEST|E|W)?\.?[\s-]*(CM|IM)?$`)
	sectionRe  = regexp.MustCompile(`^(?:S(?:EC(?:TION)?)?\.?)?[\s-]*0*(\d{1,2})$`)

	countySuffixRe = regexp.MustCompile(`(?i)[\s,]+(?:county|cnty\.?|co\.?)$`)
)

// ParseTownship parses a township designation such as "7 North", "7N",
// "T07N" or "Township 7 North". A number without a direction defaults
// to North, the direction of every township in most of Oklahoma.
func ParseTownship(s string) (Township, bool) {
	m := townshipRe.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if m == nil {
		return Township{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 || n > maxGridNumber {
		return Township{}, false
	}
	dir := North
	if m[2] != "" {
		dir = Direction(m[2][:1])
	}
	return Township{Number: n, Dir: dir}, true
}

// NormalizeTownship returns the canonical township token, e.g. "7N".
func NormalizeTownship(s string) (string, bool) {
	t, ok := ParseTownship(s)
	if !ok {
		return "", false
	}
	return t.String(), true
}

// ParseRange parses a range designation such as "4 West", "4W", "R04W"
// or "R2ECM". A number without a direction defaults to West.
func ParseRange(s string) (Range, bool) {
	m := rangeRe.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if m == nil {
		return Range{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 || n > maxGridNumber {
		return Range{}, false
	}
	dir := West
	if m[2] != "" {
		dir = Direction(m[2][:1])
	}
	return Range{Number: n, Dir: dir}, true
}

// RangeMeridian returns the meridian suffix of a range such as "2ECM".
func RangeMeridian(s string) (Meridian, bool) {
	m := rangeRe.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if m == nil || m[3] == "" {
		return MeridianUnknown, false
	}
	return Meridian(m[3]), true
}

// NormalizeRange returns the canonical range token, e.g. "4W".
func NormalizeRange(s string) (string, bool) {
	r, ok := ParseRange(s)
	if !ok {
		return "", false
	}
	return r.String(), true
}

// ParseSection parses "Section 14", "Sec. 14", "S14" or "14".
func ParseSection(s string) (int, bool) {
	m := sectionRe.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 || n > 36 {
		return 0, false
	}
	return n, true
}

// NormalizeSection returns the section as a bare integer string ("4").
// Docket parsing uses this form.
func NormalizeSection(s string) (string, bool) {
	n, ok := ParseSection(s)
	if !ok {
		return "", false
	}
	return strconv.Itoa(n), true
}

// NormalizeSectionPadded returns the section zero-padded to two digits
// ("04"), the form property records are keyed by.
func NormalizeSectionPadded(s string) (string, bool) {
	n, ok := ParseSection(s)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%02d", n), true
}

// ParseMeridian accepts "IM", "CM", "Indian", "Cimarron" and their
// "... Meridian" spellings.
func ParseMeridian(s string) (Meridian, bool) {
	v := strings.ToUpper(strings.TrimSpace(s))
	v = strings.TrimSpace(strings.TrimSuffix(v, "MERIDIAN"))
	switch v {
	case "IM", "I", "INDIAN":
		return IndianMeridian, true
	case "CM", "C", "CIMARRON":
		return CimarronMeridian, true
	}
	return MeridianUnknown, false
}

// NormalizeCounty strips a trailing "County"/"Co." and returns the
// gazetteer spelling. Unrecognized names are title-cased.
func NormalizeCounty(s string) string {
	s = countySuffixRe.ReplaceAllString(strings.TrimSpace(s), "")
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	if name, ok := LookupCounty(s); ok {
		return name
	}
	return cases.Title(language.English).String(strings.ToLower(s))
}

// Bare county mentions must match the gazetteer capitalization or be
// all caps, so that "grant" or "love" in running text is not a county.
var (
	countyWithSuffixRes = compileCountyPatterns(func(name string) string {
		return `(?i)\b` + regexp.QuoteMeta(name) + `\s+(?:county|co\.)`
	})
	countyBareRes = compileCountyPatterns(func(name string) string {
		return `\b(?:` + regexp.QuoteMeta(name) + `|` + regexp.QuoteMeta(strings.ToUpper(name)) + `)\b`
	})
)

func compileCountyPatterns(pattern func(name string) string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(countiesByLength))
	for i, name := range countiesByLength {
		res[i] = regexp.MustCompile(pattern(name))
	}
	return res
}

// stateNames are county names that, bare, usually name a state
// ("Tulsa, Oklahoma"; an operator based in "Midland, Texas").
var stateNames = map[string]bool{"Oklahoma": true, "Texas": true}

// ExtractCounty finds a gazetteer county named in free text. Names
// followed by "County" win over bare mentions, and longer names are
// tried first. A bare state name is only accepted when no other county
// is mentioned.
func ExtractCounty(text string) (string, bool) {
	for i, re := range countyWithSuffixRes {
		if re.MatchString(text) {
			return countiesByLength[i], true
		}
	}
	state := -1
	for i, re := range countyBareRes {
		if !re.MatchString(text) {
			continue
		}
		if stateNames[countiesByLength[i]] {
			if state < 0 {
				state = i
			}
			continue
		}
		return countiesByLength[i], true
	}
	if state >= 0 {
		return countiesByLength[state], true
	}
	return "", false
}

// ValidateTRS checks raw section, township and range strings and returns
// a human-readable reason for each one that cannot be parsed.
func ValidateTRS(section, township, rng string) []string {
	var reasons []string
	if _, ok := ParseSection(section); !ok {
		reasons = append(reasons, "section out of 1-36 range")
	}
	if _, ok := ParseTownship(township); !ok {
		reasons = append(reasons, "invalid township format")
	}
	if _, ok := ParseRange(rng); !ok {
		reasons = append(reasons, "invalid range format")
	}
	return reasons
}
