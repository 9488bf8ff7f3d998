package plss

import (
	"sort"
	"strings"
)

// county is one entry of the Oklahoma county gazetteer with its
// approximate geographic centroid.
type county struct {
	name string
	lat  float64
	lon  float64
}

// counties lists all 77 Oklahoma counties.
var counties = []county{
	{"Adair", 35.884, -94.659},
	{"Alfalfa", 36.731, -98.325},
	{"Atoka", 34.374, -96.038},
	{"Beaver", 36.749, -100.477},
	{"Beckham", 35.269, -99.682},
	{"Blaine", 35.877, -98.434},
	{"Bryan", 33.962, -96.260},
	{"Caddo", 35.167, -98.375},
	{"Canadian", 35.543, -97.982},
	{"Carter", 34.251, -97.285},
	{"Cherokee", 35.906, -94.999},
	{"Choctaw", 34.027, -95.552},
	{"Cimarron", 36.748, -102.518},
	{"Cleveland", 35.203, -97.328},
	{"Coal", 34.588, -96.298},
	{"Comanche", 34.662, -98.476},
	{"Cotton", 34.291, -98.373},
	{"Craig", 36.762, -95.208},
	{"Creek", 35.903, -96.371},
	{"Custer", 35.639, -98.997},
	{"Delaware", 36.392, -94.803},
	{"Dewey", 35.988, -99.008},
	{"Ellis", 36.218, -99.755},
	{"Garfield", 36.379, -97.783},
	{"Garvin", 34.705, -97.309},
	{"Grady", 35.017, -97.884},
	{"Grant", 36.796, -97.788},
	{"Greer", 34.936, -99.561},
	{"Harmon", 34.744, -99.846},
	{"Harper", 36.789, -99.667},
	{"Haskell", 35.225, -95.117},
	{"Hughes", 35.048, -96.250},
	{"Jackson", 34.588, -99.415},
	{"Jefferson", 34.111, -97.836},
	{"Johnston", 34.316, -96.660},
	{"Kay", 36.818, -97.144},
	{"Kingfisher", 35.945, -97.942},
	{"Kiowa", 34.916, -98.981},
	{"Latimer", 34.876, -95.250},
	{"Le Flore", 34.900, -94.703},
	{"Lincoln", 35.703, -96.881},
	{"Logan", 35.919, -97.443},
	{"Love", 33.950, -97.244},
	{"Major", 36.313, -98.536},
	{"Marshall", 34.027, -96.771},
	{"Mayes", 36.302, -95.231},
	{"McClain", 35.009, -97.444},
	{"McCurtain", 34.115, -94.771},
	{"McIntosh", 35.373, -95.667},
	{"Murray", 34.488, -97.068},
	{"Muskogee", 35.616, -95.380},
	{"Noble", 36.388, -97.230},
	{"Nowata", 36.799, -95.618},
	{"Okfuskee", 35.466, -96.323},
	{"Oklahoma", 35.551, -97.407},
	{"Okmulgee", 35.647, -95.964},
	{"Osage", 36.629, -96.398},
	{"Ottawa", 36.836, -94.810},
	{"Pawnee", 36.317, -96.699},
	{"Payne", 36.077, -96.976},
	{"Pittsburg", 34.924, -95.748},
	{"Pontotoc", 34.728, -96.684},
	{"Pottawatomie", 35.206, -96.948},
	{"Pushmataha", 34.416, -95.376},
	{"Roger Mills", 35.688, -99.696},
	{"Rogers", 36.372, -95.604},
	{"Seminole", 35.167, -96.615},
	{"Sequoyah", 35.495, -94.755},
	{"Stephens", 34.486, -97.851},
	{"Texas", 36.748, -101.490},
	{"Tillman", 34.373, -98.924},
	{"Tulsa", 36.121, -95.941},
	{"Wagoner", 35.961, -95.521},
	{"Washington", 36.715, -95.904},
	{"Washita", 35.290, -98.992},
	{"Woods", 36.766, -98.865},
	{"Woodward", 36.423, -99.265},
}

// cimarronCounties are the Panhandle counties surveyed from the
// Cimarron Meridian.
var cimarronCounties = map[string]bool{
	"beaver":   true,
	"cimarron": true,
	"texas":    true,
}

var (
	countyIndex = func() map[string]county {
		m := make(map[string]county, len(counties))
		for _, c := range counties {
			m[countyKey(c.name)] = c
		}
		return m
	}()

	// countiesByLength holds gazetteer names longest first so that
	// two-word names win over shorter names they contain.
	countiesByLength = func() []string {
		names := make([]string, len(counties))
		for i, c := range counties {
			names[i] = c.name
		}
		sort.SliceStable(names, func(i, j int) bool {
			return len(names[i]) > len(names[j])
		})
		return names
	}()
)

// Counties returns the gazetteer county names in alphabetical order.
func Counties() []string {
	names := make([]string, len(counties))
	for i, c := range counties {
		names[i] = c.name
	}
	return names
}

// LookupCounty returns the canonical gazetteer spelling of name.
func LookupCounty(name string) (string, bool) {
	c, ok := countyIndex[countyKey(name)]
	return c.name, ok
}

// MeridianForCounty returns the meridian a county is surveyed from.
// Unknown counties fall back to the Indian Meridian.
func MeridianForCounty(name string) Meridian {
	if cimarronCounties[countyKey(name)] {
		return CimarronMeridian
	}
	return IndianMeridian
}

// CountyCenter returns the approximate centroid of a gazetteer county.
func CountyCenter(name string) (Coordinate, bool) {
	c, ok := countyIndex[countyKey(name)]
	if !ok {
		return Coordinate{}, false
	}
	return Coordinate{Latitude: c.lat, Longitude: c.lon}, true
}

// countyKey folds case and whitespace so "LeFlore" and "Le Flore" agree.
func countyKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}
