package gjson

// Key spellings seen in extracted-field payloads, most frequent first.
var (
	sectionKeys  = []string{"section", "sec", "section_number", "sectionNumber", "Section"}
	townshipKeys = []string{"township", "twp", "township_number", "townshipNumber", "Township"}
	rangeKeys    = []string{"range", "rng", "range_number", "rangeNumber", "Range"}
	countyKeys   = []string{"county", "county_name", "countyName", "County"}
	meridianKeys = []string{"meridian", "principal_meridian", "principalMeridian", "Meridian"}

	wellNameKeys = []string{"well_name", "wellName", "well", "lease_name", "leaseName", "WellName"}
	apiKeys      = []string{"api_number", "apiNumber", "api", "api_no", "apiNo", "API", "APINumber"}
	operatorKeys = []string{"operator", "operator_name", "operatorName", "Operator"}

	legalTextKeys = []string{"legal_description", "legalDescription", "legal", "legal_text", "legalText", "description"}
)

// Nested objects, in the order they are trusted.
var (
	legalObjects = []string{"legal_description", "legalDescription", "location", "legal"}
	wellObjects  = []string{"well_info", "wellInfo", "wells.0", "well"}
)

type alias struct {
	field Field
	keys  []string
}

var trsAliases = []alias{
	{Section, sectionKeys},
	{Township, townshipKeys},
	{Range, rangeKeys},
	{County, countyKeys},
	{Meridian, meridianKeys},
}

var wellAliases = []alias{
	{WellName, append([]string{"name"}, wellNameKeys...)},
	{APINumber, apiKeys},
	{Operator, operatorKeys},
}

// A top-level "name" is usually the document's own title.
var flatWellAliases = []alias{
	{WellName, wellNameKeys},
	{APINumber, apiKeys},
	{Operator, operatorKeys},
}

// DefaultRules returns the lookup order for the payload shapes the
// extraction step produces: TRS fields inside a nested legal description
// object, then a free-text legal description, then a nested well object
// (or the first entry of a wells array), then flat top-level keys.
func DefaultRules() []Rule {
	var rules []Rule
	for _, obj := range legalObjects {
		rules = append(rules, objectRules(obj, trsAliases)...)
	}
	for _, key := range legalTextKeys {
		rules = append(rules, Rule{Path: key, Transform: LegalText})
	}
	for _, obj := range wellObjects {
		rules = append(rules, objectRules(obj, wellAliases)...)
		rules = append(rules, objectRules(obj, trsAliases)...)
	}
	rules = append(rules, objectRules("", trsAliases)...)
	rules = append(rules, objectRules("", flatWellAliases)...)
	return rules
}

func objectRules(prefix string, aliases []alias) []Rule {
	var rules []Rule
	for _, a := range aliases {
		for _, key := range a.keys {
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			rules = append(rules, Rule{Path: path, Transform: Text(a.field)})
		}
	}
	return rules
}
