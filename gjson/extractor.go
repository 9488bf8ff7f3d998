// Package gjson implements plss.FieldExtractor over untyped JSON payloads
// using github.com/tidwall/gjson paths.
package gjson

import (
	"strconv"
	"strings"

	"github.com/fwojciec/plss"
	"github.com/tidwall/gjson"
)

// Compile-time interface verification.
var _ plss.FieldExtractor = (*Extractor)(nil)

// Field selects one logical field of plss.ExtractedFields.
type Field func(f *plss.ExtractedFields) *string

// Logical fields.
var (
	Section          Field = func(f *plss.ExtractedFields) *string { return &f.Section }
	Township         Field = func(f *plss.ExtractedFields) *string { return &f.Township }
	Range            Field = func(f *plss.ExtractedFields) *string { return &f.Range }
	County           Field = func(f *plss.ExtractedFields) *string { return &f.County }
	Meridian         Field = func(f *plss.ExtractedFields) *string { return &f.Meridian }
	LegalDescription Field = func(f *plss.ExtractedFields) *string { return &f.LegalDescription }
	WellName         Field = func(f *plss.ExtractedFields) *string { return &f.WellName }
	APINumber        Field = func(f *plss.ExtractedFields) *string { return &f.APINumber }
	Operator         Field = func(f *plss.ExtractedFields) *string { return &f.Operator }
)

var allFields = []Field{Section, Township, Range, County, Meridian, LegalDescription, WellName, APINumber, Operator}

// Transform turns the value found at a rule's path into zero or more
// logical fields.
type Transform func(v gjson.Result) plss.ExtractedFields

// Rule extracts fields from the value at Path.
type Rule struct {
	Path      string
	Transform Transform
}

// Extractor evaluates rules in order. A field keeps the first non-empty
// value any rule produces for it.
type Extractor struct {
	Rules []Rule
}

// NewExtractor returns an Extractor using DefaultRules.
func NewExtractor() *Extractor {
	return &Extractor{Rules: DefaultRules()}
}

// ExtractFields reads the fields from the payload. Invalid JSON yields no fields.
func (e *Extractor) ExtractFields(payload []byte) plss.ExtractedFields {
	var out plss.ExtractedFields
	if !gjson.ValidBytes(payload) {
		return out
	}
	for _, r := range e.Rules {
		v := gjson.GetBytes(payload, r.Path)
		if !v.Exists() {
			continue
		}
		merge(&out, r.Transform(v))
	}
	return out
}

func merge(dst *plss.ExtractedFields, src plss.ExtractedFields) {
	for _, field := range allFields {
		d, s := field(dst), field(&src)
		if *d == "" && *s != "" {
			*d = *s
		}
	}
}

// Text stores a scalar value in field. Objects, arrays and nulls are
// ignored.
func Text(field Field) Transform {
	return func(v gjson.Result) plss.ExtractedFields {
		var out plss.ExtractedFields
		if s, ok := scalar(v); ok {
			*field(&out) = s
		}
		return out
	}
}

// LegalText parses a free-text legal description and stores its primary
// location, along with the text itself. The meridian is only stored when
// the text states it, so a county found under another key still decides.
func LegalText(v gjson.Result) plss.ExtractedFields {
	var out plss.ExtractedFields
	if v.Type != gjson.String {
		return out
	}
	text := strings.TrimSpace(v.Str)
	d := plss.ParseAllLegalDescriptions(text)
	if d == nil {
		return out
	}
	out.LegalDescription = text
	out.Section = strconv.Itoa(d.Primary.Section)
	out.Township = d.Primary.Township.String()
	out.Range = d.Primary.Range.String()
	out.County = d.Primary.County
	if d.MeridianStated {
		out.Meridian = string(d.Primary.Meridian)
	}
	return out
}

func scalar(v gjson.Result) (string, bool) {
	switch v.Type {
	case gjson.String, gjson.Number:
		s := strings.TrimSpace(v.String())
		return s, s != ""
	}
	return "", false
}
