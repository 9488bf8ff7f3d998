package plss_test

import (
	"testing"

	"github.com/fwojciec/plss"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeTownship(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"7 North", "7N", true},
		{"7N", "7N", true},
		{"07N", "7N", true},
		{"007N", "7N", true},
		{"T7N", "7N", true},
		{"T-7-N", "7N", true},
		{"Twp. 7 N.", "7N", true},
		{"Township 12 South", "12S", true},
		{"3s", "3S", true},
		{"7", "7N", true},
		{"garbage", "", false},
		{"", "", false},
		{"0N", "", false},
		{"7 East", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, ok := plss.NormalizeTownship(tt.in)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"4 West", "4W", true},
		{"4W", "4W", true},
		{"04W", "4W", true},
		{"R4W", "4W", true},
		{"Range 12 East", "12E", true},
		{"Rge. 9 E", "9E", true},
		{"R2ECM", "2E", true},
		{"4", "4W", true},
		{"4 North", "", false},
		{"West", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, ok := plss.NormalizeRange(tt.in)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeSection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		bare   string
		padded string
		ok     bool
	}{
		{"Section 14", "14", "14", true},
		{"Sec. 14", "14", "14", true},
		{"S14", "14", "14", true},
		{"14", "14", "14", true},
		{"4", "4", "04", true},
		{"S-04", "4", "04", true},
		{"36", "36", "36", true},
		{"37", "", "", false},
		{"0", "", "", false},
		{"Section", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			bare, ok := plss.NormalizeSection(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.bare, bare)

			padded, ok := plss.NormalizeSectionPadded(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.padded, padded)
		})
	}
}

func TestParseMeridian(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]plss.Meridian{
		"IM":                plss.IndianMeridian,
		"indian":            plss.IndianMeridian,
		"Indian Meridian":   plss.IndianMeridian,
		"CM":                plss.CimarronMeridian,
		"Cimarron Meridian": plss.CimarronMeridian,
	} {
		got, ok := plss.ParseMeridian(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := plss.ParseMeridian("Willamette")
	assert.False(t, ok)
}

func TestRangeMeridian(t *testing.T) {
	t.Parallel()

	m, ok := plss.RangeMeridian("R2ECM")
	assert.True(t, ok)
	assert.Equal(t, plss.CimarronMeridian, m)

	m, ok = plss.RangeMeridian("4 W IM")
	assert.True(t, ok)
	assert.Equal(t, plss.IndianMeridian, m)

	_, ok = plss.RangeMeridian("4W")
	assert.False(t, ok)
}

func TestNormalizeCounty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"MCCLAIN", "McClain"},
		{"mcclain county", "McClain"},
		{"Roger Mills County", "Roger Mills"},
		{"LeFlore", "Le Flore"},
		{"Grady Co.", "Grady"},
		{"  kingfisher  ", "Kingfisher"},
		{"dallas county", "Dallas"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, plss.NormalizeCounty(tt.in))
		})
	}
}

func TestExtractCounty(t *testing.T) {
	t.Parallel()

	t.Run("prefers the longer two-word name", func(t *testing.T) {
		t.Parallel()

		got, ok := plss.ExtractCounty("Roger Mills County, Oklahoma")

		assert.True(t, ok)
		assert.Equal(t, "Roger Mills", got)
	})

	t.Run("does not match inside another word", func(t *testing.T) {
		t.Parallel()

		got, ok := plss.ExtractCounty("lands in Rogers County")

		assert.True(t, ok)
		assert.Equal(t, "Rogers", got)
	})

	t.Run("treats a bare state name as a last resort", func(t *testing.T) {
		t.Parallel()

		got, ok := plss.ExtractCounty("S14 T5N R4W, Grady, Oklahoma")

		assert.True(t, ok)
		assert.Equal(t, "Grady", got)
	})

	t.Run("accepts Oklahoma County when named as a county", func(t *testing.T) {
		t.Parallel()

		got, ok := plss.ExtractCounty("Oklahoma County, Oklahoma")

		assert.True(t, ok)
		assert.Equal(t, "Oklahoma", got)
	})

	t.Run("ignores lowercase words that spell a county", func(t *testing.T) {
		t.Parallel()

		_, ok := plss.ExtractCounty("does hereby grant and lease S14 T5N R4W")

		assert.False(t, ok)
	})

	t.Run("matches an all-caps scan", func(t *testing.T) {
		t.Parallel()

		got, ok := plss.ExtractCounty("S14 T5N R4W KINGFISHER")

		assert.True(t, ok)
		assert.Equal(t, "Kingfisher", got)
	})

	t.Run("reports no county", func(t *testing.T) {
		t.Parallel()

		_, ok := plss.ExtractCounty("S14 T5N R4W")

		assert.False(t, ok)
	})
}

func TestValidateTRS(t *testing.T) {
	t.Parallel()

	t.Run("returns no reasons for valid input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, plss.ValidateTRS("14", "5N", "4W"))
	})

	t.Run("lists every problem", func(t *testing.T) {
		t.Parallel()

		got := plss.ValidateTRS("40", "north", "x")

		assert.Equal(t, []string{
			"section out of 1-36 range",
			"invalid township format",
			"invalid range format",
		}, got)
	})
}
