package plss_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/plss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAPI(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "3505124567", plss.NormalizeAPI("35-051-24567"))
	assert.Equal(t, "3505124567", plss.NormalizeAPI(" 35 051 24567 "))
	assert.Empty(t, plss.NormalizeAPI("n/a"))
}

func TestWell_IsActive(t *testing.T) {
	t.Parallel()

	for _, status := range []string{"AC", "active", " Producing ", "PR"} {
		w := &plss.Well{Status: status}
		assert.True(t, w.IsActive(), status)
	}
	for _, status := range []string{"", "PA", "plugged", "TA"} {
		w := &plss.Well{Status: status}
		assert.False(t, w.IsActive(), status)
	}
}

func TestWell_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires a name or API number", func(t *testing.T) {
		t.Parallel()

		err := (&plss.Well{}).Validate()
		require.Error(t, err)
		assert.Equal(t, plss.EINVALID, plss.ErrorCode(err))
	})

	t.Run("accepts a well without a location", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, (&plss.Well{Name: "SMITH 1"}).Validate())
	})

	t.Run("validates the location when a section is set", func(t *testing.T) {
		t.Parallel()

		err := (&plss.Well{Name: "SMITH 1", Section: 14}).Validate()
		require.Error(t, err)
		assert.Contains(t, plss.ErrorMessage(err), "invalid township format")
	})
}

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&plss.Document{Fields: json.RawMessage(`{"county":"Grady"}`)}).Validate())

	err := (&plss.Document{}).Validate()
	require.Error(t, err)
	assert.Equal(t, "document fields required", plss.ErrorMessage(err))

	err = (&plss.Document{Fields: json.RawMessage(`{"county":`)}).Validate()
	require.Error(t, err)
	assert.Equal(t, "document fields must be valid JSON", plss.ErrorMessage(err))
}

func TestMatchResult_Matched(t *testing.T) {
	t.Parallel()

	id := "well-1"
	assert.False(t, plss.MatchResult{}.Matched())
	assert.True(t, plss.MatchResult{WellID: &id}.Matched())
	assert.True(t, plss.MatchResult{PropertyID: &id}.Matched())
}

func TestExtractedFields_CoordinateRequest(t *testing.T) {
	t.Parallel()

	f := plss.ExtractedFields{
		Section:   "14",
		Township:  "5N",
		Range:     "4W",
		County:    "Grady",
		APINumber: "35-051-24567",
		WellName:  "SMITH 1",
	}

	assert.Equal(t, plss.CoordinateRequest{
		APINumber: "35-051-24567",
		Section:   "14",
		Township:  "5N",
		Range:     "4W",
		County:    "Grady",
	}, f.CoordinateRequest())
}
