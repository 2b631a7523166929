package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectConflicts_SharedBoundaryDay(t *testing.T) {
	existing := []Theme{{ID: "a", Name: "October savings", StartDate: "2025-10-01", EndDate: "2025-10-10"}}

	got := DetectConflicts(existing, MustParseDate("2025-10-10"), MustParseDate("2025-10-20"), "")
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestDetectConflicts(t *testing.T) {
	existing := []Theme{
		{ID: "a", StartDate: "2025-10-01", EndDate: "2025-10-10"},
		{ID: "b", StartDate: "2025-10-20", EndDate: "2025-11-05"},
		{ID: "broken", StartDate: "??", EndDate: "2025-11-05"},
	}

	tests := []struct {
		name      string
		start     string
		end       string
		excludeID string
		want      []string
	}{
		{name: "gap between themes", start: "2025-10-11", end: "2025-10-19"},
		{name: "spans both", start: "2025-09-01", end: "2025-12-01", want: []string{"a", "b"}},
		{name: "inside one", start: "2025-10-03", end: "2025-10-04", want: []string{"a"}},
		{name: "touches end of b", start: "2025-11-05", end: "2025-11-30", want: []string{"b"}},
		{name: "excluded self", start: "2025-10-02", end: "2025-10-09", excludeID: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectConflicts(existing, MustParseDate(tt.start), MustParseDate(tt.end), tt.excludeID)
			var ids []string
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestDetectConflicts_Symmetric(t *testing.T) {
	base := MustParseDate("2025-10-01")
	for aOff := 0; aOff < 20; aOff++ {
		for bOff := 0; bOff < 20; bOff++ {
			aStart, aEnd := base.AddDays(aOff), base.AddDays(aOff+4)
			bStart, bEnd := base.AddDays(bOff), base.AddDays(bOff+6)

			a := Theme{ID: "a", StartDate: aStart.String(), EndDate: aEnd.String()}
			b := Theme{ID: "b", StartDate: bStart.String(), EndDate: bEnd.String()}

			ab := len(DetectConflicts([]Theme{b}, aStart, aEnd, "")) > 0
			ba := len(DetectConflicts([]Theme{a}, bStart, bEnd, "")) > 0
			assert.Equal(t, ab, ba, "a=%s..%s b=%s..%s", aStart, aEnd, bStart, bEnd)
		}
	}
}

func TestActiveOn(t *testing.T) {
	themes := []Theme{
		{ID: "october", StartDate: "2025-10-01", EndDate: "2025-10-31"},
		{ID: "week", StartDate: "2025-10-13", EndDate: "2025-10-17"},
		{ID: "broken", StartDate: "2025-10-01", EndDate: "soon"},
	}

	tests := []struct {
		date   string
		wantID string
		found  bool
	}{
		{"2025-10-01", "october", true},
		{"2025-10-31", "october", true},
		{"2025-10-13", "week", true},
		{"2025-10-17", "week", true},
		{"2025-10-18", "october", true},
		{"2025-09-30", "", false},
		{"2025-11-01", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got, ok := ActiveOn(themes, MustParseDate(tt.date))
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}

	_, ok := ActiveOn(nil, MustParseDate("2025-10-13"))
	assert.False(t, ok)
}
