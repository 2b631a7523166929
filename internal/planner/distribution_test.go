package planner

import (
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyDistribution(t *testing.T) {
	tests := []struct {
		start      string
		wantMonday string
	}{
		{start: "2025-10-13", wantMonday: "2025-10-13"},
		{start: "2025-10-16", wantMonday: "2025-10-13"},
		{start: "2025-10-19", wantMonday: "2025-10-13"},
		{start: "2025-11-01", wantMonday: "2025-10-27"},
	}

	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			days := WeeklyDistribution("Autumn", MustParseDate(tt.start))
			require.Len(t, days, 7)
			assert.Equal(t, tt.wantMonday, days[0].Date.String())
			assert.Equal(t, "Monday", days[0].Day)
			assert.Equal(t, "Sunday", days[6].Day)
			assert.Equal(t, ContentVideoPerson, days[0].Content.Type)
			assert.Equal(t, ContentFree, days[6].Content.Type)
			assert.Equal(t, "Autumn", days[3].ThemeName)
		})
	}
}

func TestIsSingleDay(t *testing.T) {
	assert.True(t, IsSingleDay(MustParseDate("2025-10-14"), MustParseDate("2025-10-14T08:00:00Z")))
	assert.False(t, IsSingleDay(MustParseDate("2025-10-14"), MustParseDate("2025-10-15")))
}

func TestPlanSlots(t *testing.T) {
	slots := PlanSlots(Theme{ID: "t", StartDate: "2025-10-13", EndDate: "2025-10-26"})
	require.Len(t, slots, 10)

	first := slots[0]
	assert.Equal(t, "2025-10-13", first.Date.String())
	assert.Equal(t, 1, first.DayOfWeek)
	assert.Equal(t, ContentVideoPerson, first.ContentType)
	assert.Equal(t, "10:00", first.ScheduledTime)
	assert.Equal(t, Format{ID: 9, Type: "video"}, first.Format)

	assert.Equal(t, ContentManual, slots[4].ContentType)
	assert.Equal(t, 13, slots[4].Format.ID)
}

func TestSlotFor(t *testing.T) {
	theme := Theme{ID: "t", StartDate: "2025-10-11", EndDate: "2025-10-19"}

	slot, ok := SlotFor(theme, MustParseDate("2025-10-16"))
	require.True(t, ok)
	assert.Equal(t, ContentCTAPost, slot.ContentType)

	_, ok = SlotFor(theme, MustParseDate("2025-10-18"))
	assert.False(t, ok, "weekend")
	_, ok = SlotFor(theme, MustParseDate("2025-10-20"))
	assert.False(t, ok, "after end")
	_, ok = SlotFor(Theme{ID: "x", StartDate: "bad", EndDate: "2025-10-19"}, MustParseDate("2025-10-16"))
	assert.False(t, ok)
}

func TestExportICS(t *testing.T) {
	events := Expand([]Theme{{ID: "t1", Name: "Home insurance", StartDate: "2025-10-13", EndDate: "2025-10-17"}})
	out := ExportICS(events, "Content plan", time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, cal.Events(), 5)

	first := cal.Events()[0]
	assert.Equal(t, "t1-monday-2025-10-13", first.Id())
	summary := first.GetProperty(ical.ComponentPropertySummary)
	require.NotNil(t, summary)
	assert.Contains(t, summary.Value, "Home insurance")

	assert.Contains(t, out, "DTSTART;VALUE=DATE:20251013")
	assert.Contains(t, out, "DTEND;VALUE=DATE:20251014")
}

func TestExportICS_CategoriesPerNetwork(t *testing.T) {
	events := Expand([]Theme{{ID: "t1", Name: "Home insurance", StartDate: "2025-10-13", EndDate: "2025-10-13"}})
	out := ExportICS(events, "", time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, cal.Events(), 1)

	var categories []string
	for _, p := range cal.Events()[0].GetProperties(ical.ComponentPropertyCategories) {
		categories = append(categories, p.Value)
	}
	assert.Equal(t, []string{"Facebook", "Instagram Reels"}, categories)
	assert.Contains(t, out, "CATEGORIES:Instagram Reels")
	assert.NotContains(t, out, `CATEGORIES:Facebook\,`)
}
