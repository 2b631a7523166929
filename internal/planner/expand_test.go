package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand_WorkWeek(t *testing.T) {
	theme := Theme{ID: "t1", Name: "Home insurance", StartDate: "2025-10-13", EndDate: "2025-10-17"}

	events := Expand([]Theme{theme})
	require.Len(t, events, 5)

	wantIDs := []string{
		"t1-monday-2025-10-13",
		"t1-tuesday-2025-10-14",
		"t1-wednesday-2025-10-15",
		"t1-thursday-2025-10-16",
		"t1-friday-2025-10-17",
	}
	wantTypes := []ContentType{ContentVideoPerson, ContentImageStats, ContentVideoAvatar, ContentCTAPost, ContentManual}

	for i, ev := range events {
		assert.Equal(t, wantIDs[i], ev.ID)
		assert.Equal(t, wantTypes[i], ev.Resource.DayContent.Type)
		assert.Equal(t, ContentFor(ev.Start.Weekday()).Title, ev.Title)
		assert.Equal(t, ev.Start, ev.End)
		assert.True(t, ev.AllDay)
		assert.Equal(t, theme, ev.Resource.Theme)
		assert.Equal(t, WeekdayKey(ev.Start.Weekday()), ev.Resource.DayKey)
	}
}

func TestExpand_FullWeekSkipsWeekend(t *testing.T) {
	events := Expand([]Theme{{ID: "t", StartDate: "2025-10-13", EndDate: "2025-10-19"}})
	require.Len(t, events, 5)
	for _, ev := range events {
		wd := ev.Start.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
	}
}

func TestExpand_SingleTuesday(t *testing.T) {
	events := Expand([]Theme{{ID: "t", StartDate: "2025-10-14", EndDate: "2025-10-14"}})
	require.Len(t, events, 1)
	assert.Equal(t, "t-tuesday-2025-10-14", events[0].ID)
	assert.Equal(t, ContentImageStats, events[0].Resource.DayContent.Type)
}

func TestExpand_IncludesLastDay(t *testing.T) {
	events := Expand([]Theme{{ID: "t", StartDate: "2025-10-13", EndDate: "2025-10-16T00:00:00Z"}})
	require.Len(t, events, 4)
	assert.Equal(t, "2025-10-16", events[len(events)-1].Start.String())
}

func TestExpand_WeekendBoundaries(t *testing.T) {
	// Saturday to Sunday of the following week covers exactly one work week.
	events := Expand([]Theme{{ID: "t", StartDate: "2025-10-11", EndDate: "2025-10-19"}})
	require.Len(t, events, 5)
	assert.Equal(t, "2025-10-13", events[0].Start.String())
	assert.Equal(t, "2025-10-17", events[4].Start.String())

	// A weekend-only theme produces nothing.
	assert.Empty(t, Expand([]Theme{{ID: "w", StartDate: "2025-10-18", EndDate: "2025-10-19"}}))
}

func TestExpand_SkipsMalformedThemes(t *testing.T) {
	themes := []Theme{
		{ID: "bad", StartDate: "soon", EndDate: "2025-10-17"},
		{ID: "good", StartDate: "2025-10-13", EndDate: "2025-10-14"},
		{ID: "bad-end", StartDate: "2025-10-13", EndDate: "2025-13-40"},
	}

	events := Expand(themes)
	require.Len(t, events, 2)
	for _, ev := range events {
		assert.Equal(t, "good", ev.Resource.Theme.ID)
	}
}

func TestExpand_StableIDs(t *testing.T) {
	themes := []Theme{
		{ID: "a", StartDate: "2025-10-13", EndDate: "2025-10-24"},
		{ID: "b", StartDate: "2025-11-03", EndDate: "2025-11-14"},
	}

	first := Expand(themes)
	second := Expand(themes)
	require.Len(t, first, 20)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestExpand_EndBeforeStart(t *testing.T) {
	assert.Empty(t, Expand([]Theme{{ID: "t", StartDate: "2025-10-17", EndDate: "2025-10-13"}}))
}

func TestExpand_LongSpanIsCapped(t *testing.T) {
	events := ExpandTheme(Theme{ID: "t", StartDate: "2000-01-03", EndDate: "2030-01-03"})
	assert.NotEmpty(t, events)
	last := events[len(events)-1].Start
	assert.True(t, last.Before(MustParseDate("2000-01-03").AddDays(maxExpansionDays)))
}

func TestWeeklyTemplate(t *testing.T) {
	days := WeeklyTemplate()
	require.Len(t, days, 7)

	assert.Equal(t, "monday", days[0].Key)
	assert.Equal(t, "sunday", days[6].Key)
	for i, d := range days {
		assert.Equal(t, i+1, d.Content.DayOfWeek)
		assert.True(t, d.Content.Type.Valid())
	}
	assert.True(t, days[5].Content.Type.IsFree())
	assert.True(t, days[6].Content.Type.IsFree())

	mon := ContentFor(time.Monday)
	assert.Equal(t, 24, mon.Duration)
	assert.Equal(t, "10:00", mon.SuggestedTime)
	assert.Equal(t, []string{"Facebook", "Instagram Reels"}, mon.RecommendedNetworks)

	wed := ContentFor(time.Wednesday)
	assert.Equal(t, []string{"Instagram Reels", "TikTok", "YouTube Shorts"}, wed.RecommendedNetworks)
	assert.Equal(t, "11:30", ContentFor(time.Thursday).SuggestedTime)
}

func TestContentFor_ReturnsCopy(t *testing.T) {
	c := ContentFor(time.Tuesday)
	c.RecommendedNetworks[0] = "MySpace"
	assert.Equal(t, "LinkedIn", ContentFor(time.Tuesday).RecommendedNetworks[0])
}

func TestContentType_Valid(t *testing.T) {
	assert.True(t, ContentCTAPost.Valid())
	assert.False(t, ContentType("podcast").Valid())
	assert.Len(t, ContentTypes(), 6)

	_, ok := FormatFor(ContentFree)
	assert.False(t, ok)
	f, ok := FormatFor(ContentVideoAvatar)
	assert.True(t, ok)
	assert.Equal(t, Format{ID: 10, Type: "video"}, f)
}

func TestFormatFor_GeneratorFormats(t *testing.T) {
	tests := []struct {
		ct   ContentType
		want Format
	}{
		{ContentVideoPerson, Format{ID: 9, Type: "video"}},
		{ContentImageStats, Format{ID: 12, Type: "image"}},
		{ContentVideoAvatar, Format{ID: 10, Type: "video"}},
		{ContentCTAPost, Format{ID: 11, Type: "video"}},
		{ContentManual, Format{ID: 13, Type: "image"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.ct), func(t *testing.T) {
			got, ok := FormatFor(tt.ct)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
