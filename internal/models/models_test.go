package models

import (
	"testing"

	"github.com/maheshrc27/content-planner/internal/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentGenerated_Record(t *testing.T) {
	path := "content/videos/a.mp4"
	caption := "Ready"
	row := &ContentGenerated{
		ThemeID:       "t1",
		ScheduledDate: "2025-10-13",
		ContentType:   "video_person",
		FilePath:      &path,
		Caption:       &caption,
		Hashtags:      []string{},
		Status:        ContentStatusGenerated,
	}

	rec := row.Record()
	assert.True(t, rec.Ready())
	assert.Equal(t, planner.ContentVideoPerson, rec.ContentType)

	row.Caption = nil
	assert.False(t, row.Record().Ready())
}

func TestContentFromSlot(t *testing.T) {
	slots := planner.PlanSlots(planner.Theme{ID: "t1", StartDate: "2025-10-13", EndDate: "2025-10-20"})
	require.NotEmpty(t, slots)

	row := ContentFromSlot("t1", slots[0])
	assert.Equal(t, "t1", row.ThemeID)
	assert.Equal(t, "2025-10-13", row.ScheduledDate)
	assert.Equal(t, "video_person", row.ContentType)
	assert.Equal(t, ContentStatusPending, row.Status)
	require.NotNil(t, row.FormatID)
	assert.Equal(t, int64(9), *row.FormatID)
	assert.Nil(t, row.FilePath)
	assert.Nil(t, row.Hashtags)
}

func TestRolesAndStatuses(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleUser}).IsAdmin())
	var nobody *User
	assert.False(t, nobody.IsAdmin())

	assert.True(t, ValidRole("admin"))
	assert.False(t, ValidRole("root"))
	assert.True(t, ValidContentStatus("published"))
	assert.False(t, ValidContentStatus("draft"))
}

func TestPlannerThemes(t *testing.T) {
	themes := PlannerThemes([]*Theme{{ID: "a", Name: "A", StartDate: "2025-10-13", EndDate: "2025-10-20"}})
	require.Len(t, themes, 1)
	assert.Equal(t, planner.Theme{ID: "a", Name: "A", StartDate: "2025-10-13", EndDate: "2025-10-20"}, themes[0])
}

func TestApiKey_Masked(t *testing.T) {
	k := ApiKey{ID: 1, Name: "ci", ApiKey: "abcdefgh"}
	masked := k.Masked()

	assert.Empty(t, masked.ApiKey)
	assert.Equal(t, "abcd...", masked.Hint)
	assert.Equal(t, "abcdefgh", k.ApiKey)

	assert.Equal(t, "...", ApiKey{ApiKey: "ab"}.Masked().Hint)
}
