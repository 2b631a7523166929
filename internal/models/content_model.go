package models

import (
	"time"

	"github.com/maheshrc27/content-planner/internal/planner"
)

const (
	ContentStatusPending    = "pending"
	ContentStatusProcessing = "processing"
	ContentStatusGenerated  = "generated"
	ContentStatusPublished  = "published"
	ContentStatusFailed     = "failed"
)

func ValidContentStatus(status string) bool {
	switch status {
	case ContentStatusPending, ContentStatusProcessing, ContentStatusGenerated, ContentStatusPublished, ContentStatusFailed:
		return true
	}
	return false
}

// ContentGenerated is a row of content_generated: one planned slot of a theme
// and, once produced, its media and copy. Nil pointers and a nil Hashtags
// slice are NULL columns.
type ContentGenerated struct {
	ID             int64     `db:"id" json:"id"`
	ThemeID        string    `db:"theme_id" json:"theme_id"`
	DayOfWeek      int       `db:"day_of_week" json:"day_of_week"`
	ContentType    string    `db:"content_type" json:"content_type"`
	ScheduledDate  string    `db:"scheduled_date" json:"scheduled_date"`
	ScheduledTime  string    `db:"scheduled_time" json:"scheduled_time"`
	SocialNetworks []string  `db:"social_networks" json:"social_networks"`
	FormatID       *int64    `db:"format_id" json:"format_id"`
	FormatType     string    `db:"format_type" json:"format_type"`
	FilePath       *string   `db:"file_path" json:"file_path"`
	Caption        *string   `db:"caption" json:"caption"`
	Hashtags       []string  `db:"hashtags" json:"hashtags"`
	Status         string    `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

func (c *ContentGenerated) Record() planner.ContentRecord {
	r := planner.ContentRecord{
		ThemeID:       c.ThemeID,
		ScheduledDate: c.ScheduledDate,
		ContentType:   planner.ContentType(c.ContentType),
		Hashtags:      c.Hashtags,
		Status:        c.Status,
	}
	if c.FilePath != nil {
		r.FilePath = *c.FilePath
	}
	if c.Caption != nil {
		r.Caption = *c.Caption
	}
	return r
}

func ContentRecords(rows []*ContentGenerated) []planner.ContentRecord {
	out := make([]planner.ContentRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Record())
	}
	return out
}

// ContentFromSlot builds the pending row a theme's planned slot is seeded with.
func ContentFromSlot(themeID string, slot planner.Slot) *ContentGenerated {
	c := &ContentGenerated{
		ThemeID:        themeID,
		DayOfWeek:      slot.DayOfWeek,
		ContentType:    string(slot.ContentType),
		ScheduledDate:  slot.Date.String(),
		ScheduledTime:  slot.ScheduledTime,
		SocialNetworks: slot.SocialNetworks,
		FormatType:     slot.Format.Type,
		Status:         ContentStatusPending,
	}
	if slot.Format.ID != 0 {
		id := int64(slot.Format.ID)
		c.FormatID = &id
	}
	return c
}
