package planner

import (
	"strings"
	"time"
)

// ContentType tags what is produced on a given weekday.
type ContentType string

const (
	ContentVideoPerson ContentType = "video_person"
	ContentImageStats  ContentType = "image_stats"
	ContentVideoAvatar ContentType = "video_avatar"
	ContentCTAPost     ContentType = "cta_post"
	ContentManual      ContentType = "content_manual"
	ContentFree        ContentType = "free"
)

var contentTypes = []ContentType{
	ContentVideoPerson,
	ContentImageStats,
	ContentVideoAvatar,
	ContentCTAPost,
	ContentManual,
	ContentFree,
}

// ContentTypes lists every content type, free included.
func ContentTypes() []ContentType {
	return append([]ContentType(nil), contentTypes...)
}

func (c ContentType) Valid() bool {
	for _, ct := range contentTypes {
		if c == ct {
			return true
		}
	}
	return false
}

func (c ContentType) IsFree() bool {
	return c == ContentFree
}

// Format is the generation format a content type is produced with.
type Format struct {
	ID   int    `json:"format_id"`
	Type string `json:"format_type"` // video or image
}

var formats = map[ContentType]Format{
	ContentVideoPerson: {ID: 9, Type: "video"},
	ContentImageStats:  {ID: 12, Type: "image"},
	ContentVideoAvatar: {ID: 10, Type: "video"},
	ContentCTAPost:     {ID: 11, Type: "video"},
	ContentManual:      {ID: 13, Type: "image"},
}

// FormatFor returns the generation format of c. Free days have none.
func FormatFor(c ContentType) (Format, bool) {
	f, ok := formats[c]
	return f, ok
}

// ContentDay describes the content planned for one weekday.
type ContentDay struct {
	Type                ContentType `json:"type"`
	Duration            int         `json:"duration,omitempty"` // seconds
	Description         string      `json:"description"`
	Title               string      `json:"title"`
	SuggestedTime       string      `json:"suggested_time,omitempty"`
	SuggestedTimeReason string      `json:"suggested_time_reason,omitempty"`
	RecommendedNetworks []string    `json:"recommended_networks,omitempty"`
	NetworkStrategy     string      `json:"network_strategy,omitempty"`
	DayOfWeek           int         `json:"day_of_week"` // 1=Monday .. 7=Sunday
}

var freeDay = ContentDay{
	Type:        ContentFree,
	Description: "No scheduled content",
	Title:       "Free Day",
}

// weeklyTemplate is indexed by time.Weekday, so every day has an entry.
var weeklyTemplate = [7]ContentDay{
	time.Sunday: withDay(freeDay, 7),
	time.Monday: {
		Type:                ContentVideoPerson,
		Duration:            24,
		Description:         "Generate a 24-second video with a realistic person, related to the theme",
		Title:               "Promotional video with realistic person (24s)",
		SuggestedTime:       "10:00",
		SuggestedTimeReason: "Start of week, high attention on social networks",
		RecommendedNetworks: []string{"Facebook", "Instagram Reels"},
		NetworkStrategy:     "Real person videos generate trust. Facebook for a mature audience, Instagram Reels for viral reach.",
		DayOfWeek:           1,
	},
	time.Tuesday: {
		Type:                ContentImageStats,
		Description:         "Create an image with relevant statistics about the theme",
		Title:               "Image with relevant statistics",
		SuggestedTime:       "11:00",
		SuggestedTimeReason: "Best day for engagement, peak work hours",
		RecommendedNetworks: []string{"LinkedIn", "Facebook"},
		NetworkStrategy:     "LinkedIn rewards professional data content. Facebook for massive reach.",
		DayOfWeek:           2,
	},
	time.Wednesday: {
		Type:                ContentVideoAvatar,
		Duration:            24,
		Description:         "Produce a 24-second video with an animated avatar (Pixar style), focused on the theme",
		Title:               "Video with animated avatar (24s)",
		SuggestedTime:       "13:00",
		SuggestedTimeReason: "Mid-week lunch time, higher engagement",
		RecommendedNetworks: []string{"Instagram Reels", "TikTok", "YouTube Shorts"},
		NetworkStrategy:     "Creative content works better at lunch time. YouTube Shorts for additional reach.",
		DayOfWeek:           3,
	},
	time.Thursday: {
		Type:                ContentCTAPost,
		Description:         "Design a post with a call to action (CTA) related to the theme",
		Title:               "Post with CTA",
		SuggestedTime:       "11:30",
		SuggestedTimeReason: "Conversion peak, Thursday has the best action rate",
		RecommendedNetworks: []string{"LinkedIn", "Facebook", "Instagram"},
		NetworkStrategy:     "LinkedIn for professional leads. Facebook and Instagram for an audience making decisions.",
		DayOfWeek:           4,
	},
	time.Friday: {
		Type:                ContentManual,
		Description:         "Reserved space to define content manually",
		Title:               "Manual content",
		SuggestedTime:       "10:00",
		SuggestedTimeReason: "Early Friday, before the weekend",
		RecommendedNetworks: []string{"Instagram", "Twitter/X", "Facebook"},
		NetworkStrategy:     "Instagram for casual visual engagement. Twitter/X for quick conversations.",
		DayOfWeek:           5,
	},
	time.Saturday: withDay(freeDay, 6),
}

func withDay(c ContentDay, day int) ContentDay {
	c.DayOfWeek = day
	return c
}

// ContentFor returns the template entry for a weekday. The returned value is
// a copy; callers cannot alter the shared template.
func ContentFor(wd time.Weekday) ContentDay {
	c := weeklyTemplate[wd]
	c.RecommendedNetworks = append([]string(nil), c.RecommendedNetworks...)
	return c
}

// WeekdayKey is the lowercase English weekday name used in event ids.
func WeekdayKey(wd time.Weekday) string {
	return strings.ToLower(wd.String())
}

// IsoWeekday maps Sunday=0..Saturday=6 onto Monday=1..Sunday=7.
func IsoWeekday(wd time.Weekday) int {
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}

// TemplateDay is one row of the weekly template in Monday-first order.
type TemplateDay struct {
	Key     string     `json:"key"`
	Content ContentDay `json:"content"`
}

// WeeklyTemplate returns the template Monday through Sunday.
func WeeklyTemplate() []TemplateDay {
	out := make([]TemplateDay, 0, 7)
	for i := 1; i <= 7; i++ {
		wd := time.Weekday(i % 7)
		out = append(out, TemplateDay{Key: WeekdayKey(wd), Content: ContentFor(wd)})
	}
	return out
}
