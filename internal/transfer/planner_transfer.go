package transfer

import "github.com/maheshrc27/content-planner/internal/planner"

type ThemeInput struct {
	ThemeName        string `json:"theme_name"`
	ThemeDescription string `json:"theme_description"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
}

type ValidateRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	ExcludeID string `json:"exclude_id"`
}

// CheckResult previews whether a date range could be saved.
type CheckResult struct {
	Valid     bool            `json:"valid"`
	Message   string          `json:"message,omitempty"`
	Conflicts []planner.Theme `json:"conflicts"`
}

type GenerateRequest struct {
	Date  string `json:"date"`
	Force bool   `json:"force"`
}

// ContentUpdate carries the fields a content row may change. Nil fields are
// left untouched.
type ContentUpdate struct {
	Caption  *string   `json:"caption"`
	Hashtags *[]string `json:"hashtags"`
	Status   *string   `json:"status"`
}

type ContentFilter struct {
	ThemeID     string
	Date        string
	ContentType string
}

// CalendarEvent is an expanded event annotated with whether its content is
// ready to publish.
type CalendarEvent struct {
	planner.CalendarEvent
	Fulfilled bool `json:"fulfilled"`
}

type ContentSummary struct {
	ThemeID   string         `json:"theme_id"`
	Slots     int            `json:"slots"`
	Fulfilled int            `json:"fulfilled"`
	ByStatus  map[string]int `json:"by_status"`
}

type RoleUpdate struct {
	Role string `json:"role"`
}
