package transfer

const (
	ActionGenerateContent = "generate_content"
	ActionSyncAllThemes   = "sync_all_themes"
)

// GenerateContentPayload is posted to the automation workflow to produce one
// content slot. It also travels as the generation task payload.
type GenerateContentPayload struct {
	Action             string   `json:"action"`
	ThemeID            string   `json:"theme_id"`
	ThemeName          string   `json:"theme_name"`
	ThemeDescription   string   `json:"theme_description"`
	DayOfWeek          int      `json:"day_of_week"`
	ContentType        string   `json:"content_type"`
	ContentTitle       string   `json:"content_title"`
	ContentDescription string   `json:"content_description"`
	SuggestedTime      string   `json:"suggested_time"`
	Duration           int      `json:"duration,omitempty"`
	ScheduledDate      string   `json:"scheduled_date"`
	SocialNetworks     []string `json:"social_networks"`
}

type ScheduleDay struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Time  string `json:"time"`
}

type SyncTheme struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	StartDate      string                 `json:"start_date"`
	EndDate        string                 `json:"end_date"`
	CreatedAt      string                 `json:"created_at,omitempty"`
	WeeklySchedule map[string]ScheduleDay `json:"weekly_schedule"`
}

type SyncThemesPayload struct {
	Action       string      `json:"action"`
	Themes       []SyncTheme `json:"themes"`
	Timestamp    string      `json:"timestamp"`
	WorkflowType string      `json:"workflow_type"`
}
