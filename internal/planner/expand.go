package planner

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/teambition/rrule-go"
)

// maxExpansionDays bounds the days walked for a single theme. Valid themes
// never come close; it only protects against corrupt records.
const maxExpansionDays = 5 * 366

// EventResource links an event back to the theme and template entry that
// produced it.
type EventResource struct {
	Theme      Theme      `json:"theme"`
	DayContent ContentDay `json:"day_content"`
	DayKey     string     `json:"day_key"`
}

// CalendarEvent is a single all-day content slot derived from a theme. It is
// never stored; it is rebuilt from the themes whenever it is needed.
type CalendarEvent struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Start    Date          `json:"start"`
	End      Date          `json:"end"`
	AllDay   bool          `json:"all_day"`
	Resource EventResource `json:"resource"`
}

// EventID is the stable identifier of the event a theme produces on date.
func EventID(themeID string, date Date) string {
	return fmt.Sprintf("%s-%s-%s", themeID, WeekdayKey(date.Weekday()), date.String())
}

// Expand turns themes into one all-day event per working day of their
// adjusted period, in theme order and then date order. Both boundaries are
// included. Themes whose dates do not parse are skipped.
func Expand(themes []Theme) []CalendarEvent {
	var events []CalendarEvent
	for _, theme := range themes {
		events = append(events, ExpandTheme(theme)...)
	}
	return events
}

// ExpandTheme expands a single theme. It returns nil when the theme's dates
// are malformed.
func ExpandTheme(theme Theme) []CalendarEvent {
	start, end, err := theme.Period()
	if err != nil {
		slog.Warn("planner: skipping theme with malformed dates", "theme_id", theme.ID, "error", err)
		return nil
	}

	days := workingDays(theme.ID, start, end)
	events := make([]CalendarEvent, 0, len(days))
	for _, day := range days {
		content := ContentFor(day.Weekday())
		if content.Type.IsFree() {
			continue
		}
		events = append(events, CalendarEvent{
			ID:     EventID(theme.ID, day),
			Title:  content.Title,
			Start:  day,
			End:    day,
			AllDay: true,
			Resource: EventResource{
				Theme:      theme,
				DayContent: content,
				DayKey:     WeekdayKey(day.Weekday()),
			},
		})
	}
	return events
}

// workingDays lists every date of the adjusted period, start and end included.
func workingDays(themeID string, start, end Date) []Date {
	from, to := WorkingPeriod(start, end)
	if from.After(to) {
		return nil
	}

	if from.DaysUntil(to) >= maxExpansionDays {
		slog.Warn("planner: truncating theme expansion", "theme_id", themeID, "cap", maxExpansionDays)
		to = from.AddDays(maxExpansionDays - 1)
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: from.Time(time.UTC),
		Until:   to.Time(time.UTC),
	})
	if err != nil {
		slog.Error("planner: building daily rule", "theme_id", themeID, "error", err)
		return nil
	}

	occurrences := r.All()
	days := make([]Date, 0, len(occurrences))
	for _, t := range occurrences {
		days = append(days, DateOf(t))
	}
	return days
}
