package planner

// DistributionDay is one day of a theme's weekly plan.
type DistributionDay struct {
	Date      Date       `json:"date"`
	Day       string     `json:"day"`
	ThemeName string     `json:"theme_name"`
	Content   ContentDay `json:"content"`
}

// WeeklyDistribution lays the template over the Monday-to-Sunday week that
// contains start.
func WeeklyDistribution(themeName string, start Date) []DistributionDay {
	monday := start.AddDays(1 - IsoWeekday(start.Weekday()))

	out := make([]DistributionDay, 0, 7)
	for i := 0; i < 7; i++ {
		day := monday.AddDays(i)
		wd := day.Weekday()
		out = append(out, DistributionDay{
			Date:      day,
			Day:       wd.String(),
			ThemeName: themeName,
			Content:   ContentFor(wd),
		})
	}
	return out
}

// IsSingleDay reports whether a period starts and ends on the same date.
func IsSingleDay(start, end Date) bool {
	return start == end
}

// Slot is a planned content day in the shape it is persisted in.
type Slot struct {
	Date           Date
	DayOfWeek      int
	ContentType    ContentType
	ScheduledTime  string
	SocialNetworks []string
	Format         Format
}

// PlanSlots returns the content slots a theme produces, one per event of
// ExpandTheme.
func PlanSlots(theme Theme) []Slot {
	events := ExpandTheme(theme)
	slots := make([]Slot, 0, len(events))
	for _, ev := range events {
		content := ev.Resource.DayContent
		format, _ := FormatFor(content.Type)
		slots = append(slots, Slot{
			Date:           ev.Start,
			DayOfWeek:      content.DayOfWeek,
			ContentType:    content.Type,
			ScheduledTime:  content.SuggestedTime,
			SocialNetworks: content.RecommendedNetworks,
			Format:         format,
		})
	}
	return slots
}

// SlotFor returns the slot a theme has on date, if date is a working day of
// the theme's adjusted period.
func SlotFor(theme Theme, date Date) (Slot, bool) {
	start, end, err := theme.Period()
	if err != nil {
		return Slot{}, false
	}
	from, to := WorkingPeriod(start, end)
	if date.Before(from) || date.After(to) {
		return Slot{}, false
	}

	content := ContentFor(date.Weekday())
	if content.Type.IsFree() {
		return Slot{}, false
	}
	format, _ := FormatFor(content.Type)
	return Slot{
		Date:           date,
		DayOfWeek:      content.DayOfWeek,
		ContentType:    content.Type,
		ScheduledTime:  content.SuggestedTime,
		SocialNetworks: content.RecommendedNetworks,
		Format:         format,
	}, true
}
