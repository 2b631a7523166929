package planner

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
)

// ExportICS renders events as an iCalendar feed of all-day VEVENTs. Event
// ids are reused as UIDs so calendar clients update entries in place.
func ExportICS(events []CalendarEvent, calName string, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//content-planner//theme calendar//EN")
	if calName != "" {
		cal.SetXWRCalName(calName)
	}

	for _, ev := range events {
		ve := cal.AddEvent(ev.ID)
		ve.SetDtStampTime(stamp)
		ve.SetSummary(fmt.Sprintf("%s: %s", ev.Resource.Theme.Name, ev.Title))
		ve.SetDescription(eventDescription(ev))
		ve.SetAllDayStartAt(ev.Start.Time(time.UTC))
		// DTEND is exclusive for all-day events.
		ve.SetAllDayEndAt(ev.End.AddDays(1).Time(time.UTC))
		for _, network := range ev.Resource.DayContent.RecommendedNetworks {
			ve.AddProperty(ical.ComponentPropertyCategories, network)
		}
	}

	return cal.Serialize()
}

func eventDescription(ev CalendarEvent) string {
	c := ev.Resource.DayContent
	var b strings.Builder
	b.WriteString(c.Description)
	if c.SuggestedTime != "" {
		b.WriteString("\nSuggested time: ")
		b.WriteString(c.SuggestedTime)
	}
	if c.Duration > 0 {
		fmt.Fprintf(&b, "\nDuration: %ds", c.Duration)
	}
	return b.String()
}
