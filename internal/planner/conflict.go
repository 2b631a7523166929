package planner

// Theme is the planning view of a theme. Dates are kept as received so a
// single malformed record can be skipped without rejecting the rest.
type Theme struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"theme_name" yaml:"name"`
	Description string `json:"theme_description,omitempty" yaml:"description"`
	StartDate   string `json:"start_date" yaml:"start_date"`
	EndDate     string `json:"end_date" yaml:"end_date"`
}

// Period parses the theme's start and end dates.
func (t Theme) Period() (Date, Date, error) {
	start, err := ParseDate(t.StartDate)
	if err != nil {
		return Date{}, Date{}, err
	}
	end, err := ParseDate(t.EndDate)
	if err != nil {
		return Date{}, Date{}, err
	}
	return start, end, nil
}

// DetectConflicts returns every existing theme whose closed period overlaps
// [start, end]. A theme ending on the day another starts is a conflict.
// Themes with id excludeID and themes with unparseable dates are ignored.
func DetectConflicts(existing []Theme, start, end Date, excludeID string) []Theme {
	var conflicts []Theme
	for _, t := range existing {
		if excludeID != "" && t.ID == excludeID {
			continue
		}
		tStart, tEnd, err := t.Period()
		if err != nil {
			continue
		}
		if Overlaps(start, end, tStart, tEnd) {
			conflicts = append(conflicts, t)
		}
	}
	return conflicts
}

// Overlaps reports whether two closed date intervals share at least one day.
func Overlaps(aStart, aEnd, bStart, bEnd Date) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// ActiveOn returns the theme whose closed period contains date. When several
// do, the one starting latest wins. Themes with unparseable dates are ignored.
func ActiveOn(themes []Theme, date Date) (Theme, bool) {
	var active Theme
	var activeStart Date
	found := false
	for _, t := range themes {
		start, end, err := t.Period()
		if err != nil {
			continue
		}
		if date.Before(start) || date.After(end) {
			continue
		}
		if !found || start.After(activeStart) {
			active, activeStart, found = t, start, true
		}
	}
	return active, found
}
