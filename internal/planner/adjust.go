package planner

import "time"

// AdjustToBusinessDay moves a weekend boundary onto the nearest working day
// inside the period: a start moves forward to Monday, an end moves back to
// Friday. Weekdays are returned unchanged.
func AdjustToBusinessDay(d Date, isStart bool) Date {
	switch d.Weekday() {
	case time.Sunday:
		if isStart {
			return d.AddDays(1)
		}
		return d.AddDays(-2)
	case time.Saturday:
		if isStart {
			return d.AddDays(2)
		}
		return d.AddDays(-1)
	}
	return d
}

// WorkingPeriod returns the adjusted start and end of a theme period.
func WorkingPeriod(start, end Date) (Date, Date) {
	return AdjustToBusinessDay(start, true), AdjustToBusinessDay(end, false)
}
