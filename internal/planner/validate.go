package planner

const (
	MinRangeDays = 7
	MaxRangeDays = 90
)

const (
	MsgInvalidDates  = "Invalid dates"
	MsgStartInPast   = "Start date cannot be in the past"
	MsgEndNotAfter   = "End date must be after start date"
	MsgRangeTooShort = "Minimum range is 1 week"
	MsgRangeTooLong  = "Maximum range is 3 months"
)

// ValidationResult is the outcome of ValidateRange. Message is meant to be
// shown to the user as-is.
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// ValidateRange checks a proposed theme period against today. Checks run in
// order and stop at the first failure.
func ValidateRange(startDate, endDate string, today Date) ValidationResult {
	start, errStart := ParseDate(startDate)
	end, errEnd := ParseDate(endDate)
	if errStart != nil || errEnd != nil {
		return invalid(MsgInvalidDates)
	}
	return ValidateDates(start, end, today)
}

// ValidateDates is ValidateRange for already parsed dates.
func ValidateDates(start, end, today Date) ValidationResult {
	if start.Before(today) {
		return invalid(MsgStartInPast)
	}
	if !end.After(start) {
		return invalid(MsgEndNotAfter)
	}

	span := start.DaysUntil(end)
	if span < MinRangeDays {
		return invalid(MsgRangeTooShort)
	}
	if span > MaxRangeDays {
		return invalid(MsgRangeTooLong)
	}
	return ValidationResult{Valid: true}
}

func invalid(msg string) ValidationResult {
	return ValidationResult{Valid: false, Message: msg}
}
