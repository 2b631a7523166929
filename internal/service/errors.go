package service

import (
	"errors"
	"fmt"

	"github.com/maheshrc27/content-planner/internal/planner"
)

var (
	ErrThemeNotFound    = errors.New("Theme not found")
	ErrContentNotFound  = errors.New("Content not found")
	ErrUserNotFound     = errors.New("User not found")
	ErrForbidden        = errors.New("You do not have access to this resource")
	ErrNotPlanned       = errors.New("The theme has no content planned for this date")
	ErrAlreadyFulfilled = errors.New("Content for this day is already complete")
)

// ValidationError is returned for input the caller can fix. Message is safe
// to show to the user.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError lists the saved themes a date range overlaps.
type ConflictError struct {
	Themes []planner.Theme
}

func (e *ConflictError) Error() string {
	if len(e.Themes) == 0 {
		return "Dates conflict with an existing theme"
	}
	t := e.Themes[0]
	start, _ := planner.NormalizeDate(t.StartDate)
	end, _ := planner.NormalizeDate(t.EndDate)
	msg := fmt.Sprintf("Dates conflict with theme %q (%s to %s)", t.Name, start, end)
	if n := len(e.Themes) - 1; n > 0 {
		msg += fmt.Sprintf(" and %d more", n)
	}
	return msg
}
