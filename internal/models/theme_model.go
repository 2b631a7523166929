package models

import (
	"time"

	"github.com/maheshrc27/content-planner/internal/planner"
)

// Theme is a row of theme_planning. Dates are YYYY-MM-DD.
type Theme struct {
	ID          string    `db:"id" json:"id"`
	UserID      int64     `db:"user_id" json:"user_id"`
	Name        string    `db:"theme_name" json:"theme_name"`
	Description string    `db:"theme_description" json:"theme_description"`
	StartDate   string    `db:"start_date" json:"start_date"`
	EndDate     string    `db:"end_date" json:"end_date"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

func (t *Theme) Planner() planner.Theme {
	return planner.Theme{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
	}
}

func PlannerThemes(themes []*Theme) []planner.Theme {
	out := make([]planner.Theme, 0, len(themes))
	for _, t := range themes {
		out = append(out, t.Planner())
	}
	return out
}
