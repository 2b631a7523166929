package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/maheshrc27/content-planner/internal/models"
)

type ThemeRepository interface {
	GetByID(ctx context.Context, id string) (*models.Theme, error)
	ListByUserID(ctx context.Context, userID int64) ([]*models.Theme, error)
	ListAll(ctx context.Context) ([]*models.Theme, error)
	Create(ctx context.Context, tx *sql.Tx, theme *models.Theme) error
	Update(ctx context.Context, tx *sql.Tx, theme *models.Theme) error
	Remove(ctx context.Context, id string) error
}

type themeRepository struct {
	db *sql.DB
}

func NewThemeRepository(db *sql.DB) ThemeRepository {
	return &themeRepository{db: db}
}

const themeColumns = `id, user_id, theme_name, COALESCE(theme_description, ''),
	to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), created_at, updated_at`

func scanTheme(s scanner) (*models.Theme, error) {
	var t models.Theme
	err := s.Scan(&t.ID, &t.UserID, &t.Name, &t.Description, &t.StartDate, &t.EndDate, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByID returns nil when no theme has id. Ids that are not UUIDs cannot
// exist and are not sent to postgres.
func (r *themeRepository) GetByID(ctx context.Context, id string) (*models.Theme, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	query := `SELECT ` + themeColumns + ` FROM theme_planning WHERE id = $1`
	theme, err := scanTheme(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return theme, nil
}

func (r *themeRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.Theme, error) {
	query := `SELECT ` + themeColumns + ` FROM theme_planning WHERE user_id = $1 ORDER BY start_date, created_at`
	return r.list(ctx, query, userID)
}

func (r *themeRepository) ListAll(ctx context.Context) ([]*models.Theme, error) {
	query := `SELECT ` + themeColumns + ` FROM theme_planning ORDER BY start_date, created_at`
	return r.list(ctx, query)
}

func (r *themeRepository) list(ctx context.Context, query string, args ...any) ([]*models.Theme, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var themes []*models.Theme
	for rows.Next() {
		theme, err := scanTheme(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		themes = append(themes, theme)
	}
	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return themes, nil
}

func (r *themeRepository) Create(ctx context.Context, tx *sql.Tx, theme *models.Theme) error {
	query := `
		INSERT INTO theme_planning (id, user_id, theme_name, theme_description, start_date, end_date)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
		RETURNING created_at, updated_at
	`
	err := conn(r.db, tx).QueryRowContext(ctx, query,
		theme.ID, theme.UserID, theme.Name, theme.Description, theme.StartDate, theme.EndDate,
	).Scan(&theme.CreatedAt, &theme.UpdatedAt)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *themeRepository) Update(ctx context.Context, tx *sql.Tx, theme *models.Theme) error {
	query := `
		UPDATE theme_planning
		SET theme_name = $1,
			theme_description = NULLIF($2, ''),
			start_date = $3,
			end_date = $4,
			updated_at = $5
		WHERE id = $6
	`
	now := time.Now()
	_, err := conn(r.db, tx).ExecContext(ctx, query, theme.Name, theme.Description, theme.StartDate, theme.EndDate, now, theme.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	theme.UpdatedAt = now
	return nil
}

func (r *themeRepository) Remove(ctx context.Context, id string) error {
	query := `DELETE FROM theme_planning WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
