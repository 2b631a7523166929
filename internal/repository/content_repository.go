package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/maheshrc27/content-planner/internal/models"
)

// ContentQuery narrows a content listing. ThemeIDs is required; empty
// strings leave the other columns unfiltered.
type ContentQuery struct {
	ThemeIDs    []string
	Date        string
	ContentType string
}

type ContentRepository interface {
	GetByID(ctx context.Context, id int64) (*models.ContentGenerated, error)
	GetBySlot(ctx context.Context, themeID, date, contentType string) (*models.ContentGenerated, error)
	List(ctx context.Context, q ContentQuery) ([]*models.ContentGenerated, error)
	CreateBatch(ctx context.Context, tx *sql.Tx, rows []*models.ContentGenerated) error
	RemoveUntouchedByTheme(ctx context.Context, tx *sql.Tx, themeID string) error
	Update(ctx context.Context, c *models.ContentGenerated) error
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type contentRepository struct {
	db *sql.DB
}

func NewContentRepository(db *sql.DB) ContentRepository {
	return &contentRepository{db: db}
}

const contentColumns = `id, theme_id, day_of_week, content_type, to_char(scheduled_date, 'YYYY-MM-DD'),
	scheduled_time, social_networks, format_id, format_type, file_path, caption, hashtags, status,
	created_at, updated_at`

func scanContent(s scanner) (*models.ContentGenerated, error) {
	var c models.ContentGenerated
	err := s.Scan(
		&c.ID, &c.ThemeID, &c.DayOfWeek, &c.ContentType, &c.ScheduledDate,
		&c.ScheduledTime, pq.Array(&c.SocialNetworks), &c.FormatID, &c.FormatType,
		&c.FilePath, &c.Caption, pq.Array(&c.Hashtags), &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contentRepository) GetByID(ctx context.Context, id int64) (*models.ContentGenerated, error) {
	query := `SELECT ` + contentColumns + ` FROM content_generated WHERE id = $1`
	c, err := scanContent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return c, nil
}

func (r *contentRepository) GetBySlot(ctx context.Context, themeID, date, contentType string) (*models.ContentGenerated, error) {
	query := `SELECT ` + contentColumns + ` FROM content_generated
		WHERE theme_id = $1 AND scheduled_date = $2 AND content_type = $3`
	c, err := scanContent(r.db.QueryRowContext(ctx, query, themeID, date, contentType))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return c, nil
}

func (r *contentRepository) List(ctx context.Context, q ContentQuery) ([]*models.ContentGenerated, error) {
	if len(q.ThemeIDs) == 0 {
		return nil, nil
	}

	conds := []string{"theme_id = ANY($1)"}
	args := []any{pq.Array(q.ThemeIDs)}
	if q.Date != "" {
		args = append(args, q.Date)
		conds = append(conds, "scheduled_date = $"+strconv.Itoa(len(args)))
	}
	if q.ContentType != "" {
		args = append(args, q.ContentType)
		conds = append(conds, "content_type = $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + contentColumns + ` FROM content_generated WHERE ` +
		strings.Join(conds, " AND ") + ` ORDER BY scheduled_date, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var out []*models.ContentGenerated
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return out, nil
}

// CreateBatch inserts planned slots. A slot that already has a row is left
// as it is.
func (r *contentRepository) CreateBatch(ctx context.Context, tx *sql.Tx, rows []*models.ContentGenerated) error {
	query := `
		INSERT INTO content_generated
			(theme_id, day_of_week, content_type, scheduled_date, scheduled_time,
			 social_networks, format_id, format_type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (theme_id, scheduled_date, content_type) DO NOTHING
	`
	c := conn(r.db, tx)
	for _, row := range rows {
		_, err := c.ExecContext(ctx, query,
			row.ThemeID, row.DayOfWeek, row.ContentType, row.ScheduledDate, row.ScheduledTime,
			pq.Array(row.SocialNetworks), row.FormatID, row.FormatType, row.Status,
		)
		if err != nil {
			slog.Info(err.Error())
			return err
		}
	}
	return nil
}

// RemoveUntouchedByTheme drops the theme's pending rows that nobody has put
// media, a caption or hashtags on yet.
func (r *contentRepository) RemoveUntouchedByTheme(ctx context.Context, tx *sql.Tx, themeID string) error {
	query := `
		DELETE FROM content_generated
		WHERE theme_id = $1
			AND status = 'pending'
			AND file_path IS NULL
			AND caption IS NULL
			AND hashtags IS NULL
	`
	_, err := conn(r.db, tx).ExecContext(ctx, query, themeID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *contentRepository) Update(ctx context.Context, c *models.ContentGenerated) error {
	query := `
		UPDATE content_generated
		SET file_path = $1,
			caption = $2,
			hashtags = $3,
			status = $4,
			updated_at = $5
		WHERE id = $6
	`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query, c.FilePath, c.Caption, pq.Array(c.Hashtags), c.Status, now, c.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	c.UpdatedAt = now
	return nil
}

func (r *contentRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `
		UPDATE content_generated
		SET status = $1,
			updated_at = $2
		WHERE id = $3
	`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
