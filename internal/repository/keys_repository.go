package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/maheshrc27/content-planner/internal/models"
)

type ApiKeyRepository interface {
	// Touch resolves a key to its owner and records the use.
	Touch(ctx context.Context, apiKey string) (*int64, bool, error)
	GetByUserID(ctx context.Context, userID int64) ([]*models.ApiKey, error)
	CountByUserID(ctx context.Context, userID int64) (int, error)
	Create(ctx context.Context, apiKey *models.ApiKey) error
	// Remove deletes a key owned by userID. It reports false when no such key
	// exists.
	Remove(ctx context.Context, keyID, userID int64) (bool, error)
}

type apiKeyRepository struct {
	db *sql.DB
}

func NewApiKeyRepository(db *sql.DB) ApiKeyRepository {
	return &apiKeyRepository{db: db}
}

func (r *apiKeyRepository) Touch(ctx context.Context, apiKey string) (*int64, bool, error) {
	var userID int64
	query := `UPDATE api_keys SET last_used_at = NOW() WHERE api_key = $1 RETURNING user_id`
	err := r.db.QueryRowContext(ctx, query, apiKey).Scan(&userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}
	return &userID, true, nil
}

func (r *apiKeyRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.ApiKey, error) {
	query := `SELECT id, user_id, name, api_key, last_used_at, created_at
		FROM api_keys WHERE user_id = $1 ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var apiKeys []*models.ApiKey
	for rows.Next() {
		var k models.ApiKey
		var lastUsed sql.NullTime
		if err := rows.Scan(&k.ID, &k.UserID, &k.Name, &k.ApiKey, &lastUsed, &k.CreatedAt); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		if lastUsed.Valid {
			k.LastUsedAt = &lastUsed.Time
		}
		apiKeys = append(apiKeys, &k)
	}
	return apiKeys, rows.Err()
}

func (r *apiKeyRepository) CountByUserID(ctx context.Context, userID int64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM api_keys WHERE user_id = $1`, userID).Scan(&n)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return n, nil
}

func (r *apiKeyRepository) Create(ctx context.Context, apiKey *models.ApiKey) error {
	query := `INSERT INTO api_keys (user_id, name, api_key) VALUES ($1, $2, $3) RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, apiKey.UserID, apiKey.Name, apiKey.ApiKey).Scan(&apiKey.ID, &apiKey.CreatedAt)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *apiKeyRepository) Remove(ctx context.Context, keyID, userID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM api_keys WHERE id = $1 AND user_id = $2`, keyID, userID)
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
