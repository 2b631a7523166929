package service

import (
	"context"
	"database/sql"
	"fmt"
	"html"
	"strings"

	"github.com/maheshrc27/content-planner/internal/models"
	"github.com/maheshrc27/content-planner/internal/repository"
	"github.com/microcosm-cc/bluemonday"
)

// txRunner runs fn inside a transaction, committing when fn returns nil.
type txRunner func(ctx context.Context, fn func(tx *sql.Tx) error) error

func inTx(db *sql.DB) txRunner {
	return func(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
		tx, err := db.BeginTx(ctx, &sql.TxOptions{})
		if err != nil {
			return fmt.Errorf("failed to start transaction: %w", err)
		}
		defer func() {
			if p := recover(); p != nil {
				tx.Rollback()
				panic(p)
			} else if err != nil {
				tx.Rollback()
			}
		}()

		if err = fn(tx); err != nil {
			return err
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
		return nil
	}
}

// visibleThemes lists the themes user may see: all of them for admins, their
// own otherwise.
func visibleThemes(ctx context.Context, tr repository.ThemeRepository, user *models.User) ([]*models.Theme, error) {
	if user.IsAdmin() {
		return tr.ListAll(ctx)
	}
	return tr.ListByUserID(ctx, user.ID)
}

// ownedTheme loads a theme and checks user may act on it.
func ownedTheme(ctx context.Context, tr repository.ThemeRepository, user *models.User, id string) (*models.Theme, error) {
	if id == "" {
		return nil, ErrThemeNotFound
	}
	theme, err := tr.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if theme == nil {
		return nil, ErrThemeNotFound
	}
	if theme.UserID != user.ID && !user.IsAdmin() {
		return nil, ErrForbidden
	}
	return theme, nil
}

func themeIDs(themes []*models.Theme) []string {
	ids := make([]string, 0, len(themes))
	for _, t := range themes {
		ids = append(ids, t.ID)
	}
	return ids
}

var textPolicy = bluemonday.StrictPolicy()

// sanitizeText strips markup from user supplied text and keeps the plain
// characters.
func sanitizeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}
