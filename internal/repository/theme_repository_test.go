package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeRepository_GetByIDMalformedID(t *testing.T) {
	// No database: a malformed id must return before any query runs.
	r := NewThemeRepository(nil)

	for _, id := range []string{"", "t-alice", "42", "2b1e-not-a-uuid", "'; DROP TABLE theme_planning; --"} {
		theme, err := r.GetByID(context.Background(), id)
		assert.NoError(t, err, id)
		assert.Nil(t, theme, id)
	}
}
