package job

import (
	"context"
	"errors"
	"testing"

	"github.com/maheshrc27/content-planner/internal/models"
	"github.com/maheshrc27/content-planner/internal/service"
	"github.com/robfig/cron"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGeneration struct {
	service.GenerationService
	calls []*models.User
	err   error
}

func (g *fakeGeneration) SyncThemes(ctx context.Context, user *models.User) (int, error) {
	g.calls = append(g.calls, user)
	return 3, g.err
}

func TestThemeSyncJob_SyncsEveryTheme(t *testing.T) {
	gen := &fakeGeneration{}
	NewThemeSyncJob(gen).SyncThemes()

	require.Len(t, gen.calls, 1)
	assert.Nil(t, gen.calls[0])
}

func TestThemeSyncJob_FailureDoesNotPanic(t *testing.T) {
	gen := &fakeGeneration{err: errors.New("workflow unavailable")}
	assert.NotPanics(t, NewThemeSyncJob(gen).SyncThemes)
}

func TestThemeSyncJob_Schedule(t *testing.T) {
	job := NewThemeSyncJob(&fakeGeneration{})
	c := cron.New()

	require.NoError(t, job.Schedule(c, "@every 01h00m00s"))
	assert.Len(t, c.Entries(), 1)
	assert.Error(t, job.Schedule(c, "every now and then"))
}
