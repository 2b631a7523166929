package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/maheshrc27/content-planner/internal/service"
	"github.com/robfig/cron"
)

const syncTimeout = 2 * time.Minute

// ThemeSyncJob pushes every theme to the content scheduler workflow.
type ThemeSyncJob struct {
	gen service.GenerationService
}

func NewThemeSyncJob(gen service.GenerationService) *ThemeSyncJob {
	return &ThemeSyncJob{gen: gen}
}

func (j *ThemeSyncJob) SyncThemes() {
	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()

	n, err := j.gen.SyncThemes(ctx, nil)
	if err != nil {
		slog.Info("Unable to sync themes", "error", err)
		return
	}
	slog.Info("scheduled theme sync finished", "themes", n)
}

// Schedule registers the job on c with a cron spec such as "@every 1h".
func (j *ThemeSyncJob) Schedule(c *cron.Cron, spec string) error {
	return c.AddFunc(spec, j.SyncThemes)
}
