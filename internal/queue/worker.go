package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/content-planner/internal/service"
	"github.com/maheshrc27/content-planner/internal/transfer"
)

func (w *Worker) HandleGenerateContentTask(ctx context.Context, task *asynq.Task) error {
	var payload transfer.GenerateContentPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		slog.Info(err.Error())
		return fmt.Errorf("decoding generation task: %v: %w", err, asynq.SkipRetry)
	}

	err := w.gen.Dispatch(ctx, &payload)
	if errors.Is(err, service.ErrWebhookNotConfigured) {
		slog.Warn("dropping generation task", "theme_id", payload.ThemeID, "error", err)
		w.markFailed(ctx, &payload)
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}
	if err != nil {
		slog.Info("generation dispatch failed", "theme_id", payload.ThemeID, "date", payload.ScheduledDate, "error", err)
		if w.finalAttempt(ctx) {
			w.markFailed(ctx, &payload)
		}
		return err
	}

	slog.Info("generation dispatched", "theme_id", payload.ThemeID, "date", payload.ScheduledDate, "content_type", payload.ContentType)
	return nil
}

// markFailed records a task asynq will not run again on its slot row.
func (w *Worker) markFailed(ctx context.Context, payload *transfer.GenerateContentPayload) {
	if err := w.gen.MarkFailed(context.WithoutCancel(ctx), payload); err != nil {
		slog.Error("marking generation failed", "theme_id", payload.ThemeID, "date", payload.ScheduledDate, "error", err)
	}
}
