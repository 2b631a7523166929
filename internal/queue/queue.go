package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/content-planner/internal/transfer"
)

const (
	generationQueue    = "default"
	generationMaxRetry = 3
	generationTimeout  = 2 * time.Minute
)

// generationTaskID identifies one slot, so a slot already waiting in the
// queue is not queued twice.
func generationTaskID(p *transfer.GenerateContentPayload) string {
	return fmt.Sprintf("%s:%s:%s:%s", TaskTypeGenerateContent, p.ThemeID, p.ScheduledDate, p.ContentType)
}

func (q *Queue) EnqueueGeneration(ctx context.Context, payload *transfer.GenerateContentPayload) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	taskID := generationTaskID(payload)
	task := asynq.NewTask(TaskTypeGenerateContent, taskPayload)
	opts := []asynq.Option{
		asynq.TaskID(taskID),
		asynq.Queue(generationQueue),
		asynq.MaxRetry(generationMaxRetry),
		asynq.Timeout(generationTimeout),
	}

	info, err := q.client.EnqueueContext(ctx, task, opts...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		var cleared bool
		cleared, err = q.clearFinished(taskID)
		if err != nil {
			slog.Info(err.Error())
			return err
		}
		if !cleared {
			slog.Info("generation already queued", "theme_id", payload.ThemeID, "date", payload.ScheduledDate)
			return nil
		}
		info, err = q.client.EnqueueContext(ctx, task, opts...)
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			slog.Info("generation already queued", "theme_id", payload.ThemeID, "date", payload.ScheduledDate)
			return nil
		}
	}
	if err != nil {
		return err
	}

	slog.Info("task enqueued", "task_id", info.ID, "queue", info.Queue, "type", TaskTypeGenerateContent)
	return nil
}

// clearFinished deletes the task holding id when it has already completed or
// been archived, so the slot can be queued again. It reports whether the id
// is free.
func (q *Queue) clearFinished(id string) (bool, error) {
	info, err := q.inspector.GetTaskInfo(generationQueue, id)
	if errors.Is(err, asynq.ErrTaskNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	switch info.State {
	case asynq.TaskStateArchived, asynq.TaskStateCompleted:
	default:
		return false, nil
	}

	if err := q.inspector.DeleteTask(generationQueue, id); err != nil && !errors.Is(err, asynq.ErrTaskNotFound) {
		return false, err
	}
	slog.Info("cleared finished generation task", "task_id", id, "state", info.State.String())
	return true, nil
}
