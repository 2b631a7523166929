package queue

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/content-planner/internal/service"
)

const TaskTypeGenerateContent = "generate:content"

// taskClient is the part of asynq.Client the queue uses.
type taskClient interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// taskInspector is the part of asynq.Inspector the queue uses.
type taskInspector interface {
	GetTaskInfo(queue, id string) (*asynq.TaskInfo, error)
	DeleteTask(queue, id string) error
}

// Queue enqueues generation tasks.
type Queue struct {
	client    taskClient
	inspector taskInspector
}

func NewQueue(client *asynq.Client, inspector *asynq.Inspector) *Queue {
	return &Queue{client: client, inspector: inspector}
}

// Worker runs queued generation tasks.
type Worker struct {
	gen service.GenerationService
	// finalAttempt reports whether a failure of the running task is its last.
	finalAttempt func(ctx context.Context) bool
}

func NewWorker(gen service.GenerationService) *Worker {
	return &Worker{gen: gen, finalAttempt: retriesExhausted}
}

func retriesExhausted(ctx context.Context) bool {
	retried, ok := asynq.GetRetryCount(ctx)
	if !ok {
		return false
	}
	maxRetry, ok := asynq.GetMaxRetry(ctx)
	if !ok {
		return false
	}
	return retried >= maxRetry
}

// Register routes every task type the worker handles on mux.
func (w *Worker) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TaskTypeGenerateContent, w.HandleGenerateContentTask)
}
