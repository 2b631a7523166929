package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/maheshrc27/content-planner/internal/metrics"
	"github.com/maheshrc27/content-planner/internal/models"
	"github.com/maheshrc27/content-planner/internal/planner"
	"github.com/maheshrc27/content-planner/internal/repository"
	"github.com/maheshrc27/content-planner/internal/transfer"
)

// TaskEnqueuer hands a generation request to the background worker.
type TaskEnqueuer interface {
	EnqueueGeneration(ctx context.Context, payload *transfer.GenerateContentPayload) error
}

type GenerationService interface {
	// Request queues generation of one content slot. It returns once the
	// task is queued.
	Request(ctx context.Context, user *models.User, themeID string, req *transfer.GenerateRequest) (*transfer.GenerateContentPayload, error)
	// Dispatch is run by the worker: it calls the automation workflow and
	// marks the slot as processing.
	Dispatch(ctx context.Context, payload *transfer.GenerateContentPayload) error
	// MarkFailed is run by the worker once a task will not be retried again.
	MarkFailed(ctx context.Context, payload *transfer.GenerateContentPayload) error
	// SyncThemes sends the themes user can see, or every theme when user is
	// nil, to the automation workflow. It returns how many were sent.
	SyncThemes(ctx context.Context, user *models.User) (int, error)
}

type generationService struct {
	tr      repository.ThemeRepository
	cr      repository.ContentRepository
	queue   TaskEnqueuer
	webhook WebhookClient
	metrics metrics.Recorder
	now     func() time.Time
}

func NewGenerationService(
	tr repository.ThemeRepository,
	cr repository.ContentRepository,
	queue TaskEnqueuer,
	webhook WebhookClient,
	m metrics.Recorder) GenerationService {
	return &generationService{
		tr:      tr,
		cr:      cr,
		queue:   queue,
		webhook: webhook,
		metrics: m,
		now:     time.Now,
	}
}

func (s *generationService) Request(ctx context.Context, user *models.User, themeID string, req *transfer.GenerateRequest) (*transfer.GenerateContentPayload, error) {
	if req == nil || req.Date == "" {
		return nil, validationError("date is required")
	}

	theme, err := ownedTheme(ctx, s.tr, user, themeID)
	if err != nil {
		return nil, err
	}

	date, err := planner.ParseDate(req.Date)
	if err != nil {
		return nil, validationError("Invalid date %q", req.Date)
	}

	slot, ok := planner.SlotFor(theme.Planner(), date)
	if !ok {
		return nil, ErrNotPlanned
	}

	if !req.Force {
		rows, err := s.cr.List(ctx, repository.ContentQuery{
			ThemeIDs:    []string{theme.ID},
			Date:        date.String(),
			ContentType: string(slot.ContentType),
		})
		if err != nil {
			return nil, err
		}
		if planner.IsFulfilled(models.ContentRecords(rows), theme.ID, date.String(), slot.ContentType) {
			return nil, ErrAlreadyFulfilled
		}
	}

	payload := generatePayload(theme, slot)
	if err := s.queue.EnqueueGeneration(ctx, payload); err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("Error scheduling content generation")
	}

	s.metrics.RecordGenerationEnqueued(payload.ContentType)
	slog.Info("content generation queued", "theme_id", theme.ID, "date", payload.ScheduledDate, "content_type", payload.ContentType)
	return payload, nil
}

func (s *generationService) Dispatch(ctx context.Context, payload *transfer.GenerateContentPayload) error {
	if err := s.webhook.Post(ctx, EndpointContentGenerator, payload); err != nil {
		return err
	}

	row, err := s.cr.GetBySlot(ctx, payload.ThemeID, payload.ScheduledDate, payload.ContentType)
	if err != nil {
		return err
	}
	if row == nil {
		slog.Warn("generated slot has no content row", "theme_id", payload.ThemeID, "date", payload.ScheduledDate)
		return nil
	}
	if row.Status == models.ContentStatusPending || row.Status == models.ContentStatusFailed {
		return s.cr.UpdateStatus(ctx, row.ID, models.ContentStatusProcessing)
	}
	return nil
}

func (s *generationService) MarkFailed(ctx context.Context, payload *transfer.GenerateContentPayload) error {
	s.metrics.RecordGenerationFailed(payload.ContentType)

	row, err := s.cr.GetBySlot(ctx, payload.ThemeID, payload.ScheduledDate, payload.ContentType)
	if err != nil {
		return err
	}
	if row == nil || row.FilePath != nil {
		return nil
	}
	if row.Status != models.ContentStatusPending && row.Status != models.ContentStatusProcessing {
		return nil
	}

	slog.Warn("content generation failed", "theme_id", payload.ThemeID, "date", payload.ScheduledDate, "content_type", payload.ContentType)
	return s.cr.UpdateStatus(ctx, row.ID, models.ContentStatusFailed)
}

func (s *generationService) SyncThemes(ctx context.Context, user *models.User) (int, error) {
	var themes []*models.Theme
	var err error
	if user == nil {
		themes, err = s.tr.ListAll(ctx)
	} else {
		themes, err = visibleThemes(ctx, s.tr, user)
	}
	if err != nil {
		return 0, err
	}

	payload := syncPayload(themes, s.now())
	if err := s.webhook.Post(ctx, EndpointSchedulerSync, payload); err != nil {
		return 0, err
	}

	slog.Info("themes synced", "count", len(themes))
	return len(themes), nil
}

func generatePayload(theme *models.Theme, slot planner.Slot) *transfer.GenerateContentPayload {
	content := planner.ContentFor(slot.Date.Weekday())
	return &transfer.GenerateContentPayload{
		Action:             transfer.ActionGenerateContent,
		ThemeID:            theme.ID,
		ThemeName:          theme.Name,
		ThemeDescription:   theme.Description,
		DayOfWeek:          slot.DayOfWeek,
		ContentType:        string(slot.ContentType),
		ContentTitle:       content.Title,
		ContentDescription: content.Description,
		SuggestedTime:      content.SuggestedTime,
		Duration:           content.Duration,
		ScheduledDate:      slot.Date.String(),
		SocialNetworks:     slot.SocialNetworks,
	}
}

func weeklySchedule() map[string]transfer.ScheduleDay {
	schedule := make(map[string]transfer.ScheduleDay)
	for _, day := range planner.WeeklyTemplate() {
		if day.Content.Type.IsFree() {
			continue
		}
		schedule[day.Key] = transfer.ScheduleDay{
			Type:  string(day.Content.Type),
			Title: day.Content.Title,
			Time:  day.Content.SuggestedTime,
		}
	}
	return schedule
}

func syncPayload(themes []*models.Theme, now time.Time) *transfer.SyncThemesPayload {
	schedule := weeklySchedule()
	synced := make([]transfer.SyncTheme, 0, len(themes))
	for _, t := range themes {
		st := transfer.SyncTheme{
			ID:             t.ID,
			Name:           t.Name,
			Description:    t.Description,
			StartDate:      t.StartDate,
			EndDate:        t.EndDate,
			WeeklySchedule: schedule,
		}
		if !t.CreatedAt.IsZero() {
			st.CreatedAt = t.CreatedAt.UTC().Format(time.RFC3339)
		}
		synced = append(synced, st)
	}
	return &transfer.SyncThemesPayload{
		Action:       transfer.ActionSyncAllThemes,
		Themes:       synced,
		Timestamp:    now.UTC().Format(time.RFC3339),
		WorkflowType: "content_scheduler",
	}
}
