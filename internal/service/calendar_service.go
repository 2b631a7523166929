package service

import (
	"context"
	"time"

	"github.com/maheshrc27/content-planner/internal/cache"
	"github.com/maheshrc27/content-planner/internal/metrics"
	"github.com/maheshrc27/content-planner/internal/models"
	"github.com/maheshrc27/content-planner/internal/planner"
	"github.com/maheshrc27/content-planner/internal/repository"
	"github.com/maheshrc27/content-planner/internal/transfer"
)

const calendarName = "Content plan"

type CalendarService interface {
	Events(ctx context.Context, user *models.User) ([]transfer.CalendarEvent, error)
	ICS(ctx context.Context, user *models.User) (string, error)
	Distribution(themeName, start string) ([]planner.DistributionDay, error)
	Template() []planner.TemplateDay
}

type calendarService struct {
	tr      repository.ThemeRepository
	cr      repository.ContentRepository
	cache   cache.CalendarStore
	metrics metrics.Recorder
	now     func() time.Time
}

func NewCalendarService(
	tr repository.ThemeRepository,
	cr repository.ContentRepository,
	calendar cache.CalendarStore,
	m metrics.Recorder) CalendarService {
	return &calendarService{
		tr:      tr,
		cr:      cr,
		cache:   calendar,
		metrics: m,
		now:     time.Now,
	}
}

// Events expands the user's themes and marks each event whose content is
// ready to publish.
func (s *calendarService) Events(ctx context.Context, user *models.User) ([]transfer.CalendarEvent, error) {
	events, err := s.expand(ctx, user)
	if err != nil {
		return nil, err
	}

	out := make([]transfer.CalendarEvent, 0, len(events))
	if len(events) == 0 {
		return out, nil
	}

	ids := make([]string, 0)
	seen := make(map[string]bool)
	for _, ev := range events {
		if id := ev.Resource.Theme.ID; !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	rows, err := s.cr.List(ctx, repository.ContentQuery{ThemeIDs: ids})
	if err != nil {
		return nil, err
	}
	records := models.ContentRecords(rows)

	for _, ev := range events {
		out = append(out, transfer.CalendarEvent{
			CalendarEvent: ev,
			Fulfilled:     planner.IsFulfilled(records, ev.Resource.Theme.ID, ev.Start.String(), ev.Resource.DayContent.Type),
		})
	}
	return out, nil
}

func (s *calendarService) ICS(ctx context.Context, user *models.User) (string, error) {
	events, err := s.expand(ctx, user)
	if err != nil {
		return "", err
	}
	return planner.ExportICS(events, calendarName, s.now().UTC()), nil
}

func (s *calendarService) Distribution(themeName, start string) ([]planner.DistributionDay, error) {
	date, err := planner.ParseDate(start)
	if err != nil {
		return nil, &ValidationError{Message: planner.MsgInvalidDates}
	}
	return planner.WeeklyDistribution(sanitizeText(themeName), date), nil
}

func (s *calendarService) Template() []planner.TemplateDay {
	return planner.WeeklyTemplate()
}

func (s *calendarService) expand(ctx context.Context, user *models.User) ([]planner.CalendarEvent, error) {
	key := user.ID
	if user.IsAdmin() {
		key = cache.AllThemesKey
	}

	if events, ok := s.cache.Get(ctx, key); ok {
		s.metrics.RecordCalendarCache(true)
		return events, nil
	}
	s.metrics.RecordCalendarCache(false)

	themes, err := visibleThemes(ctx, s.tr, user)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	events := planner.Expand(models.PlannerThemes(themes))
	s.metrics.RecordExpansion(len(events), time.Since(started))

	s.cache.Set(ctx, key, events)
	return events, nil
}
