package service

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/maheshrc27/content-planner/internal/cache"
	"github.com/maheshrc27/content-planner/internal/metrics"
	"github.com/maheshrc27/content-planner/internal/models"
	"github.com/maheshrc27/content-planner/internal/planner"
	"github.com/maheshrc27/content-planner/internal/repository"
	"github.com/maheshrc27/content-planner/internal/transfer"
)

type ThemeService interface {
	List(ctx context.Context, user *models.User) ([]*models.Theme, error)
	Get(ctx context.Context, user *models.User, id string) (*models.Theme, error)
	Create(ctx context.Context, user *models.User, in *transfer.ThemeInput) (*models.Theme, error)
	Update(ctx context.Context, user *models.User, id string, in *transfer.ThemeInput) (*models.Theme, error)
	Delete(ctx context.Context, user *models.User, id string) error
	Check(ctx context.Context, user *models.User, req *transfer.ValidateRequest) (*transfer.CheckResult, error)
	// ActiveOn returns the user's own theme running on date, today when date
	// is empty.
	ActiveOn(ctx context.Context, user *models.User, date string) (*models.Theme, error)
}

type themeService struct {
	withTx  txRunner
	tr      repository.ThemeRepository
	cr      repository.ContentRepository
	cache   cache.CalendarStore
	metrics metrics.Recorder
	today   func() planner.Date
}

func NewThemeService(
	db *sql.DB,
	tr repository.ThemeRepository,
	cr repository.ContentRepository,
	calendar cache.CalendarStore,
	m metrics.Recorder,
	loc *time.Location) ThemeService {
	return &themeService{
		withTx:  inTx(db),
		tr:      tr,
		cr:      cr,
		cache:   calendar,
		metrics: m,
		today:   func() planner.Date { return planner.Today(loc) },
	}
}

func (s *themeService) List(ctx context.Context, user *models.User) ([]*models.Theme, error) {
	themes, err := visibleThemes(ctx, s.tr, user)
	if err != nil {
		return nil, err
	}
	if themes == nil {
		themes = []*models.Theme{}
	}
	return themes, nil
}

func (s *themeService) Get(ctx context.Context, user *models.User, id string) (*models.Theme, error) {
	return ownedTheme(ctx, s.tr, user, id)
}

func (s *themeService) Create(ctx context.Context, user *models.User, in *transfer.ThemeInput) (*models.Theme, error) {
	name, description, start, end, err := s.validate(ctx, user.ID, in, "")
	if err != nil {
		return nil, err
	}

	theme := &models.Theme{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		Name:        name,
		Description: description,
		StartDate:   start.String(),
		EndDate:     end.String(),
	}

	err = s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.tr.Create(ctx, tx, theme); err != nil {
			return err
		}
		return s.cr.CreateBatch(ctx, tx, s.plannedRows(theme))
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, theme.UserID, cache.AllThemesKey)
	s.metrics.RecordThemeSaved("create")
	slog.Info("theme created", "theme_id", theme.ID, "user_id", user.ID, "start", theme.StartDate, "end", theme.EndDate)
	return theme, nil
}

func (s *themeService) Update(ctx context.Context, user *models.User, id string, in *transfer.ThemeInput) (*models.Theme, error) {
	theme, err := ownedTheme(ctx, s.tr, user, id)
	if err != nil {
		return nil, err
	}

	name, description, start, end, err := s.validate(ctx, theme.UserID, in, theme.ID)
	if err != nil {
		return nil, err
	}

	periodChanged := theme.StartDate != start.String() || theme.EndDate != end.String()

	theme.Name = name
	theme.Description = description
	theme.StartDate = start.String()
	theme.EndDate = end.String()

	err = s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.tr.Update(ctx, tx, theme); err != nil {
			return err
		}
		if !periodChanged {
			return nil
		}
		if err := s.cr.RemoveUntouchedByTheme(ctx, tx, theme.ID); err != nil {
			return err
		}
		return s.cr.CreateBatch(ctx, tx, s.plannedRows(theme))
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, theme.UserID, cache.AllThemesKey)
	s.metrics.RecordThemeSaved("update")
	slog.Info("theme updated", "theme_id", theme.ID, "user_id", user.ID, "start", theme.StartDate, "end", theme.EndDate)
	return theme, nil
}

func (s *themeService) Delete(ctx context.Context, user *models.User, id string) error {
	theme, err := ownedTheme(ctx, s.tr, user, id)
	if err != nil {
		return err
	}

	if err := s.tr.Remove(ctx, theme.ID); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, theme.UserID, cache.AllThemesKey)
	s.metrics.RecordThemeSaved("delete")
	slog.Info("theme deleted", "theme_id", theme.ID, "user_id", user.ID)
	return nil
}

func (s *themeService) Check(ctx context.Context, user *models.User, req *transfer.ValidateRequest) (*transfer.CheckResult, error) {
	if req == nil {
		req = &transfer.ValidateRequest{}
	}

	result := planner.ValidateRange(req.StartDate, req.EndDate, s.today())
	if !result.Valid {
		return &transfer.CheckResult{Valid: false, Message: result.Message, Conflicts: []planner.Theme{}}, nil
	}

	ownerID := user.ID
	if req.ExcludeID != "" {
		theme, err := ownedTheme(ctx, s.tr, user, req.ExcludeID)
		if err != nil {
			return nil, err
		}
		ownerID = theme.UserID
	}

	start, _ := planner.ParseDate(req.StartDate)
	end, _ := planner.ParseDate(req.EndDate)
	conflicts, err := s.conflicts(ctx, ownerID, start, end, req.ExcludeID)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return &transfer.CheckResult{
			Valid:     false,
			Message:   (&ConflictError{Themes: conflicts}).Error(),
			Conflicts: conflicts,
		}, nil
	}
	return &transfer.CheckResult{Valid: true, Conflicts: []planner.Theme{}}, nil
}

func (s *themeService) ActiveOn(ctx context.Context, user *models.User, date string) (*models.Theme, error) {
	day := s.today()
	if date != "" {
		parsed, err := planner.ParseDate(date)
		if err != nil {
			return nil, validationError("Invalid date %q", date)
		}
		day = parsed
	}

	themes, err := s.tr.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	active, ok := planner.ActiveOn(models.PlannerThemes(themes), day)
	if !ok {
		return nil, ErrThemeNotFound
	}
	for _, t := range themes {
		if t.ID == active.ID {
			return t, nil
		}
	}
	return nil, ErrThemeNotFound
}

// validate checks a theme input for ownerID and returns the cleaned values.
// excludeID is the theme being edited, if any.
func (s *themeService) validate(ctx context.Context, ownerID int64, in *transfer.ThemeInput, excludeID string) (name, description string, start, end planner.Date, err error) {
	if in == nil {
		in = &transfer.ThemeInput{}
	}

	name = sanitizeText(in.ThemeName)
	description = sanitizeText(in.ThemeDescription)
	if name == "" {
		s.metrics.RecordThemeRejected("missing_name")
		return "", "", start, end, validationError("Theme name is required")
	}
	if in.StartDate == "" || in.EndDate == "" {
		s.metrics.RecordThemeRejected("missing_dates")
		return "", "", start, end, validationError("Start and end dates are required")
	}

	result := planner.ValidateRange(in.StartDate, in.EndDate, s.today())
	if !result.Valid {
		s.metrics.RecordThemeRejected("invalid_range")
		return "", "", start, end, &ValidationError{Message: result.Message}
	}

	start, _ = planner.ParseDate(in.StartDate)
	end, _ = planner.ParseDate(in.EndDate)

	conflicts, err := s.conflicts(ctx, ownerID, start, end, excludeID)
	if err != nil {
		return "", "", start, end, err
	}
	if len(conflicts) > 0 {
		s.metrics.RecordThemeRejected("conflict")
		return "", "", start, end, &ConflictError{Themes: conflicts}
	}
	return name, description, start, end, nil
}

func (s *themeService) conflicts(ctx context.Context, ownerID int64, start, end planner.Date, excludeID string) ([]planner.Theme, error) {
	existing, err := s.tr.ListByUserID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return planner.DetectConflicts(models.PlannerThemes(existing), start, end, excludeID), nil
}

func (s *themeService) plannedRows(theme *models.Theme) []*models.ContentGenerated {
	slots := planner.PlanSlots(theme.Planner())
	rows := make([]*models.ContentGenerated, 0, len(slots))
	for _, slot := range slots {
		rows = append(rows, models.ContentFromSlot(theme.ID, slot))
	}
	return rows
}
