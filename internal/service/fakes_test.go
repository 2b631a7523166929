package service

import (
	"context"
	"database/sql"
	"slices"
	"sort"
	"time"

	"github.com/maheshrc27/content-planner/internal/models"
	"github.com/maheshrc27/content-planner/internal/planner"
	"github.com/maheshrc27/content-planner/internal/repository"
	"github.com/maheshrc27/content-planner/internal/transfer"
)

// fakeThemeRepo keeps themes in memory. listErr, when set, fails listings.
type fakeThemeRepo struct {
	themes  map[string]*models.Theme
	listErr error
	created []*models.Theme
}

func newFakeThemeRepo(themes ...*models.Theme) *fakeThemeRepo {
	r := &fakeThemeRepo{themes: make(map[string]*models.Theme)}
	for _, t := range themes {
		r.themes[t.ID] = t
	}
	return r
}

func (r *fakeThemeRepo) GetByID(ctx context.Context, id string) (*models.Theme, error) {
	t, ok := r.themes[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeThemeRepo) ListByUserID(ctx context.Context, userID int64) ([]*models.Theme, error) {
	return r.filter(func(t *models.Theme) bool { return t.UserID == userID })
}

func (r *fakeThemeRepo) ListAll(ctx context.Context) ([]*models.Theme, error) {
	return r.filter(func(*models.Theme) bool { return true })
}

func (r *fakeThemeRepo) filter(keep func(*models.Theme) bool) ([]*models.Theme, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*models.Theme
	for _, t := range r.themes {
		if keep(t) {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate < out[j].StartDate })
	return out, nil
}

func (r *fakeThemeRepo) Create(ctx context.Context, tx *sql.Tx, theme *models.Theme) error {
	theme.CreatedAt = time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	cp := *theme
	r.themes[theme.ID] = &cp
	r.created = append(r.created, &cp)
	return nil
}

func (r *fakeThemeRepo) Update(ctx context.Context, tx *sql.Tx, theme *models.Theme) error {
	cp := *theme
	r.themes[theme.ID] = &cp
	return nil
}

func (r *fakeThemeRepo) Remove(ctx context.Context, id string) error {
	delete(r.themes, id)
	return nil
}

// fakeContentRepo keeps content rows in memory with the same slot
// uniqueness as the table.
type fakeContentRepo struct {
	rows     []*models.ContentGenerated
	nextID   int64
	queries  []repository.ContentQuery
	removals int
}

func (r *fakeContentRepo) add(c *models.ContentGenerated) *models.ContentGenerated {
	r.nextID++
	c.ID = r.nextID
	r.rows = append(r.rows, c)
	return c
}

func (r *fakeContentRepo) GetByID(ctx context.Context, id int64) (*models.ContentGenerated, error) {
	for _, c := range r.rows {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeContentRepo) GetBySlot(ctx context.Context, themeID, date, contentType string) (*models.ContentGenerated, error) {
	for _, c := range r.rows {
		if c.ThemeID == themeID && c.ScheduledDate == date && c.ContentType == contentType {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeContentRepo) List(ctx context.Context, q repository.ContentQuery) ([]*models.ContentGenerated, error) {
	r.queries = append(r.queries, q)
	var out []*models.ContentGenerated
	for _, c := range r.rows {
		if !slices.Contains(q.ThemeIDs, c.ThemeID) {
			continue
		}
		if q.Date != "" && c.ScheduledDate != q.Date {
			continue
		}
		if q.ContentType != "" && c.ContentType != q.ContentType {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeContentRepo) CreateBatch(ctx context.Context, tx *sql.Tx, rows []*models.ContentGenerated) error {
	for _, row := range rows {
		if existing, _ := r.GetBySlot(ctx, row.ThemeID, row.ScheduledDate, row.ContentType); existing != nil {
			continue
		}
		cp := *row
		r.add(&cp)
	}
	return nil
}

func (r *fakeContentRepo) RemoveUntouchedByTheme(ctx context.Context, tx *sql.Tx, themeID string) error {
	r.removals++
	kept := r.rows[:0]
	for _, c := range r.rows {
		if c.ThemeID == themeID && c.Status == models.ContentStatusPending &&
			c.FilePath == nil && c.Caption == nil && c.Hashtags == nil {
			continue
		}
		kept = append(kept, c)
	}
	r.rows = kept
	return nil
}

func (r *fakeContentRepo) Update(ctx context.Context, c *models.ContentGenerated) error {
	for i, row := range r.rows {
		if row.ID == c.ID {
			cp := *c
			r.rows[i] = &cp
		}
	}
	return nil
}

func (r *fakeContentRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	for _, row := range r.rows {
		if row.ID == id {
			row.Status = status
		}
	}
	return nil
}

// fakeCalendarStore records invalidations and serves whatever was set.
type fakeCalendarStore struct {
	stored      map[int64][]planner.CalendarEvent
	invalidated []int64
	gets        int
}

func newFakeCalendarStore() *fakeCalendarStore {
	return &fakeCalendarStore{stored: make(map[int64][]planner.CalendarEvent)}
}

func (c *fakeCalendarStore) Get(ctx context.Context, userID int64) ([]planner.CalendarEvent, bool) {
	c.gets++
	events, ok := c.stored[userID]
	return events, ok
}

func (c *fakeCalendarStore) Set(ctx context.Context, userID int64, events []planner.CalendarEvent) {
	c.stored[userID] = events
}

func (c *fakeCalendarStore) Invalidate(ctx context.Context, userIDs ...int64) {
	for _, id := range userIDs {
		delete(c.stored, id)
	}
	c.invalidated = append(c.invalidated, userIDs...)
}

// fakeEnqueuer captures queued payloads.
type fakeEnqueuer struct {
	payloads []*transfer.GenerateContentPayload
	err      error
}

func (q *fakeEnqueuer) EnqueueGeneration(ctx context.Context, payload *transfer.GenerateContentPayload) error {
	if q.err != nil {
		return q.err
	}
	q.payloads = append(q.payloads, payload)
	return nil
}

// fakeWebhook captures posts by endpoint.
type fakeWebhook struct {
	posts map[string][]any
	err   error
}

func (w *fakeWebhook) Post(ctx context.Context, endpoint string, payload any) error {
	if w.err != nil {
		return w.err
	}
	if w.posts == nil {
		w.posts = make(map[string][]any)
	}
	w.posts[endpoint] = append(w.posts[endpoint], payload)
	return nil
}

// fakeStorage captures uploads.
type fakeStorage struct {
	keys []string
	err  error
}

func (s *fakeStorage) Upload(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.keys = append(s.keys, key)
	return "https://cdn.example.com/" + key, nil
}

// fakeUserRepo is a function-field mock.
type fakeUserRepo struct {
	getByIDFn    func(ctx context.Context, id int64) (*models.User, bool, error)
	getByEmailFn func(ctx context.Context, email string) (*models.User, bool, error)
	listFn       func(ctx context.Context) ([]*models.User, error)
	createFn     func(ctx context.Context, tx *sql.Tx, user *models.User) (int64, error)
	updateFn     func(ctx context.Context, user *models.User) error
	updateRoleFn func(ctx context.Context, id int64, role string) error
	removeFn     func(ctx context.Context, id int64) error
}

func (m *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, bool, error) {
	return m.getByIDFn(ctx, id)
}

func (m *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, bool, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *fakeUserRepo) List(ctx context.Context) ([]*models.User, error) {
	return m.listFn(ctx)
}

func (m *fakeUserRepo) Create(ctx context.Context, tx *sql.Tx, user *models.User) (int64, error) {
	return m.createFn(ctx, tx, user)
}

func (m *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, user)
}

func (m *fakeUserRepo) UpdateRole(ctx context.Context, id int64, role string) error {
	return m.updateRoleFn(ctx, id, role)
}

func (m *fakeUserRepo) Remove(ctx context.Context, id int64) error {
	return m.removeFn(ctx, id)
}

// fakeApiKeyRepo is a function-field mock.
type fakeApiKeyRepo struct {
	touchFn         func(ctx context.Context, apiKey string) (*int64, bool, error)
	getByUserIDFn   func(ctx context.Context, userID int64) ([]*models.ApiKey, error)
	countByUserIDFn func(ctx context.Context, userID int64) (int, error)
	createFn        func(ctx context.Context, apiKey *models.ApiKey) error
	removeFn        func(ctx context.Context, keyID, userID int64) (bool, error)
}

func (m *fakeApiKeyRepo) Touch(ctx context.Context, apiKey string) (*int64, bool, error) {
	return m.touchFn(ctx, apiKey)
}

func (m *fakeApiKeyRepo) GetByUserID(ctx context.Context, userID int64) ([]*models.ApiKey, error) {
	return m.getByUserIDFn(ctx, userID)
}

func (m *fakeApiKeyRepo) CountByUserID(ctx context.Context, userID int64) (int, error) {
	return m.countByUserIDFn(ctx, userID)
}

func (m *fakeApiKeyRepo) Create(ctx context.Context, apiKey *models.ApiKey) error {
	return m.createFn(ctx, apiKey)
}

func (m *fakeApiKeyRepo) Remove(ctx context.Context, keyID, userID int64) (bool, error) {
	return m.removeFn(ctx, keyID, userID)
}

// noTx runs fn without a transaction.
func noTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return fn(nil)
}

var (
	alice = &models.User{ID: 1, Email: "alice@example.com", Role: models.RoleUser}
	bob   = &models.User{ID: 2, Email: "bob@example.com", Role: models.RoleUser}
	admin = &models.User{ID: 9, Email: "admin@example.com", Role: models.RoleAdmin}
)

func strPtr(s string) *string { return &s }
