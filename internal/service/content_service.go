package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/maheshrc27/content-planner/internal/metrics"
	"github.com/maheshrc27/content-planner/internal/models"
	"github.com/maheshrc27/content-planner/internal/planner"
	"github.com/maheshrc27/content-planner/internal/repository"
	"github.com/maheshrc27/content-planner/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// MaxUploadSize bounds a single generated media file.
const MaxUploadSize = 100 << 20

var allowedUploadTypes = map[string]string{
	"mp4":  "videos",
	"mov":  "videos",
	"png":  "images",
	"jpg":  "images",
	"jpeg": "images",
}

type ContentService interface {
	List(ctx context.Context, user *models.User, filter transfer.ContentFilter) ([]*models.ContentGenerated, error)
	Fulfilled(ctx context.Context, user *models.User, filter transfer.ContentFilter) (bool, error)
	Update(ctx context.Context, user *models.User, id int64, in *transfer.ContentUpdate) (*models.ContentGenerated, error)
	Upload(ctx context.Context, user *models.User, id int64, file *multipart.FileHeader) (*models.ContentGenerated, error)
	Summary(ctx context.Context, user *models.User, themeID string) (*transfer.ContentSummary, error)
}

type contentService struct {
	tr      repository.ThemeRepository
	cr      repository.ContentRepository
	storage ObjectStorage
	metrics metrics.Recorder
}

func NewContentService(
	tr repository.ThemeRepository,
	cr repository.ContentRepository,
	storage ObjectStorage,
	m metrics.Recorder) ContentService {
	return &contentService{
		tr:      tr,
		cr:      cr,
		storage: storage,
		metrics: m,
	}
}

func (s *contentService) List(ctx context.Context, user *models.User, filter transfer.ContentFilter) ([]*models.ContentGenerated, error) {
	q, err := s.query(ctx, user, filter)
	if err != nil {
		return nil, err
	}

	rows, err := s.cr.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*models.ContentGenerated{}
	}
	return rows, nil
}

func (s *contentService) Fulfilled(ctx context.Context, user *models.User, filter transfer.ContentFilter) (bool, error) {
	if filter.ThemeID == "" || filter.Date == "" || filter.ContentType == "" {
		return false, validationError("theme_id, date and content_type are required")
	}

	q, err := s.query(ctx, user, filter)
	if err != nil {
		return false, err
	}

	rows, err := s.cr.List(ctx, q)
	if err != nil {
		return false, err
	}
	return planner.IsFulfilled(models.ContentRecords(rows), filter.ThemeID, q.Date, planner.ContentType(q.ContentType)), nil
}

func (s *contentService) Update(ctx context.Context, user *models.User, id int64, in *transfer.ContentUpdate) (*models.ContentGenerated, error) {
	if in == nil {
		return nil, validationError("Nothing to update")
	}

	row, err := s.ownedContent(ctx, user, id)
	if err != nil {
		return nil, err
	}

	if in.Caption != nil {
		caption := strings.TrimSpace(*in.Caption)
		row.Caption = &caption
	}
	if in.Hashtags != nil {
		row.Hashtags = normalizeHashtags(*in.Hashtags)
	}
	if in.Status != nil {
		if !models.ValidContentStatus(*in.Status) {
			return nil, validationError("Invalid status %q", *in.Status)
		}
		row.Status = *in.Status
	}

	if err := s.cr.Update(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *contentService) Upload(ctx context.Context, user *models.User, id int64, file *multipart.FileHeader) (*models.ContentGenerated, error) {
	if file == nil {
		return nil, validationError("No file selected")
	}
	if file.Size > MaxUploadSize {
		return nil, validationError("File is larger than %d MB", MaxUploadSize>>20)
	}

	row, err := s.ownedContent(ctx, user, id)
	if err != nil {
		return nil, err
	}

	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	body, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading file content: %w", err)
	}

	kind, err := filetype.Match(body)
	if err != nil || kind == types.Unknown {
		return nil, validationError("Unsupported file type")
	}
	folder, ok := allowedUploadTypes[kind.Extension]
	if !ok {
		return nil, validationError("File type %s is not allowed", kind.Extension)
	}

	name, err := gonanoid.New()
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	key := fmt.Sprintf("content/%s/%s_%s.%s", folder, row.ThemeID, name, kind.Extension)

	location, err := s.storage.Upload(ctx, key, body, kind.MIME.Value)
	if err != nil {
		return nil, err
	}

	row.FilePath = &location
	row.Status = models.ContentStatusGenerated
	if err := s.cr.Update(ctx, row); err != nil {
		return nil, err
	}

	s.metrics.RecordUpload(kind.Extension)
	slog.Info("content uploaded", "content_id", row.ID, "theme_id", row.ThemeID, "key", key)
	return row, nil
}

func (s *contentService) Summary(ctx context.Context, user *models.User, themeID string) (*transfer.ContentSummary, error) {
	theme, err := ownedTheme(ctx, s.tr, user, themeID)
	if err != nil {
		return nil, err
	}

	rows, err := s.cr.List(ctx, repository.ContentQuery{ThemeIDs: []string{theme.ID}})
	if err != nil {
		return nil, err
	}
	records := models.ContentRecords(rows)

	summary := &transfer.ContentSummary{
		ThemeID:  theme.ID,
		ByStatus: make(map[string]int),
	}
	for _, row := range rows {
		summary.ByStatus[row.Status]++
	}
	for _, slot := range planner.PlanSlots(theme.Planner()) {
		summary.Slots++
		if planner.IsFulfilled(records, theme.ID, slot.Date.String(), slot.ContentType) {
			summary.Fulfilled++
		}
	}
	return summary, nil
}

// query turns a filter into a repository query over the themes user can see.
func (s *contentService) query(ctx context.Context, user *models.User, filter transfer.ContentFilter) (repository.ContentQuery, error) {
	var q repository.ContentQuery

	if filter.Date != "" {
		date, ok := planner.NormalizeDate(filter.Date)
		if !ok {
			return q, validationError("Invalid date %q", filter.Date)
		}
		q.Date = date
	}
	if filter.ContentType != "" {
		if !planner.ContentType(filter.ContentType).Valid() {
			return q, validationError("Invalid content type %q", filter.ContentType)
		}
		q.ContentType = filter.ContentType
	}

	if filter.ThemeID != "" {
		theme, err := ownedTheme(ctx, s.tr, user, filter.ThemeID)
		if err != nil {
			return q, err
		}
		q.ThemeIDs = []string{theme.ID}
		return q, nil
	}

	themes, err := visibleThemes(ctx, s.tr, user)
	if err != nil {
		return q, err
	}
	q.ThemeIDs = themeIDs(themes)
	return q, nil
}

func (s *contentService) ownedContent(ctx context.Context, user *models.User, id int64) (*models.ContentGenerated, error) {
	if id == 0 {
		return nil, ErrContentNotFound
	}
	row, err := s.cr.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrContentNotFound
	}

	if _, err := ownedTheme(ctx, s.tr, user, row.ThemeID); err != nil {
		if errors.Is(err, ErrThemeNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return row, nil
}

// normalizeHashtags trims tags, prefixes a missing "#" and drops blanks and
// duplicates. The result is never nil, so an explicit empty list is kept.
func normalizeHashtags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		tag = strings.TrimLeft(tag, "#")
		if tag == "" {
			continue
		}
		tag = "#" + tag
		if seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
