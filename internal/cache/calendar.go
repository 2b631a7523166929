package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/maheshrc27/content-planner/internal/planner"
	"github.com/redis/go-redis/v9"
)

const (
	calendarKeyPrefix = "calendar:"

	DefaultCalendarTTL = 5 * time.Minute
)

// AllThemesKey is the user id the admin calendar, which spans every user's
// themes, is cached under.
const AllThemesKey int64 = 0

// CalendarStore caches the expanded (not yet annotated) events of a user.
type CalendarStore interface {
	Get(ctx context.Context, userID int64) ([]planner.CalendarEvent, bool)
	Set(ctx context.Context, userID int64, events []planner.CalendarEvent)
	Invalidate(ctx context.Context, userIDs ...int64)
}

// CalendarCache is the redis CalendarStore. A nil client turns every call
// into a miss or a no-op, so the service runs without redis.
type CalendarCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCalendarCache(client *redis.Client, ttl time.Duration) *CalendarCache {
	if ttl <= 0 {
		ttl = DefaultCalendarTTL
	}
	return &CalendarCache{client: client, ttl: ttl}
}

func CalendarKey(userID int64) string {
	return calendarKeyPrefix + strconv.FormatInt(userID, 10)
}

func (c *CalendarCache) Get(ctx context.Context, userID int64) ([]planner.CalendarEvent, bool) {
	if c.client == nil {
		return nil, false
	}

	val, err := c.client.Get(ctx, CalendarKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		slog.Warn("calendar cache get error", "user_id", userID, "error", err)
		return nil, false
	}

	var events []planner.CalendarEvent
	if err := json.Unmarshal(val, &events); err != nil {
		slog.Warn("calendar cache decode error", "user_id", userID, "error", err)
		return nil, false
	}
	slog.Debug("calendar cache hit", "user_id", userID)
	return events, true
}

func (c *CalendarCache) Set(ctx context.Context, userID int64, events []planner.CalendarEvent) {
	if c.client == nil {
		return
	}

	val, err := json.Marshal(events)
	if err != nil {
		slog.Warn("calendar cache encode error", "user_id", userID, "error", err)
		return
	}
	if err := c.client.Set(ctx, CalendarKey(userID), val, c.ttl).Err(); err != nil {
		slog.Warn("calendar cache set error", "user_id", userID, "error", err)
	}
}

func (c *CalendarCache) Invalidate(ctx context.Context, userIDs ...int64) {
	if c.client == nil || len(userIDs) == 0 {
		return
	}

	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, CalendarKey(id))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("calendar cache invalidate error", "keys", keys, "error", err)
	}
}
