package cache

import (
	"context"
	"testing"
	"time"

	"github.com/maheshrc27/content-planner/internal/planner"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestCalendarKey(t *testing.T) {
	assert.Equal(t, "calendar:42", CalendarKey(42))
}

func TestCalendarCache_NilClient(t *testing.T) {
	c := NewCalendarCache(nil, 0)
	ctx := context.Background()

	assert.Equal(t, DefaultCalendarTTL, c.ttl)

	c.Set(ctx, 1, []planner.CalendarEvent{{ID: "x"}})
	_, ok := c.Get(ctx, 1)
	assert.False(t, ok)

	c.Invalidate(ctx, 1, AllThemesKey)
}

func TestCalendarCache_UnreachableServerMisses(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewCalendarCache(client, time.Minute)
	ctx := context.Background()

	c.Set(ctx, 7, []planner.CalendarEvent{{ID: "x"}})
	events, ok := c.Get(ctx, 7)
	assert.False(t, ok)
	assert.Nil(t, events)
	c.Invalidate(ctx, 7)
}

func TestConnect_Unreachable(t *testing.T) {
	_, err := Connect("127.0.0.1:1")
	assert.Error(t, err)
}
