package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ghuser/bizzy/pkg/config"
)

type cachedThing struct {
	Code string `json:"code"`
	Qty  int    `json:"qty"`
}

func TestRecordCache_KeyIsUserScoped(t *testing.T) {
	c := &RecordCache[cachedThing]{namespace: "inventory"}
	userID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	id := uuid.MustParse("660e8400-e29b-41d4-a716-446655440000")

	want := "inventory:550e8400-e29b-41d4-a716-446655440000:660e8400-e29b-41d4-a716-446655440000"
	if got := c.key(userID, id); got != want {
		t.Fatalf("key = %q, want %q", got, want)
	}
	if c.key(uuid.New(), id) == want {
		t.Fatal("different users must not share a key")
	}
}

func TestNewRecordCache_Defaults(t *testing.T) {
	c := NewRecordCache[cachedThing](&RedisClient{}, "tasks", 0)
	if c.ttl != DefaultRecordTTL {
		t.Fatalf("expected default TTL, got %v", c.ttl)
	}
	if c.invalidationTTL != DefaultInvalidationTTL {
		t.Fatalf("expected default invalidation TTL, got %v", c.invalidationTTL)
	}
}

// Integration tests: skipped unless REDIS_URL is set.
func TestRecordCacheIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}
	ctx := context.Background()
	rc, err := NewRedisClient(ctx, &config.Config{RedisURL: redisURL, ServiceName: "bizzy-test"})
	if err != nil {
		t.Fatalf("NewRedisClient: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	c := NewRecordCache[cachedThing](rc, "test-record", time.Minute)
	c.invalidationTTL = 500 * time.Millisecond

	t.Run("fill and read", func(t *testing.T) {
		userID, id := uuid.New(), uuid.New()
		if _, err := c.Get(ctx, userID, id); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil on miss, got %v", err)
		}
		if ok, err := c.Fill(ctx, userID, id, &cachedThing{Code: "P0001", Qty: 4}); err != nil || !ok {
			t.Fatalf("Fill = %v, %v", ok, err)
		}
		got, err := c.Get(ctx, userID, id)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Code != "P0001" || got.Qty != 4 {
			t.Fatalf("unexpected value %+v", got)
		}
		if ok, _ := c.Fill(ctx, userID, id, &cachedThing{Code: "P0001", Qty: 9}); ok {
			t.Fatal("Fill must not overwrite an existing entry")
		}
	})

	t.Run("invalidation blocks a late fill", func(t *testing.T) {
		userID, id := uuid.New(), uuid.New()
		stale := &cachedThing{Code: "P0002", Qty: 10}
		if _, err := c.Fill(ctx, userID, id, stale); err != nil {
			t.Fatalf("Fill: %v", err)
		}
		if err := c.Invalidate(ctx, userID, id); err != nil {
			t.Fatalf("Invalidate: %v", err)
		}
		if _, err := c.Get(ctx, userID, id); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil after invalidate, got %v", err)
		}
		if ok, err := c.Fill(ctx, userID, id, stale); err != nil || ok {
			t.Fatalf("Fill after invalidate = %v, %v; want refused", ok, err)
		}

		time.Sleep(c.invalidationTTL + 200*time.Millisecond)
		if ok, err := c.Fill(ctx, userID, id, &cachedThing{Code: "P0002", Qty: 1}); err != nil || !ok {
			t.Fatalf("Fill after marker expiry = %v, %v", ok, err)
		}
		got, err := c.Get(ctx, userID, id)
		if err != nil || got.Qty != 1 {
			t.Fatalf("Get = %+v, %v", got, err)
		}
	})
}
