package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ghuser/bizzy/pkg/config"
)

func TestNewRedisClient_Errors(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"invalid URL", "not-a-valid-url"},
		{"unreachable host", "redis://localhost:19999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRedisClient(context.Background(), &config.Config{RedisURL: tt.url}); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestTune(t *testing.T) {
	opts, err := redis.ParseURL("redis://localhost:6379/2")
	if err != nil {
		t.Fatalf("ParseURL: %v", err)
	}
	tune(opts, "bizzy")

	if opts.ClientName != "bizzy" || opts.PoolSize != 10 || opts.ReadTimeout != 3*time.Second {
		t.Errorf("unexpected options: name=%q pool=%d read=%s", opts.ClientName, opts.PoolSize, opts.ReadTimeout)
	}
	if opts.DB != 2 {
		t.Errorf("DB from URL overwritten: %d", opts.DB)
	}
}

func TestClose_ZeroValue(t *testing.T) {
	if err := (&RedisClient{}).Close(); err != nil {
		t.Fatalf("Close on an unconnected client: %v", err)
	}
}

// Integration tests: skipped unless REDIS_URL is set.
func TestRedisIntegration(t *testing.T) {
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

	if err := rc.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	sub := rc.PSubscribe(ctx, "test:notifications:*")
	defer sub.Close() //nolint:errcheck
	if _, err := sub.Receive(ctx); err != nil {
		t.Fatalf("psubscribe: %v", err)
	}

	if err := rc.Publish(ctx, "test:notifications:42", map[string]string{"kind": "low_stock"}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	select {
	case msg := <-sub.Channel():
		if msg.Channel != "test:notifications:42" || msg.Payload != `{"kind":"low_stock"}` {
			t.Fatalf("unexpected message %s %q", msg.Channel, msg.Payload)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no message received")
	}
}
