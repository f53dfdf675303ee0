package auth

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ghuser/bizzy/pkg/logger"
)

// Integration tests: skipped unless REDIS_URL is set.
func TestRedisStore_Integration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		t.Fatalf("parse REDIS_URL: %v", err)
	}
	client := redis.NewClient(opts)
	defer client.Close() //nolint:errcheck

	store := NewSessionStore(client, StoreOptions{
		AuthKey:       []byte("test-auth-key-must-be-32-bytes!!"),
		EncryptionKey: []byte("test-enc-key-must-be-32-bytes!!!"),
		MaxAge:        time.Minute,
	})
	userID := uuid.New()

	login := httptest.NewRecorder()
	if err := StartSession(login, httptest.NewRequest(http.MethodPost, "/api/auth/login", http.NoBody), store, userID); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	var captured uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = UserIDFromCtx(r.Context())
	})
	RequireAuth(store, logger.Discard())(next).ServeHTTP(httptest.NewRecorder(), copyCookies(login, http.MethodGet, "/api/profile"))
	if captured != userID {
		t.Fatalf("expected %v, got %v", userID, captured)
	}

	if err := EndSession(httptest.NewRecorder(), copyCookies(login, http.MethodPost, "/api/auth/logout"), store); err != nil {
		t.Fatalf("EndSession: %v", err)
	}

	w := httptest.NewRecorder()
	RequireAuth(store, logger.Discard())(next).ServeHTTP(w, copyCookies(login, http.MethodGet, "/api/profile"))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", w.Code)
	}
}
