package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ghuser/bizzy/pkg/cache"
	"github.com/ghuser/bizzy/pkg/config"
	"github.com/ghuser/bizzy/pkg/logger"
	"github.com/ghuser/bizzy/services/notification/domain/models"
)

func dial(t *testing.T, hub *Hub, userID uuid.UUID) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := hub.Serve(w, r, userID); err != nil {
			t.Errorf("Serve: %v", err)
		}
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev Event
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("read: %v", err)
	}
	return ev
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestHub_DeliverToOwnerOnly(t *testing.T) {
	hub := NewHub([]string{"*"}, logger.Discard())
	alice, bob := uuid.New(), uuid.New()

	aliceConn := dial(t, hub, alice)
	bobConn := dial(t, hub, bob)
	if ev := readEvent(t, aliceConn); ev.Type != "connected" {
		t.Fatalf("first frame = %q, want connected", ev.Type)
	}
	readEvent(t, bobConn)
	waitFor(t, func() bool { return hub.ClientCount(alice) == 1 && hub.ClientCount(bob) == 1 })

	hub.Deliver(alice, []byte(`{"type":"notification","data":{"title":"Low Stock Alert"}}`))
	if ev := readEvent(t, aliceConn); ev.Type != "notification" {
		t.Fatalf("alice got %q", ev.Type)
	}

	_ = bobConn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	if _, _, err := bobConn.ReadMessage(); err == nil {
		t.Fatal("bob must not receive alice's notification")
	}
}

func TestHub_RemovesClosedClients(t *testing.T) {
	hub := NewHub(nil, logger.Discard())
	userID := uuid.New()

	conn := dial(t, hub, userID)
	readEvent(t, conn)
	waitFor(t, func() bool { return hub.ClientCount(userID) == 1 })

	_ = conn.Close()
	waitFor(t, func() bool { return hub.ClientCount(userID) == 0 })
}

func TestHub_RejectsForeignOrigin(t *testing.T) {
	hub := NewHub([]string{"https://app.example.com"}, logger.Discard())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, uuid.New())
	}))
	defer srv.Close()

	header := http.Header{"Origin": []string{"https://evil.example.com"}}
	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), header)
	if err == nil {
		t.Fatal("expected handshake failure")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", resp)
	}
}

type fakeRedis struct {
	channel string
	payload any
}

func (f *fakeRedis) Publish(_ context.Context, channel string, payload any) error {
	f.channel, f.payload = channel, payload
	return nil
}

func TestPublisher_UsesOwnerChannel(t *testing.T) {
	r := &fakeRedis{}
	n, _ := models.NewLowStockAlert(uuid.New(), "evt-1", "Cement", "P-0001", 1, 5, time.Now())

	if err := NewPublisher(r).Publish(context.Background(), n); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if r.channel != "notifications:"+n.UserID.String() {
		t.Fatalf("channel = %q", r.channel)
	}
	ev, ok := r.payload.(Event)
	if !ok || ev.Type != "notification" || ev.Data.(Payload).Title != models.LowStockTitle {
		t.Fatalf("payload = %#v", r.payload)
	}
}

// Integration test: skipped unless REDIS_URL is set.
func TestHub_RelaysFromRedis(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}
	rc, err := cache.NewRedisClient(context.Background(), &config.Config{RedisURL: redisURL})
	if err != nil {
		t.Fatalf("NewRedisClient: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	hub := NewHub([]string{"*"}, logger.Discard())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = hub.Run(ctx, rc) }()

	userID := uuid.New()
	conn := dial(t, hub, userID)
	readEvent(t, conn)

	n, _ := models.NewRecommendation(userID, "wf-1", "Bundle cement with sand.", time.Now())
	pub := NewPublisher(rc)
	// The relay subscribes asynchronously; publish until the frame arrives.
	got := make(chan Event, 1)
	go func() {
		var ev Event
		_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		if err := conn.ReadJSON(&ev); err == nil {
			got <- ev
		}
	}()
	deadline := time.After(5 * time.Second)
	for {
		_ = pub.Publish(ctx, n)
		select {
		case ev := <-got:
			raw, _ := json.Marshal(ev.Data)
			if !strings.Contains(string(raw), "Bundle cement") {
				t.Fatalf("unexpected frame %s", raw)
			}
			return
		case <-deadline:
			t.Fatal("no frame relayed from redis")
		case <-time.After(100 * time.Millisecond):
		}
	}
}
