package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/bizzy/pkg/logger"
)

// newTestStore returns a gorilla CookieStore (no Redis required) for unit tests.
// In production the RedisStore is used; the sessions.Store interface is identical.
func newTestStore() sessions.Store {
	return sessions.NewCookieStore(
		[]byte("test-auth-key-must-be-32-bytes!!"),
		[]byte("test-enc-key-must-be-32-bytes!!!"),
	)
}

// copyCookies returns a new request carrying every cookie set on w.
func copyCookies(w *httptest.ResponseRecorder, method, target string) *http.Request {
	req := httptest.NewRequest(method, target, http.NoBody)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

// requestWithValue builds a request whose session holds value under user_id.
// A nil value leaves the key unset.
func requestWithValue(t *testing.T, store sessions.Store, value any) *http.Request {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/inventory", http.NoBody)
	session, err := store.Get(r, sessionName)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if value != nil {
		session.Values[sessionUserIDKey] = value
	}
	if err := session.Save(r, w); err != nil {
		t.Fatalf("save session: %v", err)
	}
	return copyCookies(w, http.MethodGet, "/api/inventory")
}

func TestRequireAuth_ValidSession(t *testing.T) {
	store := newTestStore()
	userID := uuid.New()

	var captured uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = UserIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	RequireAuth(store, logger.Discard())(next).ServeHTTP(w, requestWithValue(t, store, userID.String()))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if captured != userID {
		t.Fatalf("expected user %v in context, got %v", userID, captured)
	}
}

func TestRequireAuth_Rejects(t *testing.T) {
	store := newTestStore()

	tests := []struct {
		name string
		req  func(t *testing.T) *http.Request
	}{
		{"missing cookie", func(*testing.T) *http.Request {
			return httptest.NewRequest(http.MethodGet, "/api/inventory", http.NoBody)
		}},
		{"session without user_id", func(t *testing.T) *http.Request {
			return requestWithValue(t, store, nil)
		}},
		{"malformed user_id", func(t *testing.T) *http.Request {
			return requestWithValue(t, store, "not-a-valid-uuid")
		}},
		{"empty user_id", func(t *testing.T) *http.Request {
			return requestWithValue(t, store, "")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("next handler should not be called")
			})
			w := httptest.NewRecorder()
			RequireAuth(store, logger.Discard())(next).ServeHTTP(w, tt.req(t))
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
		})
	}
}

func TestStartSession_ThenEndSession(t *testing.T) {
	store := newTestStore()
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
		t.Fatalf("expected %v after login, got %v", userID, captured)
	}

	logout := httptest.NewRecorder()
	if err := EndSession(logout, copyCookies(login, http.MethodPost, "/api/auth/logout"), store); err != nil {
		t.Fatalf("EndSession: %v", err)
	}
	cookies := logout.Result().Cookies()
	if len(cookies) == 0 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected an expiring cookie, got %+v", cookies)
	}
}
