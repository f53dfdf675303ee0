package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/bizzy/pkg/auth"
	"github.com/ghuser/bizzy/pkg/logger"
	appsvcs "github.com/ghuser/bizzy/services/account/application/services"
	accountdomain "github.com/ghuser/bizzy/services/account/domain"
	"github.com/ghuser/bizzy/services/account/domain/models"
)

type fakeRepo struct {
	byID map[uuid.UUID]*models.Account
}

func (f *fakeRepo) Save(_ context.Context, a *models.Account) error {
	for _, existing := range f.byID {
		if existing.Email == a.Email {
			return accountdomain.ErrEmailTaken
		}
	}
	f.byID[a.ID] = a
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Account, error) {
	if a, ok := f.byID[id]; ok {
		return a, nil
	}
	return nil, accountdomain.ErrAccountNotFound
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	for _, a := range f.byID {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, accountdomain.ErrAccountNotFound
}

func (f *fakeRepo) UpdateProfile(_ context.Context, a *models.Account) error {
	f.byID[a.ID] = a
	return nil
}

func (f *fakeRepo) ListIDs(context.Context) ([]uuid.UUID, error) { return nil, nil }

// newRouter mounts the account handlers the same way the api package does,
// with a cookie store standing in for Redis.
func newRouter() http.Handler {
	svcs := &appsvcs.Services{Account: appsvcs.NewAccountService(&fakeRepo{byID: map[uuid.UUID]*models.Account{}})}
	store := sessions.NewCookieStore(
		[]byte("test-auth-key-must-be-32-bytes!!"),
		[]byte("test-enc-key-must-be-32-bytes!!!"),
	)

	r := chi.NewRouter()
	r.Post("/auth/register", NewRegisterHandler(svcs).Execute)
	r.Post("/auth/login", NewLoginHandler(svcs, store).Execute)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(store, logger.Discard()))
		r.Post("/auth/logout", NewLogoutHandler(store).Execute)
		r.Get("/profile", NewGetProfileHandler(svcs).Execute)
		r.Put("/profile", NewUpdateProfileHandler(svcs).Execute)
	})
	return r
}

func do(t *testing.T, h http.Handler, method, target, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

const registerBody = `{"name":"Rudo Hardware","email":"rudo@hardware.example","password":"s3cret-pass","location":"Gweru","workers":4,"sector":"Products"}`

func TestRegisterLoginProfileFlow(t *testing.T) {
	h := newRouter()

	w := do(t, h, http.MethodPost, "/auth/register", registerBody, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: status %d body %s", w.Code, w.Body)
	}
	var created ProfileResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Sector != "Products" || created.Email != "rudo@hardware.example" {
		t.Fatalf("unexpected profile %+v", created)
	}

	w = do(t, h, http.MethodGet, "/profile", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("profile without session: status %d", w.Code)
	}

	w = do(t, h, http.MethodPost, "/auth/login", `{"email":"rudo@hardware.example","password":"s3cret-pass"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login: status %d body %s", w.Code, w.Body)
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login did not set a session cookie")
	}

	w = do(t, h, http.MethodPut, "/profile", `{"name":"Rudo Hardware Ltd","location":"Bulawayo","workers":6}`, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("update profile: status %d body %s", w.Code, w.Body)
	}

	w = do(t, h, http.MethodGet, "/profile", "", cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("get profile: status %d", w.Code)
	}
	var got ProfileResponse
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != "Rudo Hardware Ltd" || got.Workers != 6 || got.ID != created.ID {
		t.Fatalf("unexpected profile %+v", got)
	}

	w = do(t, h, http.MethodPost, "/auth/logout", "", cookies)
	if w.Code != http.StatusNoContent {
		t.Fatalf("logout: status %d", w.Code)
	}
}

func TestRegister_Rejections(t *testing.T) {
	h := newRouter()
	if w := do(t, h, http.MethodPost, "/auth/register", registerBody, nil); w.Code != http.StatusCreated {
		t.Fatalf("register: status %d", w.Code)
	}

	tests := []struct {
		name string
		body string
		want int
	}{
		{"duplicate email", registerBody, http.StatusConflict},
		{"unknown sector", `{"name":"x","email":"a@b.example","password":"s3cret-pass","sector":"Farming"}`, http.StatusUnprocessableEntity},
		{"short password", `{"name":"x","email":"a@b.example","password":"short","sector":"Products"}`, http.StatusUnprocessableEntity},
		{"malformed json", `{"name":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := do(t, h, http.MethodPost, "/auth/register", tt.body, nil); w.Code != tt.want {
				t.Fatalf("status %d, want %d (body %s)", w.Code, tt.want, w.Body)
			}
		})
	}
}

func TestLogin_GenericFailure(t *testing.T) {
	h := newRouter()
	if w := do(t, h, http.MethodPost, "/auth/register", registerBody, nil); w.Code != http.StatusCreated {
		t.Fatalf("register: status %d", w.Code)
	}

	wrongPass := do(t, h, http.MethodPost, "/auth/login", `{"email":"rudo@hardware.example","password":"nope-nope"}`, nil)
	unknown := do(t, h, http.MethodPost, "/auth/login", `{"email":"ghost@hardware.example","password":"s3cret-pass"}`, nil)

	for _, w := range []*httptest.ResponseRecorder{wrongPass, unknown} {
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status %d, want 401", w.Code)
		}
	}
	if wrongPass.Body.String() != unknown.Body.String() {
		t.Fatalf("login failures must be indistinguishable: %q vs %q", wrongPass.Body, unknown.Body)
	}
}
