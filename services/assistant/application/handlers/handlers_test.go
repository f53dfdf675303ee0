package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/bizzy/pkg/auth"
	"github.com/ghuser/bizzy/pkg/logger"
	"github.com/ghuser/bizzy/pkg/storage"
	appsvcs "github.com/ghuser/bizzy/services/assistant/application/services"
	"github.com/ghuser/bizzy/services/assistant/domain/models"
	"github.com/ghuser/bizzy/services/assistant/domain/repositories"
	"github.com/ghuser/bizzy/services/assistant/infrastructure/remote"
	documentsvcs "github.com/ghuser/bizzy/services/document/application/services"
	documentdomain "github.com/ghuser/bizzy/services/document/domain"
	documentmodels "github.com/ghuser/bizzy/services/document/domain/models"
)

type stubRepo struct {
	msgs []*models.Message
}

func (s *stubRepo) Save(_ context.Context, m *models.Message) error {
	s.msgs = append(s.msgs, m)
	return nil
}

func (s *stubRepo) History(context.Context, uuid.UUID, repositories.QueryOpts) ([]*models.Message, int, error) {
	return s.msgs, len(s.msgs), nil
}

type docRepo struct {
	docs []*documentmodels.Document
}

func (s *docRepo) Save(_ context.Context, d *documentmodels.Document) error {
	s.docs = append(s.docs, d)
	return nil
}

func (s *docRepo) GetByID(_ context.Context, userID, id uuid.UUID) (*documentmodels.Document, error) {
	for _, d := range s.docs {
		if d.ID == id && d.UserID == userID {
			return d, nil
		}
	}
	return nil, documentdomain.ErrDocumentNotFound
}

func (s *docRepo) FindByUserID(context.Context, uuid.UUID, *documentmodels.Kind) ([]*documentmodels.Document, error) {
	return s.docs, nil
}

func (s *docRepo) Delete(_ context.Context, _ uuid.UUID, id uuid.UUID) error {
	for i, d := range s.docs {
		if d.ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return documentdomain.ErrDocumentNotFound
}

// newRouter wires the handlers to a real remote client pointed at upstream and
// keeps attachments in a file store under a temp dir.
func newRouter(t *testing.T, upstream *httptest.Server, repo *stubRepo, docs *docRepo) http.Handler {
	t.Helper()
	client := remote.NewClient(remote.Config{
		ChatURL:           upstream.URL + "/predict",
		RecommendationURL: upstream.URL + "/mrec",
		Timeout:           2 * time.Second,
		MaxRetries:        1,
	})
	store, err := storage.New(context.Background(), "file://"+t.TempDir())
	if err != nil {
		t.Fatalf("storage.New: %v", err)
	}
	documents := documentsvcs.NewDocumentService(docs, store, logger.Discard())
	svcs := &appsvcs.Services{
		Assistant:          appsvcs.NewAssistantService(repo, client, appsvcs.DocumentAttachments(documents)),
		MaxAttachmentBytes: 1 << 10,
	}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), uuid.New())))
		})
	})
	r.Get("/assistant/messages", NewHistoryHandler(svcs).Execute)
	r.Post("/assistant/messages", NewAskHandler(svcs).Execute)
	r.Post("/assistant/attachments", NewAttachHandler(svcs).Execute)
	r.Get("/assistant/recommendation", NewRecommendationHandler(svcs).Execute)
	return r
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestAsk_RoundTrip(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode("Restock cement first.")
	}))
	defer upstream.Close()
	repo := &stubRepo{}
	h := newRouter(t, upstream, repo, &docRepo{})

	w := serve(h, http.MethodPost, "/assistant/messages", `{"message":"What should I restock?"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d body %s", w.Code, w.Body)
	}
	var ex ExchangeResponse
	if err := json.NewDecoder(w.Body).Decode(&ex); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ex.Question.Sender != "user" || ex.Reply.Text != "Restock cement first." {
		t.Fatalf("unexpected %+v", ex)
	}

	w = serve(h, http.MethodGet, "/assistant/messages", "")
	var page MessagePage
	if err := json.NewDecoder(w.Body).Decode(&page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.Total != 2 {
		t.Fatalf("history total = %d", page.Total)
	}
}

func TestAsk_UpstreamDown(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer upstream.Close()
	repo := &stubRepo{}
	h := newRouter(t, upstream, repo, &docRepo{})

	w := serve(h, http.MethodPost, "/assistant/messages", `{"message":"hello"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status %d, want 502", w.Code)
	}
	if len(repo.msgs) != 1 || repo.msgs[0].Sender != models.SenderUser {
		t.Fatalf("question must be kept, got %+v", repo.msgs)
	}

	if w := serve(h, http.MethodGet, "/assistant/recommendation", ""); w.Code != http.StatusBadGateway {
		t.Fatalf("recommendation: status %d, want 502", w.Code)
	}
}

func TestAsk_Validation(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	defer upstream.Close()
	h := newRouter(t, upstream, &stubRepo{}, &docRepo{})

	if w := serve(h, http.MethodPost, "/assistant/messages", `{"message":""}`); w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("empty message: status %d", w.Code)
	}
	if w := serve(h, http.MethodPost, "/assistant/messages", `{`); w.Code != http.StatusBadRequest {
		t.Fatalf("bad json: status %d", w.Code)
	}
}

func TestRecommendation_Fallback(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"recommendation":""}`))
	}))
	defer upstream.Close()
	h := newRouter(t, upstream, &stubRepo{}, &docRepo{})

	w := serve(h, http.MethodGet, "/assistant/recommendation", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "No recommendations available.") {
		t.Fatalf("status %d body %s", w.Code, w.Body)
	}
}

func multipartBody(t *testing.T, typ, name, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if typ != "" {
		if err := mw.WriteField("type", typ); err != nil {
			t.Fatal(err)
		}
	}
	if name != "" {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="file"; filename="`+name+`"`)
		h.Set("Content-Type", contentType)
		part, err := mw.CreatePart(h)
		if err != nil {
			t.Fatal(err)
		}
		_, _ = part.Write(data)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, mw.FormDataContentType()
}

func attach(h http.Handler, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/assistant/attachments", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestAttach_ImageShowsInHistory(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("attachment reached the chat endpoint")
	}))
	defer upstream.Close()
	repo, docs := &stubRepo{}, &docRepo{}
	h := newRouter(t, upstream, repo, docs)

	body, ct := multipartBody(t, "image", "shelf.jpg", "image/jpeg", []byte("jpegbytes"))
	w := attach(h, body, ct)
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d body %s", w.Code, w.Body)
	}
	var msg MessageResponse
	if err := json.NewDecoder(w.Body).Decode(&msg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg.Type != "image" || msg.Sender != "user" || msg.Text != "shelf.jpg" || msg.DocumentID == nil {
		t.Fatalf("unexpected %+v", msg)
	}
	if want := "/api/documents/" + msg.DocumentID.String() + "/content"; msg.URI != want {
		t.Fatalf("uri = %q, want %q", msg.URI, want)
	}
	if len(docs.docs) != 1 || docs.docs[0].ID != *msg.DocumentID || docs.docs[0].Kind != documentmodels.KindImage {
		t.Fatalf("stored documents = %+v", docs.docs)
	}

	w = serve(h, http.MethodGet, "/assistant/messages", "")
	var page MessagePage
	if err := json.NewDecoder(w.Body).Decode(&page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if page.Total != 1 || page.Items[0].URI != msg.URI || page.Items[0].Type != "image" {
		t.Fatalf("history = %+v", page.Items)
	}
}

func TestAttach_Validation(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	defer upstream.Close()
	repo, docs := &stubRepo{}, &docRepo{}
	h := newRouter(t, upstream, repo, docs)

	tests := []struct {
		name, typ, file, contentType string
		data                         []byte
		want                         int
	}{
		{"text type", "text", "a.txt", "text/plain", []byte("x"), http.StatusUnprocessableEntity},
		{"missing file", "document", "", "", nil, http.StatusUnprocessableEntity},
		{"image that is not an image", "image", "a.pdf", "application/pdf", []byte("%PDF"), http.StatusUnprocessableEntity},
		{"too large", "document", "big.pdf", "application/pdf", bytes.Repeat([]byte("x"), 4<<10), http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, ct := multipartBody(t, tt.typ, tt.file, tt.contentType, tt.data)
			if w := attach(h, body, ct); w.Code != tt.want {
				t.Fatalf("status %d, want %d (body %s)", w.Code, tt.want, w.Body)
			}
		})
	}
	if len(repo.msgs) != 0 || len(docs.docs) != 0 {
		t.Fatalf("rejected attachments left %d messages and %d documents", len(repo.msgs), len(docs.docs))
	}
}
