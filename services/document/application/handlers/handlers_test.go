package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/bizzy/pkg/auth"
	"github.com/ghuser/bizzy/pkg/logger"
	"github.com/ghuser/bizzy/pkg/storage"
	appsvcs "github.com/ghuser/bizzy/services/document/application/services"
	documentdomain "github.com/ghuser/bizzy/services/document/domain"
	"github.com/ghuser/bizzy/services/document/domain/models"
)

type stubRepo struct {
	docs []*models.Document
}

func (s *stubRepo) Save(_ context.Context, d *models.Document) error {
	s.docs = append(s.docs, d)
	return nil
}

func (s *stubRepo) GetByID(_ context.Context, userID, id uuid.UUID) (*models.Document, error) {
	for _, d := range s.docs {
		if d.ID == id && d.UserID == userID {
			return d, nil
		}
	}
	return nil, documentdomain.ErrDocumentNotFound
}

func (s *stubRepo) FindByUserID(_ context.Context, _ uuid.UUID, kind *models.Kind) ([]*models.Document, error) {
	var out []*models.Document
	for _, d := range s.docs {
		if kind == nil || d.Kind == *kind {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *stubRepo) Delete(_ context.Context, _ uuid.UUID, id uuid.UUID) error {
	for i, d := range s.docs {
		if d.ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return documentdomain.ErrDocumentNotFound
}

func newRouter(t *testing.T, userID uuid.UUID) http.Handler {
	t.Helper()
	store, err := storage.New(context.Background(), "file://"+t.TempDir())
	if err != nil {
		t.Fatalf("storage.New: %v", err)
	}
	svcs := &appsvcs.Services{
		Document:       appsvcs.NewDocumentService(&stubRepo{}, store, logger.Discard()),
		MaxUploadBytes: 1 << 20,
	}
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	})
	r.Get("/documents", NewListHandler(svcs).Execute)
	r.Post("/documents", NewUploadHandler(svcs).Execute)
	r.Get("/documents/{id}/content", NewContentHandler(svcs).Execute)
	r.Delete("/documents/{id}", NewDeleteHandler(svcs).Execute)
	return r
}

type part struct {
	field, name, contentType, body string
}

func upload(h http.Handler, parts ...part) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, p := range parts {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, p.field, p.name))
		hdr.Set("Content-Type", p.contentType)
		w, _ := mw.CreatePart(hdr)
		_, _ = w.Write([]byte(p.body))
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/documents", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestUploadListDownloadDelete(t *testing.T) {
	h := newRouter(t, uuid.New())

	w := upload(h,
		part{"documents", "invoice.pdf", "application/pdf", "%PDF-1.7"},
		part{"images", "shop.jpg", "image/jpeg", "jpeg-bytes"},
	)
	if w.Code != http.StatusCreated {
		t.Fatalf("upload: status %d body %s", w.Code, w.Body)
	}
	var created DocumentListResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(created.Items) != 2 || created.Items[1].Kind != "image" {
		t.Fatalf("unexpected %+v", created)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/documents?kind=image", nil))
	var listed DocumentListResponse
	if err := json.NewDecoder(rec.Body).Decode(&listed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listed.Items) != 1 || listed.Items[0].Name != "shop.jpg" {
		t.Fatalf("unexpected list %+v", listed)
	}

	id := created.Items[0].ID.String()
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/documents/"+id+"/content", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "%PDF-1.7" {
		t.Fatalf("download: status %d body %q", rec.Code, rec.Body)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename=invoice.pdf` {
		t.Errorf("Content-Disposition = %q", got)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/documents/"+id, nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: status %d", rec.Code)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/documents/"+id+"/content", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("download after delete: status %d", rec.Code)
	}
}

func TestUpload_Rejections(t *testing.T) {
	h := newRouter(t, uuid.New())

	four := []part{
		{"images", "1.png", "image/png", "x"},
		{"images", "2.png", "image/png", "x"},
		{"images", "3.png", "image/png", "x"},
		{"images", "4.png", "image/png", "x"},
	}
	if w := upload(h, four...); w.Code != http.StatusUnprocessableEntity {
		t.Errorf("four images: status %d", w.Code)
	}
	if w := upload(h, part{"images", "cv.pdf", "application/pdf", "x"}); w.Code != http.StatusUnprocessableEntity {
		t.Errorf("pdf as image: status %d", w.Code)
	}
	if w := upload(h); w.Code != http.StatusUnprocessableEntity {
		t.Errorf("no files: status %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/documents", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("json body: status %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/documents?kind=video", nil))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("bad kind: status %d", rec.Code)
	}
}
