package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/bizzy/pkg/auth"
	"github.com/ghuser/bizzy/pkg/business"
	"github.com/ghuser/bizzy/pkg/logger"
	inventorydomain "github.com/ghuser/bizzy/services/inventory/domain"
	appsvcs "github.com/ghuser/bizzy/services/transaction/application/services"
	transactiondomain "github.com/ghuser/bizzy/services/transaction/domain"
	"github.com/ghuser/bizzy/services/transaction/domain/models"
	"github.com/ghuser/bizzy/services/transaction/domain/repositories"
)

type stubRepo struct {
	txns []*models.Transaction
}

func (s *stubRepo) Save(_ context.Context, t *models.Transaction) error {
	s.txns = append(s.txns, t)
	return nil
}

func (s *stubRepo) GetByID(_ context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	for _, t := range s.txns {
		if t.ID == id && t.UserID == userID {
			return t, nil
		}
	}
	return nil, transactiondomain.ErrTransactionNotFound
}

func (s *stubRepo) FindByUserID(context.Context, uuid.UUID, repositories.QueryOpts) ([]*models.Transaction, int, error) {
	return s.txns, len(s.txns), nil
}

func (s *stubRepo) FindSince(context.Context, uuid.UUID, time.Time) ([]*models.Transaction, error) {
	return s.txns, nil
}

func (s *stubRepo) Totals(context.Context, uuid.UUID) (map[models.Category]decimal.Decimal, error) {
	totals := map[models.Category]decimal.Decimal{}
	for _, t := range s.txns {
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}
	return totals, nil
}

func (s *stubRepo) Update(context.Context, *models.Transaction) error { return nil }

func (s *stubRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	_, err := s.GetByID(ctx, userID, id)
	return err
}

type sectorStub business.Sector

func (s sectorStub) Sector(context.Context, uuid.UUID) (business.Sector, error) {
	return business.Sector(s), nil
}

// stockStub holds a single product with five units in stock.
type stockStub struct {
	id  uuid.UUID
	qty int
}

func (s *stockStub) ItemName(_ context.Context, _ uuid.UUID, id uuid.UUID) (string, error) {
	if id != s.id {
		return "", inventorydomain.ErrItemNotFound
	}
	return "Cement", nil
}

func (s *stockStub) AdjustStock(_ context.Context, _ uuid.UUID, _ uuid.UUID, delta int) error {
	if s.qty+delta < 0 {
		return inventorydomain.ErrInsufficientStock
	}
	s.qty += delta
	return nil
}

func newRouter(stock *stockStub, userID uuid.UUID) http.Handler {
	svcs := &appsvcs.Services{
		Transaction: appsvcs.NewTransactionService(&stubRepo{}, sectorStub(business.Products), stock, logger.Discard()),
	}
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	})
	r.Get("/transactions", NewListTransactionsHandler(svcs).Execute)
	r.Post("/transactions", NewCreateTransactionHandler(svcs).Execute)
	r.Get("/transactions/types", NewTypesHandler(svcs).Execute)
	r.Get("/transactions/summary", NewSummaryHandler(svcs).Execute)
	r.Get("/transactions/trend", NewTrendHandler(svcs).Execute)
	r.Get("/transactions/{id}", NewGetTransactionHandler(svcs).Execute)
	r.Delete("/transactions/{id}", NewDeleteTransactionHandler(svcs).Execute)
	return r
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func saleBody(itemID uuid.UUID, qty int) string {
	return fmt.Sprintf(`{"type":"Product Order","category":"Income","item_id":%q,"amount":"259.98","quantity":%d,`+
		`"customer_name":"Chipo","customer_phone":"0771234567","customer_age":34}`, itemID.String(), qty)
}

func TestCreateTransaction_Sale(t *testing.T) {
	stock := &stockStub{id: uuid.New(), qty: 5}
	h := newRouter(stock, uuid.New())

	w := serve(h, http.MethodPost, "/transactions", saleBody(stock.id, 2))
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d body %s", w.Code, w.Body)
	}
	var got TransactionResponse
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ItemName != "Cement" || got.Amount != "259.98" || got.Sector != "Products" {
		t.Fatalf("unexpected %+v", got)
	}
	if stock.qty != 3 {
		t.Fatalf("stock = %d, want 3", stock.qty)
	}

	w = serve(h, http.MethodGet, "/transactions/"+got.ID.String(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("get: status %d", w.Code)
	}
}

func TestCreateTransaction_Rejections(t *testing.T) {
	stock := &stockStub{id: uuid.New(), qty: 1}
	h := newRouter(stock, uuid.New())

	tests := []struct {
		name string
		body string
		want int
	}{
		{"insufficient stock", saleBody(stock.id, 2), http.StatusUnprocessableEntity},
		{"unknown item", saleBody(uuid.New(), 1), http.StatusNotFound},
		{"services type", strings.Replace(saleBody(stock.id, 1), "Product Order", "Service Booking", 1), http.StatusUnprocessableEntity},
		{"bad category", strings.Replace(saleBody(stock.id, 1), "Income", "Gift", 1), http.StatusUnprocessableEntity},
		{"three decimals", strings.Replace(saleBody(stock.id, 1), "259.98", "1.005", 1), http.StatusUnprocessableEntity},
		{"missing phone", `{"type":"Product Order","category":"Income","amount":"1","customer_name":"x"}`, http.StatusUnprocessableEntity},
		{"bad json", `{`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := serve(h, http.MethodPost, "/transactions", tt.body); w.Code != tt.want {
				t.Fatalf("status %d, want %d (body %s)", w.Code, tt.want, w.Body)
			}
		})
	}
	if stock.qty != 1 {
		t.Fatalf("rejected requests must not change stock, got %d", stock.qty)
	}
}

func TestTypesSummaryTrend(t *testing.T) {
	stock := &stockStub{id: uuid.New(), qty: 10}
	h := newRouter(stock, uuid.New())
	serve(h, http.MethodPost, "/transactions", saleBody(stock.id, 1))
	serve(h, http.MethodPost, "/transactions",
		`{"type":"Product Payment","category":"Expense","amount":"59.98","customer_name":"Supplier","customer_phone":"0770000000"}`)

	w := serve(h, http.MethodGet, "/transactions/types", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Purchase Order Generation") {
		t.Fatalf("types: status %d body %s", w.Code, w.Body)
	}

	w = serve(h, http.MethodGet, "/transactions/summary", "")
	var sum SummaryResponse
	if err := json.NewDecoder(w.Body).Decode(&sum); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sum.Income != "259.98" || sum.Expense != "59.98" || sum.NetProfit != "200.00" {
		t.Fatalf("unexpected summary %+v", sum)
	}

	w = serve(h, http.MethodGet, "/transactions/trend?period=month", "")
	var trend TrendResponse
	if err := json.NewDecoder(w.Body).Decode(&trend); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if trend.Period != "month" || len(trend.Points) != 4 || trend.Points[3].Income != "259.98" {
		t.Fatalf("unexpected trend %+v", trend)
	}

	if w := serve(h, http.MethodGet, "/transactions/trend?period=decade", ""); w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("bad period: status %d", w.Code)
	}
}

func TestDeleteTransaction(t *testing.T) {
	h := newRouter(&stockStub{}, uuid.New())
	if w := serve(h, http.MethodDelete, "/transactions/"+uuid.NewString(), ""); w.Code != http.StatusNotFound {
		t.Fatalf("delete missing: status %d", w.Code)
	}
	if w := serve(h, http.MethodGet, "/transactions/nope", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad id: status %d", w.Code)
	}
}
