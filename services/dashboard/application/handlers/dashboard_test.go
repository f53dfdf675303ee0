package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/bizzy/pkg/auth"
	appsvcs "github.com/ghuser/bizzy/services/dashboard/application/services"
	inventorymodels "github.com/ghuser/bizzy/services/inventory/domain/models"
	taskdomainsvcs "github.com/ghuser/bizzy/services/task/domain/services"
	txdomainsvcs "github.com/ghuser/bizzy/services/transaction/domain/services"
)

type tasks struct{}

func (tasks) Summary(context.Context, uuid.UUID) (taskdomainsvcs.Summary, error) {
	return taskdomainsvcs.Summary{Total: 3, Planned: 2, Completed: 1, CompletionRate: 33.333}, nil
}

type finance struct{ err error }

func (f finance) Summary(context.Context, uuid.UUID) (txdomainsvcs.Summary, error) {
	return txdomainsvcs.Summary{
		Income:  decimal.RequireFromString("250.5"),
		Expense: decimal.RequireFromString("50.25"),
	}, f.err
}

type stock struct{}

func (stock) LowStock(context.Context, uuid.UUID) ([]*inventorymodels.Item, error) {
	return []*inventorymodels.Item{
		{ID: uuid.New(), Code: "P0002", Name: "Sand", Stock: &inventorymodels.Stock{Quantity: 0, Threshold: 4}},
	}, nil
}

func serve(svcs *appsvcs.Services) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req = req.WithContext(auth.WithUserID(req.Context(), uuid.New()))
	w := httptest.NewRecorder()
	NewDashboardHandler(svcs).Execute(w, req)
	return w
}

func TestDashboard(t *testing.T) {
	w := serve(appsvcs.New(tasks{}, finance{}, stock{}))
	if w.Code != http.StatusOK {
		t.Fatalf("status %d body %s", w.Code, w.Body)
	}
	var resp DashboardResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Tasks.Total != 3 || resp.Tasks.CompletionRate != 33.33 {
		t.Fatalf("tasks = %+v", resp.Tasks)
	}
	if resp.Finance.Income != "250.50" || resp.Finance.NetProfit != "200.25" {
		t.Fatalf("finance = %+v", resp.Finance)
	}
	if resp.LowStockCount != 1 || resp.LowStock[0].Code != "P0002" {
		t.Fatalf("low stock = %d %+v", resp.LowStockCount, resp.LowStock)
	}
}

func TestDashboard_SourceFailure(t *testing.T) {
	w := serve(appsvcs.New(tasks{}, finance{err: errors.New("db down")}, stock{}))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500", w.Code)
	}
}

func TestDashboard_Unauthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	NewDashboardHandler(appsvcs.New(tasks{}, finance{}, stock{})).Execute(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", w.Code)
	}
}
