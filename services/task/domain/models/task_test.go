package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func params() TaskParams {
	return TaskParams{
		Name:       "Paint the shop front",
		Due:        time.Date(2025, 3, 14, 17, 45, 0, 0, time.FixedZone("CAT", 2*3600)),
		Budget:     decimal.RequireFromString("1500"),
		Spent:      decimal.RequireFromString("450.50"),
		TargetType: "Percentage",
		Target:     100,
		Status:     40,
	}
}

func TestNewTask(t *testing.T) {
	task, err := NewTask(uuid.New(), "T0001", params())
	if err != nil {
		t.Fatalf("NewTask: %v", err)
	}
	if got := task.Due.Format(DateLayout); got != "2025-03-14" {
		t.Errorf("due = %s", got)
	}
	if task.Completed() {
		t.Error("40 of 100 is not complete")
	}
	if task.Progress() != 40 {
		t.Errorf("progress = %v", task.Progress())
	}
	if !task.BudgetUsed().Equal(decimal.RequireFromString("30.03")) {
		t.Errorf("budget used = %s, want 30.03", task.BudgetUsed())
	}
	if task.OverBudget() {
		t.Error("not over budget")
	}
}

func TestDerivedValues_ZeroDenominators(t *testing.T) {
	p := params()
	p.TargetType = "Number"
	p.Target = 0
	p.Status = 0
	p.Budget = decimal.Zero
	p.Spent = decimal.NewFromInt(10)
	task, err := NewTask(uuid.New(), "T0002", p)
	if err != nil {
		t.Fatalf("NewTask: %v", err)
	}
	if task.Progress() != 0 || !task.BudgetUsed().IsZero() {
		t.Errorf("progress %v, budget used %s; both want 0", task.Progress(), task.BudgetUsed())
	}
	if !task.OverBudget() {
		t.Error("10 spent of 0 budget is over budget")
	}
	if !task.Completed() {
		t.Error("status 0 reaches target 0")
	}
}

func TestNewTask_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		mutate func(*TaskParams)
	}{
		{"wrong prefix", "P0001", func(*TaskParams) {}},
		{"empty name", "T0001", func(p *TaskParams) { p.Name = "" }},
		{"no due date", "T0001", func(p *TaskParams) { p.Due = time.Time{} }},
		{"unknown target type", "T0001", func(p *TaskParams) { p.TargetType = "Ratio" }},
		{"percentage over 100", "T0001", func(p *TaskParams) { p.Target = 120 }},
		{"negative spent", "T0001", func(p *TaskParams) { p.Spent = decimal.NewFromInt(-1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := params()
			tt.mutate(&p)
			if _, err := NewTask(uuid.New(), tt.code, p); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
