package handlers

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/bizzy/pkg/httpx"
	"github.com/ghuser/bizzy/services/task/domain/models"
	domainsvcs "github.com/ghuser/bizzy/services/task/domain/services"
)

// TaskRequest is the request body for POST /tasks and PUT /tasks/{id}.
type TaskRequest struct {
	Name       string  `json:"name"        validate:"required,max=255"                 example:"Paint the shop front"`
	Due        string  `json:"due"         validate:"required,datetime=2006-01-02"     example:"2025-03-14"`
	Budget     string  `json:"budget"      validate:"required,money"                   example:"1500.00"`
	Spent      string  `json:"spent"       validate:"required,money"                   example:"450.50"`
	TargetType string  `json:"target_type" validate:"required,oneof=Percentage Number" example:"Percentage"`
	Target     float64 `json:"target"      validate:"gte=0"                            example:"100"`
	Status     float64 `json:"status"      validate:"gte=0"                            example:"40"`
} // @name TaskRequest

func (r *TaskRequest) params() (models.TaskParams, error) {
	due, err := time.Parse(models.DateLayout, r.Due)
	if err != nil {
		return models.TaskParams{}, fmt.Errorf("due: %w", err)
	}
	return models.TaskParams{
		Name:       r.Name,
		Due:        due,
		Budget:     decimal.RequireFromString(r.Budget),
		Spent:      decimal.RequireFromString(r.Spent),
		TargetType: r.TargetType,
		Target:     r.Target,
		Status:     r.Status,
	}, nil
}

// TaskResponse is the public view of a task with its derived figures.
type TaskResponse struct {
	ID         uuid.UUID `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	Code       string    `json:"code"        example:"T0003"`
	Name       string    `json:"name"        example:"Paint the shop front"`
	Due        string    `json:"due"         example:"2025-03-14"`
	Budget     string    `json:"budget"      example:"1500.00"`
	Spent      string    `json:"spent"       example:"450.50"`
	TargetType string    `json:"target_type" example:"Percentage"`
	Target     float64   `json:"target"      example:"100"`
	Status     float64   `json:"status"      example:"40"`
	Completed  bool      `json:"completed"   example:"false"`
	Progress   float64   `json:"progress"    example:"40"`
	BudgetUsed string    `json:"budget_used" example:"30.03"`
	OverBudget bool      `json:"over_budget" example:"false"`
	CreatedAt  time.Time `json:"created_at"  example:"2024-01-15T10:30:00Z"`
	UpdatedAt  time.Time `json:"updated_at"  example:"2024-01-15T10:30:00Z"`
} // @name TaskResponse

// TaskPage is a page of tasks.
type TaskPage = httpx.Page[TaskResponse] // @name TaskPage

// SummaryResponse counts tasks by state.
type SummaryResponse struct {
	Total          int     `json:"total"           example:"12"`
	Planned        int     `json:"planned"         example:"7"`
	Completed      int     `json:"completed"       example:"5"`
	Upcoming       int     `json:"upcoming"        example:"4"`
	Overdue        int     `json:"overdue"         example:"3"`
	CompletionRate float64 `json:"completion_rate" example:"41.67"`
} // @name TaskSummaryResponse

// NextCodeResponse previews the code the next task will receive.
type NextCodeResponse struct {
	Code string `json:"code" example:"T0013"`
} // @name TaskNextCodeResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"task not found"`
} // @name ErrorResponse

func toTaskResponse(t *models.Task) TaskResponse {
	return TaskResponse{
		ID:         t.ID,
		Code:       t.Code,
		Name:       t.Name,
		Due:        t.Due.Format(models.DateLayout),
		Budget:     t.Budget.StringFixed(2),
		Spent:      t.Spent.StringFixed(2),
		TargetType: string(t.TargetType),
		Target:     t.Target,
		Status:     t.Status,
		Completed:  t.Completed(),
		Progress:   t.Progress(),
		BudgetUsed: t.BudgetUsed().StringFixed(2),
		OverBudget: t.OverBudget(),
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

// ToSummaryResponse renders a task summary; the dashboard reuses it.
func ToSummaryResponse(s domainsvcs.Summary) SummaryResponse {
	return SummaryResponse{
		Total:          s.Total,
		Planned:        s.Planned,
		Completed:      s.Completed,
		Upcoming:       s.Upcoming,
		Overdue:        s.Overdue,
		CompletionRate: decimal.NewFromFloat(s.CompletionRate).Round(2).InexactFloat64(),
	}
}
