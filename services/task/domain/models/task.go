package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CodePrefix is the identifier prefix of every task code.
const CodePrefix = "T"

// DateLayout is the wire format of due dates.
const DateLayout = time.DateOnly

const maxNameLength = 255

// TargetType tells how Target and Status are measured.
type TargetType string

const (
	TargetPercentage TargetType = "Percentage"
	TargetNumber     TargetType = "Number"
)

// ParseTargetType validates s.
func ParseTargetType(s string) (TargetType, error) {
	switch TargetType(s) {
	case TargetPercentage, TargetNumber:
		return TargetType(s), nil
	default:
		return "", fmt.Errorf("target type must be Percentage or Number, got %q", s)
	}
}

// Task is a planned piece of work with a budget and a measurable target.
// Status is the progress made so far, in the unit of Target.
type Task struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Code       string // assigned once at creation, e.g. T0007
	Name       string
	Due        time.Time // date only, UTC midnight
	Budget     decimal.Decimal
	Spent      decimal.Decimal
	TargetType TargetType
	Target     float64
	Status     float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TaskParams carries the editable fields.
type TaskParams struct {
	Name       string
	Due        time.Time
	Budget     decimal.Decimal
	Spent      decimal.Decimal
	TargetType string
	Target     float64
	Status     float64
}

// NewTask builds a Task for userID with the given code.
func NewTask(userID uuid.UUID, code string, p TaskParams) (*Task, error) {
	if !strings.HasPrefix(code, CodePrefix) {
		return nil, fmt.Errorf("task code %q must start with %s", code, CodePrefix)
	}
	t := &Task{ID: uuid.New(), UserID: userID, Code: code}
	if err := t.apply(p); err != nil {
		return nil, err
	}
	t.CreatedAt = t.UpdatedAt
	return t, nil
}

// Update replaces the editable fields. The code is left untouched.
func (t *Task) Update(p TaskParams) error {
	return t.apply(p)
}

// Completed reports whether the status has reached the target.
func (t *Task) Completed() bool {
	return t.Status >= t.Target
}

// Progress is status as a percentage of target, 0 when the target is 0.
func (t *Task) Progress() float64 {
	if t.Target == 0 {
		return 0
	}
	return t.Status / t.Target * 100
}

// BudgetUsed is spent as a percentage of budget, 0 when the budget is 0.
func (t *Task) BudgetUsed() decimal.Decimal {
	if t.Budget.IsZero() {
		return decimal.Zero
	}
	return t.Spent.Div(t.Budget).Mul(decimal.NewFromInt(100)).Round(2)
}

// OverBudget reports whether more was spent than budgeted.
func (t *Task) OverBudget() bool {
	return t.Spent.GreaterThan(t.Budget)
}

func (t *Task) apply(p TaskParams) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return errors.New("name must not be empty")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("name must not exceed %d characters", maxNameLength)
	}
	if p.Due.IsZero() {
		return errors.New("due date must be set")
	}
	if p.Budget.IsNegative() || p.Spent.IsNegative() {
		return errors.New("budget and spent must not be negative")
	}
	targetType, err := ParseTargetType(p.TargetType)
	if err != nil {
		return err
	}
	if p.Target < 0 || p.Status < 0 {
		return errors.New("target and status must not be negative")
	}
	if targetType == TargetPercentage && (p.Target > 100 || p.Status > 100) {
		return errors.New("percentage target and status must not exceed 100")
	}

	y, m, d := p.Due.Date()
	t.Name = name
	t.Due = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	t.Budget = p.Budget.Round(2)
	t.Spent = p.Spent.Round(2)
	t.TargetType = targetType
	t.Target = p.Target
	t.Status = p.Status
	t.UpdatedAt = time.Now().UTC()
	return nil
}
