package services

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/bizzy/pkg/idseq"
	taskdomain "github.com/ghuser/bizzy/services/task/domain"
	"github.com/ghuser/bizzy/services/task/domain/models"
	"github.com/ghuser/bizzy/services/task/domain/repositories"
)

type memRepo struct {
	tasks    map[uuid.UUID]*models.Task
	codesErr error
}

func newMemRepo() *memRepo { return &memRepo{tasks: map[uuid.UUID]*models.Task{}} }

func (m *memRepo) Save(_ context.Context, t *models.Task) error {
	for _, existing := range m.tasks {
		if existing.UserID == t.UserID && existing.Code == t.Code {
			return taskdomain.ErrTaskAlreadyExists
		}
	}
	m.tasks[t.ID] = t
	return nil
}

func (m *memRepo) GetByID(_ context.Context, userID, id uuid.UUID) (*models.Task, error) {
	t, ok := m.tasks[id]
	if !ok || t.UserID != userID {
		return nil, taskdomain.ErrTaskNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *memRepo) FindByUserID(ctx context.Context, userID uuid.UUID, _ repositories.QueryOpts) ([]*models.Task, int, error) {
	all, _ := m.FindAll(ctx, userID)
	return all, len(all), nil
}

func (m *memRepo) FindAll(_ context.Context, userID uuid.UUID) ([]*models.Task, error) {
	var out []*models.Task
	for _, t := range m.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	slices.SortFunc(out, func(a, b *models.Task) int { return strings.Compare(a.Code, b.Code) })
	return out, nil
}

func (m *memRepo) ListCodes(_ context.Context, userID uuid.UUID) ([]string, error) {
	if m.codesErr != nil {
		return nil, m.codesErr
	}
	var codes []string
	for _, t := range m.tasks {
		if t.UserID == userID {
			codes = append(codes, t.Code)
		}
	}
	return codes, nil
}

func (m *memRepo) Update(_ context.Context, t *models.Task) error {
	if _, ok := m.tasks[t.ID]; !ok {
		return taskdomain.ErrTaskNotFound
	}
	m.tasks[t.ID] = t
	return nil
}

func (m *memRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	t, ok := m.tasks[id]
	if !ok || t.UserID != userID {
		return taskdomain.ErrTaskNotFound
	}
	delete(m.tasks, id)
	return nil
}

func taskParams(due string, status float64) models.TaskParams {
	d, _ := time.Parse(models.DateLayout, due)
	return models.TaskParams{
		Name:       "Stock take",
		Due:        d,
		Budget:     decimal.NewFromInt(200),
		Spent:      decimal.NewFromInt(50),
		TargetType: "Number",
		Target:     10,
		Status:     status,
	}
}

func TestCreate_SequentialTCodes(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := NewTaskService(repo)
	userID := uuid.New()

	// A legacy task with a malformed code is ignored by the generator.
	legacy, _ := models.NewTask(userID, "T00ab", taskParams("2025-01-01", 0))
	repo.tasks[legacy.ID] = legacy

	var codes []string
	for range 3 {
		task, err := svc.Create(ctx, userID, taskParams("2025-07-01", 1))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		codes = append(codes, task.Code)
	}
	if want := []string{"T0001", "T0002", "T0003"}; !slices.Equal(codes, want) {
		t.Fatalf("codes = %v, want %v", codes, want)
	}
}

func TestCreate_Errors(t *testing.T) {
	ctx := context.Background()

	repo := newMemRepo()
	repo.codesErr = errors.New("timeout")
	if _, err := NewTaskService(repo).Create(ctx, uuid.New(), taskParams("2025-07-01", 1)); !errors.Is(err, idseq.ErrScopeUnavailable) {
		t.Fatalf("expected ErrScopeUnavailable, got %v", err)
	}

	bad := taskParams("2025-07-01", 1)
	bad.TargetType = "Ratio"
	if _, err := NewTaskService(newMemRepo()).Create(ctx, uuid.New(), bad); !errors.Is(err, taskdomain.ErrInvalidTask) {
		t.Fatalf("expected ErrInvalidTask, got %v", err)
	}
}

func TestUpdate_KeepsCode(t *testing.T) {
	ctx := context.Background()
	svc := NewTaskService(newMemRepo())
	userID := uuid.New()

	task, _ := svc.Create(ctx, userID, taskParams("2025-07-01", 1))
	updated, err := svc.Update(ctx, userID, task.ID, taskParams("2025-08-01", 10))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Code != task.Code || !updated.Completed() {
		t.Fatalf("unexpected update %+v", updated)
	}
	if err := svc.Delete(ctx, uuid.New(), task.ID); !errors.Is(err, taskdomain.ErrTaskNotFound) {
		t.Fatalf("delete by other user: %v", err)
	}
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	svc := NewTaskService(newMemRepo())
	svc.now = func() time.Time { return time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC) }
	userID := uuid.New()

	for _, p := range []models.TaskParams{
		taskParams("2025-06-01", 10), // completed
		taskParams("2025-06-01", 2),  // overdue
		taskParams("2025-06-30", 2),  // upcoming
		taskParams("2025-06-30", 4),  // upcoming
	} {
		if _, err := svc.Create(ctx, userID, p); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	sum, err := svc.Summary(ctx, userID)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.Total != 4 || sum.Completed != 1 || sum.Planned != 3 || sum.Upcoming != 2 || sum.Overdue != 1 || sum.CompletionRate != 25 {
		t.Fatalf("unexpected summary %+v", sum)
	}
}
