package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/pkg/database"
	taskdomain "github.com/ghuser/bizzy/services/task/domain"
	"github.com/ghuser/bizzy/services/task/domain/models"
	"github.com/ghuser/bizzy/services/task/domain/repositories"
	"github.com/ghuser/bizzy/services/task/infrastructure/persistence/postgres/db"
)

const codeConstraint = "tasks_user_code_key"

// TaskRepository implements repositories.TaskRepository against PostgreSQL.
type TaskRepository struct {
	db *database.Database
}

// NewTaskRepository returns a TaskRepository backed by the given pool.
func NewTaskRepository(database *database.Database) *TaskRepository {
	return &TaskRepository{db: database}
}

// Save inserts a new task. Returns ErrTaskAlreadyExists on the (user_id, code) constraint.
func (r *TaskRepository) Save(ctx context.Context, t *models.Task) error {
	err := db.New(r.db.DB()).InsertTask(ctx, db.InsertTaskParams{
		ID:         t.ID,
		UserID:     t.UserID,
		Code:       t.Code,
		Name:       t.Name,
		Due:        t.Due,
		Budget:     t.Budget,
		Spent:      t.Spent,
		TargetType: string(t.TargetType),
		Target:     t.Target,
		Status:     t.Status,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	})
	if database.IsUniqueViolation(err, codeConstraint) {
		return taskdomain.ErrTaskAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID returns ErrTaskNotFound when the task does not exist for userID.
func (r *TaskRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Task, error) {
	row, err := db.New(r.db.DB()).GetTask(ctx, db.GetTaskParams{ID: id, UserID: userID})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, taskdomain.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query task: %w", err)
	}
	return rowToTask(row), nil
}

// FindByUserID returns a page of tasks ordered by code and the total count.
func (r *TaskRepository) FindByUserID(ctx context.Context, userID uuid.UUID, opts repositories.QueryOpts) ([]*models.Task, int, error) {
	q := db.New(r.db.DB())
	limit, offset := database.PageArgs(opts.Limit, opts.Offset)
	rows, err := q.ListTasks(ctx, db.ListTasksParams{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("query tasks: %w", err)
	}
	total, err := q.CountTasks(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}
	return rowsToTasks(rows), int(total), nil
}

// FindAll returns every task of the user ordered by code.
func (r *TaskRepository) FindAll(ctx context.Context, userID uuid.UUID) ([]*models.Task, error) {
	rows, err := db.New(r.db.DB()).ListAllTasks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query all tasks: %w", err)
	}
	return rowsToTasks(rows), nil
}

// ListCodes returns every task code the user currently holds.
func (r *TaskRepository) ListCodes(ctx context.Context, userID uuid.UUID) ([]string, error) {
	codes, err := db.New(r.db.DB()).ListTaskCodes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list task codes: %w", err)
	}
	return codes, nil
}

// Update persists the editable fields of t.
func (r *TaskRepository) Update(ctx context.Context, t *models.Task) error {
	n, err := db.New(r.db.DB()).UpdateTask(ctx, db.UpdateTaskParams{
		ID:         t.ID,
		UserID:     t.UserID,
		Name:       t.Name,
		Due:        t.Due,
		Budget:     t.Budget,
		Spent:      t.Spent,
		TargetType: string(t.TargetType),
		Target:     t.Target,
		Status:     t.Status,
		UpdatedAt:  t.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if n == 0 {
		return taskdomain.ErrTaskNotFound
	}
	return nil
}

// Delete removes the task. Returns ErrTaskNotFound when nothing was deleted.
func (r *TaskRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	n, err := db.New(r.db.DB()).DeleteTask(ctx, db.DeleteTaskParams{ID: id, UserID: userID})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if n == 0 {
		return taskdomain.ErrTaskNotFound
	}
	return nil
}

func rowsToTasks(rows []db.Task) []*models.Task {
	tasks := make([]*models.Task, len(rows))
	for i, row := range rows {
		tasks[i] = rowToTask(row)
	}
	return tasks
}

func rowToTask(row db.Task) *models.Task {
	return &models.Task{
		ID:         row.ID,
		UserID:     row.UserID,
		Code:       row.Code,
		Name:       row.Name,
		Due:        row.Due.UTC(),
		Budget:     row.Budget,
		Spent:      row.Spent,
		TargetType: models.TargetType(row.TargetType),
		Target:     row.Target,
		Status:     row.Status,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
