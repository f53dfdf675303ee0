package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/pkg/idseq"
	"github.com/ghuser/bizzy/pkg/telemetry"
	taskdomain "github.com/ghuser/bizzy/services/task/domain"
	"github.com/ghuser/bizzy/services/task/domain/models"
	"github.com/ghuser/bizzy/services/task/domain/repositories"
	domainsvcs "github.com/ghuser/bizzy/services/task/domain/services"
)

// TaskService manages a user's tasks. Codes are T-prefixed and sequential per user.
type TaskService struct {
	repo repositories.TaskRepository
	now  func() time.Time
}

// NewTaskService returns a TaskService backed by repo.
func NewTaskService(repo repositories.TaskRepository) *TaskService {
	return &TaskService{repo: repo, now: time.Now}
}

// Create assigns the next T code and stores the task.
func (s *TaskService) Create(ctx context.Context, userID uuid.UUID, p models.TaskParams) (*models.Task, error) {
	code, err := s.PreviewNextCode(ctx, userID)
	if err != nil {
		return nil, err
	}

	task, err := models.NewTask(userID, code, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", taskdomain.ErrInvalidTask, err)
	}
	if err := s.repo.Save(ctx, task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}
	telemetry.IdentifierGenerated(ctx, models.CodePrefix)
	return task, nil
}

// PreviewNextCode returns the code Create would assign right now.
func (s *TaskService) PreviewNextCode(ctx context.Context, userID uuid.UUID) (string, error) {
	codes, err := s.repo.ListCodes(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", idseq.ErrScopeUnavailable, err)
	}
	return idseq.Next(models.CodePrefix, codes), nil
}

// Get returns one task.
func (s *TaskService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Task, error) {
	task, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

// List returns a page of tasks plus the total count.
func (s *TaskService) List(ctx context.Context, userID uuid.UUID, opts repositories.QueryOpts) ([]*models.Task, int, error) {
	tasks, total, err := s.repo.FindByUserID(ctx, userID, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, total, nil
}

// Update replaces the editable fields. The code is never recomputed.
func (s *TaskService) Update(ctx context.Context, userID, id uuid.UUID, p models.TaskParams) (*models.Task, error) {
	task, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if err := task.Update(p); err != nil {
		return nil, fmt.Errorf("%w: %w", taskdomain.ErrInvalidTask, err)
	}
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// Delete removes a task.
func (s *TaskService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// Summary classifies all of the user's tasks as of now.
func (s *TaskService) Summary(ctx context.Context, userID uuid.UUID) (domainsvcs.Summary, error) {
	tasks, err := s.repo.FindAll(ctx, userID)
	if err != nil {
		return domainsvcs.Summary{}, fmt.Errorf("task summary: %w", err)
	}
	return domainsvcs.Summarize(tasks, s.now()), nil
}
