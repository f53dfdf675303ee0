package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/ghuser/bizzy/pkg/logger"
	"github.com/ghuser/bizzy/pkg/telemetry"
)

// AccountLister enumerates the accounts that receive recommendations.
type AccountLister interface {
	UserIDs(ctx context.Context) ([]uuid.UUID, error)
}

// WorkflowStarter starts Temporal workflows. client.Client implements it.
type WorkflowStarter interface {
	ExecuteWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error)
}

// SchedulerConfig configures a Scheduler. A nil Starter runs the activities inline.
type SchedulerConfig struct {
	Accounts   AccountLister
	Activities *Activities
	Interval   time.Duration
	Starter    WorkflowStarter
	TaskQueue  string
}

// Scheduler sends every account one recommendation per interval.
type Scheduler struct {
	cfg SchedulerConfig
	log logger.Logger
	now func() time.Time
}

// NewScheduler returns a Scheduler.
func NewScheduler(cfg SchedulerConfig, log logger.Logger) *Scheduler {
	return &Scheduler{cfg: cfg, log: log.With("component", "recommendation_scheduler"), now: time.Now}
}

// WorkflowID names the delivery for userID in the interval starting at slot.
// Both the Temporal workflow and the resulting notification are keyed by it.
func WorkflowID(userID uuid.UUID, slot time.Time) string {
	return fmt.Sprintf("recommendation-%s-%d", userID, slot.Unix())
}

// Run delivers immediately and then on every interval tick until ctx is done.
func (s *Scheduler) Run(ctx context.Context) {
	s.log.InfoContext(ctx, "recommendation scheduler started",
		"interval", s.cfg.Interval, "temporal", s.cfg.Starter != nil)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()
	for {
		if err := s.RunOnce(ctx); err != nil {
			s.log.ErrorContext(ctx, "recommendation round failed", "error", err)
			telemetry.CaptureError(ctx, err, map[string]string{"job": "recommendation_scheduler"})
		}
		select {
		case <-ctx.Done():
			s.log.Info("recommendation scheduler stopped")
			return
		case <-ticker.C:
		}
	}
}

// RunOnce delivers the current interval's recommendation to every account.
// Accounts already served in this interval are skipped. A failure for one
// account does not stop the others.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	userIDs, err := s.cfg.Accounts.UserIDs(ctx)
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}

	slot := s.now().UTC().Truncate(s.cfg.Interval)
	var errs []error
	for _, userID := range userIDs {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		in := RecommendationInput{UserID: userID, SourceID: WorkflowID(userID, slot)}
		if err := s.deliver(ctx, in); err != nil {
			errs = append(errs, fmt.Errorf("user %s: %w", userID, err))
		}
	}
	return errors.Join(errs...)
}

func (s *Scheduler) deliver(ctx context.Context, in RecommendationInput) error {
	if s.cfg.Starter == nil {
		return RunInline(ctx, s.cfg.Activities, in)
	}

	_, err := s.cfg.Starter.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:                    in.SourceID,
		TaskQueue:             s.cfg.TaskQueue,
		WorkflowIDReusePolicy: enumspb.WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE,
	}, RecommendationWorkflow, in)

	var started *serviceerror.WorkflowExecutionAlreadyStarted
	if errors.As(err, &started) {
		s.log.DebugContext(ctx, "recommendation already scheduled", "workflow_id", in.SourceID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("start workflow %s: %w", in.SourceID, err)
	}
	return nil
}
