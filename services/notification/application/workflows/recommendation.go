// Package workflows delivers periodic marketing recommendations. With Temporal
// enabled each delivery is a RecommendationWorkflow execution; otherwise the
// same activities run inline.
package workflows

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	appsvcs "github.com/ghuser/bizzy/services/notification/application/services"
)

// RecommendationInput identifies one delivery. SourceID doubles as the
// notification's idempotency key.
type RecommendationInput struct {
	UserID   uuid.UUID `json:"user_id"`
	SourceID string    `json:"source_id"`
}

// SaveRecommendationInput is the argument of the SaveRecommendation activity.
type SaveRecommendationInput struct {
	UserID   uuid.UUID `json:"user_id"`
	SourceID string    `json:"source_id"`
	Text     string    `json:"text"`
}

// Recommender fetches a marketing recommendation for a user.
type Recommender interface {
	Recommend(ctx context.Context, userID uuid.UUID) (string, error)
}

// Activities are the side-effecting steps of RecommendationWorkflow.
type Activities struct {
	Recommender   Recommender
	Notifications *appsvcs.NotificationService
}

// FetchRecommendation asks the recommendation endpoint for the user's advice.
func (a *Activities) FetchRecommendation(ctx context.Context, userID uuid.UUID) (string, error) {
	text, err := a.Recommender.Recommend(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("fetch recommendation: %w", err)
	}
	return text, nil
}

// SaveRecommendation stores the recommendation as a notification.
func (a *Activities) SaveRecommendation(ctx context.Context, in SaveRecommendationInput) error {
	if err := a.Notifications.Recommend(ctx, in.UserID, in.SourceID, in.Text); err != nil {
		return fmt.Errorf("save recommendation: %w", err)
	}
	return nil
}

var activityOptions = workflow.ActivityOptions{
	StartToCloseTimeout: time.Minute,
	RetryPolicy: &temporal.RetryPolicy{
		InitialInterval:    5 * time.Second,
		BackoffCoefficient: 2,
		MaximumAttempts:    3,
	},
}

// RecommendationWorkflow fetches a recommendation and saves it as a notification.
func RecommendationWorkflow(ctx workflow.Context, in RecommendationInput) error {
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	var a *Activities
	var text string
	if err := workflow.ExecuteActivity(ctx, a.FetchRecommendation, in.UserID).Get(ctx, &text); err != nil {
		return err
	}
	return workflow.ExecuteActivity(ctx, a.SaveRecommendation, SaveRecommendationInput{
		UserID:   in.UserID,
		SourceID: in.SourceID,
		Text:     text,
	}).Get(ctx, nil)
}

// RunInline performs the workflow's steps directly, without Temporal.
func RunInline(ctx context.Context, a *Activities, in RecommendationInput) error {
	text, err := a.FetchRecommendation(ctx, in.UserID)
	if err != nil {
		return err
	}
	return a.SaveRecommendation(ctx, SaveRecommendationInput{UserID: in.UserID, SourceID: in.SourceID, Text: text})
}

// Register adds the workflow and its activities to a Temporal worker.
func Register(w worker.Registry, a *Activities) {
	w.RegisterWorkflow(RecommendationWorkflow)
	w.RegisterActivity(a)
}
