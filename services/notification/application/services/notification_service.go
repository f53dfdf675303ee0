package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/pkg/logger"
	notificationdomain "github.com/ghuser/bizzy/services/notification/domain"
	"github.com/ghuser/bizzy/services/notification/domain/models"
	"github.com/ghuser/bizzy/services/notification/domain/repositories"
)

// Publisher pushes a stored notification to connected clients.
type Publisher interface {
	Publish(ctx context.Context, n *models.Notification) error
}

// LowStockInput describes a product that reached its threshold.
type LowStockInput struct {
	SourceID  string
	UserID    uuid.UUID
	Name      string
	Code      string
	Quantity  int
	Threshold int
	At        time.Time
}

// NotificationService stores notifications and fans them out in realtime.
type NotificationService struct {
	repo repositories.NotificationRepository
	pub  Publisher
	log  logger.Logger
	now  func() time.Time
}

// NewNotificationService returns a NotificationService. pub may be nil, in
// which case notifications are only stored.
func NewNotificationService(repo repositories.NotificationRepository, pub Publisher, log logger.Logger) *NotificationService {
	return &NotificationService{repo: repo, pub: pub, log: log, now: time.Now}
}

// AlertLowStock records a "Low Stock Alert". Repeated calls for the same
// source are no-ops.
func (s *NotificationService) AlertLowStock(ctx context.Context, in LowStockInput) error {
	n, err := models.NewLowStockAlert(in.UserID, in.SourceID, in.Name, in.Code, in.Quantity, in.Threshold, in.At)
	if err != nil {
		return fmt.Errorf("%w: %w", notificationdomain.ErrInvalidNotification, err)
	}
	return s.notify(ctx, n)
}

// Recommend records a marketing recommendation. Repeated calls for the same
// source are no-ops.
func (s *NotificationService) Recommend(ctx context.Context, userID uuid.UUID, sourceID, text string) error {
	n, err := models.NewRecommendation(userID, sourceID, text, s.now())
	if err != nil {
		return fmt.Errorf("%w: %w", notificationdomain.ErrInvalidNotification, err)
	}
	return s.notify(ctx, n)
}

func (s *NotificationService) notify(ctx context.Context, n *models.Notification) error {
	created, err := s.repo.Save(ctx, n)
	if err != nil {
		return fmt.Errorf("save notification: %w", err)
	}
	if !created {
		s.log.DebugContext(ctx, "notification already recorded", "notification_id", n.ID)
		return nil
	}
	s.log.InfoContext(ctx, "notification created", "notification_id", n.ID, "user_id", n.UserID, "kind", n.Kind)

	if s.pub == nil {
		return nil
	}
	// Clients that miss the push still see the notification on their next list.
	if err := s.pub.Publish(ctx, n); err != nil {
		s.log.WarnContext(ctx, "notification push failed", "notification_id", n.ID, "error", err)
	}
	return nil
}

// List returns the user's notifications, newest first.
func (s *NotificationService) List(ctx context.Context, userID uuid.UUID, opts repositories.QueryOpts) ([]*models.Notification, int, error) {
	list, total, err := s.repo.FindByUserID(ctx, userID, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications: %w", err)
	}
	return list, total, nil
}

// MarkRead marks a notification as read. Marking it again keeps the first read time.
func (s *NotificationService) MarkRead(ctx context.Context, userID, id uuid.UUID) (*models.Notification, error) {
	n, err := s.repo.MarkRead(ctx, userID, id, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("mark read %s: %w", id, err)
	}
	return n, nil
}
