package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/bizzy/pkg/database"
	notificationdomain "github.com/ghuser/bizzy/services/notification/domain"
	"github.com/ghuser/bizzy/services/notification/domain/models"
	"github.com/ghuser/bizzy/services/notification/domain/repositories"
	"github.com/ghuser/bizzy/services/notification/infrastructure/persistence/postgres/db"
)

// NotificationRepository implements repositories.NotificationRepository against PostgreSQL.
type NotificationRepository struct {
	db *database.Database
}

// NewNotificationRepository returns a NotificationRepository backed by the given pool.
func NewNotificationRepository(database *database.Database) *NotificationRepository {
	return &NotificationRepository{db: database}
}

func (r *NotificationRepository) Save(ctx context.Context, n *models.Notification) (bool, error) {
	inserted, err := db.New(r.db.DB()).InsertNotification(ctx, db.InsertNotificationParams{
		ID:        n.ID,
		UserID:    n.UserID,
		Kind:      string(n.Kind),
		Title:     n.Title,
		Body:      n.Body,
		CreatedAt: n.CreatedAt,
	})
	if err != nil {
		return false, fmt.Errorf("insert notification: %w", err)
	}
	return inserted > 0, nil
}

func (r *NotificationRepository) FindByUserID(ctx context.Context, userID uuid.UUID, opts repositories.QueryOpts) ([]*models.Notification, int, error) {
	q := db.New(r.db.DB())
	limit, offset := database.PageArgs(opts.Limit, opts.Offset)
	rows, err := q.ListNotifications(ctx, db.ListNotificationsParams{
		UserID:     userID,
		UnreadOnly: opts.UnreadOnly,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("query notifications: %w", err)
	}
	total, err := q.CountNotifications(ctx, db.CountNotificationsParams{UserID: userID, UnreadOnly: opts.UnreadOnly})
	if err != nil {
		return nil, 0, fmt.Errorf("count notifications: %w", err)
	}

	out := make([]*models.Notification, len(rows))
	for i, row := range rows {
		out[i] = rowToNotification(row)
	}
	return out, int(total), nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, userID, id uuid.UUID, at time.Time) (*models.Notification, error) {
	row, err := db.New(r.db.DB()).MarkNotificationRead(ctx, db.MarkNotificationReadParams{
		ID:     id,
		UserID: userID,
		ReadAt: sql.NullTime{Time: at, Valid: true},
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notificationdomain.ErrNotificationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return rowToNotification(row), nil
}

func rowToNotification(row db.Notification) *models.Notification {
	n := &models.Notification{
		ID:        row.ID,
		UserID:    row.UserID,
		Kind:      models.Kind(row.Kind),
		Title:     row.Title,
		Body:      row.Body,
		CreatedAt: row.CreatedAt,
	}
	if row.ReadAt.Valid {
		t := row.ReadAt.Time
		n.ReadAt = &t
	}
	return n
}
