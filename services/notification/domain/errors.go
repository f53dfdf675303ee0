package domain

import "errors"

// Sentinel errors for the notification domain. Use errors.Is() to check these.
var (
	// ErrNotificationNotFound indicates the notification does not exist for the user.
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrInvalidNotification indicates a notification without a title or body.
	ErrInvalidNotification = errors.New("invalid notification")
)
