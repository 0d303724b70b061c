package ports

import (
	"context"

	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/model/notification"
)

// NotificationRepository defines the storage contract for the notification queue.
type NotificationRepository interface {
	// Add puts a new notification at the front of the queue.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update replaces the stored state of an existing notification.
	Update(ctx context.Context, aggregate *notification.Notification) error

	// Get retrieves a notification by identifier.
	// Returns *errs.ObjectNotFoundError if the notification is unknown.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// GetAll returns the queue, most recent first.
	GetAll(ctx context.Context) ([]*notification.Notification, error)
}
