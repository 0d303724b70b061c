// Package notificationrepo stores the notification queue, most recent first.
package notificationrepo

import (
	"time"

	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO is the stored form of a notification.
type NotificationDTO struct {
	ID        uuid.UUID
	Title     string
	Message   string
	Kind      int
	Timestamp time.Time
	Read      bool
}

func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        aggregate.ID().Bytes(),
		Title:     aggregate.Title(),
		Message:   aggregate.Message(),
		Kind:      int(aggregate.Kind()),
		Timestamp: aggregate.Timestamp(),
		Read:      aggregate.IsRead(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return notification.RestoreNotification(id, dto.Title, dto.Message, notification.Kind(dto.Kind), dto.Timestamp, dto.Read)
}
