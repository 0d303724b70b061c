package notificationrepo

import (
	"context"
	"errors"

	"porter/internal/adapters/out/memory/table"
	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/model/notification"
	"porter/internal/pkg/errs"
)

// MemoryNotificationRepository implements ports.NotificationRepository.
type MemoryNotificationRepository struct {
	rows    *table.Table[NotificationDTO]
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewMemoryNotificationRepository(rows *table.Table[NotificationDTO], tracker aggregateTracker) *MemoryNotificationRepository {
	return &MemoryNotificationRepository{
		rows:    rows,
		tracker: tracker,
	}
}

// Add puts the notification at the front of the queue.
func (r *MemoryNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := r.rows.Prepend(aggregate.ID().String(), fromDomain(aggregate)); err != nil {
		if errors.Is(err, table.ErrKeyExists) {
			return errs.NewObjectAlreadyExistsErrorWithCause("notification", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *MemoryNotificationRepository) Update(ctx context.Context, aggregate *notification.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := r.rows.Replace(aggregate.ID().String(), fromDomain(aggregate)); err != nil {
		if errors.Is(err, table.ErrKeyNotFound) {
			return errs.NewObjectNotFoundErrorWithCause("notification", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *MemoryNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, ok := r.rows.Get(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("notification", id.String())
	}

	return toDomain(dto)
}

// GetAll returns the queue, most recent first.
func (r *MemoryNotificationRepository) GetAll(ctx context.Context) ([]*notification.Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dtos := r.rows.All()
	notifications := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}
