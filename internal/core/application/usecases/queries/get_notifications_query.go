package queries

import (
	"context"
	"errors"

	"porter/internal/core/domain/model/account"
	"porter/internal/core/domain/model/notification"
	"porter/internal/core/ports"
	"porter/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery reads the notification queue.
type GetNotificationsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetNotificationsQuery() GetNotificationsQuery {
	return GetNotificationsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// GetNotificationsQueryResponse lists notifications most recent first.
type GetNotificationsQueryResponse struct {
	Items  []NotificationResponse
	Unread int
}

type GetNotificationsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	clock      ports.Clock
}

func NewGetNotificationsQueryHandler(uowFactory ports.UnitOfWorkFactory, clock ports.Clock) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{uowFactory: uowFactory, clock: clock}
}

func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) (GetNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNotificationsQueryResponse{}, err
	}

	return readAuthenticated(ctx, h.uowFactory, h.clock.Now(),
		func(uow ports.UnitOfWork, _ *account.Session) (GetNotificationsQueryResponse, error) {
			all, err := uow.NotificationRepository().GetAll(ctx)
			if err != nil {
				return GetNotificationsQueryResponse{}, err
			}

			resp := GetNotificationsQueryResponse{Items: make([]NotificationResponse, 0, len(all))}
			for _, n := range all {
				resp.Items = append(resp.Items, toNotificationResponse(n))
			}
			resp.Unread = unreadCount(all)
			return resp, nil
		})
}

func unreadCount(all []*notification.Notification) int {
	unread := 0
	for _, n := range all {
		if !n.IsRead() {
			unread++
		}
	}
	return unread
}
