package queries

import (
	"context"

	"porter/internal/core/domain/model/account"
	"porter/internal/core/ports"
)

// GetOrdersQueryHandler lists the ledger for the logged-in driver.
type GetOrdersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	clock      ports.Clock
}

func NewGetOrdersQueryHandler(uowFactory ports.UnitOfWorkFactory, clock ports.Clock) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{uowFactory: uowFactory, clock: clock}
}

func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return readAuthenticated(ctx, h.uowFactory, h.clock.Now(),
		func(uow ports.UnitOfWork, _ *account.Session) ([]OrderResponse, error) {
			all, err := uow.OrderRepository().GetAll(ctx)
			if err != nil {
				return nil, err
			}

			orders := make([]OrderResponse, 0, len(all))
			for _, o := range all {
				if query.Filter().Match(o.Status()) {
					orders = append(orders, toOrderResponse(o))
				}
			}
			return orders, nil
		})
}

// GetOrderQueryHandler returns one order or *errs.ObjectNotFoundError.
type GetOrderQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	clock      ports.Clock
}

func NewGetOrderQueryHandler(uowFactory ports.UnitOfWorkFactory, clock ports.Clock) GetOrderQueryHandler {
	return GetOrderQueryHandler{uowFactory: uowFactory, clock: clock}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	return readAuthenticated(ctx, h.uowFactory, h.clock.Now(),
		func(uow ports.UnitOfWork, _ *account.Session) (OrderResponse, error) {
			o, err := uow.OrderRepository().Get(ctx, query.OrderID())
			if err != nil {
				return OrderResponse{}, err
			}
			return toOrderResponse(o), nil
		})
}
