package voice

import (
	"context"
	"errors"
	"fmt"

	"porter/internal/core/application/usecases/commands"
	"porter/internal/core/application/usecases/queries"
	"porter/internal/core/domain/model/driver"
	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/model/order"
)

var (
	// ErrUnknownToken is returned for a token outside Tokens().
	ErrUnknownToken = errors.New("unknown voice token")

	// ErrNoEligibleOrder is returned when no order can take the requested step.
	ErrNoEligibleOrder = errors.New("no order can take this step")
)

// Reply is what the assistant answers after a token was executed.
type Reply struct {
	Token   Token
	OrderID *kernel.UUID
	Message string
}

// Dispatcher executes tokens against the core. Order tokens act on the oldest
// order that can take the step: accept and decline pick an available order,
// the delivery steps pick an order in the preceding status.
type Dispatcher struct {
	classifier *Classifier
	handlers   Handlers
}

func NewDispatcher(classifier *Classifier, handlers Handlers) *Dispatcher {
	return &Dispatcher{
		classifier: classifier,
		handlers:   handlers,
	}
}

// Handle classifies the utterance and dispatches the resulting token.
func (d *Dispatcher) Handle(ctx context.Context, utterance string) (Reply, error) {
	token, err := d.classifier.Classify(utterance)
	if err != nil {
		return Reply{}, err
	}
	return d.Dispatch(ctx, token)
}

// Dispatch runs the token. It fails with account.ErrUnauthenticated when no
// driver is logged in.
func (d *Dispatcher) Dispatch(ctx context.Context, token Token) (Reply, error) {
	if _, err := d.handlers.Session.Handle(ctx, queries.NewGetCurrentSessionQuery()); err != nil {
		return Reply{}, err
	}

	switch token {
	case AcceptOrder:
		return d.moveOrder(ctx, token, order.Available, order.Accepted,
			"Order accepted. Navigate to pickup location.")
	case DeclineOrder:
		return d.moveOrder(ctx, token, order.Available, order.Cancelled,
			"Order declined.")
	case MarkPickedUp:
		return d.moveOrder(ctx, token, order.Accepted, order.PickedUp,
			"Order marked as picked up. Navigate to delivery location.")
	case MarkInTransit:
		return d.moveOrder(ctx, token, order.PickedUp, order.InTransit,
			"Order marked as in transit. Head to the customer.")
	case MarkDelivered:
		return d.moveOrder(ctx, token, order.InTransit, order.Delivered,
			"Order marked as delivered. Great job!")
	case GoOnline:
		return d.setStatus(ctx, token, driver.Online,
			"You are now online and will receive delivery requests.")
	case GoOffline:
		return d.setStatus(ctx, token, driver.Offline,
			"You are now offline and won't receive new requests.")
	case ShowEarnings:
		return d.showEarnings(ctx)
	case ShowOrders:
		return d.showOrders(ctx)
	case SOS:
		if _, err := d.handlers.SOS.Handle(ctx, commands.NewSendSOSAlertCommand()); err != nil {
			return Reply{}, err
		}
		return Reply{Token: token, Message: "SOS sent. Help is on the way."}, nil
	default:
		return Reply{}, fmt.Errorf("%w: %q", ErrUnknownToken, token)
	}
}

func (d *Dispatcher) moveOrder(
	ctx context.Context,
	token Token,
	from order.Status,
	to order.Status,
	message string,
) (Reply, error) {
	target, err := d.oldestOrder(ctx, from)
	if err != nil {
		return Reply{}, err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(target.ID, to)
	if err != nil {
		return Reply{}, err
	}

	if _, err = d.handlers.ChangeStatus.Handle(ctx, cmd); err != nil {
		return Reply{}, err
	}

	id := target.ID
	return Reply{Token: token, OrderID: &id, Message: message}, nil
}

func (d *Dispatcher) oldestOrder(ctx context.Context, status order.Status) (queries.OrderResponse, error) {
	filter := queries.ActiveOrders
	if status == order.Available {
		filter = queries.AvailableOrders
	}

	query, err := queries.NewGetOrdersQuery(filter)
	if err != nil {
		return queries.OrderResponse{}, err
	}

	orders, err := d.handlers.Orders.Handle(ctx, query)
	if err != nil {
		return queries.OrderResponse{}, err
	}

	var (
		oldest queries.OrderResponse
		found  bool
	)
	for _, o := range orders {
		if o.Status != status {
			continue
		}
		if !found || o.Timeline.CreatedAt.Before(oldest.Timeline.CreatedAt) {
			oldest, found = o, true
		}
	}

	if !found {
		return queries.OrderResponse{}, fmt.Errorf("%w: no %s order", ErrNoEligibleOrder, status)
	}
	return oldest, nil
}

func (d *Dispatcher) setStatus(ctx context.Context, token Token, status driver.Status, message string) (Reply, error) {
	cmd, err := commands.NewSetDriverStatusCommand(status)
	if err != nil {
		return Reply{}, err
	}

	if _, err = d.handlers.SetStatus.Handle(ctx, cmd); err != nil {
		return Reply{}, err
	}
	return Reply{Token: token, Message: message}, nil
}

func (d *Dispatcher) showEarnings(ctx context.Context) (Reply, error) {
	earnings, err := d.handlers.Earnings.Handle(ctx, queries.NewGetEarningsQuery())
	if err != nil {
		return Reply{}, err
	}

	return Reply{
		Token: ShowEarnings,
		Message: fmt.Sprintf("Today you earned $%.2f from %d deliveries.",
			earnings.Earnings, earnings.Deliveries),
	}, nil
}

func (d *Dispatcher) showOrders(ctx context.Context) (Reply, error) {
	query, err := queries.NewGetOrdersQuery(queries.ActiveOrders)
	if err != nil {
		return Reply{}, err
	}

	orders, err := d.handlers.Orders.Handle(ctx, query)
	if err != nil {
		return Reply{}, err
	}

	return Reply{
		Token:   ShowOrders,
		Message: fmt.Sprintf("You have %d active orders.", len(orders)),
	}, nil
}
