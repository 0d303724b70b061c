package queries

import (
	"errors"
	"fmt"
	"strings"

	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/model/order"
	"porter/internal/pkg/errs"
	"porter/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// OrderFilter selects a slice of the ledger.
type OrderFilter int

const (
	UnknownFilter OrderFilter = iota
	AllOrders
	AvailableOrders
	// ActiveOrders are accepted, picked up or in transit.
	ActiveOrders
	// CompletedOrders are delivered or cancelled.
	CompletedOrders
)

func getOrderFilterStrings() map[OrderFilter]string {
	return map[OrderFilter]string{
		UnknownFilter:   "unknown",
		AllOrders:       "all",
		AvailableOrders: "available",
		ActiveOrders:    "active",
		CompletedOrders: "completed",
	}
}

// ParseOrderFilter reads "all", "available", "active" or "completed".
func ParseOrderFilter(s string) (OrderFilter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for filter, name := range getOrderFilterStrings() {
		if filter != UnknownFilter && name == s {
			return filter, nil
		}
	}
	return UnknownFilter, errs.NewValueIsInvalidErrorWithCause("order filter", fmt.Errorf("%q is not a known filter", s))
}

func (f OrderFilter) String() string {
	if s, ok := getOrderFilterStrings()[f]; ok {
		return s
	}
	return getOrderFilterStrings()[UnknownFilter]
}

func (f OrderFilter) Validate() error {
	if f <= UnknownFilter || f > CompletedOrders {
		return errs.NewValueIsInvalidErrorWithCause("order filter", fmt.Errorf("%d is not a valid filter", f))
	}
	return nil
}

// Match reports whether an order in the given status belongs to the slice.
func (f OrderFilter) Match(status order.Status) bool {
	switch f {
	case AllOrders:
		return true
	case AvailableOrders:
		return status == order.Available
	case ActiveOrders:
		return status.IsActive()
	case CompletedOrders:
		return status.IsCompleted()
	default:
		return false
	}
}

// GetOrdersQuery lists orders in insertion order.
//
// Example:
//
//	query, _ := NewGetOrdersQuery(AvailableOrders)
//	orders, err := handler.Handle(ctx, query)
//	for _, o := range orders {
//	    fmt.Printf("%s $%.2f\n", o.Customer.Name(), o.PaymentAmount)
//	}
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	filter OrderFilter

	guard guard.ConstructorGuard
}

func NewGetOrdersQuery(filter OrderFilter) (GetOrdersQuery, error) {
	if err := filter.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	return GetOrdersQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Filter() OrderFilter {
	return q.filter
}

// GetOrderQuery fetches one order.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
