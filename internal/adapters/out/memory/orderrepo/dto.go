// Package orderrepo stores the order ledger in the in-memory store.
// Orders are kept as OrderDTO rows and rebuilt with order.RestoreOrder on every
// read, so callers always receive their own copy.
package orderrepo

import (
	"time"

	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the stored form of an order.
type OrderDTO struct {
	ID               uuid.UUID
	DriverID         *uuid.UUID
	Customer         CustomerDTO
	Pickup           LocationDTO
	Dropoff          LocationDTO
	DistanceKm       float64
	EstimatedMinutes int
	Items            []ItemDTO
	PaymentAmount    float64
	Notes            string
	Status           int
	CreatedAt        time.Time
	AcceptedAt       time.Time
	PickedUpAt       time.Time
	DeliveredAt      time.Time
	CancelledAt      time.Time
}

type CustomerDTO struct {
	Name  string
	Phone string
}

type LocationDTO struct {
	Latitude  float64
	Longitude float64
	Address   string
}

type ItemDTO struct {
	Name     string
	Quantity int
	Price    float64
	Notes    string
}

// fromDomain converts an order aggregate into a fresh row.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
			Notes:    item.Notes(),
		})
	}

	route := aggregate.Route()
	timeline := aggregate.Timeline()

	return OrderDTO{
		ID:       aggregate.ID().Bytes(),
		DriverID: driverID,
		Customer: CustomerDTO{
			Name:  aggregate.Customer().Name(),
			Phone: aggregate.Customer().Phone(),
		},
		Pickup:           locationFromDomain(route.Pickup()),
		Dropoff:          locationFromDomain(route.Dropoff()),
		DistanceKm:       route.DistanceKm(),
		EstimatedMinutes: route.EstimatedMinutes(),
		Items:            items,
		PaymentAmount:    aggregate.PaymentAmount(),
		Notes:            aggregate.Notes(),
		Status:           int(aggregate.Status()),
		CreatedAt:        timeline.CreatedAt,
		AcceptedAt:       timeline.AcceptedAt,
		PickedUpAt:       timeline.PickedUpAt,
		DeliveredAt:      timeline.DeliveredAt,
		CancelledAt:      timeline.CancelledAt,
	}
}

// toDomain rebuilds the aggregate from a row using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	customer, err := order.NewCustomer(dto.Customer.Name, dto.Customer.Phone)
	if err != nil {
		return nil, err
	}

	pickup, err := locationToDomain(dto.Pickup)
	if err != nil {
		return nil, err
	}
	dropoff, err := locationToDomain(dto.Dropoff)
	if err != nil {
		return nil, err
	}
	route, err := order.NewRoute(pickup, dropoff, dto.DistanceKm, dto.EstimatedMinutes)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItemWithNotes(itemDTO.Name, itemDTO.Quantity, itemDTO.Price, itemDTO.Notes)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, customer, route, items, dto.PaymentAmount, dto.Notes, order.Status(dto.Status), driverID, order.Timeline{
		CreatedAt:   dto.CreatedAt,
		AcceptedAt:  dto.AcceptedAt,
		PickedUpAt:  dto.PickedUpAt,
		DeliveredAt: dto.DeliveredAt,
		CancelledAt: dto.CancelledAt,
	})
}

func locationFromDomain(loc kernel.Location) LocationDTO {
	return LocationDTO{Latitude: loc.Latitude(), Longitude: loc.Longitude(), Address: loc.Address()}
}

func locationToDomain(dto LocationDTO) (kernel.Location, error) {
	return kernel.NewLocation(dto.Latitude, dto.Longitude, dto.Address)
}
