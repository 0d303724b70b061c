// Package triprepo stores the trip tracker: the active trip slot and the
// history of ended trips.
package triprepo

import (
	"time"

	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/model/trip"

	"github.com/google/uuid"
)

// TripDTO is the stored form of a trip.
type TripDTO struct {
	ID            uuid.UUID
	StartTime     time.Time
	StartLocation LocationDTO
	Distance      float64
	Earnings      float64
	Orders        []uuid.UUID
	Ended         bool
	EndTime       time.Time
	EndLocation   LocationDTO
}

type LocationDTO struct {
	Latitude  float64
	Longitude float64
	Address   string
}

func fromDomain(aggregate *trip.Trip) TripDTO {
	orders := make([]uuid.UUID, 0, len(aggregate.Orders()))
	for _, id := range aggregate.Orders() {
		orders = append(orders, id.Bytes())
	}

	dto := TripDTO{
		ID:            aggregate.ID().Bytes(),
		StartTime:     aggregate.StartTime(),
		StartLocation: locationFromDomain(aggregate.StartLocation()),
		Distance:      aggregate.Distance(),
		Earnings:      aggregate.Earnings(),
		Orders:        orders,
	}

	if end, ended := aggregate.EndLocation(); ended {
		dto.Ended = true
		dto.EndTime = aggregate.EndTime()
		dto.EndLocation = locationFromDomain(end)
	}

	return dto
}

func toDomain(dto TripDTO) (*trip.Trip, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	start, err := kernel.NewLocation(dto.StartLocation.Latitude, dto.StartLocation.Longitude, dto.StartLocation.Address)
	if err != nil {
		return nil, err
	}

	orders := make([]kernel.UUID, 0, len(dto.Orders))
	for _, raw := range dto.Orders {
		orderID, orderErr := kernel.UUIDFromBytes(raw[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orders = append(orders, orderID)
	}

	var end kernel.Location
	if dto.Ended {
		end, err = kernel.NewLocation(dto.EndLocation.Latitude, dto.EndLocation.Longitude, dto.EndLocation.Address)
		if err != nil {
			return nil, err
		}
	}

	return trip.RestoreTrip(id, start, dto.StartTime, dto.Distance, dto.Earnings, orders, dto.Ended, end, dto.EndTime)
}

func locationFromDomain(loc kernel.Location) LocationDTO {
	return LocationDTO{Latitude: loc.Latitude(), Longitude: loc.Longitude(), Address: loc.Address()}
}
