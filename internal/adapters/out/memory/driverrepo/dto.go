// Package driverrepo stores driver records in the in-memory store.
package driverrepo

import (
	"porter/internal/core/domain/model/driver"
	"porter/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO is the stored form of a driver.
type DriverDTO struct {
	ID              uuid.UUID
	Name            string
	Email           string
	Phone           string
	VehicleType     string
	VehicleNumber   string
	Rating          float64
	TotalDeliveries int
	TotalEarnings   float64
	Status          int
	Location        *LocationDTO
}

type LocationDTO struct {
	Latitude  float64
	Longitude float64
	Address   string
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	performance := aggregate.Performance()

	dto := DriverDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Email:           aggregate.Email(),
		Phone:           aggregate.Phone(),
		VehicleType:     aggregate.Vehicle().Kind().String(),
		VehicleNumber:   aggregate.Vehicle().Number(),
		Rating:          performance.Rating,
		TotalDeliveries: performance.TotalDeliveries,
		TotalEarnings:   performance.TotalEarnings,
		Status:          int(aggregate.Status()),
	}

	if loc, ok := aggregate.Location(); ok {
		dto.Location = &LocationDTO{
			Latitude:  loc.Latitude(),
			Longitude: loc.Longitude(),
			Address:   loc.Address(),
		}
	}

	return dto
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicle, err := kernel.NewVehicle(dto.VehicleType, dto.VehicleNumber)
	if err != nil {
		return nil, err
	}

	var location *kernel.Location
	if dto.Location != nil {
		loc, locErr := kernel.NewLocation(dto.Location.Latitude, dto.Location.Longitude, dto.Location.Address)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		dto.Email,
		dto.Phone,
		vehicle,
		driver.Performance{
			Rating:          dto.Rating,
			TotalDeliveries: dto.TotalDeliveries,
			TotalEarnings:   dto.TotalEarnings,
		},
		driver.Status(dto.Status),
		location,
	)
}
