// Package accountrepo stores identity records in the in-memory store.
// The account mapping is exported because the session slot keeps its own
// account snapshot in the same form.
package accountrepo

import (
	"time"

	"porter/internal/core/domain/model/account"
	"porter/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO is the stored form of an account.
type AccountDTO struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Phone         string
	VehicleType   string
	VehicleNumber string
	LicenseNumber string
	PasswordHash  string
	Status        int
	CreatedAt     time.Time
}

// FromDomain converts an account into a fresh row.
func FromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Email:         aggregate.Email(),
		Phone:         aggregate.Phone(),
		VehicleType:   aggregate.Vehicle().Kind().String(),
		VehicleNumber: aggregate.Vehicle().Number(),
		LicenseNumber: aggregate.LicenseNumber(),
		PasswordHash:  aggregate.PasswordHash(),
		Status:        int(aggregate.Status()),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// ToDomain rebuilds the account with RestoreAccount.
func ToDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicle, err := kernel.NewVehicle(dto.VehicleType, dto.VehicleNumber)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(
		id,
		dto.Name,
		dto.Email,
		dto.Phone,
		vehicle,
		dto.LicenseNumber,
		dto.PasswordHash,
		account.Status(dto.Status),
		dto.CreatedAt,
	)
}
