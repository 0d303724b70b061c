package commands

import (
	"context"

	"porter/internal/core/domain/model/account"
	"porter/internal/core/domain/model/driver"
	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/ports"
)

// RegisterDriverCommandHandler creates a Pending account together with its
// Offline driver record. It does not log the new driver in.
//
// Errors:
//   - *errs.ObjectAlreadyExistsError when the email is already registered
//   - validation errors from the account and driver aggregates
type RegisterDriverCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
	clock      ports.Clock
}

func NewRegisterDriverCommandHandler(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
	clock ports.Clock,
) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		clock:      clock,
	}
}

// Handle registers the driver and returns the stored account.
// The password is hashed before the transaction starts.
func (h *RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) (*account.Account, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	vehicle, err := kernel.NewVehicle(cmd.VehicleType(), cmd.VehicleNumber())
	if err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	acc, err := account.NewAccount(kernel.NewUUID(), cmd.Name(), cmd.Email(), cmd.Phone(), vehicle, cmd.LicenseNumber(), hash, h.clock.Now())
	if err != nil {
		return nil, err
	}

	d, err := driver.NewDriver(acc.ID(), acc.Name(), acc.Email(), acc.Phone(), acc.Vehicle())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AccountRepository().Add(ctx, acc); err != nil {
		return nil, err
	}

	if err = uow.DriverRepository().Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return acc.Clone(), nil
}
