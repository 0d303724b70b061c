package commands

import (
	"errors"

	"porter/internal/core/domain/model/kernel"
	"porter/internal/pkg/guard"
)

var ErrUpdateDriverLocationCommandIsNotConstructed = errors.New(
	"UpdateDriverLocationCommand must be created via NewUpdateDriverLocationCommand constructor",
)

// UpdateDriverLocationCommand reports a new position of the logged-in driver.
type UpdateDriverLocationCommand struct { //nolint:recvcheck //using for validation
	location kernel.Location

	guard guard.ConstructorGuard
}

func NewUpdateDriverLocationCommand(location kernel.Location) (UpdateDriverLocationCommand, error) {
	cmd := UpdateDriverLocationCommand{guard: guard.NewConstructorGuard()}

	if err := cmd.setLocation(location); err != nil {
		return UpdateDriverLocationCommand{}, err
	}

	return cmd, nil
}

func (c UpdateDriverLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverLocationCommandIsNotConstructed)
}

func (c UpdateDriverLocationCommand) Location() kernel.Location {
	return c.location
}

func (c *UpdateDriverLocationCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
