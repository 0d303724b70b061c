package commands

import (
	"errors"

	"porter/internal/core/domain/model/driver"
	"porter/internal/pkg/guard"
)

var (
	ErrToggleDriverStatusCommandIsNotConstructed = errors.New(
		"ToggleDriverStatusCommand must be created via NewToggleDriverStatusCommand constructor",
	)
	ErrSetDriverStatusCommandIsNotConstructed = errors.New(
		"SetDriverStatusCommand must be created via NewSetDriverStatusCommand constructor",
	)
)

// ToggleDriverStatusCommand flips the logged-in driver between online and offline.
type ToggleDriverStatusCommand struct {
	guard guard.ConstructorGuard
}

func NewToggleDriverStatusCommand() ToggleDriverStatusCommand {
	return ToggleDriverStatusCommand{guard: guard.NewConstructorGuard()}
}

func (c ToggleDriverStatusCommand) Validate() error {
	return c.guard.Validate(ErrToggleDriverStatusCommandIsNotConstructed)
}

// SetDriverStatusCommand puts the logged-in driver into an explicit status.
//
// Example:
//
//	cmd, err := NewSetDriverStatusCommand(driver.Online) // "go online"
type SetDriverStatusCommand struct { //nolint:recvcheck //using for validation
	status driver.Status

	guard guard.ConstructorGuard
}

func NewSetDriverStatusCommand(status driver.Status) (SetDriverStatusCommand, error) {
	cmd := SetDriverStatusCommand{guard: guard.NewConstructorGuard()}

	if err := cmd.setStatus(status); err != nil {
		return SetDriverStatusCommand{}, err
	}

	return cmd, nil
}

func (c SetDriverStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetDriverStatusCommandIsNotConstructed)
}

func (c SetDriverStatusCommand) Status() driver.Status {
	return c.status
}

func (c *SetDriverStatusCommand) setStatus(status driver.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
