package commands

import (
	"errors"

	"porter/internal/pkg/guard"
)

var ErrEndSessionCommandIsNotConstructed = errors.New(
	"EndSessionCommand must be created via NewEndSessionCommand constructor",
)

// EndSessionCommand logs the current driver out.
type EndSessionCommand struct {
	guard guard.ConstructorGuard
}

func NewEndSessionCommand() EndSessionCommand {
	return EndSessionCommand{guard: guard.NewConstructorGuard()}
}

func (c EndSessionCommand) Validate() error {
	return c.guard.Validate(ErrEndSessionCommandIsNotConstructed)
}
