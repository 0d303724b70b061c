package commands

import (
	"errors"

	"porter/internal/pkg/guard"
)

var ErrExpireSessionCommandIsNotConstructed = errors.New(
	"ExpireSessionCommand must be created via NewExpireSessionCommand constructor",
)

// ExpireSessionCommand asks to drop the session if its token is no longer valid.
type ExpireSessionCommand struct {
	guard guard.ConstructorGuard
}

func NewExpireSessionCommand() ExpireSessionCommand {
	return ExpireSessionCommand{guard: guard.NewConstructorGuard()}
}

func (c ExpireSessionCommand) Validate() error {
	return c.guard.Validate(ErrExpireSessionCommandIsNotConstructed)
}
