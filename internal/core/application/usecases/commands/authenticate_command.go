package commands

import (
	"errors"
	"strings"

	"porter/internal/pkg/errs"
	"porter/internal/pkg/guard"
)

var ErrAuthenticateCommandIsNotConstructed = errors.New(
	"AuthenticateCommand must be created via NewAuthenticateCommand constructor",
)

// AuthenticateCommand carries login credentials.
type AuthenticateCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewAuthenticateCommand(email string, password string) (AuthenticateCommand, error) {
	cmd := AuthenticateCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return AuthenticateCommand{}, err
	}

	return cmd, nil
}

func (c AuthenticateCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateCommandIsNotConstructed)
}

func (c AuthenticateCommand) Email() string {
	return c.email
}

func (c AuthenticateCommand) Password() string {
	return c.password
}

func (c *AuthenticateCommand) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *AuthenticateCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}
