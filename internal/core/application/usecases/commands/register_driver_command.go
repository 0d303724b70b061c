package commands

import (
	"errors"
	"fmt"
	"strings"

	"porter/internal/pkg/errs"
	"porter/internal/pkg/guard"
)

const (
	// PasswordMinLength is the shortest password accepted at signup.
	PasswordMinLength = 6
	// PasswordMaxBytes is the longest password bcrypt can hash.
	PasswordMaxBytes = 72
)

var (
	ErrRegisterDriverCommandIsNotConstructed = errors.New(
		"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
	)
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters long", PasswordMinLength)
)

// RegisterDriverCommand is a signup request.
// The email format is checked by the account aggregate; the command only
// checks presence and the password length. The password length is bounded
// above in bytes, not characters.
//
// Example:
//
//	cmd, err := NewRegisterDriverCommand("John Smith", "john.smith@porter.com",
//	    "+1 (555) 123-4567", "car", "ABC-123", "DL123456789", "password123")
//	acc, err := handler.Handle(ctx, cmd) // acc.Status() == account.Pending
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	name          string
	email         string
	phone         string
	vehicleType   string
	vehicleNumber string
	licenseNumber string
	password      string

	guard guard.ConstructorGuard
}

func NewRegisterDriverCommand(
	name string,
	email string,
	phone string,
	vehicleType string,
	vehicleNumber string,
	licenseNumber string,
	password string,
) (RegisterDriverCommand, error) {
	cmd := RegisterDriverCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setRequired(&cmd.name, "name", name),
		cmd.setRequired(&cmd.email, "email", email),
		cmd.setRequired(&cmd.phone, "phone", phone),
		cmd.setRequired(&cmd.vehicleType, "vehicle type", vehicleType),
		cmd.setRequired(&cmd.vehicleNumber, "vehicle number", vehicleNumber),
		cmd.setRequired(&cmd.licenseNumber, "license number", licenseNumber),
		cmd.setPassword(password),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return cmd, nil
}

func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

func (c RegisterDriverCommand) Name() string {
	return c.name
}

func (c RegisterDriverCommand) Email() string {
	return c.email
}

func (c RegisterDriverCommand) Phone() string {
	return c.phone
}

func (c RegisterDriverCommand) VehicleType() string {
	return c.vehicleType
}

func (c RegisterDriverCommand) VehicleNumber() string {
	return c.vehicleNumber
}

func (c RegisterDriverCommand) LicenseNumber() string {
	return c.licenseNumber
}

func (c RegisterDriverCommand) Password() string {
	return c.password
}

func (c *RegisterDriverCommand) setRequired(field *string, name string, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*field = value
	return nil
}

func (c *RegisterDriverCommand) setPassword(password string) error {
	if len(password) < PasswordMinLength {
		return ErrPasswordTooShort
	}
	if len(password) > PasswordMaxBytes {
		return errs.NewValueIsOutOfRangeError("password length in bytes", len(password), PasswordMinLength, PasswordMaxBytes)
	}
	c.password = password
	return nil
}
