package commands

import (
	"errors"

	"porter/internal/core/domain/model/account"
	"porter/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand carries a partial profile edit for the logged-in driver.
// Nil fields in the update are left unchanged.
//
// Example:
//
//	phone := "+1 (555) 000-0000"
//	cmd := NewUpdateProfileCommand(account.ProfileUpdate{Phone: &phone})
type UpdateProfileCommand struct {
	update account.ProfileUpdate

	guard guard.ConstructorGuard
}

func NewUpdateProfileCommand(update account.ProfileUpdate) UpdateProfileCommand {
	return UpdateProfileCommand{
		update: update,
		guard:  guard.NewConstructorGuard(),
	}
}

func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

func (c UpdateProfileCommand) Update() account.ProfileUpdate {
	return c.update
}
