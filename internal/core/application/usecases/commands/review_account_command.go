package commands

import (
	"errors"
	"fmt"
	"strings"

	"porter/internal/core/domain/model/account"
	"porter/internal/pkg/errs"
	"porter/internal/pkg/guard"
)

var ErrReviewAccountCommandIsNotConstructed = errors.New(
	"ReviewAccountCommand must be created via NewReviewAccountCommand constructor",
)

// ReviewAccountCommand is the back-office decision on a registered account:
// approve it so the driver can log in, or suspend it.
// It runs as the system and needs no session.
type ReviewAccountCommand struct {
	email    string
	decision account.Status

	guard guard.ConstructorGuard
}

// NewReviewAccountCommand accepts account.Approved or account.Suspended as the decision.
func NewReviewAccountCommand(email string, decision account.Status) (ReviewAccountCommand, error) {
	cmd := ReviewAccountCommand{guard: guard.NewConstructorGuard()}

	var emailErr, decisionErr error
	if strings.TrimSpace(email) == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	}
	if decision != account.Approved && decision != account.Suspended {
		decisionErr = errs.NewValueIsInvalidErrorWithCause(
			"decision", fmt.Errorf("%s is neither approved nor suspended", decision))
	}
	if err := errors.Join(emailErr, decisionErr); err != nil {
		return ReviewAccountCommand{}, err
	}

	cmd.email = account.NormalizeEmail(email)
	cmd.decision = decision
	return cmd, nil
}

func (c ReviewAccountCommand) Validate() error {
	return c.guard.Validate(ErrReviewAccountCommandIsNotConstructed)
}

func (c ReviewAccountCommand) Email() string {
	return c.email
}

func (c ReviewAccountCommand) Decision() account.Status {
	return c.decision
}
