package commands

import (
	"errors"

	"porter/internal/pkg/guard"
)

var ErrPublishDailySummaryCommandIsNotConstructed = errors.New(
	"PublishDailySummaryCommand must be created via NewPublishDailySummaryCommand constructor",
)

// PublishDailySummaryCommand asks for today's earnings to be pushed as a notification.
type PublishDailySummaryCommand struct {
	guard guard.ConstructorGuard
}

func NewPublishDailySummaryCommand() PublishDailySummaryCommand {
	return PublishDailySummaryCommand{guard: guard.NewConstructorGuard()}
}

func (c PublishDailySummaryCommand) Validate() error {
	return c.guard.Validate(ErrPublishDailySummaryCommandIsNotConstructed)
}
