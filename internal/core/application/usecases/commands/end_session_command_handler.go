package commands

import (
	"context"
)

// EndSessionCommandHandler clears the session slot. Logging out twice is not an error.
type EndSessionCommandHandler struct {
	uowFactory SessionUoWFactory
}

func NewEndSessionCommandHandler(uowFactory SessionUoWFactory) EndSessionCommandHandler {
	return EndSessionCommandHandler{uowFactory: uowFactory}
}

func (h *EndSessionCommandHandler) Handle(ctx context.Context, cmd EndSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SessionRepository().Clear(ctx); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
