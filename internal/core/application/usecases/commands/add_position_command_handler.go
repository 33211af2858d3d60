package commands

import (
	"context"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/core/domain/model/position"
)

// AddPositionCommandHandler registers new storage slots.
type AddPositionCommandHandler struct {
	uowFactory PositionUoWFactory
}

// NewAddPositionCommandHandler creates a handler for slot registration.
func NewAddPositionCommandHandler(uowFactory PositionUoWFactory) AddPositionCommandHandler {
	return AddPositionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates a free position at the given address and persists it.
// Uniqueness of the (street, module, level, box) tuple is enforced by the
// storage layer.
func (h *AddPositionCommandHandler) Handle(ctx context.Context, cmd AddPositionCommand) (*position.Position, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := position.NewPosition(kernel.NewUUID(), cmd.Street(), cmd.Module(), cmd.Level(), cmd.Box())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PositionRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
