package commands

import (
	"context"
	"fmt"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/core/domain/model/order"
	"pickuphub/internal/pkg/clock"
)

// AssignPositionCommandHandler shelves a volume into a storage slot or
// clears its current slot.
//
// Assigning a new slot does not release a previously held one; only an
// explicit clear (nil position) releases the slot the volume occupied. This
// asymmetry is intentional and matches how the warehouse operates: physical
// moves go through a clear first.
type AssignPositionCommandHandler struct {
	uowFactory AllocationUoWFactory
	clock      clock.Clock
}

// NewAssignPositionCommandHandler creates a handler for volume allocation.
func NewAssignPositionCommandHandler(uowFactory AllocationUoWFactory, clk clock.Clock) AssignPositionCommandHandler {
	return AssignPositionCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle loads the order owning the volume, applies the binding change,
// keeps the slot's occupancy flag in sync, and appends an Allocation audit
// event. Returns an ObjectNotFoundError when the volume or the target
// position does not exist.
func (h *AssignPositionCommandHandler) Handle(ctx context.Context, cmd AssignPositionCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	positionRepo := uow.PositionRepository()

	aggregate, err := orderRepo.GetByVolumeID(ctx, cmd.VolumeID())
	if err != nil {
		return nil, err
	}

	volume, err := aggregate.VolumeByID(cmd.VolumeID())
	if err != nil {
		return nil, err
	}

	var slotCode string
	if positionID := cmd.PositionID(); positionID != nil {
		slot, getErr := positionRepo.Get(ctx, *positionID)
		if getErr != nil {
			return nil, getErr
		}

		if err = aggregate.AssignPosition(cmd.VolumeID(), *positionID); err != nil {
			return nil, err
		}
		if err = positionRepo.Occupy(ctx, *positionID); err != nil {
			return nil, err
		}
		slotCode = slot.Code()
	} else {
		released, clearErr := aggregate.ClearPosition(cmd.VolumeID())
		if clearErr != nil {
			return nil, clearErr
		}
		if released != nil {
			if err = positionRepo.Release(ctx, *released); err != nil {
				return nil, err
			}
		}
		slotCode = "no position"
	}

	now := h.clock.Now()
	payload := fmt.Sprintf("volume %s allocated to position %s", volume.Label(), slotCode)
	event, err := order.NewEvent(kernel.NewUUID(), order.EventTypeAllocation, cmd.Actor(), payload, now)
	if err != nil {
		return nil, err
	}
	if err = aggregate.AppendEvent(event); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
