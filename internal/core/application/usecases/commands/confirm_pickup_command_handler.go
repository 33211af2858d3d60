package commands

import (
	"context"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/core/domain/model/order"
	"pickuphub/internal/pkg/clock"
)

// ConfirmPickupCommandHandler handles the final pickup confirmation.
//
// Like the ready transition, pickup confirmation on an order that is not
// Ready is a silent no-op at the domain level, yet a Pickup audit event is
// still appended so the attempt is visible in the trail.
type ConfirmPickupCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
}

// NewConfirmPickupCommandHandler creates a handler for pickup confirmation.
func NewConfirmPickupCommandHandler(uowFactory OrderUoWFactory, clk clock.Clock) ConfirmPickupCommandHandler {
	return ConfirmPickupCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle loads the order, applies the PickedUp transition, appends the audit
// event, and persists the aggregate. Returns an ObjectNotFoundError when the
// order does not exist.
func (h *ConfirmPickupCommandHandler) Handle(ctx context.Context, cmd ConfirmPickupCommand) (*order.Order, error) {
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	aggregate.MarkPickedUp(now)

	event, err := order.NewEvent(kernel.NewUUID(), order.EventTypePickup, cmd.Actor(), "pickup confirmed at counter", now)
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
