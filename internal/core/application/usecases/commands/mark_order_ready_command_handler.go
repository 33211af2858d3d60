package commands

import (
	"context"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/core/domain/model/order"
	"pickuphub/internal/pkg/clock"
)

// MarkOrderReadyCommandHandler handles the ready-for-pickup transition.
//
// The domain transition is a silent no-op when the order is not in Received
// status or some volume is still unshelved. A Ready audit event is appended
// even then, documenting the attempt; this mirrors the behavior of the
// system this service replaced and is relied on by the audit trail.
type MarkOrderReadyCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
}

// NewMarkOrderReadyCommandHandler creates a handler for the ready transition.
func NewMarkOrderReadyCommandHandler(uowFactory OrderUoWFactory, clk clock.Clock) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle loads the order, applies the Ready transition, appends the audit
// event, and persists the aggregate. Returns an ObjectNotFoundError when the
// order does not exist.
func (h *MarkOrderReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrderReadyCommand) (*order.Order, error) {
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
	aggregate.MarkReady(now)

	event, err := order.NewEvent(kernel.NewUUID(), order.EventTypeReady, cmd.Actor(), "order marked as ready", now)
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
