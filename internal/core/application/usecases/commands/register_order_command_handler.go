package commands

import (
	"context"
	"errors"
	"fmt"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/core/domain/model/order"
	"pickuphub/internal/pkg/clock"
	"pickuphub/internal/pkg/errs"
)

// RegisterOrderCommandHandler handles the business logic for order intake.
// Resolves the order code, attaches and labels the parcel units, records the
// creation audit event, and persists the whole aggregate in one transaction.
//
// The duplicate-code check is a lookup before insert. Two concurrent
// registrations of the same explicit code can both pass the lookup; the
// unique index on the code column then fails the second commit. The service
// contract remains the lookup.
type RegisterOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      clock.Clock
}

// NewRegisterOrderCommandHandler creates a handler for order intake.
// Requires an OrderUoWFactory for transactional persistence and a clock for
// lifecycle timestamps.
func NewRegisterOrderCommandHandler(uowFactory OrderUoWFactory, clk clock.Clock) RegisterOrderCommandHandler {
	return RegisterOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
	}
}

// Handle processes the intake command and returns the persisted aggregate.
//
// A blank code is replaced with a generated one; a code colliding with an
// existing order fails with a ValueIsInvalidError before anything is
// persisted. Every volume is forced to Received status, unlabeled volumes
// get generated labels, and exactly one Creation event is appended.
func (h *RegisterOrderCommandHandler) Handle(ctx context.Context, cmd RegisterOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	code := cmd.Code()
	if code == "" {
		code = order.GenerateCode()
	}

	recipient, err := order.NewRecipient(cmd.RecipientName(), cmd.RecipientDocument(), cmd.RecipientPhone())
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

	orderRepo := uow.OrderRepository()

	if _, lookupErr := orderRepo.GetByCode(ctx, code); lookupErr == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("order code", fmt.Errorf("%s is already registered", code))
	} else if !errors.Is(lookupErr, errs.ErrObjectNotFound) {
		return nil, lookupErr
	}

	now := h.clock.Now()
	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		code,
		cmd.Channel(),
		recipient,
		cmd.ExternalID(),
		cmd.TenantID(),
		now,
	)
	if err != nil {
		return nil, err
	}

	for _, spec := range cmd.Volumes() {
		label := spec.Label
		if label == "" {
			label = order.GenerateLabel(code)
		}

		volume, volumeErr := order.NewVolume(kernel.NewUUID(), label, spec.Weight, spec.Dimensions)
		if volumeErr != nil {
			return nil, volumeErr
		}
		if volumeErr = aggregate.AddVolume(volume); volumeErr != nil {
			return nil, volumeErr
		}
	}

	event, err := order.NewEvent(kernel.NewUUID(), order.EventTypeCreation, cmd.Actor(), "order registered manually", now)
	if err != nil {
		return nil, err
	}
	if err = aggregate.AppendEvent(event); err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
