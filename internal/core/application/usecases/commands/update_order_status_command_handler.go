package commands

import (
	"context"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies a status change after checking it
// against the transition policy.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderStatusPolicy
	clock      kernel.Clock
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.OrderStatusPolicy,
	clock kernel.Clock,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		clock:      clock,
	}
}

// Handle loads the order, requires the target to be among the options the
// policy offers the actor, fills in the automatic note, appends the log entry
// and saves the order, all inside one transaction.
//
// Returns:
//   - the updated order on success
//   - ObjectNotFoundError when the order does not exist or belongs to another buyer
//   - TransitionIsNotAllowedError when the policy does not offer the target
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
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
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if actor.Role.IsBuyerClass() && (actor.ID == nil || !actor.ID.IsEqual(o.UserID())) {
		return nil, errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	from := o.Status()
	if _, ok := h.policy.Offers(from, o.ShippingMethod(), actor.Role, cmd.Target()); !ok {
		return nil, errs.NewTransitionIsNotAllowedError(from.String(), cmd.Target().String(), actor.Role.String())
	}

	note := h.policy.TransitionNote(from, cmd.Target(), actor.Role, cmd.Note())
	if err = o.ChangeStatus(cmd.Target(), note, actor.ID, h.clock.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
