package commands

import (
	"errors"
	"slices"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers an order placed in the storefront.
// The order enters the back office in Pending with a single log entry.
//
// Example:
//
//	item, _ := order.NewItem("p-1", "SKU-1", "Rice 5kg", 75000, 2, "sack")
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), buyerID, []order.Item{item}, order.Pickup, nil, actor)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	userID         kernel.UUID
	items          []order.Item
	shippingMethod order.ShippingMethod
	address        *order.Address
	actor          user.Actor

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	items []order.Item,
	shippingMethod order.ShippingMethod,
	address *order.Address,
	actor user.Actor,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setItems(items),
		cmd.setShippingMethod(shippingMethod),
		cmd.setActor(actor),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID                 { return c.orderID }
func (c CreateOrderCommand) UserID() kernel.UUID                  { return c.userID }
func (c CreateOrderCommand) Items() []order.Item                  { return slices.Clone(c.items) }
func (c CreateOrderCommand) ShippingMethod() order.ShippingMethod { return c.shippingMethod }
func (c CreateOrderCommand) Address() *order.Address              { return c.address }
func (c CreateOrderCommand) Actor() user.Actor                    { return c.actor }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyer id", err)
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	c.items = slices.Clone(items)
	return nil
}

func (c *CreateOrderCommand) setShippingMethod(method order.ShippingMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.shippingMethod = method
	return nil
}

func (c *CreateOrderCommand) setActor(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
