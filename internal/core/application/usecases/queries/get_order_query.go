package queries

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery loads one order with its history and the status changes the
// actor may apply next.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   user.Actor

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID, actor user.Actor) (GetOrderQuery, error) {
	query := GetOrderQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setActor(actor),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }
func (q GetOrderQuery) Actor() user.Actor    { return q.actor }

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}

func (q *GetOrderQuery) setActor(actor user.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	q.actor = actor
	return nil
}

type OrderItemView struct {
	ProductID string
	SKU       string
	Name      string
	Price     int64
	Quantity  int
	Unit      string
}

type AddressView struct {
	Street          string
	City            string
	Province        string
	PostalCode      string
	Phone           string
	AdditionalNotes string
	Label           string
	Lat             *float64
	Lon             *float64
}

type OrderLogView struct {
	Status    order.Status
	Timestamp time.Time
	Note      string
	By        *kernel.UUID
}

// GetOrderQueryResponse is the full order view. AvailableTransitions is never
// nil and is empty when the actor can do nothing with the order.
type GetOrderQueryResponse struct {
	OrderSummary
	Items                []OrderItemView
	Address              *AddressView
	Logs                 []OrderLogView
	AvailableTransitions []services.StatusTransitionOption
}
