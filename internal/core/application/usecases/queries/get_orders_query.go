package queries

import (
	"errors"
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

const (
	DefaultOrdersLimit = 20
	MaxOrdersLimit     = 100
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// OrdersFilter narrows the order list. Zero values mean "no filter",
// a zero Limit falls back to DefaultOrdersLimit.
type OrdersFilter struct {
	Status *order.Status
	UserID *kernel.UUID
	Limit  int
	Skip   int
}

// GetOrdersQuery lists orders newest first.
//
// Example:
//
//	status := order.Pending
//	query, err := NewGetOrdersQuery(OrdersFilter{Status: &status, Limit: 50}, actor)
//	if err != nil {
//	    return err
//	}
//	page, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	filter OrdersFilter
	actor  user.Actor

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery validates the filter. Buyers are always scoped to their own
// orders, so a buyer without an ID or asking for someone else's orders is rejected.
func NewGetOrdersQuery(filter OrdersFilter, actor user.Actor) (GetOrdersQuery, error) {
	var errList []error

	if err := actor.Validate(); err != nil {
		errList = append(errList, err)
	}
	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			errList = append(errList, err)
		}
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultOrdersLimit
	}
	if filter.Limit < 0 || filter.Limit > MaxOrdersLimit {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"limit", fmt.Errorf("must be between 1 and %d, got %d", MaxOrdersLimit, filter.Limit),
		))
	}
	if filter.Skip < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"skip", fmt.Errorf("must not be negative, got %d", filter.Skip),
		))
	}

	if actor.Role.IsBuyerClass() {
		switch {
		case actor.ID == nil:
			errList = append(errList, errs.NewValueIsRequiredError("actor id"))
		case filter.UserID != nil && !filter.UserID.IsEqual(*actor.ID):
			errList = append(errList, errs.NewAccessDeniedError(actor.Role.String(), "list orders of other users"))
		default:
			filter.UserID = actor.ID
		}
	}

	if err := errors.Join(errList...); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		filter: filter,
		actor:  actor,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Filter() OrdersFilter {
	return q.filter
}

// OrderSummary is one row of the order list.
type OrderSummary struct {
	ID             kernel.UUID
	UserID         kernel.UUID
	Status         order.Status
	ShippingMethod order.ShippingMethod
	TotalAmount    int64
	ItemCount      int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// GetOrdersQueryResponse is one page of orders plus the number of orders
// matching the filter across all pages.
type GetOrdersQueryResponse struct {
	Orders []OrderSummary
	Total  int64
	Limit  int
	Skip   int
}
