package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrLogIsInconsistent is returned when a restored history does not end in the current status
	// or is not in chronological order.
	ErrLogIsInconsistent = errors.New("order log is inconsistent with order status")
)

// Order is the aggregate root of a placed order.
//
// Order follows these invariants:
//   - Must have valid order and buyer identifiers
//   - Must contain at least one item
//   - Shipping orders carry a valid address
//   - The log is never empty, is chronological and ends with the current status
//   - Only ChangeStatus mutates status, and it always appends a log entry
type Order struct {
	id             kernel.UUID
	userID         kernel.UUID
	items          []Item
	shippingMethod ShippingMethod
	address        *Address
	status         Status
	logs           []LogEntry
	createdAt      time.Time
	updatedAt      time.Time

	guard guard.ConstructorGuard
}

// NewOrder registers a freshly placed order.
//
// The order starts in Pending and its log holds a single Pending entry stamped
// with placedAt.
//
// Example:
//
//	item, _ := order.NewItem("p-1", "SKU-1", "Rice 5kg", 75000, 2, "sack")
//	o, err := order.NewOrder(kernel.NewUUID(), buyerID, []order.Item{item}, order.Pickup, nil, clock.Now())
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	items []Item,
	shippingMethod ShippingMethod,
	address *Address,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		status:    Pending,
		createdAt: placedAt,
		updatedAt: placedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
		o.setShipping(shippingMethod, address),
	); err != nil {
		return nil, err
	}

	entry, err := NewLogEntry(Pending, placedAt, "", nil)
	if err != nil {
		return nil, err
	}
	o.logs = []LogEntry{entry}

	return o, nil
}

// RestoreOrder rebuilds an order from persistence and re-checks every invariant,
// including the consistency between the log and the current status.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	items []Item,
	shippingMethod ShippingMethod,
	address *Address,
	status Status,
	logs []LogEntry,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
		o.setShipping(shippingMethod, address),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if err := checkLog(status, logs); err != nil {
		return nil, err
	}

	o.status = status
	o.logs = slices.Clone(logs)
	return o, nil
}

// Validate ensures the Order instance was constructed through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the buyer who placed the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// TotalAmount sums the total price of every line.
func (o *Order) TotalAmount() int64 {
	var total int64
	for _, item := range o.items {
		total += item.TotalPrice()
	}
	return total
}

func (o *Order) ShippingMethod() ShippingMethod {
	return o.shippingMethod
}

// ShippingAddress returns the destination, nil for pickup orders placed without one.
func (o *Order) ShippingAddress() *Address {
	return o.address
}

func (o *Order) Status() Status {
	return o.status
}

// Logs returns a copy of the history, oldest entry first.
func (o *Order) Logs() []LogEntry {
	return slices.Clone(o.logs)
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to a new status and appends the matching log entry
// in one step, so the history can never disagree with the current status.
//
// This method enforces the following rules:
//   - the target status must be valid
//   - terminal statuses (Completed, Cancelled) cannot be left
//   - re-applying the current status is rejected
//   - at must not precede the latest log entry
//
// Who may request which target is decided by the transition policy before this
// method is called.
//
// Returns:
//   - nil when the change was applied
//   - ValueIsInvalidError or TransitionIsNotAllowedError otherwise, leaving the order untouched
func (o *Order) ChangeStatus(to Status, note string, by *kernel.UUID, at time.Time) error {
	if err := to.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return errs.NewTransitionIsNotAllowedErrorWithCause(
			o.status.String(), to.String(), "",
			fmt.Errorf("%s is a terminal status", o.status),
		)
	}

	if to == o.status {
		return errs.NewTransitionIsNotAllowedErrorWithCause(
			o.status.String(), to.String(), "",
			errors.New("order is already in this status"),
		)
	}

	if last := o.logs[len(o.logs)-1]; at.Before(last.Timestamp()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"log timestamp",
			fmt.Errorf("%s is before the latest entry %s", at.Format(time.RFC3339), last.Timestamp().Format(time.RFC3339)),
		)
	}

	entry, err := NewLogEntry(to, at, note, by)
	if err != nil {
		return err
	}

	o.logs = append(o.logs, entry)
	o.status = to
	o.updatedAt = at
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order user id", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setShipping(method ShippingMethod, address *Address) error {
	if err := method.Validate(); err != nil {
		return err
	}
	if method == Shipping {
		if address == nil {
			return errs.NewValueIsRequiredError("shipping address")
		}
		if err := address.Validate(); err != nil {
			return err
		}
	}
	o.shippingMethod = method
	o.address = address
	return nil
}

// checkLog verifies that a restored history is non-empty, chronological and
// ends with the given status.
func checkLog(status Status, logs []LogEntry) error {
	if len(logs) == 0 {
		return fmt.Errorf("%w: log is empty", ErrLogIsInconsistent)
	}
	for i := 1; i < len(logs); i++ {
		if logs[i].Timestamp().Before(logs[i-1].Timestamp()) {
			return fmt.Errorf("%w: entry %d precedes entry %d", ErrLogIsInconsistent, i, i-1)
		}
	}
	if last := logs[len(logs)-1].Status(); last != status {
		return fmt.Errorf("%w: latest entry is %s, status is %s", ErrLogIsInconsistent, last, status)
	}
	return nil
}
