package order

import (
	"fmt"

	"backoffice/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The lifecycle is a directed graph that forks after Processing depending on
// the shipping method:
//
//	Pending ──> Processing ──┬──> Shipped ──> Delivered ──┬──> Completed
//	   │            │        └──> ReadyForPickup ─────────┘
//	   └────────────┴──> Cancelled
//
// Status values are serialized with String and parsed with ParseStatus.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a placed order awaiting payment confirmation.
	Pending

	// Processing means payment was confirmed and the order is being prepared.
	Processing

	// Shipped means the order left the warehouse (shipping method only).
	Shipped

	// Delivered means the parcel reached the buyer (shipping method only).
	Delivered

	// ReadyForPickup means the order waits at the counter (pickup method only).
	ReadyForPickup

	// Completed is the successful terminal state.
	Completed

	// Cancelled is the unsuccessful terminal state.
	Cancelled
)

var statusNames = map[Status]string{
	Pending:        "pending",
	Processing:     "processing",
	Shipped:        "shipped",
	Delivered:      "delivered",
	ReadyForPickup: "ready_for_pickup",
	Completed:      "completed",
	Cancelled:      "cancelled",
}

var statusLabels = map[Status]string{
	Pending:        "Pending",
	Processing:     "Processing",
	Shipped:        "Shipped",
	Delivered:      "Delivered",
	ReadyForPickup: "Ready for Pickup",
	Completed:      "Completed",
	Cancelled:      "Cancelled",
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Processing, Shipped, Delivered, ReadyForPickup, Completed, Cancelled}
}

// ParseStatus converts the wire representation ("ready_for_pickup") into a Status.
//
// Returns:
//   - the matching Status and nil
//   - Unknown and a ValueIsInvalidError for any other input
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the seven lifecycle states.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Label returns the human readable name shown on the dashboard.
// Invalid values fall back to String.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return s.String()
}

// BadgeVariant returns the presentation hint used when listing orders.
func (s Status) BadgeVariant() string {
	switch s { //nolint:exhaustive // every other status renders with the default badge
	case Cancelled:
		return "destructive"
	case Pending:
		return "secondary"
	default:
		return "default"
	}
}

// IsTerminal reports whether no further transition can leave the status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}
