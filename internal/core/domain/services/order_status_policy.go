package services

import (
	"slices"

	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/user"
)

// ManualTransferNote is attached to a Pending -> Processing change when the
// actor gave no note of its own.
const ManualTransferNote = "Payment received via manual transfer"

// Severity tells the presentation layer whether an option needs confirmation.
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityDestructive
)

func (s Severity) String() string {
	if s == SeverityDestructive {
		return "destructive"
	}
	return "normal"
}

// StatusTransitionOption is one legal next move for an order.
// It is computed on demand and never persisted.
type StatusTransitionOption struct {
	Status   order.Status
	Label    string
	Severity Severity
}

// RequiresConfirmation reports whether the change must be confirmed before it is sent.
func (o StatusTransitionOption) RequiresConfirmation() bool {
	return o.Severity == SeverityDestructive
}

// transitionRule offers option from status from. A rule with
// order.UnknownShippingMethod applies to both shipping methods.
type transitionRule struct {
	from   order.Status
	method order.ShippingMethod
	option StatusTransitionOption
}

func (r transitionRule) matches(current order.Status, method order.ShippingMethod) bool {
	return r.from == current && (r.method == order.UnknownShippingMethod || r.method == method)
}

// OrderStatusPolicy computes the status changes offered to an actor.
//
// Two disjoint rule sets exist, selected by role class:
//
//	buyer:        shipped -> delivered, pending -> cancelled
//	staff-class:  pending -> processing | cancelled
//	              processing -> shipped (shipping) | ready_for_pickup (pickup) | cancelled
//	              shipped -> delivered, delivered -> completed, ready_for_pickup -> completed
//
// Roles outside the closed role set get no options at all.
type OrderStatusPolicy struct {
	buyerRules []transitionRule
	staffRules []transitionRule
}

// NewOrderStatusPolicy builds the rule tables. Options keep the insertion order
// listed on OrderStatusPolicy.
func NewOrderStatusPolicy() OrderStatusPolicy {
	var (
		toProcessing     = StatusTransitionOption{Status: order.Processing, Label: "Mark as Processing"}
		toShipped        = StatusTransitionOption{Status: order.Shipped, Label: "Mark as Shipped"}
		toReadyForPickup = StatusTransitionOption{Status: order.ReadyForPickup, Label: "Mark as Ready for Pickup"}
		toDelivered      = StatusTransitionOption{Status: order.Delivered, Label: "Mark as Delivered"}
		toCompleted      = StatusTransitionOption{Status: order.Completed, Label: "Mark as Completed"}
		toCancelled      = StatusTransitionOption{Status: order.Cancelled, Label: "Cancel Order", Severity: SeverityDestructive}
		anyMethod        = order.UnknownShippingMethod
	)

	return OrderStatusPolicy{
		buyerRules: []transitionRule{
			{from: order.Shipped, method: anyMethod, option: toDelivered},
			{from: order.Pending, method: anyMethod, option: toCancelled},
		},
		staffRules: []transitionRule{
			{from: order.Pending, method: anyMethod, option: toProcessing},
			{from: order.Pending, method: anyMethod, option: toCancelled},
			{from: order.Processing, method: order.Shipping, option: toShipped},
			{from: order.Processing, method: order.Pickup, option: toReadyForPickup},
			{from: order.Processing, method: anyMethod, option: toCancelled},
			{from: order.Shipped, method: anyMethod, option: toDelivered},
			{from: order.Delivered, method: anyMethod, option: toCompleted},
			{from: order.ReadyForPickup, method: anyMethod, option: toCompleted},
		},
	}
}

// NextStatuses returns the ordered options available to role for an order in
// status current with the given shipping method.
//
// The result is empty, never nil-with-error, when:
//   - current is terminal or not a valid status
//   - method is not a valid shipping method
//   - role is not a known actor role
func (p OrderStatusPolicy) NextStatuses(
	current order.Status,
	method order.ShippingMethod,
	role user.Role,
) []StatusTransitionOption {
	options := make([]StatusTransitionOption, 0, 2)
	if current.Validate() != nil || method.Validate() != nil {
		return options
	}

	for _, rule := range p.rulesFor(role) {
		if rule.matches(current, method) {
			options = append(options, rule.option)
		}
	}
	return options
}

// Offers returns the option leading to target when NextStatuses contains it.
func (p OrderStatusPolicy) Offers(
	current order.Status,
	method order.ShippingMethod,
	role user.Role,
	target order.Status,
) (StatusTransitionOption, bool) {
	options := p.NextStatuses(current, method, role)
	i := slices.IndexFunc(options, func(o StatusTransitionOption) bool {
		return o.Status == target
	})
	if i < 0 {
		return StatusTransitionOption{}, false
	}
	return options[i], true
}

// TransitionNote returns the note stored with a status change.
// A staff-class Pending -> Processing change without a note gets ManualTransferNote;
// every other change keeps note unchanged.
func (p OrderStatusPolicy) TransitionNote(from, to order.Status, role user.Role, note string) string {
	if note == "" && role.IsStaffClass() && from == order.Pending && to == order.Processing {
		return ManualTransferNote
	}
	return note
}

func (p OrderStatusPolicy) rulesFor(role user.Role) []transitionRule {
	switch {
	case role.IsBuyerClass():
		return p.buyerRules
	case role.IsStaffClass():
		return p.staffRules
	default:
		return nil
	}
}
