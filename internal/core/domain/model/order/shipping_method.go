package order

import (
	"fmt"

	"backoffice/internal/pkg/errs"
)

// ShippingMethod selects which branch of the lifecycle an order follows after Processing.
type ShippingMethod int

const (
	UnknownShippingMethod ShippingMethod = iota

	// Shipping orders are sent to the buyer and pass through Shipped and Delivered.
	Shipping

	// Pickup orders are collected in person and pass through ReadyForPickup.
	Pickup
)

var shippingMethodNames = map[ShippingMethod]string{
	Shipping: "shipping",
	Pickup:   "pickup",
}

// ParseShippingMethod converts "shipping" or "pickup" into a ShippingMethod.
func ParseShippingMethod(s string) (ShippingMethod, error) {
	for method, name := range shippingMethodNames {
		if name == s {
			return method, nil
		}
	}
	return UnknownShippingMethod, errs.NewValueIsInvalidErrorWithCause(
		"shipping method is invalid",
		fmt.Errorf("%q is not a valid shipping method", s),
	)
}

func (m ShippingMethod) Validate() error {
	if _, ok := shippingMethodNames[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipping method is invalid",
			fmt.Errorf("%d is not a valid shipping method", m),
		)
	}
	return nil
}

func (m ShippingMethod) String() string {
	if name, ok := shippingMethodNames[m]; ok {
		return name
	}
	return "unknown"
}
