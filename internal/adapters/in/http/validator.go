package http

import (
	"backoffice/internal/generated/servers"
	"backoffice/internal/pkg/errs"

	validatorv10 "github.com/go-playground/validator/v10"
)

// RequestValidator plugs go-playground/validator into echo's Context.Validate.
type RequestValidator struct {
	validate *validatorv10.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validatorv10.New()
	v.RegisterStructValidation(newOrderStructValidation, servers.NewOrder{})
	return &RequestValidator{validate: v}
}

func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return nil
}

// newOrderStructValidation requires an address on shipping orders.
func newOrderStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(servers.NewOrder)
	if req.ShippingMethod == servers.Shipping && req.Address == nil {
		sl.ReportError(req.Address, "address", "Address", "required_for_shipping", "")
	}
}
