package order

import (
	"errors"
	"fmt"

	"backoffice/internal/pkg/errs"
)

// Item is a purchased line of an order. Prices are whole currency units (IDR).
type Item struct {
	productID string
	sku       string
	name      string
	price     int64
	quantity  int
	unit      string
}

// NewItem validates and creates an order line.
func NewItem(productID, sku, name string, price int64, quantity int, unit string) (Item, error) {
	var errList []error
	if name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("item name"))
	}
	if price < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("item price", fmt.Errorf("%d is negative", price)))
	}
	if quantity <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("item quantity", fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if err := errors.Join(errList...); err != nil {
		return Item{}, err
	}

	return Item{
		productID: productID,
		sku:       sku,
		name:      name,
		price:     price,
		quantity:  quantity,
		unit:      unit,
	}, nil
}

func (i Item) ProductID() string { return i.productID }
func (i Item) SKU() string       { return i.sku }
func (i Item) Name() string      { return i.name }
func (i Item) Price() int64      { return i.price }
func (i Item) Quantity() int     { return i.quantity }
func (i Item) Unit() string      { return i.unit }

// TotalPrice is price multiplied by quantity.
func (i Item) TotalPrice() int64 {
	return i.price * int64(i.quantity)
}

// Address is the delivery destination of a shipping order.
type Address struct {
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

// Validate checks the fields a courier needs to reach the buyer.
func (a Address) Validate() error {
	var errList []error
	if a.Street == "" {
		errList = append(errList, errs.NewValueIsRequiredError("address street"))
	}
	if a.City == "" {
		errList = append(errList, errs.NewValueIsRequiredError("address city"))
	}
	if a.Phone == "" {
		errList = append(errList, errs.NewValueIsRequiredError("address phone"))
	}
	return errors.Join(errList...)
}
