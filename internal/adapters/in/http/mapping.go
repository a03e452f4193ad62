package http

import (
	"errors"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/model/user"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/generated/servers"
	"backoffice/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func invalidBody(err error) error {
	return errs.NewValueIsInvalidErrorWithCause("request body", err)
}

func optionalID(id *openapi_types.UUID) (kernel.UUID, error) {
	if id == nil {
		return kernel.NewUUID(), nil
	}
	return kernel.UUIDFromBytes(id[:])
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func newCreateOrderCommand(body servers.NewOrder, actor user.Actor) (commands.CreateOrderCommand, error) {
	orderID, err := optionalID(body.Id)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	userID, err := kernel.UUIDFromBytes(body.UserId[:])
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	method, err := order.ParseShippingMethod(string(body.ShippingMethod))
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	var errList []error
	items := make([]order.Item, 0, len(body.Items))
	for _, it := range body.Items {
		item, itemErr := order.NewItem(it.ProductId, deref(it.Sku), it.Name, it.Price, it.Quantity, deref(it.Unit))
		if itemErr != nil {
			errList = append(errList, itemErr)
			continue
		}
		items = append(items, item)
	}
	if err = errors.Join(errList...); err != nil {
		return commands.CreateOrderCommand{}, err
	}

	var address *order.Address
	if a := body.Address; a != nil {
		address = &order.Address{
			Street:          a.Street,
			City:            a.City,
			Province:        deref(a.Province),
			PostalCode:      deref(a.PostalCode),
			Phone:           a.Phone,
			AdditionalNotes: deref(a.AdditionalNotes),
			Label:           deref(a.Label),
			Lat:             a.Lat,
			Lon:             a.Lon,
		}
	}

	return commands.NewCreateOrderCommand(orderID, userID, items, method, address, actor)
}

func newCreateUserCommand(body servers.NewUser, actor user.Actor) (commands.CreateUserCommand, error) {
	userID, err := optionalID(body.Id)
	if err != nil {
		return commands.CreateUserCommand{}, err
	}

	var email string
	if body.Email != nil {
		email = string(*body.Email)
	}

	return commands.NewCreateUserCommand(userID, body.Username, user.Role(body.Role), deref(body.Name), email, actor)
}

func toOrderPage(page queries.GetOrdersQueryResponse) servers.OrderPage {
	orders := make([]servers.OrderSummary, 0, len(page.Orders))
	for _, o := range page.Orders {
		orders = append(orders, toOrderSummary(o))
	}
	return servers.OrderPage{
		Orders: orders,
		Total:  page.Total,
		Limit:  page.Limit,
		Skip:   page.Skip,
	}
}

func toOrderSummary(o queries.OrderSummary) servers.OrderSummary {
	return servers.OrderSummary{
		Id:             o.ID.Bytes(),
		UserId:         o.UserID.Bytes(),
		Status:         servers.OrderStatus(o.Status.String()),
		StatusLabel:    o.Status.Label(),
		BadgeVariant:   o.Status.BadgeVariant(),
		ShippingMethod: servers.ShippingMethod(o.ShippingMethod.String()),
		TotalAmount:    o.TotalAmount,
		ItemCount:      o.ItemCount,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func toTransitions(options []services.StatusTransitionOption) []servers.StatusTransitionOption {
	out := make([]servers.StatusTransitionOption, 0, len(options))
	for _, o := range options {
		out = append(out, servers.StatusTransitionOption{
			Status:               servers.OrderStatus(o.Status.String()),
			Label:                o.Label,
			Severity:             servers.Severity(o.Severity.String()),
			RequiresConfirmation: o.RequiresConfirmation(),
		})
	}
	return out
}

func uuidPtr(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	v := id.Bytes()
	return &v
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func viewToOrderDetails(d queries.GetOrderQueryResponse) servers.OrderDetails {
	summary := toOrderSummary(d.OrderSummary)

	items := make([]servers.Item, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, servers.Item{
			ProductId: it.ProductID,
			Sku:       strPtr(it.SKU),
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Unit:      strPtr(it.Unit),
		})
	}

	var address *servers.Address
	if a := d.Address; a != nil {
		address = &servers.Address{
			Street:          a.Street,
			City:            a.City,
			Province:        strPtr(a.Province),
			PostalCode:      strPtr(a.PostalCode),
			Phone:           a.Phone,
			AdditionalNotes: strPtr(a.AdditionalNotes),
			Label:           strPtr(a.Label),
			Lat:             a.Lat,
			Lon:             a.Lon,
		}
	}

	logs := make([]servers.OrderLog, 0, len(d.Logs))
	for _, l := range d.Logs {
		logs = append(logs, servers.OrderLog{
			Status:    servers.OrderStatus(l.Status.String()),
			Timestamp: l.Timestamp,
			Note:      l.Note,
			By:        uuidPtr(l.By),
		})
	}

	return servers.OrderDetails{
		Id:                   summary.Id,
		UserId:               summary.UserId,
		Status:               summary.Status,
		StatusLabel:          summary.StatusLabel,
		BadgeVariant:         summary.BadgeVariant,
		ShippingMethod:       summary.ShippingMethod,
		TotalAmount:          summary.TotalAmount,
		ItemCount:            summary.ItemCount,
		CreatedAt:            summary.CreatedAt,
		UpdatedAt:            summary.UpdatedAt,
		Items:                items,
		Address:              address,
		Logs:                 logs,
		AvailableTransitions: toTransitions(d.AvailableTransitions),
	}
}

// toOrderDetails renders an aggregate returned by a command through the same
// path as the read model.
func toOrderDetails(o *order.Order, transitions []services.StatusTransitionOption) servers.OrderDetails {
	view := queries.GetOrderQueryResponse{
		OrderSummary: queries.OrderSummary{
			ID:             o.ID(),
			UserID:         o.UserID(),
			Status:         o.Status(),
			ShippingMethod: o.ShippingMethod(),
			TotalAmount:    o.TotalAmount(),
			ItemCount:      len(o.Items()),
			CreatedAt:      o.CreatedAt(),
			UpdatedAt:      o.UpdatedAt(),
		},
		AvailableTransitions: transitions,
	}

	for _, it := range o.Items() {
		view.Items = append(view.Items, queries.OrderItemView{
			ProductID: it.ProductID(),
			SKU:       it.SKU(),
			Name:      it.Name(),
			Price:     it.Price(),
			Quantity:  it.Quantity(),
			Unit:      it.Unit(),
		})
	}

	if a := o.ShippingAddress(); a != nil {
		address := queries.AddressView(*a)
		view.Address = &address
	}

	for _, l := range o.Logs() {
		view.Logs = append(view.Logs, queries.OrderLogView{
			Status:    l.Status(),
			Timestamp: l.Timestamp(),
			Note:      l.Note(),
			By:        l.By(),
		})
	}

	return viewToOrderDetails(view)
}

func viewToUser(v queries.UserView) servers.User {
	selectable := make([]servers.UserRole, 0, len(v.SelectableRoles))
	for _, r := range v.SelectableRoles {
		selectable = append(selectable, servers.UserRole(r))
	}
	return servers.User{
		Id:              v.ID.Bytes(),
		Username:        v.Username,
		Role:            servers.UserRole(v.Role),
		Name:            v.Name,
		Email:           v.Email,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
		CanEdit:         v.CanEdit,
		CanDelete:       v.CanDelete,
		SelectableRoles: selectable,
	}
}
