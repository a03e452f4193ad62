package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.OrderStatusPolicy
}

func NewGetOrderQueryHandler(db *gorm.DB, policy services.OrderStatusPolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: policy}
}

// Handle reads the order row and its log, then asks the transition policy for
// the options offered to the actor. Buyers only see their own orders; any
// other order is reported as not found.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, err := h.readOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	actor := query.Actor()
	if actor.Role.IsBuyerClass() && (actor.ID == nil || !actor.ID.IsEqual(resp.UserID)) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	if resp.Logs, err = h.readLogs(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.AvailableTransitions = h.policy.NextStatuses(resp.Status, resp.ShippingMethod, actor.Role)
	return resp, nil
}

type itemJSON struct {
	ProductID string `json:"productId"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Unit      string `json:"unit"`
}

type addressJSON struct {
	Street          string   `json:"street"`
	City            string   `json:"city"`
	Province        string   `json:"province"`
	PostalCode      string   `json:"postalCode"`
	Phone           string   `json:"phone"`
	AdditionalNotes string   `json:"additionalNotes"`
	Label           string   `json:"label"`
	Lat             *float64 `json:"lat"`
	Lon             *float64 `json:"lon"`
}

func (h GetOrderQueryHandler) readOrder(ctx context.Context, orderID kernel.UUID) (GetOrderQueryResponse, error) {
	var (
		resp           GetOrderQueryResponse
		id, userID     uuid.UUID
		status, method string
		items, address []byte
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			status,
			shipping_method,
			total_amount,
			items,
			address,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(
		&id,
		&userID,
		&status,
		&method,
		&resp.TotalAmount,
		&items,
		&address,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Status, err = order.ParseStatus(status); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.ShippingMethod, err = order.ParseShippingMethod(method); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var itemRows []itemJSON
	if err = json.Unmarshal(items, &itemRows); err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = make([]OrderItemView, 0, len(itemRows))
	for _, it := range itemRows {
		resp.Items = append(resp.Items, OrderItemView(it))
	}
	resp.ItemCount = len(resp.Items)

	if len(address) > 0 && string(address) != "null" {
		var a addressJSON
		if err = json.Unmarshal(address, &a); err != nil {
			return GetOrderQueryResponse{}, err
		}
		view := AddressView(a)
		resp.Address = &view
	}

	return resp, nil
}

func (h GetOrderQueryHandler) readLogs(ctx context.Context, orderID kernel.UUID) ([]OrderLogView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			"timestamp",
			note,
			"by"
		FROM order_logs
		WHERE order_id = ?
		ORDER BY seq
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]OrderLogView, 0)
	for rows.Next() {
		var (
			entry  OrderLogView
			status string
			by     *uuid.UUID
		)

		if err = rows.Scan(&status, &entry.Timestamp, &entry.Note, &by); err != nil {
			return nil, err
		}

		if entry.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		if by != nil {
			actorID, idErr := kernel.UUIDFromBytes(by[:])
			if idErr != nil {
				return nil, idErr
			}
			entry.By = &actorID
		}

		logs = append(logs, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}
