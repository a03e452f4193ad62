package queries

import (
	"context"
	"strings"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns a page of orders sorted by creation time, newest first.
// Ties are broken by id so that paging is stable.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	filter := query.Filter()
	where, args := ordersWhere(filter)

	var total int64
	if err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM orders`+where, args...).Scan(&total).Error; err != nil {
		return GetOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			status,
			shipping_method,
			total_amount,
			jsonb_array_length(items),
			created_at,
			updated_at
		FROM orders`+where+`
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, append(args, filter.Limit, filter.Skip)...).Rows()
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderSummary, 0)
	for rows.Next() {
		var (
			summary        OrderSummary
			id, userID     uuid.UUID
			status, method string
		)

		err = rows.Scan(
			&id,
			&userID,
			&status,
			&method,
			&summary.TotalAmount,
			&summary.ItemCount,
			&summary.CreatedAt,
			&summary.UpdatedAt,
		)
		if err != nil {
			return GetOrdersQueryResponse{}, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetOrdersQueryResponse{}, err
		}
		if summary.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return GetOrdersQueryResponse{}, err
		}
		if summary.Status, err = order.ParseStatus(status); err != nil {
			return GetOrdersQueryResponse{}, err
		}
		if summary.ShippingMethod, err = order.ParseShippingMethod(method); err != nil {
			return GetOrdersQueryResponse{}, err
		}

		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	return GetOrdersQueryResponse{
		Orders: orders,
		Total:  total,
		Limit:  filter.Limit,
		Skip:   filter.Skip,
	}, nil
}

func ordersWhere(filter OrdersFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	if filter.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status.String())
	}
	if filter.UserID != nil {
		conditions = append(conditions, "user_id = ?")
		args = append(args, filter.UserID.Bytes())
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}
