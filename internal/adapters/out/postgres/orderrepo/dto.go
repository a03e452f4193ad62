// Package orderrepo maps order aggregates to the orders and order_logs tables.
package orderrepo

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row of the orders table. Items and the address are stored as
// jsonb since they are only ever read together with the order.
type OrderDTO struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID     `gorm:"type:uuid;not null;index"`
	Status         string        `gorm:"type:varchar(32);not null;index"`
	ShippingMethod string        `gorm:"type:varchar(16);not null"`
	Items          []ItemDTO     `gorm:"type:jsonb;serializer:json;not null"`
	Address        *AddressDTO   `gorm:"type:jsonb;serializer:json"`
	TotalAmount    int64         `gorm:"not null"`
	CreatedAt      time.Time     `gorm:"not null;index"`
	UpdatedAt      time.Time     `gorm:"not null"`
	Logs           []OrderLogDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one element of the orders.items json array.
type ItemDTO struct {
	ProductID string `json:"productId"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Unit      string `json:"unit"`
}

// AddressDTO is the orders.address json object.
type AddressDTO struct {
	Street          string   `json:"street"`
	City            string   `json:"city"`
	Province        string   `json:"province,omitempty"`
	PostalCode      string   `json:"postalCode,omitempty"`
	Phone           string   `json:"phone"`
	AdditionalNotes string   `json:"additionalNotes,omitempty"`
	Label           string   `json:"label,omitempty"`
	Lat             *float64 `json:"lat,omitempty"`
	Lon             *float64 `json:"lon,omitempty"`
}

// OrderLogDTO is one status history line. Seq is the 1-based position in the
// history, so (order_id, seq) identifies an entry and two writers can never
// append the same position.
type OrderLogDTO struct {
	OrderID   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Seq       int        `gorm:"primaryKey;autoIncrement:false"`
	Status    string     `gorm:"type:varchar(32);not null"`
	Timestamp time.Time  `gorm:"not null"`
	Note      string     `gorm:"type:text;not null;default:''"`
	By        *uuid.UUID `gorm:"type:uuid"`
}

func (OrderLogDTO) TableName() string {
	return "order_logs"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ProductID: item.ProductID(),
			SKU:       item.SKU(),
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
			Unit:      item.Unit(),
		})
	}

	var address *AddressDTO
	if a := aggregate.ShippingAddress(); a != nil {
		address = &AddressDTO{
			Street:          a.Street,
			City:            a.City,
			Province:        a.Province,
			PostalCode:      a.PostalCode,
			Phone:           a.Phone,
			AdditionalNotes: a.AdditionalNotes,
			Label:           a.Label,
			Lat:             a.Lat,
			Lon:             a.Lon,
		}
	}

	return OrderDTO{
		ID:             orderID,
		UserID:         aggregate.UserID().Bytes(),
		Status:         aggregate.Status().String(),
		ShippingMethod: aggregate.ShippingMethod().String(),
		Items:          items,
		Address:        address,
		TotalAmount:    aggregate.TotalAmount(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		Logs:           logsFromDomain(orderID, aggregate.Logs()),
	}
}

func logsFromDomain(orderID uuid.UUID, entries []order.LogEntry) []OrderLogDTO {
	logs := make([]OrderLogDTO, 0, len(entries))
	for i, entry := range entries {
		var by *uuid.UUID
		if entry.By() != nil {
			raw := entry.By().Bytes()
			by = &raw
		}
		logs = append(logs, OrderLogDTO{
			OrderID:   orderID,
			Seq:       i + 1,
			Status:    entry.Status().String(),
			Timestamp: entry.Timestamp(),
			Note:      entry.Note(),
			By:        by,
		})
	}
	return logs
}

// toDomain rebuilds the aggregate through RestoreOrder, which re-checks that the
// stored history ends in the stored status. Logs must be sorted by Seq.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	method, err := order.ParseShippingMethod(dto.ShippingMethod)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(
			itemDTO.ProductID, itemDTO.SKU, itemDTO.Name, itemDTO.Price, itemDTO.Quantity, itemDTO.Unit,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var address *order.Address
	if dto.Address != nil {
		address = &order.Address{
			Street:          dto.Address.Street,
			City:            dto.Address.City,
			Province:        dto.Address.Province,
			PostalCode:      dto.Address.PostalCode,
			Phone:           dto.Address.Phone,
			AdditionalNotes: dto.Address.AdditionalNotes,
			Label:           dto.Address.Label,
			Lat:             dto.Address.Lat,
			Lon:             dto.Address.Lon,
		}
	}

	logs := make([]order.LogEntry, 0, len(dto.Logs))
	for _, logDTO := range dto.Logs {
		entry, logErr := logToDomain(logDTO)
		if logErr != nil {
			return nil, logErr
		}
		logs = append(logs, entry)
	}

	return order.RestoreOrder(id, userID, items, method, address, status, logs, dto.CreatedAt, dto.UpdatedAt)
}

func logToDomain(dto OrderLogDTO) (order.LogEntry, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return order.LogEntry{}, err
	}

	var by *kernel.UUID
	if dto.By != nil {
		byID, byErr := kernel.UUIDFromBytes((*dto.By)[:])
		if byErr != nil {
			return order.LogEntry{}, byErr
		}
		by = &byID
	}

	return order.NewLogEntry(status, dto.Timestamp, dto.Note, by)
}
