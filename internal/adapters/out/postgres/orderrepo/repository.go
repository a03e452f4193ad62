package orderrepo

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errConcurrentChange = errors.New("order status was changed by another request")

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order row and its log rows.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the status columns and inserts the log entries that are not
// stored yet. Existing entries are left untouched.
//
// The status row is only written while it still holds the status of the last
// stored log entry, so a change committed by someone else since the order was
// loaded is reported as TransitionIsNotAllowedError instead of being overwritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	var stored int64
	if err := db.Model(&OrderLogDTO{}).Where("order_id = ?", dto.ID).Count(&stored).Error; err != nil {
		return err
	}
	if stored == 0 {
		return r.missingOrConcurrent(db, aggregate, "")
	}
	if int(stored) > len(dto.Logs) {
		return concurrentChange(dto.Logs[len(dto.Logs)-1].Status, dto.Status)
	}

	expected := dto.Logs[stored-1].Status
	result := db.Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected).
		Updates(map[string]any{
			"status":     dto.Status,
			"updated_at": dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.missingOrConcurrent(db, aggregate, expected)
	}

	if fresh := dto.Logs[stored:]; len(fresh) > 0 {
		if err := db.Create(&fresh).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return concurrentChange(expected, dto.Status)
			}
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) missingOrConcurrent(db *gorm.DB, aggregate *order.Order, expected string) error {
	var count int64
	if err := db.Model(&OrderDTO{}).Where("id = ?", aggregate.ID().Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	return concurrentChange(expected, aggregate.Status().String())
}

func concurrentChange(from, to string) error {
	return errs.NewTransitionIsNotAllowedErrorWithCause(from, to, "", errConcurrentChange)
}

// Get loads the order with its history in log order. Inside a transaction the
// order row stays locked until commit or rollback.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Logs", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
