package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/core/domain/model/order"
	"pickuphub/internal/pkg/errs"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Child rows carry random UUID keys, so preloads need an explicit order to
// reload the aggregate deterministically: volumes by label, the audit trail
// by creation time.
func volumeOrder(db *gorm.DB) *gorm.DB {
	return db.Order("label")
}

func eventOrder(db *gorm.DB) *gorm.DB {
	return db.Order("created_at, id")
}

// Add saves a new order to the database, including its volumes and events.
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

// Update saves an existing order to the database. Volumes are upserted and
// pruned to the aggregate's current set; events are append-only, existing
// rows are never touched.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	tx := r.db.WithContext(ctx)

	result := tx.Omit(clause.Associations).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if len(dto.Volumes) > 0 {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto.Volumes).Error; err != nil {
			return err
		}
		volumeIDs := make([]any, 0, len(dto.Volumes))
		for _, v := range dto.Volumes {
			volumeIDs = append(volumeIDs, v.ID)
		}
		if err := tx.Where("order_id = ? AND id NOT IN ?", dto.ID, volumeIDs).Delete(&VolumeDTO{}).Error; err != nil {
			return err
		}
	} else {
		if err := tx.Where("order_id = ?", dto.ID).Delete(&VolumeDTO{}).Error; err != nil {
			return err
		}
	}

	if len(dto.Events) > 0 {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.Events).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its volumes and events.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Volumes", volumeOrder).
		Preload("Events", eventOrder).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves an order by its public tracking code.
func (r *GormOrderRepository) GetByCode(ctx context.Context, code string) (*order.Order, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Volumes", volumeOrder).
		Preload("Events", eventOrder).
		First(&dto, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("code", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByVolumeID retrieves the order aggregate owning the given volume.
// Volumes are never loaded on their own; the aggregate is the unit of
// consistency.
func (r *GormOrderRepository) GetByVolumeID(ctx context.Context, volumeID kernel.UUID) (*order.Order, error) {
	if err := volumeID.Validate(); err != nil {
		return nil, err
	}

	var volumeDTO VolumeDTO
	err := r.db.WithContext(ctx).First(&volumeDTO, "id = ?", volumeID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("volumeId", volumeID.String())
		}
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(volumeDTO.OrderID[:])
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, orderID)
}
