package positionrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/core/domain/model/position"
	"pickuphub/internal/core/domain/services"
	"pickuphub/internal/pkg/errs"
)

// GormPositionRepository implements PositionRepository using GORM.
type GormPositionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPositionRepository creates a new GORM position repository.
func NewGormPositionRepository(db *gorm.DB, tracker aggregateTracker) *GormPositionRepository {
	return &GormPositionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new position to the database.
func (r *GormPositionRepository) Add(ctx context.Context, aggregate *position.Position) error {
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

// Update saves an existing position to the database.
func (r *GormPositionRepository) Update(ctx context.Context, aggregate *position.Position) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PositionDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a position by ID.
func (r *GormPositionRepository) Get(ctx context.Context, id kernel.UUID) (*position.Position, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PositionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("positionId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListAll retrieves every position in walking order: street, then module,
// then level, then box.
func (r *GormPositionRepository) ListAll(ctx context.Context) ([]*position.Position, error) {
	var dtos []PositionDTO
	err := r.db.WithContext(ctx).
		Order("street, module, level, box").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	positions := make([]*position.Position, 0, len(dtos))
	for _, dto := range dtos {
		p, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		positions = append(positions, p)
	}

	return positions, nil
}

// SuggestAvailable retrieves the first free position in walking order.
// Ranking is delegated to the PositionSelector domain service so the rule
// lives in one place.
func (r *GormPositionRepository) SuggestAvailable(ctx context.Context) (*position.Position, error) {
	var dtos []PositionDTO
	err := r.db.WithContext(ctx).
		Where("occupied = ?", false).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	positions := make([]*position.Position, 0, len(dtos))
	for _, dto := range dtos {
		p, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		positions = append(positions, p)
	}

	suggested, err := services.NewPositionSelector().Suggest(positions)
	if err != nil {
		if errors.Is(err, services.ErrNoFreePosition) {
			return nil, errs.NewObjectNotFoundError("position", "free")
		}
		return nil, err
	}

	return suggested, nil
}

// Occupy sets the occupied flag of the given position. Silently does
// nothing when the position does not exist.
func (r *GormPositionRepository) Occupy(ctx context.Context, id kernel.UUID) error {
	return r.setOccupied(ctx, id, true)
}

// Release clears the occupied flag of the given position. Silently does
// nothing when the position does not exist.
func (r *GormPositionRepository) Release(ctx context.Context, id kernel.UUID) error {
	return r.setOccupied(ctx, id, false)
}

func (r *GormPositionRepository) setOccupied(ctx context.Context, id kernel.UUID, occupied bool) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&PositionDTO{}).
		Where("id = ?", id.Bytes()).
		Update("occupied", occupied).Error
}
