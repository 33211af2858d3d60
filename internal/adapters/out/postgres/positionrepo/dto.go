// Package positionrepo provides data transfer objects and mapping functions
// for storage slot persistence.
package positionrepo

import (
	"github.com/google/uuid"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/core/domain/model/position"
)

// PositionDTO represents the database structure for persisting storage
// slots. The four-part address is unique across the warehouse.
type PositionDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Street   string    `gorm:"uniqueIndex:idx_positions_address"`
	Module   string    `gorm:"uniqueIndex:idx_positions_address"`
	Level    string    `gorm:"uniqueIndex:idx_positions_address"`
	Box      string    `gorm:"uniqueIndex:idx_positions_address"`
	Occupied bool      `gorm:"index"`
}

// TableName specifies the database table name for position entities.
func (PositionDTO) TableName() string {
	return "positions"
}

// fromDomain converts a position entity to its database representation.
func fromDomain(aggregate *position.Position) PositionDTO {
	return PositionDTO{
		ID:       aggregate.ID().Bytes(),
		Street:   aggregate.Street(),
		Module:   aggregate.Module(),
		Level:    aggregate.Level(),
		Box:      aggregate.Box(),
		Occupied: aggregate.Occupied(),
	}
}

// toDomain converts a database DTO to a position entity using
// RestorePosition.
func toDomain(dto PositionDTO) (*position.Position, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return position.RestorePosition(id, dto.Street, dto.Module, dto.Level, dto.Box, dto.Occupied)
}
