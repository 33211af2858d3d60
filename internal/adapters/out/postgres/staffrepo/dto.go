// Package staffrepo provides data transfer objects and mapping functions
// for staff account persistence.
package staffrepo

import (
	"time"

	"github.com/google/uuid"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/core/domain/model/staff"
)

// StaffDTO represents the database structure for persisting staff accounts.
type StaffDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         int
	Active       bool
	CreatedAt    time.Time
}

// TableName specifies the database table name for staff entities.
func (StaffDTO) TableName() string {
	return "staff"
}

// fromDomain converts a staff entity to its database representation.
func fromDomain(aggregate *staff.Staff) StaffDTO {
	return StaffDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         int(aggregate.Role()),
		Active:       aggregate.Active(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a staff entity using RestoreStaff.
func toDomain(dto StaffDTO) (*staff.Staff, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return staff.RestoreStaff(id, dto.Name, dto.Email, dto.PasswordHash, staff.Role(dto.Role), dto.Active, dto.CreatedAt)
}
