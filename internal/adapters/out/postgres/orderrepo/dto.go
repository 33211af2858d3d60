// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Child volumes and audit events live in their own tables and are loaded
// together with the order row; the aggregate never exists partially in
// memory.
type OrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code              string    `gorm:"uniqueIndex"`
	Channel           int
	Status            int `gorm:"index"`
	RecipientName     string
	RecipientDocument string
	RecipientPhone    string `gorm:"index"`
	ExternalID        string
	TenantID          *int64
	CreatedAt         time.Time `gorm:"index"`
	ReadyAt           *time.Time
	PickedUpAt        *time.Time

	Volumes []VolumeDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Events  []EventDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// VolumeDTO represents the database structure for a single volume. The
// position reference is unique: a slot holds at most one volume at a time.
type VolumeDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Label      string    `gorm:"uniqueIndex"`
	Weight     *float64  `gorm:"type:numeric(10,2)"`
	Dimensions string
	Status     int
	PositionID *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
}

// TableName specifies the database table name for volume entities.
func (VolumeDTO) TableName() string {
	return "volumes"
}

// EventDTO represents the database structure for an audit event. Events are
// append-only; rows are never updated or deleted.
type EventDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	EventType int
	Payload   string
	Actor     string
	CreatedAt time.Time
}

// TableName specifies the database table name for audit events.
func (EventDTO) TableName() string {
	return "order_events"
}

// fromDomain converts an order domain aggregate to its database
// representation, including child volumes and events.
func fromDomain(aggregate *order.Order) OrderDTO {
	volumes := make([]VolumeDTO, 0, len(aggregate.Volumes()))
	for _, v := range aggregate.Volumes() {
		volumes = append(volumes, volumeFromDomain(v))
	}

	events := make([]EventDTO, 0, len(aggregate.Events()))
	for _, e := range aggregate.Events() {
		events = append(events, eventFromDomain(e))
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		Code:              aggregate.Code(),
		Channel:           int(aggregate.Channel()),
		Status:            int(aggregate.Status()),
		RecipientName:     aggregate.Recipient().Name(),
		RecipientDocument: aggregate.Recipient().Document(),
		RecipientPhone:    aggregate.Recipient().Phone(),
		ExternalID:        aggregate.ExternalID(),
		TenantID:          aggregate.TenantID(),
		CreatedAt:         aggregate.CreatedAt(),
		ReadyAt:           aggregate.ReadyAt(),
		PickedUpAt:        aggregate.PickedUpAt(),
		Volumes:           volumes,
		Events:            events,
	}
}

func volumeFromDomain(v *order.Volume) VolumeDTO {
	var positionID *uuid.UUID
	if id := v.PositionID(); id != nil {
		raw := id.Bytes()
		positionID = &raw
	}

	return VolumeDTO{
		ID:         v.ID().Bytes(),
		OrderID:    v.OrderID().Bytes(),
		Label:      v.Label(),
		Weight:     v.Weight(),
		Dimensions: v.Dimensions(),
		Status:     int(v.Status()),
		PositionID: positionID,
	}
}

func eventFromDomain(e *order.Event) EventDTO {
	return EventDTO{
		ID:        e.ID().Bytes(),
		OrderID:   e.OrderID().Bytes(),
		EventType: int(e.Type()),
		Payload:   e.Payload(),
		Actor:     e.Actor(),
		CreatedAt: e.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including volumes and events using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	recipient, err := order.NewRecipient(dto.RecipientName, dto.RecipientDocument, dto.RecipientPhone)
	if err != nil {
		return nil, err
	}

	volumes := make([]*order.Volume, 0, len(dto.Volumes))
	for _, v := range dto.Volumes {
		volume, volErr := volumeToDomain(v)
		if volErr != nil {
			return nil, volErr
		}
		volumes = append(volumes, volume)
	}

	events := make([]*order.Event, 0, len(dto.Events))
	for _, e := range dto.Events {
		event, evtErr := eventToDomain(e)
		if evtErr != nil {
			return nil, evtErr
		}
		events = append(events, event)
	}

	return order.RestoreOrder(
		id,
		dto.Code,
		order.Channel(dto.Channel),
		recipient,
		dto.ExternalID,
		dto.TenantID,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.ReadyAt,
		dto.PickedUpAt,
		volumes,
		events,
	)
}

func volumeToDomain(dto VolumeDTO) (*order.Volume, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var positionID *kernel.UUID
	if dto.PositionID != nil {
		pID, posErr := kernel.UUIDFromBytes((*dto.PositionID)[:])
		if posErr != nil {
			return nil, posErr
		}
		positionID = &pID
	}

	return order.RestoreVolume(
		id,
		orderID,
		dto.Label,
		dto.Weight,
		dto.Dimensions,
		order.VolumeStatus(dto.Status),
		positionID,
	)
}

func eventToDomain(dto EventDTO) (*order.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreEvent(
		id,
		orderID,
		order.EventType(dto.EventType),
		dto.Actor,
		dto.Payload,
		dto.CreatedAt,
	)
}
