// Package position implements the storage slot entity of the warehouse.
//
// A Position is a discrete slot addressed by a four-part code
// (street, module, level, box). A slot holds at most one volume at a time;
// occupancy is a flag maintained by the allocation operation, not a
// back-reference. The four-part tuple is unique across the warehouse.
package position

import (
	"errors"
	"fmt"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/pkg/errs"
)

// ErrPositionIsNotConstructed is returned when a Position instance was not
// created through NewPosition or RestorePosition.
var ErrPositionIsNotConstructed = errors.New("Position must be created via NewPosition constructor")

// Position represents a discrete storage slot in the warehouse.
//
// Position follows these invariants:
//   - All four address parts must be non-blank
//   - The (street, module, level, box) tuple is unique (enforced by storage)
//   - Occupied is true exactly while some volume references this position;
//     the allocation operation keeps both sides consistent
type Position struct {
	// id is the unique identifier for the position
	id kernel.UUID

	// street is the warehouse aisle identifier
	street string

	// module is the shelf unit within the street
	module string

	// level is the shelf level within the module
	level string

	// box is the slot within the level
	box string

	// occupied is true while a volume is stored in this slot
	occupied bool

	// guard ensures the entity was properly initialized
	guard kernel.ConstructorGuard
}

// NewPosition creates a free storage slot at the given four-part address.
// All four parts are required.
func NewPosition(id kernel.UUID, street, module, level, box string) (*Position, error) {
	p := &Position{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setPart(&p.street, street, "street"),
		p.setPart(&p.module, module, "module"),
		p.setPart(&p.level, level, "level"),
		p.setPart(&p.box, box, "box"),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePosition reconstructs a Position from persistent storage, including
// its occupancy flag.
func RestorePosition(id kernel.UUID, street, module, level, box string, occupied bool) (*Position, error) {
	p, err := NewPosition(id, street, module, level, box)
	if err != nil {
		return nil, err
	}

	p.occupied = occupied
	return p, nil
}

// Validate ensures the Position instance was properly constructed.
func (p *Position) Validate() error {
	if p == nil {
		return ErrPositionIsNotConstructed
	}
	return p.guard.Validate(ErrPositionIsNotConstructed)
}

// IsEqual compares two positions by their unique identifiers.
func (p *Position) IsEqual(other *Position) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the position's unique identifier.
func (p *Position) ID() kernel.UUID {
	return p.id
}

// Street returns the warehouse aisle identifier.
func (p *Position) Street() string {
	return p.street
}

// Module returns the shelf unit within the street.
func (p *Position) Module() string {
	return p.module
}

// Level returns the shelf level within the module.
func (p *Position) Level() string {
	return p.level
}

// Box returns the slot within the level.
func (p *Position) Box() string {
	return p.box
}

// Occupied reports whether a volume is currently stored in this slot.
func (p *Position) Occupied() bool {
	return p.occupied
}

// Code returns the four-part slot address joined with dashes,
// e.g. "A-1-2-3".
func (p *Position) Code() string {
	return fmt.Sprintf("%s-%s-%s-%s", p.street, p.module, p.level, p.box)
}

// MarkOccupied flags the slot as holding a volume. Idempotent.
func (p *Position) MarkOccupied() {
	p.occupied = true
}

// Release flags the slot as free. Idempotent.
func (p *Position) Release() {
	p.occupied = false
}

func (p *Position) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Position) setPart(dst *string, value, name string) error {
	if value == "" {
		return errs.NewValueIsRequiredError("position " + name)
	}
	*dst = value
	return nil
}
