// Package services contains stateless domain services that coordinate
// business rules across entities without performing I/O.
package services

import (
	"errors"
	"sort"

	"pickuphub/internal/core/domain/model/position"
)

// ErrNoFreePosition is returned when no unoccupied storage slot is available
// for suggestion.
var ErrNoFreePosition = errors.New("no free position available")

// PositionSelector is a domain service responsible for suggesting the
// storage slot a volume should be shelved into.
//
// Business rules:
//   - Only unoccupied slots are eligible
//   - Slots are ranked lexicographically by (street, module, level, box)
//   - The ranking is deterministic so that repeated suggestions over the
//     same warehouse state agree, which keeps allocation reproducible
//
// The repository's SuggestAvailable query must order by the same four-tuple;
// this service is the storage-independent statement of that contract.
type PositionSelector struct{}

// NewPositionSelector creates a new PositionSelector instance.
func NewPositionSelector() PositionSelector {
	return PositionSelector{}
}

// Suggest returns the first free position in lexicographic
// (street, module, level, box) order, or ErrNoFreePosition when every slot
// is occupied or the input is empty.
func (s PositionSelector) Suggest(positions []*position.Position) (*position.Position, error) {
	free := make([]*position.Position, 0, len(positions))
	for _, p := range positions {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if !p.Occupied() {
			free = append(free, p)
		}
	}

	if len(free) == 0 {
		return nil, ErrNoFreePosition
	}

	sort.Slice(free, func(i, j int) bool {
		return lessByAddress(free[i], free[j])
	})

	return free[0], nil
}

func lessByAddress(a, b *position.Position) bool {
	if a.Street() != b.Street() {
		return a.Street() < b.Street()
	}
	if a.Module() != b.Module() {
		return a.Module() < b.Module()
	}
	if a.Level() != b.Level() {
		return a.Level() < b.Level()
	}
	return a.Box() < b.Box()
}
