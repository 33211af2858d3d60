package order

import (
	"errors"
	"math"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/pkg/errs"
)

// ErrVolumeIsNotConstructed is returned when a Volume instance was not
// created through NewVolume or RestoreVolume.
var ErrVolumeIsNotConstructed = errors.New("Volume must be created via NewVolume constructor")

// maxWeightKg caps the parcel weight at what the numeric(10,2) column holds.
const maxWeightKg = 99999999.99

// Volume is a physical parcel unit belonging to exactly one Order. It is a
// child entity of the Order aggregate: it is attached through
// Order.AddVolume and mutated only through aggregate operations.
//
// Invariant: the status is Allocated if and only if the volume references a
// storage position. The aggregate maintains both sides of that invariant
// when a position is assigned or cleared.
type Volume struct {
	// id is the unique identifier for the volume
	id kernel.UUID

	// orderID is the owning order, set when the volume is attached
	orderID kernel.UUID

	// label is the unique human-readable sticker on the parcel
	label string

	// weight in kilograms with two fraction digits, nil when not weighed
	weight *float64

	// dimensions is a free-text description, may be empty
	dimensions string

	// status is the current state in the volume lifecycle
	status VolumeStatus

	// positionID references the occupied storage position, nil when unshelved
	positionID *kernel.UUID

	// isConstructed ensures the volume was created via a constructor
	isConstructed bool
}

// NewVolume creates a transient Volume awaiting attachment to an order.
//
// The label must be non-blank; callers that accept unlabeled parcels generate
// one with GenerateLabel before construction. Weight and dimensions are
// optional. The volume starts in Received status with no position.
func NewVolume(id kernel.UUID, label string, weight *float64, dimensions string) (*Volume, error) {
	volume := &Volume{
		status:        VolumeStatusReceived,
		isConstructed: true,
	}

	if err := errors.Join(
		volume.setID(id),
		volume.setLabel(label),
		volume.setWeight(weight),
	); err != nil {
		return nil, err
	}

	volume.dimensions = dimensions
	return volume, nil
}

// RestoreVolume reconstructs a Volume from persistent storage, including its
// owning order, lifecycle status, and position reference.
func RestoreVolume(
	id kernel.UUID,
	orderID kernel.UUID,
	label string,
	weight *float64,
	dimensions string,
	status VolumeStatus,
	positionID *kernel.UUID,
) (*Volume, error) {
	volume, err := NewVolume(id, label, weight, dimensions)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		orderID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if positionID != nil {
		if err = positionID.Validate(); err != nil {
			return nil, err
		}
	}

	volume.orderID = orderID
	volume.status = status
	volume.positionID = positionID
	return volume, nil
}

// Validate ensures the Volume instance was properly constructed.
func (v *Volume) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVolumeIsNotConstructed
	}
	return nil
}

// IsEqual compares two volumes by their unique identifiers.
func (v *Volume) IsEqual(other *Volume) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the volume's unique identifier.
func (v *Volume) ID() kernel.UUID {
	return v.id
}

// OrderID returns the owning order's identifier.
// The zero UUID means the volume has not been attached yet.
func (v *Volume) OrderID() kernel.UUID {
	return v.orderID
}

// Label returns the unique parcel label.
func (v *Volume) Label() string {
	return v.label
}

// Weight returns the parcel weight in kilograms, nil when not weighed.
func (v *Volume) Weight() *float64 {
	return v.weight
}

// Dimensions returns the free-text dimensions description.
func (v *Volume) Dimensions() string {
	return v.dimensions
}

// Status returns the current status of the volume.
func (v *Volume) Status() VolumeStatus {
	return v.status
}

// PositionID returns the referenced storage position's ID.
// Returns nil while the volume is not shelved.
func (v *Volume) PositionID() *kernel.UUID {
	return v.positionID
}

func (v *Volume) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Volume) setLabel(label string) error {
	if label == "" {
		return ErrLabelIsRequired
	}
	v.label = label
	return nil
}

// setWeight rounds to two fraction digits, the precision the scale reports
// and the storage column keeps.
func (v *Volume) setWeight(weight *float64) error {
	if weight == nil {
		return nil
	}
	if *weight < 0 || *weight > maxWeightKg {
		return errs.NewValueIsOutOfRangeError("weight", *weight, 0, maxWeightKg)
	}
	rounded := math.Round(*weight*100) / 100
	v.weight = &rounded
	return nil
}
