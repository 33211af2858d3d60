package order

import (
	"fmt"

	"pickuphub/internal/pkg/errs"
)

// VolumeStatus represents the lifecycle state of a single parcel unit.
//
// State transitions:
//
//	Received ──> Allocated ──> Ready ──> PickedUp
//
// A volume is Allocated exactly while it references a storage position.
// Order-level transitions promote volumes in bulk: marking the order Ready
// promotes Allocated volumes to Ready, confirming pickup forces every volume
// to PickedUp regardless of its prior state.
type VolumeStatus int

const (
	// VolumeStatusUnknown represents an invalid or undefined status.
	VolumeStatusUnknown VolumeStatus = iota

	// VolumeStatusReceived is the initial status assigned at intake.
	VolumeStatusReceived

	// VolumeStatusAllocated indicates the volume occupies a storage position.
	VolumeStatusAllocated

	// VolumeStatusReady indicates the volume is staged for pickup.
	VolumeStatusReady

	// VolumeStatusPickedUp indicates the volume left the warehouse.
	VolumeStatusPickedUp
)

func getVolumeStatusStrings() map[VolumeStatus]string {
	return map[VolumeStatus]string{
		VolumeStatusUnknown:   "Unknown",
		VolumeStatusReceived:  "Received",
		VolumeStatusAllocated: "Allocated",
		VolumeStatusReady:     "Ready",
		VolumeStatusPickedUp:  "PickedUp",
	}
}

func getValidVolumeStatusStrings() map[VolumeStatus]string {
	//nolint:exhaustive // VolumeStatusUnknown is intentionally excluded as it's invalid
	return map[VolumeStatus]string{
		VolumeStatusReceived:  "Received",
		VolumeStatusAllocated: "Allocated",
		VolumeStatusReady:     "Ready",
		VolumeStatusPickedUp:  "PickedUp",
	}
}

// Validate checks if the VolumeStatus value is valid.
func (s VolumeStatus) Validate() error {
	if _, ok := getValidVolumeStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"volume status is invalid",
			fmt.Errorf("%d is not a valid volume status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the volume status.
func (s VolumeStatus) String() string {
	if str, ok := getVolumeStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
