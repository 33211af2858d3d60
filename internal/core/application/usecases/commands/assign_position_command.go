package commands

import (
	"errors"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/pkg/guard"
)

var ErrAssignPositionCommandIsNotConstructed = errors.New(
	"AssignPositionCommand must be created via NewAssignPositionCommand constructor",
)

// AssignPositionCommand binds a volume to a storage slot, or clears the
// binding when PositionID is nil.
type AssignPositionCommand struct { //nolint:recvcheck //using for validation
	volumeID   kernel.UUID
	positionID *kernel.UUID
	actor      string

	guard guard.ConstructorGuard
}

// NewAssignPositionCommand creates a command to shelve or unshelve a volume.
// A nil positionID clears the volume's current slot.
func NewAssignPositionCommand(volumeID kernel.UUID, positionID *kernel.UUID, actor string) (AssignPositionCommand, error) {
	cmd := AssignPositionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVolumeID(volumeID),
		cmd.setPositionID(positionID),
		cmd.setActor(actor),
	); err != nil {
		return AssignPositionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignPositionCommand) Validate() error {
	return c.guard.Validate(ErrAssignPositionCommandIsNotConstructed)
}

// VolumeID returns the volume being shelved.
func (c AssignPositionCommand) VolumeID() kernel.UUID {
	return c.volumeID
}

// PositionID returns the target slot, or nil when the binding is cleared.
func (c AssignPositionCommand) PositionID() *kernel.UUID {
	return c.positionID
}

// Actor returns the identity attributed to the allocation.
func (c AssignPositionCommand) Actor() string {
	return c.actor
}

func (c *AssignPositionCommand) setVolumeID(volumeID kernel.UUID) error {
	if err := volumeID.Validate(); err != nil {
		return err
	}
	c.volumeID = volumeID
	return nil
}

func (c *AssignPositionCommand) setPositionID(positionID *kernel.UUID) error {
	if positionID == nil {
		return nil
	}
	if err := positionID.Validate(); err != nil {
		return err
	}
	c.positionID = positionID
	return nil
}

func (c *AssignPositionCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
