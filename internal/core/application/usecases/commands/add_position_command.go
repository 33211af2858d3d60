package commands

import (
	"errors"

	"pickuphub/internal/pkg/errs"
	"pickuphub/internal/pkg/guard"
)

var ErrAddPositionCommandIsNotConstructed = errors.New(
	"AddPositionCommand must be created via NewAddPositionCommand constructor",
)

// AddPositionCommand registers a new storage slot in the warehouse.
type AddPositionCommand struct { //nolint:recvcheck //using for validation
	street string
	module string
	level  string
	box    string

	guard guard.ConstructorGuard
}

// NewAddPositionCommand creates a command to register a storage slot. All
// four address parts are required.
func NewAddPositionCommand(street, module, level, box string) (AddPositionCommand, error) {
	cmd := AddPositionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPart(&cmd.street, street, "street"),
		cmd.setPart(&cmd.module, module, "module"),
		cmd.setPart(&cmd.level, level, "level"),
		cmd.setPart(&cmd.box, box, "box"),
	); err != nil {
		return AddPositionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPositionCommand) Validate() error {
	return c.guard.Validate(ErrAddPositionCommandIsNotConstructed)
}

// Street returns the warehouse aisle identifier.
func (c AddPositionCommand) Street() string {
	return c.street
}

// Module returns the shelf unit within the street.
func (c AddPositionCommand) Module() string {
	return c.module
}

// Level returns the shelf level within the module.
func (c AddPositionCommand) Level() string {
	return c.level
}

// Box returns the slot within the level.
func (c AddPositionCommand) Box() string {
	return c.box
}

func (c *AddPositionCommand) setPart(field *string, value, name string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*field = value
	return nil
}
