package commands_test

import (
	"testing"

	"pickuphub/internal/core/application/usecases/commands"
	"pickuphub/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignPositionCommand_ValidInput(t *testing.T) {
	volumeID := kernel.NewUUID()
	positionID := kernel.NewUUID()
	cmd, err := commands.NewAssignPositionCommand(volumeID, &positionID, "operator:ana")
	require.NoError(t, err)
	assert.Equal(t, volumeID, cmd.VolumeID())
	require.NotNil(t, cmd.PositionID())
	assert.Equal(t, positionID, *cmd.PositionID())
	assert.Equal(t, "operator:ana", cmd.Actor())
}

func TestNewAssignPositionCommand_NilPositionMeansClear(t *testing.T) {
	cmd, err := commands.NewAssignPositionCommand(kernel.NewUUID(), nil, "operator:ana")
	require.NoError(t, err)
	assert.Nil(t, cmd.PositionID())
}

func TestNewAssignPositionCommand_InvalidVolumeID(t *testing.T) {
	_, err := commands.NewAssignPositionCommand(kernel.UUID{}, nil, "operator:ana")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewAssignPositionCommand_InvalidPositionID(t *testing.T) {
	invalid := kernel.UUID{}
	_, err := commands.NewAssignPositionCommand(kernel.NewUUID(), &invalid, "operator:ana")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewAssignPositionCommand_MissingActor(t *testing.T) {
	_, err := commands.NewAssignPositionCommand(kernel.NewUUID(), nil, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrActorIsRequired)
}

func TestAssignPositionCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.AssignPositionCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrAssignPositionCommandIsNotConstructed)
}
