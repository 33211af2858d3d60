package commands_test

import (
	"testing"

	"pickuphub/internal/core/application/usecases/commands"
	"pickuphub/internal/core/domain/model/order"
	"pickuphub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVolumeSpecs() []commands.VolumeSpec {
	weight := 2.5
	return []commands.VolumeSpec{{Weight: &weight, Dimensions: "30x20x15"}}
}

func TestNewRegisterOrderCommand_ValidInput(t *testing.T) {
	tenantID := int64(42)
	cmd, err := commands.NewRegisterOrderCommand(
		"PED-AB12CD34",
		order.ChannelManual,
		"Maria Souza", "123.456.789-00", "+55 11 98888-0000",
		"ext-777",
		&tenantID,
		validVolumeSpecs(),
		"operator:ana",
	)
	require.NoError(t, err)
	assert.Equal(t, "PED-AB12CD34", cmd.Code())
	assert.Equal(t, order.ChannelManual, cmd.Channel())
	assert.Equal(t, "Maria Souza", cmd.RecipientName())
	assert.Equal(t, "123.456.789-00", cmd.RecipientDocument())
	assert.Equal(t, "+55 11 98888-0000", cmd.RecipientPhone())
	assert.Equal(t, "ext-777", cmd.ExternalID())
	require.NotNil(t, cmd.TenantID())
	assert.Equal(t, int64(42), *cmd.TenantID())
	assert.Len(t, cmd.Volumes(), 1)
	assert.Equal(t, "operator:ana", cmd.Actor())
}

func TestNewRegisterOrderCommand_BlankCodeIsAllowed(t *testing.T) {
	cmd, err := commands.NewRegisterOrderCommand(
		"", order.ChannelManual,
		"Maria Souza", "123.456.789-00", "+55 11 98888-0000",
		"", nil, validVolumeSpecs(), "operator:ana",
	)
	require.NoError(t, err)
	assert.Empty(t, cmd.Code())
}

func TestNewRegisterOrderCommand_MissingRecipient(t *testing.T) {
	_, err := commands.NewRegisterOrderCommand(
		"", order.ChannelManual,
		"", "123.456.789-00", "+55 11 98888-0000",
		"", nil, validVolumeSpecs(), "operator:ana",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRecipientIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewRegisterOrderCommand_NoVolumes(t *testing.T) {
	_, err := commands.NewRegisterOrderCommand(
		"", order.ChannelManual,
		"Maria Souza", "123.456.789-00", "+55 11 98888-0000",
		"", nil, nil, "operator:ana",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrVolumesAreRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewRegisterOrderCommand_MissingActor(t *testing.T) {
	_, err := commands.NewRegisterOrderCommand(
		"", order.ChannelManual,
		"Maria Souza", "123.456.789-00", "+55 11 98888-0000",
		"", nil, validVolumeSpecs(), "",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrActorIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRegisterOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.RegisterOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrRegisterOrderCommandIsNotConstructed)
}
