package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/core/domain/model/order"
	"pickuphub/internal/pkg/errs"
)

func TestNewVolume(t *testing.T) {
	t.Run("should create volume in received status with no position", func(t *testing.T) {
		weight := 2.5
		v, err := order.NewVolume(kernel.NewUUID(), "PED-A-VOL-0001", &weight, "30x20x10")

		require.NoError(t, err)
		require.NoError(t, v.Validate())
		assert.Equal(t, "PED-A-VOL-0001", v.Label())
		require.NotNil(t, v.Weight())
		assert.InDelta(t, 2.5, *v.Weight(), 0.0001)
		assert.Equal(t, "30x20x10", v.Dimensions())
		assert.Equal(t, order.VolumeStatusReceived, v.Status())
		assert.Nil(t, v.PositionID())
	})

	t.Run("should allow nil weight and empty dimensions", func(t *testing.T) {
		v, err := order.NewVolume(kernel.NewUUID(), "PED-A-VOL-0002", nil, "")

		require.NoError(t, err)
		assert.Nil(t, v.Weight())
		assert.Empty(t, v.Dimensions())
	})

	t.Run("should round weight to two fraction digits", func(t *testing.T) {
		weight := 2.556
		v, err := order.NewVolume(kernel.NewUUID(), "PED-A-VOL-0005", &weight, "")

		require.NoError(t, err)
		require.NotNil(t, v.Weight())
		assert.InDelta(t, 2.56, *v.Weight(), 0.0001)
	})

	t.Run("should fail with negative weight", func(t *testing.T) {
		weight := -1.0
		v, err := order.NewVolume(kernel.NewUUID(), "PED-A-VOL-0006", &weight, "")

		require.Error(t, err)
		assert.Nil(t, v)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with blank label", func(t *testing.T) {
		v, err := order.NewVolume(kernel.NewUUID(), "", nil, "")

		require.Error(t, err)
		assert.Nil(t, v)
		assert.ErrorIs(t, err, order.ErrLabelIsRequired)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		v, err := order.NewVolume(invalidID, "PED-A-VOL-0003", nil, "")

		require.Error(t, err)
		assert.Nil(t, v)
	})
}

func TestRestoreVolume(t *testing.T) {
	t.Run("should restore status and position reference", func(t *testing.T) {
		orderID := kernel.NewUUID()
		positionID := kernel.NewUUID()

		v, err := order.RestoreVolume(kernel.NewUUID(), orderID, "PED-B-VOL-0001", nil, "", order.VolumeStatusAllocated, &positionID)

		require.NoError(t, err)
		assert.True(t, v.OrderID().IsEqual(orderID))
		assert.Equal(t, order.VolumeStatusAllocated, v.Status())
		require.NotNil(t, v.PositionID())
		assert.True(t, v.PositionID().IsEqual(positionID))
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		v, err := order.RestoreVolume(kernel.NewUUID(), kernel.NewUUID(), "PED-B-VOL-0002", nil, "", order.VolumeStatusUnknown, nil)

		require.Error(t, err)
		assert.Nil(t, v)
	})
}

func TestVolume_Validate(t *testing.T) {
	t.Run("should fail for zero value volume", func(t *testing.T) {
		var v order.Volume

		require.Error(t, v.Validate())
	})
}
