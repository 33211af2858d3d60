package position_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/core/domain/model/position"
	"pickuphub/internal/pkg/errs"
)

func TestNewPosition(t *testing.T) {
	t.Run("should create free position with four-part address", func(t *testing.T) {
		p, err := position.NewPosition(kernel.NewUUID(), "A", "01", "2", "03")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "A", p.Street())
		assert.Equal(t, "01", p.Module())
		assert.Equal(t, "2", p.Level())
		assert.Equal(t, "03", p.Box())
		assert.False(t, p.Occupied())
	})

	t.Run("should require every address part", func(t *testing.T) {
		cases := [][4]string{
			{"", "01", "2", "03"},
			{"A", "", "2", "03"},
			{"A", "01", "", "03"},
			{"A", "01", "2", ""},
		}

		for _, c := range cases {
			p, err := position.NewPosition(kernel.NewUUID(), c[0], c[1], c[2], c[3])

			require.Error(t, err)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := position.NewPosition(invalidID, "A", "01", "2", "03")

		require.Error(t, err)
		assert.Nil(t, p)
	})
}

func TestRestorePosition(t *testing.T) {
	t.Run("should restore occupancy flag", func(t *testing.T) {
		p, err := position.RestorePosition(kernel.NewUUID(), "A", "01", "2", "03", true)

		require.NoError(t, err)
		assert.True(t, p.Occupied())
	})
}

func TestPosition_Code(t *testing.T) {
	p, _ := position.NewPosition(kernel.NewUUID(), "A", "01", "2", "03")

	assert.Equal(t, "A-01-2-03", p.Code())
}

func TestPosition_Occupancy(t *testing.T) {
	t.Run("should mark occupied and release", func(t *testing.T) {
		p, _ := position.NewPosition(kernel.NewUUID(), "A", "01", "2", "03")

		p.MarkOccupied()
		assert.True(t, p.Occupied())

		p.Release()
		assert.False(t, p.Occupied())
	})

	t.Run("should be idempotent", func(t *testing.T) {
		p, _ := position.NewPosition(kernel.NewUUID(), "A", "01", "2", "03")

		p.MarkOccupied()
		p.MarkOccupied()
		assert.True(t, p.Occupied())

		p.Release()
		p.Release()
		assert.False(t, p.Occupied())
	})
}

func TestPosition_Validate(t *testing.T) {
	t.Run("should fail for nil position", func(t *testing.T) {
		var p *position.Position

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, position.ErrPositionIsNotConstructed, err)
	})

	t.Run("should fail for zero value position", func(t *testing.T) {
		var p position.Position

		err := p.Validate()

		require.Error(t, err)
	})
}
