package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/core/domain/model/position"
	"pickuphub/internal/core/domain/services"
)

func mustPosition(t *testing.T, street, module, level, box string, occupied bool) *position.Position {
	t.Helper()
	p, err := position.RestorePosition(kernel.NewUUID(), street, module, level, box, occupied)
	require.NoError(t, err)
	return p
}

func TestPositionSelector_Suggest(t *testing.T) {
	selector := services.NewPositionSelector()

	t.Run("should pick the first free slot in walking order", func(t *testing.T) {
		positions := []*position.Position{
			mustPosition(t, "B", "01", "1", "01", false),
			mustPosition(t, "A", "02", "1", "01", false),
			mustPosition(t, "A", "01", "2", "01", false),
			mustPosition(t, "A", "01", "1", "02", false),
		}

		suggested, err := selector.Suggest(positions)

		require.NoError(t, err)
		assert.Equal(t, "A-01-1-02", suggested.Code())
	})

	t.Run("should skip occupied slots", func(t *testing.T) {
		positions := []*position.Position{
			mustPosition(t, "A", "01", "1", "01", true),
			mustPosition(t, "A", "01", "1", "02", false),
		}

		suggested, err := selector.Suggest(positions)

		require.NoError(t, err)
		assert.Equal(t, "A-01-1-02", suggested.Code())
	})

	t.Run("should order by each address part in turn", func(t *testing.T) {
		positions := []*position.Position{
			mustPosition(t, "A", "02", "1", "01", false),
			mustPosition(t, "A", "01", "3", "01", false),
			mustPosition(t, "A", "01", "2", "09", false),
			mustPosition(t, "A", "01", "2", "03", false),
		}

		suggested, err := selector.Suggest(positions)

		require.NoError(t, err)
		assert.Equal(t, "A-01-2-03", suggested.Code())
	})

	t.Run("should fail when every slot is occupied", func(t *testing.T) {
		positions := []*position.Position{
			mustPosition(t, "A", "01", "1", "01", true),
		}

		suggested, err := selector.Suggest(positions)

		require.Error(t, err)
		assert.Nil(t, suggested)
		assert.ErrorIs(t, err, services.ErrNoFreePosition)
	})

	t.Run("should fail on empty warehouse", func(t *testing.T) {
		suggested, err := selector.Suggest(nil)

		require.Error(t, err)
		assert.Nil(t, suggested)
		assert.ErrorIs(t, err, services.ErrNoFreePosition)
	})

	t.Run("should reject unconstructed positions", func(t *testing.T) {
		var invalid position.Position

		_, err := selector.Suggest([]*position.Position{&invalid})

		require.Error(t, err)
	})

	t.Run("should be deterministic for the same input", func(t *testing.T) {
		positions := []*position.Position{
			mustPosition(t, "C", "01", "1", "01", false),
			mustPosition(t, "B", "01", "1", "01", false),
		}

		first, err := selector.Suggest(positions)
		require.NoError(t, err)
		second, err := selector.Suggest(positions)
		require.NoError(t, err)

		assert.Equal(t, first.Code(), second.Code())
	})
}
