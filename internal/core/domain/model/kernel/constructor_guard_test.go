package kernel_test

import (
	"errors"
	"sync"
	"testing"

	"pickuphub/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	guard := kernel.NewConstructorGuard()

	assert.NoError(t, guard.Validate(errors.New("not constructed")))
	assert.NoError(t, guard.Validate(nil))
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_returns_the_given_error", func(t *testing.T) {
		var guard kernel.ConstructorGuard
		notConstructed := errors.New("slot not constructed")

		assert.Equal(t, notConstructed, guard.Validate(notConstructed))
	})

	t.Run("zero_value_falls_back_to_default_error", func(t *testing.T) {
		var guard kernel.ConstructorGuard

		err := guard.Validate(nil)

		assert.Equal(t, kernel.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("copies_stay_constructed", func(t *testing.T) {
		guard := kernel.NewConstructorGuard()
		copied := guard

		assert.NoError(t, guard.Validate(errors.New("not constructed")))
		assert.NoError(t, copied.Validate(errors.New("not constructed")))
	})
}

// A guarded slot demonstrates the embedding pattern the warehouse entities
// use: constructors attach the guard, Validate rejects zero values.
func TestConstructorGuard_EmbeddedInEntity(t *testing.T) {
	var errSlotNotConstructed = errors.New("Slot must be created via newSlot")

	type Slot struct {
		code  string
		guard kernel.ConstructorGuard
	}

	newSlot := func(code string) (Slot, error) {
		if code == "" {
			return Slot{}, errors.New("slot code is required")
		}
		return Slot{code: code, guard: kernel.NewConstructorGuard()}, nil
	}

	validateSlot := func(s Slot) error {
		return s.guard.Validate(errSlotNotConstructed)
	}

	t.Run("constructed_slot_passes", func(t *testing.T) {
		slot, err := newSlot("A-01-2-03")

		require.NoError(t, err)
		assert.NoError(t, validateSlot(slot))
		assert.Equal(t, "A-01-2-03", slot.code)
	})

	t.Run("zero_value_slot_fails", func(t *testing.T) {
		var slot Slot

		assert.Equal(t, errSlotNotConstructed, validateSlot(slot))
	})

	t.Run("constructor_rules_still_run_first", func(t *testing.T) {
		_, err := newSlot("")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "slot code is required")
	})
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	guard := kernel.NewConstructorGuard()
	notConstructed := errors.New("not constructed")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				assert.NoError(t, guard.Validate(notConstructed))
			}
		}()
	}
	wg.Wait()
}
