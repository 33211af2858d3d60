package guard_test

import (
	"errors"
	"testing"

	"pickuphub/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	constructed := guard.NewConstructorGuard()

	require.NoError(t, constructed.Validate(errors.New("not constructed")))
	require.NoError(t, constructed.Validate(nil))
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_returns_given_error", func(t *testing.T) {
		var zero guard.ConstructorGuard
		notConstructed := errors.New("command not constructed")

		assert.Equal(t, notConstructed, zero.Validate(notConstructed))
	})

	t.Run("zero_value_with_nil_uses_default", func(t *testing.T) {
		var zero guard.ConstructorGuard

		err := zero.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_names_the_constructor_requirement", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// The guard backs every command and query constructor: a struct literal
// bypassing the constructor must fail Validate before any handler runs it.
func TestConstructorGuard_BlocksStructLiterals(t *testing.T) {
	var errQueryNotConstructed = errors.New("query must be created via its constructor")

	type listQuery struct {
		guard guard.ConstructorGuard
	}

	newListQuery := func() listQuery {
		return listQuery{guard: guard.NewConstructorGuard()}
	}

	t.Run("constructed_query_validates", func(t *testing.T) {
		q := newListQuery()
		assert.NoError(t, q.guard.Validate(errQueryNotConstructed))
	})

	t.Run("literal_query_is_rejected", func(t *testing.T) {
		q := listQuery{}
		assert.Equal(t, errQueryNotConstructed, q.guard.Validate(errQueryNotConstructed))
	})

	t.Run("copies_keep_the_constructed_flag", func(t *testing.T) {
		q := newListQuery()
		copied := q
		assert.NoError(t, copied.guard.Validate(errQueryNotConstructed))
	})
}
