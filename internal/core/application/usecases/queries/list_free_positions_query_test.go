package queries_test

import (
	"testing"

	"pickuphub/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListFreePositionsQuery_Valid(t *testing.T) {
	query := queries.NewListFreePositionsQuery()
	require.NoError(t, query.Validate())
}

func TestListFreePositionsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListFreePositionsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListFreePositionsQueryIsNotConstructed)
}

func TestNewSuggestPositionQuery_Valid(t *testing.T) {
	query := queries.NewSuggestPositionQuery()
	require.NoError(t, query.Validate())
}

func TestSuggestPositionQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.SuggestPositionQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrSuggestPositionQueryIsNotConstructed)
}
