package queries_test

import (
	"testing"

	"pickuphub/internal/core/application/usecases/queries"
	"pickuphub/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderByIDQuery_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetOrderByIDQuery(id)
	require.NoError(t, err)
	assert.Equal(t, id, query.OrderID())
}

func TestNewGetOrderByIDQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetOrderByIDQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetOrderByIDQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderByIDQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderByIDQueryIsNotConstructed)
}
