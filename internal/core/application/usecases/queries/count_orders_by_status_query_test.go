package queries_test

import (
	"testing"

	"pickuphub/internal/core/application/usecases/queries"
	"pickuphub/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCountOrdersByStatusQuery_ValidInput(t *testing.T) {
	channel := order.ChannelManual
	query, err := queries.NewCountOrdersByStatusQuery(order.StatusReady, &channel)
	require.NoError(t, err)
	assert.Equal(t, order.StatusReady, query.Status())
	require.NotNil(t, query.Channel())
	assert.Equal(t, order.ChannelManual, *query.Channel())
}

func TestNewCountOrdersByStatusQuery_NilChannelCountsAllChannels(t *testing.T) {
	query, err := queries.NewCountOrdersByStatusQuery(order.StatusReceived, nil)
	require.NoError(t, err)
	assert.Nil(t, query.Channel())
}

func TestNewCountOrdersByStatusQuery_InvalidStatus(t *testing.T) {
	_, err := queries.NewCountOrdersByStatusQuery(order.StatusUnknown, nil)
	require.Error(t, err)
}

func TestNewCountOrdersByStatusQuery_InvalidChannel(t *testing.T) {
	channel := order.ChannelUnknown
	_, err := queries.NewCountOrdersByStatusQuery(order.StatusReceived, &channel)
	require.Error(t, err)
}

func TestCountOrdersByStatusQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.CountOrdersByStatusQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrCountOrdersByStatusQueryIsNotConstructed)
}
