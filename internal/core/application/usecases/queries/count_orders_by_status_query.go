package queries

import (
	"errors"

	"pickuphub/internal/core/domain/model/order"
	"pickuphub/internal/pkg/guard"
)

var ErrCountOrdersByStatusQueryIsNotConstructed = errors.New(
	"CountOrdersByStatusQuery must be created via NewCountOrdersByStatusQuery constructor",
)

// CountOrdersByStatusQuery counts orders currently in a lifecycle status,
// optionally restricted to one intake channel. Feeds the dashboard counters.
type CountOrdersByStatusQuery struct {
	status  order.Status
	channel *order.Channel

	guard guard.ConstructorGuard
}

// NewCountOrdersByStatusQuery creates a status count query. A nil channel
// counts across all intake channels.
func NewCountOrdersByStatusQuery(status order.Status, channel *order.Channel) (CountOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return CountOrdersByStatusQuery{}, err
	}
	if channel != nil {
		if err := channel.Validate(); err != nil {
			return CountOrdersByStatusQuery{}, err
		}
	}

	return CountOrdersByStatusQuery{
		status:  status,
		channel: channel,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CountOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersByStatusQueryIsNotConstructed)
}

// Status returns the lifecycle status being counted.
func (q CountOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// Channel returns the intake channel filter, or nil.
func (q CountOrdersByStatusQuery) Channel() *order.Channel {
	return q.channel
}
