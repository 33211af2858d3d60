package queries

import (
	"errors"
	"time"

	"pickuphub/internal/core/domain/model/order"
	"pickuphub/internal/pkg/guard"
)

var ErrCountOrdersByDayQueryIsNotConstructed = errors.New(
	"CountOrdersByDayQuery must be created via NewCountOrdersByDayQuery constructor",
)

// CountOrdersByDayQuery counts how many orders reached a lifecycle status on
// a given calendar day. The status picks which timestamp is counted:
// Received counts registrations, Ready counts ready transitions, PickedUp
// counts pickups.
type CountOrdersByDayQuery struct {
	status order.Status
	day    time.Time

	guard guard.ConstructorGuard
}

// NewCountOrdersByDayQuery creates a daily count query for the given status
// and day.
func NewCountOrdersByDayQuery(status order.Status, day time.Time) (CountOrdersByDayQuery, error) {
	if err := status.Validate(); err != nil {
		return CountOrdersByDayQuery{}, err
	}

	return CountOrdersByDayQuery{
		status: status,
		day:    day,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CountOrdersByDayQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersByDayQueryIsNotConstructed)
}

// Status returns the lifecycle status being counted.
func (q CountOrdersByDayQuery) Status() order.Status {
	return q.status
}

// Day returns the calendar day being counted.
func (q CountOrdersByDayQuery) Day() time.Time {
	return q.day
}
