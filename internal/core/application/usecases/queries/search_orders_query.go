package queries

import (
	"errors"
	"time"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/core/domain/model/order"
	"pickuphub/internal/pkg/guard"
)

var ErrSearchOrdersQueryIsNotConstructed = errors.New(
	"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
)

// SearchOrdersQuery retrieves order headers matching a set of optional
// filters. Every filter is nil-able; present filters are AND-combined.
//
// Date filters operate on calendar days: DateFrom matches orders created at
// or after midnight of that day, DateTo matches orders created before
// midnight of the following day. The recipient filter is a case-insensitive
// substring match against the recipient name.
type SearchOrdersQuery struct {
	status    *order.Status
	channel   *order.Channel
	dateFrom  *time.Time
	dateTo    *time.Time
	recipient *string

	guard guard.ConstructorGuard
}

// NewSearchOrdersQuery creates a search query. Nil filters are ignored;
// non-nil status and channel values must be valid.
func NewSearchOrdersQuery(
	status *order.Status,
	channel *order.Channel,
	dateFrom, dateTo *time.Time,
	recipient *string,
) (SearchOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return SearchOrdersQuery{}, err
		}
	}
	if channel != nil {
		if err := channel.Validate(); err != nil {
			return SearchOrdersQuery{}, err
		}
	}

	return SearchOrdersQuery{
		status:    status,
		channel:   channel,
		dateFrom:  dateFrom,
		dateTo:    dateTo,
		recipient: recipient,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil.
func (q SearchOrdersQuery) Status() *order.Status {
	return q.status
}

// Channel returns the intake channel filter, or nil.
func (q SearchOrdersQuery) Channel() *order.Channel {
	return q.channel
}

// DateFrom returns the inclusive lower creation-day bound, or nil.
func (q SearchOrdersQuery) DateFrom() *time.Time {
	return q.dateFrom
}

// DateTo returns the inclusive upper creation-day bound, or nil.
func (q SearchOrdersQuery) DateTo() *time.Time {
	return q.dateTo
}

// Recipient returns the recipient name filter, or nil.
func (q SearchOrdersQuery) Recipient() *string {
	return q.recipient
}

// SearchOrdersQueryResponse is the header row of a matching order. Volumes
// and events are not included; use the detail queries for those.
type SearchOrdersQueryResponse struct {
	ID            kernel.UUID
	Code          string
	Channel       string
	Status        string
	RecipientName string
	CreatedAt     time.Time
}
