package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/core/domain/model/order"
	"pickuphub/internal/pkg/errs"
)

// OrderView is the full read model of an order, including its volumes and
// audit events. Shared by the detail queries.
type OrderView struct {
	ID                kernel.UUID
	Code              string
	Channel           string
	Status            string
	RecipientName     string
	RecipientDocument string
	RecipientPhone    string
	ExternalID        *string
	TenantID          *int64
	CreatedAt         time.Time
	ReadyAt           *time.Time
	PickedUpAt        *time.Time
	Volumes           []VolumeView
	Events            []EventView
}

// VolumeView is the read model of a single volume.
type VolumeView struct {
	ID         kernel.UUID
	Label      string
	Weight     *float64
	Dimensions string
	Status     string
	PositionID *kernel.UUID
}

// EventView is the read model of a single audit event.
type EventView struct {
	ID        kernel.UUID
	EventType string
	Payload   string
	Actor     string
	CreatedAt time.Time
}

const orderViewColumns = `
	id,
	code,
	channel,
	status,
	recipient_name,
	recipient_document,
	recipient_phone,
	external_id,
	tenant_id,
	created_at,
	ready_at,
	picked_up_at
`

// scanOrderView reads one order row. The row must select orderViewColumns in
// order.
func scanOrderView(rows *sql.Rows) (OrderView, error) {
	var view OrderView
	var id uuid.UUID
	var channel, status int
	var externalID sql.NullString
	var tenantID sql.NullInt64
	var readyAt, pickedUpAt sql.NullTime

	err := rows.Scan(
		&id,
		&view.Code,
		&channel,
		&status,
		&view.RecipientName,
		&view.RecipientDocument,
		&view.RecipientPhone,
		&externalID,
		&tenantID,
		&view.CreatedAt,
		&readyAt,
		&pickedUpAt,
	)
	if err != nil {
		return OrderView{}, err
	}

	orderID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return OrderView{}, idErr
	}
	view.ID = orderID
	view.Channel = order.Channel(channel).String()
	view.Status = order.Status(status).String()

	if externalID.Valid {
		view.ExternalID = &externalID.String
	}
	if tenantID.Valid {
		view.TenantID = &tenantID.Int64
	}
	if readyAt.Valid {
		view.ReadyAt = &readyAt.Time
	}
	if pickedUpAt.Valid {
		view.PickedUpAt = &pickedUpAt.Time
	}

	return view, nil
}

// loadOrderViews runs an order query and hydrates each matching order with
// its volumes and events.
func loadOrderViews(ctx context.Context, db *gorm.DB, query string, args ...any) ([]OrderView, error) {
	views := make([]OrderView, 0)

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		view, scanErr := scanOrderView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range views {
		if views[i].Volumes, err = loadVolumeViews(ctx, db, views[i].ID); err != nil {
			return nil, err
		}
		if views[i].Events, err = loadEventViews(ctx, db, views[i].ID); err != nil {
			return nil, err
		}
	}

	return views, nil
}

// loadOrderView runs an order query expected to match at most one row and
// returns an ObjectNotFoundError otherwise.
func loadOrderView(ctx context.Context, db *gorm.DB, param string, id string, query string, args ...any) (OrderView, error) {
	views, err := loadOrderViews(ctx, db, query, args...)
	if err != nil {
		return OrderView{}, err
	}
	if len(views) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError(param, id)
	}
	return views[0], nil
}

func loadVolumeViews(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]VolumeView, error) {
	volumes := make([]VolumeView, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			label,
			weight,
			dimensions,
			status,
			position_id
		FROM volumes
		WHERE order_id = ?
		ORDER BY label
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view VolumeView
		var id uuid.UUID
		var weight sql.NullFloat64
		var status int
		var positionID sql.NullString

		if err = rows.Scan(&id, &view.Label, &weight, &view.Dimensions, &status, &positionID); err != nil {
			return nil, err
		}

		volumeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		view.ID = volumeID
		view.Status = order.VolumeStatus(status).String()

		if weight.Valid {
			view.Weight = &weight.Float64
		}
		if positionID.Valid {
			posID, posErr := kernel.UUIDFromString(positionID.String)
			if posErr != nil {
				return nil, posErr
			}
			view.PositionID = &posID
		}

		volumes = append(volumes, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return volumes, nil
}

func loadEventViews(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]EventView, error) {
	events := make([]EventView, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			event_type,
			payload,
			actor,
			created_at
		FROM order_events
		WHERE order_id = ?
		ORDER BY created_at
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view EventView
		var id uuid.UUID
		var eventType int

		if err = rows.Scan(&id, &eventType, &view.Payload, &view.Actor, &view.CreatedAt); err != nil {
			return nil, err
		}

		eventID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		view.ID = eventID
		view.EventType = order.EventType(eventType).String()

		events = append(events, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
