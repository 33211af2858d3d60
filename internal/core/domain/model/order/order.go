package order

import (
	"errors"
	"time"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCodeIsRequired is returned when an order is constructed with a blank code.
	ErrCodeIsRequired = errors.New("order code is required")

	// ErrLabelIsRequired is returned when a volume is constructed with a blank label.
	ErrLabelIsRequired = errors.New("volume label is required")
)

// Order represents a pickup request in the warehouse. It is the aggregate
// root that manages the pickup lifecycle from intake through shelving to
// pickup confirmation, and owns the parcel units (volumes) and audit trail
// (events) of the request.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-blank unique code
//   - Status transitions follow Received -> Ready -> PickedUp, never backward
//   - ReadyAt and PickedUpAt are set at most once, on entering the state
//   - Volumes and events are addressed only through the aggregate root
//
// The transition methods MarkReady and MarkPickedUp are silent no-ops when
// their precondition does not hold; see the package documentation for the
// replay rationale.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// code is the unique human-readable order code
	code string

	// channel is the origin of the order, defaults to Manual
	channel Channel

	// externalID carries the identifier from an upstream system, may be empty
	externalID string

	// recipient identifies who collects the order
	recipient Recipient

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is the intake timestamp
	createdAt time.Time

	// readyAt is set once, on entering Ready
	readyAt *time.Time

	// pickedUpAt is set once, on entering PickedUp
	pickedUpAt *time.Time

	// tenantID is an opaque passthrough tenant identifier
	tenantID *int64

	// volumes are the parcel units owned by this order, in attach order
	volumes []*Volume

	// events is the append-only audit trail, in append order
	events []*Event

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order at intake. This is the only way to create a
// valid Order, ensuring all business invariants hold from the start.
//
// The code must already be resolved (generated when the caller supplied
// none); the channel defaults to Manual when unset. The order starts in
// Received status with no volumes and no events.
//
// Example:
//
//	recipient, _ := order.NewRecipient("Maria Souza", "123.456.789-00", "+55 11 98888-0000")
//	o, err := order.NewOrder(kernel.NewUUID(), order.GenerateCode(), order.ChannelManual,
//	    recipient, "", nil, clk.Now())
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	code string,
	channel Channel,
	recipient Recipient,
	externalID string,
	tenantID *int64,
	createdAt time.Time,
) (*Order, error) {
	if channel == ChannelUnknown {
		channel = ChannelManual
	}

	o := &Order{
		status:        StatusReceived,
		externalID:    externalID,
		tenantID:      tenantID,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setChannel(channel),
		o.setRecipient(recipient),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage, including its
// lifecycle status, timestamps, volumes, and events. The restored aggregate
// behaves identically to one built through domain operations.
func RestoreOrder(
	id kernel.UUID,
	code string,
	channel Channel,
	recipient Recipient,
	externalID string,
	tenantID *int64,
	status Status,
	createdAt time.Time,
	readyAt *time.Time,
	pickedUpAt *time.Time,
	volumes []*Volume,
	events []*Event,
) (*Order, error) {
	o, err := NewOrder(id, code, channel, recipient, externalID, tenantID, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	for _, v := range volumes {
		if err = v.Validate(); err != nil {
			return nil, err
		}
	}
	for _, e := range events {
		if err = e.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.readyAt = readyAt
	o.pickedUpAt = pickedUpAt
	o.volumes = volumes
	o.events = events
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// constructor. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the unique human-readable order code.
func (o *Order) Code() string {
	return o.code
}

// Channel returns the origin channel of the order.
func (o *Order) Channel() Channel {
	return o.channel
}

// ExternalID returns the upstream system identifier, empty when none.
func (o *Order) ExternalID() string {
	return o.externalID
}

// Recipient returns the pickup recipient identification.
func (o *Order) Recipient() Recipient {
	return o.recipient
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the intake timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ReadyAt returns the timestamp of entering Ready, nil until then.
func (o *Order) ReadyAt() *time.Time {
	return o.readyAt
}

// PickedUpAt returns the timestamp of pickup confirmation, nil until then.
func (o *Order) PickedUpAt() *time.Time {
	return o.pickedUpAt
}

// TenantID returns the opaque tenant identifier, nil when none.
func (o *Order) TenantID() *int64 {
	return o.tenantID
}

// Volumes returns the volumes owned by this order, in attach order.
func (o *Order) Volumes() []*Volume {
	return o.volumes
}

// Events returns the audit trail of this order, in append order.
func (o *Order) Events() []*Event {
	return o.events
}

// VolumeByID returns the owned volume with the given ID.
// Returns an ObjectNotFoundError when the volume does not belong to this order.
func (o *Order) VolumeByID(volumeID kernel.UUID) (*Volume, error) {
	for _, v := range o.volumes {
		if v.id.IsEqual(volumeID) {
			return v, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("volume", volumeID.String())
}

// AddVolume attaches a volume to this order. The volume's status is forced
// to Received and its back-reference is bound to this order.
func (o *Order) AddVolume(volume *Volume) error {
	if err := volume.Validate(); err != nil {
		return err
	}

	volume.orderID = o.id
	volume.status = VolumeStatusReceived
	o.volumes = append(o.volumes, volume)
	return nil
}

// RemoveVolume detaches a volume from this order and clears its
// back-reference. Returns an ObjectNotFoundError when the volume does not
// belong to this order.
func (o *Order) RemoveVolume(volumeID kernel.UUID) error {
	for i, v := range o.volumes {
		if v.id.IsEqual(volumeID) {
			v.orderID = kernel.UUID{}
			o.volumes = append(o.volumes[:i], o.volumes[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("volume", volumeID.String())
}

// AppendEvent attaches an audit event to this order. Events are append-only
// and never removed.
func (o *Order) AppendEvent(event *Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	event.orderID = o.id
	o.events = append(o.events, event)
	return nil
}

// CanMarkReady reports whether the order may transition to Ready:
// it must be in Received status and every volume must be shelved
// (Allocated) or already staged (Ready).
func (o *Order) CanMarkReady() bool {
	if o.status != StatusReceived {
		return false
	}
	for _, v := range o.volumes {
		if v.status != VolumeStatusAllocated && v.status != VolumeStatusReady {
			return false
		}
	}
	return true
}

// MarkReady transitions the order to Ready when CanMarkReady holds,
// promoting every Allocated volume to Ready (volumes already Ready are
// untouched) and setting ReadyAt once. When the precondition does not hold
// the order is left completely unchanged.
func (o *Order) MarkReady(now time.Time) {
	if !o.CanMarkReady() {
		return
	}

	o.status = StatusReady
	if o.readyAt == nil {
		o.readyAt = &now
	}
	for _, v := range o.volumes {
		if v.status == VolumeStatusAllocated {
			v.status = VolumeStatusReady
		}
	}
}

// MarkPickedUp transitions the order to PickedUp when it is Ready, forcing
// every volume to PickedUp regardless of its prior state and setting
// PickedUpAt once. When the order is not Ready it is left completely
// unchanged.
func (o *Order) MarkPickedUp(now time.Time) {
	if o.status != StatusReady {
		return
	}

	o.status = StatusPickedUp
	if o.pickedUpAt == nil {
		o.pickedUpAt = &now
	}
	for _, v := range o.volumes {
		v.status = VolumeStatusPickedUp
	}
}

// AssignPosition binds a storage position to one of the order's volumes and
// marks the volume Allocated. The caller is responsible for marking the
// position itself occupied; the aggregate only maintains the volume side.
func (o *Order) AssignPosition(volumeID, positionID kernel.UUID) error {
	if err := positionID.Validate(); err != nil {
		return err
	}

	volume, err := o.VolumeByID(volumeID)
	if err != nil {
		return err
	}

	volume.positionID = &positionID
	volume.status = VolumeStatusAllocated
	return nil
}

// ClearPosition removes the position reference of one of the order's
// volumes, returning the previously referenced position ID so the caller
// can release it. The volume's status is deliberately left unchanged.
// Returns nil when the volume had no position.
func (o *Order) ClearPosition(volumeID kernel.UUID) (*kernel.UUID, error) {
	volume, err := o.VolumeByID(volumeID)
	if err != nil {
		return nil, err
	}

	released := volume.positionID
	volume.positionID = nil
	return released, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}
	o.code = code
	return nil
}

func (o *Order) setChannel(channel Channel) error {
	if err := channel.Validate(); err != nil {
		return err
	}
	o.channel = channel
	return nil
}

func (o *Order) setRecipient(recipient Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	o.recipient = recipient
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("order creation timestamp")
	}
	o.createdAt = createdAt
	return nil
}
