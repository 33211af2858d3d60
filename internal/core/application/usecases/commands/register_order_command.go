package commands

import (
	"errors"

	"pickuphub/internal/core/domain/model/order"
	"pickuphub/internal/pkg/errs"
	"pickuphub/internal/pkg/guard"
)

var (
	ErrRegisterOrderCommandIsNotConstructed = errors.New(
		"RegisterOrderCommand must be created via NewRegisterOrderCommand constructor",
	)
	ErrRecipientIsRequired = errs.NewValueIsRequiredError("recipient name, document and phone")
	ErrVolumesAreRequired  = errs.NewValueIsRequiredError("volumes")
	ErrActorIsRequired     = errs.NewValueIsRequiredError("actor")
)

// VolumeSpec describes one parcel unit at intake. The label is optional;
// unlabeled parcels get a generated label derived from the order code.
type VolumeSpec struct {
	Label      string
	Weight     *float64
	Dimensions string
}

// RegisterOrderCommand represents a request to register a pickup order at
// intake together with its parcel units.
//
// Example:
//
//	cmd, err := NewRegisterOrderCommand(
//	    "",                       // code: blank, generate one
//	    order.ChannelManual,
//	    "Maria Souza", "123.456.789-00", "+55 11 98888-0000",
//	    "", nil,
//	    []VolumeSpec{{Weight: ptr(2.5)}},
//	    "operator:ana",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid intake data: %w", err)
//	}
type RegisterOrderCommand struct { //nolint:recvcheck //using for validation
	code              string
	channel           order.Channel
	recipientName     string
	recipientDocument string
	recipientPhone    string
	externalID        string
	tenantID          *int64
	volumes           []VolumeSpec
	actor             string

	guard guard.ConstructorGuard
}

// NewRegisterOrderCommand creates a command to register a pickup order.
// The code is optional (blank means generate); the channel may be unset and
// defaults to Manual in the domain layer. Recipient fields, a non-empty
// volume list, and an actor are required.
func NewRegisterOrderCommand(
	code string,
	channel order.Channel,
	recipientName, recipientDocument, recipientPhone string,
	externalID string,
	tenantID *int64,
	volumes []VolumeSpec,
	actor string,
) (RegisterOrderCommand, error) {
	cmd := RegisterOrderCommand{
		code:       code,
		channel:    channel,
		externalID: externalID,
		tenantID:   tenantID,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecipient(recipientName, recipientDocument, recipientPhone),
		cmd.setVolumes(volumes),
		cmd.setActor(actor),
	); err != nil {
		return RegisterOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterOrderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterOrderCommandIsNotConstructed)
}

// Code returns the caller-supplied order code, blank when one should be generated.
func (c RegisterOrderCommand) Code() string {
	return c.code
}

// Channel returns the requested origin channel, ChannelUnknown when unset.
func (c RegisterOrderCommand) Channel() order.Channel {
	return c.channel
}

// RecipientName returns the recipient's display name.
func (c RegisterOrderCommand) RecipientName() string {
	return c.recipientName
}

// RecipientDocument returns the recipient's identification document.
func (c RegisterOrderCommand) RecipientDocument() string {
	return c.recipientDocument
}

// RecipientPhone returns the recipient's phone number.
func (c RegisterOrderCommand) RecipientPhone() string {
	return c.recipientPhone
}

// ExternalID returns the upstream system identifier, empty when none.
func (c RegisterOrderCommand) ExternalID() string {
	return c.externalID
}

// TenantID returns the opaque tenant identifier, nil when none.
func (c RegisterOrderCommand) TenantID() *int64 {
	return c.tenantID
}

// Volumes returns the parcel unit specifications.
func (c RegisterOrderCommand) Volumes() []VolumeSpec {
	return c.volumes
}

// Actor returns the identity attributed to the registration.
func (c RegisterOrderCommand) Actor() string {
	return c.actor
}

func (c *RegisterOrderCommand) setRecipient(name, document, phone string) error {
	if name == "" || document == "" || phone == "" {
		return ErrRecipientIsRequired
	}
	c.recipientName = name
	c.recipientDocument = document
	c.recipientPhone = phone
	return nil
}

func (c *RegisterOrderCommand) setVolumes(volumes []VolumeSpec) error {
	if len(volumes) == 0 {
		return ErrVolumesAreRequired
	}
	c.volumes = volumes
	return nil
}

func (c *RegisterOrderCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
