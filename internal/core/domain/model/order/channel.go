package order

import (
	"fmt"

	"pickuphub/internal/pkg/errs"
)

// Channel identifies the origin of a pickup order.
// Only manual intake at the counter is exercised today; the enum leaves room
// for future integration channels.
type Channel int

const (
	// ChannelUnknown represents an invalid or undefined channel.
	ChannelUnknown Channel = iota

	// ChannelManual is an order registered by a staff member at intake.
	ChannelManual
)

func getChannelStrings() map[Channel]string {
	return map[Channel]string{
		ChannelUnknown: "Unknown",
		ChannelManual:  "Manual",
	}
}

// Validate checks if the Channel value is valid.
func (c Channel) Validate() error {
	if c != ChannelManual {
		return errs.NewValueIsInvalidErrorWithCause("channel is invalid", fmt.Errorf("%d is not a valid channel", c))
	}
	return nil
}

// String returns the human-readable name of the channel.
func (c Channel) String() string {
	if str, ok := getChannelStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// ChannelFromString parses a channel name as produced by String.
func ChannelFromString(value string) (Channel, error) {
	if value == getChannelStrings()[ChannelManual] {
		return ChannelManual, nil
	}
	return ChannelUnknown, errs.NewValueIsInvalidErrorWithCause(
		"channel is invalid", fmt.Errorf("%q is not a valid channel", value))
}
