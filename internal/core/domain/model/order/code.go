package order

import (
	"strings"

	"github.com/google/uuid"
)

// codePrefix prefixes every generated order code.
const codePrefix = "PED-"

// GenerateCode produces a random order code of the form "PED-" followed by
// eight uppercase hexadecimal characters. Used at intake when the caller did
// not supply an explicit code.
func GenerateCode() string {
	return codePrefix + strings.ToUpper(uuid.NewString()[:8])
}

// GenerateLabel produces a volume label of the form
// "<order code>-VOL-" followed by four uppercase hexadecimal characters.
// Used at intake for parcels that arrive without a sticker.
func GenerateLabel(orderCode string) string {
	return orderCode + "-VOL-" + strings.ToUpper(uuid.NewString()[:4])
}
