package order

import (
	"pickuphub/internal/pkg/errs"
)

// Recipient is a value object holding the identification of the person
// collecting the order. All three fields are required at intake; the phone
// number is also the key staff search by at the counter.
//
// Recipient is immutable and compared by value.
type Recipient struct {
	name     string
	document string
	phone    string
}

// NewRecipient creates a validated Recipient. Name, document, and phone must
// all be non-blank.
func NewRecipient(name, document, phone string) (Recipient, error) {
	if name == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient name")
	}
	if document == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient document")
	}
	if phone == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient phone")
	}

	return Recipient{name: name, document: document, phone: phone}, nil
}

// Name returns the recipient's display name.
func (r Recipient) Name() string {
	return r.name
}

// Document returns the recipient's identification document.
func (r Recipient) Document() string {
	return r.document
}

// Phone returns the recipient's phone number.
func (r Recipient) Phone() string {
	return r.phone
}

// IsEqual compares two recipients field by field.
func (r Recipient) IsEqual(other Recipient) bool {
	return r == other
}

// Validate ensures the Recipient carries all required fields, guarding
// against zero-value construction.
func (r Recipient) Validate() error {
	if r.name == "" || r.document == "" || r.phone == "" {
		return errs.NewValueIsRequiredError("recipient must be created via NewRecipient")
	}
	return nil
}
