package form

import (
	"github.com/baditaflorin/go_card_input/internal/adapters/submitter"
	"github.com/baditaflorin/go_card_input/internal/core/domain"
	"github.com/baditaflorin/go_card_input/internal/ports"
	"github.com/baditaflorin/go_card_input/internal/validator"
)

type (
	// FieldKind selects the normalization rule of a field.
	FieldKind = domain.FieldKind
	// Record holds the canonical value of every field.
	Record = domain.CardRecord
	// Payment is the payload handed to a Submitter.
	Payment = domain.Payment
	// Receipt is a Submitter's answer.
	Receipt = domain.Receipt
	// Submitter hands a completed card to the payment backend.
	Submitter = ports.Submitter
	// ValidationErrors lists every incomplete or malformed field.
	ValidationErrors = validator.ValidationErrors
	// ValidationError describes one field.
	ValidationError = validator.ValidationError
)

const (
	CardNumber   = domain.CardNumber
	NameOnCard   = domain.NameOnCard
	ExpiryDate   = domain.ExpiryDate
	SecurityCode = domain.SecurityCode
)

var (
	ErrIncompleteRecord = domain.ErrIncompleteRecord
	ErrPaymentDeclined  = domain.ErrPaymentDeclined
	ErrUnknownFieldKind = domain.ErrUnknownFieldKind
)

// ParseFieldKind resolves a field name such as "CardNumber", "cardExpiryDate" or "cvc".
func ParseFieldKind(s string) (FieldKind, error) {
	return domain.ParseFieldKind(s)
}

// NewStubSubmitter returns an in-process Submitter that approves or declines everything.
func NewStubSubmitter(approve bool) *submitter.Stub {
	return submitter.NewStub(approve)
}
