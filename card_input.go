// card_input.go
// Package cardinput normalizes the fields of a card-entry form as the user types.
//
// Each call takes the field kind, the field's previous canonical value and the raw
// content after the edit, and returns the new canonical value:
//
//	card number    "4111111111111111" -> "4111 1111 1111 1111"
//	name on card   "John123 Doe!!"    -> "John Doe"
//	expiry date    "1" then "12"      -> "1" then "12/"
//	security code  "12a3456"          -> "1234"
//
// Normalization never fails and has no side effects. For a stateful form that keeps
// previous values, validates and submits, see pkg/form.
package cardinput

import (
	"github.com/baditaflorin/go_card_input/internal/adapters/normalizer"
	"github.com/baditaflorin/go_card_input/internal/core/domain"
)

// FieldKind selects which normalization rule applies.
type FieldKind = domain.FieldKind

const (
	CardNumber   = domain.CardNumber
	NameOnCard   = domain.NameOnCard
	ExpiryDate   = domain.ExpiryDate
	SecurityCode = domain.SecurityCode
)

var (
	defaultNormalizer = normalizer.NewDefaultNormalizer()
	foldingNormalizer = normalizer.NewFoldingNormalizer(defaultNormalizer)
)

// Normalize returns the canonical value of raw for kind. previous is only consulted
// for ExpiryDate, where a raw value shorter than previous is treated as a deletion.
func Normalize(kind FieldKind, previous, raw string) string {
	return defaultNormalizer.Normalize(kind, previous, raw)
}

// NormalizeUnicode is Normalize after folding fullwidth digits and accented letters
// to ASCII.
func NormalizeUnicode(kind FieldKind, previous, raw string) string {
	return foldingNormalizer.Normalize(kind, previous, raw)
}

// ParseFieldKind resolves names such as "CardNumber", "cardExpiryDate" or "cvc".
func ParseFieldKind(s string) (FieldKind, error) {
	return domain.ParseFieldKind(s)
}
