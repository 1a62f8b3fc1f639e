package normalizer

import (
	"github.com/baditaflorin/go_card_input/internal/core/domain"
	"github.com/baditaflorin/go_card_input/internal/core/field"
	"github.com/baditaflorin/go_card_input/internal/ports"
)

// DefaultNormalizer applies the field rules exactly, treating only ASCII as digits and letters.
type DefaultNormalizer struct{}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() ports.FieldNormalizer {
	return &DefaultNormalizer{}
}

// Normalize returns the canonical value of raw for kind.
// An unknown kind returns raw unchanged.
func (n *DefaultNormalizer) Normalize(kind domain.FieldKind, previous, raw string) string {
	switch kind {
	case domain.CardNumber:
		return field.CardNumber(raw)
	case domain.NameOnCard:
		return field.Name(raw)
	case domain.ExpiryDate:
		return field.Expiry(previous, raw)
	case domain.SecurityCode:
		return field.SecurityCode(raw)
	}
	return raw
}
