package ports

import "github.com/baditaflorin/go_card_input/internal/core/domain"

// FieldNormalizer turns raw keystroke input into the canonical value of a field.
// Implementations must be total and pure: the same inputs always produce the same output.
type FieldNormalizer interface {
	Normalize(kind domain.FieldKind, previous, raw string) string
}
