package field

import "github.com/baditaflorin/go_card_input/internal/core/domain"

// SecurityCode keeps the first four digits of raw.
func SecurityCode(raw string) string {
	return digitsOf(raw, domain.MaxSecurityCodeDigits)
}
