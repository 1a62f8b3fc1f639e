package field

import (
	"strings"

	"github.com/baditaflorin/go_card_input/internal/core/domain"
)

// CardNumber keeps the first 16 digits of raw and groups them by four.
// "4111111111111111" becomes "4111 1111 1111 1111"; a trailing partial group stays as is.
func CardNumber(raw string) string {
	digits := digitsOf(raw, domain.MaxCardNumberDigits)
	if len(digits) <= domain.CardNumberGroupSize {
		return digits
	}

	var sb strings.Builder
	sb.Grow(len(digits) + len(digits)/domain.CardNumberGroupSize)
	for i := 0; i < len(digits); i += domain.CardNumberGroupSize {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(digits[i:min(i+domain.CardNumberGroupSize, len(digits))])
	}
	return sb.String()
}
