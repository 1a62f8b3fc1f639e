package field

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/baditaflorin/go_card_input/internal/core/domain"
)

// Expiry normalizes the MM/YY expiry field.
//
// previous is the canonical value before the edit and raw the field content after it.
// A shorter raw is a deletion and is passed through, except that a trailing separator
// is dropped so a single backspace removes both "/" and the month's last digit.
// Otherwise the digits of raw are re-formatted; a month outside 01..12 discards the
// digit that made it invalid.
func Expiry(previous, raw string) string {
	if utf8.RuneCountInString(raw) < utf8.RuneCountInString(previous) {
		return strings.TrimSuffix(raw, domain.ExpirySeparator)
	}

	digits := digitsOf(raw, domain.MaxExpiryDigits)
	switch len(digits) {
	case 0:
		return ""
	case 1:
		// 0 and 1 can still become a two-digit month; 2-9 can only be 02-09.
		if digits == "0" || digits == "1" {
			return digits
		}
		return "0" + digits + domain.ExpirySeparator
	case 2:
		if ValidMonth(digits) {
			return digits + domain.ExpirySeparator
		}
		return digits[:1]
	default:
		month, year := digits[:2], digits[2:]
		if ValidMonth(month) {
			return month + domain.ExpirySeparator + year
		}
		return month
	}
}

// ValidMonth reports whether s parses as a month number between 1 and 12.
func ValidMonth(s string) bool {
	m, err := strconv.Atoi(s)
	return err == nil && m >= 1 && m <= 12
}
