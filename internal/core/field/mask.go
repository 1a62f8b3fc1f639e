package field

import (
	"strings"
	"unicode/utf8"

	"github.com/baditaflorin/go_card_input/internal/core/domain"
)

const filtered = "[FILTERED]"

// Mask renders a field value in a form that is safe to log.
// Card numbers keep their last four digits once more than four are present,
// names are reduced to initials and every other digit is starred.
func Mask(kind domain.FieldKind, value string) string {
	switch kind {
	case domain.CardNumber:
		return maskCardNumber(value)
	case domain.NameOnCard:
		return initials(value)
	case domain.ExpiryDate, domain.SecurityCode:
		return starDigits(value, 0)
	}
	return filtered
}

func maskCardNumber(value string) string {
	visible := 0
	if n := strings.Count(value, " "); len(value)-n > domain.CardNumberGroupSize {
		visible = domain.CardNumberGroupSize
	}
	return starDigits(value, visible)
}

// starDigits replaces every digit except the last keep with '*'.
func starDigits(value string, keep int) string {
	total := 0
	for _, r := range value {
		if isDigit(r) {
			total++
		}
	}

	var sb strings.Builder
	sb.Grow(len(value))
	seen := 0
	for _, r := range value {
		if !isDigit(r) {
			sb.WriteRune(r)
			continue
		}
		seen++
		if seen > total-keep {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('*')
		}
	}
	return sb.String()
}

func initials(name string) string {
	words := strings.Fields(name)
	parts := make([]string, 0, len(words))
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		parts = append(parts, string(r)+".")
	}
	return strings.Join(parts, " ")
}
