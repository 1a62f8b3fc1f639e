package field

import (
	"strings"
	"unicode"

	"github.com/baditaflorin/go_card_input/internal/core/domain"
)

// Name drops everything that is not an ASCII letter or whitespace, then truncates
// to 26 characters.
func Name(raw string) string {
	var sb strings.Builder
	n := 0
	for _, r := range raw {
		if n == domain.MaxNameLength {
			break
		}
		if IsNameRune(r) {
			sb.WriteRune(r)
			n++
		}
	}
	return sb.String()
}

// IsNameRune reports whether r may appear in a cardholder name.
func IsNameRune(r rune) bool {
	return isASCIILetter(r) || unicode.IsSpace(r)
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
