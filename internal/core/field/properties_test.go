package field

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/baditaflorin/go_card_input/internal/core/domain"
)

var groupedNumber = regexp.MustCompile(`^$|^(\d{4} ){0,3}\d{1,4}$`)

const fuzzAlphabet = "0123456789 /-abcXYZ!\t"

func randomInputs(seed int64, n, maxLen int) []string {
	rng := rand.New(rand.NewSource(seed))
	runes := []rune(fuzzAlphabet + "éÅ４")
	out := make([]string, n)
	for i := range out {
		var sb strings.Builder
		for j := rng.Intn(maxLen + 1); j > 0; j-- {
			sb.WriteRune(runes[rng.Intn(len(runes))])
		}
		out[i] = sb.String()
	}
	return out
}

// allStrings enumerates every string over alphabet up to maxLen characters.
func allStrings(alphabet string, maxLen int) []string {
	out := []string{""}
	frontier := []string{""}
	for l := 0; l < maxLen; l++ {
		var next []string
		for _, prefix := range frontier {
			for _, r := range alphabet {
				next = append(next, prefix+string(r))
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

func canonicalExpiries() []string {
	out := []string{"", "0", "1"}
	for m := 1; m <= 12; m++ {
		mm := fmt.Sprintf("%02d", m)
		out = append(out, mm+"/")
		for y := 0; y <= 9; y++ {
			out = append(out, fmt.Sprintf("%s/%d", mm, y))
			out = append(out, fmt.Sprintf("%s/%d%d", mm, y, 9-y))
		}
	}
	return out
}

func TestCardNumberProperties(t *testing.T) {
	for _, raw := range randomInputs(1, 2000, 30) {
		got := CardNumber(raw)
		if !groupedNumber.MatchString(got) {
			t.Fatalf("CardNumber(%q) = %q is not grouped by four", raw, got)
		}
		if d := strings.Count(got, " "); len(got)-d > domain.MaxCardNumberDigits {
			t.Fatalf("CardNumber(%q) = %q has more than 16 digits", raw, got)
		}
		if again := CardNumber(got); again != got {
			t.Fatalf("CardNumber not idempotent: %q -> %q", got, again)
		}
	}
}

func TestSecurityCodeProperties(t *testing.T) {
	for _, raw := range randomInputs(2, 2000, 12) {
		got := SecurityCode(raw)
		if len(got) > domain.MaxSecurityCodeDigits {
			t.Fatalf("SecurityCode(%q) = %q exceeds four digits", raw, got)
		}
		for _, r := range got {
			if !isDigit(r) {
				t.Fatalf("SecurityCode(%q) = %q contains %q", raw, got, r)
			}
		}
		if again := SecurityCode(got); again != got {
			t.Fatalf("SecurityCode not idempotent: %q -> %q", got, again)
		}
	}
}

func TestNameProperties(t *testing.T) {
	for _, raw := range randomInputs(3, 2000, 40) {
		got := Name(raw)
		if utf8.RuneCountInString(got) > domain.MaxNameLength {
			t.Fatalf("Name(%q) = %q exceeds 26 characters", raw, got)
		}
		for _, r := range got {
			if !IsNameRune(r) {
				t.Fatalf("Name(%q) = %q contains %q", raw, got, r)
			}
		}
		if again := Name(got); again != got {
			t.Fatalf("Name not idempotent: %q -> %q", got, again)
		}
	}
}

func TestExpiryMonthBound(t *testing.T) {
	for _, raw := range allStrings("0123456789/", 4) {
		got := Expiry("", raw)
		month, _, found := strings.Cut(got, domain.ExpirySeparator)
		if found && !ValidMonth(month) {
			t.Fatalf("Expiry(%q, %q) = %q has month outside 01..12", "", raw, got)
		}
		if d := len(digitsOf(got, 10)); d > domain.MaxExpiryDigits {
			t.Fatalf("Expiry(%q, %q) = %q has more than four digits", "", raw, got)
		}
	}
}

func TestExpiryIdempotent(t *testing.T) {
	for _, v := range canonicalExpiries() {
		if got := Expiry(v, v); got != v {
			t.Errorf("Expiry(%q, %q) = %q, want it unchanged", v, v, got)
		}
	}
}

func TestExpiryDeletionShortens(t *testing.T) {
	for _, previous := range canonicalExpiries() {
		for cut := 0; cut < len(previous); cut++ {
			raw := previous[:cut]
			got := Expiry(previous, raw)
			if strings.HasSuffix(raw, domain.ExpirySeparator) {
				if got != strings.TrimSuffix(raw, domain.ExpirySeparator) {
					t.Errorf("Expiry(%q, %q) = %q, want separator dropped", previous, raw, got)
				}
				continue
			}
			if got != raw {
				t.Errorf("Expiry(%q, %q) = %q, want raw unchanged", previous, raw, got)
			}
		}
	}
}

// Typing a full date one key at a time must land on MM/YY.
func TestExpiryTypedSequence(t *testing.T) {
	tests := []struct {
		keys string
		want string
	}{
		{keys: "1225", want: "12/25"},
		{keys: "0730", want: "07/30"},
		{keys: "730", want: "07/30"},
		{keys: "1328", want: "12/8"},
	}

	for _, tc := range tests {
		t.Run(tc.keys, func(t *testing.T) {
			value := ""
			for _, k := range tc.keys {
				value = Expiry(value, value+string(k))
			}
			if value != tc.want {
				t.Errorf("typing %q produced %q, want %q", tc.keys, value, tc.want)
			}
		})
	}
}
