package field

import "github.com/baditaflorin/go_card_input/internal/pool"

var digitBuffers = pool.NewBufferPool(32)

// digitsOf returns the ASCII digits of s in order, keeping at most limit of them.
func digitsOf(s string, limit int) string {
	buf := digitBuffers.Get()
	defer digitBuffers.Put(buf)

	// Bytes of multi-byte runes are all >= 0x80 and never match.
	for i := 0; i < len(s) && len(*buf) < limit; i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			*buf = append(*buf, c)
		}
	}
	return string(*buf)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
