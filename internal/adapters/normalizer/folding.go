package normalizer

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/baditaflorin/go_card_input/internal/core/domain"
	"github.com/baditaflorin/go_card_input/internal/pool"
	"github.com/baditaflorin/go_card_input/internal/ports"
)

var (
	// fullwidth forms to ASCII, so "４１１１" counts as four digits
	widthChains = pool.NewTransformerPool(func() transform.Transformer {
		return width.Fold
	})

	// decompose, drop combining marks, recompose, then fold width: "José" -> "Jose"
	nameChains = pool.NewTransformerPool(func() transform.Transformer {
		return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC, width.Fold)
	})
)

// FoldingNormalizer maps Unicode look-alikes onto ASCII before delegating to another
// normalizer. Keyboards that emit fullwidth digits or accented names then produce the
// same canonical values as a plain ASCII keyboard.
type FoldingNormalizer struct {
	next ports.FieldNormalizer
}

// NewFoldingNormalizer wraps next. A nil next uses the default normalizer.
func NewFoldingNormalizer(next ports.FieldNormalizer) ports.FieldNormalizer {
	if next == nil {
		next = NewDefaultNormalizer()
	}
	return &FoldingNormalizer{next: next}
}

// Normalize folds raw and passes it on. previous is already canonical ASCII.
func (n *FoldingNormalizer) Normalize(kind domain.FieldKind, previous, raw string) string {
	switch kind {
	case domain.NameOnCard:
		raw = nameChains.String(raw)
	case domain.CardNumber, domain.ExpiryDate, domain.SecurityCode:
		raw = widthChains.String(raw)
	}
	return n.next.Normalize(kind, previous, raw)
}
