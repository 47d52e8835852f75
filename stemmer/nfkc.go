package stemmer

import (
	"strings"
	"unicode"

	"github.com/nishiharu/cicada-go/symbol"
)

// NFKC approximates stemmer/nfkc.cpp's ICU NFKC normalization: it folds a
// word by stripping non-printable/control runes and lowercasing the rest
// with unicode.ToLower; width variants are not folded. No Unicode normalization
// library is grounded in this pack (see DESIGN.md), so this stands in for
// true NFKC with a narrower but still idempotent fold.
type NFKC struct {
	m memo
}

// NewNFKC returns a ready-to-use NFKC stemmer with its own cache.
func NewNFKC() *NFKC {
	return &NFKC{m: newMemo()}
}

// Stem implements Stemmer.
func (n *NFKC) Stem(word symbol.Symbol) symbol.Symbol {
	return n.m.stem(word, foldNFKC)
}

func foldNFKC(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsPrint(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
