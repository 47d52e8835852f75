package stemmer

import (
	"strings"

	"github.com/nishiharu/cicada-go/symbol"
)

// Upper uppercases a word's textual form, mirroring stemmer/upper.cpp's
// ICU "Upper" transliterator with strings.ToUpper standing in for ICU
// (no Unicode transliteration library is grounded in the pack; see
// DESIGN.md).
type Upper struct {
	m memo
}

// NewUpper returns a ready-to-use Upper stemmer with its own cache.
func NewUpper() *Upper {
	return &Upper{m: newMemo()}
}

// Stem implements Stemmer.
func (u *Upper) Stem(word symbol.Symbol) symbol.Symbol {
	return u.m.stem(word, strings.ToUpper)
}
