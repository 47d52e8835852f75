package stemmer

import (
	"strings"

	"github.com/nishiharu/cicada-go/symbol"
)

// Stemmer maps a word symbol onto its normalized/stemmed form. Variants
// skip empty and non-terminal symbols unchanged, matching
// stemmer/nfkc.cpp's and stemmer/snowball.cpp's "word == EMPTY ||
// word.is_non_terminal(): return word" guard.
type Stemmer interface {
	Stem(word symbol.Symbol) symbol.Symbol
}

// skip reports whether word should pass through unstemmed: it is the
// epsilon symbol, a non-terminal, or an SGML-like "<...>" token — the
// three guards every original stemmer variant applies before touching the
// cache.
func skip(word symbol.Symbol) bool {
	if !word.IsValid() || word == symbol.Epsilon() || word.IsNonTerminal() {
		return true
	}
	text := word.String()

	return len(text) >= 3 && strings.HasPrefix(text, "<") && strings.HasSuffix(text, ">")
}

// memo is the per-word-id cache shared by every variant below, mirroring
// nfkc.cpp/snowball.cpp's symbol_set_type cache array indexed by word id:
// a plain Go map keyed by symbol.Symbol plays the same role without
// requiring callers to pre-size an array by vocabulary size.
type memo struct {
	cache map[symbol.Symbol]symbol.Symbol
}

func newMemo() memo {
	return memo{cache: make(map[symbol.Symbol]symbol.Symbol)}
}

func (m memo) stem(word symbol.Symbol, compute func(string) string) symbol.Symbol {
	if skip(word) {
		return word
	}
	if cached, ok := m.cache[word]; ok {
		return cached
	}

	stemmed := compute(word.String())
	out, err := symbol.Intern(stemmed)
	if err != nil {
		return word
	}
	m.cache[word] = out

	return out
}
