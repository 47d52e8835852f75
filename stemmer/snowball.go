package stemmer

import (
	"fmt"
	"strings"

	"github.com/nishiharu/cicada-go/symbol"
)

// suffixes lists the inflectional endings stripped for "english", tried in
// list order; the first one that leaves a stem of at least three
// characters is stripped. This is a deliberately small
// subset of the Porter algorithm Snowball implements in full; no Snowball
// port is grounded in the pack (see DESIGN.md), so unsupported languages
// fall back to a passthrough identical to SnowballImpl::operator() when
// pimpl is null.
var suffixes = []string{"ational", "ization", "fulness", "iveness", "ing", "edly", "ed", "es", "s"}

// Snowball mirrors stemmer/snowball.cpp: constructed for a language, it
// strips common inflectional suffixes for "english" and passes every other
// word through unchanged for any other accepted language name.
type Snowball struct {
	language string
	m        memo
}

// NewSnowball validates language against the small accepted set and
// returns a ready-to-use Snowball stemmer, or ErrUnknownLanguage —
// mirroring Snowball::Snowball's "we do not support stemming algorithm"
// constructor-time check.
func NewSnowball(language string) (*Snowball, error) {
	switch language {
	case "english", "french", "german", "none":
		return &Snowball{language: language, m: newMemo()}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
	}
}

// Stem implements Stemmer.
func (s *Snowball) Stem(word symbol.Symbol) symbol.Symbol {
	return s.m.stem(word, s.stripSuffix)
}

func (s *Snowball) stripSuffix(text string) string {
	if s.language != "english" {
		return text
	}
	lower := strings.ToLower(text)
	for _, suf := range suffixes {
		if len(lower) > len(suf)+2 && strings.HasSuffix(lower, suf) {
			return lower[:len(lower)-len(suf)]
		}
	}

	return lower
}
