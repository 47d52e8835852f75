package rule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nishiharu/cicada-go/symbol"
	"github.com/nishiharu/cicada-go/vector"
)

// Parse reads the on-disk rule text format from spec.md §6:
//
//	LHS ||| source_symbols ||| target_symbols [||| key=value ...]
//
// LHS is optional and defaults to "[X]". A field is taken as an explicit
// LHS only when it parses as exactly one bracketed non-terminal token
// (e.g. "[NP]") and at least three "|||"-delimited fields remain — this
// mirrors the original grammar's "hold[lhs >> |||] | attr("")" backtracking
// for the overwhelmingly common case (an explicit LHS is always a bare
// bracketed symbol with no sibling tokens in that field).
func Parse(text string) (*Rule, error) {
	fields := splitTriplePipe(text)
	if len(fields) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedRule, text)
	}

	var lhsField string
	hasLHS := len(fields) >= 3 && isBareBracket(fields[0])
	idx := 0
	if hasLHS {
		lhsField = fields[0]
		idx = 1
	}

	sourceField := fields[idx]
	targetField := fields[idx+1]
	var scoreFields []string
	if len(fields) > idx+2 {
		scoreFields = fields[idx+2:]
	}

	lhs := symbol.DefaultLHS()
	if hasLHS {
		sym, err := symbol.Intern(strings.TrimSpace(lhsField))
		if err != nil {
			return nil, fmt.Errorf("%w: lhs: %v", ErrMalformedRule, err)
		}
		lhs = sym
	}

	source, err := internSymbols(sourceField)
	if err != nil {
		return nil, fmt.Errorf("%w: source: %v", ErrMalformedRule, err)
	}
	target, err := internSymbols(targetField)
	if err != nil {
		return nil, fmt.Errorf("%w: target: %v", ErrMalformedRule, err)
	}

	features := vector.New()
	for _, scoreField := range scoreFields {
		if err := parseScores(scoreField, features); err != nil {
			return nil, fmt.Errorf("%w: scores: %v", ErrMalformedRule, err)
		}
	}

	r, err := New(lhs, source, target, features, nil)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// splitTriplePipe splits on the literal "|||" separator and trims each
// field, discarding none (even empty ones, which Parse rejects later).
func splitTriplePipe(text string) []string {
	raw := strings.Split(text, "|||")
	out := make([]string, len(raw))
	for i, f := range raw {
		out[i] = strings.TrimSpace(f)
	}

	return out
}

// isBareBracket reports whether field is exactly one "[...]" token with no
// surrounding siblings.
func isBareBracket(field string) bool {
	if len(field) < 2 || field[0] != '[' {
		return false
	}
	if strings.ContainsAny(field, " \t") {
		return false
	}

	return field[len(field)-1] == ']'
}

// internSymbols interns each whitespace-separated token in field.
func internSymbols(field string) ([]symbol.Symbol, error) {
	if field == "" {
		return nil, nil
	}
	tokens := strings.Fields(field)
	out := make([]symbol.Symbol, len(tokens))
	for i, tok := range tokens {
		sym, err := symbol.Intern(tok)
		if err != nil {
			return nil, err
		}
		out[i] = sym
	}

	return out, nil
}

// parseScores parses one or more whitespace-separated "key=value" pairs
// from field into features.
func parseScores(field string, features *vector.FeatureVector) error {
	if field == "" {
		return nil
	}
	for _, tok := range strings.Fields(field) {
		eq := strings.LastIndexByte(tok, '=')
		if eq <= 0 {
			return fmt.Errorf("bad score token %q", tok)
		}
		key := tok[:eq]
		val, err := strconv.ParseFloat(tok[eq+1:], 64)
		if err != nil {
			return fmt.Errorf("bad score value in %q: %w", tok, err)
		}
		sym, err := symbol.Intern(key)
		if err != nil {
			return err
		}
		features.Set(sym, val)
	}

	return nil
}

// String renders r in the spec.md §6 text format. Features are emitted in
// Symbol.ID() order (vector.FeatureVector.Keys' canonical order), so
// Parse(r.String()).String() == r.String() — the serialize/parse/serialize
// round-trip law from spec.md §8.
func (r *Rule) String() string {
	var b strings.Builder
	b.WriteString(r.LHS.String())
	b.WriteString(" ||| ")
	writeSymbols(&b, r.Source)
	b.WriteString(" ||| ")
	writeSymbols(&b, r.Target)

	if r.Features.Len() > 0 {
		b.WriteString(" |||")
		r.Features.Range(func(key symbol.Symbol, val float64) bool {
			b.WriteByte(' ')
			b.WriteString(key.String())
			b.WriteByte('=')
			b.WriteString(strconv.FormatFloat(val, 'g', -1, 64))

			return true
		})
	}

	return b.String()
}

func writeSymbols(b *strings.Builder, syms []symbol.Symbol) {
	for i, s := range syms {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.String())
	}
}
