package rule

import (
	"strings"
	"unicode"

	"github.com/nishiharu/cicada-go/symbol"
)

// TreeRule is a tree-fragment rule, parsed from spec.md §6's
// `(label child child …)` pre-order notation. A leaf TreeRule (no
// Children) holds a terminal or non-terminal label; an internal TreeRule
// holds a label and its ordered children.
type TreeRule struct {
	Label    symbol.Symbol
	Children []*TreeRule
}

// IsLeaf reports whether t has no children.
func (t *TreeRule) IsLeaf() bool {
	return len(t.Children) == 0
}

// Antecedent pairs a child's label with its single terminal leaf, the
// shape spec.md §8's scenario 3 describes: "(A (B x) (C y))" parses to
// lhs A, antecedents [B→x, C→y].
type Antecedent struct {
	Label    symbol.Symbol
	Terminal symbol.Symbol
}

// Antecedents returns, for each immediate child of t that is itself a
// one-leaf subtree "(Label terminal)", the (Label, Terminal) pair. Children
// with a different shape (deeper nesting, multiple grandchildren) are
// omitted; callers needing the full tree should walk Children directly.
func (t *TreeRule) Antecedents() []Antecedent {
	out := make([]Antecedent, 0, len(t.Children))
	for _, c := range t.Children {
		if len(c.Children) == 1 && c.Children[0].IsLeaf() {
			out = append(out, Antecedent{Label: c.Label, Terminal: c.Children[0].Label})
		}
	}

	return out
}

// ParseTree parses a tree-fragment string into a TreeRule. Escapes `\\`,
// `\(`, `\)` let a label or terminal contain a literal backslash or
// parenthesis; any other use of `\`, including a trailing one, is
// rejected with ErrMalformedTree.
func ParseTree(text string) (*TreeRule, error) {
	pos := 0
	node, err := parseTreeNode(text, &pos)
	if err != nil {
		return nil, err
	}
	skipSpace(text, &pos)
	if pos != len(text) {
		return nil, ErrMalformedTree
	}

	return node, nil
}

func skipSpace(s string, pos *int) {
	for *pos < len(s) && unicode.IsSpace(rune(s[*pos])) {
		*pos++
	}
}

func parseTreeNode(s string, pos *int) (*TreeRule, error) {
	skipSpace(s, pos)
	if *pos >= len(s) {
		return nil, ErrMalformedTree
	}
	if s[*pos] != '(' {
		tok, err := readTreeToken(s, pos)
		if err != nil {
			return nil, err
		}
		sym, err := symbol.Intern(tok)
		if err != nil {
			return nil, err
		}

		return &TreeRule{Label: sym}, nil
	}

	*pos++ // consume '('
	skipSpace(s, pos)
	label, err := readTreeToken(s, pos)
	if err != nil {
		return nil, err
	}
	labelSym, err := symbol.Intern(label)
	if err != nil {
		return nil, err
	}
	node := &TreeRule{Label: labelSym}

	for {
		skipSpace(s, pos)
		if *pos >= len(s) {
			return nil, ErrMalformedTree
		}
		if s[*pos] == ')' {
			*pos++

			return node, nil
		}
		child, err := parseTreeNode(s, pos)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
}

// readTreeToken reads a label/terminal token, honoring `\\`, `\(`, `\)` as
// escapes and stopping at unescaped whitespace, '(', or ')'.
func readTreeToken(s string, pos *int) (string, error) {
	var b strings.Builder
	for *pos < len(s) {
		c := s[*pos]
		if c == '\\' {
			if *pos+1 >= len(s) {
				return "", ErrMalformedTree
			}
			next := s[*pos+1]
			if next != '\\' && next != '(' && next != ')' {
				return "", ErrMalformedTree
			}
			b.WriteByte(next)
			*pos += 2

			continue
		}
		if c == '(' || c == ')' || unicode.IsSpace(rune(c)) {
			break
		}
		b.WriteByte(c)
		*pos++
	}
	if b.Len() == 0 {
		return "", ErrMalformedTree
	}

	return b.String(), nil
}

// String renders t back into the `(label child child …)` format, escaping
// '\\', '(', and ')' within labels.
func (t *TreeRule) String() string {
	if t.IsLeaf() {
		return escapeTreeToken(t.Label.String())
	}
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(escapeTreeToken(t.Label.String()))
	for _, c := range t.Children {
		b.WriteByte(' ')
		b.WriteString(c.String())
	}
	b.WriteByte(')')

	return b.String()
}

func escapeTreeToken(tok string) string {
	var b strings.Builder
	for _, r := range tok {
		switch r {
		case '\\', '(', ')':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}

	return b.String()
}
