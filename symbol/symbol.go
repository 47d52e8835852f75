package symbol

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// Symbol is an interned terminal or non-terminal label. The zero value is
// not a valid interned symbol (use Invalid to test for it); every other
// Symbol was produced by Intern.
type Symbol struct {
	shard uint32
	slot  uint32
}

// Invalid is the zero Symbol, returned where spec.md calls for a
// distinguished "no symbol" value.
var Invalid Symbol

// IsValid reports whether s came from a successful Intern call.
func (s Symbol) IsValid() bool {
	return s != Invalid
}

// ID returns a dense, canonical ordering key for s. Two symbols compare
// ID() a < ID() b iff a was interned before b within the same shard, with
// shard as the primary sort key; this is used by package vector to keep
// FeatureVector/AttributeVector keys in a deterministic order for
// serialization and the compact codec's delta encoding.
func (s Symbol) ID() uint64 {
	return uint64(s.shard)<<32 | uint64(s.slot)
}

// FromID reconstructs the Symbol whose ID() equals id. It performs no
// validation against the vocabulary; callers that need to confirm the
// Symbol is still live should follow up with Text(s) or IsValid(). This
// exists for round-tripping the compact vector encoding (package vector),
// which stores only the numeric ID on the wire.
func FromID(id uint64) Symbol {
	return Symbol{shard: uint32(id >> 32), slot: uint32(id)}
}

// String returns the interned textual form, or "<invalid>" for the zero
// Symbol. It never returns an error; use Text(s) to detect a stale Symbol
// explicitly.
func (s Symbol) String() string {
	text, err := Text(s)
	if err != nil {
		return "<invalid>"
	}

	return text
}

// IsNonTerminal reports whether s is a bracketed label such as "[X]" or
// "[X,2]".
func (s Symbol) IsNonTerminal() bool {
	e, ok := defaultVocab.lookup(s)

	return ok && !e.terminal
}

// IsTerminal reports whether s is a bare (non-bracketed) label.
func (s Symbol) IsTerminal() bool {
	e, ok := defaultVocab.lookup(s)

	return ok && e.terminal
}

// NonTerminalIndex returns the 1-based index suffix of a non-terminal such
// as "[X,2]" (returns 2), or 0 if s carries no index (including terminals).
func (s Symbol) NonTerminalIndex() int {
	e, ok := defaultVocab.lookup(s)
	if !ok {
		return 0
	}

	return e.index
}

// NonTerminal returns the Symbol for the same base label as s, with its
// index suffix replaced by index. Passing index == 0 drops the suffix
// entirely ("[X]"). s itself is left unmodified (Symbol is immutable).
func (s Symbol) NonTerminal(index int) Symbol {
	e, ok := defaultVocab.lookup(s)
	if !ok {
		return Invalid
	}
	text := "[" + e.base + "]"
	if index > 0 {
		text = "[" + e.base + "," + strconv.Itoa(index) + "]"
	}
	sym, err := Intern(text)
	if err != nil {
		return Invalid
	}

	return sym
}

// Binarized reports whether s was introduced by grammar binarization: its
// base label ends in the '^' marker (e.g. "[X^]", "[X^,1]").
func (s Symbol) Binarized() bool {
	e, ok := defaultVocab.lookup(s)

	return ok && e.binarized
}

// Coarse projects s onto one of 2^bits coarse equivalence classes by
// hashing its base label. The result is itself an interned non-terminal
// Symbol (e.g. "[X~c3/16]" for bits==4, meaning bucket 3 of 16), stable for
// a given (base, bits) pair for the lifetime of the process. Terminals are
// coarsened to themselves (a terminal's identity already is its coarsest
// useful class).
//
// This implements spec.md §4.4's "coarsening projection (bit-level for
// i>2)" deterministically without requiring the caller to pre-register a
// grammar-specific coarsening map.
func (s Symbol) Coarse(bits int) Symbol {
	if bits <= 0 {
		return s
	}
	e, ok := defaultVocab.lookup(s)
	if !ok {
		return Invalid
	}
	if e.terminal {
		return s
	}
	buckets := uint32(1) << uint(bits)
	h := fnv.New32a()
	_, _ = h.Write([]byte(e.base))
	bucket := h.Sum32() % buckets
	text := fmt.Sprintf("[%s~c%d/%d]", stripBinarizedMarker(e.base), bucket, buckets)
	sym, err := Intern(text)
	if err != nil {
		return Invalid
	}

	return sym
}

// stripBinarizedMarker removes a trailing '^' so coarsening groups
// binarized and non-binarized variants of the same base label together
// unless the caller explicitly wants the "binarized vs non-binarized"
// collapse (spec.md §4.4's i==2 pass), which transform/coarse implement by
// consulting Binarized() directly rather than through Coarse.
func stripBinarizedMarker(base string) string {
	return strings.TrimSuffix(base, "^")
}

// parse extracts the entry metadata for text at intern time. It recognizes:
//
//	"[X]"     non-terminal, base "X", no index
//	"[X,2]"   non-terminal, base "X", index 2
//	"[X^]"    non-terminal, binarized
//	"X"       terminal, base "X"
func parse(text string) entry {
	if !strings.HasPrefix(text, "[") || !strings.HasSuffix(text, "]") {
		return entry{text: text, base: text, terminal: true}
	}
	inner := text[1 : len(text)-1]
	base := inner
	index := 0
	if comma := strings.LastIndexByte(inner, ','); comma >= 0 {
		if n, err := strconv.Atoi(inner[comma+1:]); err == nil {
			base = inner[:comma]
			index = n
		}
	}

	return entry{
		text:      text,
		base:      base,
		index:     index,
		terminal:  false,
		binarized: strings.HasSuffix(base, "^"),
	}
}
