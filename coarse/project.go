package coarse

import "github.com/nishiharu/cicada-go/symbol"

var (
	binarizedClass    = symbol.MustIntern("[~coarse-bin]")
	nonBinarizedClass = symbol.MustIntern("[~coarse-nonbin]")
)

// project maps lhs onto the coarse equivalence class used to gate entry
// into pass `pass` (1-based, matching spec.md §4.4's pass numbering):
// pass 2 collapses every label to "binarized" or "non-binarized"; passes
// beyond 2 use the bit-level symbol.Symbol.Coarse(bits) projection.
func project(lhs symbol.Symbol, pass int, bits int) symbol.Symbol {
	if pass <= 2 {
		if lhs.Binarized() {
			return binarizedClass
		}

		return nonBinarizedClass
	}

	return lhs.Coarse(bits)
}
