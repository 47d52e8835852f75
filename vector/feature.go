package vector

import (
	"sort"

	"github.com/nishiharu/cicada-go/symbol"
)

// FeatureVector is a sparse, ordered map from interned feature keys to
// real-valued scores. The zero value is ready to use.
type FeatureVector struct {
	values map[symbol.Symbol]float64
}

// New constructs an empty FeatureVector.
func New() *FeatureVector {
	return &FeatureVector{values: make(map[symbol.Symbol]float64)}
}

// Set assigns val to key, or removes key entirely when val == 0, keeping
// the vector sparse. Complexity: O(1).
func (fv *FeatureVector) Set(key symbol.Symbol, val float64) {
	if fv.values == nil {
		fv.values = make(map[symbol.Symbol]float64)
	}
	if val == 0 {
		delete(fv.values, key)

		return
	}
	fv.values[key] = val
}

// Get returns the value stored at key, or 0 (the semiring-agnostic
// additive identity for an absent feature) if key is not present.
func (fv *FeatureVector) Get(key symbol.Symbol) float64 {
	if fv.values == nil {
		return 0
	}

	return fv.values[key]
}

// Len reports the number of non-zero entries.
func (fv *FeatureVector) Len() int {
	return len(fv.values)
}

// Keys returns all present keys sorted by symbol.Symbol.ID(), giving
// deterministic iteration order independent of map randomization.
func (fv *FeatureVector) Keys() []symbol.Symbol {
	keys := make([]symbol.Symbol, 0, len(fv.values))
	for k := range fv.values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].ID() < keys[j].ID() })

	return keys
}

// Clone returns a deep copy of fv.
func (fv *FeatureVector) Clone() *FeatureVector {
	out := New()
	for k, v := range fv.values {
		out.values[k] = v
	}

	return out
}

// Add returns a new FeatureVector holding the pointwise sum of fv and
// other, with any key whose sum is exactly 0 dropped (auto-erase).
// Complexity: O(len(fv)+len(other)).
func (fv *FeatureVector) Add(other *FeatureVector) *FeatureVector {
	out := fv.Clone()
	if other == nil {
		return out
	}
	for k, v := range other.values {
		out.Set(k, out.Get(k)+v)
	}

	return out
}

// AddInPlace mutates fv by adding other's values into it, auto-erasing any
// key whose sum becomes 0.
func (fv *FeatureVector) AddInPlace(other *FeatureVector) {
	if other == nil {
		return
	}
	if fv.values == nil {
		fv.values = make(map[symbol.Symbol]float64)
	}
	for k, v := range other.values {
		fv.Set(k, fv.Get(k)+v)
	}
}

// Scale returns a new FeatureVector with every value multiplied by factor;
// a factor of 0 yields an empty vector (every key auto-erases).
func (fv *FeatureVector) Scale(factor float64) *FeatureVector {
	out := New()
	for k, v := range fv.values {
		out.Set(k, v*factor)
	}

	return out
}

// Equal reports whether fv and other hold exactly the same (key, value)
// pairs.
func (fv *FeatureVector) Equal(other *FeatureVector) bool {
	if other == nil {
		return fv.Len() == 0
	}
	if len(fv.values) != len(other.values) {
		return false
	}
	for k, v := range fv.values {
		if ov, ok := other.values[k]; !ok || ov != v {
			return false
		}
	}

	return true
}

// Range calls fn for every (key, value) pair in ascending key order,
// stopping early if fn returns false.
func (fv *FeatureVector) Range(fn func(key symbol.Symbol, val float64) bool) {
	for _, k := range fv.Keys() {
		if !fn(k, fv.values[k]) {
			return
		}
	}
}
