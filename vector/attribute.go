package vector

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/nishiharu/cicada-go/symbol"
)

// AttrKind tags the variant held by an AttributeValue.
type AttrKind uint8

const (
	// AttrInt marks an int64-valued attribute.
	AttrInt AttrKind = iota
	// AttrFloat marks a float64-valued attribute.
	AttrFloat
	// AttrString marks a string-valued attribute.
	AttrString
)

// AttributeValue is a tagged union of {int64, float64, string}, matching
// spec.md §3's attribute JSON grammar `{"key": (int|float|"string"), …}`.
type AttributeValue struct {
	Kind AttrKind
	Int  int64
	Flt  float64
	Str  string
}

// IntAttr constructs an AttrInt value.
func IntAttr(v int64) AttributeValue { return AttributeValue{Kind: AttrInt, Int: v} }

// FloatAttr constructs an AttrFloat value.
func FloatAttr(v float64) AttributeValue { return AttributeValue{Kind: AttrFloat, Flt: v} }

// StringAttr constructs an AttrString value.
func StringAttr(v string) AttributeValue { return AttributeValue{Kind: AttrString, Str: v} }

// AttributeVector is a sparse, ordered map from interned attribute keys to
// tagged values. The zero value is ready to use.
type AttributeVector struct {
	values map[symbol.Symbol]AttributeValue
}

// NewAttributes constructs an empty AttributeVector.
func NewAttributes() *AttributeVector {
	return &AttributeVector{values: make(map[symbol.Symbol]AttributeValue)}
}

// Set assigns val to key.
func (av *AttributeVector) Set(key symbol.Symbol, val AttributeValue) {
	if av.values == nil {
		av.values = make(map[symbol.Symbol]AttributeValue)
	}
	av.values[key] = val
}

// Get returns the value at key and whether it was present.
func (av *AttributeVector) Get(key symbol.Symbol) (AttributeValue, bool) {
	v, ok := av.values[key]

	return v, ok
}

// Delete removes key, if present.
func (av *AttributeVector) Delete(key symbol.Symbol) {
	delete(av.values, key)
}

// Len reports the number of entries.
func (av *AttributeVector) Len() int {
	return len(av.values)
}

// Keys returns all keys sorted by symbol.Symbol.ID().
func (av *AttributeVector) Keys() []symbol.Symbol {
	keys := make([]symbol.Symbol, 0, len(av.values))
	for k := range av.values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].ID() < keys[j].ID() })

	return keys
}

// Clone returns a deep copy of av.
func (av *AttributeVector) Clone() *AttributeVector {
	out := NewAttributes()
	for k, v := range av.values {
		out.values[k] = v
	}

	return out
}

// MarshalJSON renders av per spec.md §6's attribute JSON grammar:
// {"key": (int|float|"string"), …}.
func (av *AttributeVector) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range av.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(k.String())
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')

		val := av.values[k]
		var valJSON []byte
		switch val.Kind {
		case AttrInt:
			valJSON, err = json.Marshal(val.Int)
		case AttrFloat:
			valJSON, err = json.Marshal(val.Flt)
		case AttrString:
			valJSON, err = json.Marshal(val.Str)
		default:
			return nil, ErrUnknownAttributeKind
		}
		if err != nil {
			return nil, err
		}
		buf.Write(valJSON)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON parses av from spec.md §6's attribute JSON grammar. Numbers
// without a fractional part or exponent are stored as AttrInt; all other
// numbers as AttrFloat; JSON strings (including \uXXXX escapes, handled by
// encoding/json) as AttrString.
func (av *AttributeVector) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*av = *NewAttributes()
	for k, v := range raw {
		sym, err := symbol.Intern(k)
		if err != nil {
			return err
		}

		var asInt int64
		if err := json.Unmarshal(v, &asInt); err == nil {
			av.Set(sym, IntAttr(asInt))

			continue
		}

		var asFloat float64
		if err := json.Unmarshal(v, &asFloat); err == nil {
			av.Set(sym, FloatAttr(asFloat))

			continue
		}

		var asString string
		if err := json.Unmarshal(v, &asString); err == nil {
			av.Set(sym, StringAttr(asString))

			continue
		}

		return fmt.Errorf("vector: attribute %q has unsupported JSON value %s", k, v)
	}

	return nil
}
