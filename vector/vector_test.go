package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nishiharu/cicada-go/symbol"
	"github.com/nishiharu/cicada-go/vector"
)

func TestFeatureVector_SparsityOnZero(t *testing.T) {
	fv := vector.New()
	a := symbol.MustIntern("feat-a")
	fv.Set(a, 1.5)
	require.Equal(t, 1, fv.Len())
	fv.Set(a, 0)
	require.Equal(t, 0, fv.Len())
}

func TestFeatureVector_AddAutoErases(t *testing.T) {
	a := symbol.MustIntern("feat-add-a")
	x := vector.New()
	x.Set(a, 3)
	y := vector.New()
	y.Set(a, -3)

	sum := x.Add(y)
	require.Equal(t, 0, sum.Len())
}

func TestFeatureVector_KeysSortedByID(t *testing.T) {
	fv := vector.New()
	b := symbol.MustIntern("feat-zzz")
	a := symbol.MustIntern("feat-aaa")
	fv.Set(b, 1)
	fv.Set(a, 2)
	keys := fv.Keys()
	require.Len(t, keys, 2)
	require.True(t, keys[0].ID() < keys[1].ID())
}

func TestFeatureVector_Scale(t *testing.T) {
	fv := vector.New()
	k := symbol.MustIntern("feat-scale")
	fv.Set(k, 2)
	scaled := fv.Scale(3)
	require.Equal(t, float64(6), scaled.Get(k))

	zeroed := fv.Scale(0)
	require.Equal(t, 0, zeroed.Len())
}

func TestFeatureVector_CompactRoundTrip(t *testing.T) {
	fv := vector.New()
	fv.Set(symbol.MustIntern("feat-int"), 42)
	fv.Set(symbol.MustIntern("feat-negint"), -17)
	fv.Set(symbol.MustIntern("feat-frac"), 0.5)
	fv.Set(symbol.MustIntern("feat-pi"), 3.14159265358979)

	encoded := vector.Encode(fv)
	decoded, err := vector.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, fv.Len(), decoded.Len())

	fv.Range(func(key symbol.Symbol, val float64) bool {
		require.Equal(t, val, decoded.Get(key))

		return true
	})
}

func TestAttributeVector_JSONRoundTrip(t *testing.T) {
	av := vector.NewAttributes()
	av.Set(symbol.MustIntern("attr-count"), vector.IntAttr(7))
	av.Set(symbol.MustIntern("attr-ratio"), vector.FloatAttr(0.25))
	av.Set(symbol.MustIntern("attr-name"), vector.StringAttr("héllo☃"))

	data, err := av.MarshalJSON()
	require.NoError(t, err)

	var out vector.AttributeVector
	require.NoError(t, out.UnmarshalJSON(data))
	require.Equal(t, av.Len(), out.Len())

	v, ok := out.Get(symbol.MustIntern("attr-count"))
	require.True(t, ok)
	require.Equal(t, vector.AttrInt, v.Kind)
	require.Equal(t, int64(7), v.Int)

	v, ok = out.Get(symbol.MustIntern("attr-name"))
	require.True(t, ok)
	require.Equal(t, "héllo☃", v.Str)
}
