package cluster_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nishiharu/cicada-go/cluster"
	"github.com/nishiharu/cicada-go/symbol"
)

func TestRepository_LoadAndLookup(t *testing.T) {
	symbol.ResetForTest()

	text := "dog C1\ncat C1\n# comment line\n\nrun C2\n"
	r := cluster.New()
	require.NoError(t, r.Load(strings.NewReader(text)))
	require.Equal(t, 3, r.Len())

	dog := symbol.MustIntern("dog")
	c1 := symbol.MustIntern("C1")
	id, ok := r.Lookup(dog)
	require.True(t, ok)
	require.Equal(t, c1, id)

	_, ok = r.Lookup(symbol.MustIntern("unseen"))
	require.False(t, ok)
}

func TestRepository_Load_RejectsMalformedLine(t *testing.T) {
	symbol.ResetForTest()

	r := cluster.New()
	err := r.Load(strings.NewReader("dog cat C1\n"))
	require.ErrorIs(t, err, cluster.ErrMalformedLine)
}

func TestRepository_Load_ReplacesPriorContents(t *testing.T) {
	symbol.ResetForTest()

	r := cluster.New()
	require.NoError(t, r.Load(strings.NewReader("dog C1\n")))
	require.NoError(t, r.Load(strings.NewReader("cat C2\n")))
	require.Equal(t, 1, r.Len())

	_, ok := r.Lookup(symbol.MustIntern("dog"))
	require.False(t, ok)
	id, ok := r.Lookup(symbol.MustIntern("cat"))
	require.True(t, ok)
	require.Equal(t, symbol.MustIntern("C2"), id)
}
