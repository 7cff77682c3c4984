package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmsm/graph"
)

func TestNew(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 0, g.Size())

	_, err = graph.New(-1)
	assert.ErrorIs(t, err, graph.ErrBadOrder)
}

func TestAddArc(t *testing.T) {
	g, _ := graph.New(3)
	require.NoError(t, g.AddArc(0, 2))
	require.NoError(t, g.AddArc(0, 1))
	require.NoError(t, g.AddArc(0, 2)) // duplicate ignored
	require.NoError(t, g.AddArc(1, 1)) // self-loop kept
	assert.Equal(t, []int{1, 2}, g.Successors(0))
	assert.Equal(t, 3, g.Size())
	assert.Equal(t, []int{1}, g.Successors(1))
	assert.Empty(t, g.Successors(2))

	assert.ErrorIs(t, g.AddArc(0, 3), graph.ErrVertexOutOfRange)
	assert.Nil(t, g.Successors(7))
}

func TestFromCounts_Threshold(t *testing.T) {
	c := mat.NewDense(3, 3, []float64{
		5, 1, 0,
		2, 0, 3,
		0, 0, 1,
	})
	g := graph.FromCounts(c, 2)
	assert.Equal(t, []int{0}, g.Successors(0))
	assert.Equal(t, []int{0, 2}, g.Successors(1))
	assert.Empty(t, g.Successors(2))

	all := graph.FromCounts(c, 0)
	assert.Equal(t, 9, all.Size())
}

func TestTranspose(t *testing.T) {
	g, _ := graph.New(3)
	_ = g.AddArc(0, 1)
	_ = g.AddArc(2, 1)
	_ = g.AddArc(1, 0)
	tr := g.Transpose()
	assert.Equal(t, []int{0, 2}, tr.Successors(1))
	assert.Equal(t, []int{1}, tr.Successors(0))
	assert.Equal(t, g.Size(), tr.Size())
}
