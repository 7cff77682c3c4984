package counts_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmsm/counts"
)

func TestTransitions_IdentityLabels(t *testing.T) {
	c, m, err := counts.Transitions([][]int{{0, 0, 0, 1, 1}}, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1, 0, 1}, c.RawMatrix().Data)
	assert.Equal(t, map[int]int{0: 0, 1: 1}, m.Map())
}

func TestTransitions_SparseLabels(t *testing.T) {
	c, m, err := counts.Transitions([][]int{{100, 200, 300}}, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{
		0, 1, 0,
		0, 0, 1,
		0, 0, 0,
	}, c.RawMatrix().Data)
	assert.Equal(t, map[int]int{100: 0, 200: 1, 300: 2}, m.Map())
}

func TestTransitions_StringLabels(t *testing.T) {
	c, m, err := counts.Transitions([][]string{{"b", "a", "b"}, {"c"}}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, m.Labels())
	// a→b once, b→a once; "c" is mapped but never transitions
	assert.Equal(t, []float64{
		0, 1, 0,
		1, 0, 0,
		0, 0, 0,
	}, c.RawMatrix().Data)
}

func TestTransitions_SequencesAreIndependent(t *testing.T) {
	c, _, err := counts.Transitions([][]int{{0, 1}, {1, 0}}, 1)
	require.NoError(t, err)
	// no 1→1 pair across the boundary
	assert.Equal(t, []float64{0, 1, 1, 0}, c.RawMatrix().Data)
}

func TestTransitions_Lag(t *testing.T) {
	c, _, err := counts.Transitions([][]int{{0, 1, 0, 1, 0}}, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 0, 0, 1}, c.RawMatrix().Data)

	// shorter than lag+1: mapped but no counts
	c, m, err := counts.Transitions([][]int{{0, 1}}, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []float64{0, 0, 0, 0}, c.RawMatrix().Data)
}

func TestTransitions_BadLag(t *testing.T) {
	_, _, err := counts.Transitions([][]int{{0, 1}}, 0)
	assert.ErrorIs(t, err, counts.ErrBadLag)
}

func TestTransitions_NaN(t *testing.T) {
	nan := math.NaN()
	c, m, err := counts.Transitions([][]float64{{0, nan, 1, 1, nan}}, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, m.Labels())
	// only 1→1 survives; every pair touching NaN is dropped
	assert.Equal(t, []float64{0, 0, 0, 1}, c.RawMatrix().Data)
}

func TestTransitions_NoneSentinel(t *testing.T) {
	c, m, err := counts.Transitions([][]string{{"x", "", "x", "y"}}, 1, counts.WithNone(""))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, m.Labels())
	assert.Equal(t, []float64{0, 1, 0, 0}, c.RawMatrix().Data)
}

func TestTransitions_Empty(t *testing.T) {
	c, m, err := counts.Transitions([][]int{}, 1)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, m.Len())

	cf, mf, err := counts.Transitions([][]float64{{math.NaN(), math.NaN()}}, 1)
	require.NoError(t, err)
	assert.True(t, cf.IsEmpty())
	assert.Equal(t, 0, mf.Len())
}
