package scoring_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmsm/scoring"
)

func TestLogLikelihood(t *testing.T) {
	tm := mat.NewDense(2, 2, []float64{0.5, 0.5, 0.25, 0.75})

	cases := []struct {
		name string
		seqs [][]int
		want float64
	}{
		{"single frame", [][]int{{1}}, 0},
		{"empty", [][]int{{}}, 0},
		{
			"two states",
			[][]int{{0, 1, 1}},
			// log .5 + log .75 − (1 log 1 + 2 log 2) + log 1
			math.Log(0.5) + math.Log(0.75) - 2*math.Log(2),
		},
		{
			"two sequences",
			[][]int{{0, 0}, {1, 0}},
			// n = [3, 1] over both: (log .5 − 3 log 3 + log 3) + (log .25 − 3 log 3 + log 1)
			math.Log(0.5) + math.Log(0.25) - 5*math.Log(3),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := scoring.LogLikelihood(tc.seqs, tm)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestLogLikelihood_SharedOccupancy(t *testing.T) {
	tm := mat.NewDense(2, 2, []float64{0.7, 0.3, 0.4, 0.6})
	seqs := [][]int{{0, 0, 1}, {1, 1, 0, 1}}

	got, err := scoring.LogLikelihood(seqs, tm)
	require.NoError(t, err)

	// n = [3, 4] counted over both sequences
	entropy := 3*math.Log(3) + 4*math.Log(4)
	want := math.Log(0.7) + math.Log(0.3) - entropy + math.Log(3) +
		math.Log(0.6) + math.Log(0.4) + math.Log(0.3) - entropy + math.Log(4)
	assert.InDelta(t, want, got, 1e-12)
	assert.InDelta(t, -19.3889, got, 1e-4)

	// scoring one sequence alone uses only its own occupancy
	alone, err := scoring.LogLikelihood(seqs[:1], tm)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(0.7)+math.Log(0.3)-2*math.Log(2)+math.Log(2), alone, 1e-12)
}

func TestLogLikelihood_Errors(t *testing.T) {
	tm := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	_, err := scoring.LogLikelihood([][]int{{0, 2}}, tm)
	assert.ErrorIs(t, err, scoring.ErrStateOutOfRange)

	_, err = scoring.LogLikelihood([][]int{{0}}, mat.NewDense(1, 2, nil))
	assert.Error(t, err)

	ll, err := scoring.LogLikelihood([][]int{{0, 1}}, tm)
	require.NoError(t, err)
	assert.True(t, math.IsInf(ll, -1))
}
