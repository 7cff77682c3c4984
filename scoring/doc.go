// Package scoring evaluates how well a transition matrix explains observed
// state sequences.
//
// LogLikelihood is the full trajectory log-likelihood: the sum of
// log T[a_t, a_t+1] over every step, corrected by the multinomial occupancy
// term −Σ nᵢ log nᵢ + log n_{a₀} per sequence, where nᵢ counts visits to
// state i across all sequences. States never visited contribute nothing.
package scoring
