package estimate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmsm/matrix"
)

// reversibleMLE solves for the reversible maximum-likelihood transition
// matrix of c by coordinate-wise updates of the symmetric flux matrix X.
//
// Invariants kept by every sweep:
//   - X is symmetric and nonnegative; Xᵢⱼ > 0 wherever Cᵢⱼ+Cⱼᵢ > 0.
//   - xs[i] = Σⱼ Xᵢⱼ.
//
// Updates (cs = row sums of C):
//
//	Xᵢᵢ ← Cᵢᵢ (xsᵢ − Xᵢᵢ) / (csᵢ − Cᵢᵢ)
//	Xᵢⱼ ← positive root of a·v² + b·v + c = 0 with
//	  a = csᵢ − Cᵢⱼ + csⱼ − Cⱼᵢ
//	  b = csᵢ(xsⱼ − Xᵢⱼ) + csⱼ(xsᵢ − Xᵢⱼ) − (Cᵢⱼ+Cⱼᵢ)(xsᵢ + xsⱼ − 2Xᵢⱼ)
//	  c = −(Cᵢⱼ+Cⱼᵢ)(xsᵢ − Xᵢⱼ)(xsⱼ − Xᵢⱼ)
//
// Complexity: O(n²) per sweep.
func reversibleMLE(c *mat.Dense, tol float64, maxIter int) (*mat.Dense, []float64, error) {
	n := matrix.Order(c)
	cs := matrix.RowSums(c)

	// Stage 1: X = C + Cᵀ
	x := mat.NewDense(n, n, nil)
	x.Add(c, c.T())
	xs := matrix.RowSums(x)
	if floats.Sum(xs) == 0 {
		// no data at all: every row is 0/0
		return matrix.RowNormalize(x), normalized(xs), nil
	}

	pi := normalized(xs)
	prev := make([]float64, n)

	// Stage 2: sweeps
	var (
		iter, i, j int
		cij, cji   float64
		xij, v     float64
		a, b, q    float64
		converged  bool
	)
	for iter = 0; iter < maxIter; iter++ {
		copy(prev, pi)

		// diagonal
		for i = 0; i < n; i++ {
			cii := c.At(i, i)
			den := cs[i] - cii
			if cii == 0 || den <= 0 {
				// no self counts, or every count is a self count: X_ii is free
				continue
			}
			xii := x.At(i, i)
			v = cii * (xs[i] - xii) / den
			xs[i] += v - xii
			x.Set(i, i, v)
		}

		// off-diagonal pairs
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				cij, cji = c.At(i, j), c.At(j, i)
				s := cij + cji
				if s == 0 {
					continue
				}
				xij = x.At(i, j)
				a = cs[i] - cij + cs[j] - cji
				b = cs[i]*(xs[j]-xij) + cs[j]*(xs[i]-xij) - s*(xs[i]+xs[j]-2*xij)
				q = -s * (xs[i] - xij) * (xs[j] - xij)
				switch {
				case a > 0:
					v = (-b + math.Sqrt(b*b-4*a*q)) / (2 * a)
				case b != 0:
					v = -q / b
				default:
					continue
				}
				xs[i] += v - xij
				xs[j] += v - xij
				x.Set(i, j, v)
				x.Set(j, i, v)
			}
		}

		// Stage 3: convergence on π
		pi = normalized(xs)
		if maxAbsDiff(pi, prev) < tol {
			converged = true
			break
		}
	}
	if !converged {
		return nil, nil, fmt.Errorf("after %d sweeps: %w", maxIter, ErrNotConverged)
	}

	// Stage 4: T = X / rowsum(X)
	t := mat.NewDense(n, n, nil)
	for i = 0; i < n; i++ {
		row := t.RawRowView(i)
		mat.Row(row, i, x)
		floats.Scale(1/xs[i], row)
	}

	return t, pi, nil
}

func normalized(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	floats.Scale(1/floats.Sum(out), out)

	return out
}

func maxAbsDiff(a, b []float64) float64 {
	var m float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > m || math.IsNaN(d) {
			m = d
		}
	}

	return m
}
