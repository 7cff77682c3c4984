// Package spectral computes the eigensystem of a transition matrix under the
// normalization conventions of Markov state model analysis.
//
// For a row-stochastic T with eigenvalues sorted by descending real part,
// Decompose returns the leading k eigenvalues λ, left eigenvectors φ (as
// columns) and right eigenvectors ψ (as columns), scaled so that:
//
//   - φ₀ is the stationary distribution μ: Σ φ₀ = 1
//   - ⟨φᵢ, φᵢ⟩_{μ⁻¹} = Σ φᵢ²/φ₀ = 1 for i > 0
//   - ⟨φᵢ, ψᵢ⟩ = 1 for every i (biorthonormal pairs)
//
// Implied timescales follow as tᵢ = −τ / ln λᵢ for i ≥ 1.
//
// Imaginary parts are dropped; Eigensystem.Complex reports when a kept
// eigenvalue had a non-negligible one, which only happens for
// non-reversible estimates.
//
// Complexity: O(n³) for the dense non-symmetric eigendecomposition.
package spectral
