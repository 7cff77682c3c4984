// Package msm implements a Markov state model estimator: it turns discrete
// state trajectories into a transition matrix, its stationary distribution
// and its spectral decomposition.
//
// Pipeline (Model.Fit):
//
//	label sequences
//	  → counts.Transitions      lagged transition counts + label mapping
//	  → ergodic.Trim            maximal strongly ergodic subgraph (cutoff >= 1)
//	  → estimate.Estimate       transition matrix + populations
//	  → spectral.Decompose      eigenvalues/vectors, computed lazily and cached
//
// States: a Model starts unfit. Fit may be called any number of times; each
// call replaces every fitted array and marks the eigensystem cache dirty.
// Accessors called before the first successful Fit return ErrNotFitted.
//
// Labels are any cmp.Ordered type. A float NaN is always treated as a
// missing frame, and WithNoneLabel adds a sentinel value of type L.
//
// Concurrency: a Model is not safe for concurrent use. The eigensystem cache
// is filled on first access after Fit, so even read-only accessors mutate it.
//
// Example:
//
//	model, err := msm.New[int](msm.WithLagTime(10), msm.WithMethod(estimate.MLE))
//	if err != nil { ... }
//	if _, err = model.Fit(trajectories); err != nil { ... }
//	ts, err := model.Timescales()
package msm
