// Package lvmsm estimates Markov state models from discrete trajectories.
//
// A Markov state model summarizes long, noisy state sequences (molecular
// dynamics cluster assignments, ion channel recordings, user sessions) as a
// transition matrix between states observed at a fixed lag, together with
// its stationary populations and relaxation timescales.
//
// Packages:
//
//	labels/   bijective label ↔ state index mapping, fill/clip transforms
//	counts/   lagged transition counting over label sequences
//	graph/    directed graph of count-matrix arcs above a threshold
//	dfs/      depth-first traversal and strongly connected components
//	ergodic/  maximal strongly ergodic subgraph trimming
//	estimate/ transition matrix estimators (reversible MLE, transpose, none)
//	spectral/ left/right eigensystems, normalization and timescales
//	msm/      the Model façade tying the pipeline together
//	scoring/  trajectory log-likelihood under a transition matrix
//	matrix/   validators and helpers over gonum dense matrices
//	logging/  zap logger construction for the command line
//	cmd/msm/  command line front end (cobra + viper)
//
// Quick start:
//
//	model, err := msm.New[int](msm.WithLagTime(10))
//	if err != nil { ... }
//	if _, err = model.Fit(trajectories); err != nil { ... }
//	pi, _ := model.Populations()
//	ts, _ := model.Timescales()
package lvmsm
