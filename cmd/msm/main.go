// Command msm fits Markov state models to label trajectories read from YAML
// files and prints summaries, sampled trajectories or held-out scores.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
