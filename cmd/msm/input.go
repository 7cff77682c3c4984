package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// missingLabel stands in for YAML null frames. Empty strings in the input
// are therefore treated as missing too.
const missingLabel = ""

// sequenceFile is the on-disk input format. JSON documents parse as well.
type sequenceFile struct {
	Sequences [][]*string `yaml:"sequences"`
}

// readSequences loads the label trajectories in path. Scalars of any YAML
// type are read as strings; null becomes missingLabel.
func readSequences(path string) ([][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}

	var doc sequenceFile
	if err = yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("input: parse %q: %w", path, err)
	}
	if len(doc.Sequences) == 0 {
		return nil, fmt.Errorf("input: %q has no sequences", path)
	}

	out := make([][]string, len(doc.Sequences))
	for i, seq := range doc.Sequences {
		out[i] = make([]string, len(seq))
		for t, l := range seq {
			if l == nil {
				out[i][t] = missingLabel
				continue
			}
			out[i][t] = *l
		}
	}

	return out, nil
}
