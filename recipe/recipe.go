// Package recipe loads YAML blend recipes and runs them against a
// valgebra.Engine.
//
// A recipe declares attributes and a list of jobs. A job either blends two
// value lists element by element (a, b) or accumulates a value list into
// target slots (a, values, index). Values are written in the text format of
// their kind:
//
//	name: smoothing
//	attributes:
//	  Offset: Vector
//	jobs:
//	  - name: mix
//	    path: Offset
//	    mode: Lerp
//	    weights: [0.25]
//	    a: ["X=0 Y=0 Z=0"]
//	    b: ["X=4 Y=8 Z=0"]
//	  - name: mean
//	    kind: Double
//	    mode: Average
//	    reset: true
//	    a: ["0", "0"]
//	    values: ["1", "3", "10", "20"]
//	    index: [0, 0, 1, 1]
package recipe

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/valgebra"
	"github.com/hupe1980/valgebra/value"
)

// Recipe is a named list of jobs.
type Recipe struct {
	// Name identifies the recipe in logs.
	Name string `yaml:"name"`

	// Attributes declares element attributes and their kinds. Job paths
	// may name them.
	Attributes map[string]string `yaml:"attributes,omitempty"`

	// Jobs run in order.
	Jobs []Job `yaml:"jobs"`
}

// Job is one blend or accumulation.
type Job struct {
	Name string `yaml:"name"`

	// Path is an attribute path. Its kind is the job's kind, and a
	// sub-selection in it projects every result.
	Path string `yaml:"path,omitempty"`

	// Kind names the value kind when Path is empty.
	Kind string `yaml:"kind,omitempty"`

	Mode  string `yaml:"mode"`
	Reset bool   `yaml:"reset,omitempty"`

	// Weights holds nothing, one uniform weight, or one weight per value.
	Weights []float64 `yaml:"weights,omitempty"`

	A []string `yaml:"a"`
	B []string `yaml:"b,omitempty"`

	// Values and Index make the job an accumulation into A.
	Values []string `yaml:"values,omitempty"`
	Index  []int    `yaml:"index,omitempty"`
}

// IsAccumulation reports whether the job folds Values into A.
func (j *Job) IsAccumulation() bool { return len(j.Values) > 0 }

// Load parses a recipe. Unknown fields are rejected.
func Load(r io.Reader) (*Recipe, error) {
	var rec Recipe
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: failed to parse YAML: %w", valgebra.ErrInvalidRecipe, err)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// LoadFile reads and parses a recipe file.
func LoadFile(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe file: %w", err)
	}
	return Load(bytes.NewReader(data))
}

// Validate checks the parts of the recipe that do not need an engine.
// Every error wraps valgebra.ErrInvalidRecipe.
func (r *Recipe) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", valgebra.ErrInvalidRecipe, fmt.Sprintf(format, args...))
	}

	if r.Name == "" {
		return invalid("name is required")
	}
	if len(r.Jobs) == 0 {
		return invalid("jobs list is required and must be non-empty")
	}
	for name, kind := range r.Attributes {
		if _, ok := value.ParseKind(kind); !ok {
			return invalid("attribute %q: unknown kind %q", name, kind)
		}
	}

	for i := range r.Jobs {
		j := &r.Jobs[i]
		if j.Name == "" {
			return invalid("jobs[%d]: name is required", i)
		}
		if (j.Path == "") == (j.Kind == "") {
			return invalid("jobs[%d] (%s): exactly one of path and kind is required", i, j.Name)
		}
		if j.Kind != "" {
			if _, err := valgebra.ParseKind(j.Kind); err != nil {
				return invalid("jobs[%d] (%s): %v", i, j.Name, err)
			}
		}
		if _, err := valgebra.ParseMode(j.Mode); err != nil {
			return invalid("jobs[%d] (%s): %v", i, j.Name, err)
		}
		if len(j.A) == 0 {
			return invalid("jobs[%d] (%s): a is required", i, j.Name)
		}

		n := len(j.A)
		if j.IsAccumulation() {
			if len(j.B) > 0 {
				return invalid("jobs[%d] (%s): b and values are exclusive", i, j.Name)
			}
			n = len(j.Values)
			if j.Index != nil && len(j.Index) != n {
				return invalid("jobs[%d] (%s): %d indices for %d values", i, j.Name, len(j.Index), n)
			}
		} else if len(j.B) != len(j.A) {
			return invalid("jobs[%d] (%s): a has %d values, b has %d", i, j.Name, len(j.A), len(j.B))
		}
		if len(j.Weights) > 1 && len(j.Weights) != n {
			return invalid("jobs[%d] (%s): %d weights for %d values", i, j.Name, len(j.Weights), n)
		}
	}
	return nil
}
