package recipe

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hupe1980/valgebra"
	"github.com/hupe1980/valgebra/batch"
	"github.com/hupe1980/valgebra/blend"
	"github.com/hupe1980/valgebra/selector"
	"github.com/hupe1980/valgebra/subsel"
	"github.com/hupe1980/valgebra/value"
)

// Result is the outcome of a recipe run.
type Result struct {
	RunID string      `yaml:"run_id" json:"run_id"`
	Name  string      `yaml:"name" json:"name"`
	Jobs  []JobResult `yaml:"jobs" json:"jobs"`
}

// JobResult holds the rendered output values of one job.
type JobResult struct {
	Name string `yaml:"name" json:"name"`
	// Kind is the kind of the rendered values.
	Kind string `yaml:"kind" json:"kind"`
	// Mode is the mode that actually ran after trait gating.
	Mode   string   `yaml:"mode" json:"mode"`
	Values []string `yaml:"values" json:"values"`
}

type runOptions struct {
	runID func() string
}

// RunOption configures Run.
type RunOption func(*runOptions)

// WithRunID fixes how run IDs are generated.
func WithRunID(gen func() string) RunOption {
	return func(o *runOptions) {
		if gen != nil {
			o.runID = gen
		}
	}
}

// Run executes every job in order. Attributes of the recipe are declared on
// the engine's resolver first. The first failing job stops the run with a
// *valgebra.JobError.
func (r *Recipe) Run(ctx context.Context, e *valgebra.Engine, optFns ...RunOption) (*Result, error) {
	o := runOptions{runID: func() string { return uuid.Must(uuid.NewV7()).String() }}
	for _, fn := range optFns {
		fn(&o)
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	for name, kind := range r.Attributes {
		k, _ := value.ParseKind(kind)
		e.Resolver().Declare(selector.Elements, name, k)
	}

	res := &Result{RunID: o.runID(), Name: r.Name}
	logger := e.Logger().WithRun(res.RunID)

	for i := range r.Jobs {
		j := &r.Jobs[i]
		jr, err := runJob(ctx, e, j)
		if err != nil {
			err = valgebra.NewJobError(j.Name, i, err)
			logger.LogJob(ctx, j.Name, 0, err)
			return res, err
		}
		logger.LogJob(ctx, j.Name, len(jr.Values), nil)
		res.Jobs = append(res.Jobs, jr)
	}
	return res, nil
}

func runJob(ctx context.Context, e *valgebra.Engine, j *Job) (JobResult, error) {
	var (
		kind value.Kind
		sel  subsel.Selection
	)
	if j.Path != "" {
		b, err := e.Resolve(j.Path)
		if err != nil {
			return JobResult{}, err
		}
		kind, sel = b.Kind, b.Selection()
	} else {
		k, err := valgebra.ParseKind(j.Kind)
		if err != nil {
			return JobResult{}, err
		}
		kind = k
	}
	mode, err := valgebra.ParseMode(j.Mode)
	if err != nil {
		return JobResult{}, err
	}

	a, err := parseValues(kind, j.A, "a")
	if err != nil {
		return JobResult{}, err
	}

	var op *blend.Operator
	if j.IsAccumulation() {
		src, err := parseValues(kind, j.Values, "values")
		if err != nil {
			return JobResult{}, err
		}
		op = e.Operator(kind, mode, j.Reset)
		if err := e.Accumulate(ctx, mode, j.Reset, a, src, j.Index, j.Weights); err != nil {
			return JobResult{}, err
		}
	} else {
		b, err := parseValues(kind, j.B, "b")
		if err != nil {
			return JobResult{}, err
		}
		op = e.Operator(kind, mode, false)
		if err := e.Blend(ctx, mode, a, a, b, j.Weights); err != nil {
			return JobResult{}, err
		}
	}

	return JobResult{
		Name:   j.Name,
		Kind:   sel.SubKind(kind).String(),
		Mode:   op.Mode().String(),
		Values: render(a, sel),
	}, nil
}

func parseValues(k value.Kind, texts []string, field string) (batch.Buffer, error) {
	buf := batch.Make(k, len(texts))
	for i, s := range texts {
		if !value.Parse(k, s, buf.At(i)) {
			return batch.Buffer{}, fmt.Errorf("%s[%d]: %q is not a valid %s", field, i, s, k)
		}
	}
	return buf, nil
}

// render formats every value, reading it through sel first.
func render(buf batch.Buffer, sel subsel.Selection) []string {
	out := make([]string, buf.Len)
	sub := sel.SubKind(buf.Kind)
	tmp := value.New(sub)
	for i := range out {
		p := buf.At(i)
		if sel.IsValid() {
			sel.Get(buf.Kind, p, sub, tmp)
			p = tmp
		}
		out[i] = value.Format(sub, p)
	}
	return out
}
