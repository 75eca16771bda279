// Package check evaluates a first-letters solution against case files and
// reports whether every case passes.
package check

import (
	"context"
	"fmt"
	"io"

	"github.com/flarebyte/initials/internal/acronym"
	"github.com/flarebyte/initials/internal/cases"
	"github.com/flarebyte/initials/internal/gitinfo"
	"github.com/flarebyte/initials/internal/solution"
)

const (
	StatusSuccess  = "Success"
	StatusFailure  = "Failure"
	MessageSuccess = "Solution is correct!"
	MessageFailure = "Try again. Some test cases failed."

	// ReferenceSolution names the built-in extractor in reports.
	ReferenceSolution = "<reference>"
)

// Solver maps a sentence to its acronym. violation is non-empty when the
// solver was stopped by a sandbox limit.
type Solver interface {
	Call(ctx context.Context, sentence string) (got string, violation string, err error)
}

type referenceSolver struct{}

func (referenceSolver) Call(_ context.Context, sentence string) (string, string, error) {
	return acronym.Extract(sentence), "", nil
}

// Options selects the cases and the solution to check.
type Options struct {
	Cases       string
	NoGitignore bool
	// Solution is a Lua file path; empty checks the reference extractor.
	Solution string
	Function string
	Limits   solution.Limits
	// Progress receives one line per evaluated case when non-nil.
	Progress io.Writer
}

// Result is the outcome of one case.
type Result struct {
	Locator  string `json:"locator" yaml:"locator"`
	Name     string `json:"name" yaml:"name"`
	Input    string `json:"input" yaml:"input"`
	Expected string `json:"expected" yaml:"expected"`
	Got      string `json:"got" yaml:"got"`
	Pass     bool   `json:"pass" yaml:"pass"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report aggregates all results. Field order is stable for deterministic output.
type Report struct {
	Status   string          `json:"status" yaml:"status"`
	Message  string          `json:"message" yaml:"message"`
	Solution string          `json:"solution" yaml:"solution"`
	Commit   *gitinfo.Commit `json:"commit,omitempty" yaml:"commit,omitempty"`
	Passed   int             `json:"passed" yaml:"passed"`
	Failed   int             `json:"failed" yaml:"failed"`
	Results  []Result        `json:"results" yaml:"results"`
}

// OK reports whether every case passed.
func (r Report) OK() bool { return r.Status == StatusSuccess }

// Run loads the cases and the solution described by opts and evaluates them.
// Errors are returned only for problems loading inputs; failing cases are
// reported in the Report.
func Run(ctx context.Context, opts Options) (Report, error) {
	cs, err := cases.Load(opts.Cases, opts.NoGitignore)
	if err != nil {
		return Report{}, err
	}
	rep := Report{Solution: ReferenceSolution}
	var solver Solver = referenceSolver{}
	if opts.Solution != "" {
		s, err := solution.Load(opts.Solution, opts.Function, opts.Limits)
		if err != nil {
			return Report{}, err
		}
		solver = s
		rep.Solution = s.Name()
		commit, err := gitinfo.Head(opts.Solution)
		if err != nil {
			return Report{}, err
		}
		rep.Commit = commit
	}
	rep.Results = Evaluate(ctx, solver, cs, opts.Progress)
	summarize(&rep)
	return rep, nil
}

// Evaluate runs every case sequentially through solver.
func Evaluate(ctx context.Context, solver Solver, cs []cases.Case, progress io.Writer) []Result {
	out := make([]Result, 0, len(cs))
	failed := 0
	for i, c := range cs {
		r := Result{Locator: c.Locator, Name: c.Name, Input: c.Input, Expected: c.Expected}
		got, violation, err := solver.Call(ctx, c.Input)
		switch {
		case err != nil:
			r.Error = err.Error()
		case violation != "":
			r.Error = violation
		default:
			r.Got = got
			r.Pass = got == c.Expected
		}
		if !r.Pass {
			failed++
		}
		out = append(out, r)
		if progress != nil {
			_, _ = fmt.Fprintf(progress, "progress case=%d/%d failed=%d\n", i+1, len(cs), failed)
		}
	}
	return out
}

func summarize(rep *Report) {
	rep.Passed, rep.Failed = 0, 0
	for _, r := range rep.Results {
		if r.Pass {
			rep.Passed++
		} else {
			rep.Failed++
		}
	}
	// Nothing ran, so nothing was shown to be correct.
	if rep.Failed == 0 && len(rep.Results) > 0 {
		rep.Status, rep.Message = StatusSuccess, MessageSuccess
		return
	}
	rep.Status, rep.Message = StatusFailure, MessageFailure
}
