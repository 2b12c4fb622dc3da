// Package filter restricts a dataset with boolean expressions such as
//
//	poverty > 15 && abbr != "DC"
//
// Expressions see the record's state, abbr and the six metrics by their
// column names.
package filter

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/san-kum/healthscatter/internal/dataset"
)

// ErrCompile indicates an expression that does not compile to a boolean.
var ErrCompile = errors.New("filter: invalid expression")

type env struct {
	State      string  `expr:"state"`
	Abbr       string  `expr:"abbr"`
	Poverty    float64 `expr:"poverty"`
	Age        float64 `expr:"age"`
	Income     float64 `expr:"income"`
	Healthcare float64 `expr:"healthcare"`
	Smokes     float64 `expr:"smokes"`
	Obesity    float64 `expr:"obesity"`
}

func envOf(r dataset.Record) env {
	return env{
		State:      r.State,
		Abbr:       r.Abbr,
		Poverty:    r.Poverty,
		Age:        r.Age,
		Income:     r.Income,
		Healthcare: r.Healthcare,
		Smokes:     r.Smokes,
		Obesity:    r.Obesity,
	}
}

// Filter is a compiled record predicate.
type Filter struct {
	source  string
	program *vm.Program
}

// Compile parses and type-checks source.
func Compile(source string) (*Filter, error) {
	program, err := expr.Compile(source, expr.Env(env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	return &Filter{source: source, program: program}, nil
}

// String returns the expression source.
func (f *Filter) String() string { return f.source }

// Match evaluates the predicate against r.
func (f *Filter) Match(r dataset.Record) (bool, error) {
	out, err := expr.Run(f.program, envOf(r))
	if err != nil {
		return false, fmt.Errorf("filter: %s: %w", r.Abbr, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Apply returns the records of ds the predicate accepts. The first
// evaluation error aborts the filter.
func (f *Filter) Apply(ds *dataset.Dataset) (*dataset.Dataset, error) {
	var firstErr error
	out := ds.Filter(func(r dataset.Record) bool {
		if firstErr != nil {
			return false
		}
		ok, err := f.Match(r)
		if err != nil {
			firstErr = err
			return false
		}
		return ok
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}
