// Package problem decodes EMD problem files and runs them through package emd.
//
// A file holds either one problem at the top level or a list under
// "problems":
//
//	problems:
//	  - name: histogram
//	    weights_x: [1, 0, 0, 0]
//	    weights_y: [0, 0, 0, 1]
//	    cost:
//	      - [0, 1, 2, 3]
//	      - [1, 0, 1, 2]
//	      - [2, 1, 0, 1]
//	      - [3, 2, 1, 0]
//	  - name: points
//	    weights_x: [1]
//	    points_x: [[0]]
//	    weights_y: [1]
//	    points_y: [[10]]
//	    p: 1
//
// A problem uses either cost or points_x/points_y, never both.
package problem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/emdist/emd"
	"github.com/katalvlaran/emdist/matrix"
)

// ErrInvalidProblem is returned for problems that mix or omit cost sources.
var ErrInvalidProblem = errors.New("problem: invalid problem")

// Problem is one EMD computation as written in a problem file.
type Problem struct {
	Name     string      `yaml:"name"`
	WeightsX []float64   `yaml:"weights_x"`
	WeightsY []float64   `yaml:"weights_y"`
	Cost     [][]float64 `yaml:"cost,omitempty"`
	PointsX  [][]float64 `yaml:"points_x,omitempty"`
	PointsY  [][]float64 `yaml:"points_y,omitempty"`
	P        *float64    `yaml:"p,omitempty"`
}

// File is the top-level document.
type File struct {
	Problems []Problem `yaml:"problems"`
	Problem  `yaml:",inline"`
}

// isZero reports whether no field of p was set.
func (p Problem) isZero() bool {
	return p.Name == "" && p.WeightsX == nil && p.WeightsY == nil &&
		p.Cost == nil && p.PointsX == nil && p.PointsY == nil && p.P == nil
}

// Outcome pairs a problem with its result or error.
type Outcome struct {
	Name   string
	Result emd.Result
	Err    error
}

// Load reads and decodes a problem file.
func Load(path string) ([]Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open problem file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a problem document. Unnamed problems are named by position.
func Decode(r io.Reader) ([]Problem, error) {
	var doc File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode problem file: %w", err)
	}

	probs := doc.Problems
	switch {
	case len(probs) == 0:
		probs = []Problem{doc.Problem}
	case !doc.Problem.isZero():
		return nil, fmt.Errorf("%w: top-level problem fields next to a problems list", ErrInvalidProblem)
	}
	for i := range probs {
		if probs[i].Name == "" {
			probs[i].Name = fmt.Sprintf("problem-%d", i+1)
		}
	}

	return probs, nil
}

// Solve runs one problem through the matching emd entry point. defaultP is
// used for point problems that do not set p.
func (p Problem) Solve(defaultP float64, opts ...emd.Option) (emd.Result, error) {
	hasCost := len(p.Cost) > 0
	hasPoints := len(p.PointsX) > 0 || len(p.PointsY) > 0

	switch {
	case hasCost && hasPoints:
		return emd.Result{}, fmt.Errorf("%w: %q sets both cost and points", ErrInvalidProblem, p.Name)
	case hasCost:
		cost, err := matrix.NewFromRows(p.Cost)
		if err != nil {
			return emd.Result{}, fmt.Errorf("%w: cost: %w", emd.ErrShapeMismatch, err)
		}
		return emd.Distance(p.WeightsX, p.WeightsY, cost, opts...)
	case hasPoints:
		norm := defaultP
		if p.P != nil {
			norm = *p.P
		}
		return emd.FromPoints(p.WeightsX, p.PointsX, p.WeightsY, p.PointsY, norm, opts...)
	default:
		return emd.Result{}, fmt.Errorf("%w: %q has neither cost nor points", ErrInvalidProblem, p.Name)
	}
}

// SolveAll solves problems concurrently, at most jobs at a time (jobs <= 0
// means no limit). Outcomes keep input order; per-problem failures are
// reported in Outcome.Err and do not stop the others. Only ctx cancellation
// aborts the batch, returning ctx.Err().
func SolveAll(ctx context.Context, probs []Problem, jobs int, defaultP float64, opts ...emd.Option) ([]Outcome, error) {
	out := make([]Outcome, len(probs))

	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i := range probs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := probs[i].Solve(defaultP, opts...)
			out[i] = Outcome{Name: probs[i].Name, Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
