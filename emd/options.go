package emd

import (
	"fmt"

	"github.com/katalvlaran/emdist/linprog"
)

const (
	// DefaultP is the Minkowski order used by FromPointsEuclidean.
	DefaultP = 2.0

	// FlowCleanTolerance: flows in (−FlowCleanTolerance, 0) are simplex
	// round-off and are reported as 0. Anything more negative is a solver
	// failure.
	FlowCleanTolerance = 1e-9
)

// Method selects how the transportation problem is solved.
type Method int

const (
	// MethodSimplex builds the LP with transport.Build and hands it to the
	// configured linprog.Solver. This is the default.
	MethodSimplex Method = iota

	// MethodNetwork solves the transportation network directly with
	// successive shortest paths (package flow). The solver set by
	// WithSolver is not used.
	MethodNetwork
)

// String returns the flag spelling of m.
func (m Method) String() string {
	switch m {
	case MethodSimplex:
		return "simplex"
	case MethodNetwork:
		return "network"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "simplex" or "network" to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "simplex":
		return MethodSimplex, nil
	case "network":
		return MethodNetwork, nil
	default:
		return 0, fmt.Errorf("emd: unknown method %q (want simplex or network)", s)
	}
}

const (
	panicNilSolver     = "emd: WithSolver: solver must be non-nil"
	panicUnknownMethod = "emd: WithMethod: unknown method"
)

// defaultSolver is stateless after construction and shared by all calls.
var defaultSolver linprog.Solver = linprog.NewSimplex()

// Option configures a single Distance/FromPoints call.
type Option func(*options)

type options struct {
	solver linprog.Solver
	method Method
}

// WithSolver replaces the LP backend. Panics on nil (programmer error).
func WithSolver(s linprog.Solver) Option {
	if s == nil {
		panic(panicNilSolver)
	}
	return func(o *options) { o.solver = s }
}

// WithMethod picks the solution method. Panics on an unknown Method.
func WithMethod(m Method) Option {
	if m != MethodSimplex && m != MethodNetwork {
		panic(panicUnknownMethod)
	}
	return func(o *options) { o.method = m }
}

func gatherOptions(opts []Option) options {
	o := options{solver: defaultSolver, method: MethodSimplex}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
