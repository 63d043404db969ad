package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Shortest.
var (
	// ErrNilGraph indicates that a nil Graph was passed to Shortest.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates a source or target outside 0..Order()-1.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates a negative or NaN arc weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was zero, negative or NaN,
	// which would make every arc (including zero-weight arcs) impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// NoVertex marks "no predecessor" in the prev slice.
const NoVertex = -1

// Graph is a directed graph on vertices 0..Order()-1.
type Graph interface {
	// Order returns the number of vertices.
	Order() int

	// VisitArcs calls fn once for every arc leaving u.
	VisitArcs(u int, fn func(v int, w float64))
}

// Arc is one outgoing arc of an Adjacency list.
type Arc struct {
	To     int
	Weight float64
}

// Adjacency is a plain adjacency-list Graph: Adjacency[u] lists u's arcs.
type Adjacency [][]Arc

// Order implements Graph.
func (a Adjacency) Order() int { return len(a) }

// VisitArcs implements Graph.
func (a Adjacency) VisitArcs(u int, fn func(v int, w float64)) {
	for _, arc := range a[u] {
		fn(arc.To, arc.Weight)
	}
}

// Options configures the behavior of Shortest.
//
// ReturnPath       – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance      – vertices farther than this are never finalized. Default +Inf.
// InfEdgeThreshold – arcs with weight ≥ this threshold are impassable. Default +Inf.
// Target           – if ≥ 0, stop once Target is finalized. Default NoVertex.
type Options struct {
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
	Target           int
}

// Option represents a functional option for configuring Shortest.
type Option func(*Options)

// WithReturnPath enables generation of the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Panics on negative or NaN values (programmer error).
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats arcs with weight ≥ threshold as missing.
// Panics on threshold <= 0 or NaN.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithTarget stops the search once target is finalized. Distances of
// vertices not yet finalized at that point are upper bounds no smaller than
// dist[target].
func WithTarget(target int) Option {
	return func(o *Options) {
		o.Target = target
	}
}

// DefaultOptions returns the defaults: no path, no distance cap, no
// impassable arcs, no target.
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		Target:           NoVertex,
	}
}
