package flow

import (
	"context"
	"errors"

	"github.com/katalvlaran/emdist/matrix"
)

// ErrInfeasible is returned when mass remains but no augmenting path exists.
var ErrInfeasible = errors.New("flow: no augmenting path for remaining mass")

// ErrNotConverged is returned when the augmentation limit is reached.
var ErrNotConverged = errors.New("flow: augmentation limit reached")

// DefaultEpsilon is the default relative capacity threshold.
const DefaultEpsilon = 1e-12

// FlowOptions configures Transport.
//   - Ctx: checked before every augmentation (default context.Background()).
//   - Epsilon: residual capacities ≤ Epsilon·max(1, Σx) count as zero.
//   - MaxAugmentations: safety limit; 0 picks a limit from the network size.
type FlowOptions struct {
	Ctx              context.Context
	Epsilon          float64
	MaxAugmentations int
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:     context.Background(),
		Epsilon: DefaultEpsilon,
	}
}

// normalize fills zero values with defaults.
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if !(o.Epsilon > 0) {
		o.Epsilon = DefaultEpsilon
	}
	if o.MaxAugmentations < 0 {
		o.MaxAugmentations = 0
	}
}

// Plan is an optimal transport plan.
type Plan struct {
	// Flow[i][j] is the mass moved from x[i] to y[j].
	Flow *matrix.Dense

	// Cost is Σ cost[i][j]·Flow[i][j].
	Cost float64

	// Augmentations is the number of shortest-path rounds performed.
	Augmentations int
}
