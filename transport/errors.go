package transport

import (
	"errors"

	"github.com/katalvlaran/emdist/linprog"
)

// MassTolerance bounds |Σx − Σy| for a buildable problem. It equals the
// solver's redundancy tolerance; a looser bound would let presolve reject
// programs this package accepted.
const MassTolerance = linprog.DefaultRedundancyTolerance

var (
	// ErrShapeMismatch: cost matrix shape disagrees with the weight vector
	// lengths, or an input is nil or empty.
	ErrShapeMismatch = errors.New("transport: shape mismatch")

	// ErrMassImbalance: |Σx − Σy| >= MassTolerance.
	ErrMassImbalance = errors.New("transport: total masses differ")

	// ErrInvalidValue: a weight or cost is NaN, ±Inf or negative.
	ErrInvalidValue = errors.New("transport: invalid weight or cost")
)
