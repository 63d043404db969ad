// Package emd computes the Earth Mover's Distance (1-Wasserstein distance)
// between two discrete weighted distributions.
//
// Two entry points share one pipeline:
//
//	Distance(x, y, cost)             cost → LP → solver → (distance, flow)
//	FromPoints(x, px, y, py, p)      points → Minkowski cost → Distance
//
// The distance is the optimal objective of the transportation LP built by
// package transport; the flow matrix is the solver's flat solution reshaped
// row-major to len(x)×len(y). Row i of the flow sums to x[i] and column j to
// y[j] within solver tolerance.
//
// WithMethod(MethodNetwork) solves the same problem as a min-cost flow
// (package flow) instead of handing the LP to a linprog.Solver. Both methods
// agree on the distance.
//
// Only the distance is a stable contract. When several plans are optimal the
// returned flow depends on the solver and its pivoting rule.
//
// Errors:
//   - ErrShapeMismatch  — lengths/shapes/dimensionality disagree (caller bug).
//   - ErrMassImbalance  — |Σx − Σy| >= transport.MassTolerance; renormalize first.
//   - ErrInvalidValue   — NaN/Inf/negative weight, cost or coordinate.
//   - ErrInvalidNorm    — Minkowski p < 1.
//   - ErrSolverFailure  — the LP solver did not reach optimality; the
//     returned error is a *SolverError carrying the solver Status.
//
// There is no partial result: on error the Result is the zero value. The
// package keeps no state, logs nothing and never retries; calls are safe to
// run concurrently as long as the configured Solver is (the default is).
package emd
