// Package transport turns a pair of weight vectors and a cost matrix into the
// linear program of the discrete transportation problem.
//
// For x with r support points, y with c support points and an r×c cost
// matrix, the flow variable v[i*c+j] is the mass moved from x[i] to y[j]:
//
//	minimize    Σ cost[i][j]·v[i*c+j]
//	subject to  Σ_j v[i*c+j] = x[i]      i = 0..r-1   (mass leaving x[i])
//	            Σ_i v[i*c+j] = y[j]      j = 0..c-1   (mass reaching y[j])
//	            −v[k] <= 0               k = 0..r·c-1
//
// The r+c equality rows always contain one linearly dependent row when the
// total masses agree. It is kept: the constraint set stays complete and
// symmetric between x and y, and the solver's presolve removes it.
//
// Constraint matrices are index-computed gonum mat.Matrix values, so no
// per-row scratch arrays are materialized while building.
package transport
