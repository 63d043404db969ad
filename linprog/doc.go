// Package linprog describes linear programs in canonical form and solves them.
//
// A Program is
//
//	minimize    C·v
//	subject to  AEq·v =  BEq
//	            AUb·v <= BUb
//
// with v free in sign. Constraint matrices are gonum mat.Matrix values, so a
// producer may hand over an index-computed matrix instead of a materialized
// one.
//
// Solver is the collaborator contract: it returns a Solution whose Status is
// StatusOptimal, or an error wrapping ErrSolveFailed together with a
// Solution carrying the failure Status.
//
// Simplex is the default Solver. It converts the program to standard form
// with gonum's lp.Convert, removes linearly dependent equality rows
// (presolve), and runs gonum's lp.Simplex (Bland's rule, so degenerate
// programs do not cycle).
//
// Equality systems with a consistent redundant row are expected input, not
// an error: the presolve drops rows whose residual after elimination is
// within the redundancy tolerance and reports StatusInfeasible only when a
// dependent row disagrees on its right-hand side.
//
// Solvers hold no mutable state after construction; concurrent Solve calls
// are safe.
package linprog
