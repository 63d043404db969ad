// Package emdist computes the Earth Mover's Distance (1-Wasserstein) between
// discrete weighted distributions.
//
// What is inside:
//
//   - matrix: fixed-shape row-major Dense with safe At/Set and sums
//   - transport: the transportation LP (C, marginal equalities, v ≥ 0)
//   - linprog: canonical LP types and a gonum-backed simplex solver
//   - flow: the same problem as a min-cost flow (successive shortest paths)
//   - dijkstra: index-based shortest paths used by flow
//   - minkowski: p-norm distances and pairwise cost matrices
//   - emd: Distance, FromPoints, Result and the error taxonomy
//   - cmd/emd: CLI solving YAML problem files
//
// Quick example:
//
//	x = [1, 0]     y = [0, 1]     cost = [[0, 1],
//	                                      [1, 0]]
//
//	res, _ := emd.Distance(x, y, cost) // res.Distance == 1
//
// moves the whole unit of mass one step, so the distance is 1.
//
//	go get github.com/katalvlaran/emdist/emd
package emdist
