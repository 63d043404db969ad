// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults (single source of truth).
//
// Dense has no per-instance configuration beyond its NaN/Inf guard; the
// defaults below are what every constructor starts from.
package matrix

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on
	// construction and Set. Cost matrices and plans are always finite.
	DefaultValidateNaNInf = true

	// DefaultRelTol and DefaultAbsTol are the AllClose tolerances used by
	// callers that do not have a domain-specific policy.
	DefaultRelTol = 1e-9
	DefaultAbsTol = 1e-12
)
