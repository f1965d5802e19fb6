// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/cockroachdb/errors"
)

// ErrTooFewVertices indicates that a size parameter (n, k, size) is smaller
// than the minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error at composition time, such
// as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// Method tags prefix error messages.
const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"
	methodClustered    = "Clustered"
)

// Parameter minima.
const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
	minSparseNodes   = 1
	minClusters      = 1
	minClusterSize   = 1
	probMin          = 0.0
	probMax          = 1.0
)

// validateMin returns ErrTooFewVertices with method context if v < lo.
func validateMin(method, name string, v, lo int) error {
	if v < lo {
		return errors.Wrapf(ErrTooFewVertices, "%s: %s=%d < min=%d", method, name, v, lo)
	}
	return nil
}

// validateProbability returns ErrInvalidProbability if p is not in [0,1].
func validateProbability(method, name string, p float64) error {
	if !(p >= probMin && p <= probMax) {
		return errors.Wrapf(ErrInvalidProbability, "%s: %s=%.6f not in [%.1f,%.1f]", method, name, p, probMin, probMax)
	}
	return nil
}

// needsRand reports whether sampling p requires an RNG.
func needsRand(p float64) bool {
	return p > probMin && p < probMax
}
