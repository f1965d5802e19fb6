// SPDX-License-Identifier: MIT

package builder

// Path returns a Constructor that appends n nodes linked in a chain
// v0→v1→…→v(n-1).
//
// Complexity: O(n) nodes, O(n) links.
// Errors: ErrTooFewVertices if n < 2.
func Path(n int) Constructor {
	return func(d *Dataset, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}
		names := d.addNodes(cfg, n)
		for i := 0; i+1 < n; i++ {
			d.addLink(cfg, names[i], names[i+1])
		}
		return nil
	}
}

// Cycle returns a Constructor that appends a closed ring of n nodes.
//
// Errors: ErrTooFewVertices if n < 3.
func Cycle(n int) Constructor {
	return func(d *Dataset, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}
		names := d.addNodes(cfg, n)
		for i := 0; i < n; i++ {
			d.addLink(cfg, names[i], names[(i+1)%n])
		}
		return nil
	}
}

// Star returns a Constructor that appends a hub and n-1 leaves, each leaf
// linked from the hub. The hub is the first node added, so it becomes the
// cluster anchor.
//
// Errors: ErrTooFewVertices if n < 2.
func Star(n int) Constructor {
	return func(d *Dataset, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		names := d.addNodes(cfg, n)
		for _, leaf := range names[1:] {
			d.addLink(cfg, names[0], leaf)
		}
		return nil
	}
}

// Complete returns a Constructor that appends n nodes with a link i→j for
// every i < j.
//
// Complexity: O(n²) links.
// Errors: ErrTooFewVertices if n < 1.
func Complete(n int) Constructor {
	return func(d *Dataset, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}
		names := d.addNodes(cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.addLink(cfg, names[i], names[j])
			}
		}
		return nil
	}
}

// RandomSparse returns a Constructor that appends n nodes and keeps each
// pair i<j as a link i→j with probability p.
//
// Errors:
//   - ErrTooFewVertices if n < 1.
//   - ErrInvalidProbability if p ∉ [0,1].
//   - ErrNeedRandSource if 0 < p < 1 and no RNG is configured.
func RandomSparse(n int, p float64) Constructor {
	return func(d *Dataset, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, "n", n, minSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, "p", p); err != nil {
			return err
		}
		if needsRand(p) && cfg.rng == nil {
			return ErrNeedRandSource
		}
		names := d.addNodes(cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if keep(cfg, p) {
					d.addLink(cfg, names[i], names[j])
				}
			}
		}
		return nil
	}
}

// keep samples a Bernoulli(p) trial. p=0 and p=1 never touch the RNG.
func keep(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
