// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/forcelayout/core"
)

// Clustered returns a Constructor for a stochastic block model: k clusters
// of size nodes each, ids 1..k (offset by the InCluster id when set).
// Pairs within a cluster link with probability pIntra, pairs across
// clusters with probability pInter. Links always point from the earlier
// node to the later one.
//
// Complexity: O((k·size)²) trials.
// Errors:
//   - ErrTooFewVertices if k < 1 or size < 1.
//   - ErrInvalidProbability if a probability is outside [0,1].
//   - ErrNeedRandSource if any probability needs sampling and no RNG is set.
func Clustered(k, size int, pIntra, pInter float64) Constructor {
	return func(d *Dataset, cfg builderConfig) error {
		if err := validateMin(methodClustered, "k", k, minClusters); err != nil {
			return err
		}
		if err := validateMin(methodClustered, "size", size, minClusterSize); err != nil {
			return err
		}
		if err := validateProbability(methodClustered, "pIntra", pIntra); err != nil {
			return err
		}
		if err := validateProbability(methodClustered, "pInter", pInter); err != nil {
			return err
		}
		if (needsRand(pIntra) || needsRand(pInter)) && cfg.rng == nil {
			return ErrNeedRandSource
		}

		base := cfg.cluster
		if base == core.Unclustered {
			base = 1
		}
		names := make([]string, 0, k*size)
		of := make([]int, 0, k*size)
		for c := 0; c < k; c++ {
			cc := cfg
			cc.cluster = base + c
			for i := 0; i < size; i++ {
				names = append(names, d.addNode(cc))
				of = append(of, c)
			}
		}

		for i := range names {
			for j := i + 1; j < len(names); j++ {
				p := pInter
				if of[i] == of[j] {
					p = pIntra
				}
				if keep(cfg, p) {
					d.addLink(cfg, names[i], names[j])
				}
			}
		}
		return nil
	}
}
