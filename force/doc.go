// SPDX-License-Identifier: MIT

// Package force implements the force kernels of a forcelayout simulation.
//
// A kernel reads and writes the live nodes of a core.Graph through a
// Context. Kernels run in a fixed order every tick:
//
//	Link               - springs on velocities; rest length from link value
//	ClusterAttraction  - members and their anchor pulled together (positions)
//	Collision          - linked pairs pushed apart, cluster-aware (positions)
//	ManyBody           - optional Barnes-Hut charge (velocities)
//	Center             - optional drift correction (positions)
//
// Eligibility:
//
//	Only nodes with a non-zero cluster that are not unassigned-painted take
//	part in ClusterAttraction and Collision, on either side of a pair.
//	Cluster-0 nodes move under the link force (and charge, when enabled).
//
// Degenerate geometry:
//
//	Every kernel skips a pair whose displacement is zero or NaN instead of
//	dividing by it, so coincident nodes never spread NaN.
//
// Link rest length (RestLength):
//
//	s = clamp(1 + |v|/max * (minStrength - 1), minStrength, 1)   (s = 1 if max == 0)
//	v <  0  ->  base / s      stretched: inhibitory links push apart
//	v >= 0  ->  base * s      shortened: strong links pull together
package force
