// SPDX-License-Identifier: MIT

package force

import (
	"math"
)

// ClusterAttraction pulls every eligible node and its cluster anchor toward
// each other until they touch. The anchor absorbs the opposite move.
type ClusterAttraction struct{}

// NewClusterAttraction returns the cluster kernel.
func NewClusterAttraction() *ClusterAttraction { return &ClusterAttraction{} }

// Name implements Force.
func (*ClusterAttraction) Name() string { return "cluster" }

// Apply moves positions directly: each eligible member d and its anchor a
// are pushed along d-a by (l-r)/l·alpha, where r = d.Radius + a.Radius.
// Anchors, ineligible nodes and degenerate displacements are skipped.
//
// Complexity: O(V).
func (*ClusterAttraction) Apply(ctx *Context, alpha float64) {
	for _, d := range ctx.Graph.Nodes() {
		if !d.Eligible() {
			continue
		}
		anchor, ok := ctx.Partition.Anchor(d.Cluster)
		if !ok || anchor == d {
			continue
		}

		x, y := d.X-anchor.X, d.Y-anchor.Y
		if degenerate(x, y) {
			continue
		}
		l := math.Sqrt(x*x + y*y)
		r := d.Radius + anchor.Radius
		if l != r {
			push(d, anchor, x, y, (l-r)/l*alpha)
		}
	}
}
