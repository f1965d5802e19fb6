// SPDX-License-Identifier: MIT

package force

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/forcelayout/core"
	"github.com/katalvlaran/forcelayout/quadtree"
)

// Collision keeps linked nodes apart. Only a pair joined by a visible link
// from the node to its neighbor is corrected; unlinked nodes may overlap.
type Collision struct {
	// Padding separates linked nodes of the same cluster.
	Padding float64
	// ClusterPadding separates linked nodes of different clusters.
	ClusterPadding float64
	// Repulsion multiplies Padding for same-cluster links with negative value.
	Repulsion float64
	// MaxNeighborRadius widens the search box to catch large neighbors.
	MaxNeighborRadius float64
}

// NewCollision returns a collision kernel.
func NewCollision(padding, clusterPadding, repulsion, maxNeighborRadius float64) *Collision {
	return &Collision{
		Padding:           padding,
		ClusterPadding:    clusterPadding,
		Repulsion:         repulsion,
		MaxNeighborRadius: maxNeighborRadius,
	}
}

// Name implements Force.
func (*Collision) Name() string { return "collision" }

// Separation is the distance two linked nodes are pushed to.
func (f *Collision) Separation(a, b *core.Node, value float64) float64 {
	r := a.Radius + b.Radius
	if a.Cluster != b.Cluster {
		return r + f.ClusterPadding
	}
	if value < 0 {
		return r + f.Padding*f.Repulsion
	}
	return r + f.Padding
}

// Apply reindexes the current positions and resolves overlaps.
//
// Implementation:
//   - Stage 1: Snapshot positions into a fresh quadtree (ctx.Reindex), after
//     the earlier kernels of this tick have moved nodes.
//   - Stage 2: For every eligible node d, visit the box of half-size
//     d.Radius + MaxNeighborRadius + max(Padding, ClusterPadding).
//   - Stage 3: For each eligible neighbor o with a visible link d→o, push
//     both apart by (l-r)/l·alpha when l < r, r from Separation.
//
// Behavior highlights:
//   - Cluster-0 and unassigned-painted nodes are skipped on both sides.
//   - Zero or NaN displacements are skipped; nothing is divided by zero.
//   - A pair linked both ways is corrected from each side.
//
// Complexity: O(V log V) build + O(V·k) visits, k = candidates per box.
// Determinism: nodes in graph order, neighbors in quadtree pre-order.
func (f *Collision) Apply(ctx *Context, alpha float64) {
	g := ctx.Graph
	tree := ctx.Reindex()
	margin := f.MaxNeighborRadius + math.Max(f.Padding, f.ClusterPadding)

	for _, d := range g.Nodes() {
		if !d.Eligible() || !d.Finite() {
			continue
		}
		box := quadtree.Around(d.Coord2(), d.Radius+margin)
		tree.VisitRegion(box, func(o *core.Node, _ r2.Vec) bool {
			if o == d || !o.Eligible() {
				return false
			}
			link, ok := g.LinkBetween(d.Name, o.Name, core.LinkVisible)
			if !ok {
				return false
			}

			x, y := d.X-o.X, d.Y-o.Y
			if degenerate(x, y) {
				return false
			}
			l := math.Sqrt(x*x + y*y)
			r := f.Separation(d, o, link.Value)
			if l < r {
				push(d, o, x, y, (l-r)/l*alpha)
			}
			return false
		})
	}
}
