// SPDX-License-Identifier: MIT

// Package quadtree is the spatial index used by the collision kernel: a
// point quadtree over a snapshot of item positions, rebuilt on every tick.
//
// What
//
//   - Build(items) snapshots Coord2() of every item and indexes it.
//   - Visit walks quads in pre-order; the visitor prunes a quad's children by
//     returning true (the d3 quadtree.visit contract).
//   - VisitRegion reports every item whose snapshot position lies inside an
//     axis-aligned box, skipping quads that cannot intersect it.
//
// Snapshot semantics
//
//	The tree never follows items after Build. A kernel that moves nodes while
//	walking the tree still sees build-time positions, which is what a single
//	force pass needs. The next tick rebuilds from scratch.
//
// Degenerate input
//
//   - Empty input yields an empty tree; every query visits nothing.
//   - Items at NaN/Inf positions are not indexed and are counted by Skipped().
//   - Coincident items share one leaf. Subdivision depth is bounded so nearly
//     coincident floats cannot recurse without end.
//
// Complexity (n items)
//
//   - Build:        O(n log n) expected, O(n·maxDepth) worst case.
//   - VisitRegion:  O(log n + k) expected for k reported items.
package quadtree
