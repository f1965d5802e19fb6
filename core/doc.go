// SPDX-License-Identifier: MIT

// Package core defines the data model shared by every forcelayout component:
// the input records handed over by a data provider (NodeSpec, LinkSpec), the
// live simulation records (Node, Link), and the bound Graph that resolves link
// endpoints to node references.
//
// Records
//
//	NodeSpec / LinkSpec - what a provider supplies. Optional fields are typed
//	                      as Optional[T] instead of being probed at runtime.
//	Node / Link         - what the simulation mutates. Positions and velocities
//	                      are plain float64; pins and paint stay optional.
//
// Binding rules (Build):
//
//   - Node names are unique. A later NodeSpec reusing a name is dropped and
//     reported with ErrDuplicateNode.
//   - A node with no Cluster takes its Community as cluster id; 0 means
//     "unclustered".
//   - A node with no Radius gets DefaultRadius (6).
//   - A node with no Position is placed on a phyllotaxis spiral around the
//     configured center, so fresh nodes never start on top of each other.
//   - A link whose source or target is not a live node is dropped and reported
//     with ErrMalformedLink. Dropping is never fatal.
//   - Link value is normalized: Value, else Weight, else 1. Weight falls back
//     to the normalized Value.
//
// Adjacency
//
//	adjacency[kind][from][to] = *Link
//
// gives O(1) directed lookups (LinkBetween) for the collision kernel. Link
// kinds keep hit-test twins that a renderer may register apart from the links
// that drive forces.
//
// Concurrency:
//
//	A Graph is immutable after Build. Node fields are owned by whichever
//	simulation the graph is bound to; callers must not write positions while
//	that simulation ticks.
//
// Errors:
//
//	ErrEmptyNodeName  - NodeSpec with an empty name.
//	ErrDuplicateNode  - a name already used earlier in the same dataset.
//	ErrMalformedLink  - link endpoint not present in the node set.
package core
