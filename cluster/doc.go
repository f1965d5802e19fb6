// SPDX-License-Identifier: MIT

// Package cluster partitions live nodes by their cluster id and hands every
// cluster a color from a fixed palette.
//
// Partition rules
//
//   - Nodes are grouped by Node.Cluster in first-seen order. No sorting, and
//     no deduplication beyond pointer identity.
//   - Member 0 of each cluster is its anchor: the attraction target for the
//     other members.
//   - Cluster id 0 is reserved for unclustered nodes. They are kept apart
//     (Partition.Unclustered) and never receive a palette color.
//   - A partition is recomputed from scratch on every data update; cluster
//     indices may shift between calls. Track nodes by name, not by index.
//
// Colors
//
//	Recompute assigns the i-th non-zero cluster the i-th free palette color.
//	An Assigner remembers which id holds which color, so ids that survive a
//	data update keep their color and new ids fill the gaps. When clusters
//	outnumber the palette, the overflow policy either hands out the fallback
//	color (OverflowFallback, default) or wraps around (OverflowWrap). Neither
//	path returns an error.
package cluster
