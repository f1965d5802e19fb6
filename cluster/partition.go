// SPDX-License-Identifier: MIT

package cluster

import (
	"github.com/katalvlaran/forcelayout/core"
)

// Cluster is one group of nodes sharing a non-zero cluster id.
type Cluster struct {
	ID      int
	Members []*core.Node
	Color   Color
}

// Anchor returns member 0, or nil for an empty cluster.
func (c *Cluster) Anchor() *core.Node {
	if c == nil || len(c.Members) == 0 {
		return nil
	}
	return c.Members[0]
}

// Partition is the result of one Recompute.
type Partition struct {
	clusters    []*Cluster
	byID        map[int]*Cluster
	unclustered []*core.Node
	palette     Palette
}

// Clusters returns the non-zero clusters in first-seen order.
func (p *Partition) Clusters() []*Cluster {
	return p.clusters
}

// Cluster returns the cluster with the given id. Id 0 is never found.
func (p *Partition) Cluster(id int) (*Cluster, bool) {
	c, ok := p.byID[id]
	return c, ok
}

// Anchor returns the anchor of cluster id.
func (p *Partition) Anchor(id int) (*core.Node, bool) {
	c, ok := p.byID[id]
	if !ok {
		return nil, false
	}
	a := c.Anchor()
	return a, a != nil
}

// Len returns the number of non-zero clusters.
func (p *Partition) Len() int {
	return len(p.clusters)
}

// Unclustered returns the cluster-0 nodes in first-seen order.
func (p *Partition) Unclustered() []*core.Node {
	return p.unclustered
}

// Color returns the color of cluster id; id 0 gets the unclustered color and
// unknown ids the fallback.
func (p *Partition) Color(id int) Color {
	if id == core.Unclustered {
		return p.palette.Unclustered
	}
	if c, ok := p.byID[id]; ok {
		return c.Color
	}
	return p.palette.Fallback
}

// Colors returns the id -> color mapping of the non-zero clusters.
func (p *Partition) Colors() map[int]Color {
	out := make(map[int]Color, len(p.clusters))
	for _, c := range p.clusters {
		out[c.ID] = c.Color
	}
	return out
}

// Members returns the member names of each non-zero cluster, keyed by id.
// Handy for comparing partitions across recomputes.
func (p *Partition) Members() map[int][]string {
	out := make(map[int][]string, len(p.clusters))
	for _, c := range p.clusters {
		names := make([]string, len(c.Members))
		for i, n := range c.Members {
			names[i] = n.Name
		}
		out[c.ID] = names
	}
	return out
}

// group splits nodes into first-seen ordered clusters plus the cluster-0 set.
func group(nodes []*core.Node) (order []int, members map[int][]*core.Node, unclustered []*core.Node) {
	members = make(map[int][]*core.Node)
	seen := make(map[*core.Node]struct{}, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}

		if n.Cluster == core.Unclustered {
			unclustered = append(unclustered, n)
			continue
		}
		if _, ok := members[n.Cluster]; !ok {
			order = append(order, n.Cluster)
		}
		members[n.Cluster] = append(members[n.Cluster], n)
	}
	return order, members, unclustered
}

// Recompute partitions nodes with a fresh color assignment.
func Recompute(nodes []*core.Node, palette Palette) *Partition {
	return NewAssigner(palette).Recompute(nodes)
}
