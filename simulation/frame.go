// SPDX-License-Identifier: MIT

package simulation

import (
	"github.com/katalvlaran/forcelayout/cluster"
	"github.com/katalvlaran/forcelayout/core"
)

// NodeState is a copy of one node as a renderer needs it.
type NodeState struct {
	Name    string
	Cluster int
	Color   cluster.Color
	X, Y    float64
	Radius  float64
	Pinned  bool
	Fixed   bool
	Painted bool
	Hits    int
}

// LinkState is a copy of one bound link.
type LinkState struct {
	Source string
	Target string
	Value  float64
	Kind   core.LinkKind
}

// Frame is what a renderer receives after each tick.
type Frame struct {
	Tick   int
	Alpha  float64
	Energy float64
	Nodes  []NodeState
	Links  []LinkState
	// Colors maps every non-zero cluster id to its color.
	Colors map[int]cluster.Color
}

// Node returns the state of name.
func (f Frame) Node(name string) (NodeState, bool) {
	for _, n := range f.Nodes {
		if n.Name == name {
			return n, true
		}
	}
	return NodeState{}, false
}

// snapshot copies the live state. Caller holds the lock.
func (s *Simulation) snapshot() Frame {
	g, p := s.ctx.Graph, s.ctx.Partition
	f := Frame{
		Tick:   s.tick,
		Alpha:  s.alpha,
		Energy: s.energy,
		Nodes:  make([]NodeState, 0, g.NodeCount()),
		Links:  make([]LinkState, 0, g.LinkCount()),
		Colors: p.Colors(),
	}
	for _, n := range g.Nodes() {
		f.Nodes = append(f.Nodes, NodeState{
			Name:    n.Name,
			Cluster: n.Cluster,
			Color:   nodeColor(n, p),
			X:       n.X,
			Y:       n.Y,
			Radius:  n.Radius,
			Pinned:  n.Pinned(),
			Fixed:   n.Fixed,
			Painted: n.Paint.Painted,
			Hits:    n.Hits,
		})
	}
	for _, l := range g.Links() {
		f.Links = append(f.Links, LinkState{
			Source: l.Source.Name,
			Target: l.Target.Name,
			Value:  l.Value,
			Kind:   l.Kind,
		})
	}
	return f
}

// nodeColor prefers the painted color over the structural cluster color.
func nodeColor(n *core.Node, p *cluster.Partition) cluster.Color {
	if c, ok := n.Paint.Cluster.Get(); ok && n.Paint.Painted {
		return cluster.Color(c)
	}
	return p.Color(n.Cluster)
}
