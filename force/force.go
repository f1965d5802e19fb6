// SPDX-License-Identifier: MIT

package force

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/forcelayout/cluster"
	"github.com/katalvlaran/forcelayout/core"
	"github.com/katalvlaran/forcelayout/quadtree"
)

// Force is one kernel. Apply mutates node positions or velocities in place.
type Force interface {
	Name() string
	Apply(ctx *Context, alpha float64)
}

// Initializer is implemented by kernels that precompute per-graph state.
// The simulation calls Initialize whenever the graph or partition changes.
type Initializer interface {
	Initialize(ctx *Context)
}

// Context is the explicit state every kernel reads: the bound graph, its
// cluster partition and the viewport.
type Context struct {
	Graph     *core.Graph
	Partition *cluster.Partition

	Width, Height float64

	index *quadtree.Tree[*core.Node]
}

// NewContext returns a Context; nil graph or partition become empty ones.
func NewContext(g *core.Graph, p *cluster.Partition, width, height float64) *Context {
	if g == nil {
		g = core.Empty()
	}
	if p == nil {
		p = cluster.Recompute(nil, cluster.DefaultPalette())
	}
	return &Context{Graph: g, Partition: p, Width: width, Height: height}
}

// Reindex snapshots the current node positions into a fresh spatial index.
func (c *Context) Reindex() *quadtree.Tree[*core.Node] {
	c.index = quadtree.Build(c.Graph.Nodes())
	return c.index
}

// Index returns the last snapshot, building one if none exists.
func (c *Context) Index() *quadtree.Tree[*core.Node] {
	if c.index == nil {
		return c.Reindex()
	}
	return c.index
}

// Center returns the middle of the viewport.
func (c *Context) Center() r2.Vec {
	return r2.Vec{X: c.Width / 2, Y: c.Height / 2}
}

// Initialize calls Initialize on every kernel that has one.
func Initialize(ctx *Context, forces ...Force) {
	for _, f := range forces {
		if in, ok := f.(Initializer); ok {
			in.Initialize(ctx)
		}
	}
}

// degenerate reports a displacement that must not be divided by.
func degenerate(x, y float64) bool {
	return (x == 0 && y == 0) || x != x || y != y
}

// push moves a toward and b away from the displacement x,y (or the reverse
// for negative k) by the fraction k.
func push(a, b *core.Node, x, y, k float64) {
	x *= k
	y *= k
	a.X -= x
	a.Y -= y
	b.X += x
	b.Y += y
}
