// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Dataset binding (Build), node lookup by name and directed link lookup
//       by kind.
// Determinism:
//   - Nodes() keeps provider order minus dropped duplicates.
//   - Links() keeps provider order minus dropped malformed links.
// Concurrency:
//   - Immutable after Build; see package doc for node field ownership.

package core

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r2"
)

// Graph is a bound dataset: links reference live nodes.
type Graph struct {
	nodes  []*Node
	links  []*Link
	byName map[string]*Node

	// adjacency[kind][from][to] = link
	adjacency map[LinkKind]map[string]map[string]*Link

	// degree counts LinkVisible endpoints per node index.
	degree []int

	maxAbsValue float64
}

// BuildOption configures how unspecified node fields are filled in.
type BuildOption func(*buildConfig)

type buildConfig struct {
	center        r2.Vec
	defaultRadius float64
}

// WithCenter sets the point around which unplaced nodes are spread.
func WithCenter(c r2.Vec) BuildOption {
	return func(b *buildConfig) { b.center = c }
}

// WithDefaultRadius overrides DefaultRadius. Non-positive values are ignored.
func WithDefaultRadius(r float64) BuildOption {
	return func(b *buildConfig) {
		if r > 0 {
			b.defaultRadius = r
		}
	}
}

// Report lists what Build had to drop. Nothing in it is fatal.
type Report struct {
	// Dropped holds one wrapped sentinel per dropped record or field.
	Dropped []error

	InvalidNodes   int
	DuplicateNodes int
	MalformedLinks int

	// InvalidCoordinates counts non-finite positions and pins that were
	// ignored; their nodes are kept.
	InvalidCoordinates int
}

// Clean reports whether nothing was dropped.
func (r *Report) Clean() bool {
	return len(r.Dropped) == 0
}

// Empty returns a Graph with no nodes and no links.
func Empty() *Graph {
	g, _ := Build(nil, nil)
	return g
}

// Build binds node and link records into a Graph.
//
// Steps:
//  1. Materialize nodes in order; drop empty and duplicate names.
//  2. Ignore non-finite pins and positions, reporting each.
//  3. Place nodes without a position on a spiral around the center.
//  4. Bind links by name; drop links with a missing endpoint.
//  5. Index adjacency per kind, count degrees and the max |value|.
//
// Complexity: O(V + E).
func Build(nodes []NodeSpec, links []LinkSpec, opts ...BuildOption) (*Graph, *Report) {
	cfg := buildConfig{defaultRadius: DefaultRadius}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{
		nodes:     make([]*Node, 0, len(nodes)),
		links:     make([]*Link, 0, len(links)),
		byName:    make(map[string]*Node, len(nodes)),
		adjacency: make(map[LinkKind]map[string]map[string]*Link),
	}
	report := &Report{}

	unplaced := 0
	for _, spec := range nodes {
		if spec.Name == "" {
			report.Dropped = append(report.Dropped, ErrEmptyNodeName)
			report.InvalidNodes++
			continue
		}
		if _, dup := g.byName[spec.Name]; dup {
			report.Dropped = append(report.Dropped, errors.Wrapf(ErrDuplicateNode, "node %q", spec.Name))
			report.DuplicateNodes++
			continue
		}

		n := &Node{
			Name:    spec.Name,
			Cluster: spec.Cluster.Or(spec.Community.Or(Unclustered)),
			Radius:  spec.Radius.Or(cfg.defaultRadius),
			Pin:     spec.Pin,
			Fixed:   spec.Fixed,
			Hits:    spec.Hits,
			Paint:   spec.Paint,
			index:   len(g.nodes),
		}
		if n.Radius <= 0 {
			n.Radius = cfg.defaultRadius
		}
		if pin, ok := n.Pin.Get(); ok && !FiniteVec(pin) {
			report.Dropped = append(report.Dropped,
				errors.Wrapf(ErrNonFiniteCoordinate, "node %q: pin (%g, %g)", spec.Name, pin.X, pin.Y))
			report.InvalidCoordinates++
			n.Pin = None[r2.Vec]()
		}
		pos, ok := spec.Position.Get()
		if ok && !FiniteVec(pos) {
			report.Dropped = append(report.Dropped,
				errors.Wrapf(ErrNonFiniteCoordinate, "node %q: position (%g, %g)", spec.Name, pos.X, pos.Y))
			report.InvalidCoordinates++
			ok = false
		}
		if ok {
			n.X, n.Y = pos.X, pos.Y
		} else {
			p := Spiral(cfg.center, unplaced)
			n.X, n.Y = p.X, p.Y
			unplaced++
		}

		g.nodes = append(g.nodes, n)
		g.byName[n.Name] = n
	}

	g.degree = make([]int, len(g.nodes))
	for _, spec := range links {
		src, okS := g.byName[spec.Source]
		dst, okT := g.byName[spec.Target]
		if !okS || !okT {
			report.Dropped = append(report.Dropped,
				errors.Wrapf(ErrMalformedLink, "link %q -> %q", spec.Source, spec.Target))
			report.MalformedLinks++
			continue
		}

		value, weight := NormalizeValue(spec)
		l := &Link{
			Source: src,
			Target: dst,
			Value:  value,
			Weight: weight,
			Kind:   spec.Kind,
			index:  len(g.links),
		}
		g.links = append(g.links, l)
		g.index(l)
	}

	return g, report
}

// index registers l in the adjacency map and, for visible links, in the
// degree counts and value range.
func (g *Graph) index(l *Link) {
	byFrom, ok := g.adjacency[l.Kind]
	if !ok {
		byFrom = make(map[string]map[string]*Link)
		g.adjacency[l.Kind] = byFrom
	}
	byTo, ok := byFrom[l.Source.Name]
	if !ok {
		byTo = make(map[string]*Link)
		byFrom[l.Source.Name] = byTo
	}
	// first link wins for a repeated (from, to) pair
	if _, exists := byTo[l.Target.Name]; !exists {
		byTo[l.Target.Name] = l
	}

	if l.Kind != LinkVisible {
		return
	}
	g.degree[l.Source.index]++
	g.degree[l.Target.index]++
	if v := math.Abs(l.Value); !math.IsNaN(v) && v > g.maxAbsValue {
		g.maxAbsValue = v
	}
}

// Nodes returns the live nodes in provider order. The slice is shared; do not
// append to it.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// Links returns every bound link of every kind, in provider order.
func (g *Graph) Links() []*Link {
	return g.links
}

// VisibleLinks returns the links that drive forces.
func (g *Graph) VisibleLinks() []*Link {
	out := make([]*Link, 0, len(g.links))
	for _, l := range g.links {
		if l.Kind == LinkVisible {
			out = append(out, l)
		}
	}
	return out
}

// Node looks a node up by name.
func (g *Graph) Node(name string) (*Node, bool) {
	n, ok := g.byName[name]
	return n, ok
}

// LinkBetween returns the first link of the given kind directed from -> to.
func (g *Graph) LinkBetween(from, to string, kind LinkKind) (*Link, bool) {
	l, ok := g.adjacency[kind][from][to]
	return l, ok
}

// Degree returns the number of visible link endpoints attached to n.
func (g *Graph) Degree(n *Node) int {
	if n == nil || n.index < 0 || n.index >= len(g.degree) || g.nodes[n.index] != n {
		return 0
	}
	return g.degree[n.index]
}

// MaxAbsValue is the largest |Value| over visible links; 0 with no links.
func (g *Graph) MaxAbsValue() float64 {
	return g.maxAbsValue
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// LinkCount returns the number of bound links of every kind.
func (g *Graph) LinkCount() int {
	return len(g.links)
}
