// SPDX-License-Identifier: MIT

package quadtree

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// maxDepth bounds subdivision; past it, items pile up in a single leaf.
const maxDepth = 32

// Locatable is anything with a 2D position.
type Locatable interface {
	Coord2() r2.Vec
}

type entry[T Locatable] struct {
	item T
	at   r2.Vec
}

// Quad is one square cell of the tree. Leaves hold items; inner quads hold
// up to four children ordered NW, NE, SW, SE.
type Quad[T Locatable] struct {
	Bounds   r2.Box
	children [4]*Quad[T]
	entries  []entry[T]
}

// Leaf reports whether the quad has no children.
func (q *Quad[T]) Leaf() bool {
	return q.children == [4]*Quad[T]{}
}

// Items returns the items stored in a leaf, in insertion order.
func (q *Quad[T]) Items() []T {
	out := make([]T, len(q.entries))
	for i, e := range q.entries {
		out[i] = e.item
	}
	return out
}

// Children returns the child quads; absent children are nil.
func (q *Quad[T]) Children() [4]*Quad[T] {
	return q.children
}

// Tree is an immutable quadtree snapshot.
type Tree[T Locatable] struct {
	root    *Quad[T]
	size    int
	skipped int
}

// Build indexes items at their current positions.
func Build[T Locatable](items []T) *Tree[T] {
	t := &Tree[T]{}

	entries := make([]entry[T], 0, len(items))
	for _, it := range items {
		p := it.Coord2()
		if !finite(p) {
			t.skipped++
			continue
		}
		entries = append(entries, entry[T]{item: it, at: p})
	}
	if len(entries) == 0 {
		return t
	}

	t.root = &Quad[T]{Bounds: cover(entries)}
	for _, e := range entries {
		t.root.insert(e)
	}
	t.size = len(entries)

	return t
}

// cover returns the smallest square box holding every entry.
func cover[T Locatable](entries []entry[T]) r2.Box {
	minP, maxP := entries[0].at, entries[0].at
	for _, e := range entries[1:] {
		minP.X = math.Min(minP.X, e.at.X)
		minP.Y = math.Min(minP.Y, e.at.Y)
		maxP.X = math.Max(maxP.X, e.at.X)
		maxP.Y = math.Max(maxP.Y, e.at.Y)
	}
	side := math.Max(maxP.X-minP.X, maxP.Y-minP.Y)
	if side == 0 {
		side = 1
	}
	return r2.Box{Min: minP, Max: r2.Vec{X: minP.X + side, Y: minP.Y + side}}
}

func (q *Quad[T]) insert(e entry[T]) {
	node, depth := q, 0
	for {
		if node.Leaf() {
			if len(node.entries) == 0 || node.entries[0].at == e.at || depth >= maxDepth {
				node.entries = append(node.entries, e)
				return
			}
			// split: the resident entries are coincident, so they move together
			resident := node.entries
			node.entries = nil
			node.child(node.quadrant(resident[0].at)).entries = resident
		}
		node = node.child(node.quadrant(e.at))
		depth++
	}
}

func (q *Quad[T]) mid() r2.Vec {
	return r2.Vec{
		X: (q.Bounds.Min.X + q.Bounds.Max.X) / 2,
		Y: (q.Bounds.Min.Y + q.Bounds.Max.Y) / 2,
	}
}

func (q *Quad[T]) quadrant(p r2.Vec) int {
	m := q.mid()
	i := 0
	if p.X >= m.X {
		i |= 1
	}
	if p.Y >= m.Y {
		i |= 2
	}
	return i
}

// child returns quadrant i, creating it on first use.
func (q *Quad[T]) child(i int) *Quad[T] {
	if c := q.children[i]; c != nil {
		return c
	}
	m := q.mid()
	b := q.Bounds
	if i&1 == 0 {
		b.Max.X = m.X
	} else {
		b.Min.X = m.X
	}
	if i&2 == 0 {
		b.Max.Y = m.Y
	} else {
		b.Min.Y = m.Y
	}
	c := &Quad[T]{Bounds: b}
	q.children[i] = c
	return c
}

// Size returns the number of indexed items.
func (t *Tree[T]) Size() int {
	return t.size
}

// Skipped returns the number of items left out for non-finite positions.
func (t *Tree[T]) Skipped() int {
	return t.skipped
}

// Bounds returns the root box, or false for an empty tree.
func (t *Tree[T]) Bounds() (r2.Box, bool) {
	if t.root == nil {
		return r2.Box{}, false
	}
	return t.root.Bounds, true
}

// Visit walks the tree in pre-order (NW, NE, SW, SE). Returning true from fn
// skips the children of the quad just visited.
func (t *Tree[T]) Visit(fn func(q *Quad[T]) bool) {
	if t.root == nil {
		return
	}
	stack := []*Quad[T]{t.root}
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if fn(q) {
			continue
		}
		for i := len(q.children) - 1; i >= 0; i-- {
			if c := q.children[i]; c != nil {
				stack = append(stack, c)
			}
		}
	}
}

// VisitRegion calls fn for every item whose build-time position lies inside
// box (edges inclusive). Quads that cannot intersect box are pruned. fn
// returning true stops the walk.
func (t *Tree[T]) VisitRegion(box r2.Box, fn func(item T, at r2.Vec) bool) {
	if t.root == nil || !finite(box.Min) || !finite(box.Max) {
		return
	}
	stopped := false
	t.Visit(func(q *Quad[T]) bool {
		if stopped || !intersects(q.Bounds, box) {
			return true
		}
		for _, e := range q.entries {
			if contains(box, e.at) && fn(e.item, e.at) {
				stopped = true
				return true
			}
		}
		return false
	})
}

// Region returns the items VisitRegion would report, in visit order.
func (t *Tree[T]) Region(box r2.Box) []T {
	var out []T
	t.VisitRegion(box, func(item T, _ r2.Vec) bool {
		out = append(out, item)
		return false
	})
	return out
}

// Around returns the box of half-size r centered on p.
func Around(p r2.Vec, r float64) r2.Box {
	return r2.Box{
		Min: r2.Vec{X: p.X - r, Y: p.Y - r},
		Max: r2.Vec{X: p.X + r, Y: p.Y + r},
	}
}

func intersects(a, b r2.Box) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y
}

func contains(b r2.Box, p r2.Vec) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

func finite(p r2.Vec) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
