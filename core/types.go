// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, link kinds, provider records (NodeSpec, LinkSpec) and
//       live simulation records (Node, Link).

package core

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors for dataset binding.
var (
	// ErrEmptyNodeName indicates a NodeSpec without a name.
	ErrEmptyNodeName = errors.New("core: node name is empty")

	// ErrDuplicateNode indicates a node name already used in the same dataset.
	ErrDuplicateNode = errors.New("core: duplicate node name")

	// ErrMalformedLink indicates a link whose source or target is not a live node.
	ErrMalformedLink = errors.New("core: link endpoint not found")

	// ErrNonFiniteCoordinate indicates a position or pin with a NaN or Inf
	// component.
	ErrNonFiniteCoordinate = errors.New("core: coordinate is not finite")
)

// DefaultRadius is the collision radius of a node that does not declare one.
const DefaultRadius = 6.0

// DefaultLinkValue is the value of a link that declares neither value nor weight.
const DefaultLinkValue = 1.0

// Unclustered is the reserved cluster id for background nodes.
const Unclustered = 0

// LinkKind tells apart links that drive forces from links that only exist for
// hit-testing in a renderer.
type LinkKind int

const (
	// LinkVisible links are drawn and drive the link and collision forces.
	LinkVisible LinkKind = iota
	// LinkHitTest links are wide invisible twins used for pointer hit-tests.
	// Forces never read them.
	LinkHitTest
)

// String implements fmt.Stringer.
func (k LinkKind) String() string {
	switch k {
	case LinkVisible:
		return "visible"
	case LinkHitTest:
		return "hit-test"
	default:
		return "unknown"
	}
}

// Paint is a visual cluster override that is independent of the structural
// cluster id. A node that is painted but has no painted cluster is
// "unassigned-painted" and is left out of cluster attraction and collision.
type Paint struct {
	Painted bool
	Cluster Optional[string]
}

// Unassigned reports whether the node is painted without a painted cluster.
func (p Paint) Unassigned() bool {
	return p.Painted && !p.Cluster.IsSet()
}

// NodeSpec is a node record as supplied by a data provider.
type NodeSpec struct {
	Name      string
	Cluster   Optional[int]
	Community Optional[int]
	Position  Optional[r2.Vec]
	Radius    Optional[float64]
	Hits      int
	Pin       Optional[r2.Vec]
	Fixed     bool
	Paint     Paint
}

// LinkSpec is a link record as supplied by a data provider.
type LinkSpec struct {
	Source string
	Target string
	Value  Optional[float64]
	Weight Optional[float64]
	Kind   LinkKind
}

// Node is the live simulation record of a vertex.
//
// The simulation owns X, Y, VX and VY. Interaction code writes only Pin,
// Fixed and Paint.
type Node struct {
	// Name is the identity of the node across data updates.
	Name string

	// Cluster is the structural cluster id; 0 is unclustered.
	Cluster int

	X, Y   float64
	VX, VY float64

	// Radius is the collision radius.
	Radius float64

	// Pin, when set, freezes the node at the pinned position on every tick.
	Pin Optional[r2.Vec]

	// Fixed is the user-toggled pin state, kept apart from transient drag pins.
	Fixed bool

	// Hits is a usage weight; 0 is legal.
	Hits int

	Paint Paint

	index int
}

// Coord2 returns the current position.
func (n *Node) Coord2() r2.Vec {
	return r2.Vec{X: n.X, Y: n.Y}
}

// Index returns the position of the node in its Graph's node slice.
func (n *Node) Index() int {
	return n.index
}

// Pinned reports whether a pin target is set.
func (n *Node) Pinned() bool {
	return n.Pin.IsSet()
}

// Eligible reports whether the node takes part in cluster attraction and
// collision: it must be clustered and not unassigned-painted.
func (n *Node) Eligible() bool {
	return n.Cluster != Unclustered && !n.Paint.Unassigned()
}

// Finite reports whether the position is a usable number.
func (n *Node) Finite() bool {
	return FiniteVec(r2.Vec{X: n.X, Y: n.Y})
}

// FiniteVec reports whether neither component of v is NaN or Inf.
func FiniteVec(v r2.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Link is the live, bound form of a LinkSpec.
type Link struct {
	Source *Node
	Target *Node

	// Value is signed: positive reinforces, negative inhibits.
	Value float64

	// Weight aliases Value unless the provider supplied one.
	Weight float64

	Kind LinkKind

	index int
}

// Index returns the position of the link in its Graph's link slice.
func (l *Link) Index() int {
	return l.index
}

// SelfLoop reports whether the link connects a node to itself.
func (l *Link) SelfLoop() bool {
	return l.Source == l.Target
}

// NormalizeValue resolves the value and weight of a link record:
// value, else weight, else DefaultLinkValue; weight falls back to the value.
func NormalizeValue(spec LinkSpec) (value, weight float64) {
	value = spec.Value.Or(spec.Weight.Or(DefaultLinkValue))
	weight = spec.Weight.Or(value)
	return value, weight
}
