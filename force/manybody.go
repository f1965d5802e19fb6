// SPDX-License-Identifier: MIT

package force

import (
	"math"

	"gonum.org/v1/gonum/spatial/barneshut"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/forcelayout/core"
)

// Charge defaults.
const (
	DefaultTheta       = 0.9
	DefaultDistanceMin = 1.0
)

// ManyBody is an all-pairs charge approximated with a Barnes-Hut tree.
// Negative strength repels. A zero resolved strength disables the kernel.
type ManyBody struct {
	// Strength is the charge of one node; ignored when Auto is set.
	Strength float64
	// Auto derives the strength from the node count on Initialize.
	Auto bool
	// Theta is the Barnes-Hut accuracy threshold.
	Theta float64
	// DistanceMin floors the distance to avoid huge forces between close nodes.
	DistanceMin float64
	// DistanceMax ignores bodies farther than this; 0 means a quarter of the
	// shorter viewport side.
	DistanceMax float64

	strength    float64
	distanceMax float64

	bodies    []*body
	particles []barneshut.Particle2
	plane     barneshut.Plane
}

// body adapts a node to barneshut.Particle2. Every node weighs 1.
type body struct {
	node *core.Node
	pos  r2.Vec
}

func (b *body) Coord2() r2.Vec { return b.pos }
func (b *body) Mass() float64  { return 1 }

// NewManyBody returns a charge kernel with d3 defaults for theta and
// distanceMin.
func NewManyBody(strength float64, auto bool) *ManyBody {
	return &ManyBody{Strength: strength, Auto: auto, Theta: DefaultTheta, DistanceMin: DefaultDistanceMin}
}

// AutoStrength is the repulsion used for n nodes: small graphs are spread
// harder.
func AutoStrength(n int) float64 {
	if n > 30 {
		return -150
	}
	return -math.Pow(150, 1.2)
}

// Name implements Force.
func (*ManyBody) Name() string { return "charge" }

// Enabled reports whether Apply has any effect.
func (f *ManyBody) Enabled() bool { return f.strength != 0 }

// Resolved returns the strength and distanceMax in effect.
func (f *ManyBody) Resolved() (strength, distanceMax float64) {
	return f.strength, f.distanceMax
}

// Initialize resolves the strength and distance cap for the current graph.
func (f *ManyBody) Initialize(ctx *Context) {
	f.strength = f.Strength
	if f.Auto {
		f.strength = AutoStrength(ctx.Graph.NodeCount())
	}
	f.distanceMax = f.DistanceMax
	if f.distanceMax <= 0 {
		f.distanceMax = math.Min(ctx.Width, ctx.Height) / 4
	}
	f.bodies = f.bodies[:0]
}

// Apply adds the charge to node velocities.
//
// Implementation:
//   - Stage 1: Load finite nodes as unit-mass bodies, jiggling coincident ones.
//   - Stage 2: Rebuild the Barnes-Hut plane.
//   - Stage 3: Sum strength·alpha/l² per body, with l² raised to
//     sqrt(distanceMin²·l²) below distanceMin and pairs beyond distanceMax
//     ignored.
//
// Complexity: O(V log V) expected for theta > 0.
func (f *ManyBody) Apply(ctx *Context, alpha float64) {
	if f.strength == 0 {
		return
	}
	f.load(ctx.Graph.Nodes())
	if len(f.bodies) < 2 {
		return
	}
	f.plane.Particles = f.particles
	if err := f.plane.Reset(); err != nil {
		return
	}

	theta := f.Theta
	if theta <= 0 {
		theta = DefaultTheta
	}
	dmin2 := f.DistanceMin * f.DistanceMin
	dmax2 := f.distanceMax * f.distanceMax
	if f.distanceMax <= 0 {
		dmax2 = math.Inf(1)
	}
	strength := f.strength * alpha

	charge := func(_, _ barneshut.Particle2, _, m2 float64, v r2.Vec) r2.Vec {
		l2 := r2.Norm2(v)
		if l2 == 0 || l2 >= dmax2 {
			return r2.Vec{}
		}
		if l2 < dmin2 {
			l2 = math.Sqrt(dmin2 * l2)
		}
		return r2.Scale(strength*m2/l2, v)
	}

	for _, b := range f.bodies {
		dv := f.plane.ForceOn(b, theta, charge)
		b.node.VX += dv.X
		b.node.VY += dv.Y
	}
}

// load snapshots finite nodes into bodies. Coincident positions are spread by
// a tiny offset, since the tree cannot separate identical points.
func (f *ManyBody) load(nodes []*core.Node) {
	f.bodies = f.bodies[:0]
	f.particles = f.particles[:0]
	seen := make(map[r2.Vec]int, len(nodes))
	for _, n := range nodes {
		if !n.Finite() {
			continue
		}
		p := n.Coord2()
		if k, dup := seen[p]; dup {
			seen[p] = k + 1
			p = jiggle(p, k+1)
		} else {
			seen[p] = 0
		}
		b := &body{node: n, pos: p}
		f.bodies = append(f.bodies, b)
		f.particles = append(f.particles, b)
	}
}

// jiggle offsets p by k millionths along a deterministic diagonal.
func jiggle(p r2.Vec, k int) r2.Vec {
	const eps = 1e-6
	return r2.Add(p, r2.Vec{X: eps * float64(k), Y: eps * float64(k) * 0.5})
}
