// SPDX-License-Identifier: MIT

package force

import (
	"math"

	"github.com/katalvlaran/forcelayout/core"
)

// Link is the spring kernel. Each visible link pulls or pushes its endpoints
// toward a rest length that depends on the link value.
type Link struct {
	// BaseDistance is the rest length of a link with strength 1.
	BaseDistance float64
	// MinStrength is the strength of the strongest |value|.
	MinStrength float64
	// Iterations is the number of relaxation passes per tick.
	Iterations int

	graph   *core.Graph
	springs []spring
}

type spring struct {
	link      *core.Link
	rest      float64
	stiffness float64
	bias      float64
}

// NewLink returns a link kernel.
func NewLink(base, minStrength float64, iterations int) *Link {
	if iterations < 1 {
		iterations = 1
	}
	return &Link{BaseDistance: base, MinStrength: minStrength, Iterations: iterations}
}

// Name implements Force.
func (f *Link) Name() string { return "link" }

// RestLength maps a link value to its rest length. The strength falls
// linearly from 1 at |value| = 0 to minStrength at |value| = maxValue and is
// clamped there; maxValue 0 leaves every link at base.
func RestLength(value, maxValue, base, minStrength float64) float64 {
	s := 1.0
	if maxValue > 0 && !math.IsNaN(value) {
		s = 1 + math.Abs(value)/maxValue*(minStrength-1)
		s = math.Max(minStrength, math.Min(1, s))
	}
	if value < 0 {
		return base / s
	}
	return base * s
}

// Initialize caches rest length, stiffness and bias of every visible link.
// Stiffness is 1/min(degree) and bias deg(source)/(deg(source)+deg(target)),
// so hubs move less than leaves.
//
// Implementation:
//   - Stage 1: Read maxValue = max |value| over visible links once.
//   - Stage 2: For every visible non-self-loop link compute RestLength and
//     the degree-based stiffness and bias.
//
// Complexity: O(E) time, O(E) space for the spring cache.
// Determinism: springs follow the graph's link order.
func (f *Link) Initialize(ctx *Context) {
	g := ctx.Graph
	f.graph = g
	f.springs = f.springs[:0]

	maxValue := g.MaxAbsValue()
	for _, l := range g.VisibleLinks() {
		if l.SelfLoop() {
			continue
		}
		ds, dt := float64(g.Degree(l.Source)), float64(g.Degree(l.Target))
		f.springs = append(f.springs, spring{
			link:      l,
			rest:      RestLength(l.Value, maxValue, f.BaseDistance, f.MinStrength),
			stiffness: 1 / math.Min(ds, dt),
			bias:      ds / (ds + dt),
		})
	}
}

// Apply nudges endpoint velocities toward the rest length. A graph swap
// since the last Initialize triggers a re-initialization first.
//
// Complexity: O(Iterations · E).
func (f *Link) Apply(ctx *Context, alpha float64) {
	if f.graph != ctx.Graph {
		f.Initialize(ctx)
	}
	for k := 0; k < f.Iterations; k++ {
		for i := range f.springs {
			sp := &f.springs[i]
			src, dst := sp.link.Source, sp.link.Target

			x := dst.X + dst.VX - src.X - src.VX
			y := dst.Y + dst.VY - src.Y - src.VY
			if degenerate(x, y) {
				continue
			}
			l := math.Sqrt(x*x + y*y)
			l = (l - sp.rest) / l * alpha * sp.stiffness
			x *= l
			y *= l

			dst.VX -= x * sp.bias
			dst.VY -= y * sp.bias
			src.VX += x * (1 - sp.bias)
			src.VY += y * (1 - sp.bias)
		}
	}
}

// Rest returns the cached rest length of l; false for links the kernel
// ignores (hit-test, self loops, unknown).
func (f *Link) Rest(l *core.Link) (float64, bool) {
	for i := range f.springs {
		if f.springs[i].link == l {
			return f.springs[i].rest, true
		}
	}
	return 0, false
}
