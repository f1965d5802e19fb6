// SPDX-License-Identifier: MIT

package force

// Center translates all nodes so their mean sits at the viewport center.
// Velocities are untouched.
type Center struct {
	// Strength in [0,1] is the fraction of the offset removed per tick.
	Strength float64
}

// NewCenter returns a center kernel with strength 1.
func NewCenter() *Center { return &Center{Strength: 1} }

// Name implements Force.
func (*Center) Name() string { return "center" }

// Apply ignores alpha, like d3's center force.
func (f *Center) Apply(ctx *Context, _ float64) {
	var sx, sy float64
	n := 0
	for _, d := range ctx.Graph.Nodes() {
		if !d.Finite() {
			continue
		}
		sx += d.X
		sy += d.Y
		n++
	}
	if n == 0 {
		return
	}
	c := ctx.Center()
	dx := (c.X - sx/float64(n)) * f.Strength
	dy := (c.Y - sy/float64(n)) * f.Strength
	for _, d := range ctx.Graph.Nodes() {
		if d.Finite() {
			d.X += dx
			d.Y += dy
		}
	}
}
