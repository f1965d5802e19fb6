package datasync_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/forcelayout/core"
	"github.com/katalvlaran/forcelayout/datasync"
)

func build(t *testing.T, names ...string) *core.Graph {
	t.Helper()
	specs := make([]core.NodeSpec, len(names))
	for i, n := range names {
		specs[i] = core.NodeSpec{Name: n, Cluster: core.Some(1)}
	}
	g, rep := core.Build(specs, nil)
	require.True(t, rep.Clean())
	return g
}

func get(t *testing.T, g *core.Graph, name string) *core.Node {
	t.Helper()
	n, ok := g.Node(name)
	require.True(t, ok, name)
	return n
}

// TestReconcile_RoundTrip feeds the same names twice and expects identical
// interaction state on the survivors.
func TestReconcile_RoundTrip(t *testing.T) {
	prev := build(t, "a", "b", "c")
	a := get(t, prev, "a")
	a.X, a.Y = 123, 456
	a.VX = 9
	a.Pin = core.Some(r2.Vec{X: 123, Y: 456})
	a.Fixed = true
	b := get(t, prev, "b")
	b.Paint = core.Paint{Painted: true, Cluster: core.Some("#ff7f0e")}

	next := build(t, "c", "a", "b")
	rep := datasync.Reconcile(prev, next, datasync.Policy{})
	assert.Equal(t, 3, rep.Carried)
	assert.Empty(t, rep.Added)
	assert.Empty(t, rep.Removed)

	for _, name := range []string{"a", "b", "c"} {
		o, n := get(t, prev, name), get(t, next, name)
		assert.Equal(t, o.Coord2(), n.Coord2(), name)
		assert.Equal(t, o.Pin, n.Pin, name)
		assert.Equal(t, o.Fixed, n.Fixed, name)
		assert.Equal(t, o.Paint, n.Paint, name)
	}
	assert.Zero(t, get(t, next, "a").VX, "velocity starts fresh")
}

// TestReconcile_ProviderPaint keeps paint supplied with the new data when the
// surviving node was never painted, and lets old paint win otherwise.
func TestReconcile_ProviderPaint(t *testing.T) {
	prev := build(t, "a", "b")
	get(t, prev, "b").Paint = core.Paint{Painted: true, Cluster: core.Some("#111111")}

	next := build(t, "a", "b")
	get(t, next, "a").Paint = core.Paint{Painted: true, Cluster: core.Some("#123456")}
	get(t, next, "b").Paint = core.Paint{Painted: true, Cluster: core.Some("#654321")}

	datasync.Reconcile(prev, next, datasync.Policy{})

	a := get(t, next, "a")
	assert.True(t, a.Paint.Painted)
	assert.Equal(t, "#123456", a.Paint.Cluster.Or(""))
	assert.Equal(t, "#111111", get(t, next, "b").Paint.Cluster.Or(""))
}

// TestReconcile_NewAndRemoved tracks membership changes.
func TestReconcile_NewAndRemoved(t *testing.T) {
	prev := build(t, "a", "gone")
	next := build(t, "a", "fresh")

	rep := datasync.Reconcile(prev, next, datasync.Policy{})
	assert.Equal(t, 1, rep.Carried)
	assert.Equal(t, []string{"fresh"}, rep.Added)
	assert.Equal(t, []string{"gone"}, rep.Removed)
	f := get(t, next, "fresh")
	assert.False(t, f.Pinned())
	assert.False(t, f.Fixed)
}

// TestReconcile_PinNewNodes pins fresh nodes where they stand.
func TestReconcile_PinNewNodes(t *testing.T) {
	prev := build(t, "a")
	next := build(t, "a", "fresh")
	f := get(t, next, "fresh")
	where := f.Coord2()

	datasync.Reconcile(prev, next, datasync.Policy{PinNewNodes: true})
	pin, ok := f.Pin.Get()
	require.True(t, ok)
	assert.Equal(t, where, pin)
	assert.True(t, f.Fixed)
	assert.False(t, get(t, next, "a").Pinned(), "survivors keep their own state")
}

// TestReconcile_NilInputs covers the first load and the degenerate call.
func TestReconcile_NilInputs(t *testing.T) {
	next := build(t, "a", "b")
	rep := datasync.Reconcile(nil, next, datasync.Policy{})
	assert.Equal(t, []string{"a", "b"}, rep.Added)
	assert.Zero(t, rep.Carried)

	assert.NotPanics(t, func() { datasync.Reconcile(next, nil, datasync.Policy{}) })
}
