package cluster_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/forcelayout/cluster"
	"github.com/katalvlaran/forcelayout/core"
)

func nodes(clusters ...int) []*core.Node {
	out := make([]*core.Node, len(clusters))
	for i, c := range clusters {
		out[i] = &core.Node{Name: fmt.Sprintf("n%d", i), Cluster: c}
	}
	return out
}

// TestRecompute_FirstSeenOrder checks grouping order, anchors and cluster 0.
func TestRecompute_FirstSeenOrder(t *testing.T) {
	ns := nodes(3, 0, 1, 3, 1, 0, 7)
	p := cluster.Recompute(ns, cluster.DefaultPalette())

	require.Equal(t, 3, p.Len())
	got := make([]int, 0, p.Len())
	for _, c := range p.Clusters() {
		got = append(got, c.ID)
	}
	assert.Equal(t, []int{3, 1, 7}, got)

	c3, ok := p.Cluster(3)
	require.True(t, ok)
	assert.Equal(t, []*core.Node{ns[0], ns[3]}, c3.Members)
	assert.Same(t, ns[0], c3.Anchor())

	a, ok := p.Anchor(1)
	require.True(t, ok)
	assert.Same(t, ns[2], a)

	_, ok = p.Cluster(0)
	assert.False(t, ok, "cluster 0 is never a cluster")
	assert.Equal(t, []*core.Node{ns[1], ns[5]}, p.Unclustered())
	assert.Equal(t, cluster.UnclusteredColor, p.Color(0))
}

// TestRecompute_IdentityDedup ensures the same node pointer is grouped once.
func TestRecompute_IdentityDedup(t *testing.T) {
	n := &core.Node{Name: "a", Cluster: 2}
	twin := &core.Node{Name: "a", Cluster: 2}
	p := cluster.Recompute([]*core.Node{n, n, twin, nil}, cluster.DefaultPalette())
	c, _ := p.Cluster(2)
	assert.Len(t, c.Members, 2, "distinct pointers are distinct members")
}

// TestRecompute_ColorsInOrder checks the i-th cluster gets the i-th color.
func TestRecompute_ColorsInOrder(t *testing.T) {
	pal := cluster.DefaultPalette()
	p := cluster.Recompute(nodes(5, 9, 2), pal)
	assert.Equal(t, pal.Colors[0], p.Color(5))
	assert.Equal(t, pal.Colors[1], p.Color(9))
	assert.Equal(t, pal.Colors[2], p.Color(2))
	assert.Equal(t, pal.Fallback, p.Color(42), "unknown ids get the fallback")
}

// TestRecompute_Idempotent recomputes an unchanged node set twice.
func TestRecompute_Idempotent(t *testing.T) {
	ns := nodes(4, 4, 1, 0, 2, 1)
	a := cluster.NewAssigner(cluster.DefaultPalette())
	first := a.Recompute(ns)
	second := a.Recompute(ns)
	assert.Equal(t, first.Members(), second.Members())
	assert.Equal(t, first.Colors(), second.Colors())

	fresh := cluster.Recompute(ns, cluster.DefaultPalette())
	assert.Equal(t, first.Members(), fresh.Members())
	assert.Equal(t, first.Colors(), fresh.Colors())
}

// TestAssigner_StickyColors shows surviving ids keep their colors.
func TestAssigner_StickyColors(t *testing.T) {
	pal := cluster.DefaultPalette()
	a := cluster.NewAssigner(pal)

	before := a.Recompute(nodes(1, 2, 3))
	assert.Equal(t, pal.Colors[1], before.Color(2))
	assert.Equal(t, pal.Colors[2], before.Color(3))

	// cluster 1 disappears, cluster 8 shows up first
	after := a.Recompute(nodes(8, 3, 2))
	assert.Equal(t, pal.Colors[1], after.Color(2))
	assert.Equal(t, pal.Colors[2], after.Color(3))
	assert.Equal(t, pal.Colors[0], after.Color(8), "new id takes the freed slot")

	a.Reset()
	reset := a.Recompute(nodes(8, 3, 2))
	assert.Equal(t, pal.Colors[1], reset.Color(3))
}

// TestOverflow covers both overflow policies; neither fails.
func TestOverflow(t *testing.T) {
	ids := make([]int, 0, 25)
	for i := 1; i <= 25; i++ {
		ids = append(ids, i)
	}

	pal := cluster.DefaultPalette()
	p := cluster.Recompute(nodes(ids...), pal)
	require.Equal(t, 25, p.Len())
	assert.Equal(t, pal.Colors[18], p.Color(19))
	assert.Equal(t, cluster.FallbackColor, p.Color(20))
	assert.Equal(t, cluster.FallbackColor, p.Color(25))

	pal.Overflow = cluster.OverflowWrap
	w := cluster.Recompute(nodes(ids...), pal)
	assert.Equal(t, pal.Colors[0], w.Color(20))
	assert.Equal(t, pal.Colors[5], w.Color(25))

	empty := cluster.Palette{Fallback: "#000", Overflow: cluster.OverflowWrap}
	e := cluster.Recompute(nodes(1, 2), empty)
	assert.Equal(t, cluster.Color("#000"), e.Color(1))
}

// TestRecompute_Empty checks the no-op path.
func TestRecompute_Empty(t *testing.T) {
	p := cluster.Recompute(nil, cluster.DefaultPalette())
	assert.Zero(t, p.Len())
	assert.Empty(t, p.Unclustered())
	_, ok := p.Anchor(1)
	assert.False(t, ok)
}
