package simulation_test

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/forcelayout/cluster"
	"github.com/katalvlaran/forcelayout/config"
	"github.com/katalvlaran/forcelayout/core"
	"github.com/katalvlaran/forcelayout/simulation"
)

func at(x, y float64) core.Optional[r2.Vec] { return core.Some(r2.Vec{X: x, Y: y}) }

// recorder is an Observer that counts events.
type recorder struct {
	mu      sync.Mutex
	ticks   int
	updates int
	rests   []int
	dropped int
}

func (r *recorder) ObserveTick(float64, float64) {
	r.mu.Lock()
	r.ticks++
	r.mu.Unlock()
}

func (r *recorder) ObserveUpdate(_, _ int, rep *core.Report) {
	r.mu.Lock()
	r.updates++
	r.dropped += rep.MalformedLinks
	r.mu.Unlock()
}

func (r *recorder) ObserveRest(tick int) {
	r.mu.Lock()
	r.rests = append(r.rests, tick)
	r.mu.Unlock()
}

// dataset is two clusters of four plus two background nodes, chained by links
// with mixed signs.
func dataset() ([]core.NodeSpec, []core.LinkSpec) {
	var nodes []core.NodeSpec
	var links []core.LinkSpec
	for c := 1; c <= 2; c++ {
		for i := 0; i < 4; i++ {
			nodes = append(nodes, core.NodeSpec{
				Name:    fmt.Sprintf("c%d-%d", c, i),
				Cluster: core.Some(c),
			})
			if i > 0 {
				v := float64(i)
				if i%2 == 0 {
					v = -v
				}
				links = append(links, core.LinkSpec{
					Source: fmt.Sprintf("c%d-%d", c, i-1),
					Target: fmt.Sprintf("c%d-%d", c, i),
					Value:  core.Some(v),
				})
			}
		}
	}
	nodes = append(nodes, core.NodeSpec{Name: "bg-0"}, core.NodeSpec{Name: "bg-1"})
	links = append(links,
		core.LinkSpec{Source: "c1-0", Target: "c2-0", Value: core.Some(2.0)},
		core.LinkSpec{Source: "bg-0", Target: "c1-3"},
	)
	return nodes, links
}

func newSim(t *testing.T, opts ...simulation.Option) *simulation.Simulation {
	t.Helper()
	s, err := simulation.New(opts...)
	require.NoError(t, err)
	return s
}

// TestNew_Defaults checks the initial state and kernel order.
func TestNew_Defaults(t *testing.T) {
	s := newSim(t)
	assert.Equal(t, 1.0, s.Alpha())
	assert.Zero(t, s.AlphaTarget())
	assert.True(t, s.Running())
	assert.Equal(t, []string{"link", "cluster", "collision"}, s.Forces())

	s2 := newSim(t, simulation.WithAutoCharge(), simulation.WithCenterForce())
	assert.Equal(t, []string{"link", "cluster", "collision", "charge", "center"}, s2.Forces())
}

// TestNew_OptionViolation surfaces bad tuning values as errors.
func TestNew_OptionViolation(t *testing.T) {
	_, err := simulation.New(simulation.WithViewport(-10, 600))
	require.Error(t, err)
	assert.True(t, errors.Is(err, simulation.ErrOptionViolation))
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))

	_, err = simulation.New(simulation.WithVelocityDecay(2))
	assert.True(t, errors.Is(err, simulation.ErrOptionViolation))

	assert.Panics(t, func() { simulation.WithOnTick(nil) })
	assert.Panics(t, func() { simulation.WithLogger(nil) })
}

// TestTick_PinExact checks a pinned node sits exactly on its pin after a tick,
// even outside the free-node bounds.
func TestTick_PinExact(t *testing.T) {
	s := newSim(t)
	s.Update(dataset())
	require.NoError(t, s.PinNode("c1-2", 3.25, 7.5))

	for i := 0; i < 5; i++ {
		f := s.Tick()
		n, ok := f.Node("c1-2")
		require.True(t, ok)
		assert.Equal(t, 3.25, n.X)
		assert.Equal(t, 7.5, n.Y)
		assert.True(t, n.Pinned)
		assert.True(t, n.Fixed)
	}

	require.NoError(t, s.UnpinNode("c1-2"))
	f := s.Tick()
	n, _ := f.Node("c1-2")
	assert.False(t, n.Pinned)
	assert.GreaterOrEqual(t, n.X, s.Config().BorderMargin, "unpinned nodes are clamped again")
}

// TestTick_ViewportBounds runs a busy layout and checks every free node stays
// inside the margins.
func TestTick_ViewportBounds(t *testing.T) {
	s := newSim(t, simulation.WithAutoCharge(), simulation.WithViewport(300, 200))
	nodes, links := dataset()
	nodes = append(nodes, core.NodeSpec{Name: "far", Cluster: core.Some(1), Position: at(5000, -5000)})
	s.Update(nodes, links)

	cfg := s.Config()
	for i := 0; i < 60; i++ {
		f := s.Tick()
		for _, n := range f.Nodes {
			assert.GreaterOrEqual(t, n.X, cfg.BorderMargin, n.Name)
			assert.LessOrEqual(t, n.X, cfg.ViewportWidth-cfg.BorderMargin, n.Name)
			assert.GreaterOrEqual(t, n.Y, cfg.BorderMargin, n.Name)
			assert.LessOrEqual(t, n.Y, cfg.ViewportHeight-cfg.BorderMargin, n.Name)
		}
	}
}

// TestTick_IsolatedNode leaves a lone node where it started.
func TestTick_IsolatedNode(t *testing.T) {
	for _, c := range []int{0, 3} {
		s := newSim(t)
		s.Update([]core.NodeSpec{{Name: "solo", Cluster: core.Some(c), Position: at(200, 150)}}, nil)
		var f simulation.Frame
		for i := 0; i < 50; i++ {
			f = s.Tick()
		}
		n, _ := f.Node("solo")
		assert.Equal(t, 200.0, n.X, "cluster %d", c)
		assert.Equal(t, 150.0, n.Y, "cluster %d", c)
	}
}

// TestTick_EmptyGraph runs ticks over nothing.
func TestTick_EmptyGraph(t *testing.T) {
	s := newSim(t, simulation.WithAutoCharge(), simulation.WithCenterForce())
	for i := 0; i < 10; i++ {
		f := s.Tick()
		assert.Empty(t, f.Nodes)
	}
	assert.Equal(t, 10, s.TickCount())
}

// TestAlphaSchedule covers cooling, Advance and the reheat/cooldown cycle.
func TestAlphaSchedule(t *testing.T) {
	rec := &recorder{}
	s := newSim(t, simulation.WithObserver(rec))
	s.Update(dataset())

	prev := s.Alpha()
	s.Tick()
	assert.InDelta(t, prev*(1-config.DefaultAlphaDecay), s.Alpha(), 1e-12)

	s.SetAlpha(0.0005)
	assert.False(t, s.Running())
	assert.False(t, s.Advance(), "no tick at rest")

	s.Reheat(-1)
	assert.Equal(t, 0.3, s.AlphaTarget())
	assert.True(t, s.Running())
	require.True(t, s.Advance())
	assert.Greater(t, s.Alpha(), 0.0005, "alpha climbs toward the target")

	s.Cooldown()
	ticks, err := s.Run(context.Background(), 0)
	require.NoError(t, err)
	assert.Positive(t, ticks)
	assert.False(t, s.Running())
	assert.Len(t, rec.rests, 1, "rest is reported once")
	assert.Equal(t, 1, rec.updates)
	assert.Equal(t, s.TickCount(), rec.ticks)
}

// TestRun_Cancel stops a throttled run through its context.
func TestRun_Cancel(t *testing.T) {
	s := newSim(t)
	s.Update(dataset())
	s.Reheat(0.5)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	ticks, err := s.Run(ctx, 1000)
	require.Error(t, err, "a reheated layout never rests on its own")
	assert.Less(t, ticks, 1000)
	assert.True(t, s.Running())
}

// TestUpdate_RoundTrip adds unlinked nodes and checks survivors did not move.
func TestUpdate_RoundTrip(t *testing.T) {
	s := newSim(t)
	nodes, links := dataset()
	s.Update(nodes, links)
	for i := 0; i < 20; i++ {
		s.Tick()
	}
	require.NoError(t, s.PinNode("c2-1", 100, 100))
	require.NoError(t, s.PaintNode("c1-1", core.Some("#123456")))
	before := s.Frame()

	more := append(append([]core.NodeSpec(nil), nodes...),
		core.NodeSpec{Name: "new-a", Cluster: core.Some(1)},
		core.NodeSpec{Name: "new-b"},
	)
	rep := s.Update(more, links)
	require.True(t, rep.Clean())
	after := s.Frame()

	for _, o := range before.Nodes {
		n, ok := after.Node(o.Name)
		require.True(t, ok, o.Name)
		assert.Equal(t, o.X, n.X, o.Name)
		assert.Equal(t, o.Y, n.Y, o.Name)
		assert.Equal(t, o.Pinned, n.Pinned, o.Name)
		assert.Equal(t, o.Painted, n.Painted, o.Name)
		assert.Equal(t, o.Color, n.Color, o.Name)
	}
	assert.Equal(t, before.Colors[1], after.Colors[1], "surviving clusters keep colors")
	assert.Equal(t, s.Config().ReheatAlpha, after.Alpha)
}

// TestUpdate_DropsAndPinsNew covers malformed links and PinNewNodes.
func TestUpdate_DropsAndPinsNew(t *testing.T) {
	rec := &recorder{}
	s := newSim(t, simulation.WithObserver(rec), simulation.WithPinNewNodes())
	s.Update([]core.NodeSpec{{Name: "a", Cluster: core.Some(1)}}, nil)
	rep := s.Update(
		[]core.NodeSpec{{Name: "a", Cluster: core.Some(1)}, {Name: "b", Cluster: core.Some(1)}},
		[]core.LinkSpec{{Source: "a", Target: "b"}, {Source: "a", Target: "ghost"}},
	)
	assert.Equal(t, 1, rep.MalformedLinks)
	assert.Equal(t, 1, rec.dropped)

	f := s.Tick()
	b, _ := f.Node("b")
	assert.True(t, b.Pinned)
	a, _ := f.Node("a")
	assert.True(t, a.Pinned, "the first load pins everything it adds")
}

// TestInteraction_Errors checks unknown names and cluster ids.
func TestInteraction_Errors(t *testing.T) {
	s := newSim(t)
	s.Update(dataset())

	for _, err := range []error{
		s.PinNode("ghost", 1, 1),
		s.UnpinNode("ghost"),
		s.PaintNode("ghost", core.None[string]()),
		s.UnpaintNode("ghost"),
		s.BeginDrag("ghost", 1, 1),
	} {
		assert.True(t, errors.Is(err, simulation.ErrNodeNotFound))
	}
	assert.True(t, errors.Is(s.PinCluster(0), simulation.ErrClusterNotFound))
	assert.True(t, errors.Is(s.UnpinCluster(99), simulation.ErrClusterNotFound))
}

// TestPinNode_NonFinite rejects NaN/Inf pins from both the interaction and
// the data path; every emitted position stays finite.
func TestPinNode_NonFinite(t *testing.T) {
	s := newSim(t)
	s.Update(dataset())
	before, _ := s.Frame().Node("c1-1")

	for _, xy := range [][2]float64{{math.NaN(), 1}, {1, math.Inf(1)}, {math.Inf(-1), math.NaN()}} {
		err := s.PinNode("c1-1", xy[0], xy[1])
		assert.True(t, errors.Is(err, core.ErrNonFiniteCoordinate), "%v", xy)
	}
	assert.True(t, errors.Is(s.BeginDrag("c1-1", math.NaN(), 0), core.ErrNonFiniteCoordinate))
	assert.Zero(t, s.AlphaTarget(), "a rejected drag does not reheat")

	after, _ := s.Frame().Node("c1-1")
	assert.Equal(t, before.Pinned, after.Pinned)

	rep := s.Update([]core.NodeSpec{
		{Name: "a", Cluster: core.Some(1), Pin: core.Some(r2.Vec{X: math.NaN(), Y: 10})},
		{Name: "b", Cluster: core.Some(1)},
	}, []core.LinkSpec{{Source: "a", Target: "b"}})
	assert.Equal(t, 1, rep.InvalidCoordinates)

	for i := 0; i < 3; i++ {
		for _, n := range s.Tick().Nodes {
			assert.False(t, math.IsNaN(n.X) || math.IsInf(n.X, 0), n.Name)
			assert.False(t, math.IsNaN(n.Y) || math.IsInf(n.Y, 0), n.Name)
		}
	}
	a, _ := s.Frame().Node("a")
	assert.False(t, a.Pinned)
}

// TestPinCluster pins and releases every member of a cluster.
func TestPinCluster(t *testing.T) {
	s := newSim(t)
	s.Update(dataset())
	s.Tick()
	require.NoError(t, s.PinCluster(2))

	before := s.Frame()
	after := s.Tick()
	for _, n := range after.Nodes {
		if n.Cluster != 2 {
			continue
		}
		o, _ := before.Node(n.Name)
		assert.True(t, n.Pinned, n.Name)
		assert.Equal(t, o.X, n.X, n.Name)
		assert.Equal(t, o.Y, n.Y, n.Name)
	}

	require.NoError(t, s.UnpinCluster(2))
	for _, n := range s.Frame().Nodes {
		assert.False(t, n.Pinned, n.Name)
	}
}

// TestPaint toggles paint and the painted color.
func TestPaint(t *testing.T) {
	s := newSim(t, simulation.WithPalette(cluster.DefaultPalette()))
	s.Update(dataset())

	require.NoError(t, s.PaintNode("c1-1", core.Some("#abcdef")))
	n, _ := s.Frame().Node("c1-1")
	assert.True(t, n.Painted)
	assert.Equal(t, cluster.Color("#abcdef"), n.Color)

	require.NoError(t, s.PaintNode("c1-2", core.None[string]()))
	n, _ = s.Frame().Node("c1-2")
	assert.True(t, n.Painted)
	assert.Equal(t, s.Frame().Colors[1], n.Color, "unassigned paint keeps the cluster color")

	require.NoError(t, s.UnpaintNode("c1-1"))
	n, _ = s.Frame().Node("c1-1")
	assert.False(t, n.Painted)
}

// TestOnTick_Reentrant calls back into the simulation from the renderer hook.
func TestOnTick_Reentrant(t *testing.T) {
	var s *simulation.Simulation
	var seen []int
	s = newSim(t, simulation.WithOnTick(func(f simulation.Frame) {
		seen = append(seen, f.Tick)
		_ = s.Alpha()
		_ = s.PinNode("c1-0", 50, 50)
	}))
	s.Update(dataset())
	s.Tick()
	s.Tick()
	assert.Equal(t, []int{1, 2}, seen)
}

// TestConcurrentInteraction exercises the lock under the race detector.
func TestConcurrentInteraction(t *testing.T) {
	s := newSim(t)
	nodes, links := dataset()
	s.Update(nodes, links)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			s.Tick()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = s.PinNode("c1-1", float64(i), 40)
			_ = s.UnpinNode("c1-1")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 5; i++ {
			s.Update(nodes, links)
		}
	}()
	wg.Wait()
	assert.Equal(t, 100, s.TickCount())
}
