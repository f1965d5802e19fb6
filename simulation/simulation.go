// SPDX-License-Identifier: MIT

package simulation

import (
	"math"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/forcelayout/cluster"
	"github.com/katalvlaran/forcelayout/config"
	"github.com/katalvlaran/forcelayout/core"
	"github.com/katalvlaran/forcelayout/force"
)

// Simulation is a force-directed layout of one graph at a time.
type Simulation struct {
	mu sync.Mutex

	cfg      config.Config
	log      *zap.SugaredLogger
	observer Observer
	onTick   func(Frame)

	assigner *cluster.Assigner
	ctx      *force.Context
	forces   []force.Force

	alpha       float64
	alphaTarget float64
	tick        int
	energy      float64
	loaded      bool
	resting     bool
}

// New returns a Simulation over an empty graph.
func New(opts ...Option) (*Simulation, error) {
	st := defaultSettings()
	for _, opt := range opts {
		opt(&st)
	}
	if err := st.cfg.Validate(); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "simulation: new"), ErrOptionViolation)
	}

	s := &Simulation{
		cfg:      st.cfg,
		log:      st.log.Named("simulation"),
		observer: st.observer,
		onTick:   st.onTick,
		assigner: cluster.NewAssigner(st.palette),
		alpha:    st.cfg.InitialAlpha,
	}
	s.forces = kernels(st.cfg)
	s.install(core.Empty())
	return s, nil
}

// kernels builds the kernel list in tick order.
func kernels(cfg config.Config) []force.Force {
	fs := []force.Force{
		force.NewLink(cfg.LinkBaseDistance, cfg.LinkMinStrength, cfg.LinkIterations),
		force.NewClusterAttraction(),
		force.NewCollision(cfg.CollisionPadding, cfg.ClusterPadding, cfg.RepulsionFactor, cfg.MaxCollisionNeighborRadius),
	}
	if cfg.ChargeAuto || cfg.ChargeStrength != 0 {
		mb := force.NewManyBody(cfg.ChargeStrength, cfg.ChargeAuto)
		mb.Theta = cfg.ChargeTheta
		mb.DistanceMax = cfg.ChargeDistanceMax
		fs = append(fs, mb)
	}
	if cfg.CenterForce {
		fs = append(fs, force.NewCenter())
	}
	return fs
}

// Config returns the tuning values in use.
func (s *Simulation) Config() config.Config {
	return s.cfg
}

// Forces returns the kernel names in tick order.
func (s *Simulation) Forces() []string {
	names := make([]string, len(s.forces))
	for i, f := range s.forces {
		names[i] = f.Name()
	}
	return names
}

// install binds g with a fresh partition and re-initializes the kernels.
// Caller holds the lock (or owns s exclusively).
func (s *Simulation) install(g *core.Graph) *cluster.Partition {
	p := s.assigner.Recompute(g.Nodes())
	s.ctx = force.NewContext(g, p, s.cfg.ViewportWidth, s.cfg.ViewportHeight)
	force.Initialize(s.ctx, s.forces...)
	return p
}

// Tick advances the layout by one step, whether or not it is running.
//
// Concurrency: the step and the snapshot happen under the lock; observers
// and OnTick run after it is released, so they may call back into s.
func (s *Simulation) Tick() Frame {
	s.mu.Lock()
	s.step()
	frame := s.snapshot()
	rested := s.checkRest()
	s.mu.Unlock()

	s.emit(frame, rested)
	return frame
}

// Advance ticks once if the simulation is running and reports whether it did.
func (s *Simulation) Advance() bool {
	s.mu.Lock()
	if !s.running() {
		s.mu.Unlock()
		return false
	}
	s.step()
	frame := s.snapshot()
	rested := s.checkRest()
	s.mu.Unlock()

	s.emit(frame, rested)
	return true
}

func (s *Simulation) emit(frame Frame, rested bool) {
	s.observer.ObserveTick(frame.Alpha, frame.Energy)
	if rested {
		s.log.Debugw("rest reached", "tick", frame.Tick, "alpha", frame.Alpha)
		s.observer.ObserveRest(frame.Tick)
	}
	if s.onTick != nil {
		s.onTick(frame)
	}
}

// checkRest reports the first tick after which the layout stopped running.
func (s *Simulation) checkRest() bool {
	if s.running() {
		s.resting = false
		return false
	}
	if s.resting {
		return false
	}
	s.resting = true
	return true
}

// step is one tick. Caller holds the lock.
//
// Implementation:
//   - Stage 1: alpha += (alphaTarget - alpha) · AlphaDecay.
//   - Stage 2: Apply every kernel in order: link, cluster, collision, then
//     charge and center when configured.
//   - Stage 3: integrate velocities, pins and viewport bounds.
//
// Complexity: dominated by collision, O(V log V + V·k) per tick.
// Determinism: same graph, config and interaction sequence ⇒ same frames.
func (s *Simulation) step() {
	s.tick++
	s.alpha += (s.alphaTarget - s.alpha) * s.cfg.AlphaDecay

	for _, f := range s.forces {
		f.Apply(s.ctx, s.alpha)
	}
	s.integrate()
}

// integrate applies friction, moves free nodes and enforces pins and bounds.
//
// Behavior highlights:
//   - Pinned nodes land exactly on the pin with zero velocity.
//   - Free nodes are clamped to [margin, size-margin]; NaN maps to margin.
//   - Energy is ½·Σ|v|² over free nodes after friction.
//
// Complexity: O(V).
func (s *Simulation) integrate() {
	keep := 1 - s.cfg.VelocityDecay
	m := s.cfg.BorderMargin
	minX, maxX := m, s.cfg.ViewportWidth-m
	minY, maxY := m, s.cfg.ViewportHeight-m

	var energy float64
	for _, n := range s.ctx.Graph.Nodes() {
		if pin, ok := n.Pin.Get(); ok && !core.FiniteVec(pin) {
			// a non-finite pin is released
			n.Pin = core.None[r2.Vec]()
		}
		if pin, ok := n.Pin.Get(); ok {
			n.X, n.Y = pin.X, pin.Y
			n.VX, n.VY = 0, 0
			continue
		}
		n.VX *= keep
		n.VY *= keep
		if math.IsNaN(n.VX) || math.IsNaN(n.VY) {
			n.VX, n.VY = 0, 0
		}
		n.X = clamp(n.X+n.VX, minX, maxX)
		n.Y = clamp(n.Y+n.VY, minY, maxY)
		energy += 0.5 * (n.VX*n.VX + n.VY*n.VY)
	}
	s.energy = energy
}

// clamp also maps NaN to lo so a bad provider position cannot escape the
// viewport.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Running reports whether the layout still moves.
func (s *Simulation) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running()
}

func (s *Simulation) running() bool {
	return s.alpha >= s.cfg.AlphaMin || s.alphaTarget >= s.cfg.AlphaMin
}

// Alpha returns the current alpha.
func (s *Simulation) Alpha() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alpha
}

// AlphaTarget returns the value alpha cools (or heats) toward.
func (s *Simulation) AlphaTarget() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alphaTarget
}

// SetAlpha sets alpha, clamped to [0,1].
func (s *Simulation) SetAlpha(a float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alpha = clamp(a, 0, 1)
}

// Reheat raises the alpha target so the layout keeps moving, as during a
// drag. Negative targets use DragAlphaTarget.
func (s *Simulation) Reheat(target float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if target < 0 {
		target = s.cfg.DragAlphaTarget
	}
	s.alphaTarget = clamp(target, 0, 1)
	s.log.Debugw("reheat", "alpha_target", s.alphaTarget, "alpha", s.alpha)
}

// Cooldown drops the alpha target back to 0.
func (s *Simulation) Cooldown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alphaTarget = 0
}

// TickCount returns the number of ticks run so far.
func (s *Simulation) TickCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tick
}

// Frame returns a copy of the current state without ticking.
func (s *Simulation) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}
