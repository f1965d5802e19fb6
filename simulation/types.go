// SPDX-License-Identifier: MIT

package simulation

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/forcelayout/cluster"
	"github.com/katalvlaran/forcelayout/config"
	"github.com/katalvlaran/forcelayout/core"
)

// Sentinel errors.
var (
	// ErrNodeNotFound indicates an interaction on a name that is not live.
	ErrNodeNotFound = errors.New("simulation: node not found")

	// ErrClusterNotFound indicates a cluster id with no members.
	ErrClusterNotFound = errors.New("simulation: cluster not found")

	// ErrOptionViolation indicates tuning values that failed validation.
	ErrOptionViolation = errors.New("simulation: invalid option value")
)

// Observer receives lifecycle events; metrics.Recorder implements it.
// Calls happen outside the simulation lock.
type Observer interface {
	ObserveTick(alpha, energy float64)
	ObserveUpdate(nodes, clusters int, report *core.Report)
	ObserveRest(tick int)
}

type nopObserver struct{}

func (nopObserver) ObserveTick(float64, float64)         {}
func (nopObserver) ObserveUpdate(int, int, *core.Report) {}
func (nopObserver) ObserveRest(int)                      {}

// Option customizes a Simulation before it starts.
type Option func(*settings)

type settings struct {
	cfg      config.Config
	log      *zap.SugaredLogger
	observer Observer
	onTick   func(Frame)
	palette  cluster.Palette
}

func defaultSettings() settings {
	return settings{
		cfg:      config.Default(),
		log:      zap.NewNop().Sugar(),
		observer: nopObserver{},
		palette:  cluster.DefaultPalette(),
	}
}

// WithConfig replaces every tuning value. It is validated by New.
func WithConfig(cfg config.Config) Option {
	return func(s *settings) { s.cfg = cfg }
}

// WithViewport sets the layout area.
func WithViewport(width, height float64) Option {
	return func(s *settings) {
		s.cfg.ViewportWidth = width
		s.cfg.ViewportHeight = height
	}
}

// WithAlphaDecay sets the cooling rate; 0 never cools.
func WithAlphaDecay(decay float64) Option {
	return func(s *settings) { s.cfg.AlphaDecay = decay }
}

// WithVelocityDecay sets the friction applied every tick.
func WithVelocityDecay(decay float64) Option {
	return func(s *settings) { s.cfg.VelocityDecay = decay }
}

// WithCharge enables the many-body kernel with a fixed strength.
func WithCharge(strength float64) Option {
	return func(s *settings) {
		s.cfg.ChargeStrength = strength
		s.cfg.ChargeAuto = false
	}
}

// WithAutoCharge enables the many-body kernel with a node-count strength.
func WithAutoCharge() Option {
	return func(s *settings) { s.cfg.ChargeAuto = true }
}

// WithCenterForce enables the center kernel.
func WithCenterForce() Option {
	return func(s *settings) { s.cfg.CenterForce = true }
}

// WithPinNewNodes pins nodes that appear in an Update where they are placed.
func WithPinNewNodes() Option {
	return func(s *settings) { s.cfg.PinNewNodes = true }
}

// WithPalette sets the cluster palette.
func WithPalette(p cluster.Palette) Option {
	return func(s *settings) { s.palette = p }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(log *zap.SugaredLogger) Option {
	if log == nil {
		panic("simulation: WithLogger(nil)")
	}
	return func(s *settings) { s.log = log }
}

// WithObserver sets the lifecycle observer. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("simulation: WithObserver(nil)")
	}
	return func(s *settings) { s.observer = o }
}

// WithOnTick registers the renderer callback. Panics on nil.
func WithOnTick(fn func(Frame)) Option {
	if fn == nil {
		panic("simulation: WithOnTick(nil)")
	}
	return func(s *settings) { s.onTick = fn }
}
