// SPDX-License-Identifier: MIT

package simulation

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/forcelayout/core"
)

// lookup resolves name. Caller holds the lock.
func (s *Simulation) lookup(name string) (*core.Node, error) {
	n, ok := s.ctx.Graph.Node(name)
	if !ok {
		return nil, errors.Wrapf(ErrNodeNotFound, "%q", name)
	}
	return n, nil
}

// PinNode fixes name at (x, y); the position is exact after the next tick.
// A NaN or Inf coordinate is rejected with core.ErrNonFiniteCoordinate and
// leaves the node untouched.
func (s *Simulation) PinNode(name string, x, y float64) error {
	at := r2.Vec{X: x, Y: y}
	if !core.FiniteVec(at) {
		return errors.Wrapf(core.ErrNonFiniteCoordinate, "pin %q at (%g, %g)", name, x, y)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := s.lookup(name)
	if err != nil {
		return err
	}
	n.Pin = core.Some(at)
	n.Fixed = true
	return nil
}

// UnpinNode releases name to the forces.
func (s *Simulation) UnpinNode(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := s.lookup(name)
	if err != nil {
		return err
	}
	n.Pin = core.None[r2.Vec]()
	n.Fixed = false
	return nil
}

// PaintNode marks name as painted. Without a painted cluster the node becomes
// unassigned-painted and leaves cluster attraction and collision.
func (s *Simulation) PaintNode(name string, paintCluster core.Optional[string]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := s.lookup(name)
	if err != nil {
		return err
	}
	n.Paint = core.Paint{Painted: true, Cluster: paintCluster}
	return nil
}

// UnpaintNode clears any paint on name.
func (s *Simulation) UnpaintNode(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := s.lookup(name)
	if err != nil {
		return err
	}
	n.Paint = core.Paint{}
	return nil
}

// PinCluster pins every member of cluster id where it stands.
func (s *Simulation) PinCluster(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.ctx.Partition.Cluster(id)
	if !ok {
		return errors.Wrapf(ErrClusterNotFound, "id %d", id)
	}
	for _, n := range c.Members {
		n.Pin = core.Some(n.Coord2())
		n.Fixed = true
	}
	return nil
}

// UnpinCluster releases every member of cluster id.
func (s *Simulation) UnpinCluster(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.ctx.Partition.Cluster(id)
	if !ok {
		return errors.Wrapf(ErrClusterNotFound, "id %d", id)
	}
	for _, n := range c.Members {
		n.Pin = core.None[r2.Vec]()
		n.Fixed = false
	}
	return nil
}

// BeginDrag reheats to DragAlphaTarget and pins name at (x, y).
func (s *Simulation) BeginDrag(name string, x, y float64) error {
	if err := s.PinNode(name, x, y); err != nil {
		return err
	}
	s.Reheat(-1)
	return nil
}

// EndDrag lets alpha cool again; the node stays pinned.
func (s *Simulation) EndDrag() {
	s.Cooldown()
}
