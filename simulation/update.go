// SPDX-License-Identifier: MIT

package simulation

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/forcelayout/core"
	"github.com/katalvlaran/forcelayout/datasync"
)

// Update binds a new dataset and swaps it in between ticks.
//
// Steps:
//  1. Bind records (dropping duplicates and malformed links, see core.Build).
//  2. Carry position, pin, fixed and paint of surviving nodes by name.
//  3. Recompute clusters; surviving cluster ids keep their colors.
//  4. Re-initialize the kernels for the new graph.
//  5. Reheat to ReheatAlpha, except for the first load which keeps
//     InitialAlpha.
//
// Non-finite pins and positions are ignored and reported like dropped links.
func (s *Simulation) Update(nodes []core.NodeSpec, links []core.LinkSpec) *core.Report {
	center := r2.Vec{X: s.cfg.ViewportWidth / 2, Y: s.cfg.ViewportHeight / 2}
	g, rep := core.Build(nodes, links,
		core.WithCenter(center),
		core.WithDefaultRadius(s.cfg.DefaultRadius),
	)
	s.UpdateGraph(g, rep)
	return rep
}

// UpdateGraph swaps in an already bound graph. rep may be nil.
//
// Complexity: O(V_prev + V_next) to reconcile + O(V + E) to re-initialize.
// Concurrency: the swap happens under the lock, so it lands between ticks.
func (s *Simulation) UpdateGraph(g *core.Graph, rep *core.Report) {
	if g == nil {
		g = core.Empty()
	}
	if rep == nil {
		rep = &core.Report{}
	}
	for _, err := range rep.Dropped {
		s.log.Warnw("record dropped", "error", err)
	}

	s.mu.Lock()
	carried := datasync.Reconcile(s.ctx.Graph, g, datasync.Policy{PinNewNodes: s.cfg.PinNewNodes})
	p := s.install(g)
	if s.loaded {
		s.alpha = s.cfg.ReheatAlpha
	}
	s.loaded = true
	s.resting = false
	nodes, clusters := g.NodeCount(), p.Len()
	s.mu.Unlock()

	s.log.Infow("data updated",
		"nodes", nodes,
		"links", g.LinkCount(),
		"clusters", clusters,
		"carried", carried.Carried,
		"added", len(carried.Added),
		"removed", len(carried.Removed),
		"dropped", len(rep.Dropped),
	)
	s.observer.ObserveUpdate(nodes, clusters, rep)
}
