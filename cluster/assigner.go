// SPDX-License-Identifier: MIT

package cluster

import (
	"github.com/katalvlaran/forcelayout/core"
)

// Assigner recomputes partitions while keeping each surviving cluster id on
// the palette slot it held before. It is not safe for concurrent use; the
// simulation calls it under its own lock.
type Assigner struct {
	palette Palette
	// held maps cluster id -> exclusive palette slot.
	held map[int]int
}

// NewAssigner returns an Assigner with no history.
func NewAssigner(palette Palette) *Assigner {
	return &Assigner{palette: palette, held: make(map[int]int)}
}

// Palette returns the palette in use.
func (a *Assigner) Palette() Palette {
	return a.palette
}

// Reset forgets every held slot.
func (a *Assigner) Reset() {
	a.held = make(map[int]int)
}

// Recompute partitions nodes and assigns colors.
//
// Steps:
//  1. Group nodes by cluster id in first-seen order.
//  2. Keep slots of ids that are still present; release the rest.
//  3. Give every id without a slot the lowest free slot.
//  4. Ids that find no free slot follow the overflow policy.
func (a *Assigner) Recompute(nodes []*core.Node) *Partition {
	order, members, unclustered := group(nodes)

	live := make(map[int]struct{}, len(order))
	for _, id := range order {
		live[id] = struct{}{}
	}
	used := make([]bool, a.palette.Size())
	for id, slot := range a.held {
		if _, ok := live[id]; !ok || slot >= len(used) {
			delete(a.held, id)
			continue
		}
		used[slot] = true
	}

	p := &Partition{
		clusters:    make([]*Cluster, 0, len(order)),
		byID:        make(map[int]*Cluster, len(order)),
		unclustered: unclustered,
		palette:     a.palette,
	}
	next := 0
	for pos, id := range order {
		slot, ok := a.held[id]
		if !ok {
			for next < len(used) && used[next] {
				next++
			}
			if next < len(used) {
				slot = next
				used[slot] = true
				a.held[id] = slot
				ok = true
			}
		}

		c := &Cluster{ID: id, Members: members[id]}
		switch {
		case ok:
			c.Color = a.palette.Colors[slot]
		case a.palette.Overflow == OverflowWrap && a.palette.Size() > 0:
			c.Color = a.palette.Colors[pos%a.palette.Size()]
		default:
			c.Color = a.palette.Fallback
		}
		p.clusters = append(p.clusters, c)
		p.byID[id] = c
	}

	return p
}
