// SPDX-License-Identifier: MIT

// Package datasync carries interaction state from one bound dataset to the
// next so that a data update does not visibly reset the layout.
//
// Matching is by node name. For every node present in both graphs the
// position, the pin, the fixed flag and any paint are copied over; velocity
// is not, so a reheated layout starts calm. Nodes that only exist in the new
// graph keep their provided or spiral placement, or are pinned where they
// stand when Policy.PinNewNodes is set.
package datasync

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/forcelayout/core"
)

// Policy controls how new nodes are treated.
type Policy struct {
	// PinNewNodes pins every node that did not exist before at its initial
	// position and marks it fixed.
	PinNewNodes bool
}

// Report summarizes one Reconcile.
type Report struct {
	Carried int
	Added   []string
	Removed []string
}

// Reconcile copies state from prev into next. prev may be nil.
//
// Complexity: O(V_prev + V_next).
func Reconcile(prev, next *core.Graph, policy Policy) Report {
	var rep Report
	if next == nil {
		return rep
	}

	for _, n := range next.Nodes() {
		var old *core.Node
		if prev != nil {
			old, _ = prev.Node(n.Name)
		}
		if old != nil {
			carry(old, n)
			rep.Carried++
			continue
		}

		rep.Added = append(rep.Added, n.Name)
		if policy.PinNewNodes {
			n.Fixed = true
			if !n.Pin.IsSet() {
				n.Pin = core.Some(r2.Vec{X: n.X, Y: n.Y})
			}
		}
	}

	if prev != nil {
		for _, o := range prev.Nodes() {
			if _, ok := next.Node(o.Name); !ok {
				rep.Removed = append(rep.Removed, o.Name)
			}
		}
	}
	return rep
}

// carry copies the interaction state of from onto to. Paint is copied only
// from a painted node, so paint supplied with the new data survives.
func carry(from, to *core.Node) {
	to.X, to.Y = from.X, from.Y
	to.Pin = from.Pin
	to.Fixed = from.Fixed
	if from.Paint.Painted {
		to.Paint = from.Paint
	}
}
