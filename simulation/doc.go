// SPDX-License-Identifier: MIT

// Package simulation drives the force kernels over a bound graph: it owns the
// alpha cooling schedule, integrates velocities, enforces pins and viewport
// bounds, and swaps datasets between ticks.
//
// Alpha schedule
//
//	alpha += (alphaTarget - alpha) * alphaDecay      once per tick
//	Running() == alpha >= alphaMin || alphaTarget >= alphaMin
//
// A fresh simulation starts at InitialAlpha (1). Every later Update reheats
// to ReheatAlpha (0.1); a drag raises alphaTarget to DragAlphaTarget (0.3)
// until Cooldown.
//
// Tick
//
//  1. Cool alpha.
//  2. Apply kernels in order: link, cluster, collision, [charge], [center].
//  3. Integrate: v *= 1 - velocityDecay; p += v.
//  4. Pinned nodes snap to their pin with zero velocity; free nodes are
//     clamped into the viewport minus BorderMargin.
//  5. Emit one Frame to the OnTick callback.
//
// Concurrency:
//
//	One mutex serializes Tick, Update and every interaction call, so a data
//	swap never lands halfway through a tick. Callbacks run after the lock is
//	released and receive copies, so they may call back into the Simulation.
//
// Errors:
//
//	ErrNodeNotFound     - interaction on an unknown node name.
//	ErrClusterNotFound  - PinCluster/UnpinCluster on an unknown cluster id.
//	ErrOptionViolation  - New received out-of-range tuning values.
package simulation
