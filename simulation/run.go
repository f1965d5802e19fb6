// SPDX-License-Identifier: MIT

package simulation

import (
	"context"

	"golang.org/x/time/rate"
)

// Run advances the layout at most fps times per second until it comes to
// rest or ctx is done. fps <= 0 runs unthrottled. It returns the number of
// ticks run and ctx's error if it stopped early.
func (s *Simulation) Run(ctx context.Context, fps float64) (int, error) {
	limit := rate.Inf
	if fps > 0 {
		limit = rate.Limit(fps)
	}
	lim := rate.NewLimiter(limit, 1)

	ticks := 0
	for {
		if err := ctx.Err(); err != nil {
			return ticks, err
		}
		if !s.Running() {
			return ticks, nil
		}
		if err := lim.Wait(ctx); err != nil {
			return ticks, err
		}
		if s.Advance() {
			ticks++
		}
	}
}
