// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/forcelayout/core"
)

// HitTestTwins returns a Constructor that appends a LinkHitTest twin for
// every visible link that does not have one yet. Twins carry the same value,
// so a renderer can hit-test them while forces ignore them.
func HitTestTwins() Constructor {
	return func(d *Dataset, _ builderConfig) error {
		type pair struct{ source, target string }
		twinned := make(map[pair]struct{})
		for _, l := range d.Links {
			if l.Kind == core.LinkHitTest {
				twinned[pair{l.Source, l.Target}] = struct{}{}
			}
		}
		n := len(d.Links)
		for i := 0; i < n; i++ {
			l := d.Links[i]
			if l.Kind != core.LinkVisible {
				continue
			}
			key := pair{l.Source, l.Target}
			if _, ok := twinned[key]; ok {
				continue
			}
			twinned[key] = struct{}{}
			l.Kind = core.LinkHitTest
			d.Links = append(d.Links, l)
		}
		return nil
	}
}

// Isolated returns a Constructor that appends n nodes with no links.
// Inside InCluster(0, …) they become background nodes.
func Isolated(n int) Constructor {
	return func(d *Dataset, cfg builderConfig) error {
		if n < 0 {
			return validateMin("Isolated", "n", n, 0)
		}
		d.addNodes(cfg, n)
		return nil
	}
}
