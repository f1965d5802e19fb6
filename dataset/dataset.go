// SPDX-License-Identifier: MIT

package dataset

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/forcelayout/core"
	"github.com/katalvlaran/forcelayout/simulation"
)

// Sentinel errors.
var (
	// ErrUnknownKind indicates a link kind other than "visible" or "hit-test".
	ErrUnknownKind = errors.New("dataset: unknown link kind")

	// ErrHalfCoordinate indicates a node with only one of x/y or fx/fy.
	ErrHalfCoordinate = errors.New("dataset: coordinate pair is incomplete")

	// ErrUnknownFormat indicates a file extension that is neither YAML nor JSON.
	ErrUnknownFormat = errors.New("dataset: unknown file format")
)

// Node is one node record.
type Node struct {
	Name         string   `yaml:"name" json:"name"`
	Cluster      *int     `yaml:"cluster,omitempty" json:"cluster,omitempty"`
	Community    *int     `yaml:"community,omitempty" json:"community,omitempty"`
	X            *float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Y            *float64 `yaml:"y,omitempty" json:"y,omitempty"`
	Radius       *float64 `yaml:"radius,omitempty" json:"radius,omitempty"`
	Hits         int      `yaml:"hits,omitempty" json:"hits,omitempty"`
	FX           *float64 `yaml:"fx,omitempty" json:"fx,omitempty"`
	FY           *float64 `yaml:"fy,omitempty" json:"fy,omitempty"`
	Fixed        bool     `yaml:"fixed,omitempty" json:"fixed,omitempty"`
	Painted      bool     `yaml:"painted,omitempty" json:"painted,omitempty"`
	PaintCluster *string  `yaml:"paint_cluster,omitempty" json:"paint_cluster,omitempty"`
}

// Link is one link record.
type Link struct {
	Source string   `yaml:"source" json:"source"`
	Target string   `yaml:"target" json:"target"`
	Value  *float64 `yaml:"value,omitempty" json:"value,omitempty"`
	Weight *float64 `yaml:"weight,omitempty" json:"weight,omitempty"`
	Kind   string   `yaml:"kind,omitempty" json:"kind,omitempty"`
}

// File is a whole dataset.
type File struct {
	Nodes []Node `yaml:"nodes" json:"nodes"`
	Links []Link `yaml:"links" json:"links"`
}

// ParseKind maps a record kind to a core.LinkKind; "" means visible.
func ParseKind(s string) (core.LinkKind, error) {
	switch s {
	case "", core.LinkVisible.String():
		return core.LinkVisible, nil
	case core.LinkHitTest.String():
		return core.LinkHitTest, nil
	default:
		return 0, errors.Wrapf(ErrUnknownKind, "%q", s)
	}
}

// pair joins two nullable coordinates.
func pair(name, field string, x, y *float64) (core.Optional[r2.Vec], error) {
	switch {
	case x == nil && y == nil:
		return core.None[r2.Vec](), nil
	case x == nil || y == nil:
		return core.None[r2.Vec](), errors.Wrapf(ErrHalfCoordinate, "node %q: %s", name, field)
	default:
		return core.Some(r2.Vec{X: *x, Y: *y}), nil
	}
}

// Specs converts the records into provider specs. Node and link order is
// kept. Name checks are left to core.Build, which reports them.
func (f File) Specs() ([]core.NodeSpec, []core.LinkSpec, error) {
	nodes := make([]core.NodeSpec, 0, len(f.Nodes))
	for _, n := range f.Nodes {
		pos, err := pair(n.Name, "x/y", n.X, n.Y)
		if err != nil {
			return nil, nil, err
		}
		pin, err := pair(n.Name, "fx/fy", n.FX, n.FY)
		if err != nil {
			return nil, nil, err
		}
		nodes = append(nodes, core.NodeSpec{
			Name:      n.Name,
			Cluster:   core.FromPtr(n.Cluster),
			Community: core.FromPtr(n.Community),
			Position:  pos,
			Radius:    core.FromPtr(n.Radius),
			Hits:      n.Hits,
			Pin:       pin,
			Fixed:     n.Fixed,
			Paint:     core.Paint{Painted: n.Painted, Cluster: core.FromPtr(n.PaintCluster)},
		})
	}

	links := make([]core.LinkSpec, 0, len(f.Links))
	for i, l := range f.Links {
		kind, err := ParseKind(l.Kind)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "link %d", i)
		}
		links = append(links, core.LinkSpec{
			Source: l.Source,
			Target: l.Target,
			Value:  core.FromPtr(l.Value),
			Weight: core.FromPtr(l.Weight),
			Kind:   kind,
		})
	}
	return nodes, links, nil
}

// kindName leaves visible links unlabeled.
func kindName(k core.LinkKind) string {
	if k == core.LinkVisible {
		return ""
	}
	return k.String()
}

func vecPtrs(o core.Optional[r2.Vec]) (x, y *float64) {
	v, ok := o.Get()
	if !ok {
		return nil, nil
	}
	return &v.X, &v.Y
}

// FromSpecs converts provider specs into records.
func FromSpecs(nodes []core.NodeSpec, links []core.LinkSpec) File {
	f := File{
		Nodes: make([]Node, 0, len(nodes)),
		Links: make([]Link, 0, len(links)),
	}
	for _, n := range nodes {
		rec := Node{
			Name:         n.Name,
			Cluster:      n.Cluster.Ptr(),
			Community:    n.Community.Ptr(),
			Radius:       n.Radius.Ptr(),
			Hits:         n.Hits,
			Fixed:        n.Fixed,
			Painted:      n.Paint.Painted,
			PaintCluster: n.Paint.Cluster.Ptr(),
		}
		rec.X, rec.Y = vecPtrs(n.Position)
		rec.FX, rec.FY = vecPtrs(n.Pin)
		f.Nodes = append(f.Nodes, rec)
	}
	for _, l := range links {
		f.Links = append(f.Links, Link{
			Source: l.Source,
			Target: l.Target,
			Value:  l.Value.Ptr(),
			Weight: l.Weight.Ptr(),
			Kind:   kindName(l.Kind),
		})
	}
	return f
}

// FromFrame records a laid-out frame. Every node gets its position; pinned
// nodes also get fx/fy, which equal the position because pins are exact.
// Positions are rounded to two decimals.
func FromFrame(fr simulation.Frame) File {
	f := File{
		Nodes: make([]Node, 0, len(fr.Nodes)),
		Links: make([]Link, 0, len(fr.Links)),
	}
	for _, n := range fr.Nodes {
		x, y := round2(n.X), round2(n.Y)
		rec := Node{
			Name:    n.Name,
			X:       &x,
			Y:       &y,
			Hits:    n.Hits,
			Fixed:   n.Fixed,
			Painted: n.Painted,
		}
		if n.Cluster != core.Unclustered {
			c := n.Cluster
			rec.Cluster = &c
		}
		if n.Radius != core.DefaultRadius {
			r := n.Radius
			rec.Radius = &r
		}
		if n.Pinned {
			fx, fy := x, y
			rec.FX, rec.FY = &fx, &fy
		}
		f.Nodes = append(f.Nodes, rec)
	}
	for _, l := range fr.Links {
		v := l.Value
		f.Links = append(f.Links, Link{
			Source: l.Source,
			Target: l.Target,
			Value:  &v,
			Kind:   kindName(l.Kind),
		})
	}
	return f
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
