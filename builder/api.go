// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/forcelayout/core"
)

// Dataset is a provider-shaped pair of node and link records.
type Dataset struct {
	Nodes []core.NodeSpec
	Links []core.LinkSpec
}

// Graph binds the dataset with core.Build.
func (d *Dataset) Graph(opts ...core.BuildOption) (*core.Graph, *core.Report) {
	return core.Build(d.Nodes, d.Links, opts...)
}

// addNode appends a node named cfg.idFn(len(d.Nodes)) in cfg.cluster and
// returns its name.
func (d *Dataset) addNode(cfg builderConfig) string {
	name := cfg.idFn(len(d.Nodes))
	spec := core.NodeSpec{Name: name}
	if cfg.cluster != core.Unclustered {
		spec.Cluster = core.Some(cfg.cluster)
	}
	d.Nodes = append(d.Nodes, spec)
	return name
}

// addNodes appends n nodes and returns their names in order.
func (d *Dataset) addNodes(cfg builderConfig, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = d.addNode(cfg)
	}
	return names
}

// addLink appends source→target with the next value, plus the reverse link
// when cfg.symmetric is set. Both directions share one value.
func (d *Dataset) addLink(cfg builderConfig, source, target string) {
	v := cfg.value()
	d.Links = append(d.Links, core.LinkSpec{Source: source, Target: target, Value: core.Some(v)})
	if cfg.symmetric && source != target {
		d.Links = append(d.Links, core.LinkSpec{Source: target, Target: source, Value: core.Some(v)})
	}
}

// Constructor appends records to d using the resolved cfg.
type Constructor func(d *Dataset, cfg builderConfig) error

// BuildDataset resolves bopts once and runs every constructor in order on a
// fresh Dataset. The first failing constructor aborts the build.
//
// Errors:
//   - ErrConstructFailed if a constructor is nil.
//   - Any error returned by a constructor, wrapped with its position.
func BuildDataset(bopts []BuilderOption, cons ...Constructor) (*Dataset, error) {
	cfg := newBuilderConfig(bopts...)
	d := &Dataset{}
	for i, c := range cons {
		if c == nil {
			return nil, errors.Wrapf(ErrConstructFailed, "BuildDataset: constructor %d is nil", i)
		}
		if err := c(d, cfg); err != nil {
			return nil, errors.Wrapf(err, "BuildDataset: constructor %d", i)
		}
	}
	return d, nil
}

// InCluster runs cons with every new node assigned to cluster id.
// id 0 produces unclustered nodes.
func InCluster(id int, cons Constructor) Constructor {
	return func(d *Dataset, cfg builderConfig) error {
		if cons == nil {
			return errors.Wrap(ErrConstructFailed, "InCluster: nil constructor")
		}
		cfg.cluster = id
		return cons(d, cfg)
	}
}
