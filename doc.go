// SPDX-License-Identifier: MIT

// Package forcelayout lays out clustered graphs with a force-directed
// simulation: nodes in the same cluster are drawn together, linked nodes
// keep a rest length that shrinks with the link value, and overlapping
// nodes are pushed apart.
//
// What is in the box?
//
//   - Records: node and link specs with optional fields, bound by name
//   - Clusters: first-seen grouping, anchors and a sticky color palette
//   - Forces: link springs, cluster attraction, collision, charge, center
//   - Simulation: alpha cooling, pins, drag, paint, data updates between ticks
//   - Tooling: synthetic datasets, YAML/JSON files, metrics and a CLI
//
// Packages:
//
//	core/             - NodeSpec, LinkSpec, Node, Link, Graph (Build, lookups)
//	quadtree/         - spatial index used by the collision force
//	cluster/          - Partition, Assigner, Palette
//	force/            - Link, ClusterAttraction, Collision, ManyBody, Center
//	datasync/         - carry-over of positions, pins and paint across updates
//	simulation/       - the tick loop, interaction and frames for a renderer
//	config/           - tuning values (viper, TOML, FORCELAYOUT_* env, validation)
//	logger/           - zap loggers for the harness
//	metrics/          - Prometheus observer
//	builder/          - seeded synthetic datasets
//	dataset/          - YAML/JSON dataset files
//	cmd/forcelayout/  - generate, run and config commands
//
// Quick start:
//
//	sim, err := simulation.New(simulation.WithOnTick(draw))
//	if err != nil {
//		return err
//	}
//	sim.Update(nodes, links)
//	_, err = sim.Run(ctx, 60)
//
// Concurrency:
//
//	A Simulation serializes ticks, data updates and interaction calls.
//	Renderer callbacks run outside its lock and receive copies.
package forcelayout
