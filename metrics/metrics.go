// SPDX-License-Identifier: MIT

// Package metrics exposes simulation activity as Prometheus collectors.
//
// Recorder implements simulation.Observer:
//
//	forcelayout_ticks_total           ticks run
//	forcelayout_alpha                 alpha after the last tick
//	forcelayout_kinetic_energy        sum of 1/2 |v|^2 over free nodes
//	forcelayout_nodes                 live nodes after the last update
//	forcelayout_clusters              non-zero clusters after the last update
//	forcelayout_dropped_links_total   links dropped at bind time
//	forcelayout_dropped_nodes_total   node records dropped at bind time
//	forcelayout_updates_total         dataset updates
//	forcelayout_rests_total           times the layout came to rest
//	forcelayout_rest_ticks            tick count at each rest
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/forcelayout/core"
)

// Namespace prefixes every collector name.
const Namespace = "forcelayout"

// Recorder holds the collectors of one simulation.
type Recorder struct {
	registry *prometheus.Registry

	Ticks        prometheus.Counter
	Alpha        prometheus.Gauge
	Energy       prometheus.Gauge
	Nodes        prometheus.Gauge
	Clusters     prometheus.Gauge
	DroppedLinks prometheus.Counter
	DroppedNodes prometheus.Counter
	Updates      prometheus.Counter
	Rests        prometheus.Counter
	RestTicks    prometheus.Histogram
}

// NewRecorder creates the collectors and registers them on a private
// registry, so several simulations (and tests) never collide.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "ticks_total",
			Help:      "Total number of simulation ticks",
		}),
		Alpha: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "alpha",
			Help:      "Simulation alpha after the last tick",
		}),
		Energy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "kinetic_energy",
			Help:      "Kinetic energy of free nodes after the last tick",
		}),
		Nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "nodes",
			Help:      "Number of live nodes",
		}),
		Clusters: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "clusters",
			Help:      "Number of non-zero clusters",
		}),
		DroppedLinks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "dropped_links_total",
			Help:      "Total number of links dropped for a missing endpoint",
		}),
		DroppedNodes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "dropped_nodes_total",
			Help:      "Total number of node records dropped for an empty or duplicate name",
		}),
		Updates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "updates_total",
			Help:      "Total number of dataset updates",
		}),
		Rests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "rests_total",
			Help:      "Total number of times the layout came to rest",
		}),
		RestTicks: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "rest_ticks",
			Help:      "Tick count at which the layout came to rest",
			Buckets:   prometheus.ExponentialBuckets(16, 2, 8),
		}),
	}

	r.registry.MustRegister(
		r.Ticks, r.Alpha, r.Energy, r.Nodes, r.Clusters,
		r.DroppedLinks, r.DroppedNodes, r.Updates, r.Rests, r.RestTicks,
	)
	return r
}

// Registry returns the registry holding the collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveTick implements simulation.Observer.
func (r *Recorder) ObserveTick(alpha, energy float64) {
	r.Ticks.Inc()
	r.Alpha.Set(alpha)
	r.Energy.Set(energy)
}

// ObserveUpdate implements simulation.Observer.
func (r *Recorder) ObserveUpdate(nodes, clusters int, report *core.Report) {
	r.Updates.Inc()
	r.Nodes.Set(float64(nodes))
	r.Clusters.Set(float64(clusters))
	if report != nil {
		r.DroppedLinks.Add(float64(report.MalformedLinks))
		r.DroppedNodes.Add(float64(report.DuplicateNodes + report.InvalidNodes))
	}
}

// ObserveRest implements simulation.Observer.
func (r *Recorder) ObserveRest(tick int) {
	r.Rests.Inc()
	r.RestTicks.Observe(float64(tick))
}
