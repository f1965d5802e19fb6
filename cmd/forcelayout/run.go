// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/forcelayout/config"
	"github.com/katalvlaran/forcelayout/dataset"
	"github.com/katalvlaran/forcelayout/metrics"
	"github.com/katalvlaran/forcelayout/simulation"
)

type runFlags struct {
	data     string
	out      string
	maxTicks int
	realtime bool
	metrics  bool
}

// configFlags maps run flags onto config keys so they override file and
// environment values.
var configFlags = map[string]string{
	"width":         "viewport_width",
	"height":        "viewport_height",
	"charge":        "charge_strength",
	"auto-charge":   "charge_auto",
	"center":        "center_force",
	"pin-new-nodes": "pin_new_nodes",
}

func runCmd(o *options) *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Lay out a dataset until it comes to rest",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			for flag, key := range configFlags {
				if err := o.viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
					return err
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.loadConfig()
			if err != nil {
				return err
			}
			log, err := o.logger()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			file, err := dataset.ReadFile(f.data)
			if err != nil {
				return err
			}
			nodes, links, err := file.Specs()
			if err != nil {
				return err
			}

			rec := metrics.NewRecorder()
			sim, err := simulation.New(
				simulation.WithConfig(cfg),
				simulation.WithLogger(log),
				simulation.WithObserver(rec),
			)
			if err != nil {
				return err
			}
			rep := sim.Update(nodes, links)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			ticks := 0
			if f.maxTicks > 0 {
				for ticks < f.maxTicks && sim.Running() && ctx.Err() == nil {
					if sim.Advance() {
						ticks++
					}
				}
			} else {
				fps := 0.0
				if f.realtime {
					fps = cfg.FrameRate
				}
				if ticks, err = sim.Run(ctx, fps); err != nil {
					log.Warnw("layout interrupted", "ticks", ticks, "error", err)
				}
			}

			frame := sim.Frame()
			layout := dataset.FromFrame(frame)
			if f.out == "" {
				if err := dataset.Encode(cmd.OutOrStdout(), dataset.FormatJSON, layout); err != nil {
					return err
				}
			} else if err := dataset.WriteFile(f.out, layout); err != nil {
				return err
			}

			w := cmd.ErrOrStderr()
			banner(w, "run")
			field(w, "nodes", len(frame.Nodes))
			field(w, "links", len(frame.Links))
			field(w, "clusters", len(frame.Colors))
			dropped := fmt.Sprint(len(rep.Dropped))
			if !rep.Clean() {
				dropped = warn.Sprint(dropped)
			}
			field(w, "dropped", dropped)
			field(w, "ticks", ticks)
			field(w, "alpha", fmt.Sprintf("%.4f", frame.Alpha))
			rest := warn.Sprint("no")
			if !sim.Running() {
				rest = good.Sprint("yes")
			}
			field(w, "at rest", rest)
			if f.out != "" {
				field(w, "written", good.Sprint(f.out))
			}
			if f.metrics {
				return printMetrics(w, rec)
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.data, "data", "d", "", "dataset file (.yaml or .json)")
	fl.StringVarP(&f.out, "out", "o", "", "layout output file (.yaml or .json); stdout JSON when empty")
	fl.IntVar(&f.maxTicks, "max-ticks", 0, "stop after this many ticks (0 runs to rest)")
	fl.BoolVar(&f.realtime, "realtime", false, "pace ticks at frame_rate instead of running flat out")
	fl.BoolVar(&f.metrics, "metrics", false, "print collected metrics after the run")
	_ = cmd.MarkFlagRequired("data")

	d := config.Default()
	fl.Float64("width", d.ViewportWidth, "viewport width")
	fl.Float64("height", d.ViewportHeight, "viewport height")
	fl.Float64("charge", d.ChargeStrength, "many-body strength (0 disables)")
	fl.Bool("auto-charge", d.ChargeAuto, "derive the many-body strength from the node count")
	fl.Bool("center", d.CenterForce, "enable the centering force")
	fl.Bool("pin-new-nodes", d.PinNewNodes, "pin nodes that first appear in an update")

	return cmd
}

// printMetrics dumps every gathered sample as "name value".
func printMetrics(w io.Writer, rec *metrics.Recorder) error {
	families, err := rec.Registry().Gather()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, subtle.Sprint("  metrics"))
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var v float64
			switch {
			case m.GetCounter() != nil:
				v = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				v = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				v = float64(m.GetHistogram().GetSampleCount())
			}
			fmt.Fprintf(w, "    %-40s %g\n", mf.GetName(), v)
		}
	}
	return nil
}
