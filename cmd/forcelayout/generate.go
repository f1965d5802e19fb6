// SPDX-License-Identifier: MIT

package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/forcelayout/builder"
	"github.com/katalvlaran/forcelayout/dataset"
)

type generateFlags struct {
	clusters   int
	size       int
	pIntra     float64
	pInter     float64
	background int
	seed       int64
	minValue   float64
	maxValue   float64
	pNegative  float64
	prefix     string
	symmetric  bool
	twins      bool
	out        string
}

// validate rejects value flags the builder options would panic on.
func (f generateFlags) validate() error {
	if f.maxValue < f.minValue {
		return errors.Newf("generate: --max-value %g is below --min-value %g", f.maxValue, f.minValue)
	}
	if f.pNegative < 0 || f.pNegative > 1 {
		return errors.Newf("generate: --p-negative %g is not in [0,1]", f.pNegative)
	}
	return nil
}

// constructors turns the flags into builder steps.
func (f generateFlags) constructors() []builder.Constructor {
	cons := []builder.Constructor{builder.Clustered(f.clusters, f.size, f.pIntra, f.pInter)}
	if f.background > 0 {
		cons = append(cons, builder.Isolated(f.background))
	}
	if f.twins {
		cons = append(cons, builder.HitTestTwins())
	}
	return cons
}

func (f generateFlags) options() []builder.BuilderOption {
	opts := []builder.BuilderOption{
		builder.WithSeed(f.seed),
		builder.WithSignedValue(f.minValue, f.maxValue, f.pNegative),
	}
	if f.prefix != "" {
		opts = append(opts, builder.WithPrefix(f.prefix))
	}
	if f.symmetric {
		opts = append(opts, builder.WithSymmetric())
	}
	return opts
}

func generateCmd() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Write a synthetic clustered dataset",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.validate(); err != nil {
				return err
			}
			d, err := builder.BuildDataset(f.options(), f.constructors()...)
			if err != nil {
				return err
			}
			file := dataset.FromSpecs(d.Nodes, d.Links)
			if f.out == "" {
				return dataset.Encode(cmd.OutOrStdout(), dataset.FormatYAML, file)
			}
			if err := dataset.WriteFile(f.out, file); err != nil {
				return err
			}

			w := cmd.ErrOrStderr()
			banner(w, "generate")
			field(w, "nodes", len(d.Nodes))
			field(w, "links", len(d.Links))
			field(w, "written", good.Sprint(f.out))
			return nil
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&f.clusters, "clusters", "k", 4, "number of clusters")
	fl.IntVarP(&f.size, "size", "n", 8, "nodes per cluster")
	fl.Float64Var(&f.pIntra, "p-intra", 0.4, "link probability inside a cluster")
	fl.Float64Var(&f.pInter, "p-inter", 0.02, "link probability across clusters")
	fl.IntVar(&f.background, "background", 0, "unclustered nodes without links")
	fl.Int64Var(&f.seed, "seed", 1, "random seed")
	fl.Float64Var(&f.minValue, "min-value", 1, "smallest |link value|")
	fl.Float64Var(&f.maxValue, "max-value", 4, "largest |link value|")
	fl.Float64Var(&f.pNegative, "p-negative", 0.2, "chance of a negative link value")
	fl.StringVar(&f.prefix, "prefix", "", "node name prefix")
	fl.BoolVar(&f.symmetric, "symmetric", false, "emit every link in both directions")
	fl.BoolVar(&f.twins, "twins", false, "add hit-test twins for visible links")
	fl.StringVarP(&f.out, "out", "o", "", "output file (.yaml or .json); stdout YAML when empty")

	return cmd
}
