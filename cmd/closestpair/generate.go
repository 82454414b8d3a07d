package main

import (
	"fmt"
	"time"

	"github.com/hupe1980/closestpair/pointgen"
	"github.com/hupe1980/closestpair/pointset"
	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate NAME",
		Short: "Write a random point set to the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, args[0])
		},
	}

	flags := cmd.Flags()
	flags.Int("count", 1000, "Number of points.")
	flags.Int64("seed", 0, "Random seed. 0 picks one from the clock.")
	flags.String("distribution", "uniform", "Point distribution, one of [uniform, gaussian, clustered, integer].")
	flags.Float64("scale", 1000, "Extent of the distribution: half-width, sigma or lattice side.")
	flags.String("compression", "lz4", "Compression of .cp3d output, one of [none, lz4, zstd].")
	a.bindFlags(cmd)
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, name string) error {
	ctx := cmd.Context()

	count := a.conf.GetInt("count")
	if count < 0 {
		return fmt.Errorf("invalid --count %d", count)
	}
	compression, err := pointset.ParseCompression(a.conf.GetString("compression"))
	if err != nil {
		return err
	}
	seed := a.conf.GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	dist := pointgen.Distribution(a.conf.GetString("distribution"))
	pts, err := pointgen.New(seed).Generate(dist, count, a.conf.GetFloat64("scale"))
	if err != nil {
		return err
	}

	store, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	if err := pointset.Save(ctx, store, name, pts,
		pointset.WithLogger(a.logger),
		pointset.WithCompression(compression),
	); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: wrote %d points (seed %d)\n", name, len(pts), seed)
	return nil
}
