package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/closestpair"
	"github.com/hupe1980/closestpair/point"
	"github.com/hupe1980/closestpair/pointset"
	"github.com/spf13/cobra"
)

// ErrVerifyMismatch is returned by --verify when the divide and conquer
// result disagrees with the brute force reference.
var ErrVerifyMismatch = errors.New("verification failed")

func newSearchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search NAME...",
		Short: "Find the closest pair in each point set",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.Bool("verify", false, "Cross-check every result against an O(n^2) brute force search.")
	flags.Int("concurrency", pointset.DefaultConcurrency, "Maximum number of point sets loaded at once.")
	a.bindFlags(cmd)
	return cmd
}

func (a *app) runSearch(cmd *cobra.Command, names []string) error {
	ctx := cmd.Context()

	store, err := a.openStore(ctx)
	if err != nil {
		return err
	}

	sets, err := pointset.LoadAll(ctx, store, names,
		pointset.WithLogger(a.logger),
		pointset.WithConcurrency(a.conf.GetInt("concurrency")),
	)
	if err != nil {
		return err
	}

	metrics := &closestpair.BasicMetricsCollector{}
	finder := closestpair.New(
		closestpair.WithLogger(a.logger),
		closestpair.WithMetricsCollector(metrics),
	)

	out := cmd.OutOrStdout()
	verify := a.conf.GetBool("verify")
	for i, pts := range sets {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := finder.Search(pts); err != nil {
			return fmt.Errorf("%s: %w", names[i], err)
		}

		res, err := finder.Result()
		if err != nil {
			return err
		}
		printResult(out, names[i], len(pts), res)

		if verify {
			if err := verifyResult(pts, res); err != nil {
				return fmt.Errorf("%s: %w", names[i], err)
			}
			fmt.Fprintf(out, "%s: verified\n", names[i])
		}
	}

	stats := metrics.GetStats()
	a.logger.InfoContext(ctx, "search summary",
		"sets", stats.SearchCount,
		"points", stats.SearchPoints,
		"comparisons", stats.SearchComparisons,
		"strips", stats.StripCount,
	)
	return nil
}

func printResult(w io.Writer, name string, count int, res closestpair.Result) {
	fmt.Fprintf(w, "%s: %d points, closest pair %d %s and %d %s at distance %g (%d comparisons)\n",
		name, count, res.I, res.A, res.J, res.B, res.Distance, res.Comparisons)
}

func verifyResult(pts []point.Point, res closestpair.Result) error {
	want, err := closestpair.BruteForce(pts)
	if err != nil {
		return err
	}
	if want.Distance != res.Distance {
		return fmt.Errorf("%w: brute force found %g between %d and %d, search found %g",
			ErrVerifyMismatch, want.Distance, want.I, want.J, res.Distance)
	}
	return nil
}
