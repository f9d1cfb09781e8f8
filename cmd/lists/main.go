/*
Command lists exercises the containers of this module.

	lists exercise -n 1000000 --variant stack,persistent
	lists forest

The exercise command fills each selected container, removes half of its elements
and releases the rest, reporting released nodes as counted by the release hooks.
The forest command prints the shared structure of a few derived persistent lists.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/npillmayer/lists/listdbg"
	"github.com/npillmayer/lists/listmetrics"
	"github.com/npillmayer/lists/persistent/list"
	"github.com/npillmayer/schuko/tracing"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

// tracer traces with key 'lists.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("lists.cmd")
}

// traceKeys are the tracing keys of all packages of this module.
var traceKeys = []string{
	"lists.cmd", "lists.stack", "lists.queue", "lists.deque",
	"persistent.list", "lists.metrics", "lists.dbg",
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var traceLevel string
	rootCmd := &cobra.Command{
		Use:   "lists",
		Short: "Exercise linked list containers",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := parseTraceLevel(traceLevel)
			if err != nil {
				return err
			}
			for _, key := range traceKeys {
				tracing.Select(key).SetTraceLevel(level)
			}
			return nil
		},
	}
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "error", "Trace level (error|info|debug)")

	rootCmd.AddCommand(newExerciseCmd(), newForestCmd())
	return rootCmd
}

func parseTraceLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(s) {
	case "error":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", s)
}

// --- exercise --------------------------------------------------------------

type exerciseOptions struct {
	count    int
	variants []string
}

func addExerciseFlags(fs *pflag.FlagSet, opts *exerciseOptions) {
	fs.IntVarP(&opts.count, "count", "n", 100000, "Number of elements per container")
	fs.StringSliceVar(&opts.variants, "variant", variants, "Container variants to exercise")
}

func newExerciseCmd() *cobra.Command {
	opts := &exerciseOptions{}
	cmd := &cobra.Command{
		Use:   "exercise",
		Short: "Fill, drain and release containers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reports, err := runExercise(cmd.Context(), opts.variants, opts.count)
			if err != nil {
				return err
			}
			printReports(cmd.OutOrStdout(), reports)
			return nil
		},
	}
	addExerciseFlags(cmd.Flags(), opts)
	return cmd
}

// runExercise exercises every variant on a goroutine of its own. Each goroutine
// owns its container exclusively.
func runExercise(ctx context.Context, names []string, n int) ([]report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if n < 0 {
		return nil, fmt.Errorf("element count must not be negative: %d", n)
	}
	for _, name := range names {
		if !slices.Contains(variants, name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
		}
	}
	rel, err := listmetrics.NewReleases(prometheus.NewRegistry(), "lists")
	if err != nil {
		return nil, err
	}
	reports := make([]report, len(names))
	grp, grpCtx := errgroup.WithContext(ctx)
	for i, name := range names {
		grp.Go(func() error {
			r, err := exercise(grpCtx, name, n, rel)
			if err != nil {
				return err
			}
			tracer().Infof("%s done in %s", name, r.Elapsed)
			reports[i] = r
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func printReports(w io.Writer, reports []report) {
	for _, r := range reports {
		rate := 0.0
		if secs := r.Elapsed.Seconds(); secs > 0 {
			rate = float64(r.N) / secs
		}
		fmt.Fprintf(w, "%-10s  %s elements, %s popped, %s released, %s\n",
			r.Variant,
			humanize.Comma(int64(r.N)),
			humanize.Comma(int64(r.Popped)),
			humanize.Comma(int64(r.Released)),
			humanize.SIWithDigits(rate, 2, "elements/s"),
		)
	}
}

// --- forest ----------------------------------------------------------------

func newForestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forest",
		Short: "Print the shared structure of derived persistent lists",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), demoForest())
			return nil
		},
	}
}

func demoForest() string {
	base := list.List[string]{}.AppendAll("c", "b")
	x := base.Append("x")
	y := base.Append("y")
	yt := y.Tail()
	z := yt.Append("z")
	defer func() {
		for _, l := range []list.List[string]{base, x, y, yt, z} {
			l.Release()
		}
	}()
	return listdbg.Forest(
		listdbg.N("base", base),
		listdbg.N("x", x),
		listdbg.N("y", y),
		listdbg.N("z", z),
		listdbg.N("empty", list.List[string]{}),
	)
}
