package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/tspdp/cache"
	"github.com/katalvlaran/tspdp/config"
	"github.com/katalvlaran/tspdp/matrixio"
	"github.com/katalvlaran/tspdp/tsp"
)

// ErrTooLarge is returned when a matrix exceeds the configured max_nodes.
var ErrTooLarge = errors.New("tspdp: matrix exceeds max_nodes")

// app carries the resolved configuration and I/O of one invocation.
type app struct {
	ctx    context.Context
	out    io.Writer
	errOut io.Writer
	cfg    config.Config
	logger *log.Logger

	configPath string
	flags      config.Config // flag values; applied only when Changed
}

func newRootCommand(ctx context.Context, out, errOut io.Writer) *cobra.Command {
	a := &app{ctx: ctx, out: out, errOut: errOut, flags: config.Default()}

	rootCmd := &cobra.Command{
		Use:               "tspdp",
		Short:             "Solve small Travelling Salesman instances exactly (Held–Karp).",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "path to YAML config file")
	pf.StringVar(&a.flags.LogLevel, "log-level", a.flags.LogLevel, "log level (trace, debug, info, warn, error)")
	pf.StringVar(&a.flags.LogFormat, "log-format", a.flags.LogFormat, "log format (text, json)")
	pf.StringVarP(&a.flags.Output, "output", "o", a.flags.Output, "result format (text, json, yaml)")
	pf.IntVar(&a.flags.MaxNodes, "max-nodes", a.flags.MaxNodes, "refuse matrices with more nodes than this")
	pf.StringVar(&a.flags.CacheDir, "cache-dir", "", "result cache directory (default: user cache dir)")
	pf.BoolVar(&a.flags.NoCache, "no-cache", false, "do not read or write the result cache")

	rootCmd.AddCommand(
		newSolveCommand(a),
		newExamplesCommand(a),
		newRandomCommand(a),
		newCacheCommand(a),
	)

	return rootCmd
}

// setup resolves configuration layers and configures logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err = cfg.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}
	a.applyFlags(cmd.Flags(), &cfg)
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(a.errOut, cfg)
	a.logger.Debugf("config: %+v", cfg)

	return nil
}

// applyFlags copies explicitly set flags over cfg.
func (a *app) applyFlags(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("log-level") {
		cfg.LogLevel = a.flags.LogLevel
	}
	if fs.Changed("log-format") {
		cfg.LogFormat = a.flags.LogFormat
	}
	if fs.Changed("output") {
		cfg.Output = a.flags.Output
	}
	if fs.Changed("max-nodes") {
		cfg.MaxNodes = a.flags.MaxNodes
	}
	if fs.Changed("cache-dir") {
		cfg.CacheDir = a.flags.CacheDir
	}
	if fs.Changed("no-cache") {
		cfg.NoCache = a.flags.NoCache
	}
	if fs.Changed("start") {
		cfg.Start = a.flags.Start
	}
}

func newLogger(w io.Writer, cfg config.Config) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.LogFormat == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
		return logger
	}
	logger.SetFormatter(&log.TextFormatter{
		ForceColors:      colorable(w),
		DisableColors:    !colorable(w),
		DisableTimestamp: true,
	})

	return logger
}

// colorable reports whether w is a terminal and NO_COLOR is unset.
func colorable(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// openCache returns nil when caching is disabled or the store cannot be
// opened; a broken cache never fails a solve.
func (a *app) openCache() *cache.Store {
	if a.cfg.NoCache {
		return nil
	}
	store, err := cache.Open(a.cfg.CacheDir, a.logger)
	if err != nil {
		a.logger.Warnf("result cache disabled: %v", err)
		return nil
	}
	return store
}

func newSolveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [matrix file]",
		Short: "Solve the matrix in a text or YAML file (built-in samples without a file)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				a.logger.Warn("no matrix file given, running built-in samples")
				return a.runSamples()
			}

			a.logger.Infof("reading matrix from %s", args[0])
			doc, err := matrixio.Load(args[0])
			if err != nil {
				return err
			}
			start := a.cfg.Start
			if doc.HasStart && !cmd.Flags().Changed("start") {
				start = doc.Start
			}
			return a.solveAndReport(args[0], doc.Costs, start, true)
		},
	}
	cmd.Flags().IntVarP(&a.flags.Start, "start", "s", 0, "start node (overrides the file's start)")

	return cmd
}

func newExamplesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Solve the built-in sample graphs",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.runSamples()
		},
	}
}

func (a *app) runSamples() error {
	for _, s := range tsp.Samples() {
		if err := a.ctx.Err(); err != nil {
			return err
		}
		if err := a.solveAndReport(s.Name, s.Costs, s.Start, false); err != nil {
			return err
		}
	}
	return nil
}

// solveAndReport validates, solves (through the cache) and renders one instance.
func (a *app) solveAndReport(name string, costs [][]tsp.Cost, start int, echo bool) error {
	if len(costs) > a.cfg.MaxNodes {
		return errors.Wrapf(ErrTooLarge, "%s: %d nodes, max_nodes=%d", name, len(costs), a.cfg.MaxNodes)
	}
	m, err := tsp.NewMatrix(costs, start)
	if err != nil {
		return errors.Wrap(err, name)
	}

	rep := report{Name: name, N: m.N(), Start: m.Start()}
	if echo {
		rep.Matrix = m.Rows()
	}

	store := a.openCache()
	defer store.Close()

	if store != nil {
		if e, hit, err := store.Get(m); err != nil {
			a.logger.Warnf("cache lookup failed: %v", err)
		} else if hit {
			tour, ok := e.Tour()
			rep.fill(tour, ok)
			rep.Cached = true
			return a.render(rep)
		}
	}

	began := time.Now()
	tour, ok := tsp.NewSolver(m).Solve()
	a.logger.WithFields(log.Fields{
		"instance": name,
		"n":        m.N(),
		"found":    ok,
		"elapsed":  time.Since(began).String(),
	}).Debug("solved")

	if store != nil {
		if err := store.Put(m, tour, ok); err != nil {
			a.logger.Warnf("cache store failed: %v", err)
		}
	}
	rep.fill(tour, ok)

	return a.render(rep)
}

func newRandomCommand(a *app) *cobra.Command {
	var opts tsp.RandomOptions
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a reproducible random cost matrix",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			costs, err := tsp.RandomMatrix(opts)
			if err != nil {
				return err
			}
			if a.cfg.Output == "yaml" {
				return matrixio.WriteYAML(a.out, matrixio.Document{Start: a.cfg.Start, Costs: costs})
			}
			return matrixio.WriteText(a.out, costs)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&opts.N, "nodes", "n", 8, "number of nodes")
	f.Int64Var(&opts.MaxCost, "max-cost", 100, "largest edge cost")
	f.Float64Var(&opts.Density, "density", 1, "probability that an edge exists")
	f.Int64Var(&opts.Seed, "seed", 0, "random seed (0 = fixed default)")
	f.BoolVar(&opts.PlantTour, "plant-tour", false, "guarantee at least one tour")
	f.BoolVar(&opts.Symmetric, "symmetric", false, "mirror costs so cost(i,j)=cost(j,i)")

	return cmd
}

func newCacheCommand(a *app) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the result cache",
	}
	var olderThan time.Duration
	prune := &cobra.Command{
		Use:   "prune",
		Short: "Delete cached results older than --older-than",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			store, err := cache.Open(a.cfg.CacheDir, a.logger)
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.Prune(time.Now().Add(-olderThan))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.out, "removed %d entries\n", n)
			return err
		},
	}
	prune.Flags().DurationVar(&olderThan, "older-than", 30*24*time.Hour, "age of entries to remove")
	cacheCmd.AddCommand(prune)

	return cacheCmd
}
