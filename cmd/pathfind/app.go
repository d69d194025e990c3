package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/graphfile"
	"github.com/katalvlaran/pathfind/heuristic"
	"github.com/katalvlaran/pathfind/observe"
	"github.com/katalvlaran/pathfind/search"
	"github.com/katalvlaran/pathfind/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// app carries flag values and the per-invocation instrumentation.
type app struct {
	stdout, stderr io.Writer

	configPath string
	cfg        Config

	graphPath string
	dbDriver  string
	dbDSN     string
	name      string

	from, to      string
	algo          string
	scale         float64
	maxExpansions int

	logLevel string
	logJSON  bool
	metrics  bool
	trace    bool

	logger   *slog.Logger
	registry *prometheus.Registry
	tp       *sdktrace.TracerProvider
	runner   *observe.Runner
}

// run executes the CLI with args and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if a.tp != nil {
		_ = a.tp.Shutdown(context.Background())
	}
	if err != nil {
		code, msg := describe(err)
		fmt.Fprintln(stderr, msg)
		return code
	}

	return exitOK
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pathfind",
		Short:         "Shortest paths with Dijkstra and A*",
		Long:          `Runs Dijkstra and A* queries over weighted graphs read from JSON/YAML files or SQL databases.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.dumpMetrics()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML file with defaults (algo, scale, db, log)")
	pf.StringVarP(&a.graphPath, "graph", "g", "", "graph document (.json, .yaml, .yml)")
	pf.StringVar(&a.dbDriver, "db-driver", "", "database driver: sqlite or mysql")
	pf.StringVar(&a.dbDSN, "db-dsn", "", "database connection string")
	pf.StringVarP(&a.name, "name", "n", "", "graph name in the database")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	pf.BoolVar(&a.logJSON, "log-json", false, "log as JSON instead of text")
	pf.BoolVar(&a.metrics, "metrics", false, "print Prometheus metrics after the command")
	pf.BoolVar(&a.trace, "trace", false, "log a summary of every trace span")

	root.AddCommand(a.routeCmd(), a.compareCmd(), a.checkCmd(), a.importCmd(), a.exportCmd(), a.listCmd())

	return root
}

// addQueryFlags registers the flags shared by commands that search.
func (a *app) addQueryFlags(cmd *cobra.Command, needFrom bool) {
	f := cmd.Flags()
	f.StringVar(&a.from, "from", "", "start node")
	f.StringVar(&a.to, "to", "", "goal node")
	f.StringVar(&a.algo, "algo", "", "dijkstra or astar")
	f.Float64Var(&a.scale, "scale", 0, "Euclidean heuristic scale")
	f.IntVar(&a.maxExpansions, "max-expansions", 0, "abort after this many expansions (0 = no limit)")
	if needFrom {
		_ = cmd.MarkFlagRequired("from")
	}
	_ = cmd.MarkFlagRequired("to")
}

// setup merges the config file with explicitly set flags and builds the
// logger, metrics registry, tracer provider and runner.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("algo") {
		cfg.Algo = strings.ToLower(a.algo)
	}
	if flags.Changed("scale") {
		cfg.Scale = a.scale
	}
	if flags.Changed("max-expansions") {
		cfg.MaxExpansions = a.maxExpansions
	}
	if flags.Changed("db-driver") {
		cfg.DB.Driver = a.dbDriver
	}
	if flags.Changed("db-dsn") {
		cfg.DB.DSN = a.dbDSN
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-json") {
		cfg.Log.JSON = a.logJSON
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := parseLevel(cfg.Log.Level)
	hopts := &slog.HandlerOptions{Level: level}
	if cfg.Log.JSON {
		a.logger = slog.New(slog.NewJSONHandler(a.stderr, hopts))
	} else {
		a.logger = slog.New(slog.NewTextHandler(a.stderr, hopts))
	}

	ropts := []observe.RunnerOption{observe.WithLogger(a.logger)}
	if a.metrics {
		a.registry = prometheus.NewRegistry()
		ropts = append(ropts, observe.WithMetrics(observe.NewMetrics(a.registry)))
	}
	if a.trace {
		// Spans are reported regardless of --log-level.
		spans := slog.New(slog.NewTextHandler(a.stderr, nil))
		if cfg.Log.JSON {
			spans = slog.New(slog.NewJSONHandler(a.stderr, nil))
		}
		a.tp = sdktrace.NewTracerProvider(sdktrace.WithSyncer(&spanLogger{logger: spans}))
		ropts = append(ropts, observe.WithTracerProvider(a.tp))
	}
	a.runner = observe.NewRunner(ropts...)

	return nil
}

// loadGraph reads the graph from --graph or from the database.
func (a *app) loadGraph(ctx context.Context) (*core.Graph[string], error) {
	if a.graphPath != "" {
		return graphfile.LoadGraph(a.graphPath)
	}
	if a.cfg.DB.DSN == "" || a.name == "" {
		return nil, errNoGraphSource
	}
	st, err := store.Open(ctx, a.cfg.DB.Driver, a.cfg.DB.DSN)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	return st.Load(ctx, a.name)
}

// searchOptions translates the effective config into search options.
func (a *app) searchOptions(g *core.Graph[string]) []search.Option {
	var opts []search.Option
	if a.cfg.MaxExpansions > 0 {
		opts = append(opts, search.WithMaxExpansions(a.cfg.MaxExpansions))
	}
	if mode, _ := search.ParseMode(a.cfg.Algo); mode == search.AStar {
		opts = append(opts, search.WithHeuristic(a.heuristic(g)))
	}

	return opts
}

func (a *app) heuristic(g *core.Graph[string]) heuristic.Heuristic[string] {
	return heuristic.Euclidean[string](g, a.cfg.Scale)
}

// dumpMetrics prints the registry in the text exposition format.
func (a *app) dumpMetrics() error {
	if a.registry == nil {
		return nil
	}
	mfs, err := a.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(a.stdout, mf); err != nil {
			return err
		}
	}

	return nil
}

// spanLogger is a span exporter that logs one record per finished span.
type spanLogger struct {
	logger *slog.Logger
}

func (s *spanLogger) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, sp := range spans {
		attrs := []slog.Attr{
			slog.String("trace_id", sp.SpanContext().TraceID().String()),
			slog.String("span_id", sp.SpanContext().SpanID().String()),
			slog.Duration("duration", sp.EndTime().Sub(sp.StartTime())),
			slog.String("status", sp.Status().Code.String()),
		}
		for _, kv := range sp.Attributes() {
			attrs = append(attrs, slog.String(string(kv.Key), kv.Value.Emit()))
		}
		s.logger.LogAttrs(ctx, slog.LevelInfo, "span "+sp.Name(), attrs...)
	}

	return nil
}

func (s *spanLogger) Shutdown(context.Context) error { return nil }
