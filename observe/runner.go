package observe

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/pathfind/heuristic"
	"github.com/katalvlaran/pathfind/search"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// traceScope names the tracer obtained from the global provider.
const traceScope = "github.com/katalvlaran/pathfind/observe"

// Outcome classifies how a search ended.
type Outcome string

const (
	OutcomeFound       Outcome = "found"
	OutcomeUnreachable Outcome = "unreachable"
	OutcomeLimit       Outcome = "limit"
	OutcomeCanceled    Outcome = "canceled"
	OutcomeError       Outcome = "error"
)

// Classify maps a search result and error to an Outcome.
func Classify[N cmp.Ordered](res *search.Result[N], err error) Outcome {
	switch {
	case err == nil && res != nil && res.Reached:
		return OutcomeFound
	case err == nil:
		return OutcomeUnreachable
	case errors.Is(err, search.ErrExpansionLimit):
		return OutcomeLimit
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	default:
		return OutcomeError
	}
}

// Runner runs instrumented searches. A Runner is safe for concurrent use.
type Runner struct {
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *Metrics
	newID   func() string
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger (default slog.Default()).
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithTracerProvider takes the tracer from tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) RunnerOption {
	return func(r *Runner) {
		if tp != nil {
			r.tracer = tp.Tracer(traceScope)
		}
	}
}

// WithMetrics enables Prometheus metrics.
func WithMetrics(m *Metrics) RunnerOption {
	return func(r *Runner) { r.metrics = m }
}

// WithIDFunc replaces the run ID generator (default uuid.NewString).
func WithIDFunc(fn func() string) RunnerOption {
	return func(r *Runner) {
		if fn != nil {
			r.newID = fn
		}
	}
}

// NewRunner returns a Runner with the given options applied.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		logger: slog.Default(),
		tracer: otel.GetTracerProvider().Tracer(traceScope),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Report is the outcome of one instrumented search.
type Report[N cmp.Ordered] struct {
	RunID    string
	Outcome  Outcome
	Result   *search.Result[N] // nil only when the search rejected its options
	Path     search.Path[N]    // empty unless Outcome is OutcomeFound
	Duration time.Duration
}

// Found reports whether a path was found.
func (rep *Report[N]) Found() bool { return rep.Outcome == OutcomeFound }

// Run searches g from start to goal with the given options and records the
// run. The Report is returned even when err is non-nil. A nil Runner
// behaves like NewRunner().
//
// An unreachable goal is not an error. A predecessor map that cannot be
// walked back to start is returned as search.ErrInternalConsistency.
func Run[N cmp.Ordered](ctx context.Context, r *Runner, g search.Graph[N], start, goal N, opts ...search.Option) (*Report[N], error) {
	if r == nil {
		r = NewRunner()
	}
	rep := &Report[N]{RunID: r.newID()}

	ctx, span := r.tracer.Start(ctx, "pathfind.search", trace.WithAttributes(
		attribute.String("pathfind.run_id", rep.RunID),
		attribute.String("pathfind.from", fmt.Sprint(start)),
		attribute.String("pathfind.to", fmt.Sprint(goal)),
	))
	defer span.End()

	begin := time.Now()
	res, err := search.SearchContext(ctx, g, start, goal, opts...)
	rep.Duration = time.Since(begin)
	rep.Result = res
	rep.Outcome = Classify(res, err)

	if rep.Outcome == OutcomeFound {
		path, _, perr := res.Path()
		if perr != nil {
			err = perr
			rep.Outcome = OutcomeError
		} else {
			rep.Path = path
		}
	}

	rec := record{
		runID:   rep.RunID,
		outcome: rep.Outcome,
		mode:    search.Dijkstra,
		cost:    rep.Path.Cost,
		from:    fmt.Sprint(start),
		to:      fmt.Sprint(goal),
		pathLen: len(rep.Path.Nodes),
		took:    rep.Duration,
		err:     err,
	}
	if res != nil {
		rec.mode, rec.stats, rec.cost = res.Mode, res.Stats, res.Cost()
	}

	r.finish(ctx, span, rec)

	return rep, err
}

// record is the type-erased summary of one run.
type record struct {
	runID    string
	outcome  Outcome
	mode     search.Mode
	stats    search.Stats
	cost     float64
	from, to string
	pathLen  int
	took     time.Duration
	err      error
}

// finish annotates the span, updates metrics and logs the run.
func (r *Runner) finish(ctx context.Context, span trace.Span, rec record) {
	span.SetAttributes(
		attribute.String("pathfind.mode", rec.mode.String()),
		attribute.String("pathfind.outcome", string(rec.outcome)),
		attribute.Int("pathfind.pops", rec.stats.Pops),
		attribute.Int("pathfind.expanded", rec.stats.Expanded),
		attribute.Int("pathfind.stale_skips", rec.stats.StaleSkips),
	)
	if rec.outcome == OutcomeFound {
		span.SetAttributes(
			attribute.Float64("pathfind.cost", rec.cost),
			attribute.Int("pathfind.path_len", rec.pathLen),
		)
	}
	if rec.err != nil {
		span.RecordError(rec.err)
		span.SetStatus(codes.Error, rec.err.Error())
	}

	r.metrics.observe(rec.mode, rec.outcome, rec.stats, rec.cost, rec.took)

	level := slog.LevelDebug
	switch rec.outcome {
	case OutcomeLimit, OutcomeCanceled:
		level = slog.LevelWarn
	case OutcomeError:
		level = slog.LevelError
	}
	attrs := []slog.Attr{
		slog.String("run_id", rec.runID),
		slog.String("mode", rec.mode.String()),
		slog.String("from", rec.from),
		slog.String("to", rec.to),
		slog.String("outcome", string(rec.outcome)),
		slog.Bool("reached", rec.outcome == OutcomeFound),
		slog.Int("pops", rec.stats.Pops),
		slog.Int("expanded", rec.stats.Expanded),
		slog.Duration("duration", rec.took),
	}
	if rec.outcome == OutcomeFound {
		attrs = append(attrs, slog.Float64("cost", rec.cost), slog.Int("path_len", rec.pathLen))
	}
	if rec.err != nil {
		attrs = append(attrs, slog.String("error", rec.err.Error()))
	}
	r.logger.LogAttrs(ctx, level, "search finished", attrs...)
}

// Comparison pairs a Dijkstra run with an A* run of the same query.
type Comparison[N cmp.Ordered] struct {
	Dijkstra *Report[N]
	AStar    *Report[N]
}

// Compare runs the query with Dijkstra and with A* guided by h concurrently.
// opts apply to both runs; a heuristic among them is overridden. The first
// error cancels the other run.
func Compare[N cmp.Ordered](ctx context.Context, r *Runner, g search.Graph[N], start, goal N, h heuristic.Heuristic[N], opts ...search.Option) (*Comparison[N], error) {
	var cmpRes Comparison[N]
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		dopts := append(append([]search.Option(nil), opts...), search.WithMode[N](search.Dijkstra))
		rep, err := Run(ctx, r, g, start, goal, dopts...)
		cmpRes.Dijkstra = rep
		return err
	})
	eg.Go(func() error {
		aopts := append(append([]search.Option(nil), opts...), search.WithHeuristic(h))
		rep, err := Run(ctx, r, g, start, goal, aopts...)
		cmpRes.AStar = rep
		return err
	})
	if err := eg.Wait(); err != nil {
		return &cmpRes, err
	}

	return &cmpRes, nil
}
