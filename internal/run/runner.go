package run

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mhalvorsen/lsm-workbench/internal/backend"
	"github.com/mhalvorsen/lsm-workbench/internal/model"
	"github.com/mhalvorsen/lsm-workbench/internal/sysinfo"
	"github.com/mhalvorsen/lsm-workbench/internal/writer"
)

// Progress reports how far through a case the runner is.
type Progress struct {
	Completed int
	Total     int
	Backend   string
}

// String renders progress the way task trackers display it.
func (p Progress) String() string {
	return fmt.Sprintf("Running %d/%d (%s)", p.Completed, p.Total, p.Backend)
}

// Runner executes cases against a backend registry.
type Runner struct {
	registry   *backend.Registry
	sink       writer.ResultWriter
	info       sysinfo.Info
	logger     *slog.Logger
	onProgress func(Progress)
}

// Option configures a Runner.
type Option func(*Runner)

// WithSink adds a result sink. Without one, records are only returned.
func WithSink(w writer.ResultWriter) Option {
	return func(r *Runner) { r.sink = w }
}

// WithProgress registers a progress callback, invoked once per
// (sweep point, backend) combination before it runs.
func WithProgress(fn func(Progress)) Option {
	return func(r *Runner) { r.onProgress = fn }
}

// New creates a Runner. System info is collected once and stamped on
// every record the runner produces.
func New(registry *backend.Registry, logger *slog.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Runner{
		registry: registry,
		info:     sysinfo.Collect(),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunCase executes every (sweep point, backend) combination of a case
// and returns the records produced. Unknown backends are skipped and
// logged. The context is checked between combinations; the pricing call
// itself is not interruptible.
func (r *Runner) RunCase(ctx context.Context, c Case) ([]model.ResultRecord, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	points := []float64{0}
	if c.Sweep != nil {
		points = c.Sweep.Values()
	}
	total := len(points) * len(c.Backends)

	results := make([]model.ResultRecord, 0, total)
	completed := 0

	for _, v := range points {
		opt, sim := c.Params, c.Simulation
		if c.Sweep != nil {
			opt, sim = c.Sweep.apply(opt, sim, v)
		}

		for _, name := range c.Backends {
			if err := ctx.Err(); err != nil {
				return results, err
			}

			completed++
			if r.onProgress != nil {
				r.onProgress(Progress{Completed: completed, Total: total, Backend: name})
			}

			b, err := r.registry.Lookup(name)
			if err != nil {
				if errors.Is(err, backend.ErrUnknownBackend) {
					r.logger.Warn("skipping unknown backend", "case", c.Name, "backend", name)
					continue
				}
				return results, err
			}

			start := time.Now()
			price, err := b.Price(opt.Spec(), sim.Spec())
			elapsed := time.Since(start)
			if err != nil {
				r.logger.Error("backend failed", "case", c.Name, "backend", name, "error", err)
				continue
			}

			rec := model.ResultRecord{
				CaseName:  c.Name,
				Backend:   name,
				Timestamp: time.Now().UTC(),
				Inputs: model.Inputs{
					S0:       opt.S0,
					K:        opt.K,
					T:        opt.T,
					R:        opt.R,
					Sigma:    opt.Sigma,
					NumPaths: sim.NumPaths,
					NumSteps: sim.NumSteps,
					Seed:     sim.Seed,
				},
				Outputs: model.Outputs{
					Price:  price,
					TimeMS: float64(elapsed.Microseconds()) / 1000,
				},
				SystemInfo: r.info,
			}

			r.logger.Info("run complete",
				"case", c.Name,
				"backend", name,
				"price", price,
				"time_ms", rec.Outputs.TimeMS,
			)

			if r.sink != nil {
				if err := r.sink.Write(ctx, rec); err != nil {
					return results, fmt.Errorf("write result: %w", err)
				}
			}
			results = append(results, rec)
		}
	}

	return results, nil
}
