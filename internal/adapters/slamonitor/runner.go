// Package slamonitor provides adapters for running the SLA monitor.
package slamonitor

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/quyennt2020/device-repair-management-system-sub005/config"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/core"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/data"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/observability/statsd"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/service"
)

// Runner wires the repositories, evaluator and monitor together and runs the
// monitoring loop until its context is cancelled.
type Runner struct {
	monitor *service.SLAMonitorService
	logger  *slog.Logger
}

// RunnerOptions holds the dependencies for creating a Runner.
type RunnerOptions struct {
	DB     *sql.DB
	Config config.SLAMonitorConfig
	Logger *slog.Logger

	// Optional dependency injection for testing/decoupling
	Evaluator core.SLAEvaluator
	Metrics   statsd.Sink
	Cache     core.CacheRepository
}

// NewRunner creates a new SLA monitor runner with the given options.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if err := validateRunnerOptions(&opts); err != nil {
		return nil, err
	}

	monitor, err := wireMonitorService(opts)
	if err != nil {
		return nil, fmt.Errorf("wire sla monitor service: %w", err)
	}

	return &Runner{
		monitor: monitor,
		logger:  opts.Logger,
	}, nil
}

func validateRunnerOptions(opts *RunnerOptions) error {
	if opts.DB == nil && opts.Evaluator == nil {
		return errors.New("database connection is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return nil
}

// wireMonitorService wires up all dependencies for the monitor service.
func wireMonitorService(opts RunnerOptions) (*service.SLAMonitorService, error) {
	evaluator := opts.Evaluator
	if evaluator == nil {
		var err error
		evaluator, err = service.NewSLAEvaluatorService(service.SLAEvaluatorServiceOptions{
			Cases:       data.NewCaseRepo(opts.DB),
			Escalations: data.NewEscalationRepo(opts.DB),
			Config:      opts.Config,
			Logger:      opts.Logger,
		})
		if err != nil {
			return nil, err
		}
	}

	return service.NewSLAMonitorService(service.SLAMonitorServiceOptions{
		Evaluator: evaluator,
		Config:    opts.Config,
		Enabled:   true,
		Logger:    opts.Logger,
		Metrics:   opts.Metrics,
		Cache:     opts.Cache,
	})
}

// Monitor exposes the underlying monitor service for admin surfaces
// (manual runs, status queries).
func (r *Runner) Monitor() *service.SLAMonitorService {
	return r.monitor
}

// Run starts the monitor and blocks until the context is cancelled, then
// stops the ticker. Returns nil on graceful shutdown.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.InfoContext(ctx, "starting sla monitor runner")

	if err := r.monitor.Start(ctx); err != nil {
		return fmt.Errorf("start sla monitor: %w", err)
	}

	<-ctx.Done()
	r.monitor.Stop()

	if errors.Is(ctx.Err(), context.Canceled) {
		return nil
	}
	return ctx.Err()
}
