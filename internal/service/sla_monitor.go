package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/quyennt2020/device-repair-management-system-sub005/config"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/core"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/data"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/domain/model"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/observability/metrics"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/observability/statsd"
)

// Cycle trigger labels for logs and metrics.
const (
	triggerStartup = "startup"
	triggerTimer   = "timer"
	triggerManual  = "manual"
)

// monitorReportCacheKey is where the latest cycle summary is cached in Redis.
const monitorReportCacheKey = "sla_monitor:last_run"

// SLAMonitorServiceOptions groups dependencies for SLAMonitorService.
type SLAMonitorServiceOptions struct {
	Evaluator    core.SLAEvaluator       // Required: SLA evaluator
	Config       config.SLAMonitorConfig // Required: monitor configuration
	Enabled      bool                    // Whether monitoring is enabled at all
	Logger       *slog.Logger            // Optional: structured logger
	Metrics      statsd.Sink             // Optional: metrics sink (StatsD-compatible)
	Cache        core.CacheRepository    // Optional: Redis cache for the latest cycle summary
	TimeProvider data.TimeProvider       // Optional: defaults to real time
}

// SLAMonitorService owns the lifecycle of recurring SLA checks.
//
// The service is running exactly when its ticker handle is non-nil; the
// handle is guarded by a mutex so Start, Stop and Status may be called from
// any goroutine. Timer-driven evaluation failures are logged and never stop
// the cadence; manual runs propagate failures to the caller.
type SLAMonitorService struct {
	evaluator    core.SLAEvaluator
	config       config.SLAMonitorConfig
	interval     time.Duration
	enabled      bool
	logger       *slog.Logger
	metrics      statsd.Sink
	cache        core.CacheRepository
	reportTTL    time.Duration
	timeProvider data.TimeProvider

	mu      sync.Mutex
	ticker  *time.Ticker
	cancel  context.CancelFunc
	lastRun *model.RunSummary
}

// NewSLAMonitorService constructs a new SLAMonitorService.
func NewSLAMonitorService(opts SLAMonitorServiceOptions) (*SLAMonitorService, error) {
	if opts.Evaluator == nil {
		return nil, errors.New("SLAEvaluator is required")
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "sla_monitor")
	}

	timeProvider := opts.TimeProvider
	if timeProvider == nil {
		timeProvider = &data.RealTimeProvider{}
	}

	reportTTL := opts.Config.ReportTTL
	if reportTTL <= 0 {
		reportTTL = 30 * time.Minute
	}

	return &SLAMonitorService{
		evaluator:    opts.Evaluator,
		config:       opts.Config,
		interval:     opts.Config.Interval(),
		enabled:      opts.Enabled,
		logger:       logger,
		metrics:      opts.Metrics,
		cache:        opts.Cache,
		reportTTL:    reportTTL,
		timeProvider: timeProvider,
	}, nil
}

// Start arms the monitoring ticker and kicks off one immediate evaluation.
// It is a logged no-op when monitoring is disabled or already running. The
// loop runs until Stop is called or ctx is cancelled.
func (s *SLAMonitorService) Start(ctx context.Context) error {
	if !s.enabled {
		if s.logger != nil {
			s.logger.InfoContext(ctx, "sla monitoring disabled, not starting")
		}
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker != nil {
		if s.logger != nil {
			s.logger.InfoContext(ctx, "sla monitor already running")
		}
		return nil
	}

	interval := s.interval
	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.ticker = time.NewTicker(interval)
	s.cancel = cancel

	if s.logger != nil {
		s.logger.InfoContext(ctx, "starting sla monitor", "interval", interval)
	}

	// The loop stops on loopCtx; evaluation cycles run on the caller's ctx so
	// Stop disarms the cadence without cutting short an in-flight cycle.
	go s.runLoop(loopCtx, ctx, s.ticker)

	return nil
}

// Stop disarms the ticker and clears the handle. Idempotent and safe to call
// before Start. An in-flight evaluation cycle is left to finish.
func (s *SLAMonitorService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker == nil {
		return
	}

	s.ticker.Stop()
	s.ticker = nil
	s.cancel()
	s.cancel = nil

	if s.logger != nil {
		s.logger.Info("sla monitor stopped")
	}
}

// RunNow performs one evaluation pass outside the recurring cadence and
// returns the full report. Unlike timer-driven cycles, failures propagate.
func (s *SLAMonitorService) RunNow(ctx context.Context) (*model.MonitorReport, error) {
	startedAt := s.timeProvider.Now().UTC()
	results, err := s.evaluator.Evaluate(ctx)
	finishedAt := s.timeProvider.Now().UTC()

	if err != nil {
		s.emitCycle(metrics.CycleMetric{
			Trigger:  triggerManual,
			Duration: finishedAt.Sub(startedAt),
			Err:      err,
		})
		return nil, fmt.Errorf("manual sla evaluation: %w", err)
	}

	summary := model.Summarize(results, startedAt, finishedAt)
	s.recordRun(ctx, summary)
	s.logCycle(ctx, triggerManual, summary)

	return &model.MonitorReport{Summary: summary, Results: results}, nil
}

// Status reports a point-in-time view of the monitor lifecycle.
func (s *SLAMonitorService) Status() model.MonitorStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return model.MonitorStatus{
		Enabled:         s.enabled,
		Running:         s.ticker != nil,
		IntervalMinutes: s.config.CheckIntervalMinutes,
	}
}

// LastRun returns the most recent cycle summary, or nil when no cycle has
// completed yet.
func (s *SLAMonitorService) LastRun() *model.RunSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastRun == nil {
		return nil
	}
	summary := *s.lastRun
	return &summary
}

// runLoop performs the immediate startup evaluation, then evaluates on every
// tick until loopCtx is cancelled by Stop.
func (s *SLAMonitorService) runLoop(loopCtx, evalCtx context.Context, ticker *time.Ticker) {
	s.runCycle(evalCtx, triggerStartup)

	for {
		select {
		case <-loopCtx.Done():
			if s.logger != nil {
				s.logger.Debug("sla monitor loop exiting", "reason", loopCtx.Err())
			}
			return
		case <-evalCtx.Done():
			if s.logger != nil {
				s.logger.Debug("sla monitor loop exiting", "reason", evalCtx.Err())
			}
			return
		case <-ticker.C:
			s.runCycle(evalCtx, triggerTimer)
		}
	}
}

// runCycle performs one timer-driven evaluation. Failures are contained: they
// are logged and counted, and the cadence continues.
func (s *SLAMonitorService) runCycle(ctx context.Context, trigger string) {
	startedAt := s.timeProvider.Now().UTC()
	results, err := s.evaluator.Evaluate(ctx)
	finishedAt := s.timeProvider.Now().UTC()

	if err != nil {
		s.emitCycle(metrics.CycleMetric{
			Trigger:  trigger,
			Duration: finishedAt.Sub(startedAt),
			Err:      err,
		})
		if s.logger != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				s.logger.Debug("sla evaluation cancelled", "trigger", trigger, "error", err)
			} else {
				s.logger.ErrorContext(ctx, "sla evaluation failed", "trigger", trigger, "error", err)
			}
		}
		return
	}

	summary := model.Summarize(results, startedAt, finishedAt)
	s.recordRun(ctx, summary)
	s.logCycle(ctx, trigger, summary)
}

func (s *SLAMonitorService) recordRun(ctx context.Context, summary model.RunSummary) {
	s.mu.Lock()
	s.lastRun = &summary
	s.mu.Unlock()

	s.cacheReport(ctx, summary)
}

// cacheReport keeps the latest cycle summary in Redis so other instances can
// read it. Cache failures are logged and never affect the cycle.
func (s *SLAMonitorService) cacheReport(ctx context.Context, summary model.RunSummary) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, monitorReportCacheKey, raw, s.reportTTL); err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "sla monitor report cache write failed", "error", err)
		}
	}
}

func (s *SLAMonitorService) logCycle(ctx context.Context, trigger string, summary model.RunSummary) {
	s.emitCycle(metrics.CycleMetric{
		Trigger:   trigger,
		Checked:   summary.Checked,
		AtRisk:    summary.AtRisk,
		Breached:  summary.Breached,
		Escalated: summary.Escalated,
		Duration:  summary.Duration,
	})

	if s.logger != nil {
		s.logger.InfoContext(ctx, "sla evaluation cycle finished",
			"trigger", trigger,
			"checked", summary.Checked,
			"on_track", summary.OnTrack,
			"at_risk", summary.AtRisk,
			"breached", summary.Breached,
			"escalated", summary.Escalated,
			"duration", summary.Duration,
		)
	}
}

func (s *SLAMonitorService) emitCycle(in metrics.CycleMetric) {
	if s.metrics == nil {
		return
	}
	metrics.EmitMonitorCycle(s.metrics, in)
}
