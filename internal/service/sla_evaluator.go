package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/quyennt2020/device-repair-management-system-sub005/config"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/core"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/data"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/domain/model"
)

// SLAEvaluatorServiceOptions groups dependencies for SLAEvaluatorService.
type SLAEvaluatorServiceOptions struct {
	Cases        core.CaseRepository       // Required: case repository
	Escalations  core.EscalationRepository // Required: escalation repository
	Config       config.SLAMonitorConfig   // Required: monitor configuration
	Logger       *slog.Logger              // Optional: structured logger
	TimeProvider data.TimeProvider         // Optional: defaults to real time
}

// SLAEvaluatorService evaluates every monitored repair case against its SLA
// definition and escalates breaches.
//
// Evaluation is read-mostly; the only writes are escalation rows, which are
// idempotent per (case, breach kind), so concurrent cycles are safe.
type SLAEvaluatorService struct {
	cases        core.CaseRepository
	escalations  core.EscalationRepository
	config       config.SLAMonitorConfig
	logger       *slog.Logger
	timeProvider data.TimeProvider
}

var _ core.SLAEvaluator = (*SLAEvaluatorService)(nil)

// NewSLAEvaluatorService constructs a new SLAEvaluatorService.
func NewSLAEvaluatorService(opts SLAEvaluatorServiceOptions) (*SLAEvaluatorService, error) {
	if opts.Cases == nil {
		return nil, errors.New("CaseRepository is required")
	}
	if opts.Escalations == nil {
		return nil, errors.New("EscalationRepository is required")
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "sla_evaluator")
	}

	timeProvider := opts.TimeProvider
	if timeProvider == nil {
		timeProvider = &data.RealTimeProvider{}
	}

	return &SLAEvaluatorService{
		cases:        opts.Cases,
		escalations:  opts.Escalations,
		config:       opts.Config,
		logger:       logger,
		timeProvider: timeProvider,
	}, nil
}

// Evaluate classifies all open and in-progress cases that carry an SLA
// definition and escalates newly breached ones. Escalation dispatch is
// bounded by the configured concurrency.
func (s *SLAEvaluatorService) Evaluate(ctx context.Context) ([]model.CaseSLAResult, error) {
	cases, err := s.cases.ListOpenWithSLA(ctx)
	if err != nil {
		return nil, fmt.Errorf("list monitored cases: %w", err)
	}

	now := s.timeProvider.Now().UTC()
	results := make([]model.CaseSLAResult, len(cases))
	for i, c := range cases {
		results[i] = model.ClassifySLA(model.ClassifyInput{
			Now:             now,
			OpenedAt:        c.OpenedAt,
			FirstResponseAt: c.FirstResponseAt,
			ResolvedAt:      c.ResolvedAt,
			Definition:      c.Definition(),
		})
		results[i].CaseID = c.CaseID
	}

	if err := s.escalateBreaches(ctx, results); err != nil {
		return nil, err
	}
	return results, nil
}

// escalateBreaches records an escalation for every breached obligation.
// Each goroutine owns a distinct result index, so flag writes do not race.
func (s *SLAEvaluatorService) escalateBreaches(ctx context.Context, results []model.CaseSLAResult) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.EscalationConcurrency)

	for i := range results {
		if results[i].Status != model.SLAStatusBreached {
			continue
		}
		result := &results[i]
		g.Go(func() error {
			escalated, err := s.escalateCase(gctx, result)
			if err != nil {
				return err
			}
			result.Escalated = escalated
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("escalate breached cases: %w", err)
	}
	return nil
}

func (s *SLAEvaluatorService) escalateCase(ctx context.Context, result *model.CaseSLAResult) (bool, error) {
	escalated := false
	for _, kind := range result.BreachKinds() {
		newly, err := s.escalations.RecordEscalation(ctx, result.CaseID, kind)
		if err != nil {
			return escalated, fmt.Errorf("record escalation for case %s: %w", result.CaseID, err)
		}
		if newly {
			escalated = true
			if s.logger != nil {
				s.logger.WarnContext(ctx, "sla breached, case escalated",
					"case_id", result.CaseID,
					"breach_kind", kind,
				)
			}
		}
	}
	return escalated, nil
}
