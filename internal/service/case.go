package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/quyennt2020/device-repair-management-system-sub005/internal/core"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/domain/model"
	apperrors "github.com/quyennt2020/device-repair-management-system-sub005/internal/errors"
)

// CaseServiceOptions groups dependencies for CaseService.
type CaseServiceOptions struct {
	Repo        core.CaseRepository       // Required: case repository
	Escalations core.EscalationRepository // Required: escalation repository
	Logger      *slog.Logger              // Optional: structured logger
}

// CaseService encapsulates business logic for repair cases.
type CaseService struct {
	repo        core.CaseRepository
	escalations core.EscalationRepository
	logger      *slog.Logger
}

// NewCaseService constructs a new CaseService.
func NewCaseService(opts CaseServiceOptions) (*CaseService, error) {
	if opts.Repo == nil {
		return nil, errors.New("CaseRepository is required")
	}
	if opts.Escalations == nil {
		return nil, errors.New("EscalationRepository is required")
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "case_service")
	}

	return &CaseService{repo: opts.Repo, escalations: opts.Escalations, logger: logger}, nil
}

// Create opens a new repair case.
func (s *CaseService) Create(ctx context.Context, req *model.CreateCaseRequest) (*model.Case, error) {
	repairCase, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "repair case opened",
			"case_id", repairCase.ID,
			"customer_id", repairCase.CustomerID,
		)
	}
	return repairCase, nil
}

// Get retrieves a case by ID.
func (s *CaseService) Get(ctx context.Context, id string) (*model.Case, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves cases with an optional status filter and pagination.
func (s *CaseService) List(ctx context.Context, opts model.CaseListOptions) ([]*model.Case, error) {
	return s.repo.List(ctx, opts)
}

// UpdateStatus advances a case along the open -> in_progress -> resolved ->
// closed lifecycle. Invalid transitions are rejected before touching the
// database.
func (s *CaseService) UpdateStatus(ctx context.Context, id string, status model.CaseStatus) (*model.Case, error) {
	if !status.IsValid() {
		return nil, apperrors.ValidationField("status", fmt.Sprintf("invalid case status %q", status))
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransition(status) {
		return nil, apperrors.Conflict(
			fmt.Sprintf("case %s cannot transition from %s to %s", id, current.Status, status),
		)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "case status updated",
			"case_id", id,
			"from", current.Status,
			"to", status,
		)
	}
	return updated, nil
}

// AttachSLADefinition binds an SLA definition to a case, bringing it under
// monitoring.
func (s *CaseService) AttachSLADefinition(ctx context.Context, id, slaDefinitionID string) (*model.Case, error) {
	updated, err := s.repo.AttachSLADefinition(ctx, id, slaDefinitionID)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "sla definition attached",
			"case_id", id,
			"sla_definition_id", slaDefinitionID,
		)
	}
	return updated, nil
}

// Escalations lists escalations recorded for a case.
func (s *CaseService) Escalations(ctx context.Context, caseID string) ([]*model.SLAEscalation, error) {
	return s.escalations.ListByCase(ctx, caseID)
}
