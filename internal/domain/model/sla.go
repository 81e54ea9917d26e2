package model

import (
	"strings"
	"time"

	apperrors "github.com/quyennt2020/device-repair-management-system-sub005/internal/errors"
)

// DefaultAtRiskRatio is the fraction of an SLA window after which an
// unmet obligation counts as at risk.
const DefaultAtRiskRatio = 0.8

// SLADefinition describes the service-level thresholds a case is measured against.
type SLADefinition struct {
	ID                string    `db:"id"                 json:"id"`
	Name              string    `db:"name"               json:"name"`
	ResponseMinutes   int       `db:"response_minutes"   json:"response_minutes"`
	ResolutionMinutes int       `db:"resolution_minutes" json:"resolution_minutes"`
	AtRiskRatio       float64   `db:"at_risk_ratio"      json:"at_risk_ratio"`
	EscalationPolicy  *string   `db:"escalation_policy"  json:"escalation_policy,omitempty"`
	CreatedAt         time.Time `db:"created_at"         json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"         json:"updated_at"`
}

// ResponseWindow returns the response threshold as a duration.
func (d *SLADefinition) ResponseWindow() time.Duration {
	return time.Duration(d.ResponseMinutes) * time.Minute
}

// ResolutionWindow returns the resolution threshold as a duration.
func (d *SLADefinition) ResolutionWindow() time.Duration {
	return time.Duration(d.ResolutionMinutes) * time.Minute
}

// CreateSLADefinitionRequest carries the fields needed to create an SLA definition.
type CreateSLADefinitionRequest struct {
	Name              string  `json:"name"`
	ResponseMinutes   int     `json:"response_minutes"`
	ResolutionMinutes int     `json:"resolution_minutes"`
	AtRiskRatio       float64 `json:"at_risk_ratio"`
	EscalationPolicy  *string `json:"escalation_policy,omitempty"`
}

// Validate checks the request for required and well-formed fields.
func (r *CreateSLADefinitionRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apperrors.ValidationField("name", "name is required and cannot be empty")
	}
	if r.ResponseMinutes < 1 {
		return apperrors.ValidationField("response_minutes", "response_minutes must be at least 1")
	}
	if r.ResolutionMinutes < 1 {
		return apperrors.ValidationField("resolution_minutes", "resolution_minutes must be at least 1")
	}
	if r.ResolutionMinutes < r.ResponseMinutes {
		return apperrors.ValidationField("resolution_minutes", "resolution_minutes must be at least response_minutes")
	}
	if r.AtRiskRatio != 0 && (r.AtRiskRatio <= 0 || r.AtRiskRatio >= 1) {
		return apperrors.ValidationField("at_risk_ratio", "at_risk_ratio must be between 0 and 1")
	}
	return nil
}

// SLAStatus classifies how a case currently stands against its SLA.
type SLAStatus string

const (
	// SLAStatusOnTrack indicates no SLA obligation is at risk or breached.
	SLAStatusOnTrack SLAStatus = "on_track"
	// SLAStatusAtRisk indicates an obligation has passed the at-risk ratio of its window.
	SLAStatusAtRisk SLAStatus = "at_risk"
	// SLAStatusBreached indicates at least one obligation has exceeded its window.
	SLAStatusBreached SLAStatus = "breached"
)

// BreachKind names the SLA obligation that was missed.
type BreachKind string

const (
	// BreachKindResponse is a missed first-response deadline.
	BreachKindResponse BreachKind = "response"
	// BreachKindResolution is a missed resolution deadline.
	BreachKindResolution BreachKind = "resolution"
)

// CaseSLAResult is the outcome of evaluating one case against its SLA definition.
// Results are ephemeral: they are never persisted, only reported.
type CaseSLAResult struct {
	CaseID             string    `json:"case_id"`
	Status             SLAStatus `json:"status"`
	ResponseBreached   bool      `json:"response_breached"`
	ResolutionBreached bool      `json:"resolution_breached"`
	Escalated          bool      `json:"escalated"`
	EvaluatedAt        time.Time `json:"evaluated_at"`
}

// BreachKinds lists the obligations breached in this result.
func (r *CaseSLAResult) BreachKinds() []BreachKind {
	var kinds []BreachKind
	if r.ResponseBreached {
		kinds = append(kinds, BreachKindResponse)
	}
	if r.ResolutionBreached {
		kinds = append(kinds, BreachKindResolution)
	}
	return kinds
}

// ClassifyInput groups the inputs for ClassifySLA to keep param count ≤3.
type ClassifyInput struct {
	Now             time.Time
	OpenedAt        time.Time
	FirstResponseAt *time.Time
	ResolvedAt      *time.Time
	Definition      SLADefinition
}

// ClassifySLA evaluates one case against its SLA definition.
//
// An obligation is breached once the elapsed time since opening exceeds its
// window and the obligation is still unmet. It is at risk once elapsed time
// passes AtRiskRatio of the window. Obligations met before their deadline
// never count against the case, regardless of how much time has passed since.
func ClassifySLA(in ClassifyInput) CaseSLAResult {
	ratio := in.Definition.AtRiskRatio
	if ratio <= 0 || ratio >= 1 {
		ratio = DefaultAtRiskRatio
	}

	elapsed := in.Now.Sub(in.OpenedAt)

	result := CaseSLAResult{
		Status:      SLAStatusOnTrack,
		EvaluatedAt: in.Now,
	}

	atRisk := false

	responseWindow := in.Definition.ResponseWindow()
	if obligationOpen(in.FirstResponseAt, in.OpenedAt, responseWindow) {
		switch {
		case elapsed > responseWindow:
			result.ResponseBreached = true
		case elapsed >= time.Duration(float64(responseWindow) * ratio):
			atRisk = true
		}
	}

	resolutionWindow := in.Definition.ResolutionWindow()
	if obligationOpen(in.ResolvedAt, in.OpenedAt, resolutionWindow) {
		switch {
		case elapsed > resolutionWindow:
			result.ResolutionBreached = true
		case elapsed >= time.Duration(float64(resolutionWindow) * ratio):
			atRisk = true
		}
	}

	switch {
	case result.ResponseBreached || result.ResolutionBreached:
		result.Status = SLAStatusBreached
	case atRisk:
		result.Status = SLAStatusAtRisk
	}

	return result
}

// obligationOpen reports whether an obligation still counts toward the SLA:
// it is unmet, or was met only after its deadline had already passed.
func obligationOpen(metAt *time.Time, openedAt time.Time, window time.Duration) bool {
	if metAt == nil {
		return true
	}
	return metAt.Sub(openedAt) > window
}

// CaseWithSLA is the flattened join row the evaluator works from: one
// monitored case together with its SLA definition thresholds.
type CaseWithSLA struct {
	CaseID            string     `db:"case_id"            json:"case_id"`
	OpenedAt          time.Time  `db:"opened_at"          json:"opened_at"`
	FirstResponseAt   *time.Time `db:"first_response_at"  json:"first_response_at,omitempty"`
	ResolvedAt        *time.Time `db:"resolved_at"        json:"resolved_at,omitempty"`
	SLAName           string     `db:"sla_name"           json:"sla_name"`
	ResponseMinutes   int        `db:"response_minutes"   json:"response_minutes"`
	ResolutionMinutes int        `db:"resolution_minutes" json:"resolution_minutes"`
	AtRiskRatio       float64    `db:"at_risk_ratio"      json:"at_risk_ratio"`
	EscalationPolicy  *string    `db:"escalation_policy"  json:"escalation_policy,omitempty"`
}

// Definition reconstructs the SLA definition thresholds from the join row.
func (c *CaseWithSLA) Definition() SLADefinition {
	return SLADefinition{
		Name:              c.SLAName,
		ResponseMinutes:   c.ResponseMinutes,
		ResolutionMinutes: c.ResolutionMinutes,
		AtRiskRatio:       c.AtRiskRatio,
		EscalationPolicy:  c.EscalationPolicy,
	}
}

// SLAEscalation records that a breached case was escalated.
// The (case_id, breach_kind) pair is unique, making escalation idempotent.
type SLAEscalation struct {
	ID          string     `db:"id"           json:"id"`
	CaseID      string     `db:"case_id"      json:"case_id"`
	BreachKind  BreachKind `db:"breach_kind"  json:"breach_kind"`
	EscalatedAt time.Time  `db:"escalated_at" json:"escalated_at"`
}
