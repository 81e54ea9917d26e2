package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/quyennt2020/device-repair-management-system-sub005/internal/errors"
)

// CaseStatus represents the lifecycle state of a repair case.
type CaseStatus string

const (
	// CaseStatusOpen is the initial state of a newly created case.
	CaseStatusOpen CaseStatus = "open"
	// CaseStatusInProgress indicates a technician has picked up the case.
	CaseStatusInProgress CaseStatus = "in_progress"
	// CaseStatusResolved indicates the repair work is finished.
	CaseStatusResolved CaseStatus = "resolved"
	// CaseStatusClosed indicates the case is closed and archived.
	CaseStatusClosed CaseStatus = "closed"
)

// ValidCaseStatuses returns all valid case statuses.
func ValidCaseStatuses() []CaseStatus {
	return []CaseStatus{CaseStatusOpen, CaseStatusInProgress, CaseStatusResolved, CaseStatusClosed}
}

// IsValid reports whether the status is a known case status.
func (s CaseStatus) IsValid() bool {
	switch s {
	case CaseStatusOpen, CaseStatusInProgress, CaseStatusResolved, CaseStatusClosed:
		return true
	default:
		return false
	}
}

// caseTransitions maps each status to the statuses it may move to.
var caseTransitions = map[CaseStatus][]CaseStatus{
	CaseStatusOpen:       {CaseStatusInProgress},
	CaseStatusInProgress: {CaseStatusResolved},
	CaseStatusResolved:   {CaseStatusClosed},
	CaseStatusClosed:     {},
}

// CanTransition reports whether a case may move from one status to another.
func CanTransition(from, to CaseStatus) bool {
	for _, allowed := range caseTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// CanTransition reports whether a case may move from this status to another.
func (s CaseStatus) CanTransition(to CaseStatus) bool {
	return CanTransition(s, to)
}

// Case represents a device repair case.
type Case struct {
	ID              string     `db:"id"                json:"id"`
	CustomerID      string     `db:"customer_id"       json:"customer_id"`
	DeviceBrand     string     `db:"device_brand"      json:"device_brand"`
	DeviceModel     string     `db:"device_model"      json:"device_model"`
	DeviceSerial    *string    `db:"device_serial"     json:"device_serial,omitempty"`
	Status          CaseStatus `db:"status"            json:"status"`
	SLADefinitionID *string    `db:"sla_definition_id" json:"sla_definition_id,omitempty"`
	OpenedAt        time.Time  `db:"opened_at"         json:"opened_at"`
	FirstResponseAt *time.Time `db:"first_response_at" json:"first_response_at,omitempty"`
	ResolvedAt      *time.Time `db:"resolved_at"       json:"resolved_at,omitempty"`
	ClosedAt        *time.Time `db:"closed_at"         json:"closed_at,omitempty"`
	CreatedAt       time.Time  `db:"created_at"        json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"        json:"updated_at"`
}

// IsOpen reports whether the case still counts toward SLA monitoring.
func (c *Case) IsOpen() bool {
	return c.Status == CaseStatusOpen || c.Status == CaseStatusInProgress
}

// CreateCaseRequest carries the fields needed to open a repair case.
type CreateCaseRequest struct {
	CustomerID      string  `json:"customer_id"`
	DeviceBrand     string  `json:"device_brand"`
	DeviceModel     string  `json:"device_model"`
	DeviceSerial    *string `json:"device_serial,omitempty"`
	SLADefinitionID *string `json:"sla_definition_id,omitempty"`
}

// Validate checks the request for required and well-formed fields.
func (r *CreateCaseRequest) Validate() error {
	if err := uuid.Validate(strings.TrimSpace(r.CustomerID)); err != nil {
		return apperrors.ValidationField("customer_id", "customer_id must be a valid UUID")
	}
	if strings.TrimSpace(r.DeviceBrand) == "" {
		return apperrors.ValidationField("device_brand", "device_brand is required and cannot be empty")
	}
	if strings.TrimSpace(r.DeviceModel) == "" {
		return apperrors.ValidationField("device_model", "device_model is required and cannot be empty")
	}
	if r.SLADefinitionID != nil {
		if err := uuid.Validate(strings.TrimSpace(*r.SLADefinitionID)); err != nil {
			return apperrors.ValidationField("sla_definition_id", "sla_definition_id must be a valid UUID")
		}
	}
	return nil
}

// UpdateCaseStatusRequest carries a requested status transition.
type UpdateCaseStatusRequest struct {
	Status CaseStatus `json:"status"`
}

// Validate checks that the requested status is a known status.
func (r *UpdateCaseStatusRequest) Validate() error {
	if !r.Status.IsValid() {
		return apperrors.ValidationField("status", "status must be one of: open, in_progress, resolved, closed")
	}
	return nil
}

// AttachSLADefinitionRequest carries the SLA definition to bind to a case.
type AttachSLADefinitionRequest struct {
	SLADefinitionID string `json:"sla_definition_id"`
}

// Validate checks that the SLA definition reference is well formed.
func (r *AttachSLADefinitionRequest) Validate() error {
	if err := uuid.Validate(strings.TrimSpace(r.SLADefinitionID)); err != nil {
		return apperrors.ValidationField("sla_definition_id", "sla_definition_id must be a valid UUID")
	}
	return nil
}

// CaseListOptions holds filters and pagination for listing cases.
type CaseListOptions struct {
	Status *CaseStatus
	Limit  int
	Offset int
}
