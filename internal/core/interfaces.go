package core

import (
	"context"
	"time"

	"github.com/quyennt2020/device-repair-management-system-sub005/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// CustomerRepository defines the interface for customer data operations.
type CustomerRepository interface {
	Create(ctx context.Context, req *model.CreateCustomerRequest) (*model.Customer, error)
	GetByID(ctx context.Context, id string) (*model.Customer, error)
	List(ctx context.Context, limit, offset int) ([]*model.Customer, error)
}

// CaseRepository defines the interface for repair case data operations.
type CaseRepository interface {
	Create(ctx context.Context, req *model.CreateCaseRequest) (*model.Case, error)
	GetByID(ctx context.Context, id string) (*model.Case, error)
	List(ctx context.Context, opts model.CaseListOptions) ([]*model.Case, error)
	UpdateStatus(ctx context.Context, id string, status model.CaseStatus) (*model.Case, error)
	AttachSLADefinition(ctx context.Context, id, slaDefinitionID string) (*model.Case, error)
	// ListOpenWithSLA returns open and in-progress cases that have an SLA definition
	// attached, joined with that definition.
	ListOpenWithSLA(ctx context.Context) ([]*model.CaseWithSLA, error)
}

// DocumentRepository defines the interface for case document data operations.
type DocumentRepository interface {
	Create(ctx context.Context, req *model.CreateDocumentRequest) (*model.Document, error)
	GetByID(ctx context.Context, id string) (*model.Document, error)
	ListByCase(ctx context.Context, caseID string, limit, offset int) ([]*model.Document, error)
}

// SLADefinitionRepository defines the interface for SLA definition data operations.
type SLADefinitionRepository interface {
	Create(ctx context.Context, req *model.CreateSLADefinitionRequest) (*model.SLADefinition, error)
	GetByID(ctx context.Context, id string) (*model.SLADefinition, error)
	List(ctx context.Context, limit, offset int) ([]*model.SLADefinition, error)
}

// EscalationRepository records SLA escalations.
type EscalationRepository interface {
	// RecordEscalation inserts an escalation for (caseID, kind). It returns true
	// when a new row was created and false when the escalation already existed.
	RecordEscalation(ctx context.Context, caseID string, kind model.BreachKind) (bool, error)
	ListByCase(ctx context.Context, caseID string) ([]*model.SLAEscalation, error)
}

// CacheRepository defines the interface for cache operations (Redis-backed).
type CacheRepository interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) (bool, error)
}

// SLAEvaluator evaluates all monitored cases against their SLA definitions.
// Implementations must be safe for concurrent use: the monitor may run a
// timer-driven cycle while a manual run is in flight.
type SLAEvaluator interface {
	Evaluate(ctx context.Context) ([]model.CaseSLAResult, error)
}
