// Package mocks provides mock implementations for testing the repair case system.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockCaseRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repairCase, nil)
package mocks

// Generate mock for CustomerRepository interface from internal/core package.
// This creates MockCustomerRepository with methods for all CustomerRepository interface methods:
// Create, GetByID, List
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=customer_repository_mock.go github.com/quyennt2020/device-repair-management-system-sub005/internal/core CustomerRepository

// Generate mock for CaseRepository interface from internal/core package.
// This creates MockCaseRepository with methods for all CaseRepository interface methods:
// Create, GetByID, List, UpdateStatus, AttachSLADefinition, ListOpenWithSLA
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=case_repository_mock.go github.com/quyennt2020/device-repair-management-system-sub005/internal/core CaseRepository

// Generate mock for DocumentRepository interface from internal/core package.
// This creates MockDocumentRepository with methods for all DocumentRepository interface methods:
// Create, GetByID, ListByCase
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=document_repository_mock.go github.com/quyennt2020/device-repair-management-system-sub005/internal/core DocumentRepository

// Generate mock for SLADefinitionRepository interface from internal/core package.
// This creates MockSLADefinitionRepository with methods for all SLADefinitionRepository interface methods:
// Create, GetByID, List
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=sla_definition_repository_mock.go github.com/quyennt2020/device-repair-management-system-sub005/internal/core SLADefinitionRepository

// Generate mock for EscalationRepository interface from internal/core package.
// This creates MockEscalationRepository with methods for all EscalationRepository interface methods:
// RecordEscalation, ListByCase
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=escalation_repository_mock.go github.com/quyennt2020/device-repair-management-system-sub005/internal/core EscalationRepository

// Generate mock for CacheRepository interface from internal/core package.
// This creates MockCacheRepository with methods for all CacheRepository interface methods:
// Set, Get, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=cache_repository_mock.go github.com/quyennt2020/device-repair-management-system-sub005/internal/core CacheRepository

// Generate mock for SLAEvaluator interface from internal/core package.
// This creates MockSLAEvaluator with methods for all SLAEvaluator interface methods:
// Evaluate
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=sla_evaluator_mock.go github.com/quyennt2020/device-repair-management-system-sub005/internal/core SLAEvaluator
