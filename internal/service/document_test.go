package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quyennt2020/device-repair-management-system-sub005/internal/domain/model"
	apperrors "github.com/quyennt2020/device-repair-management-system-sub005/internal/errors"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/mocks"
)

func newDocumentService(t *testing.T) (*mocks.MockDocumentRepository, *mocks.MockCaseRepository, *DocumentService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	documentRepo := mocks.NewMockDocumentRepository(ctrl)
	caseRepo := mocks.NewMockCaseRepository(ctrl)

	service, err := NewDocumentService(DocumentServiceOptions{
		Repo:  documentRepo,
		Cases: caseRepo,
	})
	require.NoError(t, err)

	return documentRepo, caseRepo, service
}

func TestDocumentService_Create(t *testing.T) {
	t.Parallel()
	documentRepo, _, service := newDocumentService(t)

	ctx := context.Background()
	req := &model.CreateDocumentRequest{
		CaseID:      testCaseID,
		Title:       "diagnostic report",
		ContentType: "application/pdf",
		Metadata:    json.RawMessage(`{"pages": 3}`),
	}
	expected := &model.Document{ID: "doc-1", CaseID: testCaseID, Title: "diagnostic report"}

	documentRepo.EXPECT().Create(ctx, req).Return(expected, nil).Times(1)

	result, err := service.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestDocumentService_QueryMetadata(t *testing.T) {
	t.Parallel()
	documentRepo, caseRepo, service := newDocumentService(t)

	ctx := context.Background()
	documents := []*model.Document{
		{ID: "doc-1", Title: "intake form", Metadata: json.RawMessage(`{"technician": "alice", "warranty": true}`)},
		{ID: "doc-2", Title: "repair log", Metadata: json.RawMessage(`{"technician": "bob"}`)},
		{ID: "doc-3", Title: "invoice", Metadata: json.RawMessage(`{"total": 120.5}`)},
	}

	caseRepo.EXPECT().GetByID(ctx, testCaseID).Return(&model.Case{ID: testCaseID}, nil).Times(1)
	documentRepo.EXPECT().ListByCase(ctx, testCaseID, maxQueryDocuments, 0).Return(documents, nil).Times(1)

	matches, err := service.QueryMetadata(ctx, testCaseID, &model.DocumentQueryRequest{Expression: "technician"})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "doc-1", matches[0].DocumentID)
	assert.Equal(t, "alice", matches[0].Value)
	assert.Equal(t, "doc-2", matches[1].DocumentID)
	assert.Equal(t, "bob", matches[1].Value)
}

func TestDocumentService_QueryMetadata_FalseIsMiss(t *testing.T) {
	t.Parallel()
	documentRepo, caseRepo, service := newDocumentService(t)

	ctx := context.Background()
	documents := []*model.Document{
		{ID: "doc-1", Metadata: json.RawMessage(`{"warranty": false}`)},
		{ID: "doc-2", Metadata: json.RawMessage(`{"warranty": true}`)},
	}

	caseRepo.EXPECT().GetByID(ctx, testCaseID).Return(&model.Case{ID: testCaseID}, nil).Times(1)
	documentRepo.EXPECT().ListByCase(ctx, testCaseID, maxQueryDocuments, 0).Return(documents, nil).Times(1)

	matches, err := service.QueryMetadata(ctx, testCaseID, &model.DocumentQueryRequest{Expression: "warranty"})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "doc-2", matches[0].DocumentID)
}

func TestDocumentService_QueryMetadata_InvalidExpression(t *testing.T) {
	t.Parallel()
	_, _, service := newDocumentService(t)

	_, err := service.QueryMetadata(
		context.Background(),
		testCaseID,
		&model.DocumentQueryRequest{Expression: "not a ][ valid expression"},
	)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestDocumentService_QueryMetadata_EmptyExpression(t *testing.T) {
	t.Parallel()
	_, _, service := newDocumentService(t)

	_, err := service.QueryMetadata(
		context.Background(),
		testCaseID,
		&model.DocumentQueryRequest{Expression: "  "},
	)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestDocumentService_QueryMetadata_CaseNotFound(t *testing.T) {
	t.Parallel()
	_, caseRepo, service := newDocumentService(t)

	ctx := context.Background()
	caseRepo.EXPECT().GetByID(ctx, testCaseID).Return(nil, apperrors.NotFound("Repair Case")).Times(1)

	_, err := service.QueryMetadata(ctx, testCaseID, &model.DocumentQueryRequest{Expression: "technician"})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
