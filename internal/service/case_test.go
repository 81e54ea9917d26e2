package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quyennt2020/device-repair-management-system-sub005/internal/domain/model"
	apperrors "github.com/quyennt2020/device-repair-management-system-sub005/internal/errors"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/mocks"
)

const testCaseID = "5f8a2c1e-14a5-4d3b-9f67-8a1b2c3d4e5f"

func newCaseService(t *testing.T) (*mocks.MockCaseRepository, *mocks.MockEscalationRepository, *CaseService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	caseRepo := mocks.NewMockCaseRepository(ctrl)
	escalationRepo := mocks.NewMockEscalationRepository(ctrl)

	service, err := NewCaseService(CaseServiceOptions{
		Repo:        caseRepo,
		Escalations: escalationRepo,
	})
	require.NoError(t, err)

	return caseRepo, escalationRepo, service
}

func TestCaseService_Create(t *testing.T) {
	t.Parallel()
	caseRepo, _, service := newCaseService(t)

	ctx := context.Background()
	req := &model.CreateCaseRequest{
		CustomerID:  "c7f3a9d2-0b1e-4f5a-8c6d-7e8f9a0b1c2d",
		DeviceBrand: "Lenovo",
		DeviceModel: "ThinkPad X1",
	}
	expected := &model.Case{ID: testCaseID, Status: model.CaseStatusOpen}

	caseRepo.EXPECT().Create(ctx, req).Return(expected, nil).Times(1)

	result, err := service.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestCaseService_UpdateStatus_ValidTransition(t *testing.T) {
	t.Parallel()
	caseRepo, _, service := newCaseService(t)

	ctx := context.Background()
	current := &model.Case{ID: testCaseID, Status: model.CaseStatusOpen}
	updated := &model.Case{ID: testCaseID, Status: model.CaseStatusInProgress}

	caseRepo.EXPECT().GetByID(ctx, testCaseID).Return(current, nil).Times(1)
	caseRepo.EXPECT().UpdateStatus(ctx, testCaseID, model.CaseStatusInProgress).Return(updated, nil).Times(1)

	result, err := service.UpdateStatus(ctx, testCaseID, model.CaseStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, model.CaseStatusInProgress, result.Status)
}

func TestCaseService_UpdateStatus_InvalidTransition(t *testing.T) {
	t.Parallel()
	caseRepo, _, service := newCaseService(t)

	ctx := context.Background()
	current := &model.Case{ID: testCaseID, Status: model.CaseStatusOpen}

	caseRepo.EXPECT().GetByID(ctx, testCaseID).Return(current, nil).Times(1)

	_, err := service.UpdateStatus(ctx, testCaseID, model.CaseStatusClosed)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestCaseService_UpdateStatus_UnknownStatus(t *testing.T) {
	t.Parallel()
	_, _, service := newCaseService(t)

	_, err := service.UpdateStatus(context.Background(), testCaseID, model.CaseStatus("archived"))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCaseService_UpdateStatus_CaseNotFound(t *testing.T) {
	t.Parallel()
	caseRepo, _, service := newCaseService(t)

	ctx := context.Background()
	caseRepo.EXPECT().GetByID(ctx, testCaseID).Return(nil, apperrors.NotFound("Repair Case")).Times(1)

	_, err := service.UpdateStatus(ctx, testCaseID, model.CaseStatusInProgress)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCaseService_AttachSLADefinition(t *testing.T) {
	t.Parallel()
	caseRepo, _, service := newCaseService(t)

	ctx := context.Background()
	slaID := "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
	expected := &model.Case{ID: testCaseID, SLADefinitionID: &slaID}

	caseRepo.EXPECT().AttachSLADefinition(ctx, testCaseID, slaID).Return(expected, nil).Times(1)

	result, err := service.AttachSLADefinition(ctx, testCaseID, slaID)
	require.NoError(t, err)
	require.NotNil(t, result.SLADefinitionID)
	assert.Equal(t, slaID, *result.SLADefinitionID)
}

func TestCaseService_Escalations(t *testing.T) {
	t.Parallel()
	_, escalationRepo, service := newCaseService(t)

	ctx := context.Background()
	expected := []*model.SLAEscalation{
		{ID: "esc-1", CaseID: testCaseID, BreachKind: model.BreachKindResponse},
	}

	escalationRepo.EXPECT().ListByCase(ctx, testCaseID).Return(expected, nil).Times(1)

	result, err := service.Escalations(ctx, testCaseID)
	require.NoError(t, err)
	assert.Equal(t, expected, result)
}
