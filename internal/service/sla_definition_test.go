package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quyennt2020/device-repair-management-system-sub005/internal/domain/model"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/mocks"
)

const testSLAID = "3c2b1a09-8d7e-4f6a-b5c4-d3e2f1a0b9c8"

func newSLADefinitionService(t *testing.T) (*mocks.MockSLADefinitionRepository, *mocks.MockCacheRepository, *SLADefinitionService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockSLADefinitionRepository(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)

	service, err := NewSLADefinitionService(SLADefinitionServiceOptions{
		Repo:  repo,
		Cache: cache,
	})
	require.NoError(t, err)

	return repo, cache, service
}

func TestSLADefinitionService_Get_CacheHit(t *testing.T) {
	t.Parallel()
	_, cache, service := newSLADefinitionService(t)

	ctx := context.Background()
	definition := &model.SLADefinition{ID: testSLAID, Name: "gold", ResponseMinutes: 60, ResolutionMinutes: 240}
	raw, err := json.Marshal(definition)
	require.NoError(t, err)

	cache.EXPECT().Get(ctx, slaDefinitionCachePrefix+testSLAID).Return(raw, nil).Times(1)

	result, err := service.Get(ctx, testSLAID)
	require.NoError(t, err)
	assert.Equal(t, definition, result)
}

func TestSLADefinitionService_Get_CacheMissFallsThrough(t *testing.T) {
	t.Parallel()
	repo, cache, service := newSLADefinitionService(t)

	ctx := context.Background()
	definition := &model.SLADefinition{ID: testSLAID, Name: "gold", ResponseMinutes: 60, ResolutionMinutes: 240}

	cache.EXPECT().Get(ctx, slaDefinitionCachePrefix+testSLAID).Return(nil, nil).Times(1)
	repo.EXPECT().GetByID(ctx, testSLAID).Return(definition, nil).Times(1)
	cache.EXPECT().Set(ctx, slaDefinitionCachePrefix+testSLAID, gomock.Any(), gomock.Any()).Return(nil).Times(1)

	result, err := service.Get(ctx, testSLAID)
	require.NoError(t, err)
	assert.Equal(t, definition, result)
}

func TestSLADefinitionService_Get_CacheErrorFallsThrough(t *testing.T) {
	t.Parallel()
	repo, cache, service := newSLADefinitionService(t)

	ctx := context.Background()
	definition := &model.SLADefinition{ID: testSLAID, Name: "gold"}

	cache.EXPECT().Get(ctx, gomock.Any()).Return(nil, errors.New("redis down")).Times(1)
	repo.EXPECT().GetByID(ctx, testSLAID).Return(definition, nil).Times(1)
	cache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	result, err := service.Get(ctx, testSLAID)
	require.NoError(t, err)
	assert.Equal(t, definition, result)
}

func TestSLADefinitionService_CreatePopulatesCache(t *testing.T) {
	t.Parallel()
	repo, cache, service := newSLADefinitionService(t)

	ctx := context.Background()
	req := &model.CreateSLADefinitionRequest{Name: "gold", ResponseMinutes: 60, ResolutionMinutes: 240}
	definition := &model.SLADefinition{ID: testSLAID, Name: "gold", ResponseMinutes: 60, ResolutionMinutes: 240}

	repo.EXPECT().Create(ctx, req).Return(definition, nil).Times(1)
	cache.EXPECT().Set(ctx, slaDefinitionCachePrefix+testSLAID, gomock.Any(), gomock.Any()).Return(nil).Times(1)

	result, err := service.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, definition, result)
}

func TestSLADefinitionService_WorksWithoutCache(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockSLADefinitionRepository(ctrl)
	service, err := NewSLADefinitionService(SLADefinitionServiceOptions{Repo: repo})
	require.NoError(t, err)

	ctx := context.Background()
	definition := &model.SLADefinition{ID: testSLAID, Name: "silver"}
	repo.EXPECT().GetByID(ctx, testSLAID).Return(definition, nil).Times(1)

	result, err := service.Get(ctx, testSLAID)
	require.NoError(t, err)
	assert.Equal(t, definition, result)
}
