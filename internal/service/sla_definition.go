package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/quyennt2020/device-repair-management-system-sub005/internal/core"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/domain/model"
)

const slaDefinitionCachePrefix = "sla_definition:"

// SLADefinitionServiceOptions groups dependencies for SLADefinitionService.
type SLADefinitionServiceOptions struct {
	Repo     core.SLADefinitionRepository // Required: SLA definition repository
	Cache    core.CacheRepository         // Optional: Redis-backed read cache
	CacheTTL time.Duration                // Optional: cache TTL, defaults to 30m
	Logger   *slog.Logger                 // Optional: structured logger
}

// SLADefinitionService encapsulates business logic for SLA definitions.
// Definitions are immutable once created, which makes them safe to cache.
type SLADefinitionService struct {
	repo     core.SLADefinitionRepository
	cache    core.CacheRepository
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewSLADefinitionService constructs a new SLADefinitionService.
func NewSLADefinitionService(opts SLADefinitionServiceOptions) (*SLADefinitionService, error) {
	if opts.Repo == nil {
		return nil, errors.New("SLADefinitionRepository is required")
	}

	cacheTTL := opts.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Minute
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "sla_definition_service")
	}

	return &SLADefinitionService{
		repo:     opts.Repo,
		cache:    opts.Cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}, nil
}

// Create registers a new SLA definition.
func (s *SLADefinitionService) Create(
	ctx context.Context,
	req *model.CreateSLADefinitionRequest,
) (*model.SLADefinition, error) {
	definition, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "sla definition created",
			"sla_definition_id", definition.ID,
			"name", definition.Name,
			"response_minutes", definition.ResponseMinutes,
			"resolution_minutes", definition.ResolutionMinutes,
		)
	}

	s.cachePut(ctx, definition)
	return definition, nil
}

// Get retrieves an SLA definition by ID, consulting the cache first.
// Cache failures are logged and fall through to the database.
func (s *SLADefinitionService) Get(ctx context.Context, id string) (*model.SLADefinition, error) {
	if cached := s.cacheGet(ctx, id); cached != nil {
		return cached, nil
	}

	definition, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cachePut(ctx, definition)
	return definition, nil
}

// List retrieves SLA definitions with pagination.
func (s *SLADefinitionService) List(ctx context.Context, limit, offset int) ([]*model.SLADefinition, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *SLADefinitionService) cacheGet(ctx context.Context, id string) *model.SLADefinition {
	if s.cache == nil {
		return nil
	}

	raw, err := s.cache.Get(ctx, slaDefinitionCachePrefix+id)
	if err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "sla definition cache read failed", "error", err)
		}
		return nil
	}
	if raw == nil {
		return nil
	}

	var definition model.SLADefinition
	if err := json.Unmarshal(raw, &definition); err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "sla definition cache entry corrupt", "error", err)
		}
		return nil
	}
	return &definition
}

func (s *SLADefinitionService) cachePut(ctx context.Context, definition *model.SLADefinition) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(definition)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, slaDefinitionCachePrefix+definition.ID, raw, s.cacheTTL); err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "sla definition cache write failed", "error", err)
		}
	}
}
