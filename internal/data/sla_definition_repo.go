package data

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/quyennt2020/device-repair-management-system-sub005/internal/data/pgxutil"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/domain/model"
	apperrors "github.com/quyennt2020/device-repair-management-system-sub005/internal/errors"
)

// SLADefinitionRepo provides database operations for SLA definitions.
type SLADefinitionRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewSLADefinitionRepo creates a new SLADefinitionRepo with real time provider.
func NewSLADefinitionRepo(db *sql.DB) *SLADefinitionRepo {
	return &SLADefinitionRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

const slaDefinitionColumns = `id, name, response_minutes, resolution_minutes, at_risk_ratio,
	       escalation_policy, created_at, updated_at`

// Create inserts a new SLA definition.
func (r *SLADefinitionRepo) Create(
	ctx context.Context,
	req *model.CreateSLADefinitionRequest,
) (*model.SLADefinition, error) {
	if req == nil {
		return nil, errors.New("create sla definition request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ratio := req.AtRiskRatio
	if ratio == 0 {
		ratio = model.DefaultAtRiskRatio
	}

	now := r.timeProvider.Now().UTC()
	var out model.SLADefinition
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO sla_definitions (
				name, response_minutes, resolution_minutes, at_risk_ratio,
				escalation_policy, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $6)
			RETURNING `+slaDefinitionColumns,
			strings.TrimSpace(req.Name),
			req.ResponseMinutes,
			req.ResolutionMinutes,
			ratio,
			req.EscalationPolicy,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.SLADefinition])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves an SLA definition by ID.
func (r *SLADefinitionRepo) GetByID(ctx context.Context, id string) (*model.SLADefinition, error) {
	var out model.SLADefinition
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+slaDefinitionColumns+` FROM sla_definitions WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.SLADefinition])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List retrieves SLA definitions with pagination, newest first.
func (r *SLADefinitionRepo) List(ctx context.Context, limit, offset int) ([]*model.SLADefinition, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var rowsOut []model.SLADefinition
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+slaDefinitionColumns+`
			FROM sla_definitions
			ORDER BY created_at DESC
			LIMIT $1 OFFSET $2`, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.SLADefinition])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.SLADefinition, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}
