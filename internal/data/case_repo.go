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

// CaseRepo provides database operations for repair cases.
type CaseRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewCaseRepo creates a new CaseRepo with real time provider.
func NewCaseRepo(db *sql.DB) *CaseRepo {
	return &CaseRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewCaseRepoWithTimeProvider creates a new CaseRepo with a custom time provider (useful for tests).
func NewCaseRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *CaseRepo {
	return &CaseRepo{DB: db, timeProvider: tp}
}

// SQL query constants for static queries (no dynamic WHERE).
const (
	caseColumns = `id, customer_id, device_brand, device_model, device_serial, status,
	       sla_definition_id, opened_at, first_response_at, resolved_at, closed_at,
	       created_at, updated_at`

	caseGetByIDQuery = `
		SELECT ` + caseColumns + `
		FROM cases
		WHERE id = $1`

	openCasesWithSLAQuery = `
		SELECT c.id AS case_id, c.opened_at, c.first_response_at, c.resolved_at,
		       d.name AS sla_name, d.response_minutes, d.resolution_minutes,
		       d.at_risk_ratio, d.escalation_policy
		FROM cases c
		JOIN sla_definitions d ON d.id = c.sla_definition_id
		WHERE c.status IN ('open', 'in_progress')
		ORDER BY c.opened_at`
)

// Create inserts a new case in status open.
func (r *CaseRepo) Create(ctx context.Context, req *model.CreateCaseRequest) (*model.Case, error) {
	if req == nil {
		return nil, errors.New("create case request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.Case
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO cases (
				customer_id, device_brand, device_model, device_serial, status,
				sla_definition_id, opened_at, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $7, $7)
			RETURNING `+caseColumns,
			strings.TrimSpace(req.CustomerID),
			strings.TrimSpace(req.DeviceBrand),
			strings.TrimSpace(req.DeviceModel),
			req.DeviceSerial,
			model.CaseStatusOpen,
			req.SLADefinitionID,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Case])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a case by ID.
func (r *CaseRepo) GetByID(ctx context.Context, id string) (*model.Case, error) {
	var out model.Case
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, caseGetByIDQuery, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Case])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List retrieves cases with an optional status filter and pagination, newest first.
func (r *CaseRepo) List(ctx context.Context, opts model.CaseListOptions) ([]*model.Case, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	query := `SELECT ` + caseColumns + ` FROM cases`
	args := []any{limit, offset}
	if opts.Status != nil {
		query += ` WHERE status = $3`
		args = append(args, *opts.Status)
	}
	query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	var rowsOut []model.Case
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Case])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.Case, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// UpdateStatus moves a case to a new status, stamping the lifecycle timestamp
// that corresponds to the transition. The transition itself must already have
// been validated by the service layer.
func (r *CaseRepo) UpdateStatus(ctx context.Context, id string, status model.CaseStatus) (*model.Case, error) {
	now := r.timeProvider.Now().UTC()

	set := "status = $1, updated_at = $2"
	switch status {
	case model.CaseStatusInProgress:
		set += ", first_response_at = COALESCE(first_response_at, $2)"
	case model.CaseStatusResolved:
		set += ", resolved_at = $2"
	case model.CaseStatusClosed:
		set += ", closed_at = $2"
	case model.CaseStatusOpen:
		// no lifecycle timestamp
	}

	var out model.Case
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`UPDATE cases SET `+set+` WHERE id = $3 RETURNING `+caseColumns,
			status, now, id,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Case])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// AttachSLADefinition binds an SLA definition to a case.
func (r *CaseRepo) AttachSLADefinition(ctx context.Context, id, slaDefinitionID string) (*model.Case, error) {
	now := r.timeProvider.Now().UTC()

	var out model.Case
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE cases
			SET sla_definition_id = $1, updated_at = $2
			WHERE id = $3
			RETURNING `+caseColumns,
			slaDefinitionID, now, id,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Case])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// ListOpenWithSLA returns monitored cases joined with their SLA definitions.
func (r *CaseRepo) ListOpenWithSLA(ctx context.Context) ([]*model.CaseWithSLA, error) {
	var rowsOut []model.CaseWithSLA
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, openCasesWithSLAQuery)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.CaseWithSLA])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.CaseWithSLA, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}
