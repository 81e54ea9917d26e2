package data

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/quyennt2020/device-repair-management-system-sub005/internal/data/pgxutil"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/domain/model"
	apperrors "github.com/quyennt2020/device-repair-management-system-sub005/internal/errors"
)

// EscalationRepo records SLA escalations. The unique (case_id, breach_kind)
// constraint makes escalation idempotent: concurrent cycles that breach the
// same case produce exactly one escalation row.
type EscalationRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewEscalationRepo creates a new EscalationRepo with real time provider.
func NewEscalationRepo(db *sql.DB) *EscalationRepo {
	return &EscalationRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// RecordEscalation inserts an escalation for (caseID, kind). Returns true when
// a new row was created, false when the escalation already existed.
func (r *EscalationRepo) RecordEscalation(
	ctx context.Context,
	caseID string,
	kind model.BreachKind,
) (bool, error) {
	escalatedAt := r.timeProvider.Now().UTC()

	var inserted bool
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `
			INSERT INTO sla_escalations (case_id, breach_kind, escalated_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (case_id, breach_kind) DO NOTHING`,
			caseID, kind, escalatedAt,
		)
		if err != nil {
			return err
		}
		inserted = ct.RowsAffected() > 0
		return nil
	}); err != nil {
		return false, apperrors.MapDBError(err)
	}
	return inserted, nil
}

// ListByCase retrieves escalations recorded for a case, oldest first.
func (r *EscalationRepo) ListByCase(ctx context.Context, caseID string) ([]*model.SLAEscalation, error) {
	var rowsOut []model.SLAEscalation
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, case_id, breach_kind, escalated_at
			FROM sla_escalations
			WHERE case_id = $1
			ORDER BY escalated_at`, caseID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.SLAEscalation])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.SLAEscalation, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}
