package errors

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDBError_Nil(t *testing.T) {
	assert.NoError(t, MapDBError(nil))
}

func TestMapDBError_ContextErrors(t *testing.T) {
	timeout := MapDBError(context.DeadlineExceeded)
	assert.True(t, IsTimeout(timeout))

	canceled := MapDBError(context.Canceled)
	assert.True(t, IsCanceled(canceled))
}

func TestMapDBError_NoRows(t *testing.T) {
	err := MapDBError(pgx.ErrNoRows)
	assert.True(t, IsNotFound(err))
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestMapDBError_UniqueViolation(t *testing.T) {
	t.Run("field from detail", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:   pgerrcode.UniqueViolation,
			Detail: `Key (email)=(alice@example.com) already exists.`,
		}
		err := MapDBError(pgErr)
		assert.True(t, IsConflict(err))
		assert.Equal(t, "email", GetField(err))
	})

	t.Run("field from constraint name", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:           pgerrcode.UniqueViolation,
			ConstraintName: "customers_email_key",
		}
		err := MapDBError(pgErr)
		assert.True(t, IsConflict(err))
		assert.Equal(t, "email", GetField(err))
	})

	t.Run("multi column constraint is not inferred", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:           pgerrcode.UniqueViolation,
			ConstraintName: "sla_escalations_case_id_breach_kind_key",
		}
		err := MapDBError(pgErr)
		assert.True(t, IsConflict(err))
		assert.Empty(t, GetField(err))
	})
}

func TestMapDBError_ForeignKeyViolation(t *testing.T) {
	t.Run("parent still referenced", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:   pgerrcode.ForeignKeyViolation,
			Detail: `Key (id)=(abc) is still referenced from table "cases".`,
		}
		err := MapDBError(pgErr)
		assert.True(t, IsForeignKey(err))
		assert.Contains(t, err.Error(), "Repair Case")
	})

	t.Run("missing parent", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:   pgerrcode.ForeignKeyViolation,
			Detail: `Key (customer_id)=(abc) is not present in table "customers".`,
		}
		err := MapDBError(pgErr)
		assert.True(t, IsForeignKey(err))
		assert.Contains(t, err.Error(), "Customer")
	})

	t.Run("constraint name fallback", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:           pgerrcode.ForeignKeyViolation,
			ConstraintName: "cases_sla_definition_id_fkey",
		}
		err := MapDBError(pgErr)
		assert.True(t, IsForeignKey(err))
		assert.Contains(t, err.Error(), "SLA Definition")
	})
}

func TestMapDBError_CheckViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       pgerrcode.CheckViolation,
		ColumnName: "status",
	}
	err := MapDBError(pgErr)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "status", GetField(err))
}

func TestMapDBError_NotNullViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       pgerrcode.NotNullViolation,
		ColumnName: "device_brand",
	}
	err := MapDBError(pgErr)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "device_brand", GetField(err))
}

func TestMapDBError_UnhandledPgError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.SerializationFailure}
	err := MapDBError(pgErr)
	assert.True(t, IsInternal(err))
}

func TestMapDBError_UnrecognizedError(t *testing.T) {
	plain := errors.New("dial tcp: connection refused")
	assert.Equal(t, plain, MapDBError(plain))
}

func TestMapTableToDomain_Fallback(t *testing.T) {
	assert.Equal(t, "Spare Parts", mapTableToDomain("spare_parts"))
}
