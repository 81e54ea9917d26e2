package data

import (
	"context"
	"database/sql"

	"github.com/quyennt2020/device-repair-management-system-sub005/internal/migrate"
)

// RunMigrations executes database migrations to set up the required schema by delegating to the migrate package.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrate.Run(ctx, db)
}
