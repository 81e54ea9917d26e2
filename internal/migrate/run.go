// Package migrate applies and rolls back versioned SQL migrations embedded in
// this package. Migrations ship as NNNN_name.up.sql / NNNN_name.down.sql pairs
// and versions must be strictly ascending with no gaps, so the applied prefix
// of the sequence fully describes the schema state.
package migrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/quyennt2020/device-repair-management-system-sub005/internal/data/pgxutil"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var migrationFileRe = regexp.MustCompile(`^(\d{4})_([a-z0-9_]+)\.(up|down)\.sql$`)

// Migration is a single versioned schema change with its up and down scripts.
type Migration struct {
	Version  int
	Name     string
	UpFile   string
	DownFile string
}

// Status describes a migration and whether it has been applied.
type Status struct {
	Version   int
	Name      string
	Applied   bool
	AppliedAt *time.Time
}

// Run applies all pending migrations in ascending version order. Each
// migration runs in its own transaction together with its bookkeeping row, so
// a failure leaves the schema at the last fully applied version. Safe to call
// multiple times.
func Run(ctx context.Context, db *sql.DB) error {
	migrations, err := loadMigrations()
	if err != nil {
		return err
	}
	if err := ensureVersionTable(ctx, db); err != nil {
		return err
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return err
	}

	logger := slog.Default().With("component", "migrations")
	for _, m := range migrations {
		if _, ok := applied[m.Version]; ok {
			continue
		}
		logger.InfoContext(ctx, "applying migration", "version", m.Version, "name", m.Name)
		if applyErr := applyMigration(ctx, db, m); applyErr != nil {
			return applyErr
		}
	}
	return nil
}

// Rollback reverts up to steps applied migrations, newest first, running each
// down script in its own transaction. steps <= 0 reverts everything.
func Rollback(ctx context.Context, db *sql.DB, steps int) error {
	migrations, err := loadMigrations()
	if err != nil {
		return err
	}
	if err := ensureVersionTable(ctx, db); err != nil {
		return err
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return err
	}

	byVersion := make(map[int]Migration, len(migrations))
	for _, m := range migrations {
		byVersion[m.Version] = m
	}

	versions := make([]int, 0, len(applied))
	for v := range applied {
		versions = append(versions, v)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(versions)))

	if steps <= 0 || steps > len(versions) {
		steps = len(versions)
	}

	logger := slog.Default().With("component", "migrations")
	for _, v := range versions[:steps] {
		m, ok := byVersion[v]
		if !ok {
			return fmt.Errorf("applied migration %04d has no down script in this build", v)
		}
		logger.InfoContext(ctx, "rolling back migration", "version", m.Version, "name", m.Name)
		if rbErr := rollbackMigration(ctx, db, m); rbErr != nil {
			return rbErr
		}
	}
	return nil
}

// List reports every known migration and whether it has been applied.
func List(ctx context.Context, db *sql.DB) ([]Status, error) {
	migrations, err := loadMigrations()
	if err != nil {
		return nil, err
	}
	if err := ensureVersionTable(ctx, db); err != nil {
		return nil, err
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return nil, err
	}

	statuses := make([]Status, 0, len(migrations))
	for _, m := range migrations {
		st := Status{Version: m.Version, Name: m.Name}
		if at, ok := applied[m.Version]; ok {
			st.Applied = true
			st.AppliedAt = &at
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}

// loadMigrations reads the embedded migration scripts, pairs up/down files by
// version and validates the version sequence.
func loadMigrations() ([]Migration, error) {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	return planMigrations(names)
}

// planMigrations builds the ordered migration list from file names, enforcing
// complete up/down pairs, consistent names within a pair, and a strictly
// ascending gapless version sequence starting at 1.
func planMigrations(files []string) ([]Migration, error) {
	byVersion := make(map[int]*Migration)
	for _, f := range files {
		parts := migrationFileRe.FindStringSubmatch(f)
		if parts == nil {
			return nil, fmt.Errorf("migration file %q does not match NNNN_name.{up,down}.sql", f)
		}
		version, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("migration file %q: %w", f, err)
		}
		name, direction := parts[2], parts[3]

		m, ok := byVersion[version]
		if !ok {
			m = &Migration{Version: version, Name: name}
			byVersion[version] = m
		}
		if m.Name != name {
			return nil, fmt.Errorf("migration %04d has conflicting names %q and %q", version, m.Name, name)
		}
		switch direction {
		case "up":
			if m.UpFile != "" {
				return nil, fmt.Errorf("migration %04d has duplicate up script", version)
			}
			m.UpFile = f
		case "down":
			if m.DownFile != "" {
				return nil, fmt.Errorf("migration %04d has duplicate down script", version)
			}
			m.DownFile = f
		}
	}

	versions := make([]int, 0, len(byVersion))
	for v := range byVersion {
		versions = append(versions, v)
	}
	sort.Ints(versions)

	migrations := make([]Migration, 0, len(versions))
	for i, v := range versions {
		if want := i + 1; v != want {
			return nil, fmt.Errorf("migration versions must be gapless: expected %04d, found %04d", want, v)
		}
		m := byVersion[v]
		if m.UpFile == "" {
			return nil, fmt.Errorf("migration %04d (%s) is missing its up script", v, m.Name)
		}
		if m.DownFile == "" {
			return nil, fmt.Errorf("migration %04d (%s) is missing its down script", v, m.Name)
		}
		migrations = append(migrations, *m)
	}
	return migrations, nil
}

func ensureVersionTable(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}
	return nil
}

func appliedVersions(ctx context.Context, db *sql.DB) (map[int]time.Time, error) {
	rows, err := db.QueryContext(ctx, `SELECT version, applied_at FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("query schema_migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]time.Time)
	for rows.Next() {
		var version int
		var at time.Time
		if err := rows.Scan(&version, &at); err != nil {
			return nil, fmt.Errorf("scan schema_migrations: %w", err)
		}
		applied[version] = at
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schema_migrations: %w", err)
	}
	return applied, nil
}

func applyMigration(ctx context.Context, db *sql.DB, m Migration) error {
	sqlBytes, err := migrationsFS.ReadFile("migrations/" + m.UpFile)
	if err != nil {
		return fmt.Errorf("read migration %s: %w", m.UpFile, err)
	}

	return pgxutil.WithSQLTx(ctx, db, pgxutil.SQLTxConfig{
		Fn: func(tx *sql.Tx) error {
			if _, execErr := tx.ExecContext(ctx, string(sqlBytes)); execErr != nil {
				return fmt.Errorf("exec migration %s: %w", m.UpFile, execErr)
			}
			if _, insErr := tx.ExecContext(ctx,
				`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`,
				m.Version, m.Name,
			); insErr != nil {
				return fmt.Errorf("record migration %s: %w", m.UpFile, insErr)
			}
			return nil
		},
	})
}

func rollbackMigration(ctx context.Context, db *sql.DB, m Migration) error {
	sqlBytes, err := migrationsFS.ReadFile("migrations/" + m.DownFile)
	if err != nil {
		return fmt.Errorf("read migration %s: %w", m.DownFile, err)
	}

	return pgxutil.WithSQLTx(ctx, db, pgxutil.SQLTxConfig{
		Fn: func(tx *sql.Tx) error {
			if _, execErr := tx.ExecContext(ctx, string(sqlBytes)); execErr != nil {
				return fmt.Errorf("exec migration %s: %w", m.DownFile, execErr)
			}
			if _, delErr := tx.ExecContext(ctx,
				`DELETE FROM schema_migrations WHERE version = $1`, m.Version,
			); delErr != nil {
				return fmt.Errorf("unrecord migration %s: %w", m.DownFile, delErr)
			}
			return nil
		},
	})
}
