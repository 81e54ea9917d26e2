// Command drms-admin provides operational database commands for the device
// repair management service: applying, rolling back and inspecting schema
// migrations, and resetting a development database.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/quyennt2020/device-repair-management-system-sub005/config"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/bootstrap"
	"github.com/quyennt2020/device-repair-management-system-sub005/internal/migrate"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
}

const defaultMigrationTimeout = 5 * time.Minute

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"migrate-up": {
			name:        "migrate-up",
			description: "Apply all pending database migrations",
			run:         runMigrateUp,
		},
		"migrate-down": {
			name:        "migrate-down",
			description: "Roll back applied migrations (newest first)",
			run:         runMigrateDown,
		},
		"migrate-status": {
			name:        "migrate-status",
			description: "Show the applied/pending state of every migration",
			run:         runMigrateStatus,
		},
		"db-reset": {
			name:        "db-reset",
			description: "Drop the public schema and re-run all migrations",
			run:         runDBReset,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: drms-admin <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	for _, c := range commands() {
		if err := writef(os.Stdout, "  %-16s %s\n", c.name, c.description); err != nil {
			return err
		}
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

// withDatabase connects to Postgres, runs fn under a signal-aware timeout
// context, and closes the connection afterwards.
func withDatabase(
	cmdCtx *commandContext,
	timeout time.Duration,
	fn func(ctx context.Context, db *sql.DB) error,
) error {
	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	db, err := bootstrap.ConnectDB(bootstrap.DatabaseConfig{
		DBConfig: cmdCtx.Config.Postgres,
		Logger:   cmdCtx.Logger,
	})
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			cmdCtx.Logger.Warn("db close failed", "error", closeErr)
		}
	}()

	return fn(ctx, db)
}

func runMigrateUp(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("migrate-up", flag.ContinueOnError)
	timeout := fs.Duration("timeout", defaultMigrationTimeout, "overall timeout for the migration run")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return withDatabase(cmdCtx, *timeout, func(ctx context.Context, db *sql.DB) error {
		cmdCtx.Logger.Info("running database migrations")
		if err := migrate.Run(ctx, db); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		cmdCtx.Logger.Info("migrations completed successfully")
		return nil
	})
}

func runMigrateDown(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("migrate-down", flag.ContinueOnError)
	steps := fs.Int("steps", 1, "number of migrations to roll back (0 rolls back everything)")
	timeout := fs.Duration("timeout", defaultMigrationTimeout, "overall timeout for the rollback")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	action := fmt.Sprintf("roll back %d migration(s)", *steps)
	if *steps <= 0 {
		action = "roll back ALL migrations"
	}
	if err := confirmAction(*yes, action, cmdCtx.Config.Postgres.Name); err != nil {
		return err
	}

	return withDatabase(cmdCtx, *timeout, func(ctx context.Context, db *sql.DB) error {
		cmdCtx.Logger.Info("rolling back migrations", "steps", *steps)
		if err := migrate.Rollback(ctx, db, *steps); err != nil {
			return fmt.Errorf("roll back migrations: %w", err)
		}
		cmdCtx.Logger.Info("rollback completed successfully")
		return nil
	})
}

func runMigrateStatus(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("migrate-status", flag.ContinueOnError)
	timeout := fs.Duration("timeout", time.Minute, "overall timeout for the status query")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return withDatabase(cmdCtx, *timeout, func(ctx context.Context, db *sql.DB) error {
		statuses, err := migrate.List(ctx, db)
		if err != nil {
			return fmt.Errorf("list migrations: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		if err := writef(w, "VERSION\tNAME\tSTATE\tAPPLIED AT\n"); err != nil {
			return err
		}
		for _, s := range statuses {
			state := "pending"
			appliedAt := "-"
			if s.Applied {
				state = "applied"
				if s.AppliedAt != nil {
					appliedAt = s.AppliedAt.UTC().Format(time.RFC3339)
				}
			}
			if err := writef(w, "%04d\t%s\t%s\t%s\n", s.Version, s.Name, state, appliedAt); err != nil {
				return err
			}
		}
		return w.Flush()
	})
}

func runDBReset(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("db-reset", flag.ContinueOnError)
	timeout := fs.Duration("timeout", defaultMigrationTimeout, "overall timeout for the reset")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := confirmAction(*yes, "drop and recreate the public schema", cmdCtx.Config.Postgres.Name); err != nil {
		return err
	}

	return withDatabase(cmdCtx, *timeout, func(ctx context.Context, db *sql.DB) error {
		cmdCtx.Logger.Info("dropping public schema", "database", cmdCtx.Config.Postgres.Name)
		if _, err := db.ExecContext(ctx, "DROP SCHEMA public CASCADE; CREATE SCHEMA public"); err != nil {
			return fmt.Errorf("drop schema: %w", err)
		}

		cmdCtx.Logger.Info("re-running database migrations")
		if err := migrate.Run(ctx, db); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}

		cmdCtx.Logger.Info("database reset completed successfully")
		return nil
	})
}

// confirmAction prompts for interactive confirmation unless -yes was given.
func confirmAction(yes bool, action, database string) error {
	if yes {
		return nil
	}

	if err := writef(os.Stdout, "About to %s on database %q. Type 'yes' to continue: ", action, database); err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("read confirmation: %w", err)
	}
	if strings.TrimSpace(line) != "yes" {
		return fmt.Errorf("aborted: %s not confirmed", action)
	}
	return nil
}
