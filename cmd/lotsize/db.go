package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/andresuchdata/lotplan/internal/repository/postgres"
	"github.com/andresuchdata/lotplan/pkg/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/urfave/cli/v2"
)

type contextKey string

const dbKey contextKey = "db"

// initDB opens a pgx connection when --db-url is set and stores it in the context.
func initDB(c *cli.Context) error {
	dbURL := c.String("db-url")
	if dbURL == "" {
		return nil
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Test the connection
	if err := db.PingContext(c.Context); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	c.Context = context.WithValue(c.Context, dbKey, postgres.Wrap(sqlx.NewDb(db, "pgx")))
	return nil
}

func closeDB(c *cli.Context) error {
	if db := dbFromContext(c); db != nil {
		return db.Close()
	}
	return nil
}

func dbFromContext(c *cli.Context) *postgres.DB {
	db, _ := c.Context.Value(dbKey).(*postgres.DB)
	return db
}

func runsCommand() *cli.Command {
	return &cli.Command{
		Name:  "runs",
		Usage: "List recently stored plan runs",
		Flags: []cli.Flag{
			newDBURLFlag(true),
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of runs to show",
				Value: 20,
			},
		},
		Before: initDB,
		After:  closeDB,
		Action: func(c *cli.Context) error {
			runs, err := postgres.NewPlanRepository(dbFromContext(c)).ListPlanRuns(c.Context, c.Int("limit"))
			if err != nil {
				return err
			}
			return writeRunTable(c.App.Writer, runs)
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply SQL migrations in lexical order",
		Flags: []cli.Flag{
			newDBURLFlag(true),
			&cli.StringFlag{
				Name:    "dir",
				Usage:   "Directory containing *.sql migrations",
				Value:   "./scripts/migrations",
				EnvVars: []string{"MIGRATIONS_DIR"},
			},
		},
		Before: initDB,
		After:  closeDB,
		Action: runMigrate,
	}
}

func migrationFiles(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no migrations found in %s", dir)
	}
	sort.Strings(files)
	return files, nil
}

func runMigrate(c *cli.Context) error {
	files, err := migrationFiles(c.String("dir"))
	if err != nil {
		return err
	}

	db := dbFromContext(c)
	for _, file := range files {
		body, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		err = db.WithTx(c.Context, func(tx *sql.Tx) error {
			_, err := tx.ExecContext(c.Context, string(body))
			return err
		})
		if err != nil {
			return fmt.Errorf("migration %s failed: %w", filepath.Base(file), err)
		}
		logger.Log.Debug().Str("file", filepath.Base(file)).Msg("migration applied")
		fmt.Fprintf(c.App.Writer, "applied %s\n", filepath.Base(file))
	}
	return nil
}
