package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/andresuchdata/lotplan/internal/config"
	"github.com/andresuchdata/lotplan/internal/domain"
	"github.com/andresuchdata/lotplan/internal/report"
	"github.com/andresuchdata/lotplan/internal/repository"
	"github.com/andresuchdata/lotplan/internal/repository/postgres"
	"github.com/andresuchdata/lotplan/internal/service"
	"github.com/urfave/cli/v2"
)

func batchCommand() *cli.Command {
	return &cli.Command{
		Name:      "batch",
		Usage:     "Solve every instance in a JSON file concurrently",
		ArgsUsage: "<file.json>",
		Flags: []cli.Flag{
			newDBURLFlag(false),
			&cli.IntFlag{
				Name:    "workers",
				Usage:   "Number of instances solved at once (defaults to SOLVER_BATCH_WORKERS)",
				EnvVars: []string{"LOTSIZE_WORKERS"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (text or json)",
				Value:   string(report.FormatText),
			},
		},
		Before: initDB,
		After:  closeDB,
		Action: runBatch,
	}
}

// readBatchFile accepts either a bare array of plans or {"plans": [...]}.
func readBatchFile(path string) ([]domain.PlanRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var plans []domain.PlanRequest
		if err := json.Unmarshal(data, &plans); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		return plans, nil
	}

	var wrapper struct {
		Plans []domain.PlanRequest `json:"plans"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return wrapper.Plans, nil
}

func runBatch(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("batch expects exactly one JSON file argument")
	}

	format, err := report.ParseFormat(c.String("format"))
	if err != nil {
		return err
	}

	reqs, err := readBatchFile(c.Args().First())
	if err != nil {
		return err
	}

	cfg := config.Load()
	workers := c.Int("workers")
	if workers <= 0 {
		workers = cfg.Solver.BatchWorkers
	}

	var repo repository.PlanRepository
	if db := dbFromContext(c); db != nil {
		repo = postgres.NewPlanRepository(db)
	} else {
		repo = repository.NewMemoryPlanRepository()
	}

	svc := service.NewPlanService(repo, nil, service.PlanServiceOptions{
		MaxPeriods:   cfg.Solver.MaxPeriods,
		BatchWorkers: workers,
	})

	runs, err := svc.SolveBatch(c.Context, reqs)
	if err != nil {
		return err
	}

	if format == report.FormatJSON {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}
	return writeRunTable(c.App.Writer, runs)
}

func writeRunTable(w io.Writer, runs []*domain.PlanRun) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPERIODS\tMIN TOTAL COST\tORDER SCHEDULE")
	for _, run := range runs {
		name := run.Name
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.2f\t%s\n",
			run.ID, name, run.Periods, run.MinimumTotalCost, report.ScheduleString(run.OrderSchedule))
	}
	return tw.Flush()
}
