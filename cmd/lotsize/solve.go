package main

import (
	"errors"
	"fmt"

	"github.com/andresuchdata/lotplan/internal/input"
	"github.com/andresuchdata/lotplan/internal/lotsizing"
	"github.com/andresuchdata/lotplan/internal/report"
	"github.com/urfave/cli/v2"
)

const exampleUsage = `
Example usage:
lotsize solve -d 172,183,173,233,229,239,257,251,650,636,662,674,643 -s 1745 -c 2.52

Setup and holding costs may also be given per period as comma-separated lists.`

func solveCommand() *cli.Command {
	return &cli.Command{
		Name:  "solve",
		Usage: "Compute the minimum-cost order plan for one instance",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "demand",
				Aliases: []string{"d"},
				Usage:   "Comma-separated list of demands for each period (e.g. '10,20,30')",
			},
			&cli.StringFlag{
				Name:    "setup-cost",
				Aliases: []string{"s"},
				Usage:   "Setup cost, one value for every period or a comma-separated list",
			},
			&cli.StringFlag{
				Name:    "holding-cost",
				Aliases: []string{"c"},
				Usage:   "Per-unit holding cost, one value for every period or a comma-separated list",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (text, json, csv)",
				Value:   string(report.FormatText),
			},
			&cli.BoolFlag{
				Name:  "example",
				Usage: "Show usage example",
			},
		},
		Action: runSolve,
	}
}

func runSolve(c *cli.Context) error {
	if c.Bool("example") {
		fmt.Fprintln(c.App.Writer, exampleUsage)
		return nil
	}

	format, err := report.ParseFormat(c.String("format"))
	if err != nil {
		return err
	}

	in, err := instanceFromFlags(c.String("demand"), c.String("setup-cost"), c.String("holding-cost"))
	if err != nil {
		return err
	}

	res, err := in.Solve()
	if err != nil {
		return err
	}

	return report.Write(c.App.Writer, format, in, res)
}

// instanceFromFlags parses the three comma-separated flag values and
// broadcasts single costs over the horizon.
func instanceFromFlags(demandRaw, setupRaw, holdingRaw string) (lotsizing.Instance, error) {
	if demandRaw == "" || setupRaw == "" || holdingRaw == "" {
		return lotsizing.Instance{}, errors.New("--demand, --setup-cost and --holding-cost are required (see --example)")
	}

	demand, err := input.ParseList(demandRaw)
	if err != nil {
		return lotsizing.Instance{}, fmt.Errorf("demand: %w", err)
	}
	setup, err := input.ParseList(setupRaw)
	if err != nil {
		return lotsizing.Instance{}, fmt.Errorf("setup cost: %w", err)
	}
	holding, err := input.ParseList(holdingRaw)
	if err != nil {
		return lotsizing.Instance{}, fmt.Errorf("holding cost: %w", err)
	}

	return lotsizing.Instance{
		Demand:  demand,
		Setup:   input.Expand(setup, len(demand)),
		Holding: input.Expand(holding, len(demand)),
	}, nil
}
