package main

import (
	"fmt"
	"os"

	"github.com/andresuchdata/lotplan/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func newDBURLFlag(required bool) *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: required,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "lotsize",
		Usage: "Wagner-Whitin lot sizing calculator",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "warn",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "Log format (console or json)",
				Value:   "console",
				EnvVars: []string{"LOG_FORMAT"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Configure(c.String("log-level"), c.String("log-format"))
			return nil
		},
		Commands: []*cli.Command{
			solveCommand(),
			batchCommand(),
			runsCommand(),
			migrateCommand(),
			flushCacheCommand(),
			archiveCommand(),
		},
	}
}

func main() {
	_ = godotenv.Load(".env")

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
