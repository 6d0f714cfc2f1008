package main

import (
	"errors"
	"fmt"

	"github.com/andresuchdata/lotplan/internal/cache"
	"github.com/andresuchdata/lotplan/internal/config"
	"github.com/urfave/cli/v2"
)

func flushCacheCommand() *cli.Command {
	return &cli.Command{
		Name:  "flush-cache",
		Usage: "Remove every cached plan from Redis",
		Action: func(c *cli.Context) error {
			cfg := config.Load()
			if !cfg.Cache.Enabled {
				return errors.New("cache is disabled (set CACHE_ENABLED=true)")
			}

			planCache, err := cache.NewPlanCache(cfg.Cache)
			if err != nil {
				return err
			}
			if err := planCache.InvalidateAll(c.Context); err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, "plan cache flushed")
			return nil
		},
	}
}
