package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/andresuchdata/lotplan/internal/config"
	"github.com/andresuchdata/lotplan/internal/storage"
	"github.com/urfave/cli/v2"
)

func archiveCommand() *cli.Command {
	return &cli.Command{
		Name:  "archive",
		Usage: "Inspect CSV plan exports in object storage",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List archived plan exports",
				Action: func(c *cli.Context) error {
					cfg, client, err := archiveClient()
					if err != nil {
						return err
					}
					objects, err := client.ListObjects(c.Context, cfg.Prefix)
					if err != nil {
						return err
					}
					tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
					fmt.Fprintln(tw, "KEY\tSIZE")
					for _, obj := range objects {
						fmt.Fprintf(tw, "%s\t%d\n", obj.Key, obj.Size)
					}
					return tw.Flush()
				},
			},
			{
				Name:      "fetch",
				Usage:     "Download one archived export",
				ArgsUsage: "<key> <dest>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return errors.New("fetch expects <key> <dest>")
					}
					_, client, err := archiveClient()
					if err != nil {
						return err
					}
					key, dest := c.Args().Get(0), c.Args().Get(1)
					if err := client.DownloadObject(c.Context, key, dest); err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "saved %s to %s\n", key, dest)
					return nil
				},
			},
		},
	}
}

func archiveClient() (config.StorageConfig, storage.ObjectStorage, error) {
	cfg := config.Load().Storage
	if !cfg.Enabled {
		return cfg, nil, errors.New("object storage is disabled (set STORAGE_ENABLED=true)")
	}
	client, err := storage.NewMinioClient(cfg)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, client, nil
}
