package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/stegotext/cmd/app/commands"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "server",
			Usage: "Start the HTTP server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := openContainer()
				if err != nil {
					return err
				}
				return commands.RunServer(ctx, container, version)
			},
		},
		{
			Name:  "migrate",
			Usage: "Run database migrations for the key registry",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := openContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				cfg := container.Config()
				return commands.RunMigrations(container.Logger(), cfg.DBDriver, cfg.DBConnectionString)
			},
		},
	}
}
