package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/stegotext/cmd/app/commands"
	"github.com/allisson/stegotext/internal/httputil"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-key",
			Usage: "Register a new dynamic key on the server",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Unique key name (e.g., newsletter-2026)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := openContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				keyUseCase, err := container.KeyUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateKey(
					ctx,
					keyUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("name"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "list-keys",
			Usage: "List the dynamic keys registered on the server",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "offset",
					Value: 0,
					Usage: "Number of keys to skip",
				},
				&cli.IntFlag{
					Name:  "limit",
					Value: httputil.DefaultLimit,
					Usage: "Maximum number of keys to list",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := openContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				keyUseCase, err := container.KeyUseCase()
				if err != nil {
					return err
				}

				return commands.RunListKeys(
					ctx,
					keyUseCase,
					commands.DefaultIO().Writer,
					int(cmd.Int("offset")),
					int(cmd.Int("limit")),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "delete-key",
			Usage: "Delete a dynamic key registered on the server",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Key name",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := openContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				keyUseCase, err := container.KeyUseCase()
				if err != nil {
					return err
				}

				return commands.RunDeleteKey(
					ctx,
					keyUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("name"),
				)
			},
		},
	}
}
