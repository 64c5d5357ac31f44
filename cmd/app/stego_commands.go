package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/allisson/stegotext/cmd/app/commands"
)

func keyFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "key",
			Aliases: []string{"k"},
			Usage:   "Key file holding the dynamic key",
		},
		&cli.BoolFlag{
			Name:  "plain",
			Value: false,
			Usage: "Skip the keyed cipher (markers carry the plaintext)",
		},
	}
}

func getStegoCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate-key",
			Usage: "Generate a dynamic key and optionally write it to a key file",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "out",
					Aliases: []string{"o"},
					Usage:   "Key file to write (prints the hex key when omitted)",
				},
				&cli.IntFlag{
					Name:    "size",
					Aliases: []string{"s"},
					Usage:   "Key size in bytes (defaults to STEGO_KEY_SIZE)",
				},
				&cli.StringFlag{
					Name:  "passphrase",
					Usage: "Derive the key from a passphrase instead of random bytes",
				},
				&cli.StringFlag{
					Name:  "salt",
					Usage: "Salt used with --passphrase",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := openContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				keyFiles, err := container.KeyFileRepository()
				if err != nil {
					return err
				}

				size := int(cmd.Int("size"))
				if size == 0 {
					size = container.Config().StegoKeySize
				}

				return commands.RunGenerateKey(
					ctx,
					container.KeyGenerator(),
					keyFiles,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("out"),
					size,
					cmd.String("passphrase"),
					cmd.String("salt"),
				)
			},
		},
		{
			Name:  "encode",
			Usage: "Hide a secret inside a cover text",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:     "secret",
					Required: true,
					Usage:    "Artifact holding the secret text",
				},
				&cli.StringFlag{
					Name:     "cover",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "Artifact holding the cover text",
				},
				&cli.StringFlag{
					Name:    "out",
					Aliases: []string{"o"},
					Usage:   "Artifact to write the stego text to (prints it when omitted)",
				},
			}, keyFlags()...),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := openContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				store, err := container.ArtifactStore()
				if err != nil {
					return err
				}
				keyFiles, err := container.KeyFileRepository()
				if err != nil {
					return err
				}
				useCase, err := container.StegoUseCase()
				if err != nil {
					return err
				}

				return commands.RunEncode(
					ctx,
					useCase,
					store,
					keyFiles,
					container.Logger(),
					commands.DefaultIO().Writer,
					commands.EncodeOptions{
						SecretPath: cmd.String("secret"),
						CoverPath:  cmd.String("cover"),
						KeyPath:    cmd.String("key"),
						OutPath:    cmd.String("out"),
						Plain:      cmd.Bool("plain"),
					},
				)
			},
		},
		{
			Name:  "decode",
			Usage: "Recover the secret hidden in a stego text",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:     "in",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Artifact holding the stego text",
				},
			}, keyFlags()...),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := openContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				store, err := container.ArtifactStore()
				if err != nil {
					return err
				}
				keyFiles, err := container.KeyFileRepository()
				if err != nil {
					return err
				}
				useCase, err := container.StegoUseCase()
				if err != nil {
					return err
				}

				return commands.RunDecode(
					ctx,
					useCase,
					store,
					keyFiles,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("in"),
					cmd.String("key"),
					cmd.Bool("plain"),
				)
			},
		},
		{
			Name:  "inspect",
			Usage: "Report the zero-width markers found in a text",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "in",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Artifact to inspect",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
				&cli.BoolFlag{
					Name:  "bruteforce",
					Usage: "Also try every single-byte XOR key on the recovered payload",
				},
				&cli.IntFlag{
					Name:  "top",
					Value: 5,
					Usage: "Number of XOR candidates to show with --bruteforce",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				top := 0
				if cmd.Bool("bruteforce") {
					top = int(cmd.Int("top"))
					if top <= 0 {
						return fmt.Errorf("--top must be positive")
					}
				}

				container, err := openContainer()
				if err != nil {
					return err
				}
				defer func() { _ = container.Shutdown(ctx) }()

				store, err := container.ArtifactStore()
				if err != nil {
					return err
				}
				useCase, err := container.StegoUseCase()
				if err != nil {
					return err
				}

				return commands.RunInspect(
					ctx,
					useCase,
					store,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("in"),
					cmd.String("format"),
					top,
				)
			},
		},
	}
}
