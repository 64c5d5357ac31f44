package main

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/allisson/stegotext/internal/app"
	"github.com/allisson/stegotext/internal/config"
)

func getCommands(version string) []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getSystemCommands(version)...)
	cmds = append(cmds, getStegoCommands()...)
	cmds = append(cmds, getKeyCommands()...)
	return cmds
}

// openContainer loads and validates the configuration and builds the DI container.
func openContainer() (*app.Container, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return app.NewContainer(cfg), nil
}
