package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/mcptools"
	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/sessions"
)

func mcpCommand() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "serve the game as MCP tools over stdio",
		Flags: gameFlags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// stdout carries the protocol, so logs stay on stderr
			logger := config.NewLogger()
			mines.Log = logger

			defaults, maxCells, err := hostDefaults(cmd)
			if err != nil {
				return err
			}

			store := sessions.New(logger, createRand())
			return mcptools.New(logger, store, defaults, maxCells).ServeStdio()
		},
	}
}
