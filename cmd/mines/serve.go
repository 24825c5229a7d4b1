package main

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/vancomm/minefield/internal/app"
	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/sessions"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP and websocket host",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "listen address (APP_ADDR)"},
		}, gameFlags...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger := config.NewLogger()
			mines.Log = logger

			defaults, maxCells, err := hostDefaults(cmd)
			if err != nil {
				return err
			}

			ws, err := config.NewWebSocket()
			if err != nil {
				logger.Error("failed to read ws config", slog.Any("error", err))
				return err
			}

			addr := config.Addr()
			if cmd.IsSet("addr") {
				addr = cmd.String("addr")
			}

			store := sessions.New(logger, createRand())
			a := app.New(logger, store, defaults, maxCells, ws, config.BasePath())
			return a.Start(ctx, addr)
		},
	}
}
