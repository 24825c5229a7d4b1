package main

import (
	"context"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/mines"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

var gameFlags = []cli.Flag{
	&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Usage: "board width (GAME_WIDTH)"},
	&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Usage: "board height (GAME_HEIGHT)"},
	&cli.IntFlag{Name: "mines", Aliases: []string{"m"}, Usage: "mine count (GAME_MINES)"},
}

// gameDefaults reads the environment defaults and lets flags override them.
func gameDefaults(cmd *cli.Command) (mines.GameParams, error) {
	p, err := config.NewGameDefaults()
	if err != nil {
		return p, fmt.Errorf("invalid game defaults: %w", err)
	}
	if cmd.IsSet("width") {
		p.Width = int(cmd.Int("width"))
	}
	if cmd.IsSet("height") {
		p.Height = int(cmd.Int("height"))
	}
	if cmd.IsSet("mines") {
		p.MineCount = int(cmd.Int("mines"))
	}
	return p, p.Validate()
}

// hostDefaults is [gameDefaults] for hosts serving remote clients, which also
// cap the board size. The defaults themselves must fit under the cap.
func hostDefaults(cmd *cli.Command) (mines.GameParams, int, error) {
	maxCells, err := config.MaxCells()
	if err != nil {
		return mines.GameParams{}, 0, err
	}
	p, err := gameDefaults(cmd)
	if err != nil {
		return p, 0, err
	}
	return p, maxCells, p.CheckCells(maxCells)
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := config.Load(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	root := &cli.Command{
		Name:  "mines",
		Usage: "minesweeper engine with HTTP, MCP and terminal hosts",
		Commands: []*cli.Command{
			serveCommand(),
			mcpCommand(),
			playCommand(),
		},
	}

	if err := root.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
