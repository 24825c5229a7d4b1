package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/vancomm/minefield/internal/commands"
	"github.com/vancomm/minefield/internal/mines"
)

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "play in the terminal",
		Flags: append([]cli.Flag{
			&cli.StringFlag{Name: "seed", Usage: `board parameters as "width:height:mines"`},
		}, gameFlags...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			params, err := gameDefaults(cmd)
			if err != nil {
				return err
			}
			if cmd.IsSet("seed") {
				p, err := mines.ParseSeed(cmd.String("seed"))
				if err != nil {
					return err
				}
				params = *p
			}
			return play(ctx, os.Stdin, os.Stdout, params, createRand())
		},
	}
}

const playHelp = `o X Y  reveal    f X Y  flag    g  show    n  new game    q  quit`

// play runs an interactive game on in/out until in is exhausted, the player
// quits or ctx is done.
func play(ctx context.Context, in io.Reader, out io.Writer, params mines.GameParams, r *rand.Rand) error {
	s, err := mines.NewGame(params, r)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, playHelp)
	printSession(out, s)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "q" {
			return nil
		}

		c, err := commands.Parse(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		if c.Kind == commands.Restart {
			if s, err = mines.NewGame(params, r); err != nil {
				return err
			}
		} else {
			c.Apply(s)
		}
		printSession(out, s)
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func printSession(out io.Writer, s *mines.Session) {
	fmt.Fprint(out, s.String())
	switch {
	case s.IsGameOver():
		fmt.Fprintln(out, "boom! game over, n to start again")
	case s.Won():
		fmt.Fprintln(out, "cleared! n to start again")
	default:
		fmt.Fprintf(out, "%d mines left\n", s.MinesLeft())
	}
}
