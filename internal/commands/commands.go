// Package commands parses the line protocol spoken by the websocket and
// terminal hosts: "o x y" reveals, "f x y" toggles a flag, "g" fetches the
// board and "n" starts over with the same parameters.
package commands

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/vancomm/minefield/internal/mines"
)

type Kind uint8

const (
	Get Kind = iota + 1
	Reveal
	Flag
	Restart
)

func (k Kind) String() string {
	switch k {
	case Get:
		return "get"
	case Reveal:
		return "reveal"
	case Flag:
		return "flag"
	case Restart:
		return "restart"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

type Command struct {
	Kind Kind
	X, Y int
}

var (
	ErrUnknownCommand = fmt.Errorf("unknown command")
	ErrBadArgCount    = fmt.Errorf("invalid number of arguments")
)

var commandNargs = map[string]struct {
	kind  Kind
	nargs int
}{
	"g": {Get, 0},
	"o": {Reveal, 2},
	"f": {Flag, 2},
	"n": {Restart, 0},
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = fmt.Errorf("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = fmt.Errorf("second argument must be an int")
		return
	}
	return
}

func Parse(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{}, ErrUnknownCommand
	}

	cmd, ok := commandNargs[parts[0]]
	if !ok {
		return Command{}, fmt.Errorf("%w %q", ErrUnknownCommand, parts[0])
	}
	if cmd.nargs != len(parts)-1 {
		return Command{}, ErrBadArgCount
	}

	c := Command{Kind: cmd.kind}
	if cmd.nargs == 2 {
		var err error
		if c.X, c.Y, err = parseXY(parts[1:]); err != nil {
			return Command{}, err
		}
	}
	return c, nil
}

// Apply runs c against s. Get and Restart do not touch the session; Restart
// is left to whoever owns the session.
func (c Command) Apply(s *mines.Session) {
	switch c.Kind {
	case Reveal:
		s.RevealAt(c.X, c.Y)
	case Flag:
		s.ToggleFlagAt(c.X, c.Y)
	}
}

// Lines yields the non-blank lines of text.
func Lines(text string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var line string
		for found {
			line, text, found = strings.Cut(text, "\n")
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if !yield(i, line) {
				return
			}
			i++
		}
	}
}
