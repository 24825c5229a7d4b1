package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vancomm/minefield/internal/mines"
)

func lookupInt(key string, fallback int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	return v, nil
}

// NewGameDefaults reads GAME_WIDTH, GAME_HEIGHT and GAME_MINES, falling back
// to 16x16 with 32 mines. The result is validated.
func NewGameDefaults() (mines.GameParams, error) {
	var (
		p   = mines.DefaultParams()
		err error
	)
	if p.Width, err = lookupInt("GAME_WIDTH", p.Width); err != nil {
		return p, err
	}
	if p.Height, err = lookupInt("GAME_HEIGHT", p.Height); err != nil {
		return p, err
	}
	if p.MineCount, err = lookupInt("GAME_MINES", p.MineCount); err != nil {
		return p, err
	}
	return p, p.Validate()
}

const defaultMaxCells = 1 << 20

// MaxCells reads GAME_MAX_CELLS, the largest board remote clients may ask
// for. It defaults to 1048576 cells and must be positive.
func MaxCells() (int, error) {
	n, err := lookupInt("GAME_MAX_CELLS", defaultMaxCells)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("GAME_MAX_CELLS must be positive, got %d", n)
	}
	return n, nil
}
