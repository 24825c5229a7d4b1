package mines

import (
	"fmt"
	"math"
	"strings"
)

const (
	DefaultWidth     = 16
	DefaultHeight    = 16
	DefaultMineCount = 32
)

type GameParams struct {
	Width, Height, MineCount int
}

func DefaultParams() GameParams {
	return GameParams{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		MineCount: DefaultMineCount,
	}
}

func (p GameParams) Seed() string {
	return fmt.Sprintf("%d:%d:%d", p.Width, p.Height, p.MineCount)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(sseed, "%d %d %d", &p.Width, &p.Height, &p.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	return p, nil
}

// Validate reports a [ConfigError] unless the board has at least one cell and
// 0 <= MineCount < Width*Height.
func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return configErrorf(p, "width and height must be positive")
	}
	if p.Width > math.MaxInt/p.Height {
		return configErrorf(p, "board too large")
	}
	if p.MineCount < 0 || p.MineCount >= p.Width*p.Height {
		return configErrorf(p, "mine count must be in [0, %d)", p.Width*p.Height)
	}
	return nil
}

// CheckCells is [GameParams.Validate] plus a cap on Width*Height for hosts
// that build boards on behalf of remote clients.
func (p GameParams) CheckCells(maxCells int) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Width > maxCells/p.Height {
		return configErrorf(p, "board has more than %d cells", maxCells)
	}
	return nil
}

func (p GameParams) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}
