package mines

import "math/rand/v2"

func (p GameParams) newCells() Grid {
	cells := make(Grid, p.Width*p.Height)
	for y := range p.Height {
		for x := range p.Width {
			cells[y*p.Width+x] = Cell{Pos: Point{x, y}, Kind: Empty}
		}
	}
	return cells
}

// placeMines drops MineCount mines on uniformly random cells, resampling on
// collision. Validate guarantees at least one free cell, so this terminates.
func (b *Board) placeMines(r *rand.Rand) {
	for range b.MineCount {
		var i int
		for {
			i = r.IntN(len(b.cells))
			if b.cells[i].Kind != Mine {
				break
			}
		}
		b.cells[i].Kind = Mine
	}
}

func (b *Board) placeFixedMines(mines []Point) error {
	if len(mines) != b.MineCount {
		return configErrorf(
			b.GameParams, "got %d mine positions, want %d", len(mines), b.MineCount,
		)
	}
	for _, m := range mines {
		if !b.PointInBounds(m.X, m.Y) {
			return configErrorf(b.GameParams, "mine %s out of bounds", m)
		}
		i := b.index(m.X, m.Y)
		if b.cells[i].Kind == Mine {
			return configErrorf(b.GameParams, "duplicate mine at %s", m)
		}
		b.cells[i].Kind = Mine
	}
	return nil
}

// computeNumbers runs once per board; counts are never recomputed.
func (b *Board) computeNumbers() {
	for i := range b.cells {
		cell := b.cells[i]
		if cell.Kind == Mine {
			continue
		}
		cell.Number = b.countMines(cell.Pos.X, cell.Pos.Y)
		if cell.Number > 0 {
			cell.Kind = Number
		}
		b.cells[i] = cell
	}
}

func (b *Board) countMines(cx, cy int) (count int) {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if b.At(cx+dx, cy+dy).Kind == Mine {
				count++
			}
		}
	}
	return
}
