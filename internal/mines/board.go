package mines

type Board struct {
	GameParams
	cells Grid
}

func newBoard(p GameParams) *Board {
	return &Board{GameParams: p, cells: p.newCells()}
}

func (b *Board) index(x, y int) int {
	return y*b.Width + x
}

// At returns a copy of the cell at x, y. Coordinates outside the board
// resolve to a cell of kind [Invalid] that every operation ignores.
func (b *Board) At(x, y int) Cell {
	if !b.PointInBounds(x, y) {
		return Cell{Pos: Point{x, y}, Kind: Invalid}
	}
	return b.cells[b.index(x, y)]
}

func (b *Board) set(c Cell) {
	b.cells[b.index(c.Pos.X, c.Pos.Y)] = c
}

func (b *Board) String() string {
	return b.cells.ToString(b.Width)
}
