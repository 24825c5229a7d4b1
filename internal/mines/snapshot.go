package mines

import "slices"

// Snapshot is a detached copy of a session handed to renderers. Mutating it
// has no effect on the session it came from.
type Snapshot struct {
	Width     int  `json:"width"`
	Height    int  `json:"height"`
	MineCount int  `json:"mine_count"`
	MinesLeft int  `json:"mines_left"`
	GameOver  bool `json:"game_over"`
	Won       bool `json:"won"`
	Cells     Grid `json:"cells"`
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Width:     s.board.Width,
		Height:    s.board.Height,
		MineCount: s.board.MineCount,
		MinesLeft: s.MinesLeft(),
		GameOver:  s.gameOver,
		Won:       s.Won(),
		Cells:     slices.Clone(s.board.cells),
	}
}

func (s Snapshot) At(x, y int) Cell {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return Cell{Pos: Point{x, y}, Kind: Invalid}
	}
	return s.Cells[y*s.Width+x]
}

func (s Snapshot) String() string {
	return s.Cells.ToString(s.Width)
}
