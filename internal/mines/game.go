package mines

import (
	"log/slog"
	"math/rand/v2"

	"github.com/gammazero/deque"
)

var Log *slog.Logger = slog.Default()

// Session is one game in progress. It is not safe for concurrent use; hosts
// that share a session between goroutines must serialize calls themselves.
type Session struct {
	board    *Board
	gameOver bool
}

// NewGame validates params and lays out a fresh board with mines placed at
// random by r.
func NewGame(params GameParams, r *rand.Rand) (*Session, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	board := newBoard(params)
	board.placeMines(r)
	board.computeNumbers()
	return &Session{board: board}, nil
}

// NewGameWithMines is [NewGame] with a caller-chosen layout. len(mines) must
// equal params.MineCount and every point must be distinct and in bounds.
func NewGameWithMines(params GameParams, mines []Point) (*Session, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	board := newBoard(params)
	if err := board.placeFixedMines(mines); err != nil {
		return nil, err
	}
	board.computeNumbers()
	return &Session{board: board}, nil
}

func (s *Session) Params() GameParams {
	return s.board.GameParams
}

func (s *Session) IsGameOver() bool {
	return s.gameOver
}

func (s *Session) At(x, y int) Cell {
	return s.board.At(x, y)
}

func (s *Session) RevealAt(x, y int) {
	if s.gameOver {
		return
	}

	cell := s.board.At(x, y)
	if cell.Kind == Invalid || cell.Revealed || cell.Flagged {
		return
	}

	if cell.Kind == Empty {
		s.flood(cell.Pos)
	}

	cell.Revealed = true
	s.board.set(cell)

	if cell.Kind == Mine {
		s.explode(cell.Pos)
	}
}

func (s *Session) ToggleFlagAt(x, y int) {
	if s.gameOver {
		return
	}

	cell := s.board.At(x, y)
	if cell.Kind == Invalid || cell.Revealed {
		return
	}

	cell.Flagged = !cell.Flagged
	s.board.set(cell)
}

// flood reveals the orthogonally connected empty region around start together
// with its border of numbered cells. Mines are never touched.
func (s *Session) flood(start Point) {
	var todo deque.Deque[Point]
	todo.PushBack(start)

	for todo.Len() > 0 {
		p := todo.PopBack()
		cell := s.board.At(p.X, p.Y)
		if cell.Revealed || cell.Kind == Mine || cell.Kind == Invalid {
			continue
		}

		cell.Revealed = true
		s.board.set(cell)

		if cell.Kind == Empty {
			todo.PushBack(Point{p.X - 1, p.Y})
			todo.PushBack(Point{p.X + 1, p.Y})
			todo.PushBack(Point{p.X, p.Y - 1})
			todo.PushBack(Point{p.X, p.Y + 1})
		}
	}
}

// explode ends the game: the mine at hit is marked as the one that went off
// and every other mine is uncovered.
func (s *Session) explode(hit Point) {
	Log.Debug("game over", slog.String("hit", hit.String()))
	s.gameOver = true

	for i, cell := range s.board.cells {
		if cell.Kind == Mine {
			s.board.cells[i].Revealed = true
		}
	}

	cell := s.board.At(hit.X, hit.Y)
	cell.Revealed = true
	cell.Exploded = true
	s.board.set(cell)
}

// Won reports whether every safe cell has been uncovered without hitting a
// mine.
func (s *Session) Won() bool {
	if s.gameOver {
		return false
	}
	for _, cell := range s.board.cells {
		if cell.Kind != Mine && !cell.Revealed {
			return false
		}
	}
	return true
}

// MinesLeft is the mine count minus the flags still standing on covered
// cells. It goes negative when the player over-flags.
func (s *Session) MinesLeft() int {
	flags := 0
	for _, cell := range s.board.cells {
		if cell.Flagged && !cell.Revealed {
			flags++
		}
	}
	return s.board.MineCount - flags
}

func (s *Session) String() string {
	return s.board.String()
}
