package handlers

import (
	"github.com/gorilla/schema"

	"github.com/vancomm/minefield/internal/mines"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type NewGameDTO struct {
	Width     int `schema:"width"`
	Height    int `schema:"height"`
	MineCount int `schema:"mine_count"`
}

// ParseNewGameDTO decodes the board parameters from a query. Keys that are
// absent keep the values from defaults. Boards over maxCells cells are
// rejected with a [mines.ConfigError].
func ParseNewGameDTO(
	src map[string][]string, defaults mines.GameParams, maxCells int,
) (mines.GameParams, error) {
	dto := NewGameDTO(defaults)
	if err := decoder.Decode(&dto, src); err != nil {
		return mines.GameParams{}, err
	}
	params := mines.GameParams(dto)
	return params, params.CheckCells(maxCells)
}

type PositionDTO struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func ParsePosition(src map[string][]string) (PositionDTO, error) {
	var pos PositionDTO
	err := decoder.Decode(&pos, src)
	return pos, err
}

// CellDTO is what a player may know about a cell: covered cells hide their
// contents.
type CellDTO struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	State  string `json:"state"`
	Number int    `json:"number,omitempty"`
}

func NewCellDTO(c mines.Cell) CellDTO {
	dto := CellDTO{X: c.Pos.X, Y: c.Pos.Y}
	switch {
	case c.Exploded:
		dto.State = "exploded"
	case !c.Revealed && c.Flagged:
		dto.State = "flagged"
	case !c.Revealed:
		dto.State = "hidden"
	default:
		dto.State = c.Kind.String()
		if c.Kind == mines.Number {
			dto.Number = c.Number
		}
	}
	return dto
}

type GameSessionDTO struct {
	GameSessionID string    `json:"game_session_id"`
	Width         int       `json:"width"`
	Height        int       `json:"height"`
	MineCount     int       `json:"mine_count"`
	MinesLeft     int       `json:"mines_left"`
	GameOver      bool      `json:"game_over"`
	Won           bool      `json:"won"`
	Cells         []CellDTO `json:"cells"`
}

func NewGameSessionDTO(id string, snap mines.Snapshot) *GameSessionDTO {
	cells := make([]CellDTO, len(snap.Cells))
	for i, c := range snap.Cells {
		cells[i] = NewCellDTO(c)
	}
	return &GameSessionDTO{
		GameSessionID: id,
		Width:         snap.Width,
		Height:        snap.Height,
		MineCount:     snap.MineCount,
		MinesLeft:     snap.MinesLeft,
		GameOver:      snap.GameOver,
		Won:           snap.Won,
		Cells:         cells,
	}
}
