package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type Kind int8

const (
	Invalid Kind = iota - 1 // out of bounds, never stored
	Empty
	Number
	Mine
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Number:
		return "number"
	case Mine:
		return "mine"
	default:
		return "invalid"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}

type Cell struct {
	Pos      Point `json:"pos"`
	Kind     Kind  `json:"kind"`
	Number   int   `json:"number"` /* adjacent mines, valid for Kind == Number */
	Revealed bool  `json:"revealed"`
	Flagged  bool  `json:"flagged"`
	Exploded bool  `json:"exploded"`
}

// Symbol is the single-character form of the cell as the player sees it.
func (c Cell) Symbol() string {
	switch {
	case c.Kind == Invalid:
		return "#"
	case c.Exploded:
		return "!"
	case !c.Revealed && c.Flagged:
		return "*"
	case !c.Revealed:
		return " "
	case c.Kind == Mine:
		return "x"
	case c.Kind == Number:
		return strconv.Itoa(c.Number)
	default:
		return "."
	}
}

// Grid is a row-major slice of cells.
type Grid []Cell

func (g Grid) ToString(width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			fmt.Fprint(&b, g[y*width+x].Symbol()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
