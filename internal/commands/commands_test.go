package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minefield/internal/mines"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
		err  bool
	}{
		{"g", Command{Kind: Get}, false},
		{"n", Command{Kind: Restart}, false},
		{"o 3 4", Command{Kind: Reveal, X: 3, Y: 4}, false},
		{"f 0 12", Command{Kind: Flag, X: 0, Y: 12}, false},
		{"  o   -1  2 ", Command{Kind: Reveal, X: -1, Y: 2}, false},
		{"", Command{}, true},
		{"x 1 2", Command{}, true},
		{"o 1", Command{}, true},
		{"g 1", Command{}, true},
		{"o a 2", Command{}, true},
		{"f 1 b", Command{}, true},
	}
	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			c, err := Parse(test.line)
			if test.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, c)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("z")
	assert.ErrorIs(t, err, ErrUnknownCommand)
	_, err = Parse("o 1 2 3")
	assert.ErrorIs(t, err, ErrBadArgCount)
}

func TestApply(t *testing.T) {
	s, err := mines.NewGameWithMines(
		mines.GameParams{Width: 3, Height: 3, MineCount: 1}, []mines.Point{{X: 1, Y: 1}},
	)
	require.NoError(t, err)

	Command{Kind: Flag, X: 0, Y: 0}.Apply(s)
	assert.True(t, s.At(0, 0).Flagged)
	Command{Kind: Reveal, X: 2, Y: 2}.Apply(s)
	assert.True(t, s.At(2, 2).Revealed)
	Command{Kind: Get}.Apply(s)
	Command{Kind: Restart}.Apply(s)
	assert.False(t, s.IsGameOver())
}

func TestLines(t *testing.T) {
	var got []string
	for i, line := range Lines("o 1 2\n\n  f 3 4 \ng\n") {
		assert.Equal(t, len(got), i)
		got = append(got, line)
	}
	assert.Equal(t, []string{"o 1 2", "f 3 4", "g"}, got)

	for _, line := range Lines("a\nb\nc") {
		if line == "b" {
			break
		}
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "reveal", Reveal.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
