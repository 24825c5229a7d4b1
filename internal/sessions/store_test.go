package sessions

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minefield/internal/mines"
)

func setupTestStore() *Store {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(logger, rand.New(rand.NewPCG(1, 2)))
}

func TestStoreCreateAndGet(t *testing.T) {
	st := setupTestStore()
	params := mines.GameParams{Width: 9, Height: 9, MineCount: 10}

	id, snap, err := st.Create(params)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, 9, snap.Width)
	assert.Equal(t, 1, st.Len())

	got, err := st.Get(id)
	require.NoError(t, err)
	assert.Equal(t, snap, got)
}

func TestStoreCreateInvalid(t *testing.T) {
	st := setupTestStore()
	_, _, err := st.Create(mines.GameParams{Width: 2, Height: 2, MineCount: 4})
	var ce *mines.ConfigError
	assert.ErrorAs(t, err, &ce)
	assert.Equal(t, 0, st.Len())
}

func TestStoreNotFound(t *testing.T) {
	st := setupTestStore()
	_, err := st.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = st.RevealAt("nope", 0, 0)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = st.Restart("nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, st.Delete("nope"), ErrNotFound)
}

func TestStoreCommands(t *testing.T) {
	st := setupTestStore()
	s, err := mines.NewGameWithMines(
		mines.GameParams{Width: 3, Height: 3, MineCount: 1}, []mines.Point{{X: 1, Y: 1}},
	)
	require.NoError(t, err)
	id := st.Add(s)

	snap, err := st.ToggleFlagAt(id, 0, 0)
	require.NoError(t, err)
	assert.True(t, snap.At(0, 0).Flagged)

	snap, err = st.RevealAt(id, 2, 2)
	require.NoError(t, err)
	assert.True(t, snap.At(2, 2).Revealed)

	snap, err = st.RevealAt(id, 1, 1)
	require.NoError(t, err)
	assert.True(t, snap.GameOver)

	snap, err = st.Restart(id)
	require.NoError(t, err)
	assert.False(t, snap.GameOver)
	assert.Equal(t, 3, snap.Width)
	assert.Equal(t, 1, snap.MineCount)

	require.NoError(t, st.Delete(id))
	assert.Equal(t, 0, st.Len())
}

func TestStoreConcurrentCommands(t *testing.T) {
	st := setupTestStore()
	id, _, err := st.Create(mines.GameParams{Width: 30, Height: 16, MineCount: 0})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for x := range 30 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range 16 {
				_, err := st.ToggleFlagAt(id, x, y)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	snap, err := st.Get(id)
	require.NoError(t, err)
	assert.Equal(t, -30*16, snap.MinesLeft)
}
