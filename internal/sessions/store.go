package sessions

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"

	"github.com/vancomm/minefield/internal/mines"
)

var ErrNotFound = errors.New("session not found")

// Entry guards one game. The engine is single-threaded, so every command on
// the session goes through mu.
type Entry struct {
	ID string
	mu sync.Mutex
	s  *mines.Session
}

// Store keeps sessions in memory, keyed by a random UUID.
type Store struct {
	logger *slog.Logger

	mu      sync.RWMutex
	entries map[string]*Entry

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func New(logger *slog.Logger, rnd *rand.Rand) *Store {
	return &Store{
		logger:  logger,
		entries: make(map[string]*Entry),
		rnd:     rnd,
	}
}

func (st *Store) newGame(params mines.GameParams) (*mines.Session, error) {
	st.rndMu.Lock()
	defer st.rndMu.Unlock()
	return mines.NewGame(params, st.rnd)
}

func (st *Store) Create(params mines.GameParams) (string, mines.Snapshot, error) {
	s, err := st.newGame(params)
	if err != nil {
		return "", mines.Snapshot{}, err
	}
	return st.add(s), s.Snapshot(), nil
}

// Add registers an already generated session, e.g. one with a fixed layout.
func (st *Store) Add(s *mines.Session) string {
	return st.add(s)
}

func (st *Store) add(s *mines.Session) string {
	e := &Entry{ID: uuid.NewString(), s: s}

	st.mu.Lock()
	st.entries[e.ID] = e
	st.mu.Unlock()

	st.logger.Debug("session created",
		slog.String("id", e.ID), slog.String("params", s.Params().Seed()))
	return e.ID
}

func (st *Store) entry(id string) (*Entry, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	e, ok := st.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}

// Do runs fn with exclusive access to the session and returns the snapshot
// taken right after it.
func (st *Store) Do(id string, fn func(*mines.Session)) (mines.Snapshot, error) {
	e, err := st.entry(id)
	if err != nil {
		return mines.Snapshot{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if fn != nil {
		fn(e.s)
	}
	return e.s.Snapshot(), nil
}

func (st *Store) Get(id string) (mines.Snapshot, error) {
	return st.Do(id, nil)
}

func (st *Store) RevealAt(id string, x, y int) (mines.Snapshot, error) {
	return st.Do(id, func(s *mines.Session) { s.RevealAt(x, y) })
}

func (st *Store) ToggleFlagAt(id string, x, y int) (mines.Snapshot, error) {
	return st.Do(id, func(s *mines.Session) { s.ToggleFlagAt(x, y) })
}

// Restart replaces the game behind id with a new one using the same params.
// The old game is left untouched if generation fails.
func (st *Store) Restart(id string) (mines.Snapshot, error) {
	e, err := st.entry(id)
	if err != nil {
		return mines.Snapshot{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	s, err := st.newGame(e.s.Params())
	if err != nil {
		return mines.Snapshot{}, err
	}
	e.s = s
	st.logger.Debug("session restarted", slog.String("id", id))
	return s.Snapshot(), nil
}

func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.entries[id]; !ok {
		return ErrNotFound
	}
	delete(st.entries, id)
	return nil
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.entries)
}
