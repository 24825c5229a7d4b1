package handlers

import (
	"log/slog"
	"net/http"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/sessions"
)

type GameHandler struct {
	logger   *slog.Logger
	store    *sessions.Store
	defaults mines.GameParams
	maxCells int
	ws       *config.WebSocket
}

func NewGameHandler(
	logger *slog.Logger,
	store *sessions.Store,
	defaults mines.GameParams,
	maxCells int,
	ws *config.WebSocket,
) *GameHandler {
	handler := &GameHandler{
		logger:   logger,
		store:    store,
		defaults: defaults,
		maxCells: maxCells,
		ws:       ws,
	}
	return handler
}

// sendSession writes the session or maps the store error onto a status code.
func (g GameHandler) sendSession(
	w http.ResponseWriter, status int, id string, snap mines.Snapshot, err error,
) {
	if err != nil {
		code, sent := statusOf(err)
		if code == http.StatusInternalServerError {
			g.logger.Error("unable to process game command", slog.Any("error", err))
		}
		SendErrorOrLog(w, g.logger, code, sent)
		return
	}
	SendJSONOrLog(w, g.logger, status, NewGameSessionDTO(id, snap))
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	params, err := ParseNewGameDTO(r.URL.Query(), g.defaults, g.maxCells)
	if err != nil {
		SendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}

	id, snap, err := g.store.Create(params)
	if err == nil {
		g.logger.Debug("new game", slog.String("id", id), slog.String("params", params.Seed()))
	}
	g.sendSession(w, http.StatusCreated, id, snap, err)
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	snap, err := g.store.Get(id)
	g.sendSession(w, http.StatusOK, id, snap, err)
}

func (g GameHandler) move(
	w http.ResponseWriter, r *http.Request,
	apply func(st *sessions.Store, id string, x, y int) (mines.Snapshot, error),
) {
	pos, err := ParsePosition(r.URL.Query())
	if err != nil {
		SendErrorOrLog(w, g.logger, http.StatusBadRequest, err)
		return
	}
	id := r.PathValue("id")
	snap, err := apply(g.store, id, pos.X, pos.Y)
	g.sendSession(w, http.StatusOK, id, snap, err)
}

func (g GameHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	g.move(w, r, (*sessions.Store).RevealAt)
}

func (g GameHandler) Flag(w http.ResponseWriter, r *http.Request) {
	g.move(w, r, (*sessions.Store).ToggleFlagAt)
}

func (g GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	snap, err := g.store.Restart(id)
	g.sendSession(w, http.StatusOK, id, snap, err)
}

func (g GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := g.store.Delete(r.PathValue("id")); err != nil {
		code, sent := statusOf(err)
		SendErrorOrLog(w, g.logger, code, sent)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
