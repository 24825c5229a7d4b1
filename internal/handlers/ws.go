package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minefield/internal/commands"
	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/sessions"
)

const maxMessageSize = 4096

// run executes one protocol line against the session behind id.
func (g GameHandler) run(id string, line string) (mines.Snapshot, error) {
	c, err := commands.Parse(line)
	if err != nil {
		return mines.Snapshot{}, err
	}
	g.logger.Debug("ws command", slog.String("id", id), slog.String("command", c.Kind.String()))
	if c.Kind == commands.Restart {
		return g.store.Restart(id)
	}
	return g.store.Do(id, c.Apply)
}

func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	snap, err := g.store.Get(id)
	if err != nil {
		g.sendSession(w, http.StatusOK, id, snap, err)
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer c.Close()

	c.SetReadLimit(maxMessageSize)
	c.SetReadDeadline(time.Now().Add(g.ws.PongWait))
	c.SetPongHandler(func(string) error {
		return c.SetReadDeadline(time.Now().Add(g.ws.PongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go g.ping(c, done)

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				g.logger.Warn("abnormal ws break", slog.Any("error", err))
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}

		var reply any
		snap, err = g.store.Get(id)
		for _, line := range commands.Lines(string(message)) {
			if err != nil {
				break
			}
			snap, err = g.run(id, line)
		}
		switch {
		case errors.Is(err, sessions.ErrNotFound):
			g.writeJSON(c, wrapError(err))
			return
		case err != nil:
			reply = wrapError(err)
		default:
			reply = NewGameSessionDTO(id, snap)
		}

		if !g.writeJSON(c, reply) {
			return
		}
	}
}

func (g GameHandler) writeJSON(c *websocket.Conn, v any) bool {
	c.SetWriteDeadline(time.Now().Add(g.ws.WriteWait))
	if err := c.WriteJSON(v); err != nil {
		g.logger.Error("unable to write json", slog.Any("error", err))
		return false
	}
	return true
}

func (g GameHandler) ping(c *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(g.ws.PingPeriod())
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			deadline := time.Now().Add(g.ws.WriteWait)
			if err := c.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		}
	}
}
