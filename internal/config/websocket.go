package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader  websocket.Upgrader
	PongWait  time.Duration
	WriteWait time.Duration
}

func (ws WebSocket) PingPeriod() time.Duration {
	return ws.PongWait * 9 / 10
}

func NewWebSocket() (*WebSocket, error) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	pongWait := 60 * time.Second
	if s, ok := os.LookupEnv("WS_PONG_WAIT_SECONDS"); ok {
		secs, err := strconv.Atoi(s)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("WS_PONG_WAIT_SECONDS must be a positive integer, got %q", s)
		}
		pongWait = time.Duration(secs) * time.Second
	}

	ws := &WebSocket{
		Upgrader:  upgrader,
		PongWait:  pongWait,
		WriteWait: 10 * time.Second,
	}

	return ws, nil
}
