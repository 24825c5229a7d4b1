// Package mcptools exposes the game engine as Model Context Protocol tools so
// an agent can play through the same session store as the HTTP host.
package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/sessions"
)

const (
	Name    = "minefield"
	Version = "1.0.0"
)

type Tools struct {
	logger   *slog.Logger
	store    *sessions.Store
	defaults mines.GameParams
	maxCells int
	server   *server.MCPServer
}

// New registers the tools. new_game refuses boards over maxCells cells.
func New(logger *slog.Logger, store *sessions.Store, defaults mines.GameParams, maxCells int) *Tools {
	t := &Tools{
		logger:   logger,
		store:    store,
		defaults: defaults,
		maxCells: maxCells,
	}
	t.server = server.NewMCPServer(
		Name,
		Version,
		server.WithToolCapabilities(true),
		server.WithInstructions(instructions),
	)
	t.registerTools()
	return t
}

const instructions = `Minesweeper.

Start with new_game, then reveal and flag cells by x (column) and y (row),
both zero-based from the top-left corner. Every tool returns the board:
  " " covered   "*" flagged   "." empty   "1".."8" adjacent mines
  "x" mine      "!" the mine that went off
Revealing a mine ends the game; after that every move is ignored.`

func (t *Tools) Server() *server.MCPServer {
	return t.server
}

func (t *Tools) ServeStdio() error {
	return server.ServeStdio(t.server)
}

func (t *Tools) registerTools() {
	sessionID := mcp.WithString("session_id",
		mcp.Required(),
		mcp.Description("Game session ID returned by new_game"),
	)
	x := mcp.WithNumber("x", mcp.Required(), mcp.Description("Column, zero-based"))
	y := mcp.WithNumber("y", mcp.Required(), mcp.Description("Row, zero-based"))

	t.server.AddTool(mcp.NewTool("new_game",
		mcp.WithDescription("Start a new game and return its session ID and board"),
		mcp.WithNumber("width", mcp.Description(fmt.Sprintf("Board width (default %d)", t.defaults.Width))),
		mcp.WithNumber("height", mcp.Description(fmt.Sprintf("Board height (default %d)", t.defaults.Height))),
		mcp.WithNumber("mine_count", mcp.Description(fmt.Sprintf("Number of mines (default %d)", t.defaults.MineCount))),
	), t.handleNewGame)

	t.server.AddTool(mcp.NewTool("reveal",
		mcp.WithDescription("Reveal the cell at x, y"),
		sessionID, x, y,
	), t.handleReveal)

	t.server.AddTool(mcp.NewTool("flag",
		mcp.WithDescription("Toggle a flag on the covered cell at x, y"),
		sessionID, x, y,
	), t.handleFlag)

	t.server.AddTool(mcp.NewTool("get_game",
		mcp.WithDescription("Show the current board"),
		sessionID,
	), t.handleGetGame)

	t.server.AddTool(mcp.NewTool("restart_game",
		mcp.WithDescription("Replace the board with a fresh one of the same size"),
		sessionID,
	), t.handleRestart)
}

type status struct {
	SessionID string `json:"session_id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	MineCount int    `json:"mine_count"`
	MinesLeft int    `json:"mines_left"`
	GameOver  bool   `json:"game_over"`
	Won       bool   `json:"won"`
}

func result(id string, snap mines.Snapshot, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b, err := json.Marshal(status{
		SessionID: id,
		Width:     snap.Width,
		Height:    snap.Height,
		MineCount: snap.MineCount,
		MinesLeft: snap.MinesLeft,
		GameOver:  snap.GameOver,
		Won:       snap.Won,
	})
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(b) + "\n\n" + snap.String()), nil
}

func arguments(request mcp.CallToolRequest) map[string]any {
	args, _ := request.Params.Arguments.(map[string]any)
	return args
}

var errMissing = errors.New("missing required argument")

func stringArg(args map[string]any, name string) (string, error) {
	s, ok := args[name].(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%w %q", errMissing, name)
	}
	return s, nil
}

// intArg reads a whole number; JSON numbers arrive as float64.
func intArg(args map[string]any, name string, fallback *int) (int, error) {
	v, ok := args[name]
	if !ok || v == nil {
		if fallback != nil {
			return *fallback, nil
		}
		return 0, fmt.Errorf("%w %q", errMissing, name)
	}
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) || math.Abs(n) >= 1<<63 {
			return 0, fmt.Errorf("%q must be a whole number", name)
		}
		return int(n), nil
	case int:
		return n, nil
	default:
		return 0, fmt.Errorf("%q must be a number", name)
	}
}

func (t *Tools) handleNewGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	p := t.defaults
	var err error
	if p.Width, err = intArg(args, "width", &t.defaults.Width); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if p.Height, err = intArg(args, "height", &t.defaults.Height); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if p.MineCount, err = intArg(args, "mine_count", &t.defaults.MineCount); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := p.CheckCells(t.maxCells); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	id, snap, err := t.store.Create(p)
	if err == nil {
		t.logger.Debug("mcp new game", slog.String("id", id), slog.String("params", p.Seed()))
	}
	return result(id, snap, err)
}

func (t *Tools) move(
	request mcp.CallToolRequest,
	apply func(st *sessions.Store, id string, x, y int) (mines.Snapshot, error),
) (*mcp.CallToolResult, error) {
	args := arguments(request)
	id, err := stringArg(args, "session_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	x, err := intArg(args, "x", nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	y, err := intArg(args, "y", nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	snap, err := apply(t.store, id, x, y)
	return result(id, snap, err)
}

func (t *Tools) handleReveal(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.move(request, (*sessions.Store).RevealAt)
}

func (t *Tools) handleFlag(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return t.move(request, (*sessions.Store).ToggleFlagAt)
}

func (t *Tools) handleGetGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := stringArg(arguments(request), "session_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	snap, err := t.store.Get(id)
	return result(id, snap, err)
}

func (t *Tools) handleRestart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := stringArg(arguments(request), "session_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	snap, err := t.store.Restart(id)
	return result(id, snap, err)
}
