package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/middleware"
	"github.com/vancomm/minefield/internal/mines"
	"github.com/vancomm/minefield/internal/sessions"
)

type App struct {
	logger   *slog.Logger
	router   *http.ServeMux
	store    *sessions.Store
	defaults mines.GameParams
	maxCells int
	ws       *config.WebSocket
	basePath string
}

func New(
	logger *slog.Logger,
	store *sessions.Store,
	defaults mines.GameParams,
	maxCells int,
	ws *config.WebSocket,
	basePath string,
) *App {
	app := &App{
		logger:   logger,
		router:   http.NewServeMux(),
		store:    store,
		defaults: defaults,
		maxCells: maxCells,
		ws:       ws,
		basePath: basePath,
	}

	app.loadRoutes()

	return app
}

func (a *App) Handler() http.Handler {
	return middleware.Chain(
		middleware.Logging(a.logger),
		middleware.Cors(),
	)(a.router)
}

// Serve runs the HTTP host on l until ctx is done, then shuts it down
// gracefully.
func (a *App) Serve(ctx context.Context, l net.Listener) error {
	server := &http.Server{
		Handler: a.Handler(),
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.Serve(l)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("unable to serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	a.logger.Info("server listening", slog.String("addr", l.Addr().String()), slog.String("base path", a.basePath))
	return g.Wait()
}

func (a *App) Start(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("unable to listen on %s: %w", addr, err)
	}
	return a.Serve(ctx, l)
}
