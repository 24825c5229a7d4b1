package app

import (
	"github.com/vancomm/minefield/internal/handlers"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(a.logger, a.store, a.defaults, a.maxCells, a.ws)
	p := a.basePath

	a.router.HandleFunc("POST "+p+"/game", game.NewGame)
	a.router.HandleFunc("GET "+p+"/game/{id}", game.Fetch)
	a.router.HandleFunc("DELETE "+p+"/game/{id}", game.Delete)
	a.router.HandleFunc("POST "+p+"/game/{id}/reveal", game.Reveal)
	a.router.HandleFunc("POST "+p+"/game/{id}/flag", game.Flag)
	a.router.HandleFunc("POST "+p+"/game/{id}/restart", game.Restart)
	a.router.HandleFunc("GET "+p+"/game/{id}/connect", game.ConnectWS)
}
