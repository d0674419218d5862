package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/theo/arena-forge/internal/api/handlers"
	"github.com/theo/arena-forge/internal/api/middleware"
	"github.com/theo/arena-forge/internal/config"
	"github.com/theo/arena-forge/internal/kv"
	"github.com/theo/arena-forge/internal/service"
	"github.com/theo/arena-forge/internal/websocket"
)

// Per-minute request caps for the write-heavy game actions.
const (
	limitRunStart   = 15
	limitRunChoice  = 120
	limitRunFinish  = 30
	limitArenaEnter = 30
)

func NewRouter(services *service.Services, hub *websocket.Hub, store kv.Store, cfg *config.Config, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	runHandler := handlers.NewRunHandler(services.Run)
	arenaHandler := handlers.NewArenaHandler(services.Arena)
	playerHandler := handlers.NewPlayerHandler(services.Player)
	wsHandler := handlers.NewWebSocketHandler(hub, cfg.SessionSecret, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.Identity(cfg.SessionSecret))

			r.Route("/run", func(r chi.Router) {
				r.With(middleware.RateLimit(store, "run_start", limitRunStart)).
					Post("/start", runHandler.Start)
				r.With(middleware.RateLimit(store, "run_choice", limitRunChoice)).
					Post("/choice", runHandler.Choice)
				r.With(middleware.RateLimit(store, "run_finish", limitRunFinish)).
					Post("/finish", runHandler.Finish)
			})

			r.Get("/builds", runHandler.Builds)
			r.Get("/profile", playerHandler.Profile)

			r.Route("/arena/{arenaType}", func(r chi.Router) {
				r.With(middleware.RateLimit(store, "arena_enter", limitArenaEnter)).
					Post("/enter", arenaHandler.Enter)
				r.Get("/state", arenaHandler.State)
				r.Get("/leaderboard", arenaHandler.Leaderboard)
			})
		})

		r.Get("/ws", wsHandler.Handle)
	})

	return r
}
