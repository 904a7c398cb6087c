package routes

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/chessgrid/chess-stats/handlers"
	"github.com/chessgrid/chess-stats/middleware"
)

// SetupRoutes wires the read-only API surface onto the router.
func SetupRoutes(
	router *chi.Mux,
	logger *slog.Logger,
	allowedOrigins []string,
	tournamentHandler *handlers.TournamentHandler,
	rankingHandler *handlers.RankingHandler,
	playerHandler *handlers.PlayerHandler,
	forumHandler *handlers.ForumHandler,
) {
	router.Use(chiMiddleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	router.Route("/api", func(r chi.Router) {
		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/", tournamentHandler.OverviewHandler)
			r.Get("/list", tournamentHandler.ListHandler)
			r.Get("/{tournamentID}", tournamentHandler.GetByIDHandler)
			r.Get("/{tournamentID}/standings", tournamentHandler.StandingsHandler)
		})

		r.Get("/rankings", rankingHandler.CategoriesHandler)

		r.Route("/players", func(r chi.Router) {
			r.Get("/", playerHandler.ListHandler)
			r.Get("/{playerID}", playerHandler.GetByIDHandler)
		})

		r.Get("/forum/posts", forumHandler.RecentHandler)
	})
}
