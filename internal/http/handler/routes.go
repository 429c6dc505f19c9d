package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"movieapi/internal/service"
)

// Pinger reports whether a dependency is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db Pinger, movieSvc service.MovieService, summarySvc service.SummaryService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/add-movie", AddMovie(movieSvc))
	app.Get("/get_movies", ListMovies(movieSvc))
	app.Get("/get_movies_by_year", ListMoviesByYear(movieSvc))
	app.Post("/generate-summary", GenerateSummary(summarySvc))
}
