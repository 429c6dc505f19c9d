package handler

import (
	"errors"
	"fmt"
	"mime"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"movieapi/internal/service"
)

const (
	msgPosterRequired   = "Missing required argument: poster."
	msgPosterUpload     = "Could not upload movie poster."
	msgMissingFields    = "Missing one or multiple required arguments."
	msgInvalidPosterURL = "Invalid movie poster url."
	msgCatalogWrite     = "Could not save movie."
	msgYearRequired     = "Missing 'year' query parameter."
)

// AddMovie handles the multipart intake request: poster file plus title, year and genre fields.
//
// @Summary Add a movie
// @Tags movies
// @Accept multipart/form-data
// @Produce plain
// @Param poster formData file true "Poster image"
// @Param title formData string true "Title"
// @Param year formData string true "Release year"
// @Param genre formData string true "Genre"
// @Success 200 {string} string
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /add-movie [post]
func AddMovie(svc service.MovieService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		log := zerolog.Ctx(c.UserContext())

		fh, err := c.FormFile("poster")
		if err != nil {
			return writeText(c, fiber.StatusBadRequest, msgPosterRequired)
		}

		f, err := fh.Open()
		if err != nil {
			log.Warn().Err(err).Str("filename", posterFilename(fh)).Msg("cannot open uploaded poster")
			return writeText(c, fiber.StatusBadRequest, msgPosterUpload)
		}
		defer f.Close()

		movie, err := svc.AddMovie(c.UserContext(), service.AddMovieInput{
			Poster:            f,
			PosterFilename:    posterFilename(fh),
			PosterContentType: fh.Header.Get("Content-Type"),
			Title:             c.FormValue("title"),
			Year:              c.FormValue("year"),
			Genre:             c.FormValue("genre"),
		})
		switch {
		case err == nil:
			return writeText(c, fiber.StatusOK, fmt.Sprintf("Movie '%s' added successfully 📽️", movie.Title))
		case errors.Is(err, service.ErrPosterRequired):
			return writeText(c, fiber.StatusBadRequest, msgPosterRequired)
		case errors.Is(err, service.ErrPosterUpload):
			return writeText(c, fiber.StatusBadRequest, msgPosterUpload)
		case errors.Is(err, service.ErrMissingFields):
			return writeText(c, fiber.StatusBadRequest, msgMissingFields)
		case errors.Is(err, service.ErrInvalidPosterURL):
			return writeText(c, fiber.StatusBadRequest, msgInvalidPosterURL)
		default:
			log.Error().Err(err).Msg("add movie failed")
			return writeText(c, fiber.StatusInternalServerError, msgCatalogWrite)
		}
	}
}

// posterFilename returns the filename exactly as the client sent it.
// multipart.FileHeader.Filename has already been reduced to its base name.
func posterFilename(fh *multipart.FileHeader) string {
	_, params, err := mime.ParseMediaType(fh.Header.Get("Content-Disposition"))
	if err == nil && params["filename"] != "" {
		return params["filename"]
	}
	return fh.Filename
}

// ListMovies returns every movie in the catalog.
//
// @Summary List movies
// @Tags movies
// @Produce json
// @Success 200 {array} model.MovieListing
// @Failure 400 {string} string
// @Router /get_movies [get]
func ListMovies(svc service.MovieService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListMovies(c.UserContext())
		if err != nil {
			zerolog.Ctx(c.UserContext()).Error().Err(err).Msg("list movies failed")
			return writeText(c, fiber.StatusBadRequest, "Error: "+storeMessage(err))
		}
		return c.JSON(items)
	}
}

// storeMessage returns the store's own error text without the service sentinel prefix.
func storeMessage(err error) string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if !errors.Is(e, service.ErrStoreQuery) {
				return e.Error()
			}
		}
	}
	return err.Error()
}

// ListMoviesByYear returns the movies released in the requested year.
//
// @Summary List movies by release year
// @Tags movies
// @Produce json
// @Param year query string true "Release year (exact match)"
// @Success 200 {array} model.MovieListing
// @Failure 400 {string} string
// @Router /get_movies_by_year [get]
func ListMoviesByYear(svc service.MovieService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year := c.Query("year")
		if year == "" {
			return writeText(c, fiber.StatusBadRequest, msgYearRequired)
		}

		items, err := svc.ListMoviesByYear(c.UserContext(), year)
		if err != nil {
			if errors.Is(err, service.ErrYearRequired) {
				return writeText(c, fiber.StatusBadRequest, msgYearRequired)
			}
			zerolog.Ctx(c.UserContext()).Error().Err(err).Str("year", year).Msg("list movies by year failed")
			return writeText(c, fiber.StatusBadRequest, "Error: "+storeMessage(err))
		}
		return c.JSON(items)
	}
}
