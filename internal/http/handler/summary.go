package handler

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"movieapi/internal/service"
)

const (
	msgMovieOrYearRequired = "Movie or year missing from request body"
	msgInferenceFailed     = "Oops! Something went wrong while talking to the AI. Please try again later."
	msgEmptySummary        = "Oops! Our AI couldn't summarize that film. Try again in a bit!"
)

// summaryRequest is the body of POST /generate-summary.
type summaryRequest struct {
	Movie string     `json:"movie"`
	Year  flexString `json:"year"`
}

// flexString accepts a JSON string or number.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// GenerateSummary asks the inference endpoint for a short plot summary.
// An empty model answer is reported with status 200 and an apology body.
//
// @Summary Generate a plot summary
// @Tags summary
// @Accept json
// @Produce plain
// @Param request body summaryRequest true "Movie and release year"
// @Success 200 {string} string
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /generate-summary [post]
func GenerateSummary(svc service.SummaryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req summaryRequest
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return writeText(c, fiber.StatusBadRequest, msgMovieOrYearRequired)
		}
		if req.Movie == "" || req.Year == "" {
			return writeText(c, fiber.StatusBadRequest, msgMovieOrYearRequired)
		}

		summary, err := svc.Generate(c.UserContext(), req.Movie, string(req.Year))
		switch {
		case err == nil:
			return writeText(c, fiber.StatusOK, summary)
		case errors.Is(err, service.ErrMovieOrYearRequired):
			return writeText(c, fiber.StatusBadRequest, msgMovieOrYearRequired)
		case errors.Is(err, service.ErrEmptySummary):
			return writeText(c, fiber.StatusOK, msgEmptySummary)
		default:
			return writeText(c, fiber.StatusInternalServerError, msgInferenceFailed)
		}
	}
}
