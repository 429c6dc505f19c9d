package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"movieapi/internal/inference"
)

var (
	ErrMovieOrYearRequired = errors.New("movie or year missing")
	ErrInference           = errors.New("summary generation failed")
	ErrEmptySummary        = errors.New("summary generation returned no content")
)

// DefaultSummaryMaxTokens bounds the length of a generated summary.
const DefaultSummaryMaxTokens = 240

const summaryPromptTemplate = "Write a short summary of the movie %s released in %s. " +
	"Focus only on the plot, and avoid mentioning actors, directors, source material, or production details. " +
	"The summary must be concise and no longer than 4 sentences."

// SummaryPrompt renders the fixed plot-summary prompt.
func SummaryPrompt(movie, year string) string {
	return fmt.Sprintf(summaryPromptTemplate, movie, year)
}

// SummaryService generates plot summaries through the inference endpoint.
type SummaryService interface {
	// Generate returns the model output verbatim. ErrEmptySummary means the call
	// succeeded but produced no text.
	Generate(ctx context.Context, movie, year string) (string, error)
}

type summaryService struct {
	llm       inference.Completer
	model     string
	maxTokens int
	log       zerolog.Logger
}

// NewSummaryService constructs a new SummaryService for the given model.
func NewSummaryService(llm inference.Completer, model string, maxTokens int, log zerolog.Logger) SummaryService {
	if maxTokens <= 0 {
		maxTokens = DefaultSummaryMaxTokens
	}
	return &summaryService{
		llm:       llm,
		model:     model,
		maxTokens: maxTokens,
		log:       log.With().Str("component", "summary_service").Logger(),
	}
}

func (s *summaryService) Generate(ctx context.Context, movie, year string) (string, error) {
	if movie == "" || year == "" {
		return "", ErrMovieOrYearRequired
	}

	out, err := s.llm.Complete(ctx, s.model, SummaryPrompt(movie, year), s.maxTokens)
	if err != nil {
		// The provider error stays in the logs only.
		s.log.Error().Err(err).Str("movie", movie).Str("year", year).Msg("failed to generate movie summary")
		return "", ErrInference
	}
	if strings.TrimSpace(out) == "" {
		return "", ErrEmptySummary
	}
	return out, nil
}
