package service

import (
	"context"
	"errors"
	"testing"

	llmMocks "movieapi/internal/inference/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSummaryPrompt(t *testing.T) {
	got := SummaryPrompt("Inception", "2010")

	assert.Equal(t, "Write a short summary of the movie Inception released in 2010. "+
		"Focus only on the plot, and avoid mentioning actors, directors, source material, or production details. "+
		"The summary must be concise and no longer than 4 sentences.", got)
}

func TestSummaryService_Generate(t *testing.T) {
	ctx := context.Background()
	const model = "meta-llama/Llama-3.1-8B-Instruct"

	tests := []struct {
		name       string
		movie      string
		year       string
		setupMocks func(m *llmMocks.MockCompleter)
		want       string
		wantErr    error
	}{
		{
			name:  "happy path",
			movie: "Inception",
			year:  "2010",
			setupMocks: func(m *llmMocks.MockCompleter) {
				m.On("Complete", ctx, model, SummaryPrompt("Inception", "2010"), DefaultSummaryMaxTokens).
					Return("A thief enters dreams.", nil)
			},
			want: "A thief enters dreams.",
		},
		{
			name:       "validation - missing movie",
			year:       "2010",
			setupMocks: func(m *llmMocks.MockCompleter) {},
			wantErr:    ErrMovieOrYearRequired,
		},
		{
			name:       "validation - missing year",
			movie:      "Inception",
			setupMocks: func(m *llmMocks.MockCompleter) {},
			wantErr:    ErrMovieOrYearRequired,
		},
		{
			name:  "provider error is not echoed",
			movie: "Inception",
			year:  "2010",
			setupMocks: func(m *llmMocks.MockCompleter) {
				m.On("Complete", ctx, model, mock.Anything, DefaultSummaryMaxTokens).
					Return("", errors.New("novita: quota exceeded for key hf_secret"))
			},
			wantErr: ErrInference,
		},
		{
			name:  "empty content",
			movie: "Inception",
			year:  "2010",
			setupMocks: func(m *llmMocks.MockCompleter) {
				m.On("Complete", ctx, model, mock.Anything, DefaultSummaryMaxTokens).Return("  ", nil)
			},
			wantErr: ErrEmptySummary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(llmMocks.MockCompleter)
			svc := NewSummaryService(m, model, 0, zerolog.Nop())

			tt.setupMocks(m)

			got, err := svc.Generate(ctx, tt.movie, tt.year)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.NotContains(t, err.Error(), "hf_secret")
				assert.Empty(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			m.AssertExpectations(t)
			if errors.Is(tt.wantErr, ErrMovieOrYearRequired) {
				m.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}
