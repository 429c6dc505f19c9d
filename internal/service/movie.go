package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"movieapi/internal/model"
	"movieapi/internal/repository"
	"movieapi/internal/storage"
)

var (
	ErrPosterRequired   = errors.New("missing required argument: poster")
	ErrPosterUpload     = errors.New("poster upload failed")
	ErrMissingFields    = errors.New("missing one or multiple required arguments")
	ErrInvalidPosterURL = errors.New("invalid movie poster url")
	ErrCatalogWrite     = errors.New("catalog write failed")
	ErrYearRequired     = errors.New("year is required")
	ErrStoreQuery       = errors.New("catalog query failed")
)

// AddMovieInput carries one intake request: the poster part and the metadata form fields.
type AddMovieInput struct {
	Poster            io.Reader
	PosterFilename    string
	PosterContentType string
	Title             string
	Year              string
	Genre             string
}

// MovieService defines the catalog use cases.
type MovieService interface {
	// AddMovie uploads the poster, then stores the catalog record.
	// The record is never written unless the upload succeeded. When the metadata is rejected
	// after a successful upload the poster is left in place unless cleanup is enabled.
	AddMovie(ctx context.Context, in AddMovieInput) (*model.Movie, error)

	// ListMovies returns every movie in the catalog.
	ListMovies(ctx context.Context) ([]model.MovieListing, error)

	// ListMoviesByYear returns the movies whose release year equals year exactly.
	ListMoviesByYear(ctx context.Context, year string) ([]model.MovieListing, error)
}

// MovieServiceOption customizes the movie service.
type MovieServiceOption func(*movieService)

// WithPosterCleanupOnReject deletes the uploaded poster when the rest of the request is rejected.
func WithPosterCleanupOnReject(enabled bool) MovieServiceOption {
	return func(s *movieService) { s.cleanupOnReject = enabled }
}

// WithLogger sets the logger used by the service.
func WithLogger(log zerolog.Logger) MovieServiceOption {
	return func(s *movieService) { s.log = log }
}

type movieService struct {
	store           storage.Storage
	repo            repository.MovieRepository
	log             zerolog.Logger
	cleanupOnReject bool
	newID           func() string
}

// NewMovieService constructs a new MovieService.
func NewMovieService(store storage.Storage, repo repository.MovieRepository, opts ...MovieServiceOption) MovieService {
	s := &movieService{
		store: store,
		repo:  repo,
		log:   zerolog.Nop(),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("component", "movie_service").Logger()
	return s
}

func (s *movieService) AddMovie(ctx context.Context, in AddMovieInput) (*model.Movie, error) {
	if in.Poster == nil {
		return nil, ErrPosterRequired
	}

	obj, err := s.uploadPoster(ctx, in)
	if err != nil {
		// Every read or upload failure collapses into ErrPosterUpload.
		s.log.Warn().Err(err).Str("filename", in.PosterFilename).Msg("poster upload rejected")
		return nil, fmt.Errorf("%w: %w", ErrPosterUpload, err)
	}
	s.log.Info().Str("poster_url", obj.URL).Msg("poster uploaded")

	if in.Title == "" || in.Year == "" || in.Genre == "" {
		s.rejectUploaded(ctx, obj.Key)
		return nil, ErrMissingFields
	}
	if obj.URL == "" {
		s.rejectUploaded(ctx, obj.Key)
		return nil, ErrInvalidPosterURL
	}

	movie := &model.Movie{
		ID:          s.newID(),
		Title:       in.Title,
		ReleaseYear: in.Year,
		Genre:       in.Genre,
		Poster:      obj.URL,
	}
	stored, err := s.repo.Create(ctx, movie)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogWrite, err)
	}
	return stored, nil
}

func (s *movieService) uploadPoster(ctx context.Context, in AddMovieInput) (storage.ObjectInfo, error) {
	content, err := io.ReadAll(in.Poster)
	if err != nil {
		return storage.ObjectInfo{}, fmt.Errorf("read poster: %w", err)
	}
	s.log.Info().
		Str("filename", in.PosterFilename).
		Int("size", len(content)).
		Msg("received poster")

	contentType := in.PosterContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return s.store.Put(ctx, in.PosterFilename, bytes.NewReader(content), storage.PutObjectOptions{
		Size:        int64(len(content)),
		ContentType: contentType,
		Overwrite:   false,
	})
}

// rejectUploaded runs after a successful upload whose request was then rejected.
// By default the poster stays orphaned in the bucket.
func (s *movieService) rejectUploaded(ctx context.Context, key string) {
	if !s.cleanupOnReject {
		s.log.Warn().Str("key", key).Msg("request rejected after upload, poster left orphaned")
		return
	}
	if err := s.store.Delete(ctx, key); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("orphaned poster cleanup failed")
	}
}

func (s *movieService) ListMovies(ctx context.Context) ([]model.MovieListing, error) {
	items, err := s.repo.List(ctx, repository.MovieFilter{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreQuery, err)
	}
	return items, nil
}

func (s *movieService) ListMoviesByYear(ctx context.Context, year string) ([]model.MovieListing, error) {
	if year == "" {
		return nil, ErrYearRequired
	}
	items, err := s.repo.List(ctx, repository.MovieFilter{ReleaseYear: year})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreQuery, err)
	}
	return items, nil
}
