package mocks

import (
	"context"

	"movieapi/internal/model"
	"movieapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) AddMovie(ctx context.Context, in service.AddMovieInput) (*model.Movie, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Movie), args.Error(1)
}

func (m *MockMovieService) ListMovies(ctx context.Context) ([]model.MovieListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MovieListing), args.Error(1)
}

func (m *MockMovieService) ListMoviesByYear(ctx context.Context, year string) ([]model.MovieListing, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MovieListing), args.Error(1)
}
