package repository

import (
	"context"

	"movieapi/internal/model"
)

// MovieRepository defines data access for catalog documents.
// Persistence only; no business rules live here.
type MovieRepository interface {
	// Create inserts a new movie document. The caller assigns the ID.
	Create(ctx context.Context, movie *model.Movie) (*model.Movie, error)

	// List returns the listing projection of every movie matching the filter.
	// A zero-value filter matches every movie.
	List(ctx context.Context, f MovieFilter) ([]model.MovieListing, error)
}

// MovieFilter holds optional equality predicates for List.
type MovieFilter struct {
	// ReleaseYear matches document release_year by exact string equality when non-empty.
	ReleaseYear string
}
