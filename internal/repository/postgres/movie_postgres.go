package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"movieapi/internal/model"
	"movieapi/internal/repository"
)

// MoviePostgres is a PostgreSQL implementation of repository.MovieRepository.
// Each movie is one JSONB document; queries are parameterized and contain no business logic.
type MoviePostgres struct {
	db *sql.DB
}

// NewMoviePostgres creates a new MoviePostgres repository.
func NewMoviePostgres(db *sql.DB) *MoviePostgres {
	return &MoviePostgres{db: db}
}

var _ repository.MovieRepository = (*MoviePostgres)(nil)

// Create inserts a movie document and returns the stored record.
func (r *MoviePostgres) Create(ctx context.Context, movie *model.Movie) (*model.Movie, error) {
	doc, err := json.Marshal(movie)
	if err != nil {
		return nil, fmt.Errorf("encode movie document: %w", err)
	}

	const q = `
		INSERT INTO movies (id, document)
		VALUES ($1, $2::jsonb)
		RETURNING document
	`
	var stored []byte
	if err := r.db.QueryRowContext(ctx, q, movie.ID, string(doc)).Scan(&stored); err != nil {
		return nil, err
	}

	var out model.Movie
	if err := json.Unmarshal(stored, &out); err != nil {
		return nil, fmt.Errorf("decode movie document: %w", err)
	}
	return &out, nil
}

// List returns movie listings, optionally filtered by release year.
func (r *MoviePostgres) List(ctx context.Context, f repository.MovieFilter) ([]model.MovieListing, error) {
	const qAll = `
		SELECT document
		FROM movies
		ORDER BY created_at, id
	`
	const qByYear = `
		SELECT document
		FROM movies
		WHERE document->>'release_year' = $1
		ORDER BY created_at, id
	`

	var (
		rows *sql.Rows
		err  error
	)
	if f.ReleaseYear != "" {
		rows, err = r.db.QueryContext(ctx, qByYear, f.ReleaseYear)
	} else {
		rows, err = r.db.QueryContext(ctx, qAll)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.MovieListing, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var m model.Movie
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("decode movie document: %w", err)
		}
		items = append(items, m.Listing())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
