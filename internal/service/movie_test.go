package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"movieapi/internal/model"
	"movieapi/internal/repository"
	repoMocks "movieapi/internal/repository/mocks"
	"movieapi/internal/storage"
	storeMocks "movieapi/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const posterURL = "http://localhost:9000/movie-posters/matrix.jpg"

func validInput() AddMovieInput {
	return AddMovieInput{
		Poster:            strings.NewReader("jpeg-bytes"),
		PosterFilename:    "matrix.jpg",
		PosterContentType: "image/jpeg",
		Title:             "The Matrix",
		Year:              "1999",
		Genre:             "Sci-Fi",
	}
}

var posterOpts = storage.PutObjectOptions{Size: 10, ContentType: "image/jpeg", Overwrite: false}

func TestMovieService_AddMovie(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		input      func() AddMovieInput
		cleanup    bool
		setupMocks func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockMovieRepository)
		wantErr    error
		check      func(t *testing.T, movie *model.Movie)
	}{
		{
			name:  "happy path",
			input: validInput,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockMovieRepository) {
				mStore.On("Put", ctx, "matrix.jpg", mock.Anything, posterOpts).
					Return(storage.ObjectInfo{Key: "matrix.jpg", URL: posterURL}, nil)
				mRepo.On("Create", ctx, &model.Movie{
					ID:          "fixed-id",
					Title:       "The Matrix",
					ReleaseYear: "1999",
					Genre:       "Sci-Fi",
					Poster:      posterURL,
				}).Return(&model.Movie{ID: "fixed-id", Title: "The Matrix", ReleaseYear: "1999", Genre: "Sci-Fi", Poster: posterURL}, nil)
			},
			check: func(t *testing.T, movie *model.Movie) {
				assert.Equal(t, "fixed-id", movie.ID)
				assert.Contains(t, movie.Poster, "matrix.jpg")
			},
		},
		{
			name: "missing content type defaults to octet-stream",
			input: func() AddMovieInput {
				in := validInput()
				in.PosterContentType = ""
				return in
			},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockMovieRepository) {
				mStore.On("Put", ctx, "matrix.jpg", mock.Anything, storage.PutObjectOptions{Size: 10, ContentType: "application/octet-stream"}).
					Return(storage.ObjectInfo{Key: "matrix.jpg", URL: posterURL}, nil)
				mRepo.On("Create", ctx, mock.Anything).Return(&model.Movie{ID: "fixed-id"}, nil)
			},
		},
		{
			name: "missing poster makes no store call",
			input: func() AddMovieInput {
				in := validInput()
				in.Poster = nil
				return in
			},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockMovieRepository) {},
			wantErr:    ErrPosterRequired,
		},
		{
			name:  "existing poster key is rejected without catalog write",
			input: validInput,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockMovieRepository) {
				mStore.On("Put", ctx, "matrix.jpg", mock.Anything, posterOpts).
					Return(storage.ObjectInfo{}, storage.ErrObjectExists)
			},
			wantErr: ErrPosterUpload,
		},
		{
			name: "poster read failure is an upload failure",
			input: func() AddMovieInput {
				in := validInput()
				in.Poster = iotest.ErrReader(errors.New("unexpected EOF"))
				return in
			},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockMovieRepository) {},
			wantErr:    ErrPosterUpload,
		},
		{
			name: "missing title leaves poster orphaned",
			input: func() AddMovieInput {
				in := validInput()
				in.Title = ""
				return in
			},
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockMovieRepository) {
				mStore.On("Put", ctx, "matrix.jpg", mock.Anything, posterOpts).
					Return(storage.ObjectInfo{Key: "matrix.jpg", URL: posterURL}, nil)
			},
			wantErr: ErrMissingFields,
		},
		{
			name: "missing genre with cleanup enabled deletes poster",
			input: func() AddMovieInput {
				in := validInput()
				in.Genre = ""
				return in
			},
			cleanup: true,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockMovieRepository) {
				mStore.On("Put", ctx, "matrix.jpg", mock.Anything, posterOpts).
					Return(storage.ObjectInfo{Key: "matrix.jpg", URL: posterURL}, nil)
				mStore.On("Delete", ctx, "matrix.jpg").Return(nil)
			},
			wantErr: ErrMissingFields,
		},
		{
			name: "cleanup failure still reports missing fields",
			input: func() AddMovieInput {
				in := validInput()
				in.Year = ""
				return in
			},
			cleanup: true,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockMovieRepository) {
				mStore.On("Put", ctx, "matrix.jpg", mock.Anything, posterOpts).
					Return(storage.ObjectInfo{Key: "matrix.jpg", URL: posterURL}, nil)
				mStore.On("Delete", ctx, "matrix.jpg").Return(errors.New("delete fail"))
			},
			wantErr: ErrMissingFields,
		},
		{
			name:  "empty poster url",
			input: validInput,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockMovieRepository) {
				mStore.On("Put", ctx, "matrix.jpg", mock.Anything, posterOpts).
					Return(storage.ObjectInfo{Key: "matrix.jpg"}, nil)
			},
			wantErr: ErrInvalidPosterURL,
		},
		{
			name:  "catalog write failure",
			input: validInput,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockMovieRepository) {
				mStore.On("Put", ctx, "matrix.jpg", mock.Anything, posterOpts).
					Return(storage.ObjectInfo{Key: "matrix.jpg", URL: posterURL}, nil)
				mRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErr: ErrCatalogWrite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockMovieRepository)
			svc := NewMovieService(mStore, mRepo, WithPosterCleanupOnReject(tt.cleanup))
			svc.(*movieService).newID = func() string { return "fixed-id" }

			tt.setupMocks(mStore, mRepo)

			movie, err := svc.AddMovie(ctx, tt.input())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, movie)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, movie)
				if tt.check != nil {
					tt.check(t, movie)
				}
			}

			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
			if tt.wantErr != nil && !errors.Is(tt.wantErr, ErrCatalogWrite) {
				mRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
			if !tt.cleanup {
				mStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestMovieService_AddMovie_UploadErrorKeepsCause(t *testing.T) {
	ctx := context.Background()
	mStore := new(storeMocks.MockStorage)
	mRepo := new(repoMocks.MockMovieRepository)
	svc := NewMovieService(mStore, mRepo)

	mStore.On("Put", ctx, "matrix.jpg", mock.Anything, posterOpts).
		Return(storage.ObjectInfo{}, storage.ErrObjectExists)

	_, err := svc.AddMovie(ctx, validInput())

	assert.ErrorIs(t, err, ErrPosterUpload)
	assert.ErrorIs(t, err, storage.ErrObjectExists)
}

func TestMovieService_AddMovie_UploadsFullPayload(t *testing.T) {
	ctx := context.Background()
	mStore := new(storeMocks.MockStorage)
	mRepo := new(repoMocks.MockMovieRepository)
	svc := NewMovieService(mStore, mRepo)

	var uploaded string
	mStore.On("Put", ctx, "matrix.jpg", mock.Anything, posterOpts).
		Run(func(args mock.Arguments) {
			b, _ := io.ReadAll(args.Get(2).(io.Reader))
			uploaded = string(b)
		}).
		Return(storage.ObjectInfo{Key: "matrix.jpg", URL: posterURL}, nil)
	mRepo.On("Create", ctx, mock.Anything).Return(&model.Movie{ID: "id"}, nil)

	_, err := svc.AddMovie(ctx, validInput())

	assert.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", uploaded)
}

func TestMovieService_ListMovies(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockMovieRepository)
		svc := NewMovieService(nil, mRepo)

		want := []model.MovieListing{{Title: "The Matrix", ReleaseYear: "1999"}, {Title: "Inception", ReleaseYear: "2010"}}
		mRepo.On("List", ctx, repository.MovieFilter{}).Return(want, nil)

		got, err := svc.ListMovies(ctx)

		assert.NoError(t, err)
		assert.Equal(t, want, got)
		mRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockMovieRepository)
		svc := NewMovieService(nil, mRepo)

		mRepo.On("List", ctx, repository.MovieFilter{}).Return(nil, errors.New("db fail"))

		got, err := svc.ListMovies(ctx)

		assert.ErrorIs(t, err, ErrStoreQuery)
		assert.Contains(t, err.Error(), "db fail")
		assert.Nil(t, got)
	})
}

func TestMovieService_ListMoviesByYear(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		year       string
		setupMocks func(mRepo *repoMocks.MockMovieRepository)
		wantErr    error
		wantLen    int
	}{
		{
			name: "happy path",
			year: "1999",
			setupMocks: func(mRepo *repoMocks.MockMovieRepository) {
				mRepo.On("List", ctx, repository.MovieFilter{ReleaseYear: "1999"}).
					Return([]model.MovieListing{{Title: "The Matrix", ReleaseYear: "1999"}}, nil)
			},
			wantLen: 1,
		},
		{
			name:       "validation - empty year",
			year:       "",
			setupMocks: func(mRepo *repoMocks.MockMovieRepository) {},
			wantErr:    ErrYearRequired,
		},
		{
			name: "repository error",
			year: "1999",
			setupMocks: func(mRepo *repoMocks.MockMovieRepository) {
				mRepo.On("List", ctx, repository.MovieFilter{ReleaseYear: "1999"}).Return(nil, errors.New("db fail"))
			},
			wantErr: ErrStoreQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockMovieRepository)
			svc := NewMovieService(nil, mRepo)

			tt.setupMocks(mRepo)

			got, err := svc.ListMoviesByYear(ctx, tt.year)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Len(t, got, tt.wantLen)
			}
			mRepo.AssertExpectations(t)
		})
	}
}
