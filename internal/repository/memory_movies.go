package repository

import (
	"context"
	"errors"
	"time"

	"github.com/NairoD34/bookmymovie/internal/domain"
)

// DefaultCatalogLatency approximates the round trip of the catalog source the
// in-memory store stands in for.
const DefaultCatalogLatency = time.Second

type MemoryMovieRepository struct {
	movies  []*domain.Movie
	latency time.Duration
	failure error
}

type MemoryMovieOption func(*MemoryMovieRepository)

// WithCatalogLatency overrides the simulated fetch latency. Tests pass zero.
func WithCatalogLatency(d time.Duration) MemoryMovieOption {
	return func(r *MemoryMovieRepository) {
		r.latency = d
	}
}

// WithCatalogFailure makes every operation fail with err after the simulated
// latency. A failing source must surface the error, never an empty catalog.
func WithCatalogFailure(err error) MemoryMovieOption {
	return func(r *MemoryMovieRepository) {
		r.failure = err
	}
}

func NewMemoryMovieRepository(movies []*domain.Movie, opts ...MemoryMovieOption) *MemoryMovieRepository {
	r := &MemoryMovieRepository{
		movies:  movies,
		latency: DefaultCatalogLatency,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *MemoryMovieRepository) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	if err := r.simulateFetch(ctx); err != nil {
		return nil, err
	}

	movies := make([]*domain.Movie, len(r.movies))
	copy(movies, r.movies)

	return movies, nil
}

func (r *MemoryMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	if err := r.simulateFetch(ctx); err != nil {
		return nil, err
	}

	for _, movie := range r.movies {
		if movie.ID == id {
			return movie, nil
		}
	}

	return nil, domain.ErrRecordNotFound
}

func (r *MemoryMovieRepository) simulateFetch(ctx context.Context) error {
	timer := time.NewTimer(r.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return domain.ErrFetchTimeout
		}
		return ctx.Err()
	case <-timer.C:
	}

	return r.failure
}
