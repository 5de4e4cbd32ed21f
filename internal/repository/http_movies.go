package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/NairoD34/bookmymovie/internal/domain"
)

// HTTPMovieRepository fetches the catalog from a JSON API at a configurable
// base URL. It is the real-source counterpart of MemoryMovieRepository and
// satisfies the same interface.
type HTTPMovieRepository struct {
	baseURL string
	client  *http.Client
}

func NewHTTPMovieRepository(baseURL string, timeout time.Duration) *HTTPMovieRepository {
	return &HTTPMovieRepository{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type movieDocument struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	Poster      string  `json:"poster"`
	Duration    int     `json:"duration"`
	Director    string  `json:"director"`
}

func (r *HTTPMovieRepository) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	var docs []movieDocument

	err := r.getJSON(ctx, r.baseURL+"/movies", &docs)
	if err != nil {
		return nil, err
	}

	movies := make([]*domain.Movie, len(docs))
	for i, doc := range docs {
		movies[i] = doc.toDomain()
	}

	return movies, nil
}

func (r *HTTPMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	var doc movieDocument

	err := r.getJSON(ctx, fmt.Sprintf("%s/movies/%d", r.baseURL, id), &doc)
	if err != nil {
		return nil, err
	}

	return doc.toDomain(), nil
}

func (r *HTTPMovieRepository) getJSON(ctx context.Context, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return domain.ErrFetchTimeout
		}
		return fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrRecordNotFound
	case resp.StatusCode >= http.StatusBadRequest:
		return fmt.Errorf("%w: unexpected status %d", domain.ErrFetchFailed, resp.StatusCode)
	}

	err = json.NewDecoder(resp.Body).Decode(dst)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}

	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var urlErr *url.Error
	return errors.As(err, &urlErr) && urlErr.Timeout()
}

func (d movieDocument) toDomain() *domain.Movie {
	return &domain.Movie{
		ID:          d.ID,
		Title:       d.Title,
		Category:    domain.Category(d.Category),
		Rating:      d.Rating,
		Description: d.Description,
		Poster:      d.Poster,
		Duration:    d.Duration,
		Director:    d.Director,
	}
}
