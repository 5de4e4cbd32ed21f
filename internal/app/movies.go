package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/NairoD34/bookmymovie/api"
	"github.com/NairoD34/bookmymovie/internal/domain"
)

const (
	DefaultCategory = domain.CategoryAll

	// summaryDescriptionLength bounds the description shown on movie cards.
	summaryDescriptionLength = 100

	// placeholderPoster is served when a movie has no poster of its own.
	placeholderPoster = "/placeholder.jpg"
)

func (app *application) GetMovies(w http.ResponseWriter, r *http.Request, params api.GetMoviesParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), app.config.catalog.timeout)
	defer cancel()

	movies, err := app.movieRepo.GetAll(ctx)
	if err != nil {
		app.catalogFailure(w, r, err)
		return
	}

	term, category := "", DefaultCategory
	if params.Term != nil {
		term = *params.Term
	}
	if params.Category != nil {
		category = *params.Category
	}

	filtered := domain.FilterMovies(movies, term, category)
	tagged := domain.TagRecommended(filtered)

	resp := api.MovieListResponse{
		Movies: toMovieSummaries(tagged),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetMovieById(w http.ResponseWriter, r *http.Request, movieId int) {
	ctx, cancel := context.WithTimeout(r.Context(), app.config.catalog.timeout)
	defer cancel()

	movie, err := app.movieRepo.GetById(ctx, movieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.catalogFailure(w, r, err)
		}

		return
	}

	resp := toMovieDetail(movie)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// catalogFailure maps catalog source errors onto upstream-failure statuses.
// A failing source must never degrade into an empty 200.
func (app *application) catalogFailure(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrFetchTimeout):
		app.catalogTimeoutResponse(w, r, err)
	case errors.Is(err, domain.ErrFetchFailed):
		app.catalogErrorResponse(w, r, err)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func getMoviesParams(r *http.Request) api.GetMoviesParams {
	params := api.GetMoviesParams{}

	if term := r.URL.Query().Get("term"); term != "" {
		params.Term = &term
	}
	if category := r.URL.Query().Get("category"); category != "" {
		params.Category = &category
	}

	return params
}

func toMovieSummaries(movies []*domain.Movie) []api.MovieSummary {
	summaries := make([]api.MovieSummary, len(movies))

	for i, movie := range movies {
		summaries[i] = api.MovieSummary{
			Id:          movie.ID,
			Title:       movie.Title,
			Category:    string(movie.Category),
			Rating:      movie.Rating,
			Stars:       domain.FormatRating(movie.Rating),
			Description: truncate(movie.Description, summaryDescriptionLength),
			Poster:      posterOrPlaceholder(movie.Poster),
			Recommended: movie.Recommended,
		}
	}

	return summaries
}

func toMovieDetail(movie *domain.Movie) api.MovieDetailResponse {
	tagged := domain.TagRecommended([]*domain.Movie{movie})[0]

	return api.MovieDetailResponse{
		Id:          tagged.ID,
		Title:       tagged.Title,
		Category:    string(tagged.Category),
		Rating:      tagged.Rating,
		Stars:       domain.FormatRating(tagged.Rating),
		Description: tagged.Description,
		Poster:      posterOrPlaceholder(tagged.Poster),
		Duration:    tagged.Duration,
		Director:    tagged.Director,
		Recommended: tagged.Recommended,
	}
}

func posterOrPlaceholder(poster string) string {
	if poster == "" {
		return placeholderPoster
	}

	return poster
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max]) + "..."
}
