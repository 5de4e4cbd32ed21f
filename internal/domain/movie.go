package domain

import (
	"context"
	"strings"
)

type Category string

const (
	CategoryAction Category = "action"
	CategoryComedy Category = "comedy"
	CategoryDrama  Category = "drama"
	CategoryHorror Category = "horror"
	CategorySciFi  Category = "sci-fi"
)

// CategoryAll is the sentinel selector meaning "no category constraint".
const CategoryAll = "all"

func Categories() []Category {
	return []Category{CategoryAction, CategoryComedy, CategoryDrama, CategoryHorror, CategorySciFi}
}

type Movie struct {
	ID          int
	Title       string
	Category    Category
	Rating      float64
	Description string
	Poster      string
	Duration    int
	Director    string
	Recommended bool
}

// minSearchTermLength is the shortest search term that constrains results.
// Anything shorter is treated as "no text filter" to avoid noisy one or two
// character matches.
const minSearchTermLength = 3

// FilterMovies returns the subsequence of movies matching both the search
// term and the category selector, preserving the original relative order.
// The input slice is never modified.
func FilterMovies(movies []*Movie, term string, category string) []*Movie {
	term = strings.ToLower(term)
	searchActive := len([]rune(term)) >= minSearchTermLength

	result := make([]*Movie, 0, len(movies))

	for _, movie := range movies {
		if category != CategoryAll && string(movie.Category) != category {
			continue
		}

		if searchActive && !matchesTerm(movie, term) {
			continue
		}

		result = append(result, movie)
	}

	return result
}

func matchesTerm(movie *Movie, term string) bool {
	if strings.Contains(strings.ToLower(movie.Title), term) {
		return true
	}

	return movie.Description != "" && strings.Contains(strings.ToLower(movie.Description), term)
}

type MovieRepository interface {
	GetAll(ctx context.Context) ([]*Movie, error)
	GetById(ctx context.Context, id int) (*Movie, error)
}
