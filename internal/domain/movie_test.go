package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() []*Movie {
	return []*Movie{
		{ID: 1, Title: "Inception", Category: CategorySciFi, Description: "A thief enters dreams."},
		{ID: 2, Title: "Top Gun: Maverick", Category: CategoryAction, Description: "Naval aviators push the envelope."},
		{ID: 3, Title: "The Hangover", Category: CategoryComedy, Description: "A bachelor party goes sideways."},
		{ID: 4, Title: "Untitled", Category: CategoryAction},
	}
}

func TestFilterMovies(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		category string
		wantIDs  []int
	}{
		{
			name:     "no constraints returns everything in order",
			term:     "",
			category: CategoryAll,
			wantIDs:  []int{1, 2, 3, 4},
		},
		{
			name:     "two character term imposes no text constraint",
			term:     "ab",
			category: CategoryAll,
			wantIDs:  []int{1, 2, 3, 4},
		},
		{
			name:     "three character term filters by title",
			term:     "gun",
			category: CategoryAll,
			wantIDs:  []int{2},
		},
		{
			name:     "term matches description when title does not",
			term:     "dream",
			category: CategoryAll,
			wantIDs:  []int{1},
		},
		{
			name:     "term match is case insensitive",
			term:     "INCEPTION",
			category: CategoryAll,
			wantIDs:  []int{1},
		},
		{
			name:     "category filter is exact",
			term:     "",
			category: "action",
			wantIDs:  []int{2, 4},
		},
		{
			name:     "term and category apply conjunctively",
			term:     "envelope",
			category: "action",
			wantIDs:  []int{2},
		},
		{
			name:     "conjunction can be empty",
			term:     "dream",
			category: "action",
			wantIDs:  []int{},
		},
		{
			name:     "missing description never matches and never errors",
			term:     "sideways",
			category: CategoryAll,
			wantIDs:  []int{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movies := catalogFixture()

			got := FilterMovies(movies, tt.term, tt.category)

			gotIDs := make([]int, 0, len(got))
			for _, movie := range got {
				gotIDs = append(gotIDs, movie.ID)
			}

			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestFilterMoviesDoesNotMutateInput(t *testing.T) {
	movies := catalogFixture()
	snapshot := catalogFixture()

	FilterMovies(movies, "gun", "action")

	require.Len(t, movies, len(snapshot))
	for i := range movies {
		assert.Equal(t, *snapshot[i], *movies[i])
	}
}

func TestFilterMoviesCategoryNeverLeaks(t *testing.T) {
	movies := catalogFixture()

	for _, category := range Categories() {
		got := FilterMovies(movies, "", string(category))

		for _, movie := range got {
			assert.Equal(t, category, movie.Category)
		}
	}
}
