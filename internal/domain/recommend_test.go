package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagRecommended(t *testing.T) {
	tests := []struct {
		name  string
		movie Movie
		want  bool
	}{
		{
			name:  "action above seven is recommended",
			movie: Movie{Category: CategoryAction, Rating: 7.5},
			want:  true,
		},
		{
			name:  "action at exactly seven is not",
			movie: Movie{Category: CategoryAction, Rating: 7},
			want:  false,
		},
		{
			name:  "comedy above six is recommended",
			movie: Movie{Category: CategoryComedy, Rating: 6.5},
			want:  true,
		},
		{
			name:  "drama at exactly six is not",
			movie: Movie{Category: CategoryDrama, Rating: 6},
			want:  false,
		},
		{
			name:  "missing category is passed through untagged",
			movie: Movie{Rating: 9.9},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TagRecommended([]*Movie{&tt.movie})

			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Recommended)
		})
	}
}

func TestTagRecommendedIsPure(t *testing.T) {
	input := []*Movie{
		{ID: 1, Category: CategoryAction, Rating: 8.5},
		{ID: 2, Category: CategoryComedy, Rating: 3},
	}

	got := TagRecommended(input)

	require.Len(t, got, 2)

	for i := range input {
		// Fresh output objects, untouched input objects.
		assert.NotSame(t, input[i], got[i])
		assert.False(t, input[i].Recommended)
	}

	assert.True(t, got[0].Recommended)
	assert.False(t, got[1].Recommended)
}
