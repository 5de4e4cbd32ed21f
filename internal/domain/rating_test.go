package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingStars(t *testing.T) {
	tests := []struct {
		rating float64
		want   int
	}{
		{rating: 0, want: 1},
		{rating: -3, want: 1},
		{rating: 1, want: 1},
		{rating: 2.1, want: 2},
		{rating: 5, want: 3},
		{rating: 7.8, want: 4},
		{rating: 8.2, want: 5},
		{rating: 10, want: 5},
		{rating: 14, want: 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RatingStars(tt.rating), "rating %v", tt.rating)
	}
}

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "⭐", FormatRating(0))
	assert.Equal(t, "⭐⭐⭐", FormatRating(5))
	assert.Equal(t, strings.Repeat("⭐", 5), FormatRating(10))
}
