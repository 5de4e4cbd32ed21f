package domain

import (
	"math"
	"strings"
)

const (
	minStars = 1
	maxStars = 5
)

// RatingStars maps a 0-10 rating onto a bounded 1-5 star count. Out of range
// ratings are clamped rather than rejected.
func RatingStars(rating float64) int {
	stars := int(math.Ceil(rating / 2))

	if stars < minStars {
		return minStars
	}
	if stars > maxStars {
		return maxStars
	}

	return stars
}

// FormatRating renders a rating as repeated star glyphs.
func FormatRating(rating float64) string {
	return strings.Repeat("⭐", RatingStars(rating))
}
