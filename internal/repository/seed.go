package repository

import "github.com/NairoD34/bookmymovie/internal/domain"

// SeedCatalog returns the demo catalog served when no external catalog URL
// is configured.
func SeedCatalog() []*domain.Movie {
	return []*domain.Movie{
		{
			ID:          1,
			Title:       "Avatar: The Way of Water",
			Category:    domain.CategoryAction,
			Rating:      8.2,
			Description: "Jake Sully and Neytiri have formed a family and are doing everything to stay together.",
			Poster:      "https://example.com/avatar2.jpg",
			Duration:    192,
			Director:    "James Cameron",
		},
		{
			ID:          2,
			Title:       "Top Gun: Maverick",
			Category:    domain.CategoryAction,
			Rating:      8.7,
			Description: "After thirty years, Maverick is still pushing the envelope as a top naval aviator.",
			Poster:      "https://example.com/topgun.jpg",
			Duration:    130,
			Director:    "Joseph Kosinski",
		},
		{
			ID:          3,
			Title:       "The Batman",
			Category:    domain.CategoryAction,
			Rating:      7.8,
			Description: "Batman ventures into Gotham City underworld when a sadistic killer leaves clues.",
			Poster:      "https://example.com/batman.jpg",
			Duration:    176,
			Director:    "Matt Reeves",
		},
	}
}
