package domain

const (
	actionRecommendThreshold  = 7
	defaultRecommendThreshold = 6
)

// TagRecommended derives the Recommended flag for each movie from its
// category and rating. It returns fresh copies and never mutates the input;
// catalogs are shared across requests and must stay read-only. Movies without
// a category are copied through untagged.
func TagRecommended(movies []*Movie) []*Movie {
	tagged := make([]*Movie, len(movies))

	for i, movie := range movies {
		clone := *movie

		if clone.Category != "" {
			threshold := float64(defaultRecommendThreshold)
			if clone.Category == CategoryAction {
				threshold = actionRecommendThreshold
			}

			clone.Recommended = clone.Rating > threshold
		}

		tagged[i] = &clone
	}

	return tagged
}
