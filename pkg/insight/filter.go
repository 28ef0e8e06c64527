package insight

import (
	"sort"
	"strings"

	"echoparse-be/internal/entity"
)

const (
	// DefaultSimilarityThreshold is the floor for the primary relevance pass.
	DefaultSimilarityThreshold = 0.7

	// minPrimarySurvivors is the smallest primary pass the filter accepts
	// before discarding it for the similarity-ranked fallback.
	minPrimarySurvivors = 2

	// maxFiltered bounds how many candidates ever reach the synthesizer.
	maxFiltered = 3
)

// Filter reduces retrieved candidates to the ones worth quoting. A candidate
// survives the primary pass when its similarity clears the threshold AND its
// text contains at least one keyword of the semantic query: similarity alone
// over-admits generically related reviews, so keyword presence anchors
// relevance to the user's actual terms.
//
// If the primary pass yields fewer than two survivors it is discarded and the
// top three candidates by similarity are taken instead (stable on retrieval
// order), so the synthesizer always has evidence whenever retrieval returned
// any. The result never exceeds three candidates.
func Filter(candidates []*entity.RetrievedReview, semanticQuery string, threshold float64) []*entity.RetrievedReview {
	keywords := strings.Fields(strings.ToLower(semanticQuery))

	var survivors []*entity.RetrievedReview
	for _, c := range candidates {
		if c.Similarity >= threshold && containsKeyword(c.ReviewText, keywords) {
			survivors = append(survivors, c)
		}
	}

	if len(survivors) < minPrimarySurvivors {
		return topBySimilarity(candidates, maxFiltered)
	}

	if len(survivors) > maxFiltered {
		survivors = survivors[:maxFiltered]
	}
	return survivors
}

func containsKeyword(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func topBySimilarity(candidates []*entity.RetrievedReview, limit int) []*entity.RetrievedReview {
	sorted := make([]*entity.RetrievedReview, len(candidates))
	copy(sorted, candidates)

	// Stable: ties keep their original retrieval order
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Similarity > sorted[j].Similarity
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
