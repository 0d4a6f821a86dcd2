package sentiment

import (
	"sort"

	"github.com/selivandex/stock-sentiment/internal/textproc"
	"github.com/selivandex/stock-sentiment/pkg/models"
)

// Frequencies counts normalized tokens across all headlines. The ranking is by
// count descending; equal counts keep the order in which tokens first appear
// in the concatenated token stream.
func Frequencies(headlines []string) models.KeywordFrequency {
	counts := make(map[string]int)
	ranked := make([]models.KeywordCount, 0)
	position := make(map[string]int)

	for _, headline := range headlines {
		for _, token := range textproc.Normalize(headline) {
			idx, seen := position[token]
			if !seen {
				idx = len(ranked)
				position[token] = idx
				ranked = append(ranked, models.KeywordCount{Token: token})
			}
			ranked[idx].Count++
			counts[token]++
		}
	}

	// ranked is in first-seen order, a stable sort keeps it for ties
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	return models.KeywordFrequency{
		Ranked: ranked,
		Counts: counts,
	}
}

// TopKeywords returns at most n most frequent tokens
func TopKeywords(headlines []string, n int) []models.KeywordCount {
	if n <= 0 {
		return []models.KeywordCount{}
	}
	return Frequencies(headlines).Top(n)
}
