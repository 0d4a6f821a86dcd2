// Package sentiment scores, labels and aggregates news headlines.
package sentiment

import (
	"strings"
	"sync"

	"github.com/jonreiter/govader"

	"github.com/selivandex/stock-sentiment/pkg/models"
)

var (
	vaderAnalyzer *govader.SentimentIntensityAnalyzer
	vaderOnce     sync.Once
)

// sharedAnalyzer loads the VADER lexicon once; the analyzer is read-only afterwards
func sharedAnalyzer() *govader.SentimentIntensityAnalyzer {
	vaderOnce.Do(func() {
		vaderAnalyzer = govader.NewSentimentIntensityAnalyzer()
	})
	return vaderAnalyzer
}

// PolarityScorer assigns a sentiment score to raw text
type PolarityScorer interface {
	Score(text string) models.SentimentScore
}

// Scorer is the VADER lexicon scorer. It is safe for concurrent use.
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewScorer creates scorer backed by the shared VADER analyzer
func NewScorer() *Scorer {
	return &Scorer{analyzer: sharedAnalyzer()}
}

// Score rates raw, unpreprocessed text. Casing and punctuation are signals for
// VADER so the text is passed through as is. Text with nothing to score gets
// the neutral score (0, 1, 0, 0).
func (s *Scorer) Score(text string) models.SentimentScore {
	if strings.TrimSpace(text) == "" {
		return models.NeutralScore()
	}

	polarity := s.analyzer.PolarityScores(text)
	score := models.SentimentScore{
		Negative: polarity.Negative,
		Neutral:  polarity.Neutral,
		Positive: polarity.Positive,
		Compound: polarity.Compound,
	}

	if score.Negative == 0 && score.Neutral == 0 && score.Positive == 0 {
		return models.NeutralScore()
	}

	return score
}
