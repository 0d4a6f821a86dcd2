package sentiment

import "github.com/selivandex/stock-sentiment/pkg/models"

const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Categorize maps a compound score to a label. Both thresholds are inclusive.
func Categorize(compound float64) models.SentimentLabel {
	if compound >= positiveThreshold {
		return models.LabelPositive
	} else if compound <= negativeThreshold {
		return models.LabelNegative
	}
	return models.LabelNeutral
}
