package sentiment

import (
	"math"
	"testing"

	"github.com/selivandex/stock-sentiment/pkg/models"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		compound float64
		expected models.SentimentLabel
	}{
		{0.05, models.LabelPositive},
		{0.0500001, models.LabelPositive},
		{0.9, models.LabelPositive},
		{1.0, models.LabelPositive},
		{0.0499999, models.LabelNeutral},
		{0.0, models.LabelNeutral},
		{-0.0499999, models.LabelNeutral},
		{-0.05, models.LabelNegative},
		{-0.7, models.LabelNegative},
		{-1.0, models.LabelNegative},
		{math.Inf(1), models.LabelPositive},
		{math.Inf(-1), models.LabelNegative},
		{math.NaN(), models.LabelNeutral},
	}

	for _, tt := range tests {
		got := Categorize(tt.compound)
		if got != tt.expected {
			t.Errorf("Categorize(%v) = %s, expected %s", tt.compound, got, tt.expected)
		}
	}
}
