package models

import "time"

// SentimentLabel is the discrete category derived from a compound score
type SentimentLabel string

const (
	LabelPositive SentimentLabel = "Positive"
	LabelNegative SentimentLabel = "Negative"
	LabelNeutral  SentimentLabel = "Neutral"
)

// SentimentScore is the lexicon model output for one text.
// Negative+Neutral+Positive is ~1; Compound is normalized separately to [-1, 1].
type SentimentScore struct {
	Negative float64 `json:"negative" yaml:"negative"`
	Neutral  float64 `json:"neutral" yaml:"neutral"`
	Positive float64 `json:"positive" yaml:"positive"`
	Compound float64 `json:"compound" yaml:"compound"`
}

// NeutralScore is the score of text carrying no sentiment
func NeutralScore() SentimentScore {
	return SentimentScore{Neutral: 1}
}

// SentimentSummary aggregates labels over a scored collection
type SentimentSummary struct {
	TotalItems      int     `json:"total_items" yaml:"total_items"`
	PositiveCount   int     `json:"positive_count" yaml:"positive_count"`
	NegativeCount   int     `json:"negative_count" yaml:"negative_count"`
	NeutralCount    int     `json:"neutral_count" yaml:"neutral_count"`
	AverageCompound float64 `json:"average_compound" yaml:"average_compound"`
}

// DailySentiment is the mean compound score of one stock on one calendar day
type DailySentiment struct {
	Date     time.Time      `json:"date" yaml:"date" db:"day"`
	Stock    string         `json:"stock" yaml:"stock" db:"stock"`
	Compound float64        `json:"compound" yaml:"compound" db:"compound"`
	Count    int            `json:"count" yaml:"count" db:"headline_count"`
	Label    SentimentLabel `json:"sentiment" yaml:"sentiment" db:"label"`
}
