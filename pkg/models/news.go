package models

import "time"

// HeadlineRecord is one row of the headline table. PublishedAt is nil when the
// source date could not be parsed.
type HeadlineRecord struct {
	Text        string     `json:"headline" yaml:"headline"`
	Publisher   string     `json:"publisher" yaml:"publisher"`
	PublishedAt *time.Time `json:"date" yaml:"date"`
	Stock       string     `json:"stock,omitempty" yaml:"stock,omitempty"`
}

// HasDate reports whether the record carries a publication timestamp
func (h HeadlineRecord) HasDate() bool {
	return h.PublishedAt != nil
}

// ScoredHeadline is a headline with its sentiment attached
type ScoredHeadline struct {
	Record HeadlineRecord `json:"record" yaml:"record"`
	Score  SentimentScore `json:"score" yaml:"score"`
	Label  SentimentLabel `json:"sentiment" yaml:"sentiment"`
}

// KeywordCount is a token with its number of occurrences
type KeywordCount struct {
	Token string `json:"token" yaml:"token"`
	Count int    `json:"count" yaml:"count"`
}

// KeywordFrequency holds the ranked token counts of a headline collection
type KeywordFrequency struct {
	Ranked []KeywordCount `json:"ranked" yaml:"ranked"`
	Counts map[string]int `json:"-" yaml:"-"`
}

// Top returns at most n leading entries of the ranking
func (kf KeywordFrequency) Top(n int) []KeywordCount {
	if n <= 0 {
		return []KeywordCount{}
	}
	if n > len(kf.Ranked) {
		n = len(kf.Ranked)
	}
	top := make([]KeywordCount, n)
	copy(top, kf.Ranked[:n])
	return top
}
