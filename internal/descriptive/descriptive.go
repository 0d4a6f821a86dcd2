// Package descriptive computes group-and-count views over headline tables.
package descriptive

import (
	"math"
	"regexp"
	"sort"
	"time"
	"unicode/utf8"

	"gonum.org/v1/gonum/stat"

	"github.com/selivandex/stock-sentiment/pkg/models"
)

// LengthStats describes the distribution of headline lengths in characters
type LengthStats struct {
	Count int     `json:"count" yaml:"count"`
	Mean  float64 `json:"mean" yaml:"mean"`
	Std   float64 `json:"std" yaml:"std"`
	Min   float64 `json:"min" yaml:"min"`
	P25   float64 `json:"p25" yaml:"p25"`
	P50   float64 `json:"p50" yaml:"p50"`
	P75   float64 `json:"p75" yaml:"p75"`
	Max   float64 `json:"max" yaml:"max"`
}

// Count is one group of a count view
type Count struct {
	Key   string `json:"key" yaml:"key"`
	Count int    `json:"count" yaml:"count"`
}

// CountView is a count view plus the number of records it could not place
type CountView struct {
	Counts  []Count `json:"counts" yaml:"counts"`
	Skipped int     `json:"skipped" yaml:"skipped"`
}

var emailDomain = regexp.MustCompile(`@([\w.-]+)`)

// HeadlineLengthStats summarizes headline lengths. Std is the sample standard
// deviation (0 for fewer than two rows) and percentiles use linear interpolation.
func HeadlineLengthStats(records []models.HeadlineRecord) LengthStats {
	stats := LengthStats{Count: len(records)}
	if len(records) == 0 {
		return stats
	}

	lengths := make([]float64, len(records))
	for i, r := range records {
		lengths[i] = float64(utf8.RuneCountInString(r.Text))
	}
	sort.Float64s(lengths)

	if len(lengths) > 1 {
		stats.Mean, stats.Std = stat.MeanStdDev(lengths, nil)
	} else {
		stats.Mean = lengths[0]
	}

	stats.Min = lengths[0]
	stats.Max = lengths[len(lengths)-1]
	stats.P25 = percentile(lengths, 0.25)
	stats.P50 = percentile(lengths, 0.50)
	stats.P75 = percentile(lengths, 0.75)

	return stats
}

// percentile interpolates at q*(n-1) like pandas describe(). gonum's
// stat.Quantile offers only empirical and n*q based linear rules.
func percentile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (sorted[hi]-sorted[lo])*(pos-float64(lo))
}

// ArticlesPerPublisher counts headlines per publisher, most active first
func ArticlesPerPublisher(records []models.HeadlineRecord) CountView {
	return countBy(records, func(r models.HeadlineRecord) (string, bool) {
		return r.Publisher, true
	}, byCountDesc)
}

// ArticlesByDayOfWeek counts headlines per weekday name, busiest first.
// Records without a date are skipped.
func ArticlesByDayOfWeek(records []models.HeadlineRecord) CountView {
	return countBy(records, func(r models.HeadlineRecord) (string, bool) {
		if !r.HasDate() {
			return "", false
		}
		return r.PublishedAt.Weekday().String(), true
	}, byCountDesc)
}

// ArticlesByTime counts headlines per UTC time of day, ordered by time
func ArticlesByTime(records []models.HeadlineRecord) CountView {
	return countBy(records, func(r models.HeadlineRecord) (string, bool) {
		if !r.HasDate() {
			return "", false
		}
		return r.PublishedAt.UTC().Format(time.TimeOnly), true
	}, byKey)
}

// ExtractDomain returns the domain of an email-style publisher, or "" when
// the publisher is not an address
func ExtractDomain(publisher string) string {
	m := emailDomain.FindStringSubmatch(publisher)
	if m == nil {
		return ""
	}
	return m[1]
}

// UniqueDomains counts publisher email domains. Publishers that are not
// addresses are reported as skipped.
func UniqueDomains(records []models.HeadlineRecord) CountView {
	return countBy(records, func(r models.HeadlineRecord) (string, bool) {
		d := ExtractDomain(r.Publisher)
		return d, d != ""
	}, byCountDesc)
}

type ordering int

const (
	byCountDesc ordering = iota
	byKey
)

// countBy groups records by key. Count ordering breaks ties by first occurrence.
func countBy(records []models.HeadlineRecord, key func(models.HeadlineRecord) (string, bool), order ordering) CountView {
	view := CountView{Counts: make([]Count, 0)}
	index := make(map[string]int)

	for _, r := range records {
		k, ok := key(r)
		if !ok {
			view.Skipped++
			continue
		}
		i, seen := index[k]
		if !seen {
			i = len(view.Counts)
			index[k] = i
			view.Counts = append(view.Counts, Count{Key: k})
		}
		view.Counts[i].Count++
	}

	switch order {
	case byKey:
		sort.SliceStable(view.Counts, func(i, j int) bool {
			return view.Counts[i].Key < view.Counts[j].Key
		})
	default:
		sort.SliceStable(view.Counts, func(i, j int) bool {
			return view.Counts[i].Count > view.Counts[j].Count
		})
	}

	return view
}
