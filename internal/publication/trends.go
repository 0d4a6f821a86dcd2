// Package publication analyzes how headline volume evolves over time.
package publication

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/selivandex/stock-sentiment/pkg/models"
)

// ErrInsufficientData is returned when a series is too short to decompose
var ErrInsufficientData = errors.New("insufficient data")

// PeriodCount is the number of articles published in the period starting at Start
type PeriodCount struct {
	Start    time.Time `json:"date" yaml:"date"`
	Articles int       `json:"no_of_articles" yaml:"no_of_articles"`
}

// Trend is a period count series plus the records without a usable date
type Trend struct {
	Counts  []PeriodCount `json:"counts" yaml:"counts"`
	Skipped int           `json:"skipped" yaml:"skipped"`
}

// Values returns the article counts as a float series
func (t Trend) Values() []float64 {
	values := make([]float64, len(t.Counts))
	for i, c := range t.Counts {
		values[i] = float64(c.Articles)
	}
	return values
}

// AnnualTrends counts articles per calendar year
func AnnualTrends(records []models.HeadlineRecord) Trend {
	return countPeriods(records, func(t time.Time) time.Time {
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	})
}

// QuarterlyTrends counts articles per calendar quarter
func QuarterlyTrends(records []models.HeadlineRecord) Trend {
	return countPeriods(records, func(t time.Time) time.Time {
		firstMonth := time.Month((int(t.Month())-1)/3*3 + 1)
		return time.Date(t.Year(), firstMonth, 1, 0, 0, 0, 0, time.UTC)
	})
}

// countPeriods buckets dated records on UTC wall time. Only periods with at
// least one article appear.
func countPeriods(records []models.HeadlineRecord, periodStart func(time.Time) time.Time) Trend {
	trend := Trend{Counts: make([]PeriodCount, 0)}
	index := make(map[time.Time]int)

	for _, r := range records {
		if !r.HasDate() {
			trend.Skipped++
			continue
		}
		start := periodStart(r.PublishedAt.UTC())
		i, ok := index[start]
		if !ok {
			i = len(trend.Counts)
			index[start] = i
			trend.Counts = append(trend.Counts, PeriodCount{Start: start})
		}
		trend.Counts[i].Articles++
	}

	sort.Slice(trend.Counts, func(i, j int) bool {
		return trend.Counts[i].Start.Before(trend.Counts[j].Start)
	})

	return trend
}

// Decomposition splits a series into additive trend, seasonal and residual
// parts. Trend and Residual are NaN where the centered window does not fit.
type Decomposition struct {
	Period   int
	Observed []float64
	Trend    []float64
	Seasonal []float64
	Residual []float64
}

// Decompose performs a classical additive decomposition. The trend is a
// centered moving average (2xm for an even period), the seasonal component is
// the zero-mean average detrended value of each phase.
func Decompose(series []float64, period int) (*Decomposition, error) {
	if period < 2 {
		return nil, fmt.Errorf("period must be at least 2, got %d", period)
	}
	if len(series) < 2*period {
		return nil, fmt.Errorf("%w: decomposition needs two full cycles (%d points), got %d",
			ErrInsufficientData, 2*period, len(series))
	}

	n := len(series)
	filter := centeredFilter(period)
	half := len(filter) / 2

	trend := make([]float64, n)
	for i := range trend {
		if i < half || i >= n-half {
			trend[i] = math.NaN()
			continue
		}
		var sum float64
		for k, w := range filter {
			sum += w * series[i-half+k]
		}
		trend[i] = sum
	}

	phases := make([][]float64, period)
	for i := half; i < n-half; i++ {
		phases[i%period] = append(phases[i%period], series[i]-trend[i])
	}

	phaseAvg := make([]float64, period)
	for j, detrended := range phases {
		phaseAvg[j] = stat.Mean(detrended, nil)
	}
	avgMean := stat.Mean(phaseAvg, nil)

	seasonal := make([]float64, n)
	residual := make([]float64, n)
	for i := range series {
		seasonal[i] = phaseAvg[i%period] - avgMean
		residual[i] = series[i] - trend[i] - seasonal[i]
	}

	observed := make([]float64, n)
	copy(observed, series)

	return &Decomposition{
		Period:   period,
		Observed: observed,
		Trend:    trend,
		Seasonal: seasonal,
		Residual: residual,
	}, nil
}

// centeredFilter returns the moving average weights, always of odd length
func centeredFilter(period int) []float64 {
	if period%2 == 1 {
		filter := make([]float64, period)
		for i := range filter {
			filter[i] = 1 / float64(period)
		}
		return filter
	}

	filter := make([]float64, period+1)
	for i := range filter {
		filter[i] = 1 / float64(period)
	}
	filter[0] /= 2
	filter[period] /= 2
	return filter
}
