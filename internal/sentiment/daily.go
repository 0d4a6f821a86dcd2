package sentiment

import (
	"sort"
	"time"

	"github.com/selivandex/stock-sentiment/pkg/models"
)

type dayKey struct {
	stock string
	day   time.Time
}

// DailySentiment averages compound scores per stock and UTC calendar day.
// Headlines without a date cannot be placed on a day and are skipped.
// Results are ordered by day, then stock.
func DailySentiment(scored []models.ScoredHeadline) []models.DailySentiment {
	sums := make(map[dayKey]*models.DailySentiment)
	keys := make([]dayKey, 0)

	for _, s := range scored {
		if !s.Record.HasDate() {
			continue
		}
		key := dayKey{stock: s.Record.Stock, day: truncateDay(*s.Record.PublishedAt)}
		agg, ok := sums[key]
		if !ok {
			agg = &models.DailySentiment{Date: key.day, Stock: key.stock}
			sums[key] = agg
			keys = append(keys, key)
		}
		agg.Compound += s.Score.Compound
		agg.Count++
	}

	sort.Slice(keys, func(i, j int) bool {
		if !keys[i].day.Equal(keys[j].day) {
			return keys[i].day.Before(keys[j].day)
		}
		return keys[i].stock < keys[j].stock
	})

	daily := make([]models.DailySentiment, 0, len(keys))
	for _, key := range keys {
		agg := *sums[key]
		agg.Compound /= float64(agg.Count)
		agg.Label = Categorize(agg.Compound)
		daily = append(daily, agg)
	}

	return daily
}

// ForStock filters daily rows down to one stock
func ForStock(daily []models.DailySentiment, stock string) []models.DailySentiment {
	rows := make([]models.DailySentiment, 0)
	for _, d := range daily {
		if d.Stock == stock {
			rows = append(rows, d)
		}
	}
	return rows
}

func truncateDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
