package dataset

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/selivandex/stock-sentiment/internal/sentiment"
	"github.com/selivandex/stock-sentiment/pkg/logger"
	"github.com/selivandex/stock-sentiment/pkg/models"
)

// LoadDailySentiment reads a precomputed daily sentiment table with columns
// date, stock and compound (or sentiment). Rows whose date or score cannot be
// parsed are dropped. A bad count keeps the row with count 1 and is reported in
// InvalidValues.
func LoadDailySentiment(path string) ([]models.DailySentiment, LoadStats, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, LoadStats{File: path}, err
	}
	return dailyFromTable(t)
}

func dailyFromTable(t *table) ([]models.DailySentiment, LoadStats, error) {
	stats := LoadStats{File: t.file}

	dateIdx, err := t.require("date", "Date")
	if err != nil {
		return nil, stats, err
	}
	stockIdx, err := t.require("stock")
	if err != nil {
		return nil, stats, err
	}
	compoundIdx, err := t.require("compound", "sentiment", "sentiment_score")
	if err != nil {
		return nil, stats, err
	}
	countIdx, hasCount := t.optional("count", "headline_count")

	daily := make([]models.DailySentiment, 0, len(t.rows))
	for _, row := range t.rows {
		ts := ParseDate(cell(row, dateIdx))
		if ts == nil {
			stats.InvalidDates++
			continue
		}
		compound, err := strconv.ParseFloat(cell(row, compoundIdx), 64)
		if err != nil {
			stats.InvalidValues++
			continue
		}

		day := models.DailySentiment{
			Date:     *ts,
			Stock:    cell(row, stockIdx),
			Compound: compound,
			Count:    1,
			Label:    sentiment.Categorize(compound),
		}
		if hasCount {
			if raw := cell(row, countIdx); raw != "" {
				n, err := strconv.Atoi(raw)
				if err != nil || n < 1 {
					stats.InvalidValues++
				} else {
					day.Count = n
				}
			}
		}
		daily = append(daily, day)
	}
	stats.Rows = len(daily)

	logger.Info("daily sentiment loaded",
		zap.String("file", t.file),
		zap.Int("rows", stats.Rows),
		zap.Int("invalid_dates", stats.InvalidDates),
		zap.Int("invalid_values", stats.InvalidValues),
	)

	return daily, stats, nil
}
