package dataset

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/selivandex/stock-sentiment/pkg/logger"
	"github.com/selivandex/stock-sentiment/pkg/models"
)

// LoadStocks reads the stock price table. Columns stock, date (or Date) and
// Close are required; Open, High, Low, Adj Close and Volume are optional.
func LoadStocks(path string) (*models.StockTable, LoadStats, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, LoadStats{File: path}, err
	}
	return stocksFromTable(t)
}

func stocksFromTable(t *table) (*models.StockTable, LoadStats, error) {
	stats := LoadStats{File: t.file}

	stockIdx, err := t.require("stock")
	if err != nil {
		return nil, stats, err
	}
	dateIdx, err := t.require("date", "Date")
	if err != nil {
		return nil, stats, err
	}
	closeIdx, err := t.require("Close", "close")
	if err != nil {
		return nil, stats, err
	}

	optionalIdx := func(names ...string) int {
		if idx, ok := t.optional(names...); ok {
			return idx
		}
		return -1
	}
	openIdx := optionalIdx("Open", "open")
	highIdx := optionalIdx("High", "high")
	lowIdx := optionalIdx("Low", "low")
	adjIdx := optionalIdx("Adj Close", "adj_close")
	volumeIdx := optionalIdx("Volume", "volume")

	candles := make([]models.Candle, 0, len(t.rows))
	for _, row := range t.rows {
		invalid := false
		parse := func(idx int) decimal.Decimal {
			if idx < 0 {
				return decimal.Zero
			}
			raw := cell(row, idx)
			if raw == "" {
				return decimal.Zero
			}
			d, err := decimal.NewFromString(raw)
			if err != nil {
				invalid = true
				return decimal.Zero
			}
			return d
		}

		candle := models.Candle{
			Symbol:    cell(row, stockIdx),
			Timestamp: ParseDate(cell(row, dateIdx)),
			Open:      parse(openIdx),
			High:      parse(highIdx),
			Low:       parse(lowIdx),
			Close:     parse(closeIdx),
			AdjClose:  parse(adjIdx),
			Volume:    parse(volumeIdx),
		}
		if candle.Timestamp == nil {
			stats.InvalidDates++
		}
		if invalid {
			stats.InvalidValues++
		}
		candles = append(candles, candle)
	}
	stats.Rows = len(candles)

	logger.Info("stock prices loaded",
		zap.String("file", t.file),
		zap.Int("rows", stats.Rows),
		zap.Int("invalid_dates", stats.InvalidDates),
		zap.Int("invalid_values", stats.InvalidValues),
	)

	return &models.StockTable{Candles: candles}, stats, nil
}
