package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Candle is one OHLCV row of the stock table
type Candle struct {
	Symbol    string          `json:"symbol" yaml:"symbol"`
	Timestamp *time.Time      `json:"timestamp" yaml:"timestamp"`
	Open      decimal.Decimal `json:"open" yaml:"open"`
	High      decimal.Decimal `json:"high" yaml:"high"`
	Low       decimal.Decimal `json:"low" yaml:"low"`
	Close     decimal.Decimal `json:"close" yaml:"close"`
	AdjClose  decimal.Decimal `json:"adj_close" yaml:"adj_close"`
	Volume    decimal.Decimal `json:"volume" yaml:"volume"`
}

// HasTimestamp reports whether the row carried a parseable date
func (c Candle) HasTimestamp() bool {
	return c.Timestamp != nil
}

// StockTable is the parsed stock price table, rows kept in file order
type StockTable struct {
	Candles []Candle
}

// Symbols returns distinct stock symbols in first-seen order
func (t *StockTable) Symbols() []string {
	seen := make(map[string]struct{})
	symbols := make([]string, 0)
	for _, c := range t.Candles {
		if _, ok := seen[c.Symbol]; ok {
			continue
		}
		seen[c.Symbol] = struct{}{}
		symbols = append(symbols, c.Symbol)
	}
	return symbols
}

// Series returns the dated candles of one symbol sorted by timestamp.
// Rows without a date cannot be placed on a time axis and are left out.
func (t *StockTable) Series(symbol string) []Candle {
	series := make([]Candle, 0)
	for _, c := range t.Candles {
		if c.Symbol == symbol && c.HasTimestamp() {
			series = append(series, c)
		}
	}
	sortCandles(series)
	return series
}
