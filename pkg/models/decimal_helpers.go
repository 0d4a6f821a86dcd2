package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ToFloat64 safely converts decimal to float64
func ToFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// Closes extracts close prices as float64 for indicator math
func Closes(candles []Candle) []float64 {
	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = ToFloat64(c.Close)
	}
	return closes
}

func sortCandles(candles []Candle) {
	sort.SliceStable(candles, func(i, j int) bool {
		return candles[i].Timestamp.Before(*candles[j].Timestamp)
	})
}
