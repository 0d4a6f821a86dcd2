package indicators

import (
	"errors"
	"fmt"
	"time"

	"github.com/cinar/indicator"

	"github.com/selivandex/stock-sentiment/pkg/models"
)

// ErrInsufficientData is wrapped when a series is shorter than an indicator window
var ErrInsufficientData = errors.New("insufficient candles")

const (
	macdSlowPeriod = 26
)

// Point is one dated indicator value
type Point struct {
	Time  time.Time `json:"time" yaml:"time"`
	Value float64   `json:"value" yaml:"value"`
}

// MovingAverages holds the close price with its moving averages
type MovingAverages struct {
	ShortWindow int     `json:"short_window" yaml:"short_window"`
	LongWindow  int     `json:"long_window" yaml:"long_window"`
	Close       []Point `json:"close" yaml:"close"`
	SMAShort    []Point `json:"sma_short" yaml:"sma_short"`
	SMALong     []Point `json:"sma_long" yaml:"sma_long"`
	EMAShort    []Point `json:"ema_short" yaml:"ema_short"`
}

// RSISeries holds the relative strength index over time
type RSISeries struct {
	Period int     `json:"period" yaml:"period"`
	Values []Point `json:"values" yaml:"values"`
}

// MACDSeries holds the MACD line, its signal line and their difference
type MACDSeries struct {
	MACD      []Point `json:"macd" yaml:"macd"`
	Signal    []Point `json:"signal" yaml:"signal"`
	Histogram []Point `json:"histogram" yaml:"histogram"`
}

// Calculator calculates technical indicators from dated candles sorted by time
type Calculator struct{}

// NewCalculator creates new indicator calculator
func NewCalculator() *Calculator {
	return &Calculator{}
}

// MovingAverages calculates SMA short/long and EMA short over close prices.
// Each average starts once its window is full.
func (c *Calculator) MovingAverages(candles []models.Candle, short, long int) (*MovingAverages, error) {
	if short < 1 || long < 1 {
		return nil, fmt.Errorf("moving average windows must be positive (short=%d, long=%d)", short, long)
	}
	if err := requireDated(candles); err != nil {
		return nil, err
	}
	if len(candles) < long || len(candles) < short {
		return nil, fmt.Errorf("%w for moving averages (need at least %d, got %d)",
			ErrInsufficientData, max(short, long), len(candles))
	}

	closes := models.Closes(candles)

	return &MovingAverages{
		ShortWindow: short,
		LongWindow:  long,
		Close:       points(candles, closes, 0),
		SMAShort:    points(candles, indicator.Sma(short, closes), short-1),
		SMALong:     points(candles, indicator.Sma(long, closes), long-1),
		EMAShort:    points(candles, indicator.Ema(short, closes), short-1),
	}, nil
}

// RSI calculates the relative strength index for period
func (c *Calculator) RSI(candles []models.Candle, period int) (*RSISeries, error) {
	if period < 2 {
		return nil, fmt.Errorf("rsi period must be at least 2, got %d", period)
	}
	if err := requireDated(candles); err != nil {
		return nil, err
	}
	if len(candles) < period+1 {
		return nil, fmt.Errorf("%w for RSI (need at least %d, got %d)",
			ErrInsufficientData, period+1, len(candles))
	}

	closes := models.Closes(candles)
	_, rsi := indicator.RsiPeriod(period, closes)
	if len(rsi) != len(closes) {
		return nil, fmt.Errorf("RSI returned %d values for %d candles", len(rsi), len(closes))
	}

	return &RSISeries{
		Period: period,
		Values: points(candles, rsi, period),
	}, nil
}

// MACD calculates MACD (12, 26) with its 9 period signal line
func (c *Calculator) MACD(candles []models.Candle) (*MACDSeries, error) {
	if err := requireDated(candles); err != nil {
		return nil, err
	}
	if len(candles) < macdSlowPeriod {
		return nil, fmt.Errorf("%w for MACD (need at least %d, got %d)",
			ErrInsufficientData, macdSlowPeriod, len(candles))
	}

	closes := models.Closes(candles)
	macdLine, signalLine := indicator.Macd(closes)
	histogram := make([]float64, len(macdLine))
	for i := range macdLine {
		histogram[i] = macdLine[i] - signalLine[i]
	}

	skip := macdSlowPeriod - 1
	return &MACDSeries{
		MACD:      points(candles, macdLine, skip),
		Signal:    points(candles, signalLine, skip),
		Histogram: points(candles, histogram, skip),
	}, nil
}

func requireDated(candles []models.Candle) error {
	for i, c := range candles {
		if !c.HasTimestamp() {
			return fmt.Errorf("candle %d of %s has no timestamp", i, c.Symbol)
		}
	}
	return nil
}

// points pairs values with candle timestamps, dropping the first skip entries
func points(candles []models.Candle, values []float64, skip int) []Point {
	if skip > len(values) {
		skip = len(values)
	}
	result := make([]Point, 0, len(values)-skip)
	for i := skip; i < len(values) && i < len(candles); i++ {
		result = append(result, Point{Time: *candles[i].Timestamp, Value: values[i]})
	}
	return result
}
