package charts

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/selivandex/stock-sentiment/internal/indicators"
	"github.com/selivandex/stock-sentiment/pkg/logger"
	"github.com/selivandex/stock-sentiment/pkg/models"
)

// Indicator names a dashboard view
type Indicator string

const (
	IndicatorMovingAverages Indicator = "Moving Averages"
	IndicatorRSI            Indicator = "RSI"
	IndicatorMACD           Indicator = "MACD"
	IndicatorSentiment      Indicator = "Daily Sentiment"
)

var (
	// ErrUnknownIndicator is returned for a view the dashboard does not offer
	ErrUnknownIndicator = errors.New("unknown indicator")
	// ErrUnknownStock is returned for a symbol absent from the stock table
	ErrUnknownStock = errors.New("unknown stock")
)

// Indicators lists the dashboard views in display order
func Indicators() []Indicator {
	return []Indicator{IndicatorMovingAverages, IndicatorRSI, IndicatorMACD, IndicatorSentiment}
}

// Options sets the indicator windows
type Options struct {
	ShortWindow int
	LongWindow  int
	RSIPeriod   int
}

// Dashboard renders one indicator view for one stock
type Dashboard struct {
	stocks *models.StockTable
	daily  []models.DailySentiment
	calc   *indicators.Calculator
	opts   Options
}

// NewDashboard creates a dashboard over a stock table and precomputed daily sentiment
func NewDashboard(stocks *models.StockTable, daily []models.DailySentiment, opts Options) *Dashboard {
	if stocks == nil {
		stocks = &models.StockTable{}
	}
	return &Dashboard{
		stocks: stocks,
		daily:  daily,
		calc:   indicators.NewCalculator(),
		opts:   opts,
	}
}

// Stocks returns the selectable symbols in first-seen order
func (d *Dashboard) Stocks() []string {
	return d.stocks.Symbols()
}

// Render builds the chart for the selected stock and indicator
func (d *Dashboard) Render(stock string, indicator Indicator) (*Chart, error) {
	if !d.hasStock(stock) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStock, stock)
	}

	logger.Debug("rendering dashboard view",
		zap.String("stock", stock),
		zap.String("indicator", string(indicator)),
	)

	switch indicator {
	case IndicatorMovingAverages:
		ma, err := d.calc.MovingAverages(d.stocks.Series(stock), d.opts.ShortWindow, d.opts.LongWindow)
		if err != nil {
			return nil, fmt.Errorf("moving averages for %s: %w", stock, err)
		}
		return PriceChart(stock, ma), nil

	case IndicatorRSI:
		rsi, err := d.calc.RSI(d.stocks.Series(stock), d.opts.RSIPeriod)
		if err != nil {
			return nil, fmt.Errorf("RSI for %s: %w", stock, err)
		}
		return RSIChart(stock, rsi), nil

	case IndicatorMACD:
		macd, err := d.calc.MACD(d.stocks.Series(stock))
		if err != nil {
			return nil, fmt.Errorf("MACD for %s: %w", stock, err)
		}
		return MACDChart(stock, macd), nil

	case IndicatorSentiment:
		return SentimentChart(stock, d.daily), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIndicator, indicator)
	}
}

func (d *Dashboard) hasStock(stock string) bool {
	for _, s := range d.stocks.Symbols() {
		if s == stock {
			return true
		}
	}
	return false
}
