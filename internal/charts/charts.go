// Package charts builds renderer-agnostic chart specifications. A chart is
// plain data: titles, axis labels and named series that any plotting sink can draw.
package charts

import (
	"math"
	"strconv"
	"time"

	"github.com/selivandex/stock-sentiment/internal/indicators"
	"github.com/selivandex/stock-sentiment/internal/publication"
	"github.com/selivandex/stock-sentiment/internal/sentiment"
	"github.com/selivandex/stock-sentiment/pkg/models"
)

const dateLayout = time.DateOnly

// Kind tells a sink how to draw a series
type Kind string

const (
	KindLine Kind = "line"
	KindBar  Kind = "bar"
	KindWord Kind = "word"
)

// Point is one x/y pair. X is a date or a category label.
type Point struct {
	X string  `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Series is one named line, bar group or word list
type Series struct {
	Name   string  `json:"name" yaml:"name"`
	Kind   Kind    `json:"kind" yaml:"kind"`
	Points []Point `json:"points" yaml:"points"`
}

// Chart is a complete chart specification
type Chart struct {
	Title  string   `json:"title" yaml:"title"`
	XLabel string   `json:"x_label,omitempty" yaml:"x_label,omitempty"`
	YLabel string   `json:"y_label,omitempty" yaml:"y_label,omitempty"`
	Series []Series `json:"series" yaml:"series"`
}

// PointCount returns the number of points across all series
func (c *Chart) PointCount() int {
	total := 0
	for _, s := range c.Series {
		total += len(s.Points)
	}
	return total
}

// PriceChart draws the close price with its moving averages
func PriceChart(stock string, ma *indicators.MovingAverages) *Chart {
	return &Chart{
		Title:  stock + " Stock Price",
		XLabel: "Date",
		YLabel: "Price",
		Series: []Series{
			lineSeries("Close Price", ma.Close),
			lineSeries(smaName(ma.ShortWindow), ma.SMAShort),
			lineSeries(smaName(ma.LongWindow), ma.SMALong),
			lineSeries(emaName(ma.ShortWindow), ma.EMAShort),
		},
	}
}

// RSIChart draws the relative strength index
func RSIChart(stock string, rsi *indicators.RSISeries) *Chart {
	return &Chart{
		Title:  stock + " RSI",
		XLabel: "Date",
		YLabel: "RSI",
		Series: []Series{lineSeries("RSI", rsi.Values)},
	}
}

// MACDChart draws the MACD line, its signal and the histogram
func MACDChart(stock string, macd *indicators.MACDSeries) *Chart {
	histogram := lineSeries("Histogram", macd.Histogram)
	histogram.Kind = KindBar

	return &Chart{
		Title:  stock + " MACD",
		XLabel: "Date",
		YLabel: "MACD",
		Series: []Series{
			lineSeries("MACD", macd.MACD),
			lineSeries("Signal", macd.Signal),
			histogram,
		},
	}
}

// SentimentChart draws the daily mean compound score of one stock
func SentimentChart(stock string, daily []models.DailySentiment) *Chart {
	rows := sentiment.ForStock(daily, stock)
	points := make([]Point, 0, len(rows))
	for _, d := range rows {
		points = appendPoint(points, d.Date.Format(dateLayout), d.Compound)
	}

	return &Chart{
		Title:  stock + " Daily Sentiment",
		XLabel: "Date",
		YLabel: "Compound Score",
		Series: []Series{{Name: "Sentiment", Kind: KindLine, Points: points}},
	}
}

// TrendChart draws article counts per period as bars
func TrendChart(title, xLabel string, trend publication.Trend, layout string) *Chart {
	points := make([]Point, 0, len(trend.Counts))
	for _, c := range trend.Counts {
		points = append(points, Point{X: c.Start.Format(layout), Y: float64(c.Articles)})
	}

	return &Chart{
		Title:  title,
		XLabel: xLabel,
		YLabel: "Articles",
		Series: []Series{{Name: "Articles", Kind: KindBar, Points: points}},
	}
}

// DecompositionChart draws each component of a decomposition as its own line.
// Undefined edge values are left out.
func DecompositionChart(title string, labels []string, d *publication.Decomposition) *Chart {
	components := []struct {
		name   string
		values []float64
	}{
		{"Observed", d.Observed},
		{"Trend", d.Trend},
		{"Seasonal", d.Seasonal},
		{"Residual", d.Residual},
	}

	chart := &Chart{Title: title, XLabel: "Period", YLabel: "Articles"}
	for _, c := range components {
		points := make([]Point, 0, len(c.values))
		for i, v := range c.values {
			x := ""
			if i < len(labels) {
				x = labels[i]
			}
			points = appendPoint(points, x, v)
		}
		chart.Series = append(chart.Series, Series{Name: c.name, Kind: KindLine, Points: points})
	}

	return chart
}

// WordCloud lists the n most frequent words weighted by count
func WordCloud(freq models.KeywordFrequency, n int) *Chart {
	top := freq.Top(n)
	points := make([]Point, 0, len(top))
	for _, kw := range top {
		points = append(points, Point{X: kw.Token, Y: float64(kw.Count)})
	}

	return &Chart{
		Title:  "Most Common Words in Headlines",
		Series: []Series{{Name: "Words", Kind: KindWord, Points: points}},
	}
}

func lineSeries(name string, values []indicators.Point) Series {
	points := make([]Point, 0, len(values))
	for _, v := range values {
		points = appendPoint(points, v.Time.Format(dateLayout), v.Value)
	}
	return Series{Name: name, Kind: KindLine, Points: points}
}

// appendPoint drops NaN and infinite values, which no sink can place
func appendPoint(points []Point, x string, y float64) []Point {
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return points
	}
	return append(points, Point{X: x, Y: y})
}

func smaName(window int) string {
	return "SMA " + strconv.Itoa(window)
}

func emaName(window int) string {
	return "EMA " + strconv.Itoa(window)
}
