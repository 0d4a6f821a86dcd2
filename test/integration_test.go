package test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/selivandex/stock-sentiment/internal/adapters/dataset"
	"github.com/selivandex/stock-sentiment/internal/charts"
	"github.com/selivandex/stock-sentiment/internal/report"
	"github.com/selivandex/stock-sentiment/internal/sentiment"
	"github.com/selivandex/stock-sentiment/pkg/models"
)

const headlinesCSV = `,headline,url,publisher,date,stock
0,Apple stock hits a great record high,https://x/1,Benzinga Newsdesk,2020-06-05 10:30:54-04:00,AAPL
1,Terrible losses hurt Tesla,https://x/2,analyst@zacks.com,2020-06-05 14:00:00-04:00,TSLA
2,Tesla to report results on Monday,https://x/3,Benzinga Newsdesk,2020-06-08 00:00:00,TSLA
3,Apple stock is good,https://x/4,Lisa Levin,not a date,AAPL
`

// TestSentimentFlow runs headlines from CSV through scoring, aggregation and reporting
func TestSentimentFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "raw_analyst_ratings.csv")
	if err := os.WriteFile(path, []byte(headlinesCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	records, stats, err := dataset.LoadHeadlines(path)
	if err != nil {
		t.Fatalf("Failed to load headlines: %v", err)
	}
	if len(records) != 4 || stats.InvalidDates != 1 {
		t.Fatalf("Expected 4 records with 1 invalid date, got %d (%+v)", len(records), stats)
	}

	pipeline := sentiment.NewPipeline(sentiment.NewScorer(), 2)
	scored, err := pipeline.Analyze(ctx, records)
	if err != nil {
		t.Fatalf("Failed to analyze: %v", err)
	}

	t.Run("labels", func(t *testing.T) {
		want := []models.SentimentLabel{
			models.LabelPositive,
			models.LabelNegative,
			models.LabelNeutral,
			models.LabelPositive,
		}
		for i, w := range want {
			if scored[i].Label != w {
				t.Errorf("headline %d %q: expected %s, got %s (compound %.3f)",
					i, scored[i].Record.Text, w, scored[i].Label, scored[i].Score.Compound)
			}
			if scored[i].Record.Text != records[i].Text {
				t.Errorf("headline %d out of order", i)
			}
		}
	})

	t.Run("keywords", func(t *testing.T) {
		top := pipeline.Keywords(records, 3)
		if len(top) != 3 {
			t.Fatalf("Expected 3 keywords, got %v", top)
		}
		if top[0].Token != "apple" || top[0].Count != 2 {
			t.Errorf("Expected apple x2 first, got %+v", top[0])
		}
	})

	t.Run("daily sentiment", func(t *testing.T) {
		daily := sentiment.DailySentiment(scored)
		// the undated AAPL headline is skipped
		if len(daily) != 3 {
			t.Fatalf("Expected 3 daily rows, got %d: %+v", len(daily), daily)
		}

		dash := charts.NewDashboard(&models.StockTable{Candles: []models.Candle{{Symbol: "TSLA"}}}, daily, charts.Options{})
		chart, err := dash.Render("TSLA", charts.IndicatorSentiment)
		if err != nil {
			t.Fatalf("Failed to render sentiment: %v", err)
		}
		if chart.PointCount() != 2 {
			t.Errorf("Expected 2 TSLA sentiment points, got %d", chart.PointCount())
		}
	})

	t.Run("report", func(t *testing.T) {
		w, err := report.NewWriter(report.FormatText)
		if err != nil {
			t.Fatalf("Failed to create writer: %v", err)
		}

		var buf bytes.Buffer
		err = w.Write(&buf, report.AnalysisReport{
			Source:   stats,
			Summary:  sentiment.Summarize(scored),
			Keywords: pipeline.Keywords(records, 5),
		})
		if err != nil {
			t.Fatalf("Failed to write report: %v", err)
		}
		if !strings.Contains(buf.String(), "headlines:        4") {
			t.Errorf("Unexpected report:\n%s", buf.String())
		}
	})
}
