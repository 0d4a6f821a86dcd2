package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/selivandex/stock-sentiment/pkg/models"
)

const (
	headlineDateLayout = "2006-01-02 15:04:05-07:00"
	dayLayout          = time.DateOnly
)

type headlineRow struct {
	Headline  string  `csv:"headline"`
	Publisher string  `csv:"publisher"`
	Date      string  `csv:"date"`
	Stock     string  `csv:"stock"`
	Negative  float64 `csv:"negative"`
	Neutral   float64 `csv:"neutral"`
	Positive  float64 `csv:"positive"`
	Compound  float64 `csv:"compound"`
	Sentiment string  `csv:"Sentiment"`
}

type dailyRow struct {
	Date      string  `csv:"date"`
	Stock     string  `csv:"stock"`
	Compound  float64 `csv:"compound"`
	Count     int     `csv:"count"`
	Sentiment string  `csv:"Sentiment"`
}

// WriteScoredCSV writes the scored headline table. Undated rows get an empty date.
func WriteScoredCSV(out io.Writer, scored []models.ScoredHeadline) error {
	rows := make([]*headlineRow, 0, len(scored))
	for _, s := range scored {
		date := ""
		if s.Record.HasDate() {
			date = s.Record.PublishedAt.Format(headlineDateLayout)
		}
		rows = append(rows, &headlineRow{
			Headline:  s.Record.Text,
			Publisher: s.Record.Publisher,
			Date:      date,
			Stock:     s.Record.Stock,
			Negative:  s.Score.Negative,
			Neutral:   s.Score.Neutral,
			Positive:  s.Score.Positive,
			Compound:  s.Score.Compound,
			Sentiment: string(s.Label),
		})
	}

	if err := gocsv.Marshal(rows, out); err != nil {
		return fmt.Errorf("failed to write scored headlines: %w", err)
	}
	return nil
}

// WriteDailyCSV writes the daily sentiment table in the layout LoadDailySentiment reads
func WriteDailyCSV(out io.Writer, daily []models.DailySentiment) error {
	rows := make([]*dailyRow, 0, len(daily))
	for _, d := range daily {
		rows = append(rows, &dailyRow{
			Date:      d.Date.Format(dayLayout),
			Stock:     d.Stock,
			Compound:  d.Compound,
			Count:     d.Count,
			Sentiment: string(d.Label),
		})
	}

	if err := gocsv.Marshal(rows, out); err != nil {
		return fmt.Errorf("failed to write daily sentiment: %w", err)
	}
	return nil
}

// WriteCSVFile creates path (and its directory) and fills it with write
func WriteCSVFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
