package dataset

import (
	"go.uber.org/zap"

	"github.com/selivandex/stock-sentiment/pkg/logger"
	"github.com/selivandex/stock-sentiment/pkg/models"
)

// LoadHeadlines reads the headline table. Columns headline, publisher and date
// are required, stock is optional. Unparseable dates become nil.
func LoadHeadlines(path string) ([]models.HeadlineRecord, LoadStats, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, LoadStats{File: path}, err
	}
	return headlinesFromTable(t)
}

func headlinesFromTable(t *table) ([]models.HeadlineRecord, LoadStats, error) {
	stats := LoadStats{File: t.file}

	headlineIdx, err := t.require("headline")
	if err != nil {
		return nil, stats, err
	}
	publisherIdx, err := t.require("publisher")
	if err != nil {
		return nil, stats, err
	}
	dateIdx, err := t.require("date")
	if err != nil {
		return nil, stats, err
	}
	stockIdx, hasStock := t.optional("stock")

	records := make([]models.HeadlineRecord, 0, len(t.rows))
	for _, row := range t.rows {
		record := models.HeadlineRecord{
			// headline text is kept verbatim, the scorer reads spacing and casing
			Text:        rawCell(row, headlineIdx),
			Publisher:   cell(row, publisherIdx),
			PublishedAt: ParseDate(cell(row, dateIdx)),
		}
		if hasStock {
			record.Stock = cell(row, stockIdx)
		}
		if record.PublishedAt == nil {
			stats.InvalidDates++
		}
		records = append(records, record)
	}
	stats.Rows = len(records)

	logger.Info("headlines loaded",
		zap.String("file", t.file),
		zap.Int("rows", stats.Rows),
		zap.Int("invalid_dates", stats.InvalidDates),
	)

	return records, stats, nil
}

func rawCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
