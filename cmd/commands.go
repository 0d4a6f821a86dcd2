package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/selivandex/stock-sentiment/internal/adapters/config"
	"github.com/selivandex/stock-sentiment/internal/adapters/database"
	"github.com/selivandex/stock-sentiment/internal/adapters/dataset"
	"github.com/selivandex/stock-sentiment/internal/adapters/storage"
	"github.com/selivandex/stock-sentiment/internal/charts"
	"github.com/selivandex/stock-sentiment/internal/descriptive"
	"github.com/selivandex/stock-sentiment/internal/publication"
	"github.com/selivandex/stock-sentiment/internal/report"
	"github.com/selivandex/stock-sentiment/internal/sentiment"
	"github.com/selivandex/stock-sentiment/pkg/logger"
	"github.com/selivandex/stock-sentiment/pkg/models"
)

type app struct {
	cfg *config.Config
	out io.Writer
}

// newFlagSet adds the flags every command shares
func (a *app) newFlagSet(name string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	format := fs.String("format", a.cfg.Output.Format, "Output format (text/json/yaml)")
	return fs, format
}

func (a *app) write(format string, r report.Report) error {
	f, err := report.ParseFormat(format)
	if err != nil {
		return err
	}
	w, err := report.NewWriter(f)
	if err != nil {
		return err
	}
	return w.Write(a.out, r)
}

// loadHeadlines reads the headline table, extracting it from the configured archive first
func (a *app) loadHeadlines(input string) ([]models.HeadlineRecord, dataset.LoadStats, error) {
	if input != "" {
		return dataset.LoadHeadlines(input)
	}
	if a.cfg.Data.Archive != "" {
		return dataset.LoadHeadlinesFromZip(a.cfg.Data.Archive, a.cfg.Data.Dir, a.cfg.Data.HeadlinesFile)
	}
	return dataset.LoadHeadlines(a.cfg.Data.Path(a.cfg.Data.HeadlinesFile))
}

func (a *app) openRepository(ctx context.Context) (*storage.Repository, func(), error) {
	db, err := database.New(ctx, &a.cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Health(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	if err := database.RunMigrations(db.Conn(), a.cfg.Database.MigrationsPath); err != nil {
		db.Close()
		return nil, nil, err
	}
	return storage.NewRepository(db.DB()), func() { db.Close() }, nil
}

func (a *app) analyze(ctx context.Context, args []string) error {
	fs, format := a.newFlagSet("analyze")
	input := fs.String("input", "", "Headline CSV (default from config)")
	outDir := fs.String("out", "", "Directory for scored_headlines.csv and daily sentiment CSV")
	top := fs.Int("top", a.cfg.Analysis.TopKeywords, "Number of keywords to report")
	workers := fs.Int("workers", a.cfg.Analysis.Workers, "Concurrent scoring workers")
	wordCloud := fs.Bool("wordcloud", false, "Also emit the word cloud chart")
	if err := fs.Parse(args); err != nil {
		return err
	}

	records, stats, err := a.loadHeadlines(*input)
	if err != nil {
		return err
	}

	pipeline := sentiment.NewPipeline(sentiment.NewScorer(), *workers)
	scored, err := pipeline.Analyze(ctx, records)
	if err != nil {
		return err
	}
	freq := pipeline.KeywordFrequencies(records)
	daily := sentiment.DailySentiment(scored)

	result := report.AnalysisReport{
		Source:    stats,
		Summary:   sentiment.Summarize(scored),
		Keywords:  freq.Top(*top),
		DailyRows: len(daily),
	}

	if *outDir != "" {
		err := report.WriteCSVFile(filepath.Join(*outDir, "scored_headlines.csv"), func(w io.Writer) error {
			return report.WriteScoredCSV(w, scored)
		})
		if err != nil {
			return err
		}
		err = report.WriteCSVFile(filepath.Join(*outDir, a.cfg.Data.DailySentimentFile), func(w io.Writer) error {
			return report.WriteDailyCSV(w, daily)
		})
		if err != nil {
			return err
		}
		logger.Info("analysis tables written", zap.String("dir", *outDir))
	}

	if a.cfg.Database.Enabled {
		repo, closeDB, err := a.openRepository(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		result.RunID = storage.NewRunID()
		if err := repo.SaveScoredHeadlines(ctx, result.RunID, scored); err != nil {
			return err
		}
		if err := repo.SaveDailySentiment(ctx, daily); err != nil {
			return err
		}
	}

	if err := a.write(*format, result); err != nil {
		return err
	}
	if *wordCloud {
		return a.write(*format, report.ChartReport{Charts: []*charts.Chart{charts.WordCloud(freq, *top)}})
	}
	return nil
}

func (a *app) describe(args []string) error {
	fs, format := a.newFlagSet("describe")
	input := fs.String("input", "", "Headline CSV (default from config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	records, stats, err := a.loadHeadlines(*input)
	if err != nil {
		return err
	}

	return a.write(*format, report.DescribeReport{
		Source:     stats,
		Lengths:    descriptive.HeadlineLengthStats(records),
		Publishers: descriptive.ArticlesPerPublisher(records),
		Weekdays:   descriptive.ArticlesByDayOfWeek(records),
		Times:      descriptive.ArticlesByTime(records),
		Domains:    descriptive.UniqueDomains(records),
	})
}

func (a *app) trends(args []string) error {
	fs, format := a.newFlagSet("trends")
	input := fs.String("input", "", "Headline CSV (default from config)")
	period := fs.Int("period", a.cfg.Analysis.DecompositionPeriod, "Seasonal period in quarters")
	if err := fs.Parse(args); err != nil {
		return err
	}

	records, _, err := a.loadHeadlines(*input)
	if err != nil {
		return err
	}

	annual := publication.AnnualTrends(records)
	quarterly := publication.QuarterlyTrends(records)

	result := report.ChartReport{Charts: []*charts.Chart{
		charts.TrendChart("Annual Article Trends", "Year", annual, "2006"),
		charts.TrendChart("Quarterly Article Trends", "Quarter", quarterly, "2006-01"),
	}}

	decomposition, err := publication.Decompose(quarterly.Values(), *period)
	switch {
	case errors.Is(err, publication.ErrInsufficientData):
		logger.Warn("skipping seasonal decomposition",
			zap.Int("quarters", len(quarterly.Counts)),
			zap.Int("period", *period),
		)
	case err != nil:
		return err
	default:
		labels := make([]string, len(quarterly.Counts))
		for i, c := range quarterly.Counts {
			labels[i] = c.Start.Format("2006-01")
		}
		result.Charts = append(result.Charts,
			charts.DecompositionChart("Quarterly Seasonal Decomposition", labels, decomposition))
	}

	return a.write(*format, result)
}

func (a *app) loadStocks(input string) (*models.StockTable, dataset.LoadStats, error) {
	if input == "" {
		input = a.cfg.Data.Path(a.cfg.Data.StocksFile)
	}
	return dataset.LoadStocks(input)
}

func (a *app) dashboard(ctx context.Context, args []string) error {
	fs, format := a.newFlagSet("dashboard")
	stocksFile := fs.String("stocks", "", "Stock price CSV (default from config)")
	dailyFile := fs.String("daily", "", "Daily sentiment CSV (default from config)")
	stock := fs.String("stock", "", "Stock symbol (default: first in table)")
	indicator := fs.String("indicator", string(charts.IndicatorMovingAverages),
		`Indicator: "Moving Averages", "RSI", "MACD" or "Daily Sentiment"`)
	if err := fs.Parse(args); err != nil {
		return err
	}

	table, _, err := a.loadStocks(*stocksFile)
	if err != nil {
		return err
	}

	symbol := *stock
	if symbol == "" {
		symbols := table.Symbols()
		if len(symbols) == 0 {
			return errors.New("stock table has no symbols")
		}
		symbol = symbols[0]
	}

	var daily []models.DailySentiment
	if charts.Indicator(*indicator) == charts.IndicatorSentiment {
		daily, err = a.loadDaily(ctx, symbol, *dailyFile)
		if err != nil {
			return err
		}
	}

	dash := charts.NewDashboard(table, daily, charts.Options{
		ShortWindow: a.cfg.Indicators.ShortWindow,
		LongWindow:  a.cfg.Indicators.LongWindow,
		RSIPeriod:   a.cfg.Indicators.RSIPeriod,
	})

	chart, err := dash.Render(symbol, charts.Indicator(*indicator))
	if err != nil {
		return err
	}

	return a.write(*format, report.ChartReport{Charts: []*charts.Chart{chart}})
}

// loadDaily prefers the stored daily sentiment when a database is configured
func (a *app) loadDaily(ctx context.Context, stock, input string) ([]models.DailySentiment, error) {
	if a.cfg.Database.Enabled && input == "" {
		repo, closeDB, err := a.openRepository(ctx)
		if err != nil {
			return nil, err
		}
		defer closeDB()
		return repo.GetDailySentiment(ctx, stock)
	}

	if input == "" {
		input = a.cfg.Data.Path(a.cfg.Data.DailySentimentFile)
	}
	daily, _, err := dataset.LoadDailySentiment(input)
	if err != nil {
		return nil, err
	}
	return sentiment.ForStock(daily, stock), nil
}

func (a *app) stocks(args []string) error {
	fs, format := a.newFlagSet("stocks")
	stocksFile := fs.String("stocks", "", "Stock price CSV (default from config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	table, stats, err := a.loadStocks(*stocksFile)
	if err != nil {
		return err
	}

	return a.write(*format, report.StocksReport{Source: stats, Stocks: table.Symbols()})
}
