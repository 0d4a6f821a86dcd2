package sentiment

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/selivandex/stock-sentiment/pkg/logger"
	"github.com/selivandex/stock-sentiment/pkg/models"
	"github.com/selivandex/stock-sentiment/pkg/worker"
)

// Pipeline scores and labels headline collections
type Pipeline struct {
	scorer PolarityScorer
	pool   *worker.Pool
}

// NewPipeline creates new pipeline. workers > 1 scores records concurrently;
// output order is the input order either way.
func NewPipeline(scorer PolarityScorer, workers int) *Pipeline {
	return &Pipeline{
		scorer: scorer,
		pool:   worker.NewPool("sentiment", workers),
	}
}

// Analyze returns one scored headline per record, in input order. Records with
// empty text are scored as well, nothing is filtered out.
func (p *Pipeline) Analyze(ctx context.Context, records []models.HeadlineRecord) ([]models.ScoredHeadline, error) {
	start := time.Now()
	scored := make([]models.ScoredHeadline, len(records))

	err := p.pool.Run(ctx, len(records), func(ctx context.Context, i int) error {
		scored[i] = p.scoreRecord(records[i])
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("sentiment analysis aborted: %w", err)
	}

	logger.Info("headlines scored",
		zap.Int("count", len(scored)),
		zap.Int("workers", p.pool.Workers()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return scored, nil
}

func (p *Pipeline) scoreRecord(record models.HeadlineRecord) models.ScoredHeadline {
	score := p.scorer.Score(record.Text)
	return models.ScoredHeadline{
		Record: record,
		Score:  score,
		Label:  Categorize(score.Compound),
	}
}

// Keywords ranks the most frequent tokens of the record texts
func (p *Pipeline) Keywords(records []models.HeadlineRecord, n int) []models.KeywordCount {
	return TopKeywords(Texts(records), n)
}

// KeywordFrequencies returns the full ranked token counts for word cloud views
func (p *Pipeline) KeywordFrequencies(records []models.HeadlineRecord) models.KeywordFrequency {
	return Frequencies(Texts(records))
}

// Texts extracts headline texts in record order
func Texts(records []models.HeadlineRecord) []string {
	texts := make([]string, len(records))
	for i, r := range records {
		texts[i] = r.Text
	}
	return texts
}

// Summarize counts labels and averages compound scores
func Summarize(scored []models.ScoredHeadline) models.SentimentSummary {
	summary := models.SentimentSummary{TotalItems: len(scored)}
	if len(scored) == 0 {
		return summary
	}

	var total float64
	for _, s := range scored {
		total += s.Score.Compound
		switch s.Label {
		case models.LabelPositive:
			summary.PositiveCount++
		case models.LabelNegative:
			summary.NegativeCount++
		default:
			summary.NeutralCount++
		}
	}
	summary.AverageCompound = total / float64(len(scored))

	return summary
}
