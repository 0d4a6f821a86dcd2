package sentiment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/selivandex/stock-sentiment/pkg/models"
)

// lengthScorer gives every text a distinct compound derived from its length
type lengthScorer struct{}

func (lengthScorer) Score(text string) models.SentimentScore {
	compound := float64(len(text)%21)/10 - 1
	return models.SentimentScore{Neutral: 1, Compound: compound}
}

func TestPipeline_Analyze(t *testing.T) {
	pipeline := NewPipeline(NewScorer(), 1)

	records := []models.HeadlineRecord{
		{Text: "Stock surges on great news!", Publisher: "a"},
		{Text: "Stock plunges amid bad news", Publisher: "b"},
		{Text: "Market is flat today", Publisher: "c"},
	}

	scored, err := pipeline.Analyze(context.Background(), records)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if len(scored) != len(records) {
		t.Fatalf("Expected %d rows, got %d", len(records), len(scored))
	}

	expected := []models.SentimentLabel{models.LabelPositive, models.LabelNegative, models.LabelNeutral}
	for i, s := range scored {
		if s.Record != records[i] {
			t.Errorf("Row %d: record changed or reordered: %+v", i, s.Record)
		}
		if s.Label != expected[i] {
			t.Errorf("Row %d (%q): expected %s, got %s (compound %.3f)",
				i, records[i].Text, expected[i], s.Label, s.Score.Compound)
		}
	}
}

func TestPipeline_AnalyzeKeepsDegenerateRows(t *testing.T) {
	pipeline := NewPipeline(NewScorer(), 1)

	records := []models.HeadlineRecord{
		{Text: "!!! ???"},
		{Text: ""},
		{Text: "   \t "},
	}

	scored, err := pipeline.Analyze(context.Background(), records)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(scored) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(scored))
	}

	for i, s := range scored {
		if s.Label != models.LabelNeutral {
			t.Errorf("Row %d: expected Neutral, got %s", i, s.Label)
		}
		sum := s.Score.Negative + s.Score.Neutral + s.Score.Positive
		if sum < 0.99 || sum > 1.01 {
			t.Errorf("Row %d: components should sum to 1, got %.3f", i, sum)
		}
	}

	if got := pipeline.Keywords(records, 10); len(got) != 0 {
		t.Errorf("Expected no keywords, got %v", got)
	}
}

func TestPipeline_AnalyzeEmpty(t *testing.T) {
	pipeline := NewPipeline(NewScorer(), 4)

	scored, err := pipeline.Analyze(context.Background(), nil)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if scored == nil || len(scored) != 0 {
		t.Errorf("Expected empty non-nil result, got %#v", scored)
	}
	if kw := pipeline.Keywords(nil, 20); kw == nil || len(kw) != 0 {
		t.Errorf("Expected empty keyword list, got %#v", kw)
	}
}

func TestPipeline_ParallelPreservesOrder(t *testing.T) {
	records := make([]models.HeadlineRecord, 500)
	for i := range records {
		records[i] = models.HeadlineRecord{Text: strings.Repeat("x", i), Publisher: fmt.Sprint(i)}
	}

	sequential, err := NewPipeline(lengthScorer{}, 1).Analyze(context.Background(), records)
	if err != nil {
		t.Fatalf("Sequential analyze failed: %v", err)
	}
	parallel, err := NewPipeline(lengthScorer{}, 8).Analyze(context.Background(), records)
	if err != nil {
		t.Fatalf("Parallel analyze failed: %v", err)
	}

	for i := range records {
		if parallel[i] != sequential[i] {
			t.Fatalf("Row %d differs: %+v vs %+v", i, parallel[i], sequential[i])
		}
		if parallel[i].Record.Publisher != fmt.Sprint(i) {
			t.Fatalf("Row %d out of order", i)
		}
	}
}

func TestPipeline_DoesNotMutateInput(t *testing.T) {
	ts := time.Date(2020, 6, 5, 10, 30, 0, 0, time.UTC)
	records := []models.HeadlineRecord{{Text: "Great earnings", Publisher: "p", PublishedAt: &ts}}
	before := records[0]

	if _, err := NewPipeline(NewScorer(), 1).Analyze(context.Background(), records); err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if records[0] != before || !records[0].PublishedAt.Equal(ts) {
		t.Error("Input records should not be modified")
	}
}

func TestPipeline_AnalyzeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPipeline(lengthScorer{}, 2).Analyze(ctx, []models.HeadlineRecord{{Text: "a"}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestScorer_Deterministic(t *testing.T) {
	scorer := NewScorer()
	text := "Shares SOAR after blowout quarter!!!"

	first := scorer.Score(text)
	for i := 0; i < 5; i++ {
		if got := scorer.Score(text); got != first {
			t.Fatalf("Score not deterministic: %+v vs %+v", got, first)
		}
	}
	if first.Compound < -1 || first.Compound > 1 {
		t.Errorf("Compound out of range: %.3f", first.Compound)
	}
}

func TestScorer_EmptyIsNeutral(t *testing.T) {
	if got := NewScorer().Score(""); got != models.NeutralScore() {
		t.Errorf("Expected neutral score, got %+v", got)
	}
}

func TestSummarize(t *testing.T) {
	scored := []models.ScoredHeadline{
		{Score: models.SentimentScore{Compound: 0.6}, Label: models.LabelPositive},
		{Score: models.SentimentScore{Compound: -0.4}, Label: models.LabelNegative},
		{Score: models.SentimentScore{Compound: 0.1}, Label: models.LabelPositive},
		{Score: models.SentimentScore{Compound: 0}, Label: models.LabelNeutral},
	}

	summary := Summarize(scored)
	if summary.TotalItems != 4 || summary.PositiveCount != 2 || summary.NegativeCount != 1 || summary.NeutralCount != 1 {
		t.Errorf("Unexpected counts: %+v", summary)
	}
	if diff := summary.AverageCompound - 0.075; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Expected average 0.075, got %v", summary.AverageCompound)
	}

	if empty := Summarize(nil); empty.TotalItems != 0 || empty.AverageCompound != 0 {
		t.Errorf("Expected zero summary, got %+v", empty)
	}
}
