package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/selivandex/stock-sentiment/pkg/logger"
	"github.com/selivandex/stock-sentiment/pkg/models"
)

// Repository persists scored headlines and daily sentiment in postgres
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates a new sentiment repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// NewRunID returns a fresh identifier for one analysis run
func NewRunID() string {
	return uuid.NewString()
}

// SaveScoredHeadlines stores one analysis run in a single transaction.
// Either every row is written or none is.
func (r *Repository) SaveScoredHeadlines(ctx context.Context, runID string, scored []models.ScoredHeadline) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO scored_headlines
		(run_id, position, headline, publisher, published_at, stock, negative, neutral, positive, compound, label)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare headline insert: %w", err)
	}
	defer stmt.Close()

	for i, s := range scored {
		_, err := stmt.ExecContext(ctx,
			runID,
			i,
			s.Record.Text,
			s.Record.Publisher,
			s.Record.PublishedAt,
			s.Record.Stock,
			s.Score.Negative,
			s.Score.Neutral,
			s.Score.Positive,
			s.Score.Compound,
			string(s.Label),
		)
		if err != nil {
			return fmt.Errorf("failed to save headline %d of run %s: %w", i, runID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run %s: %w", runID, err)
	}

	logger.Info("scored headlines saved",
		zap.String("run_id", runID),
		zap.Int("rows", len(scored)),
	)

	return nil
}

// GetScoredHeadlines loads one run in the order it was saved
func (r *Repository) GetScoredHeadlines(ctx context.Context, runID string) ([]models.ScoredHeadline, error) {
	rows, err := r.db.QueryxContext(ctx, `
		SELECT headline, publisher, published_at, stock, negative, neutral, positive, compound, label
		FROM scored_headlines
		WHERE run_id = $1
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run %s: %w", runID, err)
	}
	defer rows.Close()

	scored := make([]models.ScoredHeadline, 0)
	for rows.Next() {
		var s models.ScoredHeadline
		var label string
		err := rows.Scan(
			&s.Record.Text,
			&s.Record.Publisher,
			&s.Record.PublishedAt,
			&s.Record.Stock,
			&s.Score.Negative,
			&s.Score.Neutral,
			&s.Score.Positive,
			&s.Score.Compound,
			&label,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan headline: %w", err)
		}
		s.Label = models.SentimentLabel(label)
		scored = append(scored, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read run %s: %w", runID, err)
	}

	return scored, nil
}

// SaveDailySentiment upserts daily rows keyed by stock and day
func (r *Repository) SaveDailySentiment(ctx context.Context, daily []models.DailySentiment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO daily_sentiment (stock, day, compound, headline_count, label, updated_at)
		VALUES (:stock, :day, :compound, :headline_count, :label, NOW())
		ON CONFLICT (stock, day) DO UPDATE SET
			compound = EXCLUDED.compound,
			headline_count = EXCLUDED.headline_count,
			label = EXCLUDED.label,
			updated_at = NOW()
	`

	for _, d := range daily {
		if _, err := tx.NamedExecContext(ctx, query, d); err != nil {
			return fmt.Errorf("failed to save daily sentiment for %s on %s: %w",
				d.Stock, d.Date.Format("2006-01-02"), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit daily sentiment: %w", err)
	}

	logger.Info("daily sentiment saved", zap.Int("rows", len(daily)))

	return nil
}

// GetDailySentiment returns the daily rows of one stock ordered by day
func (r *Repository) GetDailySentiment(ctx context.Context, stock string) ([]models.DailySentiment, error) {
	daily := make([]models.DailySentiment, 0)
	err := r.db.SelectContext(ctx, &daily, `
		SELECT stock, day, compound, headline_count, label
		FROM daily_sentiment
		WHERE stock = $1
		ORDER BY day
	`, stock)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily sentiment for %s: %w", stock, err)
	}

	return daily, nil
}
