package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config represents application configuration
type Config struct {
	Data       DataConfig       `envconfig:"DATA"`
	Analysis   AnalysisConfig   `envconfig:"ANALYSIS"`
	Indicators IndicatorsConfig `envconfig:"INDICATORS"`
	Database   DatabaseConfig   `envconfig:"DATABASE"`
	Logging    LoggingConfig    `envconfig:"LOGGING"`
	Output     OutputConfig     `envconfig:"OUTPUT"`
}

// DataConfig locates the input tables
type DataConfig struct {
	Dir                string `envconfig:"DATA_DIR" default:"data"`
	HeadlinesFile      string `envconfig:"DATA_HEADLINES_FILE" default:"raw_analyst_ratings.csv"`
	StocksFile         string `envconfig:"DATA_STOCKS_FILE" default:"stock_data.csv"`
	DailySentimentFile string `envconfig:"DATA_DAILY_SENTIMENT_FILE" default:"daily_sentiment.csv"`
	Archive            string `envconfig:"DATA_ARCHIVE" required:"false"` // optional zip holding the CSVs
}

// AnalysisConfig represents sentiment and trend analysis parameters
type AnalysisConfig struct {
	TopKeywords         int `envconfig:"ANALYSIS_TOP_KEYWORDS" default:"20"`
	Workers             int `envconfig:"ANALYSIS_WORKERS" default:"1"`
	DecompositionPeriod int `envconfig:"ANALYSIS_DECOMPOSITION_PERIOD" default:"4"`
}

// IndicatorsConfig represents technical indicator periods
type IndicatorsConfig struct {
	ShortWindow int `envconfig:"INDICATORS_SHORT_WINDOW" default:"20"`
	LongWindow  int `envconfig:"INDICATORS_LONG_WINDOW" default:"50"`
	RSIPeriod   int `envconfig:"INDICATORS_RSI_PERIOD" default:"14"`
}

// DatabaseConfig represents database connection parameters
type DatabaseConfig struct {
	Enabled        bool   `envconfig:"DB_ENABLED" default:"false"`
	Host           string `envconfig:"DB_HOST" default:"localhost"`
	Port           int    `envconfig:"DB_PORT" default:"5432"`
	Name           string `envconfig:"DB_NAME" default:"sentiment"`
	User           string `envconfig:"DB_USER" default:"sentiment"`
	Password       string `envconfig:"DB_PASSWORD" required:"false"`
	SSLMode        string `envconfig:"DB_SSLMODE" default:"disable"`
	MigrationsPath string `envconfig:"DB_MIGRATIONS_PATH" default:"migrations"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
	File  string `envconfig:"LOG_FILE" required:"false"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Format string `envconfig:"OUTPUT_FORMAT" default:"text"` // text, json or yaml
}

// Load reads configuration from a .env file (if present) and environment variables
func Load(envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}

	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFiles loads dotenv files without overriding variables already set.
// With no arguments ".env" is tried; a missing file is not an error.
func loadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}
	return nil
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if c.Analysis.TopKeywords < 0 {
		return fmt.Errorf("top_keywords must not be negative")
	}
	if c.Analysis.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}
	if c.Analysis.DecompositionPeriod < 2 {
		return fmt.Errorf("decomposition_period must be at least 2")
	}

	if c.Indicators.ShortWindow < 1 || c.Indicators.LongWindow < 1 {
		return fmt.Errorf("moving average windows must be positive")
	}
	if c.Indicators.ShortWindow >= c.Indicators.LongWindow {
		return fmt.Errorf("short_window must be smaller than long_window")
	}
	if c.Indicators.RSIPeriod < 2 {
		return fmt.Errorf("rsi_period must be at least 2")
	}

	switch strings.ToLower(c.Output.Format) {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format: %s", c.Output.Format)
	}

	if c.Database.Enabled && c.Database.Password == "" {
		return fmt.Errorf("database password is required when database is enabled")
	}

	return nil
}

// GetDSN returns PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Path joins a data file name onto the data directory
func (d *DataConfig) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(d.Dir, name)
}
