package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Analysis.TopKeywords != 20 {
		t.Errorf("Expected 20 top keywords, got %d", cfg.Analysis.TopKeywords)
	}
	if cfg.Indicators.ShortWindow != 20 || cfg.Indicators.LongWindow != 50 || cfg.Indicators.RSIPeriod != 14 {
		t.Errorf("Unexpected indicator defaults: %+v", cfg.Indicators)
	}
	if cfg.Database.Enabled {
		t.Error("Database should be disabled by default")
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Expected text output, got %s", cfg.Output.Format)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	content := "ANALYSIS_TOP_KEYWORDS=5\nOUTPUT_FORMAT=yaml\nDATA_DIR=/srv/data\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Cleanup(func() {
		os.Unsetenv("ANALYSIS_TOP_KEYWORDS")
		os.Unsetenv("OUTPUT_FORMAT")
		os.Unsetenv("DATA_DIR")
	})

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Analysis.TopKeywords != 5 {
		t.Errorf("Expected 5 top keywords, got %d", cfg.Analysis.TopKeywords)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Expected yaml output, got %s", cfg.Output.Format)
	}
	if got := cfg.Data.Path("stock_data.csv"); got != filepath.Join("/srv/data", "stock_data.csv") {
		t.Errorf("Unexpected data path: %s", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Analysis:   AnalysisConfig{TopKeywords: 20, Workers: 1, DecompositionPeriod: 4},
			Indicators: IndicatorsConfig{ShortWindow: 20, LongWindow: 50, RSIPeriod: 14},
			Output:     OutputConfig{Format: "json"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"negative keywords", func(c *Config) { c.Analysis.TopKeywords = -1 }, true},
		{"zero workers", func(c *Config) { c.Analysis.Workers = 0 }, true},
		{"short window not below long", func(c *Config) { c.Indicators.ShortWindow = 50 }, true},
		{"tiny rsi period", func(c *Config) { c.Indicators.RSIPeriod = 1 }, true},
		{"unknown format", func(c *Config) { c.Output.Format = "xml" }, true},
		{"database without password", func(c *Config) { c.Database.Enabled = true }, true},
		{"database with password", func(c *Config) {
			c.Database.Enabled = true
			c.Database.Password = "secret"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: 5433, User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	expected := "host=db port=5433 user=u password=p dbname=n sslmode=disable"
	if got := cfg.GetDSN(); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}
