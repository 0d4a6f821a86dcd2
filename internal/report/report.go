// Package report writes analysis results as JSON, YAML, plain text or CSV.
package report

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/selivandex/stock-sentiment/internal/adapters/dataset"
	"github.com/selivandex/stock-sentiment/internal/charts"
	"github.com/selivandex/stock-sentiment/internal/descriptive"
	"github.com/selivandex/stock-sentiment/pkg/models"
	"github.com/selivandex/stock-sentiment/pkg/templates"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Format is an output encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// ParseFormat validates an output format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want json, yaml or text)", s)
	}
}

// Report is any result that has a text template
type Report interface {
	TemplateName() string
}

// AnalysisReport is the result of scoring a headline table
type AnalysisReport struct {
	Source    dataset.LoadStats       `json:"source" yaml:"source"`
	Summary   models.SentimentSummary `json:"summary" yaml:"summary"`
	Keywords  []models.KeywordCount   `json:"keywords" yaml:"keywords"`
	DailyRows int                     `json:"daily_rows" yaml:"daily_rows"`
	RunID     string                  `json:"run_id,omitempty" yaml:"run_id,omitempty"`
}

func (AnalysisReport) TemplateName() string { return "analysis" }

// DescribeReport holds the descriptive views of a headline table
type DescribeReport struct {
	Source     dataset.LoadStats       `json:"source" yaml:"source"`
	Lengths    descriptive.LengthStats `json:"headline_length" yaml:"headline_length"`
	Publishers descriptive.CountView   `json:"publishers" yaml:"publishers"`
	Weekdays   descriptive.CountView   `json:"day_of_week" yaml:"day_of_week"`
	Times      descriptive.CountView   `json:"publication_time" yaml:"publication_time"`
	Domains    descriptive.CountView   `json:"domains" yaml:"domains"`
}

func (DescribeReport) TemplateName() string { return "describe" }

// ChartReport wraps chart specifications
type ChartReport struct {
	Charts []*charts.Chart `json:"charts" yaml:"charts"`
}

func (ChartReport) TemplateName() string { return "charts" }

// StocksReport lists the symbols of a stock table
type StocksReport struct {
	Source dataset.LoadStats `json:"source" yaml:"source"`
	Stocks []string          `json:"stocks" yaml:"stocks"`
}

func (StocksReport) TemplateName() string { return "stocks" }

// Writer encodes reports in one format
type Writer struct {
	format    Format
	templates *templates.Manager
}

// NewWriter creates a writer, loading the embedded text templates
func NewWriter(format Format) (*Writer, error) {
	manager, err := templates.NewManagerWithValidation(templateFS, "embedded",
		[]string{"analysis", "describe", "charts", "stocks"}, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to load report templates: %w", err)
	}
	return &Writer{format: format, templates: manager}, nil
}

// Format returns the writer's output format
func (w *Writer) Format() Format {
	return w.format
}

// Write encodes r to out
func (w *Writer) Write(out io.Writer, r Report) error {
	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode %s report as json: %w", r.TemplateName(), err)
		}
		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode %s report as yaml: %w", r.TemplateName(), err)
		}
		return enc.Close()

	case FormatText:
		return w.templates.Execute(out, r.TemplateName(), r)

	default:
		return fmt.Errorf("unsupported output format %q", w.format)
	}
}
