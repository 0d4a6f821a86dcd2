package templates

import (
	"fmt"
	"io"
	"io/fs"
	"strings"
	"text/template"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/selivandex/stock-sentiment/pkg/logger"
)

// Manager manages templates parsed from a file system
type Manager struct {
	templates *template.Template
}

// GetDefaultFuncMap returns common template helper functions
func GetDefaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"pct": func(part, total int) float64 {
			if total == 0 {
				return 0
			}
			return float64(part) * 100 / float64(total)
		},
		"pad": func(width int, s string) string {
			n := utf8.RuneCountInString(s)
			if n >= width {
				return s
			}
			return s + strings.Repeat(" ", width-n)
		},
		"printf": fmt.Sprintf,
	}
}

// NewManager parses every template matching patterns in fsys. Patterns that
// match nothing are ignored, but at least one template must be found.
func NewManager(fsys fs.FS, source string, patterns ...string) (*Manager, error) {
	if len(patterns) == 0 {
		patterns = []string{"*.tmpl", "*/*.tmpl"}
	}

	tmpl := template.New("root").Funcs(GetDefaultFuncMap())
	for _, pattern := range patterns {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid template pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			continue
		}
		if tmpl, err = tmpl.ParseFS(fsys, matches...); err != nil {
			return nil, fmt.Errorf("failed to parse templates from %s: %w", source, err)
		}
	}

	templateCount := len(tmpl.Templates())
	if templateCount <= 1 { // "root" template doesn't count
		return nil, fmt.Errorf("no templates found in %s", source)
	}

	logger.Debug("templates loaded",
		zap.Int("count", templateCount),
		zap.String("source", source),
	)

	return &Manager{templates: tmpl}, nil
}

// NewManagerWithValidation creates manager and validates required templates exist
func NewManagerWithValidation(fsys fs.FS, source string, requiredTemplates []string, patterns ...string) (*Manager, error) {
	manager, err := NewManager(fsys, source, patterns...)
	if err != nil {
		return nil, err
	}

	for _, name := range requiredTemplates {
		if manager.templates.Lookup(name) == nil {
			return nil, fmt.Errorf("required template not found: %s", name)
		}
	}

	return manager, nil
}

// Execute renders template name into w
func (m *Manager) Execute(w io.Writer, name string, data any) error {
	tmpl := m.templates.Lookup(name)
	if tmpl == nil {
		return fmt.Errorf("template %s not found", name)
	}

	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return nil
}
