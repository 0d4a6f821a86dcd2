package templates

import (
	"bytes"
	"testing"
	"testing/fstest"
)

func TestNewManager(t *testing.T) {
	fsys := fstest.MapFS{
		"summary.tmpl":       {Data: []byte(`{{define "summary"}}{{.Name}}: {{printf "%.1f" (pct .Part .Total)}}%{{end}}`)},
		"nested/table.tmpl":  {Data: []byte(`{{define "table"}}[{{pad 6 .}}]{{end}}`)},
		"nested/ignored.txt": {Data: []byte(`not a template`)},
	}

	manager, err := NewManager(fsys, "memory")
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	tests := []struct {
		name     string
		template string
		data     any
		want     string
	}{
		{"pct helper", "summary", map[string]any{"Name": "positive", "Part": 1, "Total": 4}, "positive: 25.0%"},
		{"pad helper", "table", "abc", "[abc   ]"},
		{"pad counts runes", "table", "héé", "[héé   ]"},
		{"pad keeps long values", "table", "Montag1", "[Montag1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := manager.Execute(&buf, tt.template, tt.data); err != nil {
				t.Fatalf("Execute failed: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}

	if err := manager.Execute(&bytes.Buffer{}, "missing", nil); err == nil {
		t.Error("Expected error for missing template")
	}
}

func TestNewManager_NoTemplates(t *testing.T) {
	if _, err := NewManager(fstest.MapFS{}, "empty"); err == nil {
		t.Error("Expected error when no templates are found")
	}
}

func TestNewManagerWithValidation(t *testing.T) {
	fsys := fstest.MapFS{
		"a.tmpl": {Data: []byte(`{{define "a"}}A{{end}}`)},
	}

	if _, err := NewManagerWithValidation(fsys, "memory", []string{"a"}); err != nil {
		t.Errorf("Expected validation to pass: %v", err)
	}
	if _, err := NewManagerWithValidation(fsys, "memory", []string{"a", "b"}); err == nil {
		t.Error("Expected error for missing required template")
	}
	if _, err := NewManagerWithValidation(fsys, "memory", []string{"a"}, "other/*.tmpl"); err == nil {
		t.Error("Expected error when patterns match nothing")
	}
}
