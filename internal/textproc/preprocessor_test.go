package textproc

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "mixed case and punctuation",
			text: "Stock surges on great news!",
			want: []string{"stock", "surges", "great", "news"},
		},
		{
			name: "digits and symbols removed",
			text: "AAPL up 5% to $150.25 in Q3",
			want: []string{"aapl", "q"},
		},
		{
			name: "punctuation joins word parts",
			text: "Apple's don't-miss report",
			want: []string{"apples", "dontmiss", "report"},
		},
		{
			name: "only punctuation",
			text: "!!! ???",
			want: []string{},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
		{
			name: "only stopwords",
			text: "The and of it is",
			want: []string{},
		},
		{
			name: "non latin letters dropped",
			text: "Café résumé 株価",
			want: []string{"caf", "rsum"},
		},
		{
			name: "tabs and newlines split tokens",
			text: "market\tnews\nflat",
			want: []string{"market", "news", "flat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.text)
			if got == nil {
				t.Fatal("Normalize should never return nil")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	texts := []string{
		"Stock surges on great news!",
		"Why Apple's (AAPL) Stock Is Down Today?",
		"  lots   of   spacing\tand TABS ",
		"!!! ???",
		"72 Stocks Moving In Friday's Mid-Day Session",
	}

	for _, text := range texts {
		once := Normalize(text)
		twice := Normalize(NormalizeString(text))
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("Normalize not idempotent for %q: %v vs %v", text, once, twice)
		}
	}
}

func TestStopwords(t *testing.T) {
	if StopwordCount() != 179 {
		t.Errorf("Expected 179 stopwords, got %d", StopwordCount())
	}

	for _, w := range []string{"the", "is", "on", "amid"} {
		got := IsStopword(w)
		want := w != "amid"
		if got != want {
			t.Errorf("IsStopword(%q) = %v, want %v", w, got, want)
		}
	}
}
