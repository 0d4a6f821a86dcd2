package dataset

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate parses a timestamp in any of the common layouts found in news and
// price exports. Values without a zone are read as UTC and every result is
// converted to UTC. Blank or unparseable input yields nil.
func ParseDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return nil
	}

	t = t.UTC()
	return &t
}
