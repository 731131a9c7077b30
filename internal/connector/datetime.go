package connector

import (
	"strings"
	"time"
)

// postedAtLayouts are tried in order. The source emits local-looking
// timestamps without an offset, at varying precision.
var postedAtLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parsePostedAt interprets the machine-readable timestamp attached to a
// listing. Spaces are normalized to the ISO separator and the result is
// asserted to be UTC, not converted. Unparseable input yields nil.
func parsePostedAt(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	normalized := strings.ReplaceAll(raw, " ", "T")
	for _, layout := range postedAtLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return &t
		}
	}
	return nil
}
