package pkg

import (
	"strings"
	"time"

	cn "github.com/foodops/stockbook/pkg/constant"
)

var instantLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseInstant parses an ISO-8601 instant or a plain date. Plain dates resolve
// to midnight UTC.
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, cn.ErrMalformedDate
}
