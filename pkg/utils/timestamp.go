package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"transport-data-service/pkg/errs"
)

// DATE_LAYOUT is the fixed input format for human-entered date/time fields:
// 24-hour, no timezone.
const DATE_LAYOUT = "2006-01-02 15:04"

// ParseTimestamp parses a human-entered timestamp. An empty string is a valid
// absent value and yields nil. A malformed value is a local validation error
// and never reaches the store.
func ParseTimestamp(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DATE_LAYOUT, value)
	if err != nil {
		return nil, &errs.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("invalid timestamp %q, expected format %s", value, DATE_LAYOUT),
		}
	}
	return &t, nil
}

// FormatTimestamp renders a timestamp in the fixed input format; nil renders
// as an empty string.
func FormatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DATE_LAYOUT)
}

// ParseID parses a human-entered primary key value.
func ParseID(field, value string) (uint, error) {
	value = strings.TrimSpace(value)
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, &errs.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("invalid id %q, expected a positive integer", value),
		}
	}
	return uint(id), nil
}
