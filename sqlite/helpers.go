package sqlite

import (
	"database/sql"
	"fmt"
	"time"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// parseDateColumn parses a nullable ISO calendar-date column into an
// optional date at midnight UTC.
func parseDateColumn(value sql.NullString, fieldName string) (*time.Time, error) {
	if !value.Valid || value.String == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value.String)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return &t, nil
}

// nullString maps an empty string to SQL NULL, preserving the natural-key
// semantics of an absent document URL.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullSize maps an absent size to SQL NULL.
func nullSize(size *int64) any {
	if size == nil {
		return nil
	}
	return *size
}

// nullDate maps an absent date to SQL NULL, otherwise to its ISO form.
func nullDate(d *time.Time) any {
	if d == nil {
		return nil
	}
	return d.Format("2006-01-02")
}
