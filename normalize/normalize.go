// Package normalize parses the loosely formatted field text found on
// listing pages (dates, file sizes, file extensions) into canonical
// values. All functions are best-effort: unparseable input yields a
// "not found" result, never an error.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	sizeRE       = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(KB|MB|GB|B)\b`)
	fileTypeRE   = regexp.MustCompile(`\.([A-Za-z0-9]{1,6})$`)
	whitespaceRE = regexp.MustCompile(`\s+`)
)

// ParseDate parses a loosely formatted, day-first date string. Internal
// whitespace is collapsed, the parsed instant is interpreted in loc, and
// only the calendar date is kept (midnight UTC). The second return value
// is false when text is empty or unparseable.
func ParseDate(text string, loc *time.Location) (time.Time, bool) {
	text = whitespaceRE.ReplaceAllString(strings.TrimSpace(text), " ")
	if text == "" {
		return time.Time{}, false
	}

	t, err := dateparse.ParseIn(text, loc,
		dateparse.PreferMonthFirst(false),
		dateparse.RetryAmbiguousDateWithSwap(true),
	)
	if err != nil {
		return time.Time{}, false
	}

	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
}

// ParseSize scans text for a "<number><unit>" token with unit B, KB, MB
// or GB (case-insensitive) and converts it to bytes using binary
// multipliers. The number may use a comma as decimal separator. The
// second return value is false when no size token is found.
func ParseSize(text string) (int64, bool) {
	m := sizeRE.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return 0, false
	}

	var mult float64
	switch strings.ToUpper(m[2]) {
	case "B":
		mult = 1
	case "KB":
		mult = 1 << 10
	case "MB":
		mult = 1 << 20
	case "GB":
		mult = 1 << 30
	}

	return int64(value * mult), true
}

// FileType returns the lowercase extension following the final dot of the
// URL path: 1 to 6 alphanumeric characters. The second return value is
// false when the URL carries no recognizable extension.
func FileType(url string) (string, bool) {
	m := fileTypeRE.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return strings.ToLower(m[1]), true
}
