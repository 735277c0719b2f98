package validate

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tobi-akande/expense-scanner/internal/entity"
)

// acceptedDateFormats is tried in order; the first successful parse wins.
// Layouts are unpadded so single-digit months and days are accepted. The
// two-digit-year layouts come last and cover dates like 01-15-25, which the
// extractor's date pattern accepts.
var acceptedDateFormats = []string{
	"1/2/2006", // month/day/year
	"2/1/2006", // day/month/year
	"2006-1-2",
	"1-2-2006",
	"2-1-2006",
	"1/2/06",
	"1-2-06",
}

var acceptedTimeFormats = []string{
	"15:04",
	"3:04 PM",
	"15:04:05",
}

// parseDate tries the accepted formats in order.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range acceptedDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseClock tries the accepted time-of-day formats in order.
func parseClock(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range acceptedTimeFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
		// am/pm markers may arrive lowercased from the matcher
		if t, err := time.Parse(layout, strings.ToUpper(s)); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dateOnly truncates to midnight for date comparisons.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// floatOrZero reads an optional stored value as a float. A missing value is
// 0; a malformed value is the caller's group-level degradation trigger.
func floatOrZero(s *string) (float64, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(*s), 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// fieldValue returns the raw value of a field, or nil when the key is absent
// or unpopulated.
func fieldValue(fields map[string]entity.FieldResult, name string) *string {
	fr, ok := fields[name]
	if !ok {
		return nil
	}
	return fr.Value
}

// detailOr falls back to a field value when the details record lacks one.
func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}
