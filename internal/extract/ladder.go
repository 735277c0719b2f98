package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tobi-akande/expense-scanner/internal/entity"
)

// capturePattern is one rung of a matcher ladder: a compiled pattern with a
// single capture group and the confidence awarded when it matches.
type capturePattern struct {
	re         *regexp.Regexp
	confidence float64
}

// firstCapture evaluates a ladder in order; the first pattern whose capture
// group matches wins.
func firstCapture(ladder []capturePattern, text string) entity.FieldResult {
	for _, p := range ladder {
		if m := p.re.FindStringSubmatch(text); m != nil {
			return entity.Str(strings.TrimSpace(m[1]), p.confidence)
		}
	}
	return entity.NoMatch()
}

// firstAmount is firstCapture for money ladders: the captured candidate must
// float-parse after stripping thousands separators. An unparsable candidate
// skips to the next pattern, it is not an error.
func firstAmount(ladder []capturePattern, text string) entity.FieldResult {
	for _, p := range ladder {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		amount := strings.ReplaceAll(m[1], ",", "")
		if _, err := strconv.ParseFloat(amount, 64); err != nil {
			continue
		}
		return entity.Str(amount, p.confidence)
	}
	return entity.NoMatch()
}

// parseMoney strips thousands separators and float-parses a candidate.
func parseMoney(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
