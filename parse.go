package moonglide

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parseLayouts are tried in order by ParseTime.
var parseLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime interprets s as an instant. It accepts RFC 3339,
// "YYYY-MM-DDTHH:MM", "YYYY-MM-DD HH:MM", "YYYY-MM-DD" and plain Unix
// seconds (optionally fractional). Layouts without a zone are read in loc,
// or UTC when loc is nil.
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty time", ErrInvalidInput)
	}

	if sec, err := strconv.ParseFloat(s, 64); err == nil {
		if err := checkUnixFloat(sec); err != nil {
			return time.Time{}, err
		}
		whole, frac := splitSeconds(sec)
		return time.Unix(whole, frac).UTC(), nil
	}

	for _, layout := range parseLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: cannot parse %q", ErrInvalidInput, s)
}

// Parse is ParseTime followed by At.
func Parse(s string, loc *time.Location, opts ...Option) (*Snapshot, error) {
	t, err := ParseTime(s, loc)
	if err != nil {
		return nil, err
	}
	return At(t, opts...)
}

func splitSeconds(sec float64) (int64, int64) {
	whole := int64(sec)
	frac := int64((sec - float64(whole)) * 1e9)
	if frac < 0 {
		whole--
		frac += 1e9
	}
	return whole, frac
}
