// Package dates normalizes expiry dates to the canonical YYYY-MM-DD wire
// form and answers "how long until this expires" questions. An absent or
// unparseable date is treated as "never expires": DaysLeft reports +Inf and
// IsExpired reports false, so missing dates never block sorting or display.
package dates

import (
	"math"
	"strings"
	"time"
)

const Layout = "2006-01-02"

// ToYMD converts a stored value into canonical YYYY-MM-DD form.
// Strings are trimmed and returned as-is (empty means "no date");
// time.Time values are formatted. Anything else yields "".
func ToYMD(v any) string {
	switch d := v.(type) {
	case string:
		return strings.TrimSpace(d)
	case time.Time:
		if d.IsZero() {
			return ""
		}
		return d.Format(Layout)
	case *time.Time:
		if d == nil || d.IsZero() {
			return ""
		}
		return d.Format(Layout)
	default:
		return ""
	}
}

// Parse returns the local-midnight time for a canonical date string.
func Parse(ymd string) (time.Time, bool) {
	ymd = strings.TrimSpace(ymd)
	if ymd == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(Layout, ymd, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DaysLeft returns the count of calendar days from today (local midnight)
// to the given date. Today is 0, tomorrow 1, yesterday -1. Empty or
// unparseable input yields +Inf.
func DaysLeft(ymd string) float64 {
	d, ok := Parse(ymd)
	if !ok {
		return math.Inf(1)
	}
	return float64(calendarDays(today(), d))
}

// IsNever reports whether a DaysLeft result means "never expires".
func IsNever(daysLeft float64) bool {
	return math.IsInf(daysLeft, 1)
}

// IsExpired reports whether the date is strictly before today's local
// midnight. A date equal to today is not expired; absent dates never are.
func IsExpired(ymd string) bool {
	d, ok := Parse(ymd)
	if !ok {
		return false
	}
	return d.Before(today())
}

// TodayYMD returns today's date in canonical form.
func TodayYMD() string {
	return today().Format(Layout)
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

// calendarDays counts whole calendar days between two local midnights.
// Both are re-anchored in UTC so DST transitions cannot skew the count.
func calendarDays(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}
