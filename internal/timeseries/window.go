// Package timeseries implements the pure core of the service: restricting a
// company's history to a requested time window and computing descriptive
// statistics over the projected values. Nothing in this package touches the
// clock, the filesystem, or HTTP; "now" is always an explicit argument so
// timeframe resolution is deterministic and testable.
package timeseries

import (
	"sort"
	"strings"
	"time"

	"github.com/gmartell/ratioscope/internal/domain/models"
)

// Select returns the records of series that fall inside the window, sorted
// ascending by date. The input is never mutated; callers may share a Series
// across concurrent requests.
//
// Absolute windows include a record iff start <= record.Date <= end, with a
// nil bound leaving that side open. Relative windows include a record iff
// record.Date >= the token's start instant resolved against now; the token
// "ALL" (or anything unrecognized) applies no lower bound.
//
// An empty result is a valid outcome, not an error.
func Select(series models.Series, w models.Window, now time.Time) models.Series {
	var out models.Series

	switch w.Kind {
	case models.WindowAbsolute:
		for _, rec := range series {
			if w.Start != nil && rec.Date.Before(*w.Start) {
				continue
			}
			if w.End != nil && rec.Date.After(*w.End) {
				continue
			}
			out = append(out, rec)
		}
	case models.WindowRelative:
		start, bounded := resolveTimeframe(w.Timeframe, now)
		for _, rec := range series {
			if bounded && rec.Date.Before(start) {
				continue
			}
			out = append(out, rec)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// resolveTimeframe maps a timeframe token to the window's start instant.
// The second return is false when the token applies no lower bound (ALL,
// empty, or unrecognized — the unrecognized case deliberately degrades to
// the full series rather than failing).
func resolveTimeframe(token string, now time.Time) (time.Time, bool) {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case models.Timeframe1W:
		return now.AddDate(0, 0, -7), true
	case models.Timeframe1M:
		return monthsAgo(now, 1), true
	case models.Timeframe3M:
		return monthsAgo(now, 3), true
	case models.Timeframe6M:
		return monthsAgo(now, 6), true
	case models.Timeframe1Y:
		return monthsAgo(now, 12), true
	case models.Timeframe2Y:
		return monthsAgo(now, 24), true
	default:
		return time.Time{}, false
	}
}

// monthsAgo decrements the month field by n using calendar arithmetic,
// clamping the day to the last day of the target month. time.AddDate is not
// used here on purpose: it normalizes Mar 31 - 1 month to Mar 2/3 instead of
// the end of February.
func monthsAgo(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	firstOfTarget := time.Date(y, m-time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := firstOfTarget.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
