package models

import "time"

// WindowKind discriminates the two ways a request can restrict a series.
type WindowKind int

const (
	// WindowAbsolute selects records between two optional calendar dates.
	WindowAbsolute WindowKind = iota
	// WindowRelative selects records from a named timeframe token back to now.
	WindowRelative
)

// Recognized relative timeframe tokens. Matching is case-insensitive;
// anything outside this set is treated as TimeframeAll.
const (
	Timeframe1W  = "1W"
	Timeframe1M  = "1M"
	Timeframe3M  = "3M"
	Timeframe6M  = "6M"
	Timeframe1Y  = "1Y"
	Timeframe2Y  = "2Y"
	TimeframeAll = "ALL"
)

// Window is the selection criterion restricting which Records of a Series
// are returned. It is a tagged union: exactly one of the two kinds is
// active, and only the fields of the active kind are meaningful.
//
//   - WindowAbsolute: Start/End bound the selection inclusively; a nil
//     bound leaves that side open.
//   - WindowRelative: Timeframe names a lookback period ending at "now".
type Window struct {
	Kind      WindowKind
	Start     *time.Time // absolute lower bound, inclusive; nil = unbounded
	End       *time.Time // absolute upper bound, inclusive; nil = unbounded
	Timeframe string     // relative token, e.g. "1Y"
}

// NewAbsoluteWindow builds a date-range window. Either bound may be nil.
func NewAbsoluteWindow(start, end *time.Time) Window {
	return Window{Kind: WindowAbsolute, Start: start, End: end}
}

// NewRelativeWindow builds a named-timeframe window resolved against "now"
// at selection time.
func NewRelativeWindow(timeframe string) Window {
	return Window{Kind: WindowRelative, Timeframe: timeframe}
}
