package models

import "time"

// Record represents one dated observation for a company: the valuation
// ratios published for that day plus the matching OHLCV quote and market
// capitalization.
//
// Fields:
//   - Date: calendar date of the observation (no time component).
//   - PE, PB, PS: price/earnings, price/book and price/sales ratios.
//   - Open, High, Low, Close: daily OHLC prices.
//   - Volume: number of shares traded on that day.
//   - MCap: market capitalization at close.
//
// Records are immutable once loaded; the dataset never changes after
// process start.
type Record struct {
	Date   time.Time
	PE     float64
	PB     float64
	PS     float64
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
	MCap   float64
}

// Series is the full history of one company, in dataset file order.
// File order is NOT guaranteed to be chronological; consumers that need
// chronological output must sort by Record.Date.
type Series []Record
