package dto

import "github.com/gmartell/ratioscope/internal/domain/models"

// Point is one {date, value} pair of a projected series. Dates are plain
// calendar dates in YYYY-MM-DD form.
type Point struct {
	Date  string  `json:"date" example:"2024-06-28"`
	Value float64 `json:"value" example:"4.21"`
}

// CandlePoint is one dated OHLCV observation of the prices endpoint.
type CandlePoint struct {
	Date   string  `json:"date" example:"2024-06-28"`
	Open   float64 `json:"open" example:"36.10"`
	High   float64 `json:"high" example:"37.25"`
	Low    float64 `json:"low" example:"35.90"`
	Close  float64 `json:"close" example:"36.84"`
	Volume int64   `json:"volume" example:"48123400"`
}

// SeriesMeta describes the resolved window: first and last date actually
// returned plus the point count.
type SeriesMeta struct {
	StartDate string `json:"start_date" example:"2023-07-03"`
	EndDate   string `json:"end_date" example:"2024-06-28"`
	Count     int    `json:"count" example:"248"`
}

// RatioResponse is the body of GET /api/v1/companies/{code}/ratios.
//
// swagger:model RatioResponse
type RatioResponse struct {
	Code   string          `json:"code" example:"PETR4"`
	Field  string          `json:"field" example:"pe"`
	Points []Point         `json:"points"`
	Stats  *models.Summary `json:"stats"`
	Meta   SeriesMeta      `json:"meta"`
}

// PriceResponse is the body of GET /api/v1/companies/{code}/prices.
//
// swagger:model PriceResponse
type PriceResponse struct {
	Code   string        `json:"code" example:"PETR4"`
	Points []CandlePoint `json:"points"`
	Meta   SeriesMeta    `json:"meta"`
}

// MarketCapResponse is the body of GET /api/v1/companies/{code}/mcap.
//
// swagger:model MarketCapResponse
type MarketCapResponse struct {
	Code   string     `json:"code" example:"PETR4"`
	Points []Point    `json:"points"`
	Meta   SeriesMeta `json:"meta"`
}

// CompaniesResponse lists every company code the dataset knows.
//
// swagger:model CompaniesResponse
type CompaniesResponse struct {
	Companies []string `json:"companies" example:"ITUB4,PETR4,VALE3"`
	Count     int      `json:"count" example:"3"`
}
