// Package service holds the business logic between the HTTP handlers and
// the dataset store: company lookup, window selection, field projection and
// the statistics overlay.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gmartell/ratioscope/internal/domain/models"
	"github.com/gmartell/ratioscope/internal/timeseries"
)

// Ratio fields a client may project from each record.
const (
	FieldPE = "pe"
	FieldPB = "pb"
	FieldPS = "ps"
)

// CompanyStore is the read side of the dataset the service depends on.
// *dataset.Store satisfies it; tests provide stubs.
type CompanyStore interface {
	Company(code string) (models.Series, bool)
	Codes() []string
}

// ValuePoint is one dated value of a projected series.
type ValuePoint struct {
	Date  time.Time
	Value float64
}

// CandlePoint is one dated OHLCV observation.
type CandlePoint struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// RatioSeries is a projected ratio series plus its statistics overlay.
type RatioSeries struct {
	Code   string
	Field  string
	Points []ValuePoint
	Stats  *models.Summary
}

// PriceSeries is the OHLCV history inside the selected window.
type PriceSeries struct {
	Code   string
	Points []CandlePoint
}

// CapSeries is the market-capitalization history inside the selected window.
type CapSeries struct {
	Code   string
	Points []ValuePoint
}

// SeriesService defines the query operations the API exposes. A nil result
// with a nil error means "no data" (unknown company or empty window); the
// handler maps it to 404.
type SeriesService interface {
	Companies(ctx context.Context) []string
	RatioSeries(ctx context.Context, code, field string, w models.Window) (*RatioSeries, error)
	PriceSeries(ctx context.Context, code string, w models.Window) (*PriceSeries, error)
	MarketCapSeries(ctx context.Context, code string, w models.Window) (*CapSeries, error)
}

type seriesService struct {
	store CompanyStore
	now   func() time.Time // injected clock so timeframe resolution is testable
}

// NewSeriesService wires a SeriesService over the given store.
func NewSeriesService(store CompanyStore) SeriesService {
	return &seriesService{store: store, now: time.Now}
}

func (s *seriesService) Companies(_ context.Context) []string {
	return s.store.Codes()
}

func (s *seriesService) RatioSeries(_ context.Context, code, field string, w models.Window) (*RatioSeries, error) {
	project, err := projector(field)
	if err != nil {
		return nil, err
	}

	selected, ok := s.selectWindow(code, w)
	if !ok || len(selected) == 0 {
		return nil, nil
	}

	points := make([]ValuePoint, 0, len(selected))
	values := make([]float64, 0, len(selected))
	for _, rec := range selected {
		v := project(rec)
		points = append(points, ValuePoint{Date: rec.Date, Value: v})
		values = append(values, v)
	}

	return &RatioSeries{
		Code:   code,
		Field:  field,
		Points: points,
		Stats:  timeseries.Summarize(values),
	}, nil
}

func (s *seriesService) PriceSeries(_ context.Context, code string, w models.Window) (*PriceSeries, error) {
	selected, ok := s.selectWindow(code, w)
	if !ok || len(selected) == 0 {
		return nil, nil
	}

	points := make([]CandlePoint, 0, len(selected))
	for _, rec := range selected {
		points = append(points, CandlePoint{
			Date:   rec.Date,
			Open:   rec.Open,
			High:   rec.High,
			Low:    rec.Low,
			Close:  rec.Close,
			Volume: rec.Volume,
		})
	}
	return &PriceSeries{Code: code, Points: points}, nil
}

func (s *seriesService) MarketCapSeries(_ context.Context, code string, w models.Window) (*CapSeries, error) {
	selected, ok := s.selectWindow(code, w)
	if !ok || len(selected) == 0 {
		return nil, nil
	}

	points := make([]ValuePoint, 0, len(selected))
	for _, rec := range selected {
		points = append(points, ValuePoint{Date: rec.Date, Value: rec.MCap})
	}
	return &CapSeries{Code: code, Points: points}, nil
}

// selectWindow resolves the company and applies the window. The bool is
// false when the company is unknown.
func (s *seriesService) selectWindow(code string, w models.Window) (models.Series, bool) {
	series, ok := s.store.Company(code)
	if !ok {
		return nil, false
	}
	return timeseries.Select(series, w, s.now()), true
}

func projector(field string) (func(models.Record) float64, error) {
	switch field {
	case FieldPE:
		return func(r models.Record) float64 { return r.PE }, nil
	case FieldPB:
		return func(r models.Record) float64 { return r.PB }, nil
	case FieldPS:
		return func(r models.Record) float64 { return r.PS }, nil
	default:
		return nil, fmt.Errorf("unknown ratio field %q", field)
	}
}
