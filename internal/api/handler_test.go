package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gmartell/ratioscope/internal/domain/dto"
	"github.com/gmartell/ratioscope/internal/domain/models"
	"github.com/gmartell/ratioscope/internal/service"
)

type mockSeriesService struct {
	ratios *service.RatioSeries
	prices *service.PriceSeries
	caps   *service.CapSeries
	codes  []string
	err    error

	// captured arguments of the last call
	gotCode   string
	gotField  string
	gotWindow models.Window
}

func (m *mockSeriesService) Companies(_ context.Context) []string { return m.codes }

func (m *mockSeriesService) RatioSeries(_ context.Context, code, field string, w models.Window) (*service.RatioSeries, error) {
	m.gotCode, m.gotField, m.gotWindow = code, field, w
	return m.ratios, m.err
}

func (m *mockSeriesService) PriceSeries(_ context.Context, code string, w models.Window) (*service.PriceSeries, error) {
	m.gotCode, m.gotWindow = code, w
	return m.prices, m.err
}

func (m *mockSeriesService) MarketCapSeries(_ context.Context, code string, w models.Window) (*service.CapSeries, error) {
	m.gotCode, m.gotWindow = code, w
	return m.caps, m.err
}

var _ service.SeriesService = (*mockSeriesService)(nil)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func setupRouterWithMock(s service.SeriesService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s)
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.GET("/companies", h.ListCompanies)
	v1.GET("/companies/:code/ratios", h.GetRatios)
	v1.GET("/companies/:code/prices", h.GetPrices)
	v1.GET("/companies/:code/mcap", h.GetMarketCap)
	return r
}

func sampleRatioSeries() *service.RatioSeries {
	return &service.RatioSeries{
		Code:  "PETR4",
		Field: "pe",
		Points: []service.ValuePoint{
			{Date: day(2024, 6, 10), Value: 4.1},
			{Date: day(2024, 6, 28), Value: 4.3},
		},
		Stats: &models.Summary{Mean: 4.2, Median: 4.2, Min: 4.1, Max: 4.3, StdDev: 0.1,
			PlusOneDev: 4.3, MinusOneDev: 4.1, PlusTwoDev: 4.4, MinusTwoDev: 4.0,
			Percentile: 100.0, Count: 2},
	}
}

func TestGetRatios_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockSeriesService
		query  string
		status int
		assert func(t *testing.T, svc *mockSeriesService, body []byte)
	}{
		{
			name:   "invalid field",
			svc:    &mockSeriesService{},
			query:  "/api/v1/companies/PETR4/ratios?field=roe",
			status: http.StatusBadRequest,
		},
		{
			name:   "invalid start date",
			svc:    &mockSeriesService{},
			query:  "/api/v1/companies/PETR4/ratios?start=2024/01/01",
			status: http.StatusBadRequest,
		},
		{
			name:   "invalid end date",
			svc:    &mockSeriesService{},
			query:  "/api/v1/companies/PETR4/ratios?end=31-12-2024",
			status: http.StatusBadRequest,
		},
		{
			name:   "end precedes start",
			svc:    &mockSeriesService{},
			query:  "/api/v1/companies/PETR4/ratios?start=2024-06-01&end=2024-01-01",
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown company",
			svc:    &mockSeriesService{ratios: nil},
			query:  "/api/v1/companies/XXXX9/ratios",
			status: http.StatusNotFound,
		},
		{
			name:   "service failure",
			svc:    &mockSeriesService{err: errors.New("boom")},
			query:  "/api/v1/companies/PETR4/ratios",
			status: http.StatusInternalServerError,
		},
		{
			name:   "success with defaults",
			svc:    &mockSeriesService{ratios: sampleRatioSeries()},
			query:  "/api/v1/companies/petr4/ratios?timeframe=1y",
			status: http.StatusOK,
			assert: func(t *testing.T, svc *mockSeriesService, body []byte) {
				// Path code is uppercased, field defaults to pe, window is relative.
				if svc.gotCode != "PETR4" || svc.gotField != "pe" {
					t.Fatalf("service called with code=%q field=%q", svc.gotCode, svc.gotField)
				}
				if svc.gotWindow.Kind != models.WindowRelative || svc.gotWindow.Timeframe != "1y" {
					t.Fatalf("unexpected window: %+v", svc.gotWindow)
				}

				var out dto.RatioResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Code != "PETR4" || out.Field != "pe" || len(out.Points) != 2 {
					t.Fatalf("unexpected body: %+v", out)
				}
				if out.Stats == nil || out.Stats.Count != 2 {
					t.Fatalf("missing stats: %+v", out.Stats)
				}
				if out.Meta.StartDate != "2024-06-10" || out.Meta.EndDate != "2024-06-28" || out.Meta.Count != 2 {
					t.Fatalf("unexpected meta: %+v", out.Meta)
				}
			},
		},
		{
			name:   "absolute window is passed through",
			svc:    &mockSeriesService{ratios: sampleRatioSeries()},
			query:  "/api/v1/companies/PETR4/ratios?field=pb&start=2024-01-01&end=2024-06-30",
			status: http.StatusOK,
			assert: func(t *testing.T, svc *mockSeriesService, _ []byte) {
				if svc.gotField != "pb" {
					t.Fatalf("field: got %q", svc.gotField)
				}
				w := svc.gotWindow
				if w.Kind != models.WindowAbsolute || w.Start == nil || w.End == nil {
					t.Fatalf("unexpected window: %+v", w)
				}
				if !w.Start.Equal(day(2024, 1, 1)) || !w.End.Equal(day(2024, 6, 30)) {
					t.Fatalf("unexpected bounds: %v..%v", w.Start, w.End)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			req := httptest.NewRequest(http.MethodGet, tc.query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d (body=%s)", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, tc.svc, w.Body.Bytes())
			}
		})
	}
}

func TestGetPrices(t *testing.T) {
	svc := &mockSeriesService{prices: &service.PriceSeries{
		Code: "VALE3",
		Points: []service.CandlePoint{
			{Date: day(2024, 6, 27), Open: 61.0, High: 62.2, Low: 60.8, Close: 62.0, Volume: 900},
			{Date: day(2024, 6, 28), Open: 62.0, High: 62.5, Low: 61.1, Close: 61.4, Volume: 1100},
		},
	}}
	r := setupRouterWithMock(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/companies/VALE3/prices?timeframe=1w", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	var out dto.PriceResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(out.Points) != 2 || out.Points[1].Close != 61.4 || out.Points[1].Volume != 1100 {
		t.Fatalf("unexpected points: %+v", out.Points)
	}
	if out.Meta.Count != 2 || out.Meta.StartDate != "2024-06-27" {
		t.Fatalf("unexpected meta: %+v", out.Meta)
	}
}

func TestGetPrices_EmptyWindowIs404(t *testing.T) {
	r := setupRouterWithMock(&mockSeriesService{prices: nil})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/companies/VALE3/prices?start=2030-01-01", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetMarketCap(t *testing.T) {
	svc := &mockSeriesService{caps: &service.CapSeries{
		Code:   "ITUB4",
		Points: []service.ValuePoint{{Date: day(2024, 5, 31), Value: 3.2e11}},
	}}
	r := setupRouterWithMock(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/companies/ITUB4/mcap", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var out dto.MarketCapResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Code != "ITUB4" || len(out.Points) != 1 || out.Points[0].Value != 3.2e11 {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestListCompanies(t *testing.T) {
	r := setupRouterWithMock(&mockSeriesService{codes: []string{"ITUB4", "PETR4"}})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/companies", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var out dto.CompaniesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Count != 2 || len(out.Companies) != 2 {
		t.Fatalf("unexpected body: %+v", out)
	}
}
