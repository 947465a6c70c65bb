package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gmartell/ratioscope/internal/domain/dto"
	"github.com/gmartell/ratioscope/internal/domain/models"
	"github.com/gmartell/ratioscope/internal/service"
)

const dateLayout = "2006-01-02"

// Handler provides the HTTP handlers for the company time-series endpoints.
//
// Responsibilities:
//   - Validate incoming query and path parameters
//   - Resolve the requested time window (absolute range or relative token)
//   - Call the service layer and translate its results into response DTOs
//   - Return structured JSON with appropriate HTTP status codes
type Handler struct {
	svc service.SeriesService
}

// NewHandler constructs a Handler over the given service.
func NewHandler(svc service.SeriesService) *Handler {
	return &Handler{svc: svc}
}

// parseWindow resolves the window parameters of a request. If `start` or
// `end` is present the window is absolute (dates in YYYY-MM-DD; end must
// not precede start); otherwise it is relative with the `timeframe` token.
// An unrecognized token is not an error here — the selector degrades it to
// the full series.
func parseWindow(c *gin.Context) (models.Window, error) {
	startStr := strings.TrimSpace(c.Query("start"))
	endStr := strings.TrimSpace(c.Query("end"))

	if startStr == "" && endStr == "" {
		return models.NewRelativeWindow(c.Query("timeframe")), nil
	}

	var start, end *time.Time
	if startStr != "" {
		parsed, err := time.Parse(dateLayout, startStr)
		if err != nil {
			return models.Window{}, fmt.Errorf("invalid start date %q, expected YYYY-MM-DD", startStr)
		}
		start = &parsed
	}
	if endStr != "" {
		parsed, err := time.Parse(dateLayout, endStr)
		if err != nil {
			return models.Window{}, fmt.Errorf("invalid end date %q, expected YYYY-MM-DD", endStr)
		}
		end = &parsed
	}
	if start != nil && end != nil && end.Before(*start) {
		return models.Window{}, fmt.Errorf("end date %s precedes start date %s", endStr, startStr)
	}

	return models.NewAbsoluteWindow(start, end), nil
}

// ratioField validates the `field` query parameter, defaulting to "pe".
func ratioField(c *gin.Context) (string, error) {
	field := strings.ToLower(strings.TrimSpace(c.Query("field")))
	switch field {
	case "":
		return service.FieldPE, nil
	case service.FieldPE, service.FieldPB, service.FieldPS:
		return field, nil
	default:
		return "", fmt.Errorf("unknown field %q, expected one of pe, pb, ps", field)
	}
}

// ListCompanies godoc
// @Summary      List company codes
// @Description  Returns every company code available in the loaded dataset
// @Tags         companies
// @Produce      json
// @Success      200  {object}  dto.CompaniesResponse  "Success"
// @Router       /api/v1/companies [get]
func (h *Handler) ListCompanies(c *gin.Context) {
	codes := h.svc.Companies(c.Request.Context())
	c.JSON(http.StatusOK, dto.CompaniesResponse{Companies: codes, Count: len(codes)})
}

// GetRatios godoc
// @Summary      Get a valuation ratio series with statistics
// @Description  Returns the selected ratio series for a company inside the requested window, plus descriptive statistics over the selected values
// @Tags         series
// @Produce      json
// @Param        code       path      string  true   "Company code" example(PETR4)
// @Param        field      query     string  false  "Ratio field: pe, pb or ps (default pe)" example(pe)
// @Param        timeframe  query     string  false  "Relative window: 1W, 1M, 3M, 6M, 1Y, 2Y or ALL" example(1Y)
// @Param        start      query     string  false  "Absolute window start in YYYY-MM-DD" example(2023-01-01)
// @Param        end        query     string  false  "Absolute window end in YYYY-MM-DD" example(2023-12-31)
// @Success      200  {object}  dto.RatioResponse  "Success"
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/companies/{code}/ratios [get]
func (h *Handler) GetRatios(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))

	field, err := ratioField(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid field", err))
		return
	}
	window, err := parseWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid window", err))
		return
	}

	result, err := h.svc.RatioSeries(c.Request.Context(), code, field, window)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to build ratio series", err))
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no data for this company and window", nil))
		return
	}

	points := make([]dto.Point, 0, len(result.Points))
	for _, p := range result.Points {
		points = append(points, dto.Point{Date: p.Date.Format(dateLayout), Value: p.Value})
	}

	c.JSON(http.StatusOK, dto.RatioResponse{
		Code:   result.Code,
		Field:  result.Field,
		Points: points,
		Stats:  result.Stats,
		Meta:   pointsMeta(points),
	})
}

// GetPrices godoc
// @Summary      Get the OHLCV price series
// @Description  Returns the daily OHLCV quotes for a company inside the requested window
// @Tags         series
// @Produce      json
// @Param        code       path      string  true   "Company code" example(PETR4)
// @Param        timeframe  query     string  false  "Relative window: 1W, 1M, 3M, 6M, 1Y, 2Y or ALL" example(6M)
// @Param        start      query     string  false  "Absolute window start in YYYY-MM-DD" example(2023-01-01)
// @Param        end        query     string  false  "Absolute window end in YYYY-MM-DD" example(2023-12-31)
// @Success      200  {object}  dto.PriceResponse  "Success"
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/companies/{code}/prices [get]
func (h *Handler) GetPrices(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))

	window, err := parseWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid window", err))
		return
	}

	result, err := h.svc.PriceSeries(c.Request.Context(), code, window)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to build price series", err))
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no data for this company and window", nil))
		return
	}

	points := make([]dto.CandlePoint, 0, len(result.Points))
	for _, p := range result.Points {
		points = append(points, dto.CandlePoint{
			Date:   p.Date.Format(dateLayout),
			Open:   p.Open,
			High:   p.High,
			Low:    p.Low,
			Close:  p.Close,
			Volume: p.Volume,
		})
	}

	c.JSON(http.StatusOK, dto.PriceResponse{
		Code:   result.Code,
		Points: points,
		Meta: dto.SeriesMeta{
			StartDate: points[0].Date,
			EndDate:   points[len(points)-1].Date,
			Count:     len(points),
		},
	})
}

// GetMarketCap godoc
// @Summary      Get the market capitalization series
// @Description  Returns the market capitalization history for a company inside the requested window
// @Tags         series
// @Produce      json
// @Param        code       path      string  true   "Company code" example(PETR4)
// @Param        timeframe  query     string  false  "Relative window: 1W, 1M, 3M, 6M, 1Y, 2Y or ALL" example(2Y)
// @Param        start      query     string  false  "Absolute window start in YYYY-MM-DD" example(2023-01-01)
// @Param        end        query     string  false  "Absolute window end in YYYY-MM-DD" example(2023-12-31)
// @Success      200  {object}  dto.MarketCapResponse  "Success"
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/companies/{code}/mcap [get]
func (h *Handler) GetMarketCap(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))

	window, err := parseWindow(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid window", err))
		return
	}

	result, err := h.svc.MarketCapSeries(c.Request.Context(), code, window)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to build market cap series", err))
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no data for this company and window", nil))
		return
	}

	points := make([]dto.Point, 0, len(result.Points))
	for _, p := range result.Points {
		points = append(points, dto.Point{Date: p.Date.Format(dateLayout), Value: p.Value})
	}

	c.JSON(http.StatusOK, dto.MarketCapResponse{
		Code:   result.Code,
		Points: points,
		Meta:   pointsMeta(points),
	})
}

// pointsMeta derives the resolved-window metadata from the returned points.
// Callers only reach this with a non-empty slice (empty selections 404).
func pointsMeta(points []dto.Point) dto.SeriesMeta {
	return dto.SeriesMeta{
		StartDate: points[0].Date,
		EndDate:   points[len(points)-1].Date,
		Count:     len(points),
	}
}
