package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"trafficapi/internal/domain"
	"trafficapi/internal/validation"
)

const (
	HealthPath  = "/api/v1/health"
	MetricsPath = "/api/v1/metrics"
	SeriesPath  = "/api"
)

var (
	errInvalidDate    = map[string]string{"error": "invalid date format"}
	errStartAfterEnd  = map[string]string{"error": "start_date is after end_date"}
	errRangeTooLarge  = map[string]string{"error": "date range too large"}
	errInvalidRange   = map[string]string{"error": "invalid date range"}
	errTooManyMetrics = map[string]string{"error": "too many metrics requested"}
	errTimeout        = map[string]string{"error": "request timed out"}
	errFetchFailed    = map[string]string{"error": "failed to fetch metrics"}
	respHealthOK      = map[string]string{"status": "ok"}
)

type Handler struct {
	metricsService MetricsService
	validator      RequestValidator
	catalog        MetricCatalog
	logger         *slog.Logger
}

func New(
	metricsService MetricsService,
	validator RequestValidator,
	catalog MetricCatalog,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		metricsService: metricsService,
		validator:      validator,
		catalog:        catalog,
		logger:         logger,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET(SeriesPath, h.GetSeries)
	e.GET(HealthPath, h.Health)
	e.GET(MetricsPath, h.ListMetrics)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) ListMetrics(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.MetricsListResponse{Metrics: h.catalog.List()})
}

// GetSeries serves GET /api?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD&metrics=<id>...
func (h *Handler) GetSeries(c echo.Context) error {
	start, end, err := h.validator.ParseRange(c.QueryParam("start_date"), c.QueryParam("end_date"))
	if err != nil {
		return h.handleError(c, err)
	}

	metricIDs, err := h.validator.ParseMetrics(c.QueryParams()["metrics"])
	if err != nil {
		return h.handleError(c, err)
	}

	resp, err := h.metricsService.BuildResponse(c.Request().Context(), metricIDs, start, end)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c echo.Context, err error) error {
	var unknown *domain.UnknownMetricError

	switch {
	case errors.Is(err, validation.ErrInvalidDateFormat):
		return c.JSON(http.StatusBadRequest, errInvalidDate)
	case errors.Is(err, validation.ErrStartAfterEnd):
		return c.JSON(http.StatusBadRequest, errStartAfterEnd)
	case errors.Is(err, validation.ErrRangeTooLarge):
		return c.JSON(http.StatusBadRequest, errRangeTooLarge)
	case errors.Is(err, domain.ErrInvalidRange):
		return c.JSON(http.StatusBadRequest, errInvalidRange)
	case errors.Is(err, validation.ErrTooManyMetrics):
		return c.JSON(http.StatusBadRequest, errTooManyMetrics)
	case errors.As(err, &unknown):
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error":  "unknown metric",
			"metric": unknown.MetricID,
		})
	case errors.Is(err, domain.ErrUnknownMetric):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown metric"})
	case errors.Is(err, domain.ErrDeadlineExceeded):
		h.logger.Warn("metrics request timed out", slog.String("error", err.Error()))
		return c.JSON(http.StatusGatewayTimeout, errTimeout)
	default:
		h.logger.Error("failed to build metrics response", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errFetchFailed)
	}
}
