package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tiembanh_mousse/internal/usecase"
	"tiembanh_mousse/pkg"
)

// MetricsHandler serves the auxiliary aggregate documents (analytics,
// rankings, counters) as raw JSON.

type MetricsHandler struct {
	usecase usecase.IMetricsUseCase
}

func NewMetricsHandler(uc usecase.IMetricsUseCase) *MetricsHandler {
	return &MetricsHandler{usecase: uc}
}

func (h *MetricsHandler) GetMetric(c *gin.Context) {
	doc, err := h.usecase.Fetch(c.Request.Context(), c.Param("name"))
	if err != nil {
		appErr := mapMetricError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Data(http.StatusOK, "application/json", doc)
}

func mapMetricError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMetric):
		return pkg.NewDomainErrorSimple("INVALID_METRIC", "Invalid metric name", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMetricNotFound):
		return pkg.NewDomainErrorSimple("METRIC_NOT_FOUND", "Metric not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMetricInFlight):
		return pkg.NewDomainErrorSimple("METRIC_IN_FLIGHT", "Metric fetch already in progress", http.StatusTooManyRequests)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
