package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kioskfx/currency_exchange_app/internal/apperrors"
	portssvc "github.com/kioskfx/currency_exchange_app/internal/core/ports/services"
	"github.com/kioskfx/currency_exchange_app/internal/dto"
	"github.com/kioskfx/currency_exchange_app/internal/middleware"
	"github.com/kioskfx/currency_exchange_app/internal/platform/metrics"
)

// ratesHandler handles HTTP requests for rate refresh status and manual refreshes.
type ratesHandler struct {
	rateService portssvc.RateRefreshSvcFacade
	metrics     *metrics.Metrics
}

// newRatesHandler creates a new ratesHandler.
func newRatesHandler(rs portssvc.RateRefreshSvcFacade, m *metrics.Metrics) *ratesHandler {
	return &ratesHandler{
		rateService: rs,
		metrics:     m,
	}
}

// registerRateRoutes registers routes related to exchange rate refreshing.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateRefreshSvcFacade, m *metrics.Metrics) {
	h := newRatesHandler(rateService, m)

	rates := rg.Group("/rates")
	{
		rates.GET("/status", h.getStatus)
		rates.POST("/refresh", h.refreshNow)
	}
}

// getStatus reports when rates were last refreshed and the last fetch error.
func (h *ratesHandler) getStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	status, err := h.rateService.Status(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get rates status from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rates status"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRatesStatusResponse(&status))
}

// refreshNow triggers an immediate refresh cycle outside the background loop.
func (h *ratesHandler) refreshNow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to refresh rates")

	updated, err := h.rateService.RefreshRates(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrRefreshDisabled) {
			logger.Warn("Manual refresh requested while refreshing is disabled")
			c.JSON(http.StatusConflict, gin.H{"error": "Rate refreshing is disabled in settings"})
			return
		}
		h.metrics.RateRefreshTotal.WithLabelValues("error").Inc()
		logger.Error("Manual rate refresh failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to refresh rates"})
		return
	}

	h.metrics.RateRefreshTotal.WithLabelValues("success").Inc()
	logger.Info("Rates refreshed manually")
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(updated))
}
