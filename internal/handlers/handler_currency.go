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
)

// currencyHandler handles HTTP requests related to the currency ledger.
type currencyHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(ls portssvc.LedgerSvcFacade) *currencyHandler {
	return &currencyHandler{
		ledgerService: ls,
	}
}

// registerCurrencyRoutes registers routes related to the currency ledger.
func registerCurrencyRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newCurrencyHandler(ledgerService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
		currencies.POST("/:code/adjust", h.adjustAmount)
	}
}

// listCurrencies returns the full ledger in display order.
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	records, err := h.ledgerService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(records))
}

// getCurrencyByCode returns a single ledger record.
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	record, err := h.ledgerService.GetCurrencyByCode(c.Request.Context(), currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency not found", slog.String("currency_code", currencyCode))
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to get currency from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currency"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(record))
}

// adjustAmount applies a manual stock correction to a currency.
func (h *currencyHandler) adjustAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	var req dto.AdjustAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AdjustAmount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to adjust currency stock",
		slog.String("currency_code", currencyCode),
		slog.String("delta", req.Delta.String()),
	)

	updated, err := h.ledgerService.AdjustAmount(c.Request.Context(), currencyCode, req.Delta)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency not found for adjustment", slog.String("currency_code", currencyCode))
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error adjusting stock", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to adjust stock in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust stock"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(updated))
}
