package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kioskfx/currency_exchange_app/internal/apperrors"
	"github.com/kioskfx/currency_exchange_app/internal/core/domain"
	portssvc "github.com/kioskfx/currency_exchange_app/internal/core/ports/services"
	"github.com/kioskfx/currency_exchange_app/internal/dto"
	"github.com/kioskfx/currency_exchange_app/internal/middleware"
	"github.com/kioskfx/currency_exchange_app/internal/platform/metrics"
)

// tradeHandler handles HTTP requests for pricing and executing trades.
type tradeHandler struct {
	tradingService portssvc.TradingSvcFacade
	metrics        *metrics.Metrics
}

// newTradeHandler creates a new tradeHandler.
func newTradeHandler(ts portssvc.TradingSvcFacade, m *metrics.Metrics) *tradeHandler {
	return &tradeHandler{
		tradingService: ts,
		metrics:        m,
	}
}

// registerTradeRoutes registers routes related to trades.
func registerTradeRoutes(rg *gin.RouterGroup, tradingService portssvc.TradingSvcFacade, m *metrics.Metrics) {
	h := newTradeHandler(tradingService, m)

	trades := rg.Group("/trades")
	{
		trades.POST("/quote", h.quoteTrade)
		trades.POST("", h.executeTrade)
	}
}

// quoteTrade prices a trade without touching the ledger.
func (h *tradeHandler) quoteTrade(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req, direction, ok := bindTradeRequest(c, logger)
	if !ok {
		return
	}

	quote, err := h.tradingService.QuoteTrade(c.Request.Context(), req.Currency, direction, req.Amount)
	if err != nil {
		respondTradeError(c, logger, err, "Failed to price trade")
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// executeTrade prices and applies a trade to the ledger.
func (h *tradeHandler) executeTrade(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req, direction, ok := bindTradeRequest(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to execute trade",
		slog.String("currency", req.Currency),
		slog.String("direction", req.Direction),
		slog.String("amount", req.Amount.String()),
	)

	txn, err := h.tradingService.ExecuteTrade(c.Request.Context(), req.Currency, direction, req.Amount)
	if err != nil {
		respondTradeError(c, logger, err, "Failed to execute trade")
		return
	}

	h.metrics.TradesTotal.WithLabelValues(txn.Direction.String()).Inc()
	logger.Info("Trade executed", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// bindTradeRequest binds and validates the shared trade payload. It writes
// the error response itself and reports success via the bool.
func bindTradeRequest(c *gin.Context, logger *slog.Logger) (dto.TradeRequest, domain.TradeDirection, bool) {
	var req dto.TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for trade request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return req, 0, false
	}

	direction, err := domain.ParseTradeDirection(req.Direction)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return req, 0, false
	}
	return req, direction, true
}

func respondTradeError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Currency not found for trade")
		c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error for trade", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
