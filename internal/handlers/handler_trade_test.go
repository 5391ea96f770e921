package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kioskfx/currency_exchange_app/internal/apperrors"
	"github.com/kioskfx/currency_exchange_app/internal/core/domain"
	portssvc "github.com/kioskfx/currency_exchange_app/internal/core/ports/services"
	"github.com/kioskfx/currency_exchange_app/internal/dto"
	"github.com/kioskfx/currency_exchange_app/internal/handlers"
	"github.com/kioskfx/currency_exchange_app/internal/platform/config"
	"github.com/kioskfx/currency_exchange_app/internal/platform/metrics"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) ListCurrencies(ctx context.Context) ([]domain.CurrencyRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRecord), args.Error(1)
}

func (m *MockLedgerService) GetCurrencyByCode(ctx context.Context, currency string) (*domain.CurrencyRecord, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRecord), args.Error(1)
}

func (m *MockLedgerService) AdjustAmount(ctx context.Context, currency string, delta decimal.Decimal) ([]domain.CurrencyRecord, error) {
	args := m.Called(ctx, currency, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRecord), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock TradingService ---
type MockTradingService struct {
	mock.Mock
}

func (m *MockTradingService) QuoteTrade(ctx context.Context, currency string, direction domain.TradeDirection, amount decimal.Decimal) (*domain.Quote, error) {
	args := m.Called(ctx, currency, direction, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quote), args.Error(1)
}

func (m *MockTradingService) ExecuteTrade(ctx context.Context, currency string, direction domain.TradeDirection, amount decimal.Decimal) (*domain.Transaction, error) {
	args := m.Called(ctx, currency, direction, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

var _ portssvc.TradingSvcFacade = (*MockTradingService)(nil)

// --- Mock RateRefreshService ---
type MockRateRefreshService struct {
	mock.Mock
}

func (m *MockRateRefreshService) RefreshRates(ctx context.Context) ([]domain.CurrencyRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRecord), args.Error(1)
}

func (m *MockRateRefreshService) Status(ctx context.Context) (domain.LedgerStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.LedgerStatus), args.Error(1)
}

var _ portssvc.RateRefreshSvcFacade = (*MockRateRefreshService)(nil)

// --- Mock SettingsService ---
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetSettings(ctx context.Context) (domain.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Settings), args.Error(1)
}

func (m *MockSettingsService) UpdateSettings(ctx context.Context, settings domain.Settings) (domain.Settings, error) {
	args := m.Called(ctx, settings)
	return args.Get(0).(domain.Settings), args.Error(1)
}

var _ portssvc.SettingsSvcFacade = (*MockSettingsService)(nil)

// --- Shared test router setup ---
type handlerFixture struct {
	router      *gin.Engine
	ledger      *MockLedgerService
	trading     *MockTradingService
	rateRefresh *MockRateRefreshService
	settings    *MockSettingsService
	metrics     *metrics.Metrics
}

func newHandlerFixture() *handlerFixture {
	gin.SetMode(gin.TestMode)

	f := &handlerFixture{
		router:      gin.New(),
		ledger:      new(MockLedgerService),
		trading:     new(MockTradingService),
		rateRefresh: new(MockRateRefreshService),
		settings:    new(MockSettingsService),
	}

	registry := prometheus.NewRegistry()
	f.metrics = metrics.NewMetrics(registry)

	services := &portssvc.ServiceContainer{
		Ledger:      f.ledger,
		Trading:     f.trading,
		RateRefresh: f.rateRefresh,
		Settings:    f.settings,
	}
	handlers.RegisterRoutes(f.router, &config.Config{}, services, f.metrics, registry)
	return f
}

func (f *handlerFixture) performJSON(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

// --- Test Suite ---
type TradeHandlerTestSuite struct {
	suite.Suite
	fixture *handlerFixture
}

func (suite *TradeHandlerTestSuite) SetupTest() {
	suite.fixture = newHandlerFixture()
}

func (suite *TradeHandlerTestSuite) TestQuoteTrade_Success() {
	quote := &domain.Quote{
		Currency:   "EUR",
		Direction:  domain.Buy,
		Amount:     decimal.RequireFromString("100"),
		Rate:       decimal.RequireFromString("1.14"),
		Subtotal:   decimal.RequireFromString("114"),
		Commission: decimal.RequireFromString("2.88"),
		Total:      decimal.RequireFromString("116.88"),
		MaxAmount:  decimal.RequireFromString("1140"),
	}
	suite.fixture.trading.On("QuoteTrade", mock.Anything, "EUR", domain.Buy, decimal.RequireFromString("100")).Return(quote, nil)

	w := suite.fixture.performJSON(http.MethodPost, "/api/v1/trades/quote", dto.TradeRequest{
		Currency:  "EUR",
		Direction: "BUY",
		Amount:    decimal.RequireFromString("100"),
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.QuoteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("BUY", resp.Direction)
	suite.True(resp.Total.Equal(decimal.RequireFromString("116.88")))
	suite.fixture.trading.AssertExpectations(suite.T())
}

func (suite *TradeHandlerTestSuite) TestQuoteTrade_ValidationError() {
	suite.fixture.trading.On("QuoteTrade", mock.Anything, "EUR", domain.Sell, mock.Anything).Return(nil, apperrors.ErrValidation)

	w := suite.fixture.performJSON(http.MethodPost, "/api/v1/trades/quote", dto.TradeRequest{
		Currency:  "EUR",
		Direction: "SELL",
		Amount:    decimal.RequireFromString("99999"),
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TradeHandlerTestSuite) TestQuoteTrade_RejectsUnknownDirection() {
	w := suite.fixture.performJSON(http.MethodPost, "/api/v1/trades/quote", map[string]any{
		"currency":  "EUR",
		"direction": "HOLD",
		"amount":    "100",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.fixture.trading.AssertNotCalled(suite.T(), "QuoteTrade", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TradeHandlerTestSuite) TestExecuteTrade_Success() {
	txn := &domain.Transaction{
		TransactionID: "c2e9f3a0-0000-0000-0000-000000000000",
		Currency:      "EUR",
		Direction:     domain.Buy,
		Amount:        decimal.RequireFromString("100"),
		Total:         decimal.RequireFromString("116.88"),
	}
	suite.fixture.trading.On("ExecuteTrade", mock.Anything, "EUR", domain.Buy, decimal.RequireFromString("100")).Return(txn, nil)

	w := suite.fixture.performJSON(http.MethodPost, "/api/v1/trades", dto.TradeRequest{
		Currency:  "EUR",
		Direction: "BUY",
		Amount:    decimal.RequireFromString("100"),
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(txn.TransactionID, resp.TransactionID)
	suite.Equal(float64(1), testutil.ToFloat64(suite.fixture.metrics.TradesTotal.WithLabelValues("BUY")))
}

func (suite *TradeHandlerTestSuite) TestExecuteTrade_UnknownCurrency() {
	suite.fixture.trading.On("ExecuteTrade", mock.Anything, "JPY", domain.Sell, mock.Anything).Return(nil, apperrors.ErrNotFound)

	w := suite.fixture.performJSON(http.MethodPost, "/api/v1/trades", dto.TradeRequest{
		Currency:  "JPY",
		Direction: "SELL",
		Amount:    decimal.RequireFromString("10"),
	})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal(float64(0), testutil.ToFloat64(suite.fixture.metrics.TradesTotal.WithLabelValues("SELL")))
}

// --- Run Test Suite ---
func TestTradeHandler(t *testing.T) {
	suite.Run(t, new(TradeHandlerTestSuite))
}
