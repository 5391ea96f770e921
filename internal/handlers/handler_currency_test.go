package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kioskfx/currency_exchange_app/internal/apperrors"
	"github.com/kioskfx/currency_exchange_app/internal/core/domain"
	"github.com/kioskfx/currency_exchange_app/internal/dto"
)

type CurrencyHandlerTestSuite struct {
	suite.Suite
	fixture *handlerFixture
}

func (suite *CurrencyHandlerTestSuite) SetupTest() {
	suite.fixture = newHandlerFixture()
}

func (suite *CurrencyHandlerTestSuite) TestListCurrencies() {
	records := []domain.CurrencyRecord{
		{
			Currency:               "EUR",
			BuyRate:                decimal.RequireFromString("1.14"),
			SellRate:               decimal.RequireFromString("1.15"),
			Amount:                 decimal.RequireFromString("200"),
			WarningThresholdAmount: decimal.RequireFromString("250"),
		},
	}
	suite.fixture.ledger.On("ListCurrencies", mock.Anything).Return(records, nil)

	w := suite.fixture.performJSON(http.MethodGet, "/api/v1/currencies", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("EUR", resp[0].Currency)
	suite.True(resp[0].LowStock, "stock below warning threshold must be flagged")
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrencyByCode_NotFound() {
	suite.fixture.ledger.On("GetCurrencyByCode", mock.Anything, "JPY").Return(nil, apperrors.ErrNotFound)

	w := suite.fixture.performJSON(http.MethodGet, "/api/v1/currencies/JPY", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CurrencyHandlerTestSuite) TestAdjustAmount_Success() {
	delta := decimal.RequireFromString("-250.50")
	updated := []domain.CurrencyRecord{
		{Currency: "EUR", Amount: decimal.RequireFromString("749.5"), WarningThresholdAmount: decimal.RequireFromString("250")},
	}
	suite.fixture.ledger.On("AdjustAmount", mock.Anything, "EUR", delta).Return(updated, nil)

	w := suite.fixture.performJSON(http.MethodPost, "/api/v1/currencies/EUR/adjust", dto.AdjustAmountRequest{Delta: delta})

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.True(resp[0].Amount.Equal(decimal.RequireFromString("749.5")))
	suite.fixture.ledger.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestAdjustAmount_ValidationError() {
	suite.fixture.ledger.On("AdjustAmount", mock.Anything, "EUR", mock.Anything).Return(nil, apperrors.ErrValidation)

	w := suite.fixture.performJSON(http.MethodPost, "/api/v1/currencies/EUR/adjust", dto.AdjustAmountRequest{Delta: decimal.RequireFromString("-99999")})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestCurrencyHandler(t *testing.T) {
	suite.Run(t, new(CurrencyHandlerTestSuite))
}
