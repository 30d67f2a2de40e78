// internal/handlers/currency_handler_test.go
package handlers

import (
	"net/http"

	"github.com/stretchr/testify/assert"
)

func (suite *HandlersTestSuite) TestListCurrencies() {
	suite.seedCurrency("USD", "US Dollar", "$")
	suite.seedCurrency("EUR", "Euro", "€")

	w, response := suite.request("GET", "/api/currencies", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.True(suite.T(), response["success"].(bool))
	assert.Len(suite.T(), response["data"].([]interface{}), 2)
}

func (suite *HandlersTestSuite) TestListCurrenciesEmpty() {
	w, response := suite.request("GET", "/api/currencies", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.True(suite.T(), response["success"].(bool))
	assert.Empty(suite.T(), response["data"].([]interface{}))
}

func (suite *HandlersTestSuite) TestCreateCurrency() {
	w, response := suite.request("POST", "/api/currencies", map[string]interface{}{
		"code":   "USD",
		"name":   "US Dollar",
		"symbol": "$",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	assert.True(suite.T(), response["success"].(bool))
	assert.Equal(suite.T(), "Currency created successfully", response["message"])

	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), "USD", data["code"])
	assert.NotZero(suite.T(), data["id"])
}

func (suite *HandlersTestSuite) TestCreateCurrencyMissingFields() {
	w, response := suite.request("POST", "/api/currencies", map[string]interface{}{
		"code": "USD",
	})

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)
	assert.False(suite.T(), response["success"].(bool))
	assert.NotEmpty(suite.T(), response["errors"].([]interface{}))
}

func (suite *HandlersTestSuite) TestGetCurrencyNotFound() {
	w, response := suite.request("GET", "/api/currencies/42", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.False(suite.T(), response["success"].(bool))
}

func (suite *HandlersTestSuite) TestUpdateCurrencyPartial() {
	currency := suite.seedCurrency("EUR", "Euro", "EUR")

	w, response := suite.request("PATCH", "/api/currencies/1", map[string]interface{}{
		"symbol": "€",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "Currency updated successfully", response["message"])

	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), currency.Code, data["code"])
	assert.Equal(suite.T(), currency.Name, data["name"])
	assert.Equal(suite.T(), "€", data["symbol"])
}

func (suite *HandlersTestSuite) TestDeleteCurrency() {
	suite.seedCurrency("GBP", "British Pound", "£")

	w, response := suite.request("DELETE", "/api/currencies/1", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.True(suite.T(), response["success"].(bool))
	assert.Equal(suite.T(), "Currency deleted successfully", response["message"])

	w, _ = suite.request("GET", "/api/currencies/1", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestDeleteCurrencyInUse() {
	currency := suite.seedCurrency("USD", "US Dollar", "$")
	suite.currencyRepo.used[currency.ID] = true

	w, response := suite.request("DELETE", "/api/currencies/1", nil)

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)
	assert.False(suite.T(), response["success"].(bool))
}
