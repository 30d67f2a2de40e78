// internal/handlers/currency.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mercata/catalog-api/internal/services"
	"github.com/mercata/catalog-api/internal/utils"
)

type CurrencyHandler struct {
	currencyService *services.CurrencyService
}

func NewCurrencyHandler(currencyService *services.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{currencyService: currencyService}
}

// GET /api/currencies
func (h *CurrencyHandler) GetCurrencies(c *gin.Context) {
	currencies, err := h.currencyService.ListCurrencies()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, currencies)
}

// POST /api/currencies
func (h *CurrencyHandler) CreateCurrency(c *gin.Context) {
	var req services.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.UnprocessableResponse(c, "Invalid request body")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	currency, err := h.currencyService.CreateCurrency(&req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Currency created successfully", currency)
}

// GET /api/currencies/:id
func (h *CurrencyHandler) GetCurrency(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	currency, err := h.currencyService.GetCurrency(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, currency)
}

// PUT/PATCH /api/currencies/:id
func (h *CurrencyHandler) UpdateCurrency(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.UnprocessableResponse(c, "Invalid request body")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	currency, err := h.currencyService.UpdateCurrency(id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessMessageResponse(c, "Currency updated successfully", currency)
}

// DELETE /api/currencies/:id
func (h *CurrencyHandler) DeleteCurrency(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.currencyService.DeleteCurrency(id); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessMessageResponse(c, "Currency deleted successfully", nil)
}
