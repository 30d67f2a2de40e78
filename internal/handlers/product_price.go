// internal/handlers/product_price.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mercata/catalog-api/internal/services"
	"github.com/mercata/catalog-api/internal/utils"
)

type ProductPriceHandler struct {
	priceService *services.ProductPriceService
}

func NewProductPriceHandler(priceService *services.ProductPriceService) *ProductPriceHandler {
	return &ProductPriceHandler{priceService: priceService}
}

// GET /api/products/:id/prices
func (h *ProductPriceHandler) GetPrices(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	prices, err := h.priceService.ListPrices(productID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, prices)
}

// POST /api/products/:id/prices
func (h *ProductPriceHandler) CreatePrice(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.CreateProductPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.UnprocessableResponse(c, "Invalid request body")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	price, err := h.priceService.CreatePrice(productID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Price created successfully", price)
}
