// internal/handlers/common.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mercata/catalog-api/internal/services"
	"github.com/mercata/catalog-api/internal/utils"
)

// parseIDParam resolves a numeric path parameter. An unparsable id behaves
// like a missing resource, so it renders 404 and reports failure.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		utils.NotFoundResponse(c, "")
		return 0, false
	}
	return uint(id), true
}

func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCurrencyNotFound):
		utils.NotFoundResponse(c, "Currency not found")
	case errors.Is(err, services.ErrProductNotFound):
		utils.NotFoundResponse(c, "Product not found")
	case errors.Is(err, services.ErrPriceExists):
		utils.UnprocessableResponse(c, "Price for this currency already exists. Use PUT to update it.")
	case errors.Is(err, services.ErrPriceRequired):
		// Same shape as the struct-tag validation failures, so a missing
		// price reads like any other missing required field.
		utils.ValidationErrorResponse(c, []utils.ValidationError{
			{Field: "price", Tag: "required", Message: "Price is required"},
		})
	case errors.Is(err, services.ErrInvalidCurrency),
		errors.Is(err, services.ErrDuplicatePriceCurrency),
		errors.Is(err, services.ErrCurrencyInUse):
		utils.UnprocessableResponse(c, err.Error())
	default:
		utils.InternalErrorResponse(c, "")
	}
}
