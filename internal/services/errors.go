// internal/services/errors.go
package services

import "errors"

// Business-rule errors surfaced to the API layer. Handlers map not-found
// sentinels to 404 and the rest to 422.
var (
	ErrCurrencyNotFound = errors.New("currency not found")
	ErrProductNotFound  = errors.New("product not found")

	ErrInvalidCurrency        = errors.New("the selected currency_id is invalid")
	ErrPriceRequired          = errors.New("the price field is required")
	ErrDuplicatePriceCurrency = errors.New("additional_prices lists the same currency more than once")
	ErrPriceExists            = errors.New("price for this currency already exists, use PUT to update it")
	ErrCurrencyInUse          = errors.New("currency is referenced by existing products or prices and cannot be deleted")
)
